package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sustainage/sdg-engine/internal/pkg/constants"
	"github.com/sustainage/sdg-engine/internal/pkg/utils"
)

func invoke(t *testing.T, mw echo.MiddlewareFunc, req *http.Request) (echo.Context, error) {
	t.Helper()

	e := echo.New()
	ctx := e.NewContext(req, httptest.NewRecorder())
	err := mw(func(echo.Context) error { return nil })(ctx)
	return ctx, err
}

func TestTenantMiddlewareHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constants.HeaderTenantID, "acme")

	ctx, err := invoke(t, (&APIService{}).TenantMiddleware, req)
	require.NoError(t, err)
	assert.Equal(t, "acme", ctx.Get(constants.CtxKeyTenantID))
}

func TestTenantMiddlewareCookieWinsOverHeader(t *testing.T) {
	viper.Set(constants.ViperSecretKey, "test-secret")
	t.Cleanup(func() { viper.Set(constants.ViperSecretKey, "") })

	raw, err := utils.GenerateAuthToken(&utils.AuthTokenWrapper{TenantID: "globex"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constants.HeaderTenantID, "acme")
	req.AddCookie(&http.Cookie{Name: constants.CookieKeyAuthToken, Value: raw})

	ctx, err := invoke(t, (&APIService{}).TenantMiddleware, req)
	require.NoError(t, err)
	assert.Equal(t, "globex", ctx.Get(constants.CtxKeyTenantID))
}

func TestTenantMiddlewareMissingTenant(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := invoke(t, (&APIService{}).TenantMiddleware, req)
	assert.ErrorIs(t, err, constants.ErrMissingTenant)
}

func TestTenantMiddlewareBadCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: constants.CookieKeyAuthToken, Value: "garbage"})

	_, err := invoke(t, (&APIService{}).TenantMiddleware, req)
	assert.ErrorIs(t, err, constants.ErrUnauthorized)
}

func TestAdminMiddleware(t *testing.T) {
	viper.Set(constants.ViperSecretKey, "test-secret")
	t.Cleanup(func() { viper.Set(constants.ViperSecretKey, "") })

	newReq := func(secret string) *http.Request {
		raw, err := utils.GenerateAuthToken(&utils.AuthTokenWrapper{Secret: secret})
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.AddCookie(&http.Cookie{Name: constants.CookieKeySecretToken, Value: raw})
		return req
	}

	_, err := invoke(t, (&APIService{}).AdminMiddleware, newReq("test-secret"))
	assert.NoError(t, err)

	_, err = invoke(t, (&APIService{}).AdminMiddleware, newReq("wrong"))
	assert.ErrorIs(t, err, constants.ErrUnauthorized)

	_, err = invoke(t, (&APIService{}).AdminMiddleware, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.ErrorIs(t, err, constants.ErrUnauthorized)
}
