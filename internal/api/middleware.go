package api

import (
	"github.com/labstack/echo/v4"
	"github.com/spf13/viper"
	"github.com/sustainage/sdg-engine/internal/pkg/constants"
	"github.com/sustainage/sdg-engine/internal/pkg/utils"
)

// TenantMiddleware resolves the tenant every request operates on: the
// tenant_id claim of the platform-issued token when present, otherwise the
// X-Tenant-ID header. Requests without a tenant are rejected before they
// reach any store. Authorization itself happens upstream of the engine.
func (svc *APIService) TenantMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if cookie, err := ctx.Cookie(constants.CookieKeyAuthToken); err == nil {
			token, err := utils.ParseAuthToken(cookie.Value)
			if err != nil {
				return err
			}
			ctx.Set(constants.CtxKeyTenantID, token.TenantID)
			return next(ctx)
		}

		tenantID := ctx.Request().Header.Get(constants.HeaderTenantID)
		if tenantID == "" {
			return constants.ErrMissingTenant
		}

		ctx.Set(constants.CtxKeyTenantID, tenantID)
		return next(ctx)
	}
}

// AdminMiddleware guards operational endpoints (taxonomy re-ingest) with the
// deployment secret.
func (svc *APIService) AdminMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		cookie, err := ctx.Cookie(constants.CookieKeySecretToken)
		if err != nil {
			return constants.ErrUnauthorized
		}

		token, err := utils.ParseAuthToken(cookie.Value)
		if err != nil {
			return err
		}

		if token.Secret != viper.GetString(constants.ViperSecretKey) {
			return constants.ErrUnauthorized
		}

		return next(ctx)
	}
}
