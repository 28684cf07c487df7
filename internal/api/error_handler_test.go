package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sustainage/sdg-engine/internal/domain"
	"github.com/sustainage/sdg-engine/internal/pkg/constants"
)

func TestHTTPErrorHandler(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "coded error", err: constants.ErrIndicatorNotFound, wantCode: http.StatusNotFound},
		{name: "wrapped coded error", err: fmt.Errorf("SaveAnswer: %w", constants.ErrInvalidAnswer), wantCode: http.StatusBadRequest},
		{name: "deeply wrapped", err: fmt.Errorf("a: %w", fmt.Errorf("b: %w", constants.ErrUnauthorized)), wantCode: http.StatusUnauthorized},
		{name: "plain error", err: fmt.Errorf("boom"), wantCode: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			httpErrorHandler(tc.err, ctx)

			assert.Equal(t, tc.wantCode, rec.Code)

			var body domain.ErrorResponse
			require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.wantCode, body.Code)
			assert.Equal(t, tc.err.Error(), body.Message)
		})
	}
}
