package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sustainage/sdg-engine/internal/pkg/constants"
)

func (c *Controller) ListGoals(ctx echo.Context) error {
	goals, err := c.taxonomyService.ListGoals(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, goals)
}

// GetTaxonomyTree serves the full hierarchy of the current snapshot straight
// from the in-memory index.
func (c *Controller) GetTaxonomyTree(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.taxonomyService.Index().Goals())
}

func tenantID(ctx echo.Context) string {
	id, _ := ctx.Get(constants.CtxKeyTenantID).(string)
	return id
}
