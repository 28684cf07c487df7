package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sustainage/sdg-engine/internal/domain"
)

func (c *Controller) GetSelections(ctx echo.Context) error {
	goalNos, err := c.selectionService.GetSelections(ctx.Request().Context(), tenantID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, goalNos)
}

func (c *Controller) SetSelections(ctx echo.Context) error {
	var req domain.SetSelectionsRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	if err := c.selectionService.SetSelections(ctx.Request().Context(), tenantID(ctx), req.GoalIDs); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}
