package controller

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/sustainage/sdg-engine/internal/domain"
)

func (c *Controller) GetCompanyProgress(ctx echo.Context) error {
	var goalNo *domain.GoalNo
	if raw := ctx.QueryParams().Get("goal_no"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err == nil {
			goalNo = &parsed
		}
	}

	progress, err := c.collectionService.GetCompanyProgress(ctx.Request().Context(), tenantID(ctx), goalNo)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, progress)
}

func (c *Controller) GetStatistics(ctx echo.Context) error {
	stats, err := c.collectionService.GetStatistics(ctx.Request().Context(), tenantID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, stats)
}

// RebuildStatuses regenerates the tenant's whole status table from responses.
func (c *Controller) RebuildStatuses(ctx echo.Context) error {
	if err := c.collectionService.RebuildStatuses(ctx.Request().Context(), tenantID(ctx)); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}
