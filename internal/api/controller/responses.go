package controller

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/sustainage/sdg-engine/internal/domain"
)

func (c *Controller) SaveAnswer(ctx echo.Context) error {
	var req domain.SaveAnswerRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	if err := c.collectionService.SaveAnswer(ctx.Request().Context(), tenantID(ctx), req); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (c *Controller) SaveAnswers(ctx echo.Context) error {
	var req domain.SaveAnswersRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	result, err := c.collectionService.SaveAnswers(ctx.Request().Context(), tenantID(ctx), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, result)
}

func (c *Controller) GetIndicatorResponses(ctx echo.Context) error {
	responses, err := c.collectionService.GetIndicatorResponses(
		ctx.Request().Context(), tenantID(ctx), ctx.Param("code"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, responses)
}

func (c *Controller) GetRecentResponses(ctx echo.Context) error {
	limit, _ := strconv.Atoi(ctx.QueryParams().Get("limit"))

	responses, err := c.collectionService.GetRecentResponses(ctx.Request().Context(), tenantID(ctx), limit)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, responses)
}
