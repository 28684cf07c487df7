package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (c *Controller) MapSelectedGoals(ctx echo.Context) error {
	goalNos := parseGoalNos(ctx.QueryParams().Get("goal_ids"))

	return ctx.JSON(http.StatusOK, c.mappingService.MapSelectedGoals(goalNos))
}

func (c *Controller) GroupByStandard(ctx echo.Context) error {
	goalNos := parseGoalNos(ctx.QueryParams().Get("goal_ids"))

	return ctx.JSON(http.StatusOK, c.mappingService.GroupByStandard(goalNos))
}

func (c *Controller) GetAnswerPercentage(ctx echo.Context) error {
	goalNos := parseGoalNos(ctx.QueryParams().Get("goal_ids"))

	percentage, err := c.mappingService.AnswerPercentage(ctx.Request().Context(), tenantID(ctx), goalNos)
	if err != nil {
		return err
	}

	type response struct {
		TotalQuestions   int     `json:"total_questions"`
		AnswerPercentage float64 `json:"answer_percentage"`
	}

	return ctx.JSON(http.StatusOK, response{
		TotalQuestions:   c.mappingService.CountQuestions(goalNos),
		AnswerPercentage: percentage,
	})
}
