package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/spf13/viper"
	"github.com/sustainage/sdg-engine/internal/pkg/constants"
)

// ReloadTaxonomy ingests a new taxonomy snapshot and swaps it in. The running
// snapshot stays published if the new source fails to normalize.
func (c *Controller) ReloadTaxonomy(ctx echo.Context) error {
	var req struct {
		Path  string `json:"path"`
		Sheet string `json:"sheet"`
	}
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if req.Path == "" {
		req.Path = viper.GetString(constants.ViperTaxonomyPath)
	}
	if req.Sheet == "" {
		req.Sheet = viper.GetString(constants.ViperTaxonomySheet)
	}

	if err := c.taxonomyService.Ingest(ctx.Request().Context(), req.Path, req.Sheet); err != nil {
		return err
	}

	idx := c.taxonomyService.Index()

	type response struct {
		Snapshot string `json:"snapshot"`
		Goals    int    `json:"goals"`
	}

	return ctx.JSON(http.StatusOK, response{Snapshot: idx.Snapshot(), Goals: len(idx.Goals())})
}
