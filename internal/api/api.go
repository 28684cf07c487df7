package api

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"
	"github.com/sustainage/sdg-engine/internal/api/controller"
	"github.com/sustainage/sdg-engine/internal/pkg/constants"
	"github.com/sustainage/sdg-engine/internal/pkg/logger"
	"github.com/sustainage/sdg-engine/internal/pkg/store"
	"github.com/sustainage/sdg-engine/internal/service/collection"
	"github.com/sustainage/sdg-engine/internal/service/mapping"
	"github.com/sustainage/sdg-engine/internal/service/selection"
	"github.com/sustainage/sdg-engine/internal/service/taxonomy"
)

type APIService struct {
	router *echo.Echo

	taxonomyService   *taxonomy.Service
	selectionService  *selection.Service
	collectionService *collection.Service
	mappingService    *mapping.Service
}

func (svc *APIService) Serve(addr string) {
	logger.Fatal(context.Background(), svc.router.Start(addr))
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func (svc *APIService) TaxonomyService() *taxonomy.Service {
	return svc.taxonomyService
}

func NewAPIService(store store.Store) (*APIService, error) {
	svc := &APIService{router: echo.New()}

	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.JSONSerializer = JSONSerializer{}
	svc.router.Use(middleware.Logger())
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{viper.GetString(constants.ViperCORSOrigin)},
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders: []string{"Content-Type", "Authorization", constants.HeaderTenantID},
	}))

	svc.taxonomyService = taxonomy.NewService(store)
	svc.selectionService = selection.NewService(store)
	svc.collectionService = collection.NewService(store, svc.taxonomyService.Holder())
	svc.mappingService = mapping.NewService(store, svc.taxonomyService.Holder())

	api := svc.router.Group("/api/v1")
	cntrl := controller.NewController(
		svc.taxonomyService, svc.selectionService, svc.collectionService, svc.mappingService)

	goals := api.Group("/goals")
	goals.GET("/list", cntrl.ListGoals)
	goals.GET("/tree", cntrl.GetTaxonomyTree)

	selections := api.Group("/selections", svc.TenantMiddleware)
	selections.GET("", cntrl.GetSelections)
	selections.PUT("", cntrl.SetSelections)

	responses := api.Group("/responses", svc.TenantMiddleware)
	responses.POST("", cntrl.SaveAnswer)
	responses.POST("/batch", cntrl.SaveAnswers)
	responses.GET("/recent", cntrl.GetRecentResponses)

	indicators := api.Group("/indicators", svc.TenantMiddleware)
	indicators.GET("/:code/responses", cntrl.GetIndicatorResponses)

	progress := api.Group("/progress", svc.TenantMiddleware)
	progress.GET("", cntrl.GetCompanyProgress)
	progress.POST("/rebuild", cntrl.RebuildStatuses)

	api.GET("/statistics", cntrl.GetStatistics, svc.TenantMiddleware)

	mappingGroup := api.Group("/mapping")
	mappingGroup.GET("/indicators", cntrl.MapSelectedGoals)
	mappingGroup.GET("/by-standard", cntrl.GroupByStandard)
	mappingGroup.GET("/answer-percentage", cntrl.GetAnswerPercentage, svc.TenantMiddleware)

	admin := api.Group("/admin")
	admin.POST("/taxonomy/reload", cntrl.ReloadTaxonomy, svc.AdminMiddleware)

	return svc, nil
}
