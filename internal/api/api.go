package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/mreiner/compquote/internal/api/controller"
	"github.com/mreiner/compquote/internal/pkg/constants"
	"github.com/mreiner/compquote/internal/pkg/logger"
	"github.com/mreiner/compquote/internal/pkg/refcache"
	"github.com/mreiner/compquote/internal/pkg/store"
	"github.com/mreiner/compquote/internal/service/advisor"
	"github.com/mreiner/compquote/internal/service/quoting"
	"github.com/mreiner/compquote/internal/service/rating"
	"github.com/mreiner/compquote/internal/service/refdata"
)

type APIService struct {
	router         *echo.Echo
	quotingService *quoting.Service
	refdataService *refdata.Service
}

func (svc *APIService) Serve(addr string) {
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(context.Background(), err)
	}
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(st store.Store) (*APIService, error) {
	svc := &APIService{router: echo.New()}

	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.Use(middleware.Logger())
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000"},
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	cache := refcache.New(st, viper.GetDuration(constants.ViperRefCacheTTL))
	engine := rating.NewEngine(cache,
		rating.WithExpectedLossRatio(viper.GetFloat64(constants.ViperExpectedLossRatio)))
	adv := advisor.NewService(
		viper.GetString(constants.ViperOpenAIKey),
		viper.GetString(constants.ViperOpenAIModel))

	svc.quotingService = quoting.NewService(engine, adv, st)
	svc.refdataService = refdata.NewService(st, cache.Invalidate)

	api := svc.router.Group("/api/v1")
	cntrl := controller.NewController(svc.quotingService, svc.refdataService, st, cache.Invalidate)

	ratings := api.Group("/ratings")
	ratings.POST("/calculate", cntrl.CalculateRating)
	ratings.POST("", cntrl.SaveRating)
	ratings.GET("", cntrl.ListRatings)
	ratings.POST("/:id/quotes", cntrl.IssueQuote)

	quotes := api.Group("/quotes")
	quotes.GET("", cntrl.ListQuotes)

	reference := api.Group("/reference")
	reference.GET("/rates/:state", cntrl.GetClassCodeRates)
	reference.GET("/territories/:state", cntrl.GetTerritories)

	admin := api.Group("/admin", svc.AdminMiddleware)
	admin.POST("/rates", cntrl.UpsertClassCodeRate)
	admin.POST("/territories", cntrl.UpsertTerritory)
	admin.POST("/rates/import", cntrl.ImportRateBulletin)

	return svc, nil
}
