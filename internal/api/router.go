package api

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/adspacehq/adspace/internal/api/v1"
	"github.com/adspacehq/adspace/internal/rest/middleware"
)

type Handlers struct {
	Health   *v1.HealthHandler
	Costing  *v1.CostingHandler
	Contract *v1.ContractHandler
	Rate     *v1.RateHandler
}

func NewRouter(handlers Handlers) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORSMiddleware)
	router.Use(middleware.ErrorHandler())

	router.GET("/health", handlers.Health.Health)

	// v1 routes
	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	// Quote routes
	quotes := router.Group("/quotes")
	{
		quotes.POST("", handlers.Costing.Quote)
	}

	// Contract routes
	contracts := router.Group("/contracts")
	{
		contracts.POST("", handlers.Contract.CreateContract)
		contracts.GET("", handlers.Contract.ListContracts)
		contracts.GET("/:id", handlers.Contract.GetContract)
		contracts.POST("/:id/settlement", handlers.Contract.SettleContract)
	}

	// Rate table routes
	rates := router.Group("/rates")
	{
		rates.PUT("", handlers.Rate.UpsertRate)
		rates.GET("", handlers.Rate.ListRates)
		rates.DELETE("/:id", handlers.Rate.DeleteRate)
	}
}
