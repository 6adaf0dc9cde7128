package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	govalidator "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"github.com/adspacehq/adspace/internal/api"
	v1 "github.com/adspacehq/adspace/internal/api/v1"
	"github.com/adspacehq/adspace/internal/cache"
	"github.com/adspacehq/adspace/internal/config"
	"github.com/adspacehq/adspace/internal/domain/contract"
	"github.com/adspacehq/adspace/internal/domain/rate"
	"github.com/adspacehq/adspace/internal/logger"
	"github.com/adspacehq/adspace/internal/postgres"
	repo "github.com/adspacehq/adspace/internal/repository/postgres"
	"github.com/adspacehq/adspace/internal/service"
	"github.com/adspacehq/adspace/internal/types"
	"github.com/adspacehq/adspace/internal/validator"
)

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	// Load .env if present; real deployments configure through the environment
	_ = godotenv.Load()

	app := fx.New(
		fx.Provide(
			validator.NewValidator,
			config.NewConfig,
			logger.NewLogger,
			cache.NewInMemoryCache,
			postgres.NewClient,
			repo.NewRateRepository,
			repo.NewContractRepository,
			newServiceParams,
			service.NewCostingService,
			service.NewContractService,
			service.NewRateService,
			newHandlers,
			api.NewRouter,
		),
		fx.Invoke(startServer),
	)

	app.Run()
}

func newServiceParams(
	log *logger.Logger,
	cfg *config.Configuration,
	c cache.Cache,
	rateRepo rate.Repository,
	contractRepo contract.Repository,
) service.ServiceParams {
	return service.ServiceParams{
		Logger:       log,
		Config:       cfg,
		Cache:        c,
		RateRepo:     rateRepo,
		ContractRepo: contractRepo,
	}
}

func newHandlers(
	params service.ServiceParams,
	costingService service.CostingService,
	contractService service.ContractService,
	rateService service.RateService,
) api.Handlers {
	return api.Handlers{
		Health:   v1.NewHealthHandler(params.Logger),
		Costing:  v1.NewCostingHandler(costingService, params.Logger),
		Contract: v1.NewContractHandler(contractService, params.Logger),
		Rate:     v1.NewRateHandler(rateService, params.Logger),
	}
}

// startServer depends on the validator so fx constructs it before the first
// request; request validation goes through the package-level instance.
func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	router *gin.Engine,
	log *logger.Logger,
	_ *govalidator.Validate,
) {
	if cfg.Deployment.Mode != types.ModeLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Infow("starting server", "address", cfg.Server.Address)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatalf("server failed: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down server")
			return server.Shutdown(ctx)
		},
	})
}
