package main

import (
	"context"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	"github.com/adspacehq/adspace/internal/api/dto"
	"github.com/adspacehq/adspace/internal/config"
	"github.com/adspacehq/adspace/internal/logger"
	"github.com/adspacehq/adspace/internal/types"
	"github.com/adspacehq/adspace/internal/validator"
)

// Starting the app must construct the request validator even though no
// provider returns it to a handler; fx builds lazily, so startServer has to
// pull it in.
func TestStartServer_InitializesValidator(t *testing.T) {
	gin.SetMode(gin.TestMode)

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			validator.NewValidator,
			func() *config.Configuration {
				cfg := config.GetDefaultConfig()
				cfg.Server.Address = "127.0.0.1:0"
				return cfg
			},
			logger.NewLogger,
			func() *gin.Engine { return gin.New() },
		),
		fx.Invoke(startServer),
	)

	ctx := context.Background()
	require.NoError(t, app.Start(ctx))
	defer app.Stop(ctx)

	require.NotNil(t, validator.GetValidator())

	// A well-formed request validates instead of tripping the
	// uninitialized-validator guard.
	req := dto.QuoteRequest{
		Placements: []dto.PlacementInput{
			{ID: "board_1", Size: "12x4", Level: "A"},
		},
		CustomerCategory: types.CustomerCategoryStandard,
		Duration:         types.RentalDuration{Unit: types.RentalUnitMonths, Count: 1},
	}
	require.NoError(t, req.Validate())
}
