package service

import (
	"github.com/adspacehq/adspace/internal/cache"
	"github.com/adspacehq/adspace/internal/config"
	"github.com/adspacehq/adspace/internal/domain/contract"
	"github.com/adspacehq/adspace/internal/domain/rate"
	"github.com/adspacehq/adspace/internal/logger"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	Cache  cache.Cache

	// Repositories
	RateRepo     rate.Repository
	ContractRepo contract.Repository
}
