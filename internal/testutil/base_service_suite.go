package testutil

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/adspacehq/adspace/internal/cache"
	"github.com/adspacehq/adspace/internal/config"
	"github.com/adspacehq/adspace/internal/logger"
	"github.com/adspacehq/adspace/internal/validator"
)

// Stores holds the in-memory repositories used by service tests.
type Stores struct {
	RateRepo     *InMemoryRateStore
	ContractRepo *InMemoryContractStore
}

// BaseServiceTestSuite provides common setup for service layer tests.
type BaseServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	cfg    *config.Configuration
	logger *logger.Logger
	cache  cache.Cache
	stores Stores
	now    time.Time
}

func (s *BaseServiceTestSuite) SetupSuite() {
	validator.NewValidator()

	s.cfg = config.GetDefaultConfig()

	log, err := logger.NewLogger(s.cfg)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}
	s.logger = log
}

func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = SetupContext()
	s.cache = cache.NewInMemoryCache(s.cfg)
	s.stores = Stores{
		RateRepo:     NewInMemoryRateStore(),
		ContractRepo: NewInMemoryContractStore(),
	}
	s.now = time.Now().UTC()
}

func (s *BaseServiceTestSuite) TearDownTest() {
	s.stores.RateRepo.Clear()
	s.stores.ContractRepo.Clear()
	s.cache.Flush(s.ctx)
}

// GetContext returns the test context.
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetConfig returns the test configuration.
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.cfg
}

// GetLogger returns the test logger.
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetCache returns the test cache.
func (s *BaseServiceTestSuite) GetCache() cache.Cache {
	return s.cache
}

// GetStores returns the in-memory stores.
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetNow returns the time recorded at test setup.
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now
}
