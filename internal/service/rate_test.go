package service

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/adspacehq/adspace/internal/api/dto"
	ierr "github.com/adspacehq/adspace/internal/errors"
	"github.com/adspacehq/adspace/internal/testutil"
	"github.com/adspacehq/adspace/internal/types"
)

type RateServiceSuite struct {
	testutil.BaseServiceTestSuite
	service RateService
	costing CostingService
}

func TestRateService(t *testing.T) {
	suite.Run(t, new(RateServiceSuite))
}

func (s *RateServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	params := ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		Cache:        s.GetCache(),
		RateRepo:     s.GetStores().RateRepo,
		ContractRepo: s.GetStores().ContractRepo,
	}
	s.service = NewRateService(params)
	s.costing = NewCostingService(params)
}

func (s *RateServiceSuite) upsertRequest(size, level string, monthly string) dto.UpsertRateRequest {
	price := decimal.RequireFromString(monthly)
	return dto.UpsertRateRequest{
		Size:     size,
		Level:    level,
		Category: types.CustomerCategoryStandard,
		Prices: map[types.DurationTier]*decimal.Decimal{
			types.DurationTierOneMonth: &price,
		},
	}
}

func (s *RateServiceSuite) TestUpsertRate() {
	resp, err := s.service.UpsertRate(s.GetContext(), s.upsertRequest("12x4", "A", "3500"))
	s.Require().NoError(err)

	s.True(strings.HasPrefix(resp.ID, "rate_"))
	s.Equal("12x4", resp.Size)

	list, err := s.service.ListRates(s.GetContext())
	s.Require().NoError(err)
	s.Equal(1, list.Total)
}

func (s *RateServiceSuite) TestUpsertRate_ReplacesExistingKey() {
	_, err := s.service.UpsertRate(s.GetContext(), s.upsertRequest("12x4", "A", "3500"))
	s.Require().NoError(err)

	_, err = s.service.UpsertRate(s.GetContext(), s.upsertRequest("12x4", "A", "3800"))
	s.Require().NoError(err)

	list, err := s.service.ListRates(s.GetContext())
	s.Require().NoError(err)
	s.Require().Equal(1, list.Total)

	price, ok := list.Items[0].PriceForTier(types.DurationTierOneMonth)
	s.Require().True(ok)
	s.True(price.Equal(decimal.RequireFromString("3800")))
}

func (s *RateServiceSuite) TestUpsertRate_ValidationError() {
	req := s.upsertRequest("12x4", "A", "3500")
	req.Size = ""

	resp, err := s.service.UpsertRate(s.GetContext(), req)
	s.Require().Error(err)
	s.Nil(resp)
	s.True(ierr.IsValidation(err))
}

func (s *RateServiceSuite) TestDeleteRate() {
	created, err := s.service.UpsertRate(s.GetContext(), s.upsertRequest("12x4", "A", "3500"))
	s.Require().NoError(err)

	s.Require().NoError(s.service.DeleteRate(s.GetContext(), created.ID))

	list, err := s.service.ListRates(s.GetContext())
	s.Require().NoError(err)
	s.Equal(0, list.Total)

	err = s.service.DeleteRate(s.GetContext(), created.ID)
	s.Require().Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *RateServiceSuite) TestUpsertRate_InvalidatesQuoteSnapshot() {
	quoteReq := dto.QuoteRequest{
		Placements: []dto.PlacementInput{
			{ID: "board_1", Size: "12x4", Level: "A"},
		},
		CustomerCategory: types.CustomerCategoryStandard,
		Duration:         types.RentalDuration{Unit: types.RentalUnitMonths, Count: 1},
		InstallmentCount: 1,
	}

	// First quote comes off the static table and caches the snapshot.
	first, err := s.costing.Quote(s.GetContext(), quoteReq)
	s.Require().NoError(err)
	s.True(first.EstimatedTotal.Equal(decimal.RequireFromString("3000")))

	_, err = s.service.UpsertRate(s.GetContext(), s.upsertRequest("12x4", "A", "3500"))
	s.Require().NoError(err)

	// The write evicted the snapshot, so the next quote sees the new rate.
	second, err := s.costing.Quote(s.GetContext(), quoteReq)
	s.Require().NoError(err)
	s.True(second.EstimatedTotal.Equal(decimal.RequireFromString("3500")),
		"expected 3500, got %s", second.EstimatedTotal)
}
