package service

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/adspacehq/adspace/internal/api/dto"
	"github.com/adspacehq/adspace/internal/cache"
	"github.com/adspacehq/adspace/internal/domain/costing"
	"github.com/adspacehq/adspace/internal/domain/discount"
	"github.com/adspacehq/adspace/internal/domain/installment"
	"github.com/adspacehq/adspace/internal/domain/rate"
	"github.com/adspacehq/adspace/internal/types"
)

// CostingService turns a set of placements, a category, a duration and an
// optional discount into a fully costed quote. All arithmetic lives in the
// pure domain packages; this service only fetches the rate snapshot and
// threads the results together, so repeated calls with the same inputs give
// identical quotes.
type CostingService interface {
	Quote(ctx context.Context, req dto.QuoteRequest) (*dto.QuoteResponse, error)
}

type costingService struct {
	ServiceParams
}

func NewCostingService(params ServiceParams) CostingService {
	return &costingService{ServiceParams: params}
}

func (s *costingService) Quote(ctx context.Context, req dto.QuoteRequest) (*dto.QuoteResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	snapshot, err := s.rateSnapshot(ctx, req.PlacementSizes())
	if err != nil {
		return nil, err
	}

	resolver := rate.NewResolverWithDefaults(snapshot)
	estimate := costing.EstimateTotal(resolver, req.ToPlacements(), req.CustomerCategory, req.Duration)

	baseTotal := estimate.Total
	if req.ManualBaseTotal != nil && req.ManualBaseTotal.GreaterThanOrEqual(decimal.Zero) {
		baseTotal = types.RoundMoney(*req.ManualBaseTotal)
	}

	application := discount.Apply(baseTotal, req.Discount.ToDiscount())

	installments := installment.DistributeEvenly(application.FinalTotal, req.InstallmentCount)
	if !req.StartDate.IsZero() {
		installments = installment.ScheduleDueDates(req.StartDate, installments)
	}

	return &dto.QuoteResponse{
		Lines:          estimate.Lines,
		EstimatedTotal: estimate.Total,
		BaseTotal:      baseTotal,
		DiscountAmount: application.DiscountAmount,
		FinalTotal:     application.FinalTotal,
		Installments:   installments,
	}, nil
}

// rateSnapshot loads the dynamic rate entries for the given sizes, caching
// the result so reactive quote edits do not hit the store on every
// keystroke. The engine itself never caches; staleness lives here, bounded
// by the cache expiration and invalidated on rate writes.
func (s *costingService) rateSnapshot(ctx context.Context, sizes []string) ([]*rate.RateEntry, error) {
	key := cache.GenerateKey(cache.PrefixRate, strings.Join(sizes, ","))

	if value, ok := s.Cache.Get(ctx, key); ok {
		if entries, ok := value.([]*rate.RateEntry); ok {
			return entries, nil
		}
	}

	entries, err := s.RateRepo.ListBySizes(ctx, sizes)
	if err != nil {
		return nil, err
	}

	s.Cache.Set(ctx, key, entries, cache.DefaultExpiration)
	return entries, nil
}
