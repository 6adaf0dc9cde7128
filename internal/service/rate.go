package service

import (
	"context"

	"github.com/adspacehq/adspace/internal/api/dto"
	"github.com/adspacehq/adspace/internal/cache"
)

// RateService administers the dynamic rate table. Every write invalidates
// the cached snapshots the costing service quotes from.
type RateService interface {
	UpsertRate(ctx context.Context, req dto.UpsertRateRequest) (*dto.RateResponse, error)
	ListRates(ctx context.Context) (*dto.ListRatesResponse, error)
	DeleteRate(ctx context.Context, id string) error
}

type rateService struct {
	ServiceParams
}

func NewRateService(params ServiceParams) RateService {
	return &rateService{ServiceParams: params}
}

func (s *rateService) UpsertRate(ctx context.Context, req dto.UpsertRateRequest) (*dto.RateResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	entry := req.ToRateEntry(ctx)
	if err := s.RateRepo.Upsert(ctx, entry); err != nil {
		return nil, err
	}

	s.Cache.DeleteByPrefix(ctx, cache.PrefixRate)

	s.Logger.Infow("saved rate entry",
		"size", entry.Size,
		"level", entry.Level,
		"category", entry.Category,
	)

	return &dto.RateResponse{RateEntry: entry}, nil
}

func (s *rateService) ListRates(ctx context.Context) (*dto.ListRatesResponse, error) {
	entries, err := s.RateRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListRatesResponse{
		Items: make([]*dto.RateResponse, len(entries)),
		Total: len(entries),
	}
	for i, entry := range entries {
		resp.Items[i] = &dto.RateResponse{RateEntry: entry}
	}
	return resp, nil
}

func (s *rateService) DeleteRate(ctx context.Context, id string) error {
	if err := s.RateRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.Cache.DeleteByPrefix(ctx, cache.PrefixRate)
	return nil
}
