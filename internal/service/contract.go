package service

import (
	"context"
	"time"

	"github.com/adspacehq/adspace/internal/api/dto"
	"github.com/adspacehq/adspace/internal/cache"
	"github.com/adspacehq/adspace/internal/domain/settlement"
)

// ContractService drafts contracts through the costing engine, persists them
// and answers settlement previews for early termination.
type ContractService interface {
	CreateContract(ctx context.Context, req dto.CreateContractRequest) (*dto.ContractResponse, error)
	GetContract(ctx context.Context, id string) (*dto.ContractResponse, error)
	ListContracts(ctx context.Context) (*dto.ListContractsResponse, error)
	SettleContract(ctx context.Context, id string, req dto.SettlementRequest) (*dto.SettlementResponse, error)
}

type contractService struct {
	ServiceParams
	costing CostingService
}

func NewContractService(params ServiceParams) ContractService {
	return &contractService{
		ServiceParams: params,
		costing:       NewCostingService(params),
	}
}

func (s *contractService) CreateContract(ctx context.Context, req dto.CreateContractRequest) (*dto.ContractResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	quote, err := s.costing.Quote(ctx, dto.QuoteRequest{
		Placements:       req.Placements,
		CustomerCategory: req.CustomerCategory,
		Duration:         req.Duration,
		ManualBaseTotal:  req.ManualBaseTotal,
		Discount:         req.Discount,
		InstallmentCount: req.InstallmentCount,
		StartDate:        req.StartDate,
	})
	if err != nil {
		return nil, err
	}

	c := req.ToContract(ctx)
	c.TotalCost = quote.FinalTotal
	c.DiscountAmount = quote.DiscountAmount
	c.Installments = quote.Installments

	if err := s.ContractRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.Cache.DeleteByPrefix(ctx, cache.PrefixContract)

	s.Logger.Infow("created contract",
		"contract_id", c.ID,
		"contract_number", c.ContractNumber,
		"total_cost", c.TotalCost,
		"installments", len(c.Installments),
	)

	return &dto.ContractResponse{Contract: c}, nil
}

func (s *contractService) GetContract(ctx context.Context, id string) (*dto.ContractResponse, error) {
	c, err := s.ContractRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.ContractResponse{Contract: c}, nil
}

func (s *contractService) ListContracts(ctx context.Context) (*dto.ListContractsResponse, error) {
	contracts, err := s.ContractRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListContractsResponse{
		Items: make([]*dto.ContractResponse, len(contracts)),
		Total: len(contracts),
	}
	for i, c := range contracts {
		resp.Items[i] = &dto.ContractResponse{Contract: c}
	}
	return resp, nil
}

// SettleContract previews the early-termination amount owed on a contract as
// of the given date (now when unset). It does not modify the contract; the
// settlement flow persists its outcome through its own write path once the
// customer accepts.
func (s *contractService) SettleContract(ctx context.Context, id string, req dto.SettlementRequest) (*dto.SettlementResponse, error) {
	c, err := s.ContractRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	asOf := req.AsOf
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	result, err := settlement.Prorate(c.StartDate, c.EndDate, c.TotalCost, asOf)
	if err != nil {
		return nil, err
	}

	return &dto.SettlementResponse{
		ContractID:   c.ID,
		ConsumedDays: result.ConsumedDays,
		TotalDays:    result.TotalDays,
		AmountDue:    result.AmountDue,
		FinalTotal:   c.TotalCost,
	}, nil
}
