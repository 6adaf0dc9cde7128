package contract

import "context"

type Repository interface {
	Create(ctx context.Context, contract *Contract) error
	Get(ctx context.Context, id string) (*Contract, error)
	List(ctx context.Context) ([]*Contract, error)
	Update(ctx context.Context, contract *Contract) error
	Delete(ctx context.Context, id string) error
}
