package rate

import "context"

type Repository interface {
	Upsert(ctx context.Context, entry *RateEntry) error
	Get(ctx context.Context, id string) (*RateEntry, error)
	List(ctx context.Context) ([]*RateEntry, error)
	ListBySizes(ctx context.Context, sizes []string) ([]*RateEntry, error)
	Delete(ctx context.Context, id string) error
}
