package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/adspacehq/adspace/internal/domain/rate"
	ierr "github.com/adspacehq/adspace/internal/errors"
	"github.com/adspacehq/adspace/internal/logger"
	"github.com/adspacehq/adspace/internal/types"
)

type rateRepository struct {
	db  *sqlx.DB
	log *logger.Logger
}

func NewRateRepository(db *sqlx.DB, log *logger.Logger) rate.Repository {
	return &rateRepository{db: db, log: log}
}

const rateColumns = `id, size, level, category, price_per_tier, status, created_at, updated_at, created_by, updated_by`

func (r *rateRepository) Upsert(ctx context.Context, entry *rate.RateEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO rate_entries (` + rateColumns + `)
		VALUES (:id, :size, :level, :category, :price_per_tier, :status, :created_at, :updated_at, :created_by, :updated_by)
		ON CONFLICT (size, level, category) WHERE status = 'active'
		DO UPDATE SET
			price_per_tier = EXCLUDED.price_per_tier,
			updated_at = EXCLUDED.updated_at,
			updated_by = EXCLUDED.updated_by`

	if _, err := r.db.NamedExecContext(ctx, query, entry); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to save rate entry").
			WithReportableDetails(map[string]any{
				"size":     entry.Size,
				"level":    entry.Level,
				"category": entry.Category,
			}).
			Mark(ierr.ErrDatabase)
	}

	return nil
}

func (r *rateRepository) Get(ctx context.Context, id string) (*rate.RateEntry, error) {
	var entry rate.RateEntry
	query := `SELECT ` + rateColumns + ` FROM rate_entries WHERE id = $1 AND status != 'deleted'`

	if err := r.db.GetContext(ctx, &entry, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.WithError(err).
				WithHintf("Rate entry %s was not found", id).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to load rate entry").
			Mark(ierr.ErrDatabase)
	}

	return &entry, nil
}

func (r *rateRepository) List(ctx context.Context) ([]*rate.RateEntry, error) {
	entries := []*rate.RateEntry{}
	query := `SELECT ` + rateColumns + ` FROM rate_entries WHERE status = 'active' ORDER BY size, level, category`

	if err := r.db.SelectContext(ctx, &entries, query); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list rate entries").
			Mark(ierr.ErrDatabase)
	}

	return entries, nil
}

func (r *rateRepository) ListBySizes(ctx context.Context, sizes []string) ([]*rate.RateEntry, error) {
	if len(sizes) == 0 {
		return []*rate.RateEntry{}, nil
	}

	query, args, err := sqlx.In(
		`SELECT `+rateColumns+` FROM rate_entries WHERE status = 'active' AND size IN (?) ORDER BY size, level, category`,
		sizes,
	)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to build rate query").
			Mark(ierr.ErrSystem)
	}

	entries := []*rate.RateEntry{}
	if err := r.db.SelectContext(ctx, &entries, r.db.Rebind(query), args...); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list rate entries").
			WithReportableDetails(map[string]any{"sizes": sizes}).
			Mark(ierr.ErrDatabase)
	}

	return entries, nil
}

func (r *rateRepository) Delete(ctx context.Context, id string) error {
	query := `UPDATE rate_entries SET status = 'deleted', updated_at = NOW(), updated_by = $2 WHERE id = $1 AND status != 'deleted'`

	result, err := r.db.ExecContext(ctx, query, id, types.GetUserID(ctx))
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete rate entry").
			Mark(ierr.ErrDatabase)
	}

	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return ierr.NewError("rate entry not found").
			WithHintf("Rate entry %s was not found", id).
			Mark(ierr.ErrNotFound)
	}

	return nil
}
