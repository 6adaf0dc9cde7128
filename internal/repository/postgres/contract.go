package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/adspacehq/adspace/internal/domain/contract"
	ierr "github.com/adspacehq/adspace/internal/errors"
	"github.com/adspacehq/adspace/internal/logger"
	"github.com/adspacehq/adspace/internal/types"
)

type contractRepository struct {
	db  *sqlx.DB
	log *logger.Logger
}

func NewContractRepository(db *sqlx.DB, log *logger.Logger) contract.Repository {
	return &contractRepository{db: db, log: log}
}

const contractColumns = `id, contract_number, customer_name, customer_category, start_date, end_date,
	placements, manual_base_total, discount, total_cost, discount_amount, installments,
	status, created_at, updated_at, created_by, updated_by`

func (r *contractRepository) Create(ctx context.Context, c *contract.Contract) error {
	if err := c.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO contracts (` + contractColumns + `)
		VALUES (:id, :contract_number, :customer_name, :customer_category, :start_date, :end_date,
			:placements, :manual_base_total, :discount, :total_cost, :discount_amount, :installments,
			:status, :created_at, :updated_at, :created_by, :updated_by)`

	if _, err := r.db.NamedExecContext(ctx, query, c); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to save contract").
			WithReportableDetails(map[string]any{"contract_number": c.ContractNumber}).
			Mark(ierr.ErrDatabase)
	}

	return nil
}

func (r *contractRepository) Get(ctx context.Context, id string) (*contract.Contract, error) {
	var c contract.Contract
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE id = $1 AND status != 'deleted'`

	if err := r.db.GetContext(ctx, &c, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.WithError(err).
				WithHintf("Contract %s was not found", id).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to load contract").
			Mark(ierr.ErrDatabase)
	}

	return &c, nil
}

func (r *contractRepository) List(ctx context.Context) ([]*contract.Contract, error) {
	contracts := []*contract.Contract{}
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE status != 'deleted' ORDER BY created_at DESC`

	if err := r.db.SelectContext(ctx, &contracts, query); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list contracts").
			Mark(ierr.ErrDatabase)
	}

	return contracts, nil
}

func (r *contractRepository) Update(ctx context.Context, c *contract.Contract) error {
	if err := c.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE contracts SET
			customer_name = :customer_name,
			customer_category = :customer_category,
			start_date = :start_date,
			end_date = :end_date,
			placements = :placements,
			manual_base_total = :manual_base_total,
			discount = :discount,
			total_cost = :total_cost,
			discount_amount = :discount_amount,
			installments = :installments,
			status = :status,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id AND status != 'deleted'`

	result, err := r.db.NamedExecContext(ctx, query, c)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update contract").
			Mark(ierr.ErrDatabase)
	}

	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return ierr.NewError("contract not found").
			WithHintf("Contract %s was not found", c.ID).
			Mark(ierr.ErrNotFound)
	}

	return nil
}

func (r *contractRepository) Delete(ctx context.Context, id string) error {
	query := `UPDATE contracts SET status = 'deleted', updated_at = NOW(), updated_by = $2 WHERE id = $1 AND status != 'deleted'`

	result, err := r.db.ExecContext(ctx, query, id, types.GetUserID(ctx))
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete contract").
			Mark(ierr.ErrDatabase)
	}

	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return ierr.NewError("contract not found").
			WithHintf("Contract %s was not found", id).
			Mark(ierr.ErrNotFound)
	}

	return nil
}
