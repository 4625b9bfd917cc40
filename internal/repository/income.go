package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/fintrack/fintrack/internal/model"
)

// ErrIncomeNotFound is returned when no income row matches the
// requested (id, owner) pair. An id owned by a different user is
// reported identically to a missing id.
var ErrIncomeNotFound = errors.New("income record not found")

// IncomePatch describes a partial update to an income record.
// Nil fields are left untouched. Ownership is immutable and therefore
// not part of the patch.
type IncomePatch struct {
	Source      *string
	Amount      *decimal.Decimal
	Date        *time.Time
	Description *string
}

const incomeColumns = "id, user_id, source, amount, date, description, created_at, updated_at"

// ListIncomeByUser retrieves all income records for one user,
// most recent date first.
func (r *Repository) ListIncomeByUser(ctx context.Context, userID uuid.UUID) ([]*model.Income, error) {
	query := `SELECT ` + incomeColumns + ` FROM income WHERE user_id = $1 ORDER BY date DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list income: %w", err)
	}
	defer rows.Close()

	var records []*model.Income
	for rows.Next() {
		record, err := scanIncome(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan income: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating income: %w", err)
	}

	return records, nil
}

// GetIncomeByID retrieves one income record scoped to its owner.
func (r *Repository) GetIncomeByID(ctx context.Context, id, userID uuid.UUID) (*model.Income, error) {
	query := `SELECT ` + incomeColumns + ` FROM income WHERE id = $1 AND user_id = $2`

	record, err := scanIncome(r.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrIncomeNotFound
		}
		return nil, fmt.Errorf("failed to get income by ID: %w", err)
	}

	return record, nil
}

// CreateIncome inserts a new income record. The caller assigns id and
// timestamps; the record is refreshed from the stored row so callers
// see exactly what later reads will return.
func (r *Repository) CreateIncome(ctx context.Context, record *model.Income) error {
	query := `
		INSERT INTO income (id, user_id, source, amount, date, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + incomeColumns

	stored, err := scanIncome(r.pool.QueryRow(ctx, query,
		record.ID,
		record.UserID,
		record.Source,
		record.Amount,
		record.Date,
		record.Description,
		record.CreatedAt,
		record.UpdatedAt,
	))
	if err != nil {
		return fmt.Errorf("failed to create income: %w", err)
	}

	*record = *stored
	return nil
}

// UpdateIncome applies a partial update scoped to the owner and
// returns the post-update row. updated_at is always refreshed.
func (r *Repository) UpdateIncome(ctx context.Context, id, userID uuid.UUID, patch IncomePatch) (*model.Income, error) {
	sets := []string{"updated_at = $1"}
	args := []any{time.Now().UTC()}
	argIndex := 2

	if patch.Source != nil {
		sets = append(sets, fmt.Sprintf("source = $%d", argIndex))
		args = append(args, *patch.Source)
		argIndex++
	}
	if patch.Amount != nil {
		sets = append(sets, fmt.Sprintf("amount = $%d", argIndex))
		args = append(args, *patch.Amount)
		argIndex++
	}
	if patch.Date != nil {
		sets = append(sets, fmt.Sprintf("date = $%d", argIndex))
		args = append(args, *patch.Date)
		argIndex++
	}
	if patch.Description != nil {
		sets = append(sets, fmt.Sprintf("description = $%d", argIndex))
		args = append(args, *patch.Description)
		argIndex++
	}

	query := fmt.Sprintf(
		"UPDATE income SET %s WHERE id = $%d AND user_id = $%d RETURNING %s",
		joinSets(sets), argIndex, argIndex+1, incomeColumns,
	)
	args = append(args, id, userID)

	record, err := scanIncome(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrIncomeNotFound
		}
		return nil, fmt.Errorf("failed to update income: %w", err)
	}

	return record, nil
}

// DeleteIncome removes one income record scoped to the owner.
func (r *Repository) DeleteIncome(ctx context.Context, id, userID uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM income WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete income: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrIncomeNotFound
	}

	return nil
}

// scanIncome scans a single row into an Income model.
func scanIncome(row pgx.Row) (*model.Income, error) {
	var record model.Income
	err := row.Scan(
		&record.ID,
		&record.UserID,
		&record.Source,
		&record.Amount,
		&record.Date,
		&record.Description,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	return &record, err
}
