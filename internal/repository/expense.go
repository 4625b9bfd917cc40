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

// ErrExpenseNotFound is returned when no expense row matches the
// requested (id, owner) pair.
var ErrExpenseNotFound = errors.New("expense record not found")

// ExpensePatch describes a partial update to an expense record.
// Nil fields are left untouched.
type ExpensePatch struct {
	ItemName    *string
	Amount      *decimal.Decimal
	Date        *time.Time
	Description *string
}

const expenseColumns = "id, user_id, item_name, amount, date, description, created_at, updated_at"

// ListExpensesByUser retrieves all expense records for one user,
// most recent date first.
func (r *Repository) ListExpensesByUser(ctx context.Context, userID uuid.UUID) ([]*model.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE user_id = $1 ORDER BY date DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var records []*model.Expense
	for rows.Next() {
		record, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}

	return records, nil
}

// GetExpenseByID retrieves one expense record scoped to its owner.
func (r *Repository) GetExpenseByID(ctx context.Context, id, userID uuid.UUID) (*model.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1 AND user_id = $2`

	record, err := scanExpense(r.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense by ID: %w", err)
	}

	return record, nil
}

// CreateExpense inserts a new expense record. The caller assigns id
// and timestamps; the record is refreshed from the stored row so
// callers see exactly what later reads will return.
func (r *Repository) CreateExpense(ctx context.Context, record *model.Expense) error {
	query := `
		INSERT INTO expenses (id, user_id, item_name, amount, date, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + expenseColumns

	stored, err := scanExpense(r.pool.QueryRow(ctx, query,
		record.ID,
		record.UserID,
		record.ItemName,
		record.Amount,
		record.Date,
		record.Description,
		record.CreatedAt,
		record.UpdatedAt,
	))
	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}

	*record = *stored
	return nil
}

// UpdateExpense applies a partial update scoped to the owner and
// returns the post-update row. updated_at is always refreshed.
func (r *Repository) UpdateExpense(ctx context.Context, id, userID uuid.UUID, patch ExpensePatch) (*model.Expense, error) {
	sets := []string{"updated_at = $1"}
	args := []any{time.Now().UTC()}
	argIndex := 2

	if patch.ItemName != nil {
		sets = append(sets, fmt.Sprintf("item_name = $%d", argIndex))
		args = append(args, *patch.ItemName)
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
		"UPDATE expenses SET %s WHERE id = $%d AND user_id = $%d RETURNING %s",
		joinSets(sets), argIndex, argIndex+1, expenseColumns,
	)
	args = append(args, id, userID)

	record, err := scanExpense(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	return record, nil
}

// DeleteExpense removes one expense record scoped to the owner.
func (r *Repository) DeleteExpense(ctx context.Context, id, userID uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM expenses WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrExpenseNotFound
	}

	return nil
}

// scanExpense scans a single row into an Expense model.
func scanExpense(row pgx.Row) (*model.Expense, error) {
	var record model.Expense
	err := row.Scan(
		&record.ID,
		&record.UserID,
		&record.ItemName,
		&record.Amount,
		&record.Date,
		&record.Description,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	return &record, err
}
