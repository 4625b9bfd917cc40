package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/fintrack/fintrack/internal/model"
)

// ErrUserNotFound is returned when no user row matches the requested id.
var ErrUserNotFound = errors.New("user not found")

// UserPatch describes a partial update to a user. Nil fields are left
// untouched; a non-nil field is written even if it points at the zero
// value, so "not supplied" and "supplied as empty" stay distinct.
type UserPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
}

const userColumns = "id, first_name, last_name, email, password, created_at, updated_at"

// ListUsers retrieves all users in store order.
func (r *Repository) ListUsers(ctx context.Context) ([]*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

// GetUserByID retrieves a user by their ID.
func (r *Repository) GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return user, nil
}

// CreateUser inserts a new user. The caller assigns id and timestamps;
// the record is refreshed from the stored row so callers see exactly
// what later reads will return.
func (r *Repository) CreateUser(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (id, first_name, last_name, email, password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + userColumns

	stored, err := scanUser(r.pool.QueryRow(ctx, query,
		user.ID,
		user.FirstName,
		user.LastName,
		user.Email,
		user.Password,
		user.CreatedAt,
		user.UpdatedAt,
	))
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	*user = *stored
	return nil
}

// UpdateUser applies a partial update and returns the post-update row.
// updated_at is always refreshed, even for an empty patch.
func (r *Repository) UpdateUser(ctx context.Context, id uuid.UUID, patch UserPatch) (*model.User, error) {
	sets := []string{"updated_at = $1"}
	args := []any{time.Now().UTC()}
	argIndex := 2

	if patch.FirstName != nil {
		sets = append(sets, fmt.Sprintf("first_name = $%d", argIndex))
		args = append(args, *patch.FirstName)
		argIndex++
	}
	if patch.LastName != nil {
		sets = append(sets, fmt.Sprintf("last_name = $%d", argIndex))
		args = append(args, *patch.LastName)
		argIndex++
	}
	if patch.Email != nil {
		sets = append(sets, fmt.Sprintf("email = $%d", argIndex))
		args = append(args, *patch.Email)
		argIndex++
	}
	if patch.Password != nil {
		sets = append(sets, fmt.Sprintf("password = $%d", argIndex))
		args = append(args, *patch.Password)
		argIndex++
	}

	query := fmt.Sprintf(
		"UPDATE users SET %s WHERE id = $%d RETURNING %s",
		joinSets(sets), argIndex, userColumns,
	)
	args = append(args, id)

	user, err := scanUser(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// DeleteUser removes a user row. The affected-row count is the
// authoritative signal: zero rows means not found regardless of
// driver success.
func (r *Repository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

// scanUser scans a single row into a User model.
func scanUser(row pgx.Row) (*model.User, error) {
	var user model.User
	err := row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.Password,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	return &user, err
}
