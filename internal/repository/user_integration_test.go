//go:build integration

package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/fintrack/fintrack/internal/testutil"
)

// ============================================================================
// User Repository Integration Tests
// ============================================================================

func TestIntegrationUserRepository_CreateUser(t *testing.T) {
	ctx, repo := newRepositoryTestEnv(t)

	user := testutil.NewTestUser(t)

	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	retrieved, err := repo.GetUserByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetUserByID failed: %v", err)
	}

	if retrieved.Email != user.Email {
		t.Errorf("Email mismatch: got %q, want %q", retrieved.Email, user.Email)
	}
	if retrieved.FirstName != user.FirstName {
		t.Errorf("FirstName mismatch: got %q, want %q", retrieved.FirstName, user.FirstName)
	}
	if retrieved.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestIntegrationUserRepository_GetUserByID_NotFound(t *testing.T) {
	ctx, repo := newRepositoryTestEnv(t)

	_, err := repo.GetUserByID(ctx, uuid.New())
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound, got: %v", err)
	}
}

func TestIntegrationUserRepository_ListUsers(t *testing.T) {
	ctx, repo := newRepositoryTestEnv(t)

	for i := 0; i < 3; i++ {
		if err := repo.CreateUser(ctx, testutil.NewTestUser(t)); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}
	}

	users, err := repo.ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}

	if len(users) != 3 {
		t.Errorf("Expected 3 users, got %d", len(users))
	}
}

func TestIntegrationUserRepository_UpdateUser_Partial(t *testing.T) {
	ctx, repo := newRepositoryTestEnv(t)

	user := testutil.NewTestUser(t)
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	newFirst := "Updated"
	updated, err := repo.UpdateUser(ctx, user.ID, UserPatch{FirstName: &newFirst})
	if err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}

	if updated.FirstName != newFirst {
		t.Errorf("FirstName mismatch: got %q, want %q", updated.FirstName, newFirst)
	}
	// Untouched fields survive the patch.
	if updated.LastName != user.LastName {
		t.Errorf("LastName changed: got %q, want %q", updated.LastName, user.LastName)
	}
	if updated.Email != user.Email {
		t.Errorf("Email changed: got %q, want %q", updated.Email, user.Email)
	}
	if !updated.UpdatedAt.After(user.UpdatedAt) {
		t.Error("UpdatedAt should advance on update")
	}
}

func TestIntegrationUserRepository_UpdateUser_NotFound(t *testing.T) {
	ctx, repo := newRepositoryTestEnv(t)

	name := "Ghost"
	_, err := repo.UpdateUser(ctx, uuid.New(), UserPatch{FirstName: &name})
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound, got: %v", err)
	}
}

func TestIntegrationUserRepository_DeleteUser(t *testing.T) {
	ctx, repo := newRepositoryTestEnv(t)

	user := testutil.NewTestUser(t)
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	if err := repo.DeleteUser(ctx, user.ID); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}

	_, err := repo.GetUserByID(ctx, user.ID)
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound after delete, got: %v", err)
	}

	if err := repo.DeleteUser(ctx, user.ID); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound on second delete, got: %v", err)
	}
}

func TestIntegrationUserRepository_DeleteUser_CascadesRecords(t *testing.T) {
	ctx, repo := newRepositoryTestEnv(t)

	user := testutil.NewTestUser(t)
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	income := testutil.NewTestIncome(t, user.ID, "100.00", testDate(2023, 1, 1))
	if err := repo.CreateIncome(ctx, income); err != nil {
		t.Fatalf("CreateIncome failed: %v", err)
	}
	expense := testutil.NewTestExpense(t, user.ID, "25.00", testDate(2023, 1, 2))
	if err := repo.CreateExpense(ctx, expense); err != nil {
		t.Fatalf("CreateExpense failed: %v", err)
	}

	if err := repo.DeleteUser(ctx, user.ID); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}

	if _, err := repo.GetIncomeByID(ctx, income.ID, user.ID); !errors.Is(err, ErrIncomeNotFound) {
		t.Errorf("Expected income cascade delete, got: %v", err)
	}
	if _, err := repo.GetExpenseByID(ctx, expense.ID, user.ID); !errors.Is(err, ErrExpenseNotFound) {
		t.Errorf("Expected expense cascade delete, got: %v", err)
	}
}

// ============================================================================
// Shared Test Environment
// ============================================================================

func newRepositoryTestEnv(t *testing.T) (context.Context, *Repository) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}

	ctx := context.Background()
	dbURL := testutil.RequireEnv(t, "DATABASE_URL")

	repo, err := New(ctx, dbURL)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(repo.Close)

	unlock, err := testutil.AcquireDBLock(ctx, repo.Pool())
	if err != nil {
		t.Fatalf("acquire db lock: %v", err)
	}
	t.Cleanup(func() {
		_ = unlock()
	})

	if err := testutil.ResetSchema(ctx, repo.Pool()); err != nil {
		t.Fatalf("reset schema: %v", err)
	}

	return ctx, repo
}
