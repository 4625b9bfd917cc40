//go:build integration

package repository

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/fintrack/fintrack/internal/testutil"
)

// ============================================================================
// Expense Repository Integration Tests
// ============================================================================

func TestIntegrationExpenseRepository_CreateAndGet(t *testing.T) {
	ctx, repo := newRepositoryTestEnv(t)

	user := testutil.NewTestUser(t)
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	expense := testutil.NewTestExpense(t, user.ID, "45.99", testDate(2023, 6, 15))
	if err := repo.CreateExpense(ctx, expense); err != nil {
		t.Fatalf("CreateExpense failed: %v", err)
	}

	retrieved, err := repo.GetExpenseByID(ctx, expense.ID, user.ID)
	if err != nil {
		t.Fatalf("GetExpenseByID failed: %v", err)
	}

	if retrieved.ItemName != expense.ItemName {
		t.Errorf("ItemName mismatch: got %q, want %q", retrieved.ItemName, expense.ItemName)
	}
	if !retrieved.Amount.Equal(decimal.RequireFromString("45.99")) {
		t.Errorf("Amount mismatch: got %s, want 45.99", retrieved.Amount)
	}
}

func TestIntegrationExpenseRepository_OwnershipScoping(t *testing.T) {
	ctx, repo := newRepositoryTestEnv(t)

	owner := testutil.NewTestUser(t)
	other := testutil.NewTestUser(t)
	if err := repo.CreateUser(ctx, owner); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if err := repo.CreateUser(ctx, other); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	expense := testutil.NewTestExpense(t, owner.ID, "20.00", testDate(2023, 7, 1))
	if err := repo.CreateExpense(ctx, expense); err != nil {
		t.Fatalf("CreateExpense failed: %v", err)
	}

	if _, err := repo.GetExpenseByID(ctx, expense.ID, other.ID); !errors.Is(err, ErrExpenseNotFound) {
		t.Errorf("Expected ErrExpenseNotFound for foreign owner, got: %v", err)
	}
	if err := repo.DeleteExpense(ctx, expense.ID, other.ID); !errors.Is(err, ErrExpenseNotFound) {
		t.Errorf("Expected ErrExpenseNotFound on foreign delete, got: %v", err)
	}
}

func TestIntegrationExpenseRepository_UpdateExpense_Partial(t *testing.T) {
	ctx, repo := newRepositoryTestEnv(t)

	user := testutil.NewTestUser(t)
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	expense := testutil.NewTestExpense(t, user.ID, "30.00", testDate(2023, 8, 1))
	if err := repo.CreateExpense(ctx, expense); err != nil {
		t.Fatalf("CreateExpense failed: %v", err)
	}

	newItem := "Dining"
	newDate := testDate(2023, 8, 15)
	updated, err := repo.UpdateExpense(ctx, expense.ID, user.ID, ExpensePatch{
		ItemName: &newItem,
		Date:     &newDate,
	})
	if err != nil {
		t.Fatalf("UpdateExpense failed: %v", err)
	}

	if updated.ItemName != newItem {
		t.Errorf("ItemName mismatch: got %q, want %q", updated.ItemName, newItem)
	}
	if !updated.Date.Equal(newDate) {
		t.Errorf("Date mismatch: got %v, want %v", updated.Date, newDate)
	}
	if !updated.Amount.Equal(expense.Amount) {
		t.Errorf("Amount changed: got %s, want %s", updated.Amount, expense.Amount)
	}
}

func TestIntegrationExpenseRepository_DeleteExpense(t *testing.T) {
	ctx, repo := newRepositoryTestEnv(t)

	user := testutil.NewTestUser(t)
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	expense := testutil.NewTestExpense(t, user.ID, "12.50", testDate(2023, 9, 1))
	if err := repo.CreateExpense(ctx, expense); err != nil {
		t.Fatalf("CreateExpense failed: %v", err)
	}

	if err := repo.DeleteExpense(ctx, expense.ID, user.ID); err != nil {
		t.Fatalf("DeleteExpense failed: %v", err)
	}

	if _, err := repo.GetExpenseByID(ctx, expense.ID, user.ID); !errors.Is(err, ErrExpenseNotFound) {
		t.Errorf("Expected ErrExpenseNotFound after delete, got: %v", err)
	}
}
