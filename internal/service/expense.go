package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fintrack/fintrack/internal/model"
	"github.com/fintrack/fintrack/internal/money"
	"github.com/fintrack/fintrack/internal/repository"
)

// ExpenseService handles expense business logic. Every operation
// except create is scoped to the owning user.
type ExpenseService struct {
	repo *repository.Repository
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(repo *repository.Repository) *ExpenseService {
	return &ExpenseService{repo: repo}
}

// CreateExpenseInput defines input for creating an expense record.
// Amount and Date arrive as wire strings and are validated here,
// before any store access.
type CreateExpenseInput struct {
	UserID      uuid.UUID
	ItemName    string
	Amount      string
	Date        string
	Description *string
}

// UpdateExpenseInput defines a partial update. Nil fields are left
// untouched.
type UpdateExpenseInput struct {
	ItemName    *string
	Amount      *string
	Date        *string
	Description *string
}

// ListExpenses retrieves all expense records for a user, most recent
// date first.
func (s *ExpenseService) ListExpenses(ctx context.Context, userID uuid.UUID) ([]*model.Expense, error) {
	return s.repo.ListExpensesByUser(ctx, userID)
}

// GetExpense retrieves one expense record scoped to its owner.
func (s *ExpenseService) GetExpense(ctx context.Context, id, userID uuid.UUID) (*model.Expense, error) {
	record, err := s.repo.GetExpenseByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, err
	}

	return record, nil
}

// CreateExpense validates the input, assigns id and timestamps, and
// persists the new record.
func (s *ExpenseService) CreateExpense(ctx context.Context, input CreateExpenseInput) (*model.Expense, error) {
	if strings.TrimSpace(input.ItemName) == "" {
		return nil, validationError("Item name cannot be empty")
	}

	amount, err := money.Parse(input.Amount)
	if err != nil {
		return nil, validationError(err.Error())
	}

	date, err := parseDate(input.Date)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	record := &model.Expense{
		ID:          uuid.New(),
		UserID:      input.UserID,
		ItemName:    input.ItemName,
		Amount:      amount,
		Date:        date,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.CreateExpense(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return record, nil
}

// UpdateExpense validates the supplied fields and applies a partial
// update scoped to the owner.
func (s *ExpenseService) UpdateExpense(ctx context.Context, id, userID uuid.UUID, input UpdateExpenseInput) (*model.Expense, error) {
	var patch repository.ExpensePatch

	if input.ItemName != nil {
		if strings.TrimSpace(*input.ItemName) == "" {
			return nil, validationError("Item name cannot be empty")
		}
		patch.ItemName = input.ItemName
	}

	if input.Amount != nil {
		if strings.TrimSpace(*input.Amount) == "" {
			return nil, validationError("Amount cannot be empty if provided")
		}
		amount, err := money.Parse(*input.Amount)
		if err != nil {
			return nil, validationError(err.Error())
		}
		patch.Amount = &amount
	}

	if input.Date != nil {
		date, err := parseDate(*input.Date)
		if err != nil {
			return nil, err
		}
		patch.Date = &date
	}

	patch.Description = input.Description

	record, err := s.repo.UpdateExpense(ctx, id, userID, patch)
	if err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, err
	}

	return record, nil
}

// DeleteExpense removes one expense record scoped to the owner.
func (s *ExpenseService) DeleteExpense(ctx context.Context, id, userID uuid.UUID) error {
	if err := s.repo.DeleteExpense(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			return ErrExpenseNotFound
		}
		return err
	}

	return nil
}
