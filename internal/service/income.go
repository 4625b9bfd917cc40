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

// IncomeService handles income business logic. Every operation except
// create is scoped to the owning user.
type IncomeService struct {
	repo *repository.Repository
}

// NewIncomeService creates a new IncomeService.
func NewIncomeService(repo *repository.Repository) *IncomeService {
	return &IncomeService{repo: repo}
}

// CreateIncomeInput defines input for creating an income record.
// Amount and Date arrive as wire strings and are validated here,
// before any store access.
type CreateIncomeInput struct {
	UserID      uuid.UUID
	Source      string
	Amount      string
	Date        string
	Description *string
}

// UpdateIncomeInput defines a partial update. Nil fields are left
// untouched.
type UpdateIncomeInput struct {
	Source      *string
	Amount      *string
	Date        *string
	Description *string
}

// ListIncome retrieves all income records for a user, most recent
// date first.
func (s *IncomeService) ListIncome(ctx context.Context, userID uuid.UUID) ([]*model.Income, error) {
	return s.repo.ListIncomeByUser(ctx, userID)
}

// GetIncome retrieves one income record scoped to its owner.
func (s *IncomeService) GetIncome(ctx context.Context, id, userID uuid.UUID) (*model.Income, error) {
	record, err := s.repo.GetIncomeByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrIncomeNotFound) {
			return nil, ErrIncomeNotFound
		}
		return nil, err
	}

	return record, nil
}

// CreateIncome validates the input, assigns id and timestamps, and
// persists the new record.
func (s *IncomeService) CreateIncome(ctx context.Context, input CreateIncomeInput) (*model.Income, error) {
	if strings.TrimSpace(input.Source) == "" {
		return nil, validationError("Source cannot be empty")
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
	record := &model.Income{
		ID:          uuid.New(),
		UserID:      input.UserID,
		Source:      input.Source,
		Amount:      amount,
		Date:        date,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.CreateIncome(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create income: %w", err)
	}

	return record, nil
}

// UpdateIncome validates the supplied fields and applies a partial
// update scoped to the owner.
func (s *IncomeService) UpdateIncome(ctx context.Context, id, userID uuid.UUID, input UpdateIncomeInput) (*model.Income, error) {
	var patch repository.IncomePatch

	if input.Source != nil {
		if strings.TrimSpace(*input.Source) == "" {
			return nil, validationError("Source cannot be empty")
		}
		patch.Source = input.Source
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

	record, err := s.repo.UpdateIncome(ctx, id, userID, patch)
	if err != nil {
		if errors.Is(err, repository.ErrIncomeNotFound) {
			return nil, ErrIncomeNotFound
		}
		return nil, err
	}

	return record, nil
}

// DeleteIncome removes one income record scoped to the owner.
func (s *IncomeService) DeleteIncome(ctx context.Context, id, userID uuid.UUID) error {
	if err := s.repo.DeleteIncome(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrIncomeNotFound) {
			return ErrIncomeNotFound
		}
		return err
	}

	return nil
}
