package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fintrack/fintrack/internal/model"
	"github.com/fintrack/fintrack/internal/repository"
)

const minPasswordLength = 6

// UserService handles user business logic.
type UserService struct {
	repo *repository.Repository
}

// NewUserService creates a new UserService.
func NewUserService(repo *repository.Repository) *UserService {
	return &UserService{repo: repo}
}

// CreateUserInput defines input for creating a user. All fields are
// required.
type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// UpdateUserInput defines a partial update. Nil fields are left
// untouched; a supplied field must still pass create-time validation.
type UpdateUserInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
}

// ListUsers retrieves all users.
func (s *UserService) ListUsers(ctx context.Context) ([]*model.User, error) {
	return s.repo.ListUsers(ctx)
}

// GetUser retrieves a user by ID.
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

// CreateUser validates the input, assigns id and timestamps, and
// persists the new user.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*model.User, error) {
	if err := validateNewUser(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &model.User{
		ID:        uuid.New(),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  input.Password,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// UpdateUser validates the supplied fields and applies a partial
// update. Absent fields are untouched; updated_at is always refreshed.
func (s *UserService) UpdateUser(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*model.User, error) {
	patch, err := buildUserPatch(input)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.UpdateUser(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

// DeleteUser removes a user by ID.
func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	return nil
}

// validateNewUser applies create-time rules before any store access.
func validateNewUser(input CreateUserInput) error {
	if strings.TrimSpace(input.FirstName) == "" {
		return validationError("First name cannot be empty")
	}

	if strings.TrimSpace(input.LastName) == "" {
		return validationError("Last name cannot be empty")
	}

	if err := validateEmail(input.Email); err != nil {
		return err
	}

	if len(input.Password) < minPasswordLength {
		return validationError("Password must be at least 6 characters long")
	}

	return nil
}

// validateEmail applies the minimal shape check the API contract
// promises: an address must contain both '@' and '.'.
func validateEmail(email string) error {
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return validationError("Invalid email format")
	}
	return nil
}

// buildUserPatch validates supplied fields and converts them into a
// repository patch. A supplied empty value for a required field is an
// error, mirroring create-time rules.
func buildUserPatch(input UpdateUserInput) (repository.UserPatch, error) {
	var patch repository.UserPatch

	if input.FirstName != nil {
		if strings.TrimSpace(*input.FirstName) == "" {
			return patch, validationError("First name cannot be empty")
		}
		patch.FirstName = input.FirstName
	}

	if input.LastName != nil {
		if strings.TrimSpace(*input.LastName) == "" {
			return patch, validationError("Last name cannot be empty")
		}
		patch.LastName = input.LastName
	}

	if input.Email != nil {
		if err := validateEmail(*input.Email); err != nil {
			return patch, err
		}
		patch.Email = input.Email
	}

	if input.Password != nil {
		if len(*input.Password) < minPasswordLength {
			return patch, validationError("Password must be at least 6 characters long")
		}
		patch.Password = input.Password
	}

	return patch, nil
}
