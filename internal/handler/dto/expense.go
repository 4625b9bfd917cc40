package dto

import (
	"time"

	"github.com/fintrack/fintrack/internal/model"
)

// CreateExpenseRequest represents the request body for creating an
// expense record. Amount and Date are string-typed on the wire and
// validated before persistence.
type CreateExpenseRequest struct {
	ItemName    string  `json:"item_name"`
	Amount      string  `json:"amount"`
	Date        string  `json:"date"`
	Description *string `json:"description,omitempty"`
}

// UpdateExpenseRequest represents a partial update to an expense
// record. Absent fields stay nil and leave the stored value untouched.
type UpdateExpenseRequest struct {
	ItemName    *string `json:"item_name,omitempty"`
	Amount      *string `json:"amount,omitempty"`
	Date        *string `json:"date,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ExpenseResponse represents an expense record in API responses.
// Amount is rendered as an exact decimal string.
type ExpenseResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	ItemName    string    `json:"item_name"`
	Amount      string    `json:"amount"`
	Date        string    `json:"date"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToExpenseResponse converts an Expense model to ExpenseResponse DTO.
func ToExpenseResponse(record *model.Expense) *ExpenseResponse {
	return &ExpenseResponse{
		ID:          record.ID.String(),
		UserID:      record.UserID.String(),
		ItemName:    record.ItemName,
		Amount:      record.Amount.String(),
		Date:        record.Date.Format(dateLayout),
		Description: record.Description,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}

// ToExpenseListResponse converts a slice of Expense models to response DTOs.
func ToExpenseListResponse(records []*model.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, len(records))
	for i, record := range records {
		responses[i] = *ToExpenseResponse(record)
	}
	return responses
}
