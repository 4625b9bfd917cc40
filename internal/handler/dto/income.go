package dto

import (
	"time"

	"github.com/fintrack/fintrack/internal/model"
)

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

// CreateIncomeRequest represents the request body for creating an
// income record. Amount and Date are string-typed on the wire and
// validated before persistence.
type CreateIncomeRequest struct {
	Source      string  `json:"source"`
	Amount      string  `json:"amount"`
	Date        string  `json:"date"`
	Description *string `json:"description,omitempty"`
}

// UpdateIncomeRequest represents a partial update to an income record.
// Absent fields stay nil and leave the stored value untouched.
type UpdateIncomeRequest struct {
	Source      *string `json:"source,omitempty"`
	Amount      *string `json:"amount,omitempty"`
	Date        *string `json:"date,omitempty"`
	Description *string `json:"description,omitempty"`
}

// IncomeResponse represents an income record in API responses.
// Amount is rendered as an exact decimal string.
type IncomeResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Source      string    `json:"source"`
	Amount      string    `json:"amount"`
	Date        string    `json:"date"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToIncomeResponse converts an Income model to IncomeResponse DTO.
func ToIncomeResponse(record *model.Income) *IncomeResponse {
	return &IncomeResponse{
		ID:          record.ID.String(),
		UserID:      record.UserID.String(),
		Source:      record.Source,
		Amount:      record.Amount.String(),
		Date:        record.Date.Format(dateLayout),
		Description: record.Description,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}

// ToIncomeListResponse converts a slice of Income models to response DTOs.
func ToIncomeListResponse(records []*model.Income) []IncomeResponse {
	responses := make([]IncomeResponse, len(records))
	for i, record := range records {
		responses[i] = *ToIncomeResponse(record)
	}
	return responses
}
