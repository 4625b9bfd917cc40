package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestCreateExpenseValidation(t *testing.T) {
	t.Parallel()

	svc := &ExpenseService{}

	valid := CreateExpenseInput{
		UserID:   uuid.New(),
		ItemName: "Coffee",
		Amount:   "3.50",
		Date:     "2023-01-01",
	}

	tests := []struct {
		name       string
		mutate     func(*CreateExpenseInput)
		wantReason string
	}{
		{"empty_item_name", func(in *CreateExpenseInput) { in.ItemName = "" }, "Item name cannot be empty"},
		{"empty_amount", func(in *CreateExpenseInput) { in.Amount = "   " }, "Amount cannot be empty"},
		{"malformed_amount", func(in *CreateExpenseInput) { in.Amount = "3,50" }, "Invalid amount format"},
		{"zero_amount", func(in *CreateExpenseInput) { in.Amount = "0.00" }, "Amount must be greater than zero"},
		{"sub_cent_amount", func(in *CreateExpenseInput) { in.Amount = "0.009" }, "Amount cannot have more than 2 decimal places"},
		{"empty_date", func(in *CreateExpenseInput) { in.Date = "" }, "Date cannot be empty"},
		{"malformed_date", func(in *CreateExpenseInput) { in.Date = "2023-13-45" }, "Invalid date format"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			input := valid
			test.mutate(&input)

			_, err := svc.CreateExpense(context.Background(), input)
			assertValidation(t, err, test.wantReason)
		})
	}
}

func TestUpdateExpenseValidation(t *testing.T) {
	t.Parallel()

	svc := &ExpenseService{}

	tests := []struct {
		name       string
		input      UpdateExpenseInput
		wantReason string
	}{
		{"supplied_empty_item_name", UpdateExpenseInput{ItemName: strPtr(" ")}, "Item name cannot be empty"},
		{"supplied_empty_amount", UpdateExpenseInput{Amount: strPtr("")}, "Amount cannot be empty if provided"},
		{"malformed_amount", UpdateExpenseInput{Amount: strPtr("x")}, "Invalid amount format"},
		{"non_positive_amount", UpdateExpenseInput{Amount: strPtr("0")}, "Amount must be greater than zero"},
		{"malformed_date", UpdateExpenseInput{Date: strPtr("yesterday")}, "Invalid date format"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := svc.UpdateExpense(context.Background(), uuid.New(), uuid.New(), test.input)
			assertValidation(t, err, test.wantReason)
		})
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	date, err := parseDate("2023-02-14")
	if err != nil {
		t.Fatalf("parseDate failed: %v", err)
	}
	if got := date.Format(dateLayout); got != "2023-02-14" {
		t.Errorf("date = %s, want 2023-02-14", got)
	}

	if _, err := parseDate(" 2023-02-14 "); err != nil {
		t.Errorf("expected surrounding whitespace to be tolerated, got %v", err)
	}
}
