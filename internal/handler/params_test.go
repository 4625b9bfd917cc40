package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/fintrack/fintrack/internal/handler/dto"
)

// Malformed path ids must be rejected before the service is touched,
// so these handlers are wired with no service at all.
func TestMalformedPathIDs(t *testing.T) {
	userHandler := NewUserHandler(nil, testLogger())
	incomeHandler := NewIncomeHandler(nil, testLogger())
	expenseHandler := NewExpenseHandler(nil, testLogger())

	r := chi.NewRouter()
	r.Route("/api/users/{userID}", func(r chi.Router) {
		r.Get("/", userHandler.Get)
		r.Get("/income/{incomeID}", incomeHandler.Get)
		r.Get("/expenses/{expenseID}", expenseHandler.Get)
	})

	tests := []struct {
		name      string
		path      string
		wantError string
	}{
		{"bad_user_id", "/api/users/not-a-uuid", "Invalid user ID format"},
		{"bad_income_id", "/api/users/a67b9e6e-4d8a-45f0-9c3e-1f2a3b4c5d6e/income/xyz", "Invalid income ID format"},
		{"bad_expense_id", "/api/users/a67b9e6e-4d8a-45f0-9c3e-1f2a3b4c5d6e/expenses/42", "Invalid expense ID format"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, test.path, nil)
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}

			var response dto.ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if response.Error != test.wantError {
				t.Errorf("error = %q, want %q", response.Error, test.wantError)
			}
			if response.Code != "VALIDATION_ERROR" {
				t.Errorf("code = %s, want VALIDATION_ERROR", response.Code)
			}
		})
	}
}
