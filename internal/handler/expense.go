package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fintrack/fintrack/internal/handler/dto"
	"github.com/fintrack/fintrack/internal/service"
)

// ExpenseHandler handles HTTP requests for expense operations. All
// routes are nested under the owning user, and the owner id from the
// path scopes every operation.
type ExpenseHandler struct {
	svc    *service.ExpenseService
	logger *slog.Logger
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(svc *service.ExpenseService, logger *slog.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /api/users/{userID}/expenses.
func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userID", "user")
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	records, err := h.svc.ListExpenses(r.Context(), userID)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToExpenseListResponse(records))
}

// Get handles GET /api/users/{userID}/expenses/{expenseID}.
func (h *ExpenseHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userID", "user")
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	expenseID, err := parseIDParam(r, "expenseID", "expense")
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	record, err := h.svc.GetExpense(r.Context(), expenseID, userID)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToExpenseResponse(record))
}

// Create handles POST /api/users/{userID}/expenses.
func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userID", "user")
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	var req dto.CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	record, err := h.svc.CreateExpense(r.Context(), service.CreateExpenseInput{
		UserID:      userID,
		ItemName:    req.ItemName,
		Amount:      req.Amount,
		Date:        req.Date,
		Description: req.Description,
	})
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("expense_created", "expense_id", record.ID, "user_id", userID)

	writeJSON(w, http.StatusCreated, dto.ToExpenseResponse(record))
}

// Update handles PATCH /api/users/{userID}/expenses/{expenseID}.
func (h *ExpenseHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userID", "user")
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	expenseID, err := parseIDParam(r, "expenseID", "expense")
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	var req dto.UpdateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	record, err := h.svc.UpdateExpense(r.Context(), expenseID, userID, service.UpdateExpenseInput{
		ItemName:    req.ItemName,
		Amount:      req.Amount,
		Date:        req.Date,
		Description: req.Description,
	})
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("expense_updated", "expense_id", record.ID, "user_id", userID)

	writeJSON(w, http.StatusOK, dto.ToExpenseResponse(record))
}

// Delete handles DELETE /api/users/{userID}/expenses/{expenseID}.
func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userID", "user")
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	expenseID, err := parseIDParam(r, "expenseID", "expense")
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.svc.DeleteExpense(r.Context(), expenseID, userID); err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("expense_deleted", "expense_id", expenseID, "user_id", userID)

	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Expense record deleted successfully"})
}
