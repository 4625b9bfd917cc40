package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fintrack/fintrack/internal/handler/dto"
	"github.com/fintrack/fintrack/internal/service"
)

// IncomeHandler handles HTTP requests for income operations. All
// routes are nested under the owning user, and the owner id from the
// path scopes every operation.
type IncomeHandler struct {
	svc    *service.IncomeService
	logger *slog.Logger
}

// NewIncomeHandler creates a new IncomeHandler.
func NewIncomeHandler(svc *service.IncomeService, logger *slog.Logger) *IncomeHandler {
	return &IncomeHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /api/users/{userID}/income.
func (h *IncomeHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userID", "user")
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	records, err := h.svc.ListIncome(r.Context(), userID)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToIncomeListResponse(records))
}

// Get handles GET /api/users/{userID}/income/{incomeID}.
func (h *IncomeHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userID", "user")
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	incomeID, err := parseIDParam(r, "incomeID", "income")
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	record, err := h.svc.GetIncome(r.Context(), incomeID, userID)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToIncomeResponse(record))
}

// Create handles POST /api/users/{userID}/income.
func (h *IncomeHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userID", "user")
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	var req dto.CreateIncomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	record, err := h.svc.CreateIncome(r.Context(), service.CreateIncomeInput{
		UserID:      userID,
		Source:      req.Source,
		Amount:      req.Amount,
		Date:        req.Date,
		Description: req.Description,
	})
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("income_created", "income_id", record.ID, "user_id", userID)

	writeJSON(w, http.StatusCreated, dto.ToIncomeResponse(record))
}

// Update handles PATCH /api/users/{userID}/income/{incomeID}.
func (h *IncomeHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userID", "user")
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	incomeID, err := parseIDParam(r, "incomeID", "income")
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	var req dto.UpdateIncomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	record, err := h.svc.UpdateIncome(r.Context(), incomeID, userID, service.UpdateIncomeInput{
		Source:      req.Source,
		Amount:      req.Amount,
		Date:        req.Date,
		Description: req.Description,
	})
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("income_updated", "income_id", record.ID, "user_id", userID)

	writeJSON(w, http.StatusOK, dto.ToIncomeResponse(record))
}

// Delete handles DELETE /api/users/{userID}/income/{incomeID}.
func (h *IncomeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userID", "user")
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	incomeID, err := parseIDParam(r, "incomeID", "income")
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.svc.DeleteIncome(r.Context(), incomeID, userID); err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("income_deleted", "income_id", incomeID, "user_id", userID)

	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Income record deleted successfully"})
}
