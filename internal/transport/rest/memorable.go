package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/memorable-quantities/internal/domain"
	"github.com/heartmarshall/memorable-quantities/internal/service/memorable"
)

type memorableService interface {
	Generate(ctx context.Context, input memorable.GenerateInput) (*domain.ComparisonResult, error)
}

// MemorableHandler serves the comparison endpoint.
type MemorableHandler struct {
	svc memorableService
	log *slog.Logger
}

// NewMemorableHandler creates a MemorableHandler.
func NewMemorableHandler(svc memorableService, logger *slog.Logger) *MemorableHandler {
	return &MemorableHandler{svc: svc, log: logger.With("handler", "memorable")}
}

type memorableRequest struct {
	UserText       string `json:"userText"`
	ComparisonType string `json:"comparisonType"`
	Language       string `json:"language"`
}

// Generate handles POST /api/memorable.
func (h *MemorableHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req memorableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, r, fmt.Errorf("decode request body: %w", err))
		return
	}

	result, err := h.svc.Generate(r.Context(), memorable.GenerateInput{
		UserText:       req.UserText,
		ComparisonType: req.ComparisonType,
		Language:       req.Language,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *MemorableHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrValidation) {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "Missing userText"})
		return
	}
	h.log.ErrorContext(r.Context(), "comparison failed", slog.String("error", err.Error()))
	writeFailure(w, err)
}
