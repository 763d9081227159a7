package handler

import (
	"encoding/json"
	"net/http"

	"ezysalad/internal/model"
	"ezysalad/internal/service"

	"github.com/rs/zerolog"
)

// PaymentHandler handles payment-related HTTP requests.
type PaymentHandler struct {
	service service.PaymentService
	logger  zerolog.Logger
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(service service.PaymentService, logger zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		logger:  logger.With().Str("handler", "payment").Logger(),
	}
}

// Checkout handles GET /api/payments/checkout requests. It returns the widget
// identifiers and a fresh payment id for one attempt.
func (h *PaymentHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	cfg, err := h.service.CheckoutConfig()
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, cfg)
}

// Complete handles POST /api/payments/complete requests. A verification
// failure is a structured 400, not a server error; the order is already
// cancelled by the time the response is written.
func (h *PaymentHandler) Complete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	var req model.CompletePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	result, err := h.service.Complete(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	if result.Status == service.ResultFailed {
		writeJSON(w, http.StatusBadRequest, result)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
