package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"ezysalad/internal/model"
	"ezysalad/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// Create handles POST /api/orders requests.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	order, err := h.service.CreateOrder(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"order":   order,
	})
}

// Lookup handles GET /api/orders?orderNumber=...&phone=... requests.
func (h *OrderHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	orderNumber := r.URL.Query().Get("orderNumber")
	phone := r.URL.Query().Get("phone")

	if orderNumber == "" || phone == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "order number and phone are required", h.logger)
		return
	}

	result, err := h.service.Lookup(r.Context(), orderNumber, phone)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"order":   result.Order,
		"items":   result.Items,
	})
}

// AdminUpdateStatus handles PATCH /api/admin/orders/{id} requests.
func (h *OrderHandler) AdminUpdateStatus(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimPrefix(r.URL.Path, "/api/admin/orders/")
	orderID, err := uuid.Parse(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid order ID format", h.logger)
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	order, err := h.service.UpdateStatus(r.Context(), orderID, req.Status)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"order": map[string]interface{}{
			"id":          order.ID,
			"orderNumber": order.OrderNumber,
			"status":      order.Status,
		},
	})
}
