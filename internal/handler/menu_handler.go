package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"ezysalad/internal/model"
	"ezysalad/internal/service"

	"github.com/rs/zerolog"
)

// MenuHandler handles menu-related HTTP requests, both the public storefront
// listing and the admin catalog surface.
type MenuHandler struct {
	service service.MenuService
	logger  zerolog.Logger
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(service service.MenuService, logger zerolog.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		logger:  logger.With().Str("handler", "menu").Logger(),
	}
}

// GetCategories handles GET /api/menus requests.
func (h *MenuHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	categories, err := h.service.GetCategories(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"categories": categories})
}

// GetByID handles GET /api/menus/{id} requests.
func (h *MenuHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/menus/")
	if id == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "menu ID is required", h.logger)
		return
	}

	item, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// AdminList handles GET /api/admin/menus requests, including hidden items.
func (h *MenuHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"data": items})
}

// AdminCreate handles POST /api/admin/menus requests.
func (h *MenuHandler) AdminCreate(w http.ResponseWriter, r *http.Request) {
	var req model.MenuRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	item, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"data": item})
}

// AdminUpdate handles PUT /api/admin/menus/{id} requests.
func (h *MenuHandler) AdminUpdate(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/admin/menus/")
	if id == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "menu ID is required", h.logger)
		return
	}

	var req model.MenuRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	item, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"data": item})
}

// AdminDelete handles DELETE /api/admin/menus/{id} requests.
func (h *MenuHandler) AdminDelete(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/admin/menus/")
	if id == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "menu ID is required", h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
