package handler

import (
	"encoding/json"
	"net/http"

	"ezysalad/internal/mailer"
	"ezysalad/internal/model"

	"github.com/rs/zerolog"
)

// ContactHandler relays contact-form messages to the operator mailbox.
type ContactHandler struct {
	sender    mailer.Sender
	recipient string
	logger    zerolog.Logger
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(sender mailer.Sender, recipient string, logger zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		sender:    sender,
		recipient: recipient,
		logger:    logger.With().Str("handler", "contact").Logger(),
	}
}

// Submit handles POST /api/contact requests.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if req.Name == "" || req.Email == "" || req.Message == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "name, email and message are required", h.logger)
		return
	}

	body := mailer.BuildContactBody(req.Name, req.Email, req.Phone, req.Message)
	if err := h.sender.Send(h.recipient, mailer.ContactSubject(req.Name), body); err != nil {
		h.logger.Error().Err(err).Msg("failed to relay contact message")
		writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to send message", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
