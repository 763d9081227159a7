package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"ezysalad/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, code, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: code, Message: message})
}

// writeServiceError maps a service error to an HTTP response. Domain errors
// surface their specific reason; anything else becomes a generic 500 with no
// internal detail leaked.
func writeServiceError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		status := http.StatusBadRequest
		switch domainErr.Code {
		case model.ErrCodeOrderNotFound, model.ErrCodeMenuNotFound:
			status = http.StatusNotFound
		case model.ErrCodeUnauthorised:
			status = http.StatusUnauthorized
		}
		writeError(w, status, domainErr.Code, domainErr.Message, logger)
		return
	}

	logger.Error().Err(err).Msg("unexpected service error")
	writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "An unexpected error occurred", logger)
}
