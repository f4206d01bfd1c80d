// Package handlers implements the HTTP boundary of the tracker
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/studytrack/backend/internal/models"
	"go.uber.org/zap"
)

// BaseHandler provides common handler functionality
type BaseHandler struct {
	Logger *zap.Logger
}

// RespondJSON sends a JSON response
func (h *BaseHandler) RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// RespondError sends an error JSON response
func (h *BaseHandler) RespondError(w http.ResponseWriter, status int, message string) {
	h.RespondJSON(w, status, map[string]string{"error": message})
}

// RespondServiceError logs the failure and maps it onto the error
// taxonomy: missing nodes/videos are 404, external service failures are
// 502 with a user-visible message, everything else is a 500
func (h *BaseHandler) RespondServiceError(w http.ResponseWriter, err error) {
	h.Logger.Error("request failed", zap.Error(err))

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrNodeNotFound), errors.Is(err, models.ErrVideoNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrExternalService):
		status = http.StatusBadGateway
	}

	h.RespondError(w, status, err.Error())
}
