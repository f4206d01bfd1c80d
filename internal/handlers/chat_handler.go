package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/studytrack/backend/internal/models"
	"go.uber.org/zap"
)

// ChatTrackerService is the interface that wraps the AI chat operation
type ChatTrackerService interface {
	// Chat forwards a message to the AI backend and returns its reply
	//
	// "ctx" is the context for the request.
	// "message" is the user message.
	//
	// Returns the assistant reply and an error if any.
	Chat(ctx context.Context, message string) (string, error)
}

// ChatHandler handles HTTP requests for the AI chat proxy
type ChatHandler struct {
	BaseHandler
	service ChatTrackerService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(svc ChatTrackerService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all chat handler routes
func (h *ChatHandler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.Chat)
}

// Chat handles POST /chat
// @Summary Ask the study assistant
// @Description Forward a message to the AI backend and return its reply
// @Tags chat
// @Accept json
// @Produce json
// @Param request body models.ChatRequest true "Message"
// @Success 200 {object} models.ChatResponse "Assistant reply"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 502 {object} map[string]string "Upstream AI failure"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /chat [post]
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Message == "" {
		h.RespondError(w, http.StatusBadRequest, "message is required")
		return
	}

	reply, err := h.service.Chat(r.Context(), req.Message)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, models.ChatResponse{Reply: reply})
}
