package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/studytrack/backend/internal/models"
	"go.uber.org/zap"
)

// VideoTrackerService is the interface that wraps the child-video
// operations of the session facade
type VideoTrackerService interface {
	// ListVideos retrieves the child videos of a node
	//
	// "ctx" is the context for the request.
	// "nodeID" is the ID of the owning node.
	//
	// Returns the videos and an error if any.
	ListVideos(ctx context.Context, nodeID int) ([]models.ChildVideo, error)
	// AddVideo appends an unwatched child video to a node
	//
	// "ctx" is the context for the request.
	// "nodeID" is the ID of the owning node.
	// "source" is the video reference.
	// "title" is the display title.
	// "resumeOffset" is the optional starting position within the video.
	//
	// Returns the refreshed node list and an error if any.
	AddVideo(ctx context.Context, nodeID int, source, title, resumeOffset string) ([]models.Node, error)
	// RemoveVideo deletes a child video and recomputes the owner's progress
	//
	// "ctx" is the context for the request.
	// "videoID" is the ID of the video.
	//
	// Returns the refreshed node list and an error if any.
	RemoveVideo(ctx context.Context, videoID int) ([]models.Node, error)
	// ToggleWatched sets a video's watched flag and records streak activity
	//
	// "ctx" is the context for the request.
	// "videoID" is the ID of the video.
	// "watched" is the new watched state.
	//
	// Returns the previous state, whether it changed, the owner's
	// recomputed progress, and an error if any.
	ToggleWatched(ctx context.Context, videoID int, watched bool) (*models.SetWatchedResponse, error)
	// MarkAllWatched sets every child video of a node to the same state
	//
	// "ctx" is the context for the request.
	// "nodeID" is the ID of the owning node.
	// "watched" is the state to apply.
	//
	// Returns the refreshed node list and an error if any.
	MarkAllWatched(ctx context.Context, nodeID int, watched bool) ([]models.Node, error)
	// SyncPlaylist replaces a node's videos with the remote playlist contents
	//
	// "ctx" is the context for the request.
	// "nodeID" is the ID of the owning node.
	// "playlistID" is the remote playlist identifier.
	//
	// Returns the refreshed node list and an error if any.
	SyncPlaylist(ctx context.Context, nodeID int, playlistID string) ([]models.Node, error)
}

// VideoHandler handles HTTP requests for child-video operations
type VideoHandler struct {
	BaseHandler
	service VideoTrackerService
}

// NewVideoHandler creates a new video handler
func NewVideoHandler(svc VideoTrackerService, logger *zap.Logger) *VideoHandler {
	return &VideoHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all video handler routes
func (h *VideoHandler) RegisterRoutes(r chi.Router) {
	r.Route("/nodes/{id}/videos", func(r chi.Router) {
		r.Get("/", h.ListVideos)
		r.Post("/", h.AddVideo)
		r.Post("/mark-all", h.MarkAll)
		r.Post("/sync", h.SyncPlaylist)
	})
	r.Route("/videos/{videoId}", func(r chi.Router) {
		r.Delete("/", h.RemoveVideo)
		r.Put("/watched", h.SetWatched)
	})
}

// ListVideos handles GET /nodes/{id}/videos
// @Summary List child videos
// @Description Get the child videos of a node
// @Tags videos
// @Produce json
// @Param id path int true "Node ID"
// @Success 200 {array} models.ChildVideo "Child videos"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 404 {object} map[string]string "Node not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /nodes/{id}/videos [get]
func (h *VideoHandler) ListVideos(w http.ResponseWriter, r *http.Request) {
	id, ok := h.nodeID(w, r)
	if !ok {
		return
	}

	videos, err := h.service.ListVideos(r.Context(), id)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, videos)
}

// AddVideo handles POST /nodes/{id}/videos
// @Summary Add a child video
// @Description Append an unwatched child video to a node and recompute its progress
// @Tags videos
// @Accept json
// @Produce json
// @Param id path int true "Node ID"
// @Param request body models.AddVideoRequest true "Video to add"
// @Success 201 {object} models.NodeListResponse "Refreshed node list"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 404 {object} map[string]string "Node not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /nodes/{id}/videos [post]
func (h *VideoHandler) AddVideo(w http.ResponseWriter, r *http.Request) {
	id, ok := h.nodeID(w, r)
	if !ok {
		return
	}

	var req models.AddVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Source == "" {
		h.RespondError(w, http.StatusBadRequest, "source is required")
		return
	}

	nodes, err := h.service.AddVideo(r.Context(), id, req.Source, req.Title, req.ResumeOffset)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, models.NodeListResponse{Nodes: nodes})
}

// RemoveVideo handles DELETE /videos/{videoId}
// @Summary Remove a child video
// @Description Delete a child video and recompute the owner's progress
// @Tags videos
// @Produce json
// @Param videoId path int true "Video ID"
// @Success 200 {object} models.NodeListResponse "Refreshed node list"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 404 {object} map[string]string "Video not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /videos/{videoId} [delete]
func (h *VideoHandler) RemoveVideo(w http.ResponseWriter, r *http.Request) {
	id, ok := h.videoID(w, r)
	if !ok {
		return
	}

	nodes, err := h.service.RemoveVideo(r.Context(), id)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, models.NodeListResponse{Nodes: nodes})
}

// SetWatched handles PUT /videos/{videoId}/watched
// @Summary Set watched state
// @Description Toggle a video's watched flag; records streak activity when the state changes
// @Tags videos
// @Accept json
// @Produce json
// @Param videoId path int true "Video ID"
// @Param request body models.SetWatchedRequest true "Watched state"
// @Success 200 {object} models.SetWatchedResponse "Toggle outcome"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 404 {object} map[string]string "Video not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /videos/{videoId}/watched [put]
func (h *VideoHandler) SetWatched(w http.ResponseWriter, r *http.Request) {
	id, ok := h.videoID(w, r)
	if !ok {
		return
	}

	var req models.SetWatchedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.ToggleWatched(r.Context(), id, req.Watched)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, result)
}

// MarkAll handles POST /nodes/{id}/videos/mark-all
// @Summary Mark all videos
// @Description Set every child video of a node to the same watched state
// @Tags videos
// @Accept json
// @Produce json
// @Param id path int true "Node ID"
// @Param request body models.MarkAllRequest true "Watched state"
// @Success 200 {object} models.NodeListResponse "Refreshed node list"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 404 {object} map[string]string "Node not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /nodes/{id}/videos/mark-all [post]
func (h *VideoHandler) MarkAll(w http.ResponseWriter, r *http.Request) {
	id, ok := h.nodeID(w, r)
	if !ok {
		return
	}

	var req models.MarkAllRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	nodes, err := h.service.MarkAllWatched(r.Context(), id, req.Watched)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, models.NodeListResponse{Nodes: nodes})
}

// SyncPlaylist handles POST /nodes/{id}/videos/sync
// @Summary Sync a playlist
// @Description Replace a node's videos with the current contents of a remote playlist, all unwatched
// @Tags videos
// @Accept json
// @Produce json
// @Param id path int true "Node ID"
// @Param request body models.SyncPlaylistRequest true "Playlist to sync"
// @Success 200 {object} models.NodeListResponse "Refreshed node list"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 404 {object} map[string]string "Node not found"
// @Failure 502 {object} map[string]string "Upstream catalog failure"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /nodes/{id}/videos/sync [post]
func (h *VideoHandler) SyncPlaylist(w http.ResponseWriter, r *http.Request) {
	id, ok := h.nodeID(w, r)
	if !ok {
		return
	}

	var req models.SyncPlaylistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.PlaylistID == "" {
		h.RespondError(w, http.StatusBadRequest, "playlistId is required")
		return
	}

	nodes, err := h.service.SyncPlaylist(r.Context(), id, req.PlaylistID)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, models.NodeListResponse{Nodes: nodes})
}

func (h *BaseHandler) videoID(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := chi.URLParam(r, "videoId")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid video id")
		return 0, false
	}
	return id, true
}
