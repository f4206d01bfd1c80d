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

// NodeTrackerService is the interface that wraps the node-level
// operations of the session facade
type NodeTrackerService interface {
	// ListNodes retrieves the full node set ordered by order index
	//
	// "ctx" is the context for the request.
	//
	// Returns the ordered node list and an error if any.
	ListNodes(ctx context.Context) ([]models.Node, error)
	// CreateNode appends a node at the end of the ordering
	//
	// "ctx" is the context for the request.
	// "name" is the display label.
	// "kind" is the node kind.
	//
	// Returns the refreshed node list and an error if any.
	CreateNode(ctx context.Context, name string, kind models.NodeKind) ([]models.Node, error)
	// DeleteNode removes a node and its child videos
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the node.
	//
	// Returns the refreshed node list and an error if any.
	DeleteNode(ctx context.Context, id int) ([]models.Node, error)
	// MoveNode swaps a node with its adjacent neighbor
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the node.
	// "direction" is "up" or "down".
	//
	// Returns the refreshed node list and an error if any.
	MoveNode(ctx context.Context, id int, direction models.MoveDirection) ([]models.Node, error)
	// SetProgress stores a directly-set progress value
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the node.
	// "progress" is the percentage to store.
	//
	// Returns the refreshed node list and an error if any.
	SetProgress(ctx context.Context, id, progress int) ([]models.Node, error)
	// MarkUpTo marks the first upTo nodes complete and resets the rest
	//
	// "ctx" is the context for the request.
	// "upTo" is the 1-indexed position up to which nodes are complete.
	//
	// Returns the refreshed node list and an error if any.
	MarkUpTo(ctx context.Context, upTo int) ([]models.Node, error)
	// SaveNotes replaces a node's notes
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the node.
	// "notes" is the new notes text.
	//
	// Returns the refreshed node list and an error if any.
	SaveNotes(ctx context.Context, id int, notes string) ([]models.Node, error)
	// SetResumePoint records where playback stopped
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the node.
	// "videoRef" is the video reference.
	// "position" is the playback offset ("mm:ss" or seconds).
	//
	// Returns the refreshed node list and an error if any.
	SetResumePoint(ctx context.Context, id int, videoRef, position string) ([]models.Node, error)
	// ResumeLink formats the stored resume point into a playable URL
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the node.
	//
	// Returns the URL and an error if any.
	ResumeLink(ctx context.Context, id int) (string, error)
	// GetStreak retrieves recent activity counts for a node
	//
	// "ctx" is the context for the request.
	// "nodeID" is the node to query (0 for the global aggregate).
	// "days" is the maximum number of dates to return.
	//
	// Returns the entries and an error if any.
	GetStreak(ctx context.Context, nodeID, days int) ([]models.StreakEntry, error)
}

// NodeHandler handles HTTP requests for node operations
type NodeHandler struct {
	BaseHandler
	service NodeTrackerService
}

// NewNodeHandler creates a new node handler
func NewNodeHandler(svc NodeTrackerService, logger *zap.Logger) *NodeHandler {
	return &NodeHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all node handler routes
func (h *NodeHandler) RegisterRoutes(r chi.Router) {
	r.Route("/nodes", func(r chi.Router) {
		r.Get("/", h.ListNodes)
		r.Post("/", h.CreateNode)
		r.Post("/mark-up-to", h.MarkUpTo)
		r.Delete("/{id}", h.DeleteNode)
		r.Post("/{id}/move", h.MoveNode)
		r.Put("/{id}/progress", h.SetProgress)
		r.Put("/{id}/notes", h.SaveNotes)
		r.Put("/{id}/resume", h.SetResumePoint)
		r.Get("/{id}/resume-link", h.ResumeLink)
	})
	r.Get("/streak", h.GetStreak)
}

// ListNodes handles GET /nodes
// @Summary List nodes
// @Description Get the full node set ordered by order index
// @Tags nodes
// @Produce json
// @Success 200 {object} models.NodeListResponse "Ordered nodes"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /nodes [get]
func (h *NodeHandler) ListNodes(w http.ResponseWriter, r *http.Request) {
	nodes, err := h.service.ListNodes(r.Context())
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, models.NodeListResponse{Nodes: nodes})
}

// CreateNode handles POST /nodes
// @Summary Create a node
// @Description Append a new learning node at the end of the ordering
// @Tags nodes
// @Accept json
// @Produce json
// @Param request body models.CreateNodeRequest true "Node to create"
// @Success 201 {object} models.NodeListResponse "Refreshed node list"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /nodes [post]
func (h *NodeHandler) CreateNode(w http.ResponseWriter, r *http.Request) {
	var req models.CreateNodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" {
		h.RespondError(w, http.StatusBadRequest, "name is required")
		return
	}
	if !req.Kind.Valid() {
		h.RespondError(w, http.StatusBadRequest, "kind must be simple, custom or playlist")
		return
	}

	nodes, err := h.service.CreateNode(r.Context(), req.Name, req.Kind)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, models.NodeListResponse{Nodes: nodes})
}

// DeleteNode handles DELETE /nodes/{id}
// @Summary Delete a node
// @Description Remove a node and its child videos
// @Tags nodes
// @Produce json
// @Param id path int true "Node ID"
// @Success 200 {object} models.NodeListResponse "Refreshed node list"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 404 {object} map[string]string "Node not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /nodes/{id} [delete]
func (h *NodeHandler) DeleteNode(w http.ResponseWriter, r *http.Request) {
	id, ok := h.nodeID(w, r)
	if !ok {
		return
	}

	nodes, err := h.service.DeleteNode(r.Context(), id)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, models.NodeListResponse{Nodes: nodes})
}

// MoveNode handles POST /nodes/{id}/move
// @Summary Move a node
// @Description Swap a node with its adjacent neighbor; a move with no neighbor is a no-op
// @Tags nodes
// @Accept json
// @Produce json
// @Param id path int true "Node ID"
// @Param request body models.MoveNodeRequest true "Move direction"
// @Success 200 {object} models.NodeListResponse "Refreshed node list"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 404 {object} map[string]string "Node not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /nodes/{id}/move [post]
func (h *NodeHandler) MoveNode(w http.ResponseWriter, r *http.Request) {
	id, ok := h.nodeID(w, r)
	if !ok {
		return
	}

	var req models.MoveNodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !req.Direction.Valid() {
		h.RespondError(w, http.StatusBadRequest, "direction must be up or down")
		return
	}

	nodes, err := h.service.MoveNode(r.Context(), id, req.Direction)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, models.NodeListResponse{Nodes: nodes})
}

// SetProgress handles PUT /nodes/{id}/progress
// @Summary Set node progress
// @Description Directly set a simple node's progress percentage
// @Tags nodes
// @Accept json
// @Produce json
// @Param id path int true "Node ID"
// @Param request body models.SetProgressRequest true "Progress value"
// @Success 200 {object} models.NodeListResponse "Refreshed node list"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 404 {object} map[string]string "Node not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /nodes/{id}/progress [put]
func (h *NodeHandler) SetProgress(w http.ResponseWriter, r *http.Request) {
	id, ok := h.nodeID(w, r)
	if !ok {
		return
	}

	var req models.SetProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	nodes, err := h.service.SetProgress(r.Context(), id, req.Progress)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, models.NodeListResponse{Nodes: nodes})
}

// MarkUpTo handles POST /nodes/mark-up-to
// @Summary Mark nodes up to a position
// @Description Set the first N nodes (by order) to 100 percent and the rest to 0
// @Tags nodes
// @Accept json
// @Produce json
// @Param request body models.MarkUpToRequest true "Position"
// @Success 200 {object} models.NodeListResponse "Refreshed node list"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /nodes/mark-up-to [post]
func (h *NodeHandler) MarkUpTo(w http.ResponseWriter, r *http.Request) {
	var req models.MarkUpToRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	nodes, err := h.service.MarkUpTo(r.Context(), req.UpTo)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, models.NodeListResponse{Nodes: nodes})
}

// SaveNotes handles PUT /nodes/{id}/notes
// @Summary Save node notes
// @Description Replace a node's free-text notes
// @Tags nodes
// @Accept json
// @Produce json
// @Param id path int true "Node ID"
// @Param request body models.SaveNotesRequest true "Notes"
// @Success 200 {object} models.NodeListResponse "Refreshed node list"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 404 {object} map[string]string "Node not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /nodes/{id}/notes [put]
func (h *NodeHandler) SaveNotes(w http.ResponseWriter, r *http.Request) {
	id, ok := h.nodeID(w, r)
	if !ok {
		return
	}

	var req models.SaveNotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	nodes, err := h.service.SaveNotes(r.Context(), id, req.Notes)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, models.NodeListResponse{Nodes: nodes})
}

// SetResumePoint handles PUT /nodes/{id}/resume
// @Summary Set resume point
// @Description Record the video reference and position where playback stopped
// @Tags nodes
// @Accept json
// @Produce json
// @Param id path int true "Node ID"
// @Param request body models.SetResumePointRequest true "Resume point"
// @Success 200 {object} models.NodeListResponse "Refreshed node list"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 404 {object} map[string]string "Node not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /nodes/{id}/resume [put]
func (h *NodeHandler) SetResumePoint(w http.ResponseWriter, r *http.Request) {
	id, ok := h.nodeID(w, r)
	if !ok {
		return
	}

	var req models.SetResumePointRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.VideoRef == "" {
		h.RespondError(w, http.StatusBadRequest, "videoRef is required")
		return
	}

	nodes, err := h.service.SetResumePoint(r.Context(), id, req.VideoRef, req.Position)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, models.NodeListResponse{Nodes: nodes})
}

// ResumeLink handles GET /nodes/{id}/resume-link
// @Summary Get resume link
// @Description Format the stored resume point into a playable URL for the external opener
// @Tags nodes
// @Produce json
// @Param id path int true "Node ID"
// @Success 200 {object} models.ResumeLinkResponse "Resume URL"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 404 {object} map[string]string "Node not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /nodes/{id}/resume-link [get]
func (h *NodeHandler) ResumeLink(w http.ResponseWriter, r *http.Request) {
	id, ok := h.nodeID(w, r)
	if !ok {
		return
	}

	link, err := h.service.ResumeLink(r.Context(), id)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, models.ResumeLinkResponse{URL: link})
}

// GetStreak handles GET /streak
// @Summary Get streak
// @Description Get recent per-day activity counts for a node, or the global aggregate for nodeId 0
// @Tags streak
// @Produce json
// @Param nodeId query int false "Node ID (default: 0, the global aggregate)"
// @Param days query int false "Number of days (default: 30)"
// @Success 200 {object} models.StreakResponse "Streak entries"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /streak [get]
func (h *NodeHandler) GetStreak(w http.ResponseWriter, r *http.Request) {
	nodeID := 0
	if nodeIDStr := r.URL.Query().Get("nodeId"); nodeIDStr != "" {
		parsed, err := strconv.Atoi(nodeIDStr)
		if err != nil {
			h.RespondError(w, http.StatusBadRequest, "invalid nodeId")
			return
		}
		nodeID = parsed
	}

	days := 0
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil {
			h.RespondError(w, http.StatusBadRequest, "invalid days")
			return
		}
		days = parsed
	}

	entries, err := h.service.GetStreak(r.Context(), nodeID, days)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, models.StreakResponse{NodeID: nodeID, Entries: entries})
}

// nodeID parses the {id} URL parameter, responding with a 400 on failure
func (h *BaseHandler) nodeID(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
