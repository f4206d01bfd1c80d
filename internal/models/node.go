package models

// NodeKind determines how a node's progress is derived
type NodeKind string

const (
	// NodeKindSimple nodes have their progress set directly by the user
	NodeKindSimple NodeKind = "simple"
	// NodeKindCustom nodes derive progress from manually added video links
	NodeKindCustom NodeKind = "custom"
	// NodeKindPlaylist nodes derive progress from playlist-sourced videos
	NodeKindPlaylist NodeKind = "playlist"
)

// Valid reports whether the kind is one of the supported node kinds
func (k NodeKind) Valid() bool {
	switch k {
	case NodeKindSimple, NodeKindCustom, NodeKindPlaylist:
		return true
	}
	return false
}

// Node represents a tracked learning unit
type Node struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Kind         NodeKind `json:"kind"`
	Progress     int      `json:"progress"`
	LastVideoRef string   `json:"lastVideoRef,omitempty"`
	LastPosition string   `json:"lastPosition,omitempty"`
	Notes        string   `json:"notes,omitempty"`
	OrderIndex   int      `json:"orderIndex"`
}

// MoveDirection is the direction of an adjacent-swap move
type MoveDirection string

const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

// Valid reports whether the direction is "up" or "down"
func (d MoveDirection) Valid() bool {
	return d == MoveUp || d == MoveDown
}

// CreateNodeRequest represents a request to create a node
type CreateNodeRequest struct {
	Name string   `json:"name"`
	Kind NodeKind `json:"kind"`
}

// MoveNodeRequest represents a request to move a node one slot up or down
type MoveNodeRequest struct {
	Direction MoveDirection `json:"direction"`
}

// SetProgressRequest represents a request to set a simple node's progress
type SetProgressRequest struct {
	Progress int `json:"progress"`
}

// MarkUpToRequest represents a request to mark the first N nodes complete
type MarkUpToRequest struct {
	UpTo int `json:"upTo"`
}

// SaveNotesRequest represents a request to replace a node's notes
type SaveNotesRequest struct {
	Notes string `json:"notes"`
}

// SetResumePointRequest represents a request to record where playback stopped
type SetResumePointRequest struct {
	VideoRef string `json:"videoRef"`
	Position string `json:"position"`
}

// ResumeLinkResponse carries the formatted resume URL for the external opener
type ResumeLinkResponse struct {
	URL string `json:"url"`
}

// NodeListResponse is the full ordered node set pushed after mutations
type NodeListResponse struct {
	Nodes []Node `json:"nodes"`
}
