package models

// ChildVideo represents a single watchable item owned by exactly one node.
// Custom videos store a URL in Source; playlist videos store the catalog
// video identifier in Source plus its Title.
type ChildVideo struct {
	ID           int    `json:"id"`
	NodeID       int    `json:"nodeId"`
	Source       string `json:"source"`
	Title        string `json:"title,omitempty"`
	ResumeOffset string `json:"resumeOffset,omitempty"`
	Watched      bool   `json:"watched"`
}

// CatalogVideo is a (videoId, title) pair returned by the external catalog
type CatalogVideo struct {
	VideoID string `json:"videoId"`
	Title   string `json:"title"`
}

// AddVideoRequest represents a request to add a video link to a node
type AddVideoRequest struct {
	Source       string `json:"source"`
	Title        string `json:"title,omitempty"`
	ResumeOffset string `json:"resumeOffset,omitempty"`
}

// SetWatchedRequest represents a request to set a video's watched flag
type SetWatchedRequest struct {
	Watched bool `json:"watched"`
}

// SetWatchedResponse reports the transition so the caller can update
// its view optimistically; no node list is pushed for watched toggles
type SetWatchedResponse struct {
	Previous bool `json:"previous"`
	Changed  bool `json:"changed"`
	Progress int  `json:"progress"`
}

// MarkAllRequest represents a request to set every child of a node
// to the same watched value
type MarkAllRequest struct {
	Watched bool `json:"watched"`
}

// SyncPlaylistRequest represents a request to resync a node's children
// from an external catalog playlist
type SyncPlaylistRequest struct {
	PlaylistID string `json:"playlistId"`
}
