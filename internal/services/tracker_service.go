package services

import (
	"context"
	"fmt"
	"time"

	"github.com/studytrack/backend/internal/models"
)

// streakDateLayout is the day key used by the streak ledger
const streakDateLayout = "2006-01-02"

// CatalogClient fetches the full video list of an external playlist
type CatalogClient interface {
	// PlaylistVideos retrieves every (videoId, title) pair of a playlist,
	// following catalog pagination.
	//
	// "ctx" is the context for the request.
	// "playlistID" is the external playlist identifier.
	//
	// Returns the videos and an error if any.
	PlaylistVideos(ctx context.Context, playlistID string) ([]models.CatalogVideo, error)
}

// ChatClient proxies a single-turn message to the external AI service
type ChatClient interface {
	// Complete sends one user message and returns the assistant reply
	//
	// "ctx" is the context for the request.
	// "message" is the user message.
	//
	// Returns the reply text and an error if any.
	Complete(ctx context.Context, message string) (string, error)
}

// trackerService is the session facade: it composes the video collection,
// node ordering, progress and streak logic per UI action, and after every
// mutating call other than a watched toggle it re-reads the full ordered
// node set so the caller's view stays trivially consistent.
type trackerService struct {
	nodes   *nodeService
	videos  *videoService
	streaks *streakService
	catalog CatalogClient
	chat    ChatClient
}

// NewTrackerService creates the session facade over the three managers
// and the external clients
func NewTrackerService(
	nodes *nodeService,
	videos *videoService,
	streaks *streakService,
	catalog CatalogClient,
	chat ChatClient,
) *trackerService {
	return &trackerService{
		nodes:   nodes,
		videos:  videos,
		streaks: streaks,
		catalog: catalog,
		chat:    chat,
	}
}

// ListNodes returns the full node set ordered by order index
func (s *trackerService) ListNodes(ctx context.Context) ([]models.Node, error) {
	return s.nodes.GetAll(ctx)
}

// CreateNode appends a node and returns the refreshed node list
func (s *trackerService) CreateNode(ctx context.Context, name string, kind models.NodeKind) ([]models.Node, error) {
	if _, err := s.nodes.CreateNode(ctx, name, kind); err != nil {
		return nil, err
	}
	return s.reload(ctx)
}

// DeleteNode removes a node with its children and returns the refreshed
// node list
func (s *trackerService) DeleteNode(ctx context.Context, id int) ([]models.Node, error) {
	if err := s.nodes.DeleteNode(ctx, id); err != nil {
		return nil, err
	}
	return s.reload(ctx)
}

// MoveNode swaps a node with its neighbor and returns the refreshed node
// list; a move with no neighbor is a no-op that still reloads
func (s *trackerService) MoveNode(ctx context.Context, id int, direction models.MoveDirection) ([]models.Node, error) {
	if err := s.nodes.MoveNode(ctx, id, direction); err != nil {
		return nil, err
	}
	return s.reload(ctx)
}

// SetProgress stores a directly-set progress value (simple nodes) and
// returns the refreshed node list
func (s *trackerService) SetProgress(ctx context.Context, id, progress int) ([]models.Node, error) {
	if err := s.nodes.SetProgress(ctx, id, progress); err != nil {
		return nil, err
	}
	return s.reload(ctx)
}

// MarkUpTo marks the first upTo nodes complete, resets the rest, and
// returns the refreshed node list
func (s *trackerService) MarkUpTo(ctx context.Context, upTo int) ([]models.Node, error) {
	if err := s.nodes.MarkUpTo(ctx, upTo); err != nil {
		return nil, err
	}
	return s.reload(ctx)
}

// SaveNotes replaces a node's notes and returns the refreshed node list
func (s *trackerService) SaveNotes(ctx context.Context, id int, notes string) ([]models.Node, error) {
	if err := s.nodes.SaveNotes(ctx, id, notes); err != nil {
		return nil, err
	}
	return s.reload(ctx)
}

// SetResumePoint records where playback stopped and returns the refreshed
// node list
func (s *trackerService) SetResumePoint(ctx context.Context, id int, videoRef, position string) ([]models.Node, error) {
	if err := s.nodes.SetResumePoint(ctx, id, videoRef, position); err != nil {
		return nil, err
	}
	return s.reload(ctx)
}

// ResumeLink formats a node's stored resume point into a playable URL
func (s *trackerService) ResumeLink(ctx context.Context, id int) (string, error) {
	return s.nodes.ResumeLink(ctx, id)
}

// ListVideos returns all child videos of a node
func (s *trackerService) ListVideos(ctx context.Context, nodeID int) ([]models.ChildVideo, error) {
	return s.videos.ListVideos(ctx, nodeID)
}

// AddVideo inserts an unwatched child video and returns the refreshed
// node list
func (s *trackerService) AddVideo(ctx context.Context, nodeID int, source, title, resumeOffset string) ([]models.Node, error) {
	if _, err := s.videos.AddVideo(ctx, nodeID, source, title, resumeOffset); err != nil {
		return nil, err
	}
	return s.reload(ctx)
}

// RemoveVideo deletes a child video and returns the refreshed node list
func (s *trackerService) RemoveVideo(ctx context.Context, videoID int) ([]models.Node, error) {
	if err := s.videos.RemoveVideo(ctx, videoID); err != nil {
		return nil, err
	}
	return s.reload(ctx)
}

// ToggleWatched sets a video's watched flag, records the streak delta for
// the transition, and reports the prior state with the fresh progress.
// No node list is pushed: the presentation layer updates optimistically.
func (s *trackerService) ToggleWatched(ctx context.Context, videoID int, watched bool) (*models.SetWatchedResponse, error) {
	previous, nodeID, progress, err := s.videos.SetWatched(ctx, videoID, watched)
	if err != nil {
		return nil, err
	}

	delta := watchDelta(previous, watched)
	if delta != 0 {
		date := time.Now().Format(streakDateLayout)
		if err := s.streaks.RecordActivity(ctx, date, nodeID, delta); err != nil {
			return nil, err
		}
	}

	return &models.SetWatchedResponse{
		Previous: previous,
		Changed:  previous != watched,
		Progress: progress,
	}, nil
}

// MarkAllWatched sets every child of a node to the same watched value,
// records the aggregate streak delta (rows flipped times the signed
// direction), and returns the refreshed node list
func (s *trackerService) MarkAllWatched(ctx context.Context, nodeID int, watched bool) ([]models.Node, error) {
	changed, err := s.videos.MarkAll(ctx, nodeID, watched)
	if err != nil {
		return nil, err
	}

	if changed > 0 {
		delta := changed
		if !watched {
			delta = -changed
		}
		date := time.Now().Format(streakDateLayout)
		if err := s.streaks.RecordActivity(ctx, date, nodeID, delta); err != nil {
			return nil, err
		}
	}

	return s.reload(ctx)
}

// SyncPlaylist resyncs a node's children from the external catalog and
// returns the refreshed node list. The fetch is a full replacement; a
// newer sync racing a slow one wins with its complete result set.
func (s *trackerService) SyncPlaylist(ctx context.Context, nodeID int, playlistID string) ([]models.Node, error) {
	videos, err := s.catalog.PlaylistVideos(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrExternalService, err)
	}

	if err := s.videos.ReplaceAll(ctx, nodeID, videos); err != nil {
		return nil, err
	}

	return s.reload(ctx)
}

// GetStreak returns the recent activity counts for a node, or the global
// aggregate for node 0
func (s *trackerService) GetStreak(ctx context.Context, nodeID, days int) ([]models.StreakEntry, error) {
	return s.streaks.GetStreak(ctx, nodeID, days)
}

// Chat proxies a single-turn message to the external AI service
func (s *trackerService) Chat(ctx context.Context, message string) (string, error) {
	reply, err := s.chat.Complete(ctx, message)
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrExternalService, err)
	}
	return reply, nil
}

// RepairOrdering renumbers all nodes to dense order indexes. Meant for a
// single pass at startup; gaps can remain from deletes in older data.
func (s *trackerService) RepairOrdering(ctx context.Context) error {
	return s.nodes.RepairOrdering(ctx)
}

// reload re-reads the full ordered node set after a mutation
func (s *trackerService) reload(ctx context.Context) ([]models.Node, error) {
	nodes, err := s.nodes.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reload nodes: %w", err)
	}
	return nodes, nil
}

// watchDelta maps a watched-flag transition to its streak delta:
// +1 for newly watched, -1 for unwatched, 0 when unchanged
func watchDelta(previous, watched bool) int {
	switch {
	case !previous && watched:
		return 1
	case previous && !watched:
		return -1
	default:
		return 0
	}
}
