package services

import (
	"context"
	"fmt"

	"github.com/studytrack/backend/internal/models"
)

// VideoRepository defines methods for child video data access
type VideoRepository interface {
	// GetByID retrieves a child video by its ID
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the video.
	//
	// Returns the video and an error if any.
	GetByID(ctx context.Context, id int) (*models.ChildVideo, error)
	// GetByNodeID retrieves all child videos of a node
	//
	// "ctx" is the context for the request.
	// "nodeID" is the ID of the owning node.
	//
	// Returns the videos and an error if any.
	GetByNodeID(ctx context.Context, nodeID int) ([]models.ChildVideo, error)
	// Create inserts a new child video
	//
	// "ctx" is the context for the request.
	// "video" is the video to create; its ID is set on success.
	//
	// Returns an error if any.
	Create(ctx context.Context, video *models.ChildVideo) error
	// Delete removes a child video by ID
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the video.
	//
	// Returns an error if any.
	Delete(ctx context.Context, id int) error
	// UpdateWatched sets a video's watched flag
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the video.
	// "watched" is the new flag value.
	//
	// Returns an error if any.
	UpdateWatched(ctx context.Context, id int, watched bool) error
	// MarkAll sets every child of a node to the same watched value
	//
	// "ctx" is the context for the request.
	// "nodeID" is the ID of the owning node.
	// "watched" is the flag value to apply.
	//
	// Returns the number of rows that flipped and an error if any.
	MarkAll(ctx context.Context, nodeID int, watched bool) (int, error)
	// ReplaceAll atomically clears and repopulates a node's children
	//
	// "ctx" is the context for the request.
	// "nodeID" is the ID of the owning node.
	// "videos" is the full catalog result set.
	//
	// Returns an error if any.
	ReplaceAll(ctx context.Context, nodeID int, videos []models.CatalogVideo) error
	// Counts returns the total and watched child counts for a node
	//
	// "ctx" is the context for the request.
	// "nodeID" is the ID of the owning node.
	//
	// Returns total, watched and an error if any.
	Counts(ctx context.Context, nodeID int) (total, watched int, err error)
}

// NodeProgressRepository is the slice of node data access the video
// collection needs: existence checks and eager progress writes
type NodeProgressRepository interface {
	// GetByID retrieves a node by its ID
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the node.
	//
	// Returns the node and an error if any.
	GetByID(ctx context.Context, id int) (*models.Node, error)
	// UpdateProgress stores a progress value for a node
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the node.
	// "progress" is the value to store.
	//
	// Returns an error if any.
	UpdateProgress(ctx context.Context, id, progress int) error
}

type videoService struct {
	videoRepo VideoRepository
	nodeRepo  NodeProgressRepository
}

// NewVideoService creates a new video collection service
func NewVideoService(videoRepo VideoRepository, nodeRepo NodeProgressRepository) *videoService {
	return &videoService{
		videoRepo: videoRepo,
		nodeRepo:  nodeRepo,
	}
}

// ListVideos returns all child videos of a node
func (s *videoService) ListVideos(ctx context.Context, nodeID int) ([]models.ChildVideo, error) {
	if _, err := s.nodeRepo.GetByID(ctx, nodeID); err != nil {
		return nil, err
	}
	return s.videoRepo.GetByNodeID(ctx, nodeID)
}

// AddVideo inserts a new unwatched child and recomputes the node's progress
func (s *videoService) AddVideo(ctx context.Context, nodeID int, source, title, resumeOffset string) (*models.ChildVideo, error) {
	node, err := s.nodeRepo.GetByID(ctx, nodeID)
	if err != nil {
		return nil, err
	}

	video := &models.ChildVideo{
		NodeID:       nodeID,
		Source:       source,
		Title:        title,
		ResumeOffset: resumeOffset,
		Watched:      false,
	}
	if err := s.videoRepo.Create(ctx, video); err != nil {
		return nil, fmt.Errorf("failed to add video: %w", err)
	}

	if _, err := s.recompute(ctx, node); err != nil {
		return nil, err
	}

	return video, nil
}

// RemoveVideo deletes a child video and recomputes the owner's progress
func (s *videoService) RemoveVideo(ctx context.Context, videoID int) error {
	video, err := s.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return err
	}

	if err := s.videoRepo.Delete(ctx, videoID); err != nil {
		return err
	}

	node, err := s.nodeRepo.GetByID(ctx, video.NodeID)
	if err != nil {
		return err
	}
	if _, err := s.recompute(ctx, node); err != nil {
		return err
	}

	return nil
}

// SetWatched sets a video's watched flag and recomputes the owner's
// progress. Returns the prior flag value, the owning node ID and the
// fresh progress so the caller can derive the streak delta and update
// its view.
func (s *videoService) SetWatched(ctx context.Context, videoID int, watched bool) (previous bool, nodeID, progress int, err error) {
	video, err := s.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return false, 0, 0, err
	}

	previous = video.Watched
	if previous != watched {
		if err := s.videoRepo.UpdateWatched(ctx, videoID, watched); err != nil {
			return previous, video.NodeID, 0, err
		}
	}

	node, err := s.nodeRepo.GetByID(ctx, video.NodeID)
	if err != nil {
		return previous, video.NodeID, 0, err
	}
	progress, err = s.recompute(ctx, node)
	if err != nil {
		return previous, video.NodeID, 0, err
	}

	return previous, video.NodeID, progress, nil
}

// MarkAll sets every child of a node to the same watched value and
// recomputes progress. Returns how many children actually flipped.
func (s *videoService) MarkAll(ctx context.Context, nodeID int, watched bool) (int, error) {
	node, err := s.nodeRepo.GetByID(ctx, nodeID)
	if err != nil {
		return 0, err
	}

	changed, err := s.videoRepo.MarkAll(ctx, nodeID, watched)
	if err != nil {
		return 0, err
	}

	if _, err := s.recompute(ctx, node); err != nil {
		return 0, err
	}

	return changed, nil
}

// ReplaceAll resyncs a node's children from a catalog result set. All new
// rows start unwatched, so progress drops to 0 unless the set is empty
// (which also yields 0).
func (s *videoService) ReplaceAll(ctx context.Context, nodeID int, videos []models.CatalogVideo) error {
	node, err := s.nodeRepo.GetByID(ctx, nodeID)
	if err != nil {
		return err
	}

	if err := s.videoRepo.ReplaceAll(ctx, nodeID, videos); err != nil {
		return err
	}

	if _, err := s.recompute(ctx, node); err != nil {
		return err
	}

	return nil
}

// recompute derives and stores the node's progress from its current child
// counts, so progress is never observably stale after a mutation. Simple
// nodes keep their directly-set value.
func (s *videoService) recompute(ctx context.Context, node *models.Node) (int, error) {
	if node.Kind == models.NodeKindSimple {
		return node.Progress, nil
	}

	total, watched, err := s.videoRepo.Counts(ctx, node.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to count videos: %w", err)
	}

	progress := CalculateProgress(watched, total)
	if err := s.nodeRepo.UpdateProgress(ctx, node.ID, progress); err != nil {
		return 0, fmt.Errorf("failed to store progress: %w", err)
	}

	return progress, nil
}
