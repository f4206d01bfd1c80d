package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/studytrack/backend/internal/models"
)

// NodeRepository defines methods for node data access
type NodeRepository interface {
	// GetAll retrieves all nodes ordered by order index
	//
	// "ctx" is the context for the request.
	//
	// Returns the ordered node list and an error if any.
	GetAll(ctx context.Context) ([]models.Node, error)
	// GetByID retrieves a node by its ID
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the node.
	//
	// Returns the node and an error if any.
	GetByID(ctx context.Context, id int) (*models.Node, error)
	// GetByOrderIndex retrieves the node at an exact order index
	//
	// "ctx" is the context for the request.
	// "orderIndex" is the position to look up.
	//
	// Returns the node and models.ErrNodeNotFound when the slot is empty.
	GetByOrderIndex(ctx context.Context, orderIndex int) (*models.Node, error)
	// MaxOrderIndex returns the highest order index, or -1 when empty
	//
	// "ctx" is the context for the request.
	//
	// Returns the max order index and an error if any.
	MaxOrderIndex(ctx context.Context) (int, error)
	// Create inserts a new node
	//
	// "ctx" is the context for the request.
	// "node" is the node to create; its ID is set on success.
	//
	// Returns an error if any.
	Create(ctx context.Context, node *models.Node) error
	// Delete removes a node and its child videos
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the node.
	//
	// Returns an error if any.
	Delete(ctx context.Context, id int) error
	// SwapOrderIndexes atomically moves two nodes to each other's positions
	//
	// "ctx" is the context for the request.
	// "aID" and "aIndex" are the first node and its new position.
	// "bID" and "bIndex" are the second node and its new position.
	//
	// Returns an error if any.
	SwapOrderIndexes(ctx context.Context, aID, aIndex, bID, bIndex int) error
	// UpdateProgress stores a progress value for a node
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the node.
	// "progress" is the value to store.
	//
	// Returns an error if any.
	UpdateProgress(ctx context.Context, id, progress int) error
	// UpdateNotes replaces a node's notes
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the node.
	// "notes" is the new notes text.
	//
	// Returns an error if any.
	UpdateNotes(ctx context.Context, id int, notes string) error
	// UpdateResumePoint stores where playback should continue
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the node.
	// "videoRef" is the video reference.
	// "position" is the playback offset.
	//
	// Returns an error if any.
	UpdateResumePoint(ctx context.Context, id int, videoRef, position string) error
	// IDsOrdered returns all node IDs in order index order
	//
	// "ctx" is the context for the request.
	//
	// Returns the ordered IDs and an error if any.
	IDsOrdered(ctx context.Context) ([]int, error)
	// SetProgressByIDs sets the same progress on every listed node
	//
	// "ctx" is the context for the request.
	// "ids" are the node IDs to update.
	// "progress" is the value to store.
	//
	// Returns an error if any.
	SetProgressByIDs(ctx context.Context, ids []int, progress int) error
	// RepairOrderIndexes renumbers order indexes into a dense permutation
	//
	// "ctx" is the context for the request.
	//
	// Returns an error if any.
	RepairOrderIndexes(ctx context.Context) error
}

type nodeService struct {
	nodeRepo NodeRepository
}

// NewNodeService creates a new node ordering service
func NewNodeService(nodeRepo NodeRepository) *nodeService {
	return &nodeService{
		nodeRepo: nodeRepo,
	}
}

// GetAll returns the full node set ordered by order index
func (s *nodeService) GetAll(ctx context.Context) ([]models.Node, error) {
	return s.nodeRepo.GetAll(ctx)
}

// CreateNode appends a new node at the end of the ordering
func (s *nodeService) CreateNode(ctx context.Context, name string, kind models.NodeKind) (*models.Node, error) {
	maxIndex, err := s.nodeRepo.MaxOrderIndex(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get max order index: %w", err)
	}

	node := &models.Node{
		Name:       name,
		Kind:       kind,
		Progress:   0,
		OrderIndex: maxIndex + 1,
	}
	if err := s.nodeRepo.Create(ctx, node); err != nil {
		return nil, fmt.Errorf("failed to create node: %w", err)
	}

	return node, nil
}

// DeleteNode removes a node and its children. Surviving order indexes are
// not renumbered; moveNode tolerates the resulting gaps.
func (s *nodeService) DeleteNode(ctx context.Context, id int) error {
	return s.nodeRepo.Delete(ctx, id)
}

// MoveNode swaps a node with its neighbor one slot up or down. When no
// node occupies the target slot (extreme position or a deletion gap) the
// move is a silent no-op.
func (s *nodeService) MoveNode(ctx context.Context, id int, direction models.MoveDirection) error {
	node, err := s.nodeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	targetIndex := node.OrderIndex - 1
	if direction == models.MoveDown {
		targetIndex = node.OrderIndex + 1
	}

	neighbor, err := s.nodeRepo.GetByOrderIndex(ctx, targetIndex)
	if errors.Is(err, models.ErrNodeNotFound) {
		// No neighbor at the target slot; nothing changes
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to find swap neighbor: %w", err)
	}

	// Both writes in one transaction so a failure leaves the ordering intact
	if err := s.nodeRepo.SwapOrderIndexes(ctx, node.ID, targetIndex, neighbor.ID, node.OrderIndex); err != nil {
		return fmt.Errorf("failed to swap order indexes: %w", err)
	}

	return nil
}

// SetProgress stores a directly-set progress value, clamped to [0, 100].
// This is the simple-node path; derived nodes get overwritten by the next
// recomputation.
func (s *nodeService) SetProgress(ctx context.Context, id, progress int) error {
	return s.nodeRepo.UpdateProgress(ctx, id, ClampProgress(progress))
}

// MarkUpTo sets the first upTo nodes (1-indexed, by order index) to
// progress 100 and all others to 0, regardless of child watch state
func (s *nodeService) MarkUpTo(ctx context.Context, upTo int) error {
	ids, err := s.nodeRepo.IDsOrdered(ctx)
	if err != nil {
		return fmt.Errorf("failed to list node ids: %w", err)
	}

	if upTo < 0 {
		upTo = 0
	}
	if upTo > len(ids) {
		upTo = len(ids)
	}

	if err := s.nodeRepo.SetProgressByIDs(ctx, ids[:upTo], 100); err != nil {
		return fmt.Errorf("failed to mark completed nodes: %w", err)
	}
	if err := s.nodeRepo.SetProgressByIDs(ctx, ids[upTo:], 0); err != nil {
		return fmt.Errorf("failed to reset remaining nodes: %w", err)
	}

	return nil
}

// SaveNotes replaces a node's notes
func (s *nodeService) SaveNotes(ctx context.Context, id int, notes string) error {
	return s.nodeRepo.UpdateNotes(ctx, id, notes)
}

// SetResumePoint records the video reference and position where playback
// should continue
func (s *nodeService) SetResumePoint(ctx context.Context, id int, videoRef, position string) error {
	return s.nodeRepo.UpdateResumePoint(ctx, id, videoRef, position)
}

// ResumeLink formats the stored resume point into a playable URL for the
// external opener
func (s *nodeService) ResumeLink(ctx context.Context, id int) (string, error) {
	node, err := s.nodeRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	if node.LastVideoRef == "" {
		return "", fmt.Errorf("node has no resume point")
	}

	link, err := BuildResumeLink(node.LastVideoRef, node.LastPosition)
	if err != nil {
		return "", fmt.Errorf("failed to build resume link: %w", err)
	}

	return link, nil
}

// RepairOrdering renumbers order indexes into a dense 0..N-1 permutation.
// Called once at startup; normal deletes leave gaps untouched.
func (s *nodeService) RepairOrdering(ctx context.Context) error {
	return s.nodeRepo.RepairOrderIndexes(ctx)
}
