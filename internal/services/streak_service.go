package services

import (
	"context"
	"fmt"

	"github.com/studytrack/backend/internal/models"
)

// defaultStreakDays bounds a streak query when the caller passes no window
const defaultStreakDays = 30

// StreakRepository defines methods for streak data access
type StreakRepository interface {
	// AddDelta upserts the (date, nodeID) row by adding delta to its count
	//
	// "ctx" is the context for the request.
	// "date" is the activity day as YYYY-MM-DD.
	// "nodeID" is the node the activity belongs to.
	// "delta" is the signed count change.
	//
	// Returns an error if any.
	AddDelta(ctx context.Context, date string, nodeID, delta int) error
	// GetRecent returns up to days most recent entries, newest first
	//
	// "ctx" is the context for the request.
	// "nodeID" is the node to query (0 for the global aggregate).
	// "days" is the maximum number of dates to return.
	//
	// Returns the entries and an error if any.
	GetRecent(ctx context.Context, nodeID, days int) ([]models.StreakEntry, error)
}

type streakService struct {
	streakRepo StreakRepository
}

// NewStreakService creates a new streak ledger service
func NewStreakService(streakRepo StreakRepository) *streakService {
	return &streakService{
		streakRepo: streakRepo,
	}
}

// RecordActivity applies a signed delta to the (date, nodeID) counter and
// mirrors the same delta to the global aggregate row when the activity
// belongs to a specific node. Toggling watched on then off within one day
// nets to the correct cumulative count without special-casing.
func (s *streakService) RecordActivity(ctx context.Context, date string, nodeID, delta int) error {
	if delta == 0 {
		return nil
	}

	if err := s.streakRepo.AddDelta(ctx, date, nodeID, delta); err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}

	if nodeID != models.GlobalStreakNodeID {
		if err := s.streakRepo.AddDelta(ctx, date, models.GlobalStreakNodeID, delta); err != nil {
			return fmt.Errorf("failed to record aggregate activity: %w", err)
		}
	}

	return nil
}

// GetStreak returns a finite snapshot of the most recent days for a node
// (or the global aggregate for node 0), newest first
func (s *streakService) GetStreak(ctx context.Context, nodeID, days int) ([]models.StreakEntry, error) {
	if days <= 0 {
		days = defaultStreakDays
	}

	return s.streakRepo.GetRecent(ctx, nodeID, days)
}
