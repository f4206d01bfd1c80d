package services

import (
	"context"
	"errors"
	"testing"

	"github.com/studytrack/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockStreakRepository is a mock implementation of StreakRepository that
// accumulates deltas per (date, nodeID)
type mockStreakRepository struct {
	counts  map[string]map[int]int // date -> nodeID -> count
	entries []models.StreakEntry
	err     error
	days    int // last days argument seen by GetRecent
}

func newMockStreakRepository() *mockStreakRepository {
	return &mockStreakRepository{
		counts: make(map[string]map[int]int),
	}
}

func (m *mockStreakRepository) AddDelta(ctx context.Context, date string, nodeID, delta int) error {
	if m.err != nil {
		return m.err
	}
	byNode, ok := m.counts[date]
	if !ok {
		byNode = make(map[int]int)
		m.counts[date] = byNode
	}
	if _, exists := byNode[nodeID]; !exists && delta <= 0 {
		// Mirrors the storage contract: no row is created for a
		// non-positive first delta
		return nil
	}
	byNode[nodeID] += delta
	return nil
}

func (m *mockStreakRepository) GetRecent(ctx context.Context, nodeID, days int) ([]models.StreakEntry, error) {
	m.days = days
	if m.err != nil {
		return nil, m.err
	}
	return m.entries, nil
}

func TestStreakService_RecordActivity(t *testing.T) {
	const day = "2026-08-29"

	t.Run("mirrors node activity to the global row", func(t *testing.T) {
		repo := newMockStreakRepository()
		svc := NewStreakService(repo)

		err := svc.RecordActivity(context.Background(), day, 3, 1)

		require.NoError(t, err)
		assert.Equal(t, 1, repo.counts[day][3])
		assert.Equal(t, 1, repo.counts[day][models.GlobalStreakNodeID])
	})

	t.Run("global activity is not double counted", func(t *testing.T) {
		repo := newMockStreakRepository()
		svc := NewStreakService(repo)

		err := svc.RecordActivity(context.Background(), day, models.GlobalStreakNodeID, 1)

		require.NoError(t, err)
		assert.Equal(t, 1, repo.counts[day][models.GlobalStreakNodeID])
	})

	t.Run("zero delta is a no-op", func(t *testing.T) {
		repo := newMockStreakRepository()
		svc := NewStreakService(repo)

		err := svc.RecordActivity(context.Background(), day, 3, 0)

		require.NoError(t, err)
		assert.Empty(t, repo.counts)
	})

	t.Run("toggle on then off nets to zero", func(t *testing.T) {
		repo := newMockStreakRepository()
		svc := NewStreakService(repo)

		require.NoError(t, svc.RecordActivity(context.Background(), day, 3, 1))
		require.NoError(t, svc.RecordActivity(context.Background(), day, 3, -1))

		assert.Equal(t, 0, repo.counts[day][3])
		assert.Equal(t, 0, repo.counts[day][models.GlobalStreakNodeID])
	})

	t.Run("negative first delta creates nothing", func(t *testing.T) {
		repo := newMockStreakRepository()
		svc := NewStreakService(repo)

		err := svc.RecordActivity(context.Background(), day, 3, -1)

		require.NoError(t, err)
		assert.NotContains(t, repo.counts[day], 3)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := newMockStreakRepository()
		repo.err = errors.New("database error")
		svc := NewStreakService(repo)

		err := svc.RecordActivity(context.Background(), day, 3, 1)

		assert.Error(t, err)
	})
}

func TestStreakService_GetStreak(t *testing.T) {
	t.Run("defaults the window", func(t *testing.T) {
		repo := newMockStreakRepository()
		svc := NewStreakService(repo)

		_, err := svc.GetStreak(context.Background(), 0, 0)

		require.NoError(t, err)
		assert.Equal(t, defaultStreakDays, repo.days)
	})

	t.Run("passes an explicit window through", func(t *testing.T) {
		repo := newMockStreakRepository()
		repo.entries = []models.StreakEntry{
			{Date: "2026-08-29", NodeID: 3, Count: 2},
		}
		svc := NewStreakService(repo)

		entries, err := svc.GetStreak(context.Background(), 3, 7)

		require.NoError(t, err)
		assert.Equal(t, 7, repo.days)
		assert.Len(t, entries, 1)
	})
}
