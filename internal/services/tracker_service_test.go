package services

import (
	"context"
	"errors"
	"testing"

	"github.com/studytrack/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCatalogClient is a mock implementation of CatalogClient
type mockCatalogClient struct {
	videos []models.CatalogVideo
	err    error
}

func (m *mockCatalogClient) PlaylistVideos(ctx context.Context, playlistID string) ([]models.CatalogVideo, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.videos, nil
}

// mockChatClient is a mock implementation of ChatClient
type mockChatClient struct {
	reply string
	err   error
}

func (m *mockChatClient) Complete(ctx context.Context, message string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

// newTestTracker wires a tracker facade over in-memory mocks
func newTestTracker(nodeRepo *mockNodeRepository, videoRepo *mockVideoRepository, streakRepo *mockStreakRepository, catalog CatalogClient, chat ChatClient) *trackerService {
	if catalog == nil {
		catalog = &mockCatalogClient{}
	}
	if chat == nil {
		chat = &mockChatClient{}
	}
	return NewTrackerService(
		NewNodeService(nodeRepo),
		NewVideoService(videoRepo, nodeRepo),
		NewStreakService(streakRepo),
		catalog,
		chat,
	)
}

func TestTrackerService_CreateNodeReturnsRefreshedList(t *testing.T) {
	nodeRepo := newMockNodeRepository(
		models.Node{ID: 1, Name: "A", OrderIndex: 0},
	)
	svc := newTestTracker(nodeRepo, newMockVideoRepository(), newMockStreakRepository(), nil, nil)

	nodes, err := svc.CreateNode(context.Background(), "B", models.NodeKindCustom)

	require.NoError(t, err)
	require.Len(t, nodes, 2)
	assert.Equal(t, "B", nodes[1].Name)
	assert.Equal(t, 1, nodes[1].OrderIndex)
}

func TestTrackerService_DeleteNodeLeavesGap(t *testing.T) {
	nodeRepo := newMockNodeRepository(
		models.Node{ID: 1, OrderIndex: 0},
		models.Node{ID: 2, OrderIndex: 1},
		models.Node{ID: 3, OrderIndex: 2},
	)
	svc := newTestTracker(nodeRepo, newMockVideoRepository(), newMockStreakRepository(), nil, nil)

	nodes, err := svc.DeleteNode(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, nodes, 2)
	// Survivors keep their indexes; the gap stays until the startup repair
	assert.Equal(t, 0, nodes[0].OrderIndex)
	assert.Equal(t, 2, nodes[1].OrderIndex)
}

func TestTrackerService_ToggleWatched(t *testing.T) {
	const owner = 3

	t.Run("transition records streak and reports progress", func(t *testing.T) {
		nodeRepo := newMockNodeRepository(
			models.Node{ID: owner, Kind: models.NodeKindCustom},
		)
		videoRepo := newMockVideoRepository(
			models.ChildVideo{ID: 1, NodeID: owner, Watched: false},
			models.ChildVideo{ID: 2, NodeID: owner, Watched: false},
		)
		streakRepo := newMockStreakRepository()
		svc := newTestTracker(nodeRepo, videoRepo, streakRepo, nil, nil)

		result, err := svc.ToggleWatched(context.Background(), 1, true)

		require.NoError(t, err)
		assert.False(t, result.Previous)
		assert.True(t, result.Changed)
		assert.Equal(t, 50, result.Progress)

		// One unit landed on the node row and one on the aggregate
		total := 0
		for _, byNode := range streakRepo.counts {
			total += byNode[owner] + byNode[models.GlobalStreakNodeID]
		}
		assert.Equal(t, 2, total)
	})

	t.Run("idempotent write records nothing", func(t *testing.T) {
		nodeRepo := newMockNodeRepository(
			models.Node{ID: owner, Kind: models.NodeKindCustom},
		)
		videoRepo := newMockVideoRepository(
			models.ChildVideo{ID: 1, NodeID: owner, Watched: true},
		)
		streakRepo := newMockStreakRepository()
		svc := newTestTracker(nodeRepo, videoRepo, streakRepo, nil, nil)

		result, err := svc.ToggleWatched(context.Background(), 1, true)

		require.NoError(t, err)
		assert.True(t, result.Previous)
		assert.False(t, result.Changed)
		assert.Equal(t, 100, result.Progress)
		assert.Empty(t, streakRepo.counts)
	})
}

func TestTrackerService_MarkAllWatched(t *testing.T) {
	t.Run("streak delta counts only flipped rows", func(t *testing.T) {
		nodeRepo := newMockNodeRepository(
			models.Node{ID: 3, Kind: models.NodeKindCustom},
		)
		videoRepo := newMockVideoRepository(
			models.ChildVideo{ID: 1, NodeID: 3, Watched: true},
			models.ChildVideo{ID: 2, NodeID: 3, Watched: false},
			models.ChildVideo{ID: 3, NodeID: 3, Watched: false},
		)
		streakRepo := newMockStreakRepository()
		svc := newTestTracker(nodeRepo, videoRepo, streakRepo, nil, nil)

		nodes, err := svc.MarkAllWatched(context.Background(), 3, true)

		require.NoError(t, err)
		require.Len(t, nodes, 1)
		assert.Equal(t, 100, nodes[0].Progress)

		for _, byNode := range streakRepo.counts {
			assert.Equal(t, 2, byNode[3])
			assert.Equal(t, 2, byNode[models.GlobalStreakNodeID])
		}
		assert.NotEmpty(t, streakRepo.counts)
	})

	t.Run("no flips means no streak write", func(t *testing.T) {
		nodeRepo := newMockNodeRepository(
			models.Node{ID: 3, Kind: models.NodeKindCustom},
		)
		videoRepo := newMockVideoRepository(
			models.ChildVideo{ID: 1, NodeID: 3, Watched: true},
		)
		streakRepo := newMockStreakRepository()
		svc := newTestTracker(nodeRepo, videoRepo, streakRepo, nil, nil)

		_, err := svc.MarkAllWatched(context.Background(), 3, true)

		require.NoError(t, err)
		assert.Empty(t, streakRepo.counts)
	})
}

func TestTrackerService_SyncPlaylist(t *testing.T) {
	t.Run("replaces children and resets progress", func(t *testing.T) {
		nodeRepo := newMockNodeRepository(
			models.Node{ID: 3, Kind: models.NodeKindPlaylist, Progress: 100},
		)
		videoRepo := newMockVideoRepository(
			models.ChildVideo{ID: 1, NodeID: 3, Source: "old", Watched: true},
		)
		catalog := &mockCatalogClient{videos: []models.CatalogVideo{
			{VideoID: "new1", Title: "First"},
			{VideoID: "new2", Title: "Second"},
		}}
		svc := newTestTracker(nodeRepo, videoRepo, newMockStreakRepository(), catalog, nil)

		nodes, err := svc.SyncPlaylist(context.Background(), 3, "PL123")

		require.NoError(t, err)
		require.Len(t, nodes, 1)
		assert.Equal(t, 0, nodes[0].Progress)

		videos, err := svc.ListVideos(context.Background(), 3)
		require.NoError(t, err)
		assert.Len(t, videos, 2)
	})

	t.Run("catalog failure maps to the external sentinel", func(t *testing.T) {
		nodeRepo := newMockNodeRepository(
			models.Node{ID: 3, Kind: models.NodeKindPlaylist},
		)
		catalog := &mockCatalogClient{err: errors.New("quota exceeded")}
		svc := newTestTracker(nodeRepo, newMockVideoRepository(), newMockStreakRepository(), catalog, nil)

		nodes, err := svc.SyncPlaylist(context.Background(), 3, "PL123")

		assert.ErrorIs(t, err, models.ErrExternalService)
		assert.Nil(t, nodes)
	})
}

func TestTrackerService_Chat(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		chat := &mockChatClient{reply: "study more calculus"}
		svc := newTestTracker(newMockNodeRepository(), newMockVideoRepository(), newMockStreakRepository(), nil, chat)

		reply, err := svc.Chat(context.Background(), "what next?")

		require.NoError(t, err)
		assert.Equal(t, "study more calculus", reply)
	})

	t.Run("upstream failure maps to the external sentinel", func(t *testing.T) {
		chat := &mockChatClient{err: errors.New("timeout")}
		svc := newTestTracker(newMockNodeRepository(), newMockVideoRepository(), newMockStreakRepository(), nil, chat)

		_, err := svc.Chat(context.Background(), "what next?")

		assert.ErrorIs(t, err, models.ErrExternalService)
	})
}

func TestTrackerService_MoveNodeReturnsRefreshedOrdering(t *testing.T) {
	nodeRepo := newMockNodeRepository(
		models.Node{ID: 1, OrderIndex: 0},
		models.Node{ID: 2, OrderIndex: 1},
	)
	svc := newTestTracker(nodeRepo, newMockVideoRepository(), newMockStreakRepository(), nil, nil)

	nodes, err := svc.MoveNode(context.Background(), 2, models.MoveUp)

	require.NoError(t, err)
	require.Len(t, nodes, 2)
	assert.Equal(t, 0, repoIndex(nodes, 2))
	assert.Equal(t, 1, repoIndex(nodes, 1))
}

func repoIndex(nodes []models.Node, id int) int {
	for _, n := range nodes {
		if n.ID == id {
			return n.OrderIndex
		}
	}
	return -1
}
