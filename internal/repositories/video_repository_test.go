package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/studytrack/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupVideoTestRepository creates a video repository with a mock database
func setupVideoTestRepository(t *testing.T) (*videoRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewVideoRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

var videoColumns = []string{"id", "node_id", "source", "title", "resume_offset", "watched"}

func TestVideoRepository_GetByID(t *testing.T) {
	tests := []struct {
		name          string
		id            int
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "success",
			id:   1,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(videoColumns).
					AddRow(1, 3, "abc123", "Lecture 1", nil, true)
				mock.ExpectQuery(`SELECT.*FROM child_videos.*WHERE id = \?`).
					WithArgs(1).
					WillReturnRows(rows)
			},
		},
		{
			name: "video not found",
			id:   999,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT.*FROM child_videos.*WHERE id = \?`).
					WithArgs(999).
					WillReturnError(sql.ErrNoRows)
			},
			expectedError: models.ErrVideoNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupVideoTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			result, err := repo.GetByID(context.Background(), tt.id)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, result)
				assert.Equal(t, 3, result.NodeID)
				assert.True(t, result.Watched)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestVideoRepository_GetByNodeID(t *testing.T) {
	tests := []struct {
		name          string
		nodeID        int
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedCount int
	}{
		{
			name:   "success",
			nodeID: 3,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(videoColumns).
					AddRow(1, 3, "abc123", "Lecture 1", nil, true).
					AddRow(2, 3, "def456", nil, "05:00", false)
				mock.ExpectQuery(`SELECT.*FROM child_videos.*WHERE node_id = \?.*ORDER BY id`).
					WithArgs(3).
					WillReturnRows(rows)
			},
			expectedCount: 2,
		},
		{
			name:   "empty results",
			nodeID: 3,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(videoColumns)
				mock.ExpectQuery(`SELECT.*FROM child_videos.*WHERE node_id = \?.*ORDER BY id`).
					WithArgs(3).
					WillReturnRows(rows)
			},
			expectedCount: 0,
		},
		{
			name:   "database error",
			nodeID: 3,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT.*FROM child_videos.*WHERE node_id = \?.*ORDER BY id`).
					WithArgs(3).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupVideoTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			result, err := repo.GetByNodeID(context.Background(), tt.nodeID)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result, tt.expectedCount)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestVideoRepository_Create(t *testing.T) {
	tests := []struct {
		name          string
		video         *models.ChildVideo
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedID    int
	}{
		{
			name:  "success",
			video: &models.ChildVideo{NodeID: 3, Source: "abc123", Title: "Lecture 1"},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO child_videos \(node_id, source, title, resume_offset, watched\)`).
					WithArgs(3, "abc123", "Lecture 1", "", false).
					WillReturnResult(sqlmock.NewResult(5, 1))
			},
			expectedID: 5,
		},
		{
			name:  "database error",
			video: &models.ChildVideo{NodeID: 3, Source: "abc123"},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO child_videos`).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupVideoTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.Create(context.Background(), tt.video)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedID, tt.video.ID)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestVideoRepository_UpdateWatched(t *testing.T) {
	tests := []struct {
		name          string
		id            int
		watched       bool
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name:    "success",
			id:      1,
			watched: true,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE child_videos SET watched = \? WHERE id = \?`).
					WithArgs(true, 1).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:    "video not found",
			id:      999,
			watched: true,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE child_videos SET watched = \? WHERE id = \?`).
					WithArgs(true, 999).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectedError: models.ErrVideoNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupVideoTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.UpdateWatched(context.Background(), tt.id, tt.watched)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestVideoRepository_MarkAll(t *testing.T) {
	tests := []struct {
		name            string
		nodeID          int
		watched         bool
		setupMock       func(sqlmock.Sqlmock)
		expectedError   bool
		expectedChanged int
	}{
		{
			name:    "flips only rows in the opposite state",
			nodeID:  3,
			watched: true,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE child_videos SET watched = \? WHERE node_id = \? AND watched <> \?`).
					WithArgs(true, 3, true).
					WillReturnResult(sqlmock.NewResult(0, 2))
			},
			expectedChanged: 2,
		},
		{
			name:    "nothing to flip",
			nodeID:  3,
			watched: false,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE child_videos SET watched = \? WHERE node_id = \? AND watched <> \?`).
					WithArgs(false, 3, false).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectedChanged: 0,
		},
		{
			name:    "database error",
			nodeID:  3,
			watched: true,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE child_videos SET watched = \? WHERE node_id = \? AND watched <> \?`).
					WithArgs(true, 3, true).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupVideoTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			changed, err := repo.MarkAll(context.Background(), tt.nodeID, tt.watched)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedChanged, changed)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestVideoRepository_ReplaceAll(t *testing.T) {
	t.Run("clears and repopulates in one transaction", func(t *testing.T) {
		repo, mock, cleanup := setupVideoTestRepository(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM child_videos WHERE node_id = \?`).
			WithArgs(3).
			WillReturnResult(sqlmock.NewResult(0, 4))
		mock.ExpectExec(`INSERT INTO child_videos \(node_id, source, title, resume_offset, watched\)`).
			WithArgs(3, "vid1", "First", "", false, 3, "vid2", "Second", "", false).
			WillReturnResult(sqlmock.NewResult(2, 2))
		mock.ExpectCommit()

		err := repo.ReplaceAll(context.Background(), 3, []models.CatalogVideo{
			{VideoID: "vid1", Title: "First"},
			{VideoID: "vid2", Title: "Second"},
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty playlist only clears", func(t *testing.T) {
		repo, mock, cleanup := setupVideoTestRepository(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM child_videos WHERE node_id = \?`).
			WithArgs(3).
			WillReturnResult(sqlmock.NewResult(0, 4))
		mock.ExpectCommit()

		err := repo.ReplaceAll(context.Background(), 3, nil)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on insert failure", func(t *testing.T) {
		repo, mock, cleanup := setupVideoTestRepository(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM child_videos WHERE node_id = \?`).
			WithArgs(3).
			WillReturnResult(sqlmock.NewResult(0, 4))
		mock.ExpectExec(`INSERT INTO child_videos`).
			WillReturnError(errors.New("database error"))
		mock.ExpectRollback()

		err := repo.ReplaceAll(context.Background(), 3, []models.CatalogVideo{
			{VideoID: "vid1", Title: "First"},
		})

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestVideoRepository_Counts(t *testing.T) {
	tests := []struct {
		name            string
		nodeID          int
		setupMock       func(sqlmock.Sqlmock)
		expectedError   bool
		expectedTotal   int
		expectedWatched int
	}{
		{
			name:   "success",
			nodeID: 3,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"COUNT(*)", "COALESCE(SUM(watched), 0)"}).
					AddRow(4, 3)
				mock.ExpectQuery(`SELECT COUNT\(\*\), COALESCE\(SUM\(watched\), 0\).*FROM child_videos.*WHERE node_id = \?`).
					WithArgs(3).
					WillReturnRows(rows)
			},
			expectedTotal:   4,
			expectedWatched: 3,
		},
		{
			name:   "no children",
			nodeID: 3,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"COUNT(*)", "COALESCE(SUM(watched), 0)"}).
					AddRow(0, 0)
				mock.ExpectQuery(`SELECT COUNT\(\*\), COALESCE\(SUM\(watched\), 0\).*FROM child_videos.*WHERE node_id = \?`).
					WithArgs(3).
					WillReturnRows(rows)
			},
			expectedTotal:   0,
			expectedWatched: 0,
		},
		{
			name:   "database error",
			nodeID: 3,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT COUNT\(\*\), COALESCE\(SUM\(watched\), 0\).*FROM child_videos.*WHERE node_id = \?`).
					WithArgs(3).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupVideoTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			total, watched, err := repo.Counts(context.Background(), tt.nodeID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedTotal, total)
				assert.Equal(t, tt.expectedWatched, watched)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
