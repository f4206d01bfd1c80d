package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/studytrack/backend/internal/models"
)

type videoRepository struct {
	db *sql.DB
}

// NewVideoRepository creates a new child video repository
func NewVideoRepository(db *sql.DB) *videoRepository {
	return &videoRepository{
		db: db,
	}
}

// GetByID retrieves a child video by its ID
func (r *videoRepository) GetByID(ctx context.Context, id int) (*models.ChildVideo, error) {
	query := `
		SELECT id, node_id, source, title, resume_offset, watched
		FROM child_videos
		WHERE id = ?
		LIMIT 1
	`

	video, err := scanVideo(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, models.ErrVideoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get video by id: %w", err)
	}

	return video, nil
}

// GetByNodeID retrieves all child videos of a node in insertion order
func (r *videoRepository) GetByNodeID(ctx context.Context, nodeID int) ([]models.ChildVideo, error) {
	query := `
		SELECT id, node_id, source, title, resume_offset, watched
		FROM child_videos
		WHERE node_id = ?
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, nodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query videos: %w", err)
	}
	defer rows.Close()

	var videos []models.ChildVideo
	for rows.Next() {
		video, err := scanVideo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan video: %w", err)
		}
		videos = append(videos, *video)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return videos, nil
}

// Create inserts a new child video and sets its generated ID
func (r *videoRepository) Create(ctx context.Context, video *models.ChildVideo) error {
	query := `
		INSERT INTO child_videos (node_id, source, title, resume_offset, watched)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		video.NodeID,
		video.Source,
		video.Title,
		video.ResumeOffset,
		video.Watched,
	)
	if err != nil {
		return fmt.Errorf("failed to create video: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	video.ID = int(id)
	return nil
}

// Delete removes a child video by ID
func (r *videoRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM child_videos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrVideoNotFound
	}

	return nil
}

// UpdateWatched sets a video's watched flag
func (r *videoRepository) UpdateWatched(ctx context.Context, id int, watched bool) error {
	result, err := r.db.ExecContext(ctx, `UPDATE child_videos SET watched = ? WHERE id = ?`, watched, id)
	if err != nil {
		return fmt.Errorf("failed to update watched flag: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrVideoNotFound
	}

	return nil
}

// MarkAll sets every child of a node to the same watched value and
// returns how many rows actually flipped
func (r *videoRepository) MarkAll(ctx context.Context, nodeID int, watched bool) (int, error) {
	query := `UPDATE child_videos SET watched = ? WHERE node_id = ? AND watched <> ?`

	result, err := r.db.ExecContext(ctx, query, watched, nodeID, watched)
	if err != nil {
		return 0, fmt.Errorf("failed to mark all videos: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return int(rowsAffected), nil
}

// ReplaceAll atomically clears and repopulates a node's children from a
// catalog result set. No watched state survives the replacement; a
// playlist refresh is a full resync, not a merge.
func (r *videoRepository) ReplaceAll(ctx context.Context, nodeID int, videos []models.CatalogVideo) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM child_videos WHERE node_id = ?`, nodeID); err != nil {
		return fmt.Errorf("failed to clear videos: %w", err)
	}

	if len(videos) > 0 {
		// Single multi-row insert for the whole result set
		placeholders := make([]string, len(videos))
		args := make([]any, 0, len(videos)*5)
		for i, v := range videos {
			placeholders[i] = "(?, ?, ?, ?, ?)"
			args = append(args, nodeID, v.VideoID, v.Title, "", false)
		}

		query := fmt.Sprintf(`
			INSERT INTO child_videos (node_id, source, title, resume_offset, watched)
			VALUES %s
		`, strings.Join(placeholders, ", "))

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to insert videos: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Counts returns the total and watched child counts for a node
func (r *videoRepository) Counts(ctx context.Context, nodeID int) (total, watched int, err error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(watched), 0)
		FROM child_videos
		WHERE node_id = ?
	`

	if err := r.db.QueryRowContext(ctx, query, nodeID).Scan(&total, &watched); err != nil {
		return 0, 0, fmt.Errorf("failed to count videos: %w", err)
	}

	return total, watched, nil
}

// scanVideo reads one child video row with NULL-tolerant optional columns
func scanVideo(row scanner) (*models.ChildVideo, error) {
	var video models.ChildVideo
	var title, resumeOffset sql.NullString
	err := row.Scan(
		&video.ID,
		&video.NodeID,
		&video.Source,
		&title,
		&resumeOffset,
		&video.Watched,
	)
	if err != nil {
		return nil, err
	}

	video.Title = title.String
	video.ResumeOffset = resumeOffset.String
	return &video, nil
}
