// Package repositories implements data access over the relational store
package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/studytrack/backend/internal/models"
)

type nodeRepository struct {
	db *sql.DB
}

// NewNodeRepository creates a new node repository
func NewNodeRepository(db *sql.DB) *nodeRepository {
	return &nodeRepository{
		db: db,
	}
}

// GetAll retrieves all nodes ordered by order_index
func (r *nodeRepository) GetAll(ctx context.Context) ([]models.Node, error) {
	query := `
		SELECT id, name, kind, progress, last_video, last_position, notes, order_index
		FROM nodes
		ORDER BY order_index
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query nodes: %w", err)
	}
	defer rows.Close()

	var nodes []models.Node
	for rows.Next() {
		node, err := scanNode(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan node: %w", err)
		}
		nodes = append(nodes, *node)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return nodes, nil
}

// GetByID retrieves a node by its ID
func (r *nodeRepository) GetByID(ctx context.Context, id int) (*models.Node, error) {
	query := `
		SELECT id, name, kind, progress, last_video, last_position, notes, order_index
		FROM nodes
		WHERE id = ?
		LIMIT 1
	`

	node, err := scanNode(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, models.ErrNodeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get node by id: %w", err)
	}

	return node, nil
}

// GetByOrderIndex retrieves the node at an exact order index.
// Returns models.ErrNodeNotFound when no node occupies that position,
// which happens at the extremes and at gaps left by deletions.
func (r *nodeRepository) GetByOrderIndex(ctx context.Context, orderIndex int) (*models.Node, error) {
	query := `
		SELECT id, name, kind, progress, last_video, last_position, notes, order_index
		FROM nodes
		WHERE order_index = ?
		LIMIT 1
	`

	node, err := scanNode(r.db.QueryRowContext(ctx, query, orderIndex))
	if err == sql.ErrNoRows {
		return nil, models.ErrNodeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get node by order index: %w", err)
	}

	return node, nil
}

// MaxOrderIndex returns the highest order_index across all nodes,
// or -1 when the table is empty
func (r *nodeRepository) MaxOrderIndex(ctx context.Context) (int, error) {
	query := `SELECT COALESCE(MAX(order_index), -1) FROM nodes`

	var maxIndex int
	if err := r.db.QueryRowContext(ctx, query).Scan(&maxIndex); err != nil {
		return 0, fmt.Errorf("failed to get max order index: %w", err)
	}

	return maxIndex, nil
}

// Create inserts a new node and sets its generated ID
func (r *nodeRepository) Create(ctx context.Context, node *models.Node) error {
	query := `
		INSERT INTO nodes (name, kind, progress, last_video, last_position, notes, order_index)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		node.Name,
		node.Kind,
		node.Progress,
		node.LastVideoRef,
		node.LastPosition,
		node.Notes,
		node.OrderIndex,
	)
	if err != nil {
		return fmt.Errorf("failed to create node: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	node.ID = int(id)
	return nil
}

// Delete removes a node and its child videos in one transaction. The
// order_index of the surviving nodes is left untouched; gaps are repaired
// only at startup.
func (r *nodeRepository) Delete(ctx context.Context, id int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Owned videos go first so a failure never orphans them
	if _, err := tx.ExecContext(ctx, `DELETE FROM child_videos WHERE node_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete child videos: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM nodes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete node: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrNodeNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// SwapOrderIndexes moves two nodes to each other's positions in a single
// transaction, so a failed write leaves the ordering unchanged.
func (r *nodeRepository) SwapOrderIndexes(ctx context.Context, aID, aIndex, bID, bIndex int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `UPDATE nodes SET order_index = ? WHERE id = ?`, aIndex, aID); err != nil {
		return fmt.Errorf("failed to update order index: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `UPDATE nodes SET order_index = ? WHERE id = ?`, bIndex, bID); err != nil {
		return fmt.Errorf("failed to update order index: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// UpdateProgress stores the derived progress value for a node
func (r *nodeRepository) UpdateProgress(ctx context.Context, id, progress int) error {
	result, err := r.db.ExecContext(ctx, `UPDATE nodes SET progress = ? WHERE id = ?`, progress, id)
	if err != nil {
		return fmt.Errorf("failed to update progress: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrNodeNotFound
	}

	return nil
}

// UpdateNotes replaces a node's notes
func (r *nodeRepository) UpdateNotes(ctx context.Context, id int, notes string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE nodes SET notes = ? WHERE id = ?`, notes, id)
	if err != nil {
		return fmt.Errorf("failed to update notes: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrNodeNotFound
	}

	return nil
}

// UpdateResumePoint stores where playback should continue for a node
func (r *nodeRepository) UpdateResumePoint(ctx context.Context, id int, videoRef, position string) error {
	query := `UPDATE nodes SET last_video = ?, last_position = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, videoRef, position, id)
	if err != nil {
		return fmt.Errorf("failed to update resume point: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrNodeNotFound
	}

	return nil
}

// IDsOrdered returns all node IDs in order_index order
func (r *nodeRepository) IDsOrdered(ctx context.Context) ([]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM nodes ORDER BY order_index`)
	if err != nil {
		return nil, fmt.Errorf("failed to query node ids: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan node id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return ids, nil
}

// SetProgressByIDs sets the same progress value on every listed node
func (r *nodeRepository) SetProgressByIDs(ctx context.Context, ids []int, progress int) error {
	if len(ids) == 0 {
		return nil
	}

	// Placeholders are transformed into "?, ?, ?" string for slice insertion
	placeholders := make([]string, len(ids))
	args := make([]any, 0, len(ids)+1)
	args = append(args, progress)
	for i, id := range ids {
		placeholders[i] = "?"
		args = append(args, id)
	}

	query := fmt.Sprintf(`UPDATE nodes SET progress = ? WHERE id IN (%s)`, strings.Join(placeholders, ","))

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to set progress by ids: %w", err)
	}

	return nil
}

// RepairOrderIndexes renumbers order_index into a dense 0..N-1 permutation,
// preserving the current order. Run once at startup to close gaps left by
// deletions in earlier sessions.
func (r *nodeRepository) RepairOrderIndexes(ctx context.Context) error {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM nodes ORDER BY order_index, id`)
	if err != nil {
		return fmt.Errorf("failed to query node ids: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("failed to scan node id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating rows: %w", err)
	}

	for i, id := range ids {
		if _, err := r.db.ExecContext(ctx, `UPDATE nodes SET order_index = ? WHERE id = ?`, i, id); err != nil {
			return fmt.Errorf("failed to renumber node %d: %w", id, err)
		}
	}

	return nil
}

// scanner abstracts *sql.Row and *sql.Rows for shared scanning
type scanner interface {
	Scan(dest ...any) error
}

// scanNode reads one node row with NULL-tolerant optional columns
func scanNode(row scanner) (*models.Node, error) {
	var node models.Node
	var lastVideo, lastPosition, notes sql.NullString
	err := row.Scan(
		&node.ID,
		&node.Name,
		&node.Kind,
		&node.Progress,
		&lastVideo,
		&lastPosition,
		&notes,
		&node.OrderIndex,
	)
	if err != nil {
		return nil, err
	}

	node.LastVideoRef = lastVideo.String
	node.LastPosition = lastPosition.String
	node.Notes = notes.String
	return &node, nil
}
