package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/studytrack/backend/internal/models"
)

type streakRepository struct {
	db *sql.DB
}

// NewStreakRepository creates a new streak repository
func NewStreakRepository(db *sql.DB) *streakRepository {
	return &streakRepository{
		db: db,
	}
}

// AddDelta upserts the (date, nodeID) row by adding delta to its count.
// A missing row is inserted only for a positive delta, so a first-ever
// observation can never create a negative count; an existing row, however,
// is decremented unconditionally (see the streak ledger contract).
func (r *streakRepository) AddDelta(ctx context.Context, date string, nodeID, delta int) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE streak SET count = count + ? WHERE date = ? AND node_id = ?`,
		delta, date, nodeID,
	)
	if err != nil {
		return fmt.Errorf("failed to update streak count: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected > 0 {
		return nil
	}

	// Insert path requires a positive delta; a non-positive delta on a
	// first-ever observation is discarded
	if delta <= 0 {
		return nil
	}

	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO streak (date, node_id, count) VALUES (?, ?, ?)`,
		date, nodeID, delta,
	); err != nil {
		return fmt.Errorf("failed to insert streak entry: %w", err)
	}

	return nil
}

// GetRecent returns up to `days` most recent entries for a node,
// newest first
func (r *streakRepository) GetRecent(ctx context.Context, nodeID, days int) ([]models.StreakEntry, error) {
	query := `
		SELECT date, node_id, count
		FROM streak
		WHERE node_id = ?
		ORDER BY date DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, nodeID, days)
	if err != nil {
		return nil, fmt.Errorf("failed to query streak entries: %w", err)
	}
	defer rows.Close()

	var entries []models.StreakEntry
	for rows.Next() {
		var entry models.StreakEntry
		if err := rows.Scan(&entry.Date, &entry.NodeID, &entry.Count); err != nil {
			return nil, fmt.Errorf("failed to scan streak entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return entries, nil
}
