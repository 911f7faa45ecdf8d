package visits

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/scenedash/scenedash/internal/db"
	"github.com/scenedash/scenedash/internal/navtree"
)

// timeLayout is fixed width so that text ordering matches time ordering.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Store persists visits.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Record inserts a visit. If v.ID is empty a UUID is generated and if
// v.VisitedAt is zero the current time is used.
func (s *Store) Record(ctx context.Context, v Visit) (*Visit, error) {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	if v.VisitedAt.IsZero() {
		v.VisitedAt = time.Now()
	}
	v.VisitedAt = v.VisitedAt.UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO visits (id, session_id, node_id, path, visited_at)
		VALUES (?, ?, ?, ?, ?)`,
		v.ID, v.SessionID, int(v.NodeID), v.Path, v.VisitedAt.Format(timeLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting visit: %w", err)
	}
	return &v, nil
}

// Top returns the most visited paths, most visited first. Ties are broken
// by path.
func (s *Store) Top(ctx context.Context, limit int) ([]PathCount, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT path, COUNT(*) AS n FROM visits
		GROUP BY path ORDER BY n DESC, path ASC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying top visits: %w", err)
	}
	defer rows.Close()

	out := []PathCount{}
	for rows.Next() {
		var pc PathCount
		if err := rows.Scan(&pc.Path, &pc.Count); err != nil {
			return nil, err
		}
		out = append(out, pc)
	}
	return out, rows.Err()
}

// BySession returns a session's visits, newest first.
func (s *Store) BySession(ctx context.Context, sessionID string, limit int) ([]Visit, error) {
	query := `SELECT id, session_id, node_id, path, visited_at FROM visits
		WHERE session_id = ? ORDER BY visited_at DESC`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := s.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("querying session visits: %w", err)
	}
	defer rows.Close()

	var out []Visit
	for rows.Next() {
		var (
			v      Visit
			nodeID int
			ts     string
		)
		if err := rows.Scan(&v.ID, &v.SessionID, &nodeID, &v.Path, &ts); err != nil {
			return nil, err
		}
		v.NodeID = navtree.ID(nodeID)
		if t, err := time.Parse(timeLayout, ts); err == nil {
			v.VisitedAt = t
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// DeleteBefore removes visits older than before and returns how many were
// deleted.
func (s *Store) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM visits WHERE visited_at < ?",
		before.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("deleting old visits: %w", err)
	}
	return res.RowsAffected()
}
