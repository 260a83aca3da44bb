package repository

import (
	"context"
	"database/sql"
)

// ActivityRepo handles the check-in/check-out log.
type ActivityRepo struct {
	db *sql.DB
}

func NewActivityRepo(db *sql.DB) *ActivityRepo { return &ActivityRepo{db: db} }

// Event is one log row joined with the visitor it belongs to.
type Event struct {
	Activity
	VisitorName string
	Host        string
}

// ListRecent returns the newest events first.
func (r *ActivityRepo) ListRecent(ctx context.Context, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx, `
	SELECT a.id, a.visitor_id, a.kind, a.at, v.name, v.host
	FROM activity a JOIN visitors v ON v.id = a.visitor_id
	ORDER BY a.at DESC, a.rowid DESC LIMIT ?;
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.VisitorID, &e.Kind, &e.At, &e.VisitorName, &e.Host); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
