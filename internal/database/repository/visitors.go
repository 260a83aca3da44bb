package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gatehouse/internal/database"
)

// VisitorRepo handles visitor rows.
type VisitorRepo struct {
	db *sql.DB
}

func NewVisitorRepo(db *sql.DB) *VisitorRepo { return &VisitorRepo{db: db} }

// CheckIn inserts a visitor and the matching activity row in one transaction.
func (r *VisitorRepo) CheckIn(ctx context.Context, v Visitor) (Visitor, error) {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	if v.SignedInAt.IsZero() {
		v.SignedInAt = database.Now()
	}
	err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
		INSERT INTO visitors(id, name, company, host, badge, signed_in_at, signed_out_at)
		VALUES(?, ?, ?, ?, ?, ?, NULL);
		`, v.ID, v.Name, v.Company, v.Host, v.Badge, v.SignedInAt)
		if err != nil {
			return fmt.Errorf("insert visitor: %w", err)
		}
		_, err = tx.ExecContext(ctx, `
		INSERT INTO activity(id, visitor_id, kind, at) VALUES(?, ?, ?, ?);
		`, uuid.NewString(), v.ID, KindCheckIn, v.SignedInAt)
		if err != nil {
			return fmt.Errorf("log check-in: %w", err)
		}
		return nil
	})
	if err != nil {
		return Visitor{}, err
	}
	return v, nil
}

// CheckOut stamps signed_out_at and appends the activity row.
func (r *VisitorRepo) CheckOut(ctx context.Context, id string) error {
	now := database.Now()
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
		UPDATE visitors SET signed_out_at = ? WHERE id = ? AND signed_out_at IS NULL;
		`, now, id)
		if err != nil {
			return fmt.Errorf("check out: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("visitor %s is not signed in", id)
		}
		_, err = tx.ExecContext(ctx, `
		INSERT INTO activity(id, visitor_id, kind, at) VALUES(?, ?, ?, ?);
		`, uuid.NewString(), id, KindCheckOut, now)
		if err != nil {
			return fmt.Errorf("log check-out: %w", err)
		}
		return nil
	})
}

// ListSignedIn returns visitors currently in the building, oldest first.
func (r *VisitorRepo) ListSignedIn(ctx context.Context) ([]Visitor, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, name, company, host, badge, signed_in_at, signed_out_at
	FROM visitors WHERE signed_out_at IS NULL ORDER BY signed_in_at ASC;
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanVisitors(rows)
}

// CountToday returns today's check-in count and the current in-building count.
func (r *VisitorRepo) CountToday(ctx context.Context) (today, signedIn int, err error) {
	dayStart := time.Now().UTC().Truncate(24 * time.Hour)
	err = r.db.QueryRowContext(ctx, `
	SELECT
	  (SELECT COUNT(*) FROM visitors WHERE signed_in_at >= ?),
	  (SELECT COUNT(*) FROM visitors WHERE signed_out_at IS NULL);
	`, dayStart).Scan(&today, &signedIn)
	return today, signedIn, err
}

// RecentHosts returns distinct host names, most recent first.
func (r *VisitorRepo) RecentHosts(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, `
	SELECT host FROM visitors GROUP BY host ORDER BY MAX(signed_in_at) DESC LIMIT ?;
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var h string
		if err := rows.Scan(&h); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func scanVisitors(rows *sql.Rows) ([]Visitor, error) {
	var out []Visitor
	for rows.Next() {
		var v Visitor
		if err := rows.Scan(&v.ID, &v.Name, &v.Company, &v.Host, &v.Badge, &v.SignedInAt, &v.SignedOutAt); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
