package repos

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
)

type VisitorRepo struct{ db *sqlx.DB }

func NewVisitorRepo(db *sqlx.DB) *VisitorRepo { return &VisitorRepo{db: db} }

func day(t time.Time) string { return t.UTC().Format("2006-01-02") }

// Bump adds one visit to today's counter, creating the row if needed.
func (r *VisitorRepo) Bump(now time.Time) error {
	_, err := r.db.Exec(`
		INSERT INTO visits(day, count) VALUES(?, 1)
		ON CONFLICT(day) DO UPDATE SET count = count + 1
	`, day(now))
	return err
}

// Today returns today's visit count; a missing row counts as zero.
func (r *VisitorRepo) Today(now time.Time) (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT count FROM visits WHERE day = ?`, day(now))
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return n, err
}

func (r *VisitorRepo) Total() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COALESCE(SUM(count),0) FROM visits`)
	return n, err
}
