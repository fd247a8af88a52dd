// Package history keeps a sqlite log of solved puzzle answers.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mattsolo1/grove-advent/pkg/models"
)

// ErrNoResults is returned when nothing has been recorded for a day.
var ErrNoResults = errors.New("no recorded results")

// Store persists results
type Store struct {
	db      *sql.DB
	dataDir string
}

// NewStore opens (and creates if needed) history.db inside dataDir
func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, "history.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{
		db:      db,
		dataDir: dataDir,
	}

	if err := s.init(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize history: %w", err)
	}

	return s, nil
}

// init creates the database schema
func (s *Store) init() error {
	schema := `
	CREATE TABLE IF NOT EXISTS results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		day INTEGER NOT NULL,
		title TEXT NOT NULL,
		input TEXT NOT NULL,
		part_one TEXT NOT NULL,
		part_two TEXT NOT NULL,
		duration_ns INTEGER NOT NULL,
		solved_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_results_day ON results(day);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Record stores a result and fills in its ID
func (s *Store) Record(ctx context.Context, r *models.Result) error {
	if r.SolvedAt.IsZero() {
		r.SolvedAt = time.Now()
	}

	query := `
	INSERT INTO results (day, title, input, part_one, part_two, duration_ns, solved_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	res, err := s.db.ExecContext(ctx, query, r.Day, r.Title, r.Input, r.PartOne, r.PartTwo, int64(r.Duration), r.SolvedAt.UTC())
	if err != nil {
		return fmt.Errorf("record day %d: %w", r.Day, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("record day %d: %w", r.Day, err)
	}
	r.ID = id
	return nil
}

// List returns recorded results, newest first. A day of 0 lists every day and
// a limit of 0 means no limit.
func (s *Store) List(ctx context.Context, day, limit int) ([]*models.Result, error) {
	query := `
	SELECT id, day, title, input, part_one, part_two, duration_ns, solved_at
	FROM results WHERE (? = 0 OR day = ?) ORDER BY solved_at DESC, id DESC
	`
	args := []any{day, day}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*models.Result
	for rows.Next() {
		r := &models.Result{}
		var durationNS int64
		err := rows.Scan(
			&r.ID, &r.Day, &r.Title, &r.Input,
			&r.PartOne, &r.PartTwo, &durationNS, &r.SolvedAt,
		)
		if err != nil {
			return nil, err
		}
		r.Duration = time.Duration(durationNS)
		results = append(results, r)
	}

	return results, rows.Err()
}

// Latest returns the most recent result for a day
func (s *Store) Latest(ctx context.Context, day int) (*models.Result, error) {
	results, err := s.List(ctx, day, 1)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("day %d: %w", day, ErrNoResults)
	}
	return results[0], nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}
