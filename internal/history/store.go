// Package history persists recompute records so the inspector's log
// pane and the export subcommand can look back at what the synchronizer
// did and why.
package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/okvist/pagesync/internal/layout"
)

// Store manages recompute record persistence.
type Store struct {
	db *sql.DB
}

// NewStore creates a record store at the given path.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS records (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			trigger_   TEXT NOT NULL,
			intrinsic  TEXT NOT NULL,
			width      TEXT NOT NULL,
			left_      TEXT NOT NULL,
			expr       TEXT NOT NULL,
			resolved   INTEGER NOT NULL,
			px         REAL,
			viewport_w INTEGER,
			viewport_h INTEGER,
			timestamp  TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_records_timestamp ON records(timestamp DESC);
	`)
	if err != nil {
		return fmt.Errorf("creating records table: %w", err)
	}
	return nil
}

// FromRecord converts a layout.Record to a storable Entry.
func FromRecord(r layout.Record) Entry {
	return Entry{
		Trigger:   string(r.Trigger),
		Intrinsic: r.Intrinsic.String(),
		Width:     r.SidebarWidth.String(),
		Left:      r.SidebarLeft.String(),
		Expr:      r.Applied,
		Resolved:  r.Resolved,
		Px:        r.ResolvedPx,
		ViewportW: r.Viewport.Width,
		ViewportH: r.Viewport.Height,
		Timestamp: r.At,
	}
}

// Add inserts a new entry.
func (s *Store) Add(e Entry) (int64, error) {
	result, err := s.db.Exec(`
		INSERT INTO records (trigger_, intrinsic, width, left_, expr, resolved, px, viewport_w, viewport_h, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Trigger, e.Intrinsic, e.Width, e.Left, e.Expr,
		e.Resolved, e.Px, e.ViewportW, e.ViewportH,
		e.Timestamp.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting record: %w", err)
	}
	return result.LastInsertId()
}

// List returns the most recent entries.
func (s *Store) List(limit, offset int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(`
		SELECT id, trigger_, intrinsic, width, left_, expr, resolved, px, viewport_w, viewport_h, timestamp
		FROM records
		ORDER BY timestamp DESC, id DESC
		LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Search returns entries whose trigger or expression matches the query.
func (s *Store) Search(query string) ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, trigger_, intrinsic, width, left_, expr, resolved, px, viewport_w, viewport_h, timestamp
		FROM records
		WHERE trigger_ LIKE ? OR expr LIKE ?
		ORDER BY timestamp DESC, id DESC
		LIMIT 50`, "%"+query+"%", "%"+query+"%")
	if err != nil {
		return nil, fmt.Errorf("searching records: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Clear removes all entries.
func (s *Store) Clear() error {
	_, err := s.db.Exec("DELETE FROM records")
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		var px sql.NullFloat64
		var ts string
		err := rows.Scan(&e.ID, &e.Trigger, &e.Intrinsic, &e.Width, &e.Left,
			&e.Expr, &e.Resolved, &px, &e.ViewportW, &e.ViewportH, &ts)
		if err != nil {
			return nil, fmt.Errorf("scanning record row: %w", err)
		}
		e.Px = px.Float64
		e.Timestamp, _ = time.Parse(time.RFC3339Nano, ts)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
