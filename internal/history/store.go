// Package history persists completed rename batches so past moves can be
// audited from the CLI.
package history

import (
	"database/sql"
	"fmt"
	"time"
)

// schema is applied on open; both tables are idempotent to create.
const schema = `
CREATE TABLE IF NOT EXISTS batches (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	media_type TEXT NOT NULL,
	title      TEXT NOT NULL,
	total      INTEGER NOT NULL,
	succeeded  INTEGER NOT NULL,
	created_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS moves (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	batch_id  INTEGER NOT NULL REFERENCES batches(id),
	src       TEXT NOT NULL,
	dest      TEXT NOT NULL,
	outcome   TEXT NOT NULL,
	reason    TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_moves_batch ON moves(batch_id);
`

// Batch is one recorded rename run.
type Batch struct {
	ID        int64
	MediaType string
	Title     string
	Total     int
	Succeeded int
	CreatedAt time.Time
	Moves     []Move
}

// Move is one file disposition within a batch.
type Move struct {
	Src     string
	Dest    string
	Outcome string
	Reason  string
}

// Store persists batches in SQLite.
type Store struct {
	db *sql.DB
}

// NewStore creates a history store and ensures the schema exists.
func NewStore(db *sql.DB) (*Store, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("apply history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Record inserts a batch and its moves in one transaction.
func (s *Store) Record(b *Batch) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	result, err := tx.Exec(`
		INSERT INTO batches (media_type, title, total, succeeded, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		b.MediaType, b.Title, b.Total, b.Succeeded, now,
	)
	if err != nil {
		return fmt.Errorf("insert batch: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	for _, m := range b.Moves {
		if _, err := tx.Exec(`
			INSERT INTO moves (batch_id, src, dest, outcome, reason)
			VALUES (?, ?, ?, ?, ?)`,
			id, m.Src, m.Dest, m.Outcome, m.Reason,
		); err != nil {
			return fmt.Errorf("insert move: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	b.ID = id
	b.CreatedAt = now
	return nil
}

// List returns the most recent batches without their moves, newest first.
// limit <= 0 returns everything.
func (s *Store) List(limit int) ([]*Batch, error) {
	query := `SELECT id, media_type, title, total, succeeded, created_at
		FROM batches ORDER BY created_at DESC, id DESC`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var batches []*Batch
	for rows.Next() {
		b := &Batch{}
		if err := rows.Scan(&b.ID, &b.MediaType, &b.Title, &b.Total, &b.Succeeded, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		batches = append(batches, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate batches: %w", err)
	}
	return batches, nil
}

// Get returns one batch with its moves in insertion order.
func (s *Store) Get(id int64) (*Batch, error) {
	b := &Batch{}
	err := s.db.QueryRow(`SELECT id, media_type, title, total, succeeded, created_at
		FROM batches WHERE id = ?`, id).
		Scan(&b.ID, &b.MediaType, &b.Title, &b.Total, &b.Succeeded, &b.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get batch: %w", err)
	}

	rows, err := s.db.Query(`SELECT src, dest, outcome, reason
		FROM moves WHERE batch_id = ? ORDER BY id`, id)
	if err != nil {
		return nil, fmt.Errorf("get moves: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var m Move
		if err := rows.Scan(&m.Src, &m.Dest, &m.Outcome, &m.Reason); err != nil {
			return nil, fmt.Errorf("scan move: %w", err)
		}
		b.Moves = append(b.Moves, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate moves: %w", err)
	}
	return b, nil
}
