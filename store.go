package main

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ReplayStore persists solved sessions and their move logs in SQLite so a
// session can be played back or analyzed later.
type ReplayStore struct {
	db *sql.DB
}

// SessionRecord is one stored solving session. Solution carries the
// puzzle-file encoding of the solution grid so the session can be replayed
// against the exact board it was played on.
type SessionRecord struct {
	ID         string
	Puzzle     string
	Size       int
	Solution   string
	StartedAt  time.Time
	SolvedAt   time.Time
	MoveCount  int
	FinalFrame int
}

func OpenReplayStore(path string) (*ReplayStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open replay database: %w", err)
	}

	store := &ReplayStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate replay database: %w", err)
	}
	return store, nil
}

func (s *ReplayStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		puzzle TEXT NOT NULL,
		size INTEGER NOT NULL,
		solution TEXT NOT NULL,
		started_at DATETIME NOT NULL,
		solved_at DATETIME NOT NULL,
		move_count INTEGER NOT NULL,
		final_frame INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS moves (
		session_id TEXT NOT NULL,
		seq INTEGER NOT NULL,
		kind INTEGER NOT NULL,
		col INTEGER NOT NULL,
		row INTEGER NOT NULL,
		frame INTEGER NOT NULL,
		PRIMARY KEY (session_id, seq),
		FOREIGN KEY (session_id) REFERENCES sessions(id)
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_puzzle ON sessions(puzzle);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *ReplayStore) Close() error {
	return s.db.Close()
}

// SaveSession stores a solved session under a fresh session label and
// returns the label. The whole write is one transaction: either the session
// and every move land, or nothing does.
func (s *ReplayStore) SaveSession(puzzle string, size int, solution string, startedAt time.Time, moves []Move) (string, error) {
	id := uuid.NewString()
	finalFrame := 0
	if len(moves) > 0 {
		finalFrame = moves[len(moves)-1].Frame
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin session write: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO sessions (id, puzzle, size, solution, started_at, solved_at, move_count, final_frame)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, puzzle, size, solution, startedAt.UTC(), time.Now().UTC(), len(moves), finalFrame,
	)
	if err != nil {
		return "", fmt.Errorf("insert session: %w", err)
	}

	for i, m := range moves {
		_, err = tx.Exec(
			`INSERT INTO moves (session_id, seq, kind, col, row, frame) VALUES (?, ?, ?, ?, ?, ?)`,
			id, i, int(m.Kind), m.Col, m.Row, m.Frame,
		)
		if err != nil {
			return "", fmt.Errorf("insert move %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit session: %w", err)
	}
	return id, nil
}

// Sessions returns the most recently solved sessions.
func (s *ReplayStore) Sessions(limit int) ([]SessionRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, puzzle, size, solution, started_at, solved_at, move_count, final_frame
		 FROM sessions ORDER BY solved_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []SessionRecord
	for rows.Next() {
		var rec SessionRecord
		err := rows.Scan(&rec.ID, &rec.Puzzle, &rec.Size, &rec.Solution,
			&rec.StartedAt, &rec.SolvedAt, &rec.MoveCount, &rec.FinalFrame)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, rec)
	}
	return sessions, rows.Err()
}

// Moves returns a session's move log in recorded order.
func (s *ReplayStore) Moves(sessionID string) ([]Move, error) {
	rows, err := s.db.Query(
		`SELECT kind, col, row, frame FROM moves WHERE session_id = ? ORDER BY seq`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("query moves: %w", err)
	}
	defer rows.Close()

	var moves []Move
	for rows.Next() {
		var m Move
		var kind int
		if err := rows.Scan(&kind, &m.Col, &m.Row, &m.Frame); err != nil {
			return nil, fmt.Errorf("scan move: %w", err)
		}
		m.Kind = ClickKind(kind)
		moves = append(moves, m)
	}
	return moves, rows.Err()
}
