package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// Move is one recorded player action, stamped with the logical frame at
// which it happened. The replay log is append-only: undo does not remove
// entries, so a log is a full audit trail of the session.
type Move struct {
	Kind  ClickKind `json:"kind"`
	Col   int       `json:"col"`
	Row   int       `json:"row"`
	Frame int       `json:"frame"`
}

type ReplayLog struct {
	moves []Move
}

func NewReplayLog() *ReplayLog {
	return &ReplayLog{}
}

func (l *ReplayLog) Record(kind ClickKind, col, row, frame int) {
	l.moves = append(l.moves, Move{Kind: kind, Col: col, Row: row, Frame: frame})
}

func (l *ReplayLog) Len() int {
	return len(l.moves)
}

// Moves returns a copy so callers cannot mutate the log.
func (l *ReplayLog) Moves() []Move {
	out := make([]Move, len(l.moves))
	copy(out, l.moves)
	return out
}

func (l *ReplayLog) Reset() {
	l.moves = nil
}

// WriteMovesJSONL writes one JSON object per line, in move order.
func WriteMovesJSONL(w io.Writer, moves []Move) error {
	enc := json.NewEncoder(w)
	for i, m := range moves {
		if err := enc.Encode(m); err != nil {
			return fmt.Errorf("encoding move %d: %w", i, err)
		}
	}
	return nil
}

// ReadMovesJSONL parses a move log written by WriteMovesJSONL. Moves must
// appear in increasing frame order; out-of-order records are rejected.
func ReadMovesJSONL(r io.Reader) ([]Move, error) {
	var moves []Move
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if line == "" {
			continue
		}
		var m Move
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			return nil, fmt.Errorf("line %d: invalid move record: %w", lineNum, err)
		}
		if len(moves) > 0 && m.Frame < moves[len(moves)-1].Frame {
			return nil, fmt.Errorf("line %d: frame %d out of order", lineNum, m.Frame)
		}
		moves = append(moves, m)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading move log: %w", err)
	}
	return moves, nil
}

// ApplyReplay plays a recorded move sequence against a board. The board
// should be freshly loaded with the same solution for the replay to
// reproduce the recorded session.
func ApplyReplay(b *Board, moves []Move) {
	for _, m := range moves {
		b.DoReplayMove(m)
	}
}
