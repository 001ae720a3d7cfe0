package main

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *ReplayStore {
	t.Helper()
	store, err := OpenReplayStore(filepath.Join(t.TempDir(), "replays.db"))
	if err != nil {
		t.Fatalf("OpenReplayStore failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSessionRoundTrip(t *testing.T) {
	store := openTestStore(t)

	moves := []Move{
		{Kind: LeftClick, Col: 0, Row: 0, Frame: 1},
		{Kind: RightClick, Col: 1, Row: 2, Frame: 4},
		{Kind: LeftClick, Col: 2, Row: 2, Frame: 9},
	}
	startedAt := time.Now().Add(-time.Minute)

	id, err := store.SaveSession("heart", 3, "3\n2\n###\n...\n#.#\n", startedAt, moves)
	if err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}
	if id == "" {
		t.Fatal("SaveSession returned an empty session label")
	}

	sessions, err := store.Sessions(10)
	if err != nil {
		t.Fatalf("Sessions failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("len(sessions) = %d, want 1", len(sessions))
	}
	rec := sessions[0]
	if rec.ID != id || rec.Puzzle != "heart" || rec.Size != 3 {
		t.Errorf("session record = %+v", rec)
	}
	if rec.MoveCount != 3 || rec.FinalFrame != 9 {
		t.Errorf("move count/frame = %d/%d, want 3/9", rec.MoveCount, rec.FinalFrame)
	}
	if rec.Solution == "" {
		t.Error("stored solution text is empty")
	}

	got, err := store.Moves(id)
	if err != nil {
		t.Fatalf("Moves failed: %v", err)
	}
	if len(got) != len(moves) {
		t.Fatalf("len(moves) = %d, want %d", len(got), len(moves))
	}
	for i := range moves {
		if got[i] != moves[i] {
			t.Errorf("move %d = %+v, want %+v", i, got[i], moves[i])
		}
	}
}

func TestStoreSessionsOrderedByRecency(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveSession("first", 2, "2\n#.\n.#\n", time.Now().Add(-2*time.Hour), nil); err != nil {
		t.Fatal(err)
	}
	time.Sleep(10 * time.Millisecond)
	if _, err := store.SaveSession("second", 2, "2\n#.\n.#\n", time.Now().Add(-time.Hour), nil); err != nil {
		t.Fatal(err)
	}

	sessions, err := store.Sessions(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(sessions) != 2 {
		t.Fatalf("len = %d, want 2", len(sessions))
	}
	if sessions[0].Puzzle != "second" {
		t.Errorf("most recent session first: got %q", sessions[0].Puzzle)
	}
}

// A stored session must replay back to a solved board.
func TestStoredSessionReplays(t *testing.T) {
	store := openTestStore(t)

	live := newTestBoard(t, scenarioPuzzle)
	solveByClicks(live)
	if !live.IsSolved() {
		t.Fatal("setup: board should be solved")
	}

	id, err := store.SaveSession("heart", live.Size(), scenarioPuzzle, time.Now(), live.Moves())
	if err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}

	moves, err := store.Moves(id)
	if err != nil {
		t.Fatalf("Moves failed: %v", err)
	}
	fresh := newTestBoard(t, scenarioPuzzle)
	ApplyReplay(fresh, moves)
	if !fresh.IsSolved() {
		t.Error("replaying the stored session did not reach the solved state")
	}
}
