package main

import (
	"math/rand"
	"os"
	"strings"
	"testing"
)

func writeTestFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}

func TestDecodePuzzleWithHintBudget(t *testing.T) {
	p := mustDecode(t, "3\n5\n###\n...\n#.#\n")
	if p.Size != 3 {
		t.Errorf("size = %d, want 3", p.Size)
	}
	if p.MaxHints != 5 {
		t.Errorf("maxHints = %d, want 5", p.MaxHints)
	}
	if p.Solution.At(0, 0).State != TileFilled {
		t.Error("(0,0) should be filled")
	}
	if p.Solution.At(1, 2).State != TileEmpty {
		t.Error("(1,2) should be empty")
	}
}

func TestDecodePuzzleWithoutHintBudget(t *testing.T) {
	p := mustDecode(t, "3\n###\n...\n#.#\n")
	if p.MaxHints != -1 {
		t.Errorf("missing budget line should mean unlimited, got %d", p.MaxHints)
	}
	if p.Solution.At(2, 0).State != TileFilled {
		t.Error("the budget-less second line must be read as the first solution row")
	}
}

func TestDecodePuzzleNonHashMeansEmpty(t *testing.T) {
	p := mustDecode(t, "2\n#x\n #\n")
	if p.Solution.At(1, 0).State != TileEmpty {
		t.Error("'x' should decode as Empty")
	}
	if p.Solution.At(0, 1).State != TileEmpty {
		t.Error("' ' should decode as Empty")
	}
	if p.Solution.At(1, 1).State != TileFilled {
		t.Error("'#' should decode as Filled")
	}
}

func TestDecodePuzzleMalformed(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"empty input", ""},
		{"non-integer size", "three\n###\n"},
		{"zero size", "0\n"},
		{"negative size", "-2\n##\n##\n"},
		{"missing rows", "3\n###\n...\n"},
		{"short row", "3\n###\n..\n#.#\n"},
		{"no rows at all", "4\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodePuzzle(strings.NewReader(tc.text)); err == nil {
				t.Errorf("DecodePuzzle(%q) succeeded, want error", tc.text)
			}
		})
	}
}

func TestEncodeBoardCollapsesCross(t *testing.T) {
	b := newTestBoard(t, "2\n0\n##\n##\n")
	b.HandleInput(0, 0, LeftClick)
	b.HandleInput(1, 0, RightClick)

	var sb strings.Builder
	if err := EncodeBoard(&sb, b); err != nil {
		t.Fatalf("EncodeBoard failed: %v", err)
	}
	want := "2\n0\n#.\n..\n"
	if sb.String() != want {
		t.Errorf("encoded board = %q, want %q", sb.String(), want)
	}
}

// Serializing a board whose grid matches the solution and re-parsing the
// text as a puzzle must produce a solution the original board satisfies.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	b := newTestBoard(t, scenarioPuzzle)
	solveByClicks(b)
	if !b.IsSolved() {
		t.Fatal("setup: board should be solved")
	}

	var sb strings.Builder
	if err := EncodeBoard(&sb, b); err != nil {
		t.Fatalf("EncodeBoard failed: %v", err)
	}

	reparsed, err := DecodePuzzle(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("re-parsing snapshot failed: %v", err)
	}
	if reparsed.MaxHints != 2 {
		t.Errorf("hint budget lost in round trip: got %d", reparsed.MaxHints)
	}

	check := NewBoard(reparsed, rand.New(rand.NewSource(1)))
	for y := 0; y < b.Size(); y++ {
		for x := 0; x < b.Size(); x++ {
			if b.Tile(x, y).State == TileFilled {
				check.HandleInput(x, y, LeftClick)
			}
		}
	}
	if !check.IsSolved() {
		t.Error("round-tripped solution does not accept the original grid")
	}
}

func TestLoadPuzzleFileNameFromPath(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/heart.non"
	if err := writeTestFile(path, "3\n###\n...\n#.#\n"); err != nil {
		t.Fatal(err)
	}
	p, err := LoadPuzzleFile(path)
	if err != nil {
		t.Fatalf("LoadPuzzleFile failed: %v", err)
	}
	if p.Name != "heart" {
		t.Errorf("puzzle name = %q, want \"heart\"", p.Name)
	}
}
