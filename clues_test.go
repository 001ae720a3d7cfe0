package main

import (
	"reflect"
	"strings"
	"testing"
)

func mustDecode(t *testing.T, text string) Puzzle {
	t.Helper()
	p, err := DecodePuzzle(strings.NewReader(text))
	if err != nil {
		t.Fatalf("DecodePuzzle failed: %v", err)
	}
	return p
}

func TestComputeCluesScenario(t *testing.T) {
	p := mustDecode(t, "3\n###\n...\n#.#\n")
	clues := ComputeClues(p.Solution)

	wantRows := [][]int{{3}, nil, {1, 1}}
	wantCols := [][]int{{1, 1}, {1}, {1, 1}}

	if !reflect.DeepEqual(clues.Rows, wantRows) {
		t.Errorf("row clues = %v, want %v", clues.Rows, wantRows)
	}
	if !reflect.DeepEqual(clues.Cols, wantCols) {
		t.Errorf("column clues = %v, want %v", clues.Cols, wantCols)
	}
}

func TestComputeCluesEmptyLine(t *testing.T) {
	p := mustDecode(t, "2\n..\n..\n")
	clues := ComputeClues(p.Solution)
	for i, runs := range clues.Rows {
		if len(runs) != 0 {
			t.Errorf("row %d: want empty sequence, got %v", i, runs)
		}
	}
	for i, runs := range clues.Cols {
		if len(runs) != 0 {
			t.Errorf("column %d: want empty sequence, got %v", i, runs)
		}
	}
}

func TestComputeCluesFullLine(t *testing.T) {
	p := mustDecode(t, "4\n####\n.##.\n#..#\n.#..\n")
	clues := ComputeClues(p.Solution)

	wantRows := [][]int{{4}, {2}, {1, 1}, {1}}
	if !reflect.DeepEqual(clues.Rows, wantRows) {
		t.Errorf("row clues = %v, want %v", clues.Rows, wantRows)
	}
}

func TestClueText(t *testing.T) {
	if got := clueText(nil); got != "0" {
		t.Errorf("empty clue rendered as %q, want \"0\"", got)
	}
	if got := clueText([]int{1, 3}); got != "1 3" {
		t.Errorf("clue rendered as %q, want \"1 3\"", got)
	}
}
