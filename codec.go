package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Puzzle is a decoded puzzle definition: board size, hint budget and the
// hidden solution. MaxHints of -1 means unlimited.
type Puzzle struct {
	Name     string
	Size     int
	MaxHints int
	Solution *Grid
}

// DecodePuzzle parses the line-oriented puzzle format: the size on the
// first line, an optional hint budget on the second, then size solution
// rows where '#' is a filled cell and anything else is empty. Everything is
// validated into a temporary grid before being returned, so a malformed
// file never leaves a half-built puzzle behind.
func DecodePuzzle(r io.Reader) (Puzzle, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return Puzzle{}, fmt.Errorf("puzzle file is empty")
	}
	size, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return Puzzle{}, fmt.Errorf("invalid size line: %w", err)
	}
	if size <= 0 {
		return Puzzle{}, fmt.Errorf("invalid size %d", size)
	}

	if !scanner.Scan() {
		return Puzzle{}, fmt.Errorf("missing solution rows")
	}

	// The second line is the hint budget if it parses as an integer.
	// Otherwise it is already the first solution row and the budget is
	// unlimited.
	maxHints := -1
	rows := make([]string, 0, size)
	second := scanner.Text()
	if n, err := strconv.Atoi(strings.TrimSpace(second)); err == nil {
		maxHints = n
	} else {
		rows = append(rows, second)
	}

	for len(rows) < size {
		if !scanner.Scan() {
			return Puzzle{}, fmt.Errorf("missing solution row %d of %d", len(rows)+1, size)
		}
		rows = append(rows, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return Puzzle{}, fmt.Errorf("reading puzzle: %w", err)
	}

	solution := NewGrid(size)
	for y, row := range rows {
		if len(row) < size {
			return Puzzle{}, fmt.Errorf("solution row %d is %d cells, want at least %d", y+1, len(row), size)
		}
		for x := 0; x < size; x++ {
			if row[x] == '#' {
				solution.SetState(x, y, TileFilled)
			}
		}
	}

	return Puzzle{Size: size, MaxHints: maxHints, Solution: solution}, nil
}

// LoadPuzzleFile decodes a puzzle from disk, naming it after the file.
func LoadPuzzleFile(path string) (Puzzle, error) {
	f, err := os.Open(path)
	if err != nil {
		return Puzzle{}, fmt.Errorf("opening puzzle: %w", err)
	}
	defer f.Close()

	p, err := DecodePuzzle(f)
	if err != nil {
		return Puzzle{}, fmt.Errorf("%s: %w", path, err)
	}
	p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return p, nil
}

// EncodeBoard writes the live player grid in the same text shape as a
// puzzle file: size, hint budget, then one row per line with '#' for filled
// cells and '.' for everything else. Crosses collapse into '.' on purpose;
// a cross means the same thing as an empty cell.
func EncodeBoard(w io.Writer, b *Board) error {
	if _, err := fmt.Fprintf(w, "%d\n%d\n", b.Size(), b.maxHints); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	return encodeGrid(w, b.tiles)
}

// EncodePuzzle writes a puzzle definition from a solution grid.
func EncodePuzzle(w io.Writer, size, maxHints int, solution *Grid) error {
	if _, err := fmt.Fprintf(w, "%d\n%d\n", size, maxHints); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	return encodeGrid(w, solution)
}

func encodeGrid(w io.Writer, g *Grid) error {
	var row strings.Builder
	for y := 0; y < g.Size(); y++ {
		row.Reset()
		for x := 0; x < g.Size(); x++ {
			if g.At(x, y).State == TileFilled {
				row.WriteByte('#')
			} else {
				row.WriteByte('.')
			}
		}
		if _, err := fmt.Fprintln(w, row.String()); err != nil {
			return fmt.Errorf("writing row %d: %w", y+1, err)
		}
	}
	return nil
}

// SnapshotText renders the board snapshot encoding as a string, used for
// the clipboard yank.
func (b *Board) SnapshotText() string {
	var sb strings.Builder
	if err := EncodeBoard(&sb, b); err != nil {
		return ""
	}
	return sb.String()
}
