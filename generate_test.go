package main

import (
	"math/rand"
	"testing"
)

func countFilled(g *Grid) int {
	n := 0
	for y := 0; y < g.Size(); y++ {
		for x := 0; x < g.Size(); x++ {
			if g.At(x, y).State == TileFilled {
				n++
			}
		}
	}
	return n
}

func TestGeneratePuzzleDeterministicForSeed(t *testing.T) {
	a := GeneratePuzzle(8, 0.5, 3, rand.New(rand.NewSource(42)))
	b := GeneratePuzzle(8, 0.5, 3, rand.New(rand.NewSource(42)))
	if !a.Solution.Equal(b.Solution) {
		t.Error("same seed produced different solutions")
	}

	c := GeneratePuzzle(8, 0.5, 3, rand.New(rand.NewSource(43)))
	if a.Solution.Equal(c.Solution) {
		t.Error("different seeds produced identical solutions")
	}
}

func TestGeneratePuzzleNeverEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		p := GeneratePuzzle(4, 0.0, 0, rng)
		if countFilled(p.Solution) != 1 {
			t.Fatalf("iteration %d: zero density should force exactly one filled cell, got %d", i, countFilled(p.Solution))
		}
	}
}

func TestGeneratePuzzleDensityBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	p := GeneratePuzzle(6, 1.0, 0, rng)
	if got := countFilled(p.Solution); got != 36 {
		t.Errorf("full density filled %d of 36 cells", got)
	}
	if p.Size != 6 || p.Name != "random" {
		t.Errorf("puzzle metadata = %q size %d", p.Name, p.Size)
	}
}

func TestGeneratedPuzzleIsPlayable(t *testing.T) {
	p := GeneratePuzzle(5, 0.4, 2, rand.New(rand.NewSource(99)))
	b := NewBoard(p, rand.New(rand.NewSource(0)))
	solveByClicks(b)
	if !b.IsSolved() {
		t.Error("clicking every solution cell did not solve a generated puzzle")
	}
}
