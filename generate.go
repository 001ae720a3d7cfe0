package main

import "math/rand"

// GeneratePuzzle builds a random solution grid at the given fill density.
// An all-empty grid would be pre-solved by CrossZeroLines, so one cell is
// forced filled if the roll produces nothing.
func GeneratePuzzle(size int, density float64, maxHints int, rng *rand.Rand) Puzzle {
	solution := NewGrid(size)
	filled := 0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if rng.Float64() < density {
				solution.SetState(x, y, TileFilled)
				filled++
			}
		}
	}
	if filled == 0 {
		solution.SetState(rng.Intn(size), rng.Intn(size), TileFilled)
	}
	return Puzzle{
		Name:     "random",
		Size:     size,
		MaxHints: maxHints,
		Solution: solution,
	}
}
