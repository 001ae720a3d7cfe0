package main

// Clues holds the run-length sequences derived from a solution grid, one
// ordered sequence per row and per column. A line with no filled cells gets
// an empty sequence; the renderer shows that as a single 0.
type Clues struct {
	Rows [][]int
	Cols [][]int
}

func ComputeClues(solution *Grid) Clues {
	size := solution.Size()
	clues := Clues{
		Rows: make([][]int, size),
		Cols: make([][]int, size),
	}
	for y := 0; y < size; y++ {
		clues.Rows[y] = lineRuns(size, func(i int) bool {
			return solution.At(i, y).State == TileFilled
		})
	}
	for x := 0; x < size; x++ {
		clues.Cols[x] = lineRuns(size, func(i int) bool {
			return solution.At(x, i).State == TileFilled
		})
	}
	return clues
}

// lineRuns scans one line and collects the lengths of maximal filled runs.
func lineRuns(size int, filled func(i int) bool) []int {
	var runs []int
	run := 0
	for i := 0; i < size; i++ {
		if filled(i) {
			run++
			continue
		}
		if run > 0 {
			runs = append(runs, run)
			run = 0
		}
	}
	if run > 0 {
		runs = append(runs, run)
	}
	return runs
}
