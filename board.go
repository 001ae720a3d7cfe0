package main

import (
	"errors"
	"math/rand"
)

// ErrHintsExhausted is returned by Hint when the budget is spent or every
// line pair has already been revealed.
var ErrHintsExhausted = errors.New("no hints remaining")

// hintFlashFrames is how long a revealed tile keeps its flash marker.
const hintFlashFrames = 45

// CheckPolicy decides when a player tile counts as matching the solution.
type CheckPolicy interface {
	TileMatches(tile, solution TileState) bool
}

// StandardCheck treats a crossed tile as empty on both sides: crossing a
// cell is the same as leaving it blank as far as correctness goes.
type StandardCheck struct{}

func (StandardCheck) TileMatches(tile, solution TileState) bool {
	if tile == TileCross {
		tile = TileEmpty
	}
	if solution == TileCross {
		solution = TileEmpty
	}
	return tile == solution
}

// ExactCheck requires identical states. Used by the editor to verify a
// painted grid against a reference without the cross/empty collapse.
type ExactCheck struct{}

func (ExactCheck) TileMatches(tile, solution TileState) bool {
	return tile == solution
}

type hintPair struct {
	Col int
	Row int
}

// Board owns the player grid and the solution grid and runs the whole
// turn-based game loop: input application, undo snapshots, hinting,
// solution checking and replay recording. It is exclusively owned by the
// host; nothing here is safe for concurrent use.
type Board struct {
	size     int
	tiles    *Grid
	solution *Grid
	clues    Clues

	policy   CheckPolicy
	solved   bool
	frame    int
	maxHints int // -1 = unlimited
	unhinted []hintPair

	undoStack []*Grid
	replay    *ReplayLog
	rng       *rand.Rand

	// onSolve fires once, the first time CheckSolution finds a full match,
	// with a copy of the recorded move log.
	onSolve func(moves []Move)
}

func NewBoard(p Puzzle, rng *rand.Rand) *Board {
	b := &Board{
		policy: StandardCheck{},
		replay: NewReplayLog(),
		rng:    rng,
	}
	b.Load(p)
	return b
}

// Load installs a puzzle into the board. Callers reusing a board instance
// should Reset first; Load rebuilds every piece of per-puzzle state either
// way. Zero lines are pre-crossed before any input is accepted.
func (b *Board) Load(p Puzzle) {
	b.size = p.Size
	b.solution = p.Solution.Clone()
	b.tiles = NewGrid(p.Size)
	b.clues = ComputeClues(b.solution)
	b.maxHints = p.MaxHints
	b.solved = false
	b.undoStack = nil
	b.replay.Reset()

	b.unhinted = make([]hintPair, 0, p.Size*p.Size)
	for row := 0; row < p.Size; row++ {
		for col := 0; col < p.Size; col++ {
			b.unhinted = append(b.unhinted, hintPair{Col: col, Row: row})
		}
	}

	b.CrossZeroLines()
}

// Reset tears the board down completely so a new puzzle can be loaded into
// the same instance.
func (b *Board) Reset() {
	b.tiles = nil
	b.solution = nil
	b.clues = Clues{}
	b.solved = false
	b.undoStack = nil
	b.unhinted = nil
	b.replay.Reset()
}

func (b *Board) Size() int      { return b.size }
func (b *Board) IsSolved() bool { return b.solved }
func (b *Board) Frame() int     { return b.frame }
func (b *Board) Clues() Clues   { return b.clues }
func (b *Board) Moves() []Move  { return b.replay.Moves() }
func (b *Board) UndoDepth() int { return len(b.undoStack) }

func (b *Board) Tile(x, y int) Tile {
	return b.tiles.At(x, y)
}

func (b *Board) SetCheckPolicy(p CheckPolicy) {
	b.policy = p
}

func (b *Board) SetSolveHook(fn func(moves []Move)) {
	b.onSolve = fn
}

// Tick advances the logical frame counter. The host calls it once per
// update tick whether or not input occurred.
func (b *Board) Tick() {
	b.frame++
}

// HandleInput applies one click to the target cell. Order is fixed:
// snapshot the pre-move grid, mutate, record the replay move, check the
// solution. Clicks on a solved board are ignored.
func (b *Board) HandleInput(cellX, cellY int, kind ClickKind) {
	if b.solved || !b.tiles.InBounds(cellX, cellY) {
		return
	}
	b.pushUndo()
	tile := b.tiles.At(cellX, cellY)
	tile.Click(kind)
	b.tiles.Set(cellX, cellY, tile)
	b.replay.Record(kind, cellX, cellY, b.frame)
	b.CheckSolution()
}

// DoReplayMove re-applies a recorded move without snapshotting or
// re-recording it. The solved flag is still recomputed so a full replay
// ends in the same state the live session did.
func (b *Board) DoReplayMove(m Move) {
	if b.solved || !b.tiles.InBounds(m.Col, m.Row) {
		return
	}
	tile := b.tiles.At(m.Col, m.Row)
	tile.Click(m.Kind)
	b.tiles.Set(m.Col, m.Row, tile)
	if b.matchesSolution() {
		b.solved = true
		b.clearHover()
	}
}

// CheckSolution compares the player grid against the solution in row-major
// order, short-circuiting on the first mismatch. On the transition to
// solved it clears hover flags and hands the move log to the solve hook.
func (b *Board) CheckSolution() bool {
	if b.solved {
		return true
	}
	if !b.matchesSolution() {
		return false
	}
	b.solved = true
	b.clearHover()
	if b.onSolve != nil {
		b.onSolve(b.replay.Moves())
	}
	return true
}

func (b *Board) matchesSolution() bool {
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			if !b.policy.TileMatches(b.tiles.At(x, y).State, b.solution.At(x, y).State) {
				return false
			}
		}
	}
	return true
}

// VerifyGrid reports whether an external grid matches this board's solution
// under the board's check policy. A grid of a different size never matches.
func (b *Board) VerifyGrid(g *Grid) bool {
	if g == nil || g.Size() != b.size {
		return false
	}
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			if !b.policy.TileMatches(g.At(x, y).State, b.solution.At(x, y).State) {
				return false
			}
		}
	}
	return true
}

// HintsRemaining reports how many hints are still available, or -1 for an
// unlimited budget with line pairs left.
func (b *Board) HintsRemaining() int {
	if b.maxHints < 0 {
		if len(b.unhinted) == 0 {
			return 0
		}
		return -1
	}
	budget := b.maxHints - (b.size*b.size - len(b.unhinted))
	if budget < 0 {
		budget = 0
	}
	if budget > len(b.unhinted) {
		budget = len(b.unhinted)
	}
	return budget
}

// Hint reveals one full row and one full column. The pair is drawn without
// replacement from the remaining unhinted set, so the same pair is never
// revealed twice and exhaustion is an explicit result, not a stuck loop.
func (b *Board) Hint() error {
	if b.solved {
		return nil
	}
	if len(b.unhinted) == 0 || b.HintsRemaining() == 0 {
		return ErrHintsExhausted
	}
	i := b.rng.Intn(len(b.unhinted))
	pair := b.unhinted[i]
	b.unhinted[i] = b.unhinted[len(b.unhinted)-1]
	b.unhinted = b.unhinted[:len(b.unhinted)-1]

	b.pushUndo()
	b.SolveLine(pair.Col, pair.Row)
	return nil
}

// SolveLine copies the solution into every tile of one column and one row.
// Solution-empty cells become Cross so the reveal reads as "resolved empty"
// rather than untouched. Touched tiles get the flash marker. Deliberately
// does not run the solution check.
func (b *Board) SolveLine(col, row int) {
	for y := 0; y < b.size; y++ {
		b.revealTile(col, y)
	}
	for x := 0; x < b.size; x++ {
		b.revealTile(x, row)
	}
}

func (b *Board) revealTile(x, y int) {
	tile := b.tiles.At(x, y)
	if b.solution.At(x, y).State == TileFilled {
		tile.State = TileFilled
	} else {
		tile.State = TileCross
	}
	tile.FlashUntil = b.frame + hintFlashFrames
	b.tiles.Set(x, y, tile)
}

// CrossZeroLines pre-fills every row and column whose solution holds no
// filled cells with Cross marks. Runs once at load time.
func (b *Board) CrossZeroLines() {
	for y := 0; y < b.size; y++ {
		if len(b.clues.Rows[y]) == 0 {
			for x := 0; x < b.size; x++ {
				b.tiles.SetState(x, y, TileCross)
			}
		}
	}
	for x := 0; x < b.size; x++ {
		if len(b.clues.Cols[x]) == 0 {
			for y := 0; y < b.size; y++ {
				b.tiles.SetState(x, y, TileCross)
			}
		}
	}
}

// Clear wipes every tile back to Empty. Undo history and the replay log are
// left alone.
func (b *Board) Clear() {
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			b.tiles.Set(x, y, Tile{})
		}
	}
}

// SetHover marks the tiles sharing the hovered cell's column and row.
// Passing -1, -1 clears all hover flags.
func (b *Board) SetHover(col, row int) {
	if b.solved {
		return
	}
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			tile := b.tiles.At(x, y)
			tile.HoverX = x == col
			tile.HoverY = y == row
			b.tiles.Set(x, y, tile)
		}
	}
}

func (b *Board) clearHover() {
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			tile := b.tiles.At(x, y)
			tile.HoverX = false
			tile.HoverY = false
			b.tiles.Set(x, y, tile)
		}
	}
}
