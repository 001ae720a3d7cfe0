package main

type TileState int

const (
	TileEmpty TileState = iota
	TileFilled
	TileCross
)

type ClickKind int

const (
	LeftClick ClickKind = iota
	RightClick
)

// Tile is a single cell of the player grid. HoverX/HoverY and FlashUntil are
// presentation hints, but they are copied with the rest of the tile so undo
// snapshots restore the exact prior state.
type Tile struct {
	State      TileState
	HoverX     bool
	HoverY     bool
	FlashUntil int // frame index until which the hint flash is shown, 0 = no flash
}

func (t *Tile) CopyFrom(src Tile) {
	*t = src
}

// Click applies the click state machine. Left clicks always move toward
// Filled unless the tile is already filled; right clicks toward Cross unless
// already crossed.
func (t *Tile) Click(kind ClickKind) {
	switch kind {
	case LeftClick:
		if t.State == TileFilled {
			t.State = TileEmpty
		} else {
			t.State = TileFilled
		}
	case RightClick:
		if t.State == TileCross {
			t.State = TileEmpty
		} else {
			t.State = TileCross
		}
	}
}
