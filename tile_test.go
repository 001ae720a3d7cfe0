package main

import "testing"

func TestLeftClickTransitions(t *testing.T) {
	cases := []struct {
		from, want TileState
	}{
		{TileEmpty, TileFilled},
		{TileFilled, TileEmpty},
		{TileCross, TileFilled},
	}
	for _, tc := range cases {
		tile := Tile{State: tc.from}
		tile.Click(LeftClick)
		if tile.State != tc.want {
			t.Errorf("left click from %v: got %v, want %v", tc.from, tile.State, tc.want)
		}
	}
}

func TestRightClickTransitions(t *testing.T) {
	cases := []struct {
		from, want TileState
	}{
		{TileEmpty, TileCross},
		{TileCross, TileEmpty},
		{TileFilled, TileCross},
	}
	for _, tc := range cases {
		tile := Tile{State: tc.from}
		tile.Click(RightClick)
		if tile.State != tc.want {
			t.Errorf("right click from %v: got %v, want %v", tc.from, tile.State, tc.want)
		}
	}
}

// Each click kind on its own is an involution-like toggle: two left clicks
// from Empty or Filled, and two right clicks from Empty or Cross, land back
// where they started. A full left-left-right-right cycle is neutral from
// Empty.
func TestClickToggleCycles(t *testing.T) {
	for _, start := range []TileState{TileEmpty, TileFilled} {
		tile := Tile{State: start}
		tile.Click(LeftClick)
		tile.Click(LeftClick)
		if tile.State != start {
			t.Errorf("double left click from %v ended at %v", start, tile.State)
		}
	}
	for _, start := range []TileState{TileEmpty, TileCross} {
		tile := Tile{State: start}
		tile.Click(RightClick)
		tile.Click(RightClick)
		if tile.State != start {
			t.Errorf("double right click from %v ended at %v", start, tile.State)
		}
	}

	tile := Tile{State: TileEmpty}
	tile.Click(LeftClick)
	tile.Click(LeftClick)
	tile.Click(RightClick)
	tile.Click(RightClick)
	if tile.State != TileEmpty {
		t.Errorf("LLRR cycle from Empty ended at %v", tile.State)
	}
}

func TestCopyFromCopiesEveryField(t *testing.T) {
	src := Tile{State: TileFilled, HoverX: true, HoverY: true, FlashUntil: 99}
	var dst Tile
	dst.CopyFrom(src)
	if dst != src {
		t.Errorf("CopyFrom: got %+v, want %+v", dst, src)
	}
}
