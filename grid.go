package main

// Grid is a square board of tiles stored in row-major order.
// All access goes through At/Set so snapshots never alias live cells.
type Grid struct {
	size  int
	tiles []Tile
}

func NewGrid(size int) *Grid {
	return &Grid{
		size:  size,
		tiles: make([]Tile, size*size),
	}
}

func (g *Grid) Size() int {
	return g.size
}

func (g *Grid) index(x, y int) int {
	return y*g.size + x
}

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.size && y >= 0 && y < g.size
}

func (g *Grid) At(x, y int) Tile {
	return g.tiles[g.index(x, y)]
}

func (g *Grid) Set(x, y int, t Tile) {
	g.tiles[g.index(x, y)] = t
}

func (g *Grid) SetState(x, y int, s TileState) {
	g.tiles[g.index(x, y)].State = s
}

// Clone returns an independent deep copy of the grid.
func (g *Grid) Clone() *Grid {
	tiles := make([]Tile, len(g.tiles))
	copy(tiles, g.tiles)
	return &Grid{size: g.size, tiles: tiles}
}

// CopyFrom overwrites every tile from src. Both grids must be the same size.
func (g *Grid) CopyFrom(src *Grid) {
	for i := range g.tiles {
		g.tiles[i].CopyFrom(src.tiles[i])
	}
}

func (g *Grid) Equal(other *Grid) bool {
	if g.size != other.size {
		return false
	}
	for i, t := range g.tiles {
		if t != other.tiles[i] {
			return false
		}
	}
	return true
}
