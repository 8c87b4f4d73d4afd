package core

import "fmt"

// Board owns the grid. Mine placement and adjacency counts are fixed once
// NewBoard returns; afterwards only reveal and flag state changes.
type Board struct {
	W, H      int
	MineCount int
	nodes     []Node // length = W*H (row-major)
	flags     int
	revealed  int // revealed non-mine nodes
}

// ValidateDimensions rejects sizes and mine counts that cannot form a playable board
func ValidateDimensions(w, h, mines int) error {
	if w < 1 || h < 1 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, w, h)
	}
	if mines < 1 || mines >= w*h {
		return fmt.Errorf("%w: got %d for %d cells", ErrInvalidMineCount, mines, w*h)
	}
	return nil
}

// NewBoard builds a w×h board with mines at the given row-major indices and
// computes every adjacency count. The number of indices is the mine count.
func NewBoard(w, h int, mines []int) (*Board, error) {
	if err := ValidateDimensions(w, h, len(mines)); err != nil {
		return nil, err
	}

	b := &Board{W: w, H: h, MineCount: len(mines), nodes: make([]Node, w*h)}
	for i := range b.nodes {
		b.nodes[i].X, b.nodes[i].Y = b.XY(i)
	}

	for _, idx := range mines {
		if idx < 0 || idx >= len(b.nodes) {
			return nil, fmt.Errorf("%w: index %d out of range", ErrInvalidMineLayout, idx)
		}
		if b.nodes[idx].HasMine {
			return nil, fmt.Errorf("%w: duplicate index %d", ErrInvalidMineLayout, idx)
		}
		b.nodes[idx].HasMine = true
	}

	b.computeAdjacency()
	return b, nil
}

// NewBoardFromCoordinates is NewBoard with mines given as coordinates
func NewBoardFromCoordinates(w, h int, mines []Coordinate) (*Board, error) {
	idx := make([]int, 0, len(mines))
	for _, c := range mines {
		if !c.IsValid(w, h) {
			return nil, fmt.Errorf("%w: mine at %s outside %dx%d", ErrInvalidMineLayout, c, w, h)
		}
		idx = append(idx, c.ToIndex(w))
	}
	return NewBoard(w, h, idx)
}

func (b *Board) computeAdjacency() {
	for i := range b.nodes {
		n := &b.nodes[i]
		if n.HasMine {
			continue
		}
		count := 0
		for _, c := range b.Neighbors(n.X, n.Y) {
			if b.nodes[b.Idx(c.X, c.Y)].HasMine {
				count++
			}
		}
		n.AdjacentMines = count
	}
}

func (b *Board) Idx(x, y int) int      { return y*b.W + x }
func (b *Board) XY(idx int) (int, int) { return idx % b.W, idx / b.W }

// InBounds checks if coordinates are within board boundaries
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// node returns a pointer into the grid, or nil when out of bounds
func (b *Board) node(x, y int) *Node {
	if !b.InBounds(x, y) {
		return nil
	}
	return &b.nodes[b.Idx(x, y)]
}

// Cell returns a copy of the cell state at (x, y)
func (b *Board) Cell(x, y int) (CellState, bool) {
	n := b.node(x, y)
	if n == nil {
		return CellState{}, false
	}
	return n.State(), true
}

// Cells returns a row-major snapshot of every cell
func (b *Board) Cells() []CellState {
	out := make([]CellState, len(b.nodes))
	for i := range b.nodes {
		out[i] = b.nodes[i].State()
	}
	return out
}

// Neighbors returns the in-bounds cells among the eight surrounding positions
func (b *Board) Neighbors(x, y int) []Coordinate {
	if !b.InBounds(x, y) {
		return nil
	}
	out := make([]Coordinate, 0, len(SurroundingOffsets))
	for _, off := range SurroundingOffsets {
		nx, ny := x+off.X, y+off.Y
		if b.InBounds(nx, ny) {
			out = append(out, Coordinate{X: nx, Y: ny})
		}
	}
	return out
}

// Link returns the orthogonal neighbor in direction d, if it exists
func (b *Board) Link(x, y int, d Direction) (Coordinate, bool) {
	if !b.InBounds(x, y) {
		return Coordinate{}, false
	}
	c := NewCoordinate(x, y).Move(d)
	if !c.IsValid(b.W, b.H) {
		return Coordinate{}, false
	}
	return c, true
}

// MineCoordinates lists every mine position in row-major order
func (b *Board) MineCoordinates() []Coordinate {
	out := make([]Coordinate, 0, b.MineCount)
	for i := range b.nodes {
		if b.nodes[i].HasMine {
			out = append(out, FromIndex(i, b.W))
		}
	}
	return out
}

func (b *Board) FlagCount() int         { return b.flags }
func (b *Board) RevealedSafeCount() int { return b.revealed }
func (b *Board) SafeCellCount() int     { return b.W*b.H - b.MineCount }
