package core

// Node is a single cell of the board.
// AdjacentMines is only meaningful when HasMine is false.
type Node struct {
	X, Y          int
	HasMine       bool
	AdjacentMines int
	Revealed      bool
	Flagged       bool
}

// CellState is a read-only copy of a node handed to callers.
type CellState struct {
	X             int  `json:"x"`
	Y             int  `json:"y"`
	HasMine       bool `json:"has_mine"`
	AdjacentMines int  `json:"adjacent_mines"`
	Revealed      bool `json:"revealed"`
	Flagged       bool `json:"flagged"`
}

// Reveal marks the node revealed. Calling it again has no effect.
func (n *Node) Reveal() { n.Revealed = true }

// ToggleFlag flips the flag on a hidden node and reports whether anything changed.
func (n *Node) ToggleFlag() bool {
	if n.Revealed {
		return false
	}
	n.Flagged = !n.Flagged
	return true
}

func (n *Node) IsEmpty() bool { return !n.HasMine && n.AdjacentMines == 0 }

// State returns a snapshot of the node
func (n *Node) State() CellState {
	return CellState{
		X:             n.X,
		Y:             n.Y,
		HasMine:       n.HasMine,
		AdjacentMines: n.AdjacentMines,
		Revealed:      n.Revealed,
		Flagged:       n.Flagged,
	}
}
