package core

import "fmt"

// Outcome is the result of a reveal request
type Outcome int

const (
	NoOp Outcome = iota
	Continue
	HitMine
)

func (o Outcome) String() string {
	switch o {
	case NoOp:
		return "noop"
	case Continue:
		return "continue"
	case HitMine:
		return "hit_mine"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// RevealResult describes a reveal and every cell it uncovered
type RevealResult struct {
	Outcome  Outcome
	Revealed []Coordinate
}

// Reveal uncovers the cell at (x, y). Out-of-bounds, revealed and flagged
// cells are left alone and report NoOp.
func (b *Board) Reveal(x, y int) Outcome {
	return b.RevealDetailed(x, y).Outcome
}

// RevealDetailed behaves like Reveal and also returns the cells uncovered,
// starting with (x, y) and followed by flood-fill order.
func (b *Board) RevealDetailed(x, y int) RevealResult {
	n := b.node(x, y)
	if n == nil || n.Revealed || n.Flagged {
		return RevealResult{Outcome: NoOp}
	}

	b.revealNode(n)
	res := RevealResult{Outcome: Continue, Revealed: []Coordinate{{X: x, Y: y}}}

	if n.HasMine {
		res.Outcome = HitMine
		return res
	}
	if n.AdjacentMines == 0 {
		res.Revealed = append(res.Revealed, b.floodFill(x, y)...)
	}
	return res
}

// floodFill expands breadth-first from an empty cell. Numbered cells are
// revealed but not expanded; flagged cells are neither revealed nor visited.
func (b *Board) floodFill(startX, startY int) []Coordinate {
	start := b.Idx(startX, startY)
	visited := make([]bool, len(b.nodes))
	visited[start] = true
	queue := []int{start}

	var uncovered []Coordinate
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		cx, cy := b.XY(cur)

		for _, c := range b.Neighbors(cx, cy) {
			idx := b.Idx(c.X, c.Y)
			nb := &b.nodes[idx]
			if visited[idx] || nb.Flagged {
				continue
			}
			visited[idx] = true
			if !nb.Revealed {
				b.revealNode(nb)
				uncovered = append(uncovered, c)
			}
			if nb.IsEmpty() {
				queue = append(queue, idx)
			}
		}
	}
	return uncovered
}

func (b *Board) revealNode(n *Node) {
	if n.Revealed {
		return
	}
	n.Reveal()
	if !n.HasMine {
		b.revealed++
	}
}

// ToggleFlag flips the flag on a hidden cell. It returns the resulting flag
// state and whether the call changed anything.
func (b *Board) ToggleFlag(x, y int) (flagged bool, changed bool) {
	n := b.node(x, y)
	if n == nil {
		return false, false
	}
	if !n.ToggleFlag() {
		return n.Flagged, false
	}
	if n.Flagged {
		b.flags++
	} else {
		b.flags--
	}
	return n.Flagged, true
}

// CheckWin reports whether every non-mine cell has been revealed
func (b *Board) CheckWin() bool {
	return b.revealed == b.SafeCellCount()
}

// RevealAllMines uncovers every mine and leaves other cells untouched
func (b *Board) RevealAllMines() {
	for i := range b.nodes {
		if b.nodes[i].HasMine {
			b.nodes[i].Reveal()
		}
	}
}
