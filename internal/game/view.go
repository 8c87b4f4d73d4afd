package game

import "github.com/mitchelldurbincs/minesweeper/internal/game/core"

// CellDisplay is how a presentation layer should draw a cell
type CellDisplay string

const (
	CellHidden  CellDisplay = "hidden"
	CellFlagged CellDisplay = "flagged"
	CellOpened  CellDisplay = "opened"
)

// CellView is the player-visible part of a cell. Count and Mine are only
// set once the cell is opened.
type CellView struct {
	X     int         `json:"x"`
	Y     int         `json:"y"`
	State CellDisplay `json:"state"`
	Count int         `json:"count,omitempty"`
	Mine  bool        `json:"mine,omitempty"`
}

// View is an immutable snapshot of a game for rendering
type View struct {
	GameID         string     `json:"game_id"`
	Difficulty     string     `json:"difficulty"`
	Width          int        `json:"width"`
	Height         int        `json:"height"`
	Mines          int        `json:"mines"`
	RemainingMines int        `json:"remaining_mines"`
	Phase          string     `json:"phase"`
	GameOver       bool       `json:"game_over"`
	Cleared        bool       `json:"cleared"`
	ElapsedSeconds int        `json:"elapsed_seconds"`
	Moves          int        `json:"moves"`
	Cells          []CellView `json:"cells"`
}

// View snapshots the current game. The result shares nothing with the engine.
func (e *Engine) View() View {
	cells := e.board.Cells()
	views := make([]CellView, len(cells))
	for i, c := range cells {
		views[i] = viewCell(c)
	}

	return View{
		GameID:         e.gameID,
		Difficulty:     e.settings.Difficulty.String(),
		Width:          e.board.W,
		Height:         e.board.H,
		Mines:          e.board.MineCount,
		RemainingMines: e.RemainingMines(),
		Phase:          e.Phase().String(),
		GameOver:       e.IsGameOver(),
		Cleared:        e.Won(),
		ElapsedSeconds: e.ElapsedSeconds(),
		Moves:          e.Moves(),
		Cells:          views,
	}
}

func viewCell(c core.CellState) CellView {
	v := CellView{X: c.X, Y: c.Y, State: CellHidden}
	switch {
	case c.Revealed:
		v.State = CellOpened
		v.Mine = c.HasMine
		if !c.HasMine {
			v.Count = c.AdjacentMines
		}
	case c.Flagged:
		v.State = CellFlagged
	}
	return v
}

// Cell returns the view of the cell at (x, y)
func (v View) Cell(x, y int) (CellView, bool) {
	if x < 0 || y < 0 || x >= v.Width || y >= v.Height {
		return CellView{}, false
	}
	return v.Cells[y*v.Width+x], true
}
