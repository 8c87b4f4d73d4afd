package game

import (
	"fmt"
	"strings"

	"github.com/mitchelldurbincs/minesweeper/internal/game/core"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorCyan   = "\033[36m"
	ColorWhite  = "\033[37m"
	ColorGray   = "\033[90m"
)

const (
	HiddenSymbol = "■"
	FlagSymbol   = "⚑"
	MineSymbol   = "*"
	EmptySymbol  = "·"
)

// countColors is indexed by adjacency count
var countColors = [9]string{
	ColorGray, ColorBlue, ColorGreen, ColorRed, ColorPurple,
	ColorYellow, ColorCyan, ColorWhite, ColorGray,
}

// Render draws the current board. With showAll set, hidden cells are drawn
// as if opened, which is only meant for debugging.
func (e *Engine) Render(showAll bool) string {
	return RenderBoard(e.board.W, e.board.H, e.board.Cells(), showAll)
}

// RenderBoard draws a row-major cell snapshot with ANSI colors
func RenderBoard(width, height int, cells []core.CellState, showAll bool) string {
	// Each cell takes 2 chars for the symbol plus ~10 for color codes
	var sb strings.Builder
	sb.Grow((width*12+4)*(height+3) + 64)

	sb.WriteString("   ")
	for x := 0; x < width; x++ {
		fmt.Fprintf(&sb, "%2d", x)
	}
	sb.WriteString("\n")

	for y := 0; y < height; y++ {
		fmt.Fprintf(&sb, "%2d ", y)
		for x := 0; x < width; x++ {
			writeCell(&sb, cells[y*width+x], showAll)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(HiddenSymbol + "=hidden " + FlagSymbol + "=flag " + MineSymbol + "=mine " + EmptySymbol + "=empty 1-8=adjacent mines\n")
	return sb.String()
}

// writeCell writes one two-column cell directly to the builder
func writeCell(sb *strings.Builder, c core.CellState, showAll bool) {
	open := c.Revealed || showAll
	switch {
	case c.Flagged && !c.Revealed:
		sb.WriteString(ColorRed)
		sb.WriteString(" " + FlagSymbol)
	case !open:
		sb.WriteString(ColorGray)
		sb.WriteString(" " + HiddenSymbol)
	case c.HasMine:
		sb.WriteString(ColorRed)
		sb.WriteString(" " + MineSymbol)
	case c.AdjacentMines == 0:
		sb.WriteString(ColorGray)
		sb.WriteString(" " + EmptySymbol)
	default:
		sb.WriteString(countColors[c.AdjacentMines])
		fmt.Fprintf(sb, "%2d", c.AdjacentMines)
	}
	sb.WriteString(ColorReset)
}
