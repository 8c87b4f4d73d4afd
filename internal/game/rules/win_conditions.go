package rules

import (
	"github.com/mitchelldurbincs/minesweeper/internal/game/core"
	"github.com/rs/zerolog"
)

// Verdict is the game status after a move
type Verdict int

const (
	Playing Verdict = iota
	Won
	Lost
)

func (v Verdict) String() string {
	switch v {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "playing"
	}
}

// IsGameOver reports whether the verdict ends the game
func (v Verdict) IsGameOver() bool { return v != Playing }

// Board is the part of core.Board the checker needs
type Board interface {
	CheckWin() bool
	RevealedSafeCount() int
	SafeCellCount() int
}

// WinConditionChecker turns reveal outcomes into win/loss verdicts
type WinConditionChecker struct {
	logger zerolog.Logger
}

// NewWinConditionChecker creates a new win condition checker
func NewWinConditionChecker(logger zerolog.Logger) *WinConditionChecker {
	return &WinConditionChecker{
		logger: logger.With().Str("component", "WinConditionChecker").Logger(),
	}
}

// Evaluate decides the game status after a reveal. A mine always loses;
// otherwise the game is won once every safe cell is open.
func (wc *WinConditionChecker) Evaluate(b Board, outcome core.Outcome) Verdict {
	verdict := Playing
	switch {
	case outcome == core.HitMine:
		verdict = Lost
	case b.CheckWin():
		verdict = Won
	}

	wc.logger.Debug().
		Str("outcome", outcome.String()).
		Int("revealed_safe", b.RevealedSafeCount()).
		Int("safe_cells", b.SafeCellCount()).
		Str("verdict", verdict.String()).
		Msg("Win condition check complete")

	return verdict
}
