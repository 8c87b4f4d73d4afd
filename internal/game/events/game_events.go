package events

import (
	"time"

	"github.com/mitchelldurbincs/minesweeper/internal/game/core"
)

// Event type constants
const (
	TypeGameStarted     = "game.started"
	TypeGameEnded       = "game.ended"
	TypeCellsRevealed   = "cells.revealed"
	TypeMineHit         = "mine.hit"
	TypeFlagToggled     = "flag.toggled"
	TypeStateTransition = "state.transition"
)

// GameStartedEvent is published when a new board is ready for play
type GameStartedEvent struct {
	BaseEvent
	Difficulty string
	Width      int
	Height     int
	Mines      int
}

func NewGameStartedEvent(gameID, difficulty string, width, height, mines int) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent:  newBase(TypeGameStarted, gameID),
		Difficulty: difficulty,
		Width:      width,
		Height:     height,
		Mines:      mines,
	}
}

// GameEndedEvent is published once per game, on a win or on hitting a mine
type GameEndedEvent struct {
	BaseEvent
	Won      bool
	Duration time.Duration
	Moves    int
}

func NewGameEndedEvent(gameID string, won bool, duration time.Duration, moves int) *GameEndedEvent {
	return &GameEndedEvent{
		BaseEvent: newBase(TypeGameEnded, gameID),
		Won:       won,
		Duration:  duration,
		Moves:     moves,
	}
}

// CellsRevealedEvent carries every cell uncovered by a single reveal
type CellsRevealedEvent struct {
	BaseEvent
	Origin core.Coordinate
	Cells  []core.Coordinate
	Move   int
}

func NewCellsRevealedEvent(gameID string, origin core.Coordinate, cells []core.Coordinate, move int) *CellsRevealedEvent {
	return &CellsRevealedEvent{
		BaseEvent: newBase(TypeCellsRevealed, gameID),
		Origin:    origin,
		Cells:     cells,
		Move:      move,
	}
}

// MineHitEvent is published when a reveal lands on a mine
type MineHitEvent struct {
	BaseEvent
	Location core.Coordinate
	Move     int
}

func NewMineHitEvent(gameID string, location core.Coordinate, move int) *MineHitEvent {
	return &MineHitEvent{
		BaseEvent: newBase(TypeMineHit, gameID),
		Location:  location,
		Move:      move,
	}
}

// FlagToggledEvent is published when a hidden cell's flag changes
type FlagToggledEvent struct {
	BaseEvent
	Location       core.Coordinate
	Flagged        bool
	RemainingMines int
}

func NewFlagToggledEvent(gameID string, location core.Coordinate, flagged bool, remaining int) *FlagToggledEvent {
	return &FlagToggledEvent{
		BaseEvent:      newBase(TypeFlagToggled, gameID),
		Location:       location,
		Flagged:        flagged,
		RemainingMines: remaining,
	}
}

// StateTransitionEvent is published when the game state machine transitions between phases
type StateTransitionEvent struct {
	BaseEvent
	FromPhase string
	ToPhase   string
	Reason    string
}

func NewStateTransitionEvent(gameID, fromPhase, toPhase, reason string) *StateTransitionEvent {
	return &StateTransitionEvent{
		BaseEvent: newBase(TypeStateTransition, gameID),
		FromPhase: fromPhase,
		ToPhase:   toPhase,
		Reason:    reason,
	}
}
