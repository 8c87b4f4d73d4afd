package states

import (
	"time"

	"github.com/rs/zerolog"
)

// GameContext provides game-specific information to states for making decisions
type GameContext struct {
	// GameID uniquely identifies this game instance
	GameID string

	Logger zerolog.Logger

	// StartTime is when PhaseRunning was entered
	StartTime time.Time

	// EndTime is when the game was won or lost
	EndTime time.Time

	// Moves counts reveals that changed the board
	Moves int

	// Won is set on entering PhaseWon
	Won bool

	// Now is the clock used for timing; tests replace it
	Now func() time.Time

	base zerolog.Logger
}

// NewGameContext creates a new game context
func NewGameContext(gameID string, logger zerolog.Logger) *GameContext {
	gc := &GameContext{Now: time.Now, base: logger}
	gc.SetGameID(gameID)
	return gc
}

// SetGameID switches the context to a new game and rebinds the logger
func (gc *GameContext) SetGameID(gameID string) {
	gc.GameID = gameID
	gc.Logger = gc.base.With().Str("game_id", gameID).Logger()
}

// GetElapsedTime returns the play time. It keeps running while the game is
// in progress and freezes once the game has ended.
func (gc *GameContext) GetElapsedTime() time.Duration {
	if gc.StartTime.IsZero() {
		return 0
	}
	if !gc.EndTime.IsZero() {
		return gc.EndTime.Sub(gc.StartTime)
	}
	return gc.Now().Sub(gc.StartTime)
}
