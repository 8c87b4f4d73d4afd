package states

import (
	"fmt"
	"time"
)

// InitializingState represents board generation
type InitializingState struct{}

func NewInitializingState() State { return &InitializingState{} }

func (s *InitializingState) Phase() GamePhase { return PhaseInitializing }

func (s *InitializingState) Enter(ctx *GameContext) error {
	ctx.Logger.Debug().Msg("Entering Initializing state")
	return nil
}

func (s *InitializingState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().Msg("Exiting Initializing state")
	return nil
}

func (s *InitializingState) Validate(ctx *GameContext) error { return nil }

// RunningState represents active play; the session clock starts here
type RunningState struct{}

func NewRunningState() State { return &RunningState{} }

func (s *RunningState) Phase() GamePhase { return PhaseRunning }

func (s *RunningState) Enter(ctx *GameContext) error {
	ctx.StartTime = ctx.Now()
	ctx.EndTime = time.Time{}
	ctx.Logger.Info().
		Time("start_time", ctx.StartTime).
		Msg("Game started")
	return nil
}

func (s *RunningState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().
		Dur("elapsed", ctx.GetElapsedTime()).
		Msg("Exiting running state")
	return nil
}

func (s *RunningState) Validate(ctx *GameContext) error {
	if ctx.GameID == "" {
		return fmt.Errorf("cannot run a game without an id")
	}
	return nil
}

// WonState is entered when the last safe cell is revealed
type WonState struct{}

func NewWonState() State { return &WonState{} }

func (s *WonState) Phase() GamePhase { return PhaseWon }

func (s *WonState) Enter(ctx *GameContext) error {
	ctx.EndTime = ctx.Now()
	ctx.Won = true
	ctx.Logger.Info().
		Dur("game_duration", ctx.GetElapsedTime()).
		Int("moves", ctx.Moves).
		Msg("Game won")
	return nil
}

func (s *WonState) Exit(ctx *GameContext) error { return nil }

func (s *WonState) Validate(ctx *GameContext) error {
	if ctx.StartTime.IsZero() {
		return fmt.Errorf("cannot win a game that never started")
	}
	return nil
}

// LostState is entered when a mine is revealed
type LostState struct{}

func NewLostState() State { return &LostState{} }

func (s *LostState) Phase() GamePhase { return PhaseLost }

func (s *LostState) Enter(ctx *GameContext) error {
	ctx.EndTime = ctx.Now()
	ctx.Won = false
	ctx.Logger.Info().
		Dur("game_duration", ctx.GetElapsedTime()).
		Int("moves", ctx.Moves).
		Msg("Game lost")
	return nil
}

func (s *LostState) Exit(ctx *GameContext) error { return nil }

func (s *LostState) Validate(ctx *GameContext) error {
	if ctx.StartTime.IsZero() {
		return fmt.Errorf("cannot lose a game that never started")
	}
	return nil
}

// ResetState clears per-game data before a new board is generated
type ResetState struct{}

func NewResetState() State { return &ResetState{} }

func (s *ResetState) Phase() GamePhase { return PhaseReset }

func (s *ResetState) Enter(ctx *GameContext) error {
	ctx.Logger.Info().Msg("Resetting game")
	ctx.StartTime = time.Time{}
	ctx.EndTime = time.Time{}
	ctx.Moves = 0
	ctx.Won = false
	return nil
}

func (s *ResetState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().Msg("Game reset complete")
	return nil
}

func (s *ResetState) Validate(ctx *GameContext) error { return nil }
