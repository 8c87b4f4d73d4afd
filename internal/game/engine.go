package game

import (
	"context"
	"fmt"
	"time"

	"github.com/mitchelldurbincs/minesweeper/internal/game/core"
	"github.com/mitchelldurbincs/minesweeper/internal/game/events"
	"github.com/mitchelldurbincs/minesweeper/internal/game/rules"
	"github.com/mitchelldurbincs/minesweeper/internal/game/states"
	"github.com/rs/zerolog"
)

// Engine runs one game at a time on a single board. It is not safe for
// concurrent use.
type Engine struct {
	board        *core.Board
	settings     Settings
	initializer  *EngineInitializer
	winCondition *rules.WinConditionChecker
	eventBus     *events.EventBus
	gameID       string
	stateMachine *states.StateMachine
}

// start moves a freshly built board into play
func (e *Engine) start() error {
	if err := e.stateMachine.TransitionTo(states.PhaseRunning, "Board generated"); err != nil {
		return err
	}
	e.eventBus.Publish(events.NewGameStartedEvent(
		e.gameID,
		e.settings.Difficulty.String(),
		e.board.W,
		e.board.H,
		e.board.MineCount,
	))
	return nil
}

// Reveal uncovers the cell at (x, y). Out-of-bounds, revealed and flagged
// cells return NoOp without error. Once the game is over every call fails
// with core.ErrGameOver.
func (e *Engine) Reveal(x, y int) (core.Outcome, error) {
	action := &core.RevealAction{X: x, Y: y}
	if err := e.checkActive(action); err != nil {
		return core.NoOp, err
	}
	if !e.inBounds(action) {
		return core.NoOp, nil
	}

	res := e.board.RevealDetailed(x, y)
	if res.Outcome == core.NoOp {
		return core.NoOp, nil
	}

	gctx := e.stateMachine.GetContext()
	gctx.Moves++
	origin := action.Target()

	if res.Outcome == core.HitMine {
		e.eventBus.Publish(events.NewMineHitEvent(e.gameID, origin, gctx.Moves))
	} else {
		e.eventBus.Publish(events.NewCellsRevealedEvent(e.gameID, origin, res.Revealed, gctx.Moves))
	}

	verdict := e.winCondition.Evaluate(e.board, res.Outcome)
	if verdict.IsGameOver() {
		if err := e.endGame(verdict); err != nil {
			return res.Outcome, core.WrapActionError(action, err)
		}
	}
	return res.Outcome, nil
}

// ToggleFlag flips the flag on a hidden cell and returns the resulting flag
// state. Revealed and out-of-bounds cells are left alone.
func (e *Engine) ToggleFlag(x, y int) (bool, error) {
	action := &core.FlagAction{X: x, Y: y}
	if err := e.checkActive(action); err != nil {
		return false, err
	}
	if !e.inBounds(action) {
		return false, nil
	}

	flagged, changed := e.board.ToggleFlag(x, y)
	if changed {
		e.eventBus.Publish(events.NewFlagToggledEvent(e.gameID, action.Target(), flagged, e.RemainingMines()))
	}
	return flagged, nil
}

// Apply dispatches a reveal or flag action
func (e *Engine) Apply(action core.Action) error {
	if action == nil {
		return nil
	}
	c := action.Target()
	var err error
	switch action.GetType() {
	case core.ActionReveal:
		_, err = e.Reveal(c.X, c.Y)
	case core.ActionFlag:
		_, err = e.ToggleFlag(c.X, c.Y)
	default:
		err = core.WrapActionError(action, fmt.Errorf("unsupported action type %d", action.GetType()))
	}
	return err
}

func (e *Engine) checkActive(action core.Action) error {
	if !e.stateMachine.CurrentPhase().CanReceiveActions() {
		return core.WrapActionError(action, core.ErrGameOver)
	}
	return nil
}

func (e *Engine) inBounds(action core.Action) bool {
	if err := action.Validate(e.board); err != nil {
		e.logger().Debug().
			Err(core.WrapActionError(action, err)).
			Msg("Ignoring action outside the board")
		return false
	}
	return true
}

// endGame uncovers the mines, stops the clock and publishes the result
func (e *Engine) endGame(verdict rules.Verdict) error {
	e.board.RevealAllMines()

	phase, reason := states.PhaseLost, "Mine revealed"
	if verdict == rules.Won {
		phase, reason = states.PhaseWon, "All safe cells revealed"
	}
	if err := e.stateMachine.TransitionTo(phase, reason); err != nil {
		return fmt.Errorf("ending game: %w", err)
	}

	gctx := e.stateMachine.GetContext()
	e.eventBus.Publish(events.NewGameEndedEvent(e.gameID, gctx.Won, gctx.GetElapsedTime(), gctx.Moves))
	return nil
}

// Restart discards the current board and starts a new game with the same
// settings and a new game ID. On error the current game is kept.
func (e *Engine) Restart(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	board, err := e.initializer.buildBoard()
	if err != nil {
		return fmt.Errorf("map generation failed: %w", err)
	}

	gameID := newGameID()
	if err := e.stateMachine.Reset(gameID); err != nil {
		return fmt.Errorf("resetting state machine: %w", err)
	}
	e.board = board
	e.gameID = gameID

	if err := e.start(); err != nil {
		return fmt.Errorf("restarting game: %w", err)
	}
	e.logger().Info().Msg("Game restarted")
	return nil
}

// RemainingMines is the mine count minus placed flags. It goes negative
// when the player over-flags.
func (e *Engine) RemainingMines() int {
	return e.board.MineCount - e.board.FlagCount()
}

// Elapsed is the play time of the current game, frozen once it ends
func (e *Engine) Elapsed() time.Duration {
	return e.stateMachine.GetContext().GetElapsedTime()
}

// ElapsedSeconds is Elapsed truncated to whole seconds
func (e *Engine) ElapsedSeconds() int {
	return int(e.Elapsed() / time.Second)
}

// Cell returns a copy of the cell at (x, y)
func (e *Engine) Cell(x, y int) (core.CellState, bool) {
	return e.board.Cell(x, y)
}

// Cells returns a row-major copy of every cell
func (e *Engine) Cells() []core.CellState {
	return e.board.Cells()
}

func (e *Engine) Settings() Settings      { return e.settings }
func (e *Engine) Phase() states.GamePhase { return e.stateMachine.CurrentPhase() }
func (e *Engine) IsGameOver() bool        { return e.Phase().IsTerminal() }
func (e *Engine) Won() bool               { return e.Phase() == states.PhaseWon }
func (e *Engine) GameID() string          { return e.gameID }
func (e *Engine) Moves() int              { return e.stateMachine.GetContext().Moves }
func (e *Engine) EventBus() *events.EventBus {
	return e.eventBus
}

// History returns the lifecycle transitions of the current game
func (e *Engine) History() []states.Transition {
	return e.stateMachine.GetHistory()
}

func (e *Engine) logger() *zerolog.Logger {
	return &e.stateMachine.GetContext().Logger
}
