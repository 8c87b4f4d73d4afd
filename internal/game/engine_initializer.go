package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/mitchelldurbincs/minesweeper/internal/game/core"
	"github.com/mitchelldurbincs/minesweeper/internal/game/events"
	"github.com/mitchelldurbincs/minesweeper/internal/game/mapgen"
	"github.com/mitchelldurbincs/minesweeper/internal/game/rules"
	"github.com/mitchelldurbincs/minesweeper/internal/game/states"
	"github.com/rs/zerolog"
)

// GameConfig holds everything needed to start a game
type GameConfig struct {
	Settings Settings
	Strategy mapgen.Strategy
	Rng      *rand.Rand
	Logger   zerolog.Logger

	// GameID is generated when empty
	GameID string
	// EventBus is created when nil
	EventBus *events.EventBus
	// Layout fixes the mine indices instead of placing them randomly.
	// Its length must equal Settings.Mines.
	Layout []int
	// Now defaults to time.Now
	Now func() time.Time
}

// EngineInitializer handles the construction of a game engine
type EngineInitializer struct {
	config GameConfig
	logger zerolog.Logger
}

// NewEngineInitializer creates a new engine initializer
func NewEngineInitializer(cfg GameConfig) *EngineInitializer {
	logger := cfg.Logger.With().Str("component", "GameEngine").Logger()
	return &EngineInitializer{
		config: cfg,
		logger: logger,
	}
}

// NewEngine validates cfg and returns a running game
func NewEngine(ctx context.Context, cfg GameConfig) (*Engine, error) {
	return NewEngineInitializer(cfg).Initialize(ctx)
}

// Initialize creates a new engine and starts its first game
func (ei *EngineInitializer) Initialize(ctx context.Context) (*Engine, error) {
	select {
	case <-ctx.Done():
		ei.logger.Error().Err(ctx.Err()).Msg("Engine creation cancelled before board generation")
		return nil, ctx.Err()
	default:
	}

	warnings, err := ei.config.Settings.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	for _, w := range warnings {
		ei.logger.Warn().Str("difficulty", ei.config.Settings.Difficulty.String()).Msg(w)
	}

	ei.setupDefaults()

	board, err := ei.buildBoard()
	if err != nil {
		return nil, fmt.Errorf("map generation failed: %w", err)
	}

	engine := ei.createEngine(board)
	if err := engine.start(); err != nil {
		return nil, fmt.Errorf("state machine initialization failed: %w", err)
	}

	ei.logger.Info().
		Str("game_id", engine.gameID).
		Int("width", board.W).
		Int("height", board.H).
		Int("mines", board.MineCount).
		Str("placement", string(ei.config.Strategy)).
		Msg("Engine created successfully")

	return engine, nil
}

// setupDefaults fills in optional configuration
func (ei *EngineInitializer) setupDefaults() {
	if ei.config.Rng == nil {
		ei.logger.Debug().Msg("No RNG provided, creating new seeded RNG")
		ei.config.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if ei.config.Strategy == "" {
		ei.config.Strategy = mapgen.StrategyRejection
	}
	if ei.config.GameID == "" {
		ei.config.GameID = newGameID()
	}
	if ei.config.Now == nil {
		ei.config.Now = time.Now
	}
	if ei.config.EventBus == nil {
		ei.config.EventBus = events.NewEventBusWithLogger(ei.logger)
	}
}

// buildBoard places mines, either randomly or from the fixed layout
func (ei *EngineInitializer) buildBoard() (*core.Board, error) {
	s := ei.config.Settings
	if ei.config.Layout != nil {
		if len(ei.config.Layout) != s.Mines {
			return nil, fmt.Errorf("%d mines in layout, %d in settings: %w",
				len(ei.config.Layout), s.Mines, ErrLayoutMismatch)
		}
		return core.NewBoard(s.Width, s.Height, ei.config.Layout)
	}

	mapCfg := mapgen.DefaultMapConfig(s.Width, s.Height, s.Mines)
	mapCfg.Strategy = ei.config.Strategy
	return mapgen.NewGenerator(mapCfg, ei.config.Rng).Generate()
}

// createEngine wires the board to the state machine and event bus
func (ei *EngineInitializer) createEngine(board *core.Board) *Engine {
	gameContext := states.NewGameContext(ei.config.GameID, ei.logger)
	gameContext.Now = ei.config.Now

	return &Engine{
		board:        board,
		settings:     ei.config.Settings,
		initializer:  ei,
		winCondition: rules.NewWinConditionChecker(ei.logger),
		eventBus:     ei.config.EventBus,
		gameID:       ei.config.GameID,
		stateMachine: states.NewStateMachine(gameContext, ei.config.EventBus),
	}
}

func newGameID() string {
	return uuid.NewString()
}
