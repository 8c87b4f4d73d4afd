package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/minesweeper/internal/config"
	"github.com/mitchelldurbincs/minesweeper/internal/game"
	"github.com/mitchelldurbincs/minesweeper/internal/game/core"
	"github.com/mitchelldurbincs/minesweeper/internal/game/events"
	"github.com/mitchelldurbincs/minesweeper/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/minesweeper/internal/game/mapgen"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	difficulty := flag.String("difficulty", "", "beginner, intermediate, expert or custom (empty to use config default)")
	seed := flag.Int64("seed", 0, "RNG seed (0 to use config default, which seeds from the clock)")
	maxMoves := flag.Int("max-moves", -1, "Maximum demo moves (-1 to use config default)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if env := os.Getenv("APP_ENV"); env != "" {
		dir := "."
		if path := config.ConfigFilePath(); path != "" {
			dir = filepath.Dir(path)
		}
		if err := config.LoadEnvironmentConfig(dir, env); err != nil {
			log.Fatal().Err(err).Str("env", env).Msg("Failed to load environment config")
		}
	}

	overrides := map[string]interface{}{}
	if *logLevel != "" {
		overrides["logging.level"] = *logLevel
	}
	if *difficulty != "" {
		overrides["game.difficulty"] = *difficulty
	}
	if *seed != 0 {
		overrides["game.seed"] = *seed
	}
	if *maxMoves != -1 {
		overrides["demo.max_moves"] = *maxMoves
	}
	for key, value := range overrides {
		if err := config.Set(key, value); err != nil {
			log.Fatal().Err(err).Str("key", key).Msg("Invalid command line override")
		}
	}

	cfg := config.Get()
	if err := config.Validate(cfg); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	setupLogging(cfg.Logging.Level, cfg.Logging.Format)

	// Reloads only adjust the global log level. The running game keeps the
	// config it started with and log.Logger is never swapped.
	config.WatchConfig(
		func(c *config.Config) {
			applyLogLevel(c.Logging.Level)
			log.Info().Str("log_level", c.Logging.Level).Msg("Config reloaded")
		},
		func(err error) {
			log.Warn().Err(err).Msg("Ignoring invalid config change")
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := randomActionDemo(ctx, *cfg); err != nil {
		log.Fatal().Err(err).Msg("Demo failed")
	}
}

// settingsFromConfig resolves the configured difficulty to board settings
func settingsFromConfig(c config.GameConfig) (game.Settings, error) {
	d, err := game.ParseDifficulty(c.Difficulty)
	if err != nil {
		return game.Settings{}, err
	}
	if s, ok := game.PresetSettings(d); ok {
		return s, nil
	}
	return game.CustomSettings(c.Custom.Width, c.Custom.Height, c.Custom.Mines), nil
}

func randomActionDemo(ctx context.Context, cfg config.Config) error {
	settings, err := settingsFromConfig(cfg.Game)
	if err != nil {
		return err
	}
	strategy, err := mapgen.ParseStrategy(cfg.Game.Placement)
	if err != nil {
		return err
	}

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	bus := events.NewEventBus()
	if cfg.Development.VerboseLogging {
		sub := subscribers.NewLoggerSubscriber("demo_logger", log.Logger, zerolog.DebugLevel)
		sub.SetDevMode(true)
		bus.Subscribe(sub)
	}

	g, err := game.NewEngine(ctx, game.GameConfig{
		Settings: settings,
		Strategy: strategy,
		Rng:      rng,
		Logger:   log.Logger,
		EventBus: bus,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Game seed: %d\n%s\n", seed, settings.Description())
	fmt.Printf("Initial board:\n%s\n", g.Render(cfg.Development.ShowAllCells))

	moves := 0
	for ; moves < cfg.Demo.MaxMoves && !g.IsGameOver(); moves++ {
		if err := ctx.Err(); err != nil {
			log.Info().Msg("Demo interrupted")
			break
		}

		action := game.GenerateRandomAction(g, rng, cfg.Demo.FlagChance)
		if action == nil {
			break
		}
		if err := g.Apply(action); err != nil {
			return err
		}

		target := action.Target()
		fmt.Printf("Move %d: %s %s | mines left: %d\n", moves+1, action.GetType(), target, g.RemainingMines())
		if action.GetType() == core.ActionReveal {
			fmt.Print(g.Render(cfg.Development.ShowAllCells))
			fmt.Println()
		}
	}

	switch {
	case g.Won():
		fmt.Printf("Board cleared in %d moves (%ds)!\n", g.Moves(), g.ElapsedSeconds())
	case g.IsGameOver():
		fmt.Printf("Boom! Mine hit after %d moves (%ds).\n", g.Moves(), g.ElapsedSeconds())
	default:
		fmt.Printf("Demo stopped after %d moves\n", moves)
	}

	fmt.Printf("\nFinal board:\n%s", g.Render(true))
	return nil
}

// setupLogging configures log.Logger once at startup
func setupLogging(level, format string) {
	applyLogLevel(level)

	if format == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}
}

// applyLogLevel is safe to call while other goroutines are logging
func applyLogLevel(level string) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)
}
