package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchelldurbincs/minesweeper/internal/game"
	"github.com/mitchelldurbincs/minesweeper/internal/game/mapgen"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Game        GameConfig        `mapstructure:"game"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	Demo        DemoConfig        `mapstructure:"demo"`
	Development DevelopmentConfig `mapstructure:"development"`
}

// GameConfig holds board settings
type GameConfig struct {
	Difficulty string       `mapstructure:"difficulty"`
	Custom     CustomConfig `mapstructure:"custom"`
	Placement  string       `mapstructure:"placement"`
	Seed       int64        `mapstructure:"seed"` // 0 means seed from the clock
}

// CustomConfig holds the dimensions used when difficulty is "custom"
type CustomConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
	Mines  int `mapstructure:"mines"`
}

// LoggingConfig holds zerolog settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DemoConfig drives the random-play demo binary
type DemoConfig struct {
	MaxMoves   int     `mapstructure:"max_moves"`
	FlagChance float64 `mapstructure:"flag_chance"`
}

// DevelopmentConfig holds development/debug settings
type DevelopmentConfig struct {
	VerboseLogging bool `mapstructure:"verbose_logging"`
	ShowAllCells   bool `mapstructure:"show_all_cells"`
}

var (
	// Global config instance. mu guards cfg against the reload goroutine
	// started by WatchConfig.
	mu  sync.RWMutex
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	v.SetDefault("game.difficulty", "beginner")
	v.SetDefault("game.custom.width", 10)
	v.SetDefault("game.custom.height", 10)
	v.SetDefault("game.custom.mines", 15)
	v.SetDefault("game.placement", string(mapgen.StrategyRejection))
	v.SetDefault("game.seed", 0)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("demo.max_moves", 200)
	v.SetDefault("demo.flag_chance", 0.1)

	v.SetDefault("development.verbose_logging", false)
	v.SetDefault("development.show_all_cells", false)
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()
	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/minesweeper")
	}

	v.SetEnvPrefix("MSW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case configPath != "" && isMissingFile(err):
			// An explicit path that does not exist falls back to defaults.
		case errors.As(err, &notFound):
		default:
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	loaded := &Config{}
	if err := v.Unmarshal(loaded); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(loaded); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	mu.Lock()
	cfg = loaded
	mu.Unlock()
	return nil
}

func isMissingFile(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return true
	}
	return errors.Is(err, fs.ErrNotExist)
}

// Get returns a copy of the current config. Later reloads do not change
// a copy that has already been handed out.
func Get() *Config {
	mu.RLock()
	current := cfg
	mu.RUnlock()

	if current == nil {
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
		mu.RLock()
		current = cfg
		mu.RUnlock()
	}

	c := *current
	return &c
}

func store(c *Config) {
	mu.Lock()
	cfg = c
	mu.Unlock()
}

// GetViper returns the viper instance for advanced usage
func GetViper() *viper.Viper {
	if v == nil {
		panic("config not initialized - call Init() first")
	}
	return v
}

// LoadEnvironmentConfig merges config.<env>.yaml from dir over the loaded config
func LoadEnvironmentConfig(dir, env string) error {
	if env == "" {
		return nil
	}

	envFile := fmt.Sprintf("config.%s.yaml", env)
	if dir != "" {
		envFile = strings.TrimRight(dir, "/") + "/" + envFile
	}

	v.SetConfigFile(envFile)
	if err := v.MergeInConfig(); err != nil {
		if !isMissingFile(err) {
			return fmt.Errorf("error merging environment config %s: %w", envFile, err)
		}
	}

	merged := &Config{}
	if err := v.Unmarshal(merged); err != nil {
		return fmt.Errorf("unable to decode merged config into struct: %w", err)
	}
	if err := Validate(merged); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	store(merged)
	return nil
}

// Set allows runtime config updates
func Set(key string, value interface{}) error {
	v.Set(key, value)
	next := &Config{}
	if err := v.Unmarshal(next); err != nil {
		return err
	}
	store(next)
	return nil
}

func GetString(key string) string { return v.GetString(key) }
func GetInt(key string) int       { return v.GetInt(key) }
func GetBool(key string) bool     { return v.GetBool(key) }

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of the config file. Reloads that fail
// validation are dropped and reported through onError.
func WatchConfig(onChange func(*Config), onError func(error)) {
	watched := v
	watched.OnConfigChange(func(e fsnotify.Event) {
		next := &Config{}
		err := watched.Unmarshal(next)
		if err == nil {
			err = Validate(next)
		}
		if err != nil {
			if onError != nil {
				onError(fmt.Errorf("reload %s: %w", e.Name, err))
			}
			return
		}
		store(next)
		if onChange != nil {
			c := *next
			onChange(&c)
		}
	})
	watched.WatchConfig()
}

// Validate validates the configuration values
func Validate(c *Config) error {
	d, err := game.ParseDifficulty(c.Game.Difficulty)
	if err != nil {
		return fmt.Errorf("game.difficulty must be one of beginner, intermediate, expert, custom: %w", err)
	}
	if d == game.Custom {
		custom := c.Game.Custom
		if _, err := game.CustomSettings(custom.Width, custom.Height, custom.Mines).Validate(); err != nil {
			return fmt.Errorf("game.custom: %w", err)
		}
	}
	if _, err := mapgen.ParseStrategy(c.Game.Placement); err != nil {
		return fmt.Errorf("game.placement: %w", err)
	}

	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json")
	}

	if c.Demo.MaxMoves <= 0 {
		return fmt.Errorf("demo.max_moves must be positive")
	}
	if c.Demo.FlagChance < 0 || c.Demo.FlagChance > 1 {
		return fmt.Errorf("demo.flag_chance must be between 0 and 1")
	}

	return nil
}
