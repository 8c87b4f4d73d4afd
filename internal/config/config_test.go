package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetGlobals() {
	mu.Lock()
	cfg = nil
	mu.Unlock()
	v = nil
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestInit(t *testing.T) {
	configFile := writeFile(t, t.TempDir(), "config.yaml", `
game:
  difficulty: custom
  custom:
    width: 20
    height: 12
    mines: 30
  placement: shuffle
  seed: 7
logging:
  level: debug
  format: json
`)

	resetGlobals()
	require.NoError(t, Init(configFile))

	c := Get()
	assert.Equal(t, "custom", c.Game.Difficulty)
	assert.Equal(t, 20, c.Game.Custom.Width)
	assert.Equal(t, 12, c.Game.Custom.Height)
	assert.Equal(t, 30, c.Game.Custom.Mines)
	assert.Equal(t, "shuffle", c.Game.Placement)
	assert.Equal(t, int64(7), c.Game.Seed)
	assert.Equal(t, "debug", c.Logging.Level)
	assert.Equal(t, "json", c.Logging.Format)
	assert.Equal(t, configFile, ConfigFilePath())
}

func TestInitWithDefaults(t *testing.T) {
	resetGlobals()
	require.NoError(t, Init("/non/existent/path/config.yaml"))

	c := Get()
	assert.Equal(t, "beginner", c.Game.Difficulty)
	assert.Equal(t, "rejection", c.Game.Placement)
	assert.Equal(t, int64(0), c.Game.Seed)
	assert.Equal(t, "info", c.Logging.Level)
	assert.Equal(t, "console", c.Logging.Format)
	assert.Equal(t, 200, c.Demo.MaxMoves)
	assert.False(t, c.Development.ShowAllCells)
}

func TestInit_InvalidFileRejected(t *testing.T) {
	configFile := writeFile(t, t.TempDir(), "config.yaml", `
game:
  difficulty: nightmare
`)

	resetGlobals()
	err := Init(configFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "game.difficulty")
}

func TestEnvironmentVariables(t *testing.T) {
	resetGlobals()
	t.Setenv("MSW_GAME_DIFFICULTY", "expert")
	t.Setenv("MSW_LOGGING_LEVEL", "warn")

	require.NoError(t, Init(""))

	c := Get()
	assert.Equal(t, "expert", c.Game.Difficulty)
	assert.Equal(t, "warn", c.Logging.Level)
}

func TestSet(t *testing.T) {
	resetGlobals()
	require.NoError(t, Init(""))

	require.NoError(t, Set("game.difficulty", "intermediate"))
	require.NoError(t, Set("demo.max_moves", 5))

	c := Get()
	assert.Equal(t, "intermediate", c.Game.Difficulty)
	assert.Equal(t, 5, c.Demo.MaxMoves)
}

func TestGetHelpers(t *testing.T) {
	resetGlobals()
	require.NoError(t, Init(""))

	require.NoError(t, Set("test.string", "hello"))
	require.NoError(t, Set("test.int", 42))
	require.NoError(t, Set("test.bool", true))

	assert.Equal(t, "hello", GetString("test.string"))
	assert.Equal(t, 42, GetInt("test.int"))
	assert.Equal(t, true, GetBool("test.bool"))
	assert.NotNil(t, GetViper())
}

func TestLoadEnvironmentConfig(t *testing.T) {
	tmpDir := t.TempDir()
	baseConfig := writeFile(t, tmpDir, "config.yaml", `
game:
  difficulty: beginner
logging:
  level: info
`)
	writeFile(t, tmpDir, "config.prod.yaml", `
game:
  difficulty: expert
logging:
  level: error
  format: json
`)

	resetGlobals()
	require.NoError(t, Init(baseConfig))
	require.NoError(t, LoadEnvironmentConfig(tmpDir, "prod"))

	c := Get()
	assert.Equal(t, "expert", c.Game.Difficulty)
	assert.Equal(t, "error", c.Logging.Level)
	assert.Equal(t, "json", c.Logging.Format)
}

func TestLoadEnvironmentConfig_MissingOverlay(t *testing.T) {
	resetGlobals()
	require.NoError(t, Init(""))

	assert.NoError(t, LoadEnvironmentConfig(t.TempDir(), "staging"))
	assert.NoError(t, LoadEnvironmentConfig("", ""))
	assert.Equal(t, "beginner", Get().Game.Difficulty)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Game:    GameConfig{Difficulty: "beginner", Placement: "rejection"},
			Logging: LoggingConfig{Level: "info", Format: "console"},
			Demo:    DemoConfig{MaxMoves: 10, FlagChance: 0.2},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"difficulty is case insensitive", func(c *Config) { c.Game.Difficulty = "Expert" }, false},
		{"unknown difficulty", func(c *Config) { c.Game.Difficulty = "hard" }, true},
		{"custom without size", func(c *Config) { c.Game.Difficulty = "custom" }, true},
		{"custom with size", func(c *Config) {
			c.Game.Difficulty = "custom"
			c.Game.Custom = CustomConfig{Width: 9, Height: 9, Mines: 10}
		}, false},
		{"custom without mines", func(c *Config) {
			c.Game.Difficulty = "custom"
			c.Game.Custom = CustomConfig{Width: 9, Height: 9}
		}, true},
		{"custom side below four", func(c *Config) {
			c.Game.Difficulty = "custom"
			c.Game.Custom = CustomConfig{Width: 3, Height: 9, Mines: 1}
		}, true},
		{"custom side above fifty", func(c *Config) {
			c.Game.Difficulty = "custom"
			c.Game.Custom = CustomConfig{Width: 51, Height: 9, Mines: 1}
		}, true},
		{"custom board full of mines", func(c *Config) {
			c.Game.Difficulty = "custom"
			c.Game.Custom = CustomConfig{Width: 4, Height: 4, Mines: 16}
		}, true},
		{"custom limits ignored for presets", func(c *Config) {
			c.Game.Custom = CustomConfig{Width: 2, Height: 2, Mines: 9}
		}, false},
		{"bad placement", func(c *Config) { c.Game.Placement = "random" }, true},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, true},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, true},
		{"no demo moves", func(c *Config) { c.Demo.MaxMoves = 0 }, true},
		{"flag chance too high", func(c *Config) { c.Demo.FlagChance = 1.5 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := Validate(c)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWatchConfig_Registers(t *testing.T) {
	configFile := writeFile(t, t.TempDir(), "config.yaml", "game:\n  difficulty: beginner\n")
	resetGlobals()
	require.NoError(t, Init(configFile))

	assert.NotPanics(t, func() {
		WatchConfig(func(*Config) {}, func(error) {})
	})
}

func TestInit_CustomBoardLimits(t *testing.T) {
	configFile := writeFile(t, t.TempDir(), "config.yaml", `
game:
  difficulty: custom
  custom:
    width: 3
    height: 3
    mines: 1
`)

	resetGlobals()
	err := Init(configFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "game.custom")
	assert.Contains(t, err.Error(), "between 4 and 50")
}

func TestGet_ReturnsCopy(t *testing.T) {
	resetGlobals()
	require.NoError(t, Init(""))

	c := Get()
	c.Demo.MaxMoves = 1
	c.Game.Difficulty = "expert"

	assert.Equal(t, 200, Get().Demo.MaxMoves)
	assert.Equal(t, "beginner", Get().Game.Difficulty)
}

func TestWatchConfig_ReloadWhileReading(t *testing.T) {
	dir := t.TempDir()
	configFile := writeFile(t, dir, "config.yaml", "demo:\n  max_moves: 1\n")
	resetGlobals()
	require.NoError(t, Init(configFile))

	var reloads atomic.Int32
	WatchConfig(func(c *Config) { reloads.Add(1) }, nil)

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
				c := Get()
				_ = c.Demo.MaxMoves
				_ = c.Development.ShowAllCells
			}
		}
	}()

	const rewrites = 20
	for i := 1; i <= rewrites; i++ {
		writeFile(t, dir, "config.yaml", fmt.Sprintf("demo:\n  max_moves: %d\n", i+1))
		time.Sleep(10 * time.Millisecond)
	}

	assert.Eventually(t, func() bool {
		return Get().Demo.MaxMoves == rewrites+1
	}, 3*time.Second, 20*time.Millisecond, "last rewrite should be picked up")
	close(done)
	wg.Wait()
	assert.Greater(t, reloads.Load(), int32(0))
}
