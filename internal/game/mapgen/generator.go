package mapgen

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/mitchelldurbincs/minesweeper/internal/game/core"
)

// Strategy selects how mine positions are drawn
type Strategy string

const (
	// StrategyRejection picks uniform coordinates until enough distinct
	// cells are mined. Slows down as density approaches the whole board.
	StrategyRejection Strategy = "rejection"
	// StrategyShuffle draws from the cell index list with a partial
	// Fisher-Yates shuffle and always finishes in W*H steps.
	StrategyShuffle Strategy = "shuffle"
)

// ParseStrategy converts a config string to a Strategy
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case "", StrategyRejection:
		return StrategyRejection, nil
	case StrategyShuffle:
		return StrategyShuffle, nil
	default:
		return "", fmt.Errorf("unknown placement strategy %q", s)
	}
}

// MapConfig holds configuration for board generation
type MapConfig struct {
	Width    int
	Height   int
	Mines    int
	Strategy Strategy
}

// DefaultMapConfig returns a config using rejection sampling
func DefaultMapConfig(w, h, mines int) MapConfig {
	return MapConfig{
		Width:    w,
		Height:   h,
		Mines:    mines,
		Strategy: StrategyRejection,
	}
}

// Generator handles mine placement with a caller-supplied RNG
type Generator struct {
	config MapConfig
	rng    *rand.Rand
}

// NewGenerator creates a new board generator
func NewGenerator(config MapConfig, rng *rand.Rand) *Generator {
	return &Generator{
		config: config,
		rng:    rng,
	}
}

// Generate validates the config, places mines and returns the finished board
func (g *Generator) Generate() (*core.Board, error) {
	c := g.config
	if err := core.ValidateDimensions(c.Width, c.Height, c.Mines); err != nil {
		return nil, err
	}

	var mines []int
	switch c.Strategy {
	case StrategyRejection, "":
		mines = g.placeRejection()
	case StrategyShuffle:
		mines = g.placeShuffle()
	default:
		return nil, fmt.Errorf("unknown placement strategy %q", c.Strategy)
	}

	return core.NewBoard(c.Width, c.Height, mines)
}

func (g *Generator) placeRejection() []int {
	w, h := g.config.Width, g.config.Height
	taken := make([]bool, w*h)
	mines := make([]int, 0, g.config.Mines)

	for len(mines) < g.config.Mines {
		x, y := g.rng.Intn(w), g.rng.Intn(h)
		idx := y*w + x
		if taken[idx] {
			continue
		}
		taken[idx] = true
		mines = append(mines, idx)
	}
	return mines
}

func (g *Generator) placeShuffle() []int {
	candidates := make([]int, g.config.Width*g.config.Height)
	for i := range candidates {
		candidates[i] = i
	}

	k := len(candidates)
	mines := make([]int, 0, g.config.Mines)
	for range g.config.Mines {
		i := g.rng.Intn(k)
		mines = append(mines, candidates[i])
		k--
		candidates[i] = candidates[k]
	}
	return mines
}
