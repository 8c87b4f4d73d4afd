package game

import (
	"math/rand"

	"github.com/mitchelldurbincs/minesweeper/internal/game/core"
	"github.com/rs/zerolog/log"
)

// GenerateRandomAction picks a random hidden cell and either flags it, with
// probability flagChance, or reveals it. Flagged cells only ever get
// unflagged. It returns nil once nothing is left to do.
// This is a helper intended for demos and tests, not a solver.
func GenerateRandomAction(g *Engine, rng *rand.Rand, flagChance float64) core.Action {
	if g.IsGameOver() {
		return nil
	}

	var hidden, flagged []core.Coordinate
	for _, c := range g.Cells() {
		switch {
		case c.Revealed:
		case c.Flagged:
			flagged = append(flagged, core.NewCoordinate(c.X, c.Y))
		default:
			hidden = append(hidden, core.NewCoordinate(c.X, c.Y))
		}
	}

	var action core.Action
	switch {
	case len(hidden) == 0 && len(flagged) == 0:
		return nil
	case len(hidden) == 0 || (len(flagged) > 0 && rng.Float64() < flagChance/2):
		c := flagged[rng.Intn(len(flagged))]
		action = &core.FlagAction{X: c.X, Y: c.Y}
	case rng.Float64() < flagChance:
		c := hidden[rng.Intn(len(hidden))]
		action = &core.FlagAction{X: c.X, Y: c.Y}
	default:
		c := hidden[rng.Intn(len(hidden))]
		action = &core.RevealAction{X: c.X, Y: c.Y}
	}

	target := action.Target()
	log.Debug().
		Str("action", action.GetType().String()).
		Int("x", target.X).Int("y", target.Y).
		Msg("Generated random action")
	return action
}
