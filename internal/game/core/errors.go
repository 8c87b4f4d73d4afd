package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrInvalidDimensions  = errors.New("board dimensions must be positive")
	ErrInvalidMineCount   = errors.New("mine count must be at least 1 and less than the number of cells")
	ErrInvalidMineLayout  = errors.New("invalid mine layout")
	ErrGameOver           = errors.New("game is over")
)

// WrapActionError adds the action kind and its target cell to err.
func WrapActionError(action Action, err error) error {
	if err == nil {
		return nil
	}
	if action == nil {
		return fmt.Errorf("player action: %w", err)
	}
	c := action.Target()
	return fmt.Errorf("%s %s: %w", action.GetType(), c, err)
}
