package game

import "errors"

var (
	ErrCustomDimensions = errors.New("width and height must each be between 4 and 50")
	ErrCustomMines      = errors.New("mine count must be at least 1 and less than the number of cells")
	ErrLayoutMismatch   = errors.New("fixed mine layout does not match settings")
)
