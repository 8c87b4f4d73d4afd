package game

import (
	"fmt"
	"strings"
)

// Difficulty names a board preset
type Difficulty int

const (
	Beginner Difficulty = iota
	Intermediate
	Expert
	Custom
)

const (
	MinSide = 4
	MaxSide = 50

	// Boards denser than this are allowed but reported as an advisory.
	denseMineRatio = 0.7
)

func (d Difficulty) String() string {
	switch d {
	case Beginner:
		return "beginner"
	case Intermediate:
		return "intermediate"
	case Expert:
		return "expert"
	case Custom:
		return "custom"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

// ParseDifficulty accepts the lowercase preset names, ignoring case and spaces
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "beginner":
		return Beginner, nil
	case "intermediate":
		return Intermediate, nil
	case "expert":
		return Expert, nil
	case "custom":
		return Custom, nil
	default:
		return 0, fmt.Errorf("unknown difficulty %q", s)
	}
}

// Settings is the board size and mine count for a game
type Settings struct {
	Difficulty Difficulty
	Width      int
	Height     int
	Mines      int
}

var presets = map[Difficulty]Settings{
	Beginner:     {Difficulty: Beginner, Width: 8, Height: 8, Mines: 10},
	Intermediate: {Difficulty: Intermediate, Width: 16, Height: 16, Mines: 40},
	Expert:       {Difficulty: Expert, Width: 16, Height: 30, Mines: 99},
}

// PresetSettings returns the fixed settings of a preset. Custom has no
// preset and returns false.
func PresetSettings(d Difficulty) (Settings, bool) {
	s, ok := presets[d]
	return s, ok
}

// CustomSettings builds user-supplied settings. Call Validate before use.
func CustomSettings(width, height, mines int) Settings {
	return Settings{Difficulty: Custom, Width: width, Height: height, Mines: mines}
}

// Cells is the total number of cells on the board
func (s Settings) Cells() int { return s.Width * s.Height }

// Validate checks the settings against the board limits. Warnings are
// advisories that do not prevent the game from starting.
func (s Settings) Validate() (warnings []string, err error) {
	if s.Width < MinSide || s.Width > MaxSide || s.Height < MinSide || s.Height > MaxSide {
		return nil, fmt.Errorf("%dx%d: %w", s.Width, s.Height, ErrCustomDimensions)
	}
	cells := s.Cells()
	if s.Mines < 1 || s.Mines >= cells {
		return nil, fmt.Errorf("%d mines on %d cells: %w", s.Mines, cells, ErrCustomMines)
	}
	if float64(s.Mines) > denseMineRatio*float64(cells) {
		warnings = append(warnings, fmt.Sprintf(
			"%d mines cover more than %.0f%% of %d cells; the board will be very hard",
			s.Mines, denseMineRatio*100, cells))
	}
	return warnings, nil
}

// Description is the one-line summary shown next to the board
func (s Settings) Description() string {
	return fmt.Sprintf("Board: %dx%d | Mines: %d", s.Width, s.Height, s.Mines)
}
