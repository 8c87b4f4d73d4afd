package core

// ActionType represents the type of action
type ActionType int

const (
	ActionReveal ActionType = iota
	ActionFlag
)

func (t ActionType) String() string {
	switch t {
	case ActionReveal:
		return "reveal"
	case ActionFlag:
		return "flag"
	default:
		return "unknown"
	}
}

// Action represents a player action against a single cell
type Action interface {
	GetType() ActionType
	Target() Coordinate
	Validate(b *Board) error
}

// RevealAction uncovers a cell
type RevealAction struct {
	X, Y int
}

func (a *RevealAction) GetType() ActionType { return ActionReveal }
func (a *RevealAction) Target() Coordinate  { return NewCoordinate(a.X, a.Y) }

// Validate only checks bounds. Revealing a revealed or flagged cell is a
// legal no-op, not an error.
func (a *RevealAction) Validate(b *Board) error {
	if !b.InBounds(a.X, a.Y) {
		return ErrInvalidCoordinates
	}
	return nil
}

// FlagAction toggles the flag on a cell
type FlagAction struct {
	X, Y int
}

func (a *FlagAction) GetType() ActionType { return ActionFlag }
func (a *FlagAction) Target() Coordinate  { return NewCoordinate(a.X, a.Y) }

func (a *FlagAction) Validate(b *Board) error {
	if !b.InBounds(a.X, a.Y) {
		return ErrInvalidCoordinates
	}
	return nil
}
