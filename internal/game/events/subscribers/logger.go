package subscribers

import (
	"encoding/json"

	"github.com/mitchelldurbincs/minesweeper/internal/game/events"
	"github.com/rs/zerolog"
)

// LoggerSubscriber logs events to structured logs
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // If non-nil, only log these event types
	devMode         bool            // If true, log full event details
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (nil means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}

	ls.eventTypeFilter = make(map[string]bool)
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// SetDevMode enables or disables development mode logging
func (ls *LoggerSubscriber) SetDevMode(enabled bool) {
	ls.devMode = enabled
}

func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	logEvent := ls.logger.WithLevel(ls.logLevel).
		Str("event_type", event.Type()).
		Str("game_id", event.GameID()).
		Time("timestamp", event.Timestamp())

	switch e := event.(type) {
	case *events.GameStartedEvent:
		logEvent.
			Str("difficulty", e.Difficulty).
			Int("width", e.Width).
			Int("height", e.Height).
			Int("mines", e.Mines)

	case *events.GameEndedEvent:
		logEvent.
			Bool("won", e.Won).
			Dur("duration", e.Duration).
			Int("moves", e.Moves)

	case *events.CellsRevealedEvent:
		logEvent.
			Int("x", e.Origin.X).
			Int("y", e.Origin.Y).
			Int("revealed", len(e.Cells)).
			Int("move", e.Move)

	case *events.MineHitEvent:
		logEvent.
			Int("x", e.Location.X).
			Int("y", e.Location.Y).
			Int("move", e.Move)

	case *events.FlagToggledEvent:
		logEvent.
			Int("x", e.Location.X).
			Int("y", e.Location.Y).
			Bool("flagged", e.Flagged).
			Int("remaining_mines", e.RemainingMines)

	case *events.StateTransitionEvent:
		logEvent.
			Str("from", e.FromPhase).
			Str("to", e.ToPhase).
			Str("reason", e.Reason)
	}

	if ls.devMode {
		if jsonData, err := json.Marshal(event); err == nil {
			logEvent.RawJSON("event_data", jsonData)
		}
	}

	logEvent.Msg("Game event")
}
