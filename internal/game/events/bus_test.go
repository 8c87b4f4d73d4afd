package events_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/minesweeper/internal/game/core"
	"github.com/mitchelldurbincs/minesweeper/internal/game/events"
)

// TestSubscriber implements the Subscriber interface for testing
type TestSubscriber struct {
	id         string
	events     []events.Event
	interested map[string]bool
}

func NewTestSubscriber(id string, interestedTypes ...string) *TestSubscriber {
	interested := make(map[string]bool)
	for _, t := range interestedTypes {
		interested[t] = true
	}
	return &TestSubscriber{id: id, interested: interested}
}

func (ts *TestSubscriber) ID() string                    { return ts.id }
func (ts *TestSubscriber) HandleEvent(event events.Event) { ts.events = append(ts.events, event) }

func (ts *TestSubscriber) InterestedIn(eventType string) bool {
	if len(ts.interested) == 0 {
		return true
	}
	return ts.interested[eventType]
}

func TestEventBus_FuncHandler(t *testing.T) {
	bus := events.NewEventBus()

	var received events.Event
	id := bus.SubscribeFunc(events.TypeGameStarted, func(e events.Event) {
		received = e
	})
	assert.Equal(t, "game.started_func_1", id)

	bus.Publish(events.NewGameStartedEvent("test-game", "Beginner", 8, 8, 10))

	require.NotNil(t, received)
	assert.Equal(t, events.TypeGameStarted, received.Type())
	assert.Equal(t, "test-game", received.GameID())
	assert.False(t, received.Timestamp().IsZero())
	assert.Equal(t, 1, bus.GetFuncHandlerCount(events.TypeGameStarted))
}

func TestEventBus_SubscriberFiltering(t *testing.T) {
	bus := events.NewEventBus()

	sub := NewTestSubscriber("test1", events.TypeGameStarted, events.TypeGameEnded)
	bus.Subscribe(sub)
	assert.Equal(t, 1, bus.GetSubscriberCount())

	bus.Publish(events.NewGameStartedEvent("game1", "Beginner", 8, 8, 10))
	require.Len(t, sub.events, 1)

	bus.Publish(events.NewMineHitEvent("game1", core.NewCoordinate(1, 2), 3))
	assert.Len(t, sub.events, 1, "not interested in mine.hit")

	bus.Publish(events.NewGameEndedEvent("game1", false, 0, 3))
	require.Len(t, sub.events, 2)
	ended, ok := sub.events[1].(*events.GameEndedEvent)
	require.True(t, ok)
	assert.False(t, ended.Won)
	assert.Equal(t, 3, ended.Moves)

	bus.Unsubscribe("test1")
	assert.Equal(t, 0, bus.GetSubscriberCount())
	bus.Publish(events.NewGameStartedEvent("game1", "Beginner", 8, 8, 10))
	assert.Len(t, sub.events, 2)
}

func TestEventBus_PanicIsolation(t *testing.T) {
	bus := events.NewEventBus()

	called := false
	bus.SubscribeFunc(events.TypeFlagToggled, func(events.Event) { panic("boom") })
	bus.SubscribeFunc(events.TypeFlagToggled, func(events.Event) { called = true })

	assert.NotPanics(t, func() {
		bus.Publish(events.NewFlagToggledEvent("g", core.NewCoordinate(0, 0), true, 9))
	})
	assert.True(t, called, "second handler still runs")
}

func TestEventBus_HandlerMayPublish(t *testing.T) {
	bus := events.NewEventBus()

	var ended bool
	bus.SubscribeFunc(events.TypeMineHit, func(e events.Event) {
		bus.Publish(events.NewGameEndedEvent(e.GameID(), false, 0, 1))
	})
	bus.SubscribeFunc(events.TypeGameEnded, func(events.Event) { ended = true })

	bus.Publish(events.NewMineHitEvent("g", core.NewCoordinate(0, 0), 1))
	assert.True(t, ended)
}

func TestCellsRevealedEvent(t *testing.T) {
	cells := []core.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}}
	e := events.NewCellsRevealedEvent("g", cells[0], cells, 2)

	assert.Equal(t, events.TypeCellsRevealed, e.Type())
	assert.Equal(t, cells, e.Cells)
	assert.Equal(t, 2, e.Move)
}
