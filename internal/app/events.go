package app

import (
	"habiter/internal/domain"
)

type EventType int

const (
	EventStateUpdated EventType = iota
	EventFoodEaten
	EventGameOver
	EventRestarted
	EventError
)

func (t EventType) String() string {
	switch t {
	case EventStateUpdated:
		return "state-updated"
	case EventFoodEaten:
		return "food-eaten"
	case EventGameOver:
		return "game-over"
	case EventRestarted:
		return "restarted"
	case EventError:
		return "error"
	}
	return "unknown"
}

type Event struct {
	Type    EventType
	Payload interface{}
}

// GameOverPayload carries the final state. Rank is the place in the high
// score table, 0 when the score did not make it.
type GameOverPayload struct {
	Snapshot domain.Snapshot
	Rank     int
}

type ErrorPayload struct {
	Message string
}

type CommandType int

const (
	CommandSteer CommandType = iota
	CommandRestart
	CommandReconfigure
)

type Command struct {
	Type    CommandType
	Payload interface{}
}
