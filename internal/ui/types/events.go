package types

import (
	"habiter/internal/domain"
)

type UIEvent struct {
	Type    UIEventType
	Payload interface{}
}

type UIEventType int

const (
	UIEventNone UIEventType = iota
	UIEventSteer
	UIEventRestart
	UIEventApplySettings
	UIEventQuit
	UIEventShowGameOver
	UIEventShowScores
	UIEventShowSettings
)

// SteerData lists the directions pressed in one frame, oldest first.
type SteerData struct {
	Directions []domain.Direction
}

type SettingsData struct {
	Config *domain.GameConfig
}
