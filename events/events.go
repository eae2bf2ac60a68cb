package events

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

type BaseEvent struct {
	EventID   uuid.UUID `json:"eventId"`
	PurseID   string    `json:"purseId"`
	Version   int       `json:"version"` // Version of the purse *after* this event is applied.
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

type Event interface {
	GetBase() BaseEvent
}

func (e BaseEvent) GetBase() BaseEvent {
	return e
}

const (
	PurseOpenedType         EventType = "PurseOpened"
	DenominationAddedType   EventType = "DenominationAdded"
	DenominationRemovedType EventType = "DenominationRemoved"
)

func NewBaseEvent(purseID string, version int, eventType EventType) BaseEvent {
	return BaseEvent{
		EventID:   uuid.New(),
		PurseID:   purseID,
		Version:   version,
		Timestamp: time.Now().UTC(),
		Type:      eventType,
	}
}
