package store

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"making-change/events"
)

var (
	ErrOptimisticLock = errors.New("optimistic lock error: version conflict")
)

// EventStore is the purse journal: one ordered stream of events per purse.
type EventStore interface {
	SaveEvents(purseID string, expectedVersion int, eventsToSave []events.Event) error

	GetEvents(purseID string) ([]events.Event, error)

	GetEventsAfterVersion(purseID string, version int) ([]events.Event, error)

	PurseIDs() []string
}

// InMemoryEventStore lives as long as the process; nothing is written to disk.
type InMemoryEventStore struct {
	sync.RWMutex
	streams map[string][]events.Event
	order   []string
}

func NewInMemoryEventStore() *InMemoryEventStore {
	return &InMemoryEventStore{
		streams: make(map[string][]events.Event),
	}
}

func (s *InMemoryEventStore) SaveEvents(purseID string, expectedVersion int, newEvents []events.Event) error {
	s.Lock()
	defer s.Unlock()

	if len(newEvents) == 0 {
		log.Printf("Warning: SaveEvents called with zero events for purse %s", purseID)
		return nil
	}

	stream, streamExists := s.streams[purseID]
	currentVersion := 0
	if len(stream) > 0 {
		currentVersion = stream[len(stream)-1].GetBase().Version
	}

	if currentVersion != expectedVersion {
		return fmt.Errorf("%w: expected version %d, but current version is %d for purse %s",
			ErrOptimisticLock, expectedVersion, currentVersion, purseID)
	}

	nextVersion := expectedVersion
	for _, event := range newEvents {
		base := event.GetBase()
		nextVersion++
		if base.Version != nextVersion {
			return fmt.Errorf("event sequence error for purse %s: expected version %d for event %T (%s), but got %d",
				purseID, nextVersion, event, base.EventID, base.Version)
		}
		if base.PurseID != purseID {
			return fmt.Errorf("event purse ID mismatch: stream is for %s, but event %T (%s) has ID %s",
				purseID, event, base.EventID, base.PurseID)
		}
	}

	if !streamExists {
		s.streams[purseID] = make([]events.Event, 0, len(newEvents))
		s.order = append(s.order, purseID)
	}
	s.streams[purseID] = append(s.streams[purseID], newEvents...)

	return nil
}

func (s *InMemoryEventStore) GetEvents(purseID string) ([]events.Event, error) {
	return s.GetEventsAfterVersion(purseID, 0)
}

func (s *InMemoryEventStore) GetEventsAfterVersion(purseID string, version int) ([]events.Event, error) {
	s.RLock()
	defer s.RUnlock()

	stream := s.streams[purseID]
	for i, event := range stream {
		if event.GetBase().Version > version {
			result := make([]events.Event, len(stream)-i)
			copy(result, stream[i:])
			return result, nil
		}
	}
	return []events.Event{}, nil
}

// PurseIDs lists purses in the order they were first saved.
func (s *InMemoryEventStore) PurseIDs() []string {
	s.RLock()
	defer s.RUnlock()
	ids := make([]string, len(s.order))
	copy(ids, s.order)
	return ids
}
