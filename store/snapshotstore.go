package store

import (
	"fmt"
	"sync"
	"time"

	"making-change/domain"
)

type SnapshotStore interface {
	SaveSnapshot(snapshot *domain.Snapshot) error

	GetLatestSnapshot(purseID string) (snapshot *domain.Snapshot, found bool, err error)
}

type InMemorySnapshotStore struct {
	sync.RWMutex
	snapshots map[string]domain.Snapshot
}

func NewInMemorySnapshotStore() *InMemorySnapshotStore {
	return &InMemorySnapshotStore{
		snapshots: make(map[string]domain.Snapshot),
	}
}

// SaveSnapshot keeps only the newest snapshot per purse; older versions are ignored.
func (s *InMemorySnapshotStore) SaveSnapshot(snapshot *domain.Snapshot) error {
	if snapshot == nil {
		return fmt.Errorf("cannot save nil snapshot")
	}
	s.Lock()
	defer s.Unlock()

	if existing, ok := s.snapshots[snapshot.PurseID]; ok && existing.Version > snapshot.Version {
		return nil
	}

	stored := *snapshot
	stored.State = append([]byte(nil), snapshot.State...)
	stored.Timestamp = time.Now().UTC()
	s.snapshots[snapshot.PurseID] = stored
	return nil
}

func (s *InMemorySnapshotStore) GetLatestSnapshot(purseID string) (*domain.Snapshot, bool, error) {
	s.RLock()
	defer s.RUnlock()

	snapshot, found := s.snapshots[purseID]
	if !found {
		return nil, false, nil
	}

	snapshot.State = append([]byte(nil), snapshot.State...)
	return &snapshot, true, nil
}
