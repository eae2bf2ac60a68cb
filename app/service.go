package app

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"making-change/domain"
	"making-change/events"
	"making-change/shared"
	"making-change/store"
)

const (
	SnapshotFrequency = 10
)

// RegisterService is the application layer: it runs the register for each
// change request and keeps the resulting purses in the in-memory journal.
// Each MakeChange call produces a new, independent purse which then becomes
// the current one.
type RegisterService struct {
	register      *domain.Register
	eventStore    store.EventStore
	snapshotStore store.SnapshotStore

	mu      sync.RWMutex
	current string
}

func NewRegisterService(register *domain.Register, es store.EventStore, ss store.SnapshotStore) *RegisterService {
	if register == nil || es == nil || ss == nil {
		log.Fatal("FATAL: Register, EventStore and SnapshotStore must not be nil")
	}
	return &RegisterService{
		register:      register,
		eventStore:    es,
		snapshotStore: ss,
	}
}

// --- Command Handlers ---

func (s *RegisterService) MakeChange(cmd MakeChangeCommand) (*domain.Purse, error) {
	purseID := uuid.NewString()

	purse, err := s.register.MakeChangeFor(purseID, cmd.Amount)
	if err != nil {
		return nil, fmt.Errorf("cannot make change for %s: %w", cmd.Amount, err)
	}

	changes := purse.GetUncommittedChanges()
	if len(changes) == 0 {
		log.Printf("ERROR: MakeChange for %s produced no events", cmd.Amount)
		return nil, errors.New("internal error: make change produced no events")
	}
	if err := s.eventStore.SaveEvents(purseID, 0, changes); err != nil {
		return nil, fmt.Errorf("failed to save events for purse %s: %w", purseID, err)
	}

	s.mu.Lock()
	s.current = purseID
	s.mu.Unlock()

	log.Printf("Change for %s made into purse %s: %s. Version: %d", cmd.Amount, purseID, purse, purse.Version)
	s.saveSnapshotIfNeeded(purse)
	return purse, nil
}

func (s *RegisterService) AddToPurse(cmd AddToPurseCommand) error {
	denomination, err := s.register.Catalog().Lookup(cmd.Denomination)
	if err != nil {
		return err
	}

	purse, err := s.loadPurse(s.resolveID(cmd.PurseID))
	if err != nil {
		return fmt.Errorf("failed to load purse for add: %w", err)
	}
	initialVersion := purse.Version

	if err := purse.Add(denomination, cmd.Count); err != nil {
		return fmt.Errorf("add to purse %s failed: %w", purse.ID, err)
	}

	if err := s.commit(purse, initialVersion); err != nil {
		return err
	}
	log.Printf("Added %d x %s to purse %s. New Version: %d", cmd.Count, denomination.Name, purse.ID, purse.Version)
	return nil
}

// RemoveFromPurse returns the value taken out. Insufficient quantity is
// reported as domain.ErrInsufficientQuantity and leaves the purse unchanged.
func (s *RegisterService) RemoveFromPurse(cmd RemoveFromPurseCommand) (shared.Cents, error) {
	denomination, err := s.register.Catalog().Lookup(cmd.Denomination)
	if err != nil {
		return 0, err
	}

	purse, err := s.loadPurse(s.resolveID(cmd.PurseID))
	if err != nil {
		return 0, fmt.Errorf("failed to load purse for removal: %w", err)
	}
	initialVersion := purse.Version

	removed, err := purse.Remove(denomination, cmd.Count)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientQuantity) {
			log.Printf("Removal failed for purse %s: %v", purse.ID, err)
			return 0, err
		}
		return 0, fmt.Errorf("remove from purse %s failed: %w", purse.ID, err)
	}

	if err := s.commit(purse, initialVersion); err != nil {
		return 0, err
	}
	log.Printf("Removed %d x %s (%s) from purse %s. New Version: %d", cmd.Count, denomination.Name, removed, purse.ID, purse.Version)
	return removed, nil
}

// --- Queries ---

func (s *RegisterService) GetPurse(query GetPurseQuery) (*domain.Purse, error) {
	return s.loadPurse(s.resolveID(query.PurseID))
}

func (s *RegisterService) GetPurseHistory(query GetHistoryQuery) ([]events.Event, error) {
	purseID := s.resolveID(query.PurseID)
	if purseID == "" {
		return nil, fmt.Errorf("%w: no change has been made yet", domain.ErrPurseNotFound)
	}

	history, err := s.eventStore.GetEvents(purseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get event history for purse %s: %w", purseID, err)
	}
	if len(history) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrPurseNotFound, purseID)
	}

	totalEvents := len(history)
	start := query.Skip
	if start < 0 {
		start = 0
	}
	if start >= totalEvents {
		return []events.Event{}, nil
	}

	end := start + query.Limit
	if query.Limit <= 0 || end > totalEvents {
		end = totalEvents
	}

	return history[start:end], nil
}

func (s *RegisterService) Denominations() []shared.Denomination {
	return s.register.Catalog().Denominations()
}

// PurseIDs lists every purse made in this session, oldest first.
func (s *RegisterService) PurseIDs() []string {
	return s.eventStore.PurseIDs()
}

func (s *RegisterService) CurrentPurseID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *RegisterService) resolveID(purseID string) string {
	if purseID != "" {
		return purseID
	}
	return s.CurrentPurseID()
}

// --- Purse Loading & Snapshotting Logic ---

func (s *RegisterService) commit(purse *domain.Purse, initialVersion int) error {
	changes := purse.GetUncommittedChanges()
	if len(changes) == 0 {
		log.Printf("Command for purse %s resulted in no state change.", purse.ID)
		return nil
	}
	if err := s.eventStore.SaveEvents(purse.ID, initialVersion, changes); err != nil {
		return fmt.Errorf("failed to save events for purse %s: %w", purse.ID, err)
	}
	s.saveSnapshotIfNeeded(purse)
	return nil
}

func (s *RegisterService) loadPurse(purseID string) (*domain.Purse, error) {
	if purseID == "" {
		return nil, fmt.Errorf("%w: no change has been made yet", domain.ErrPurseNotFound)
	}

	var purse *domain.Purse
	snapshotVersion := 0

	snapshot, found, err := s.snapshotStore.GetLatestSnapshot(purseID)
	if err != nil {
		log.Printf("Warning: Error loading snapshot for purse %s: %v. Attempting full event replay.", purseID, err)
		found = false
	}

	if found {
		purse, err = domain.ApplySnapshot(snapshot)
		if err != nil {
			log.Printf("ERROR: Failed to apply snapshot version %d for purse %s: %v. Rebuilding from all events.", snapshot.Version, purseID, err)
			purse = domain.NewPurse(purseID)
		} else {
			snapshotVersion = purse.Version
		}
	} else {
		purse = domain.NewPurse(purseID)
	}

	eventsToApply, err := s.eventStore.GetEventsAfterVersion(purseID, snapshotVersion)
	if err != nil {
		if snapshotVersion == 0 {
			return nil, fmt.Errorf("failed to load events for purse %s: %w", purseID, err)
		}
		log.Printf("Warning: Failed to get events after version %d for %s: %v", snapshotVersion, purseID, err)
	}

	if len(eventsToApply) > 0 {
		if err := purse.ApplyEvents(eventsToApply); err != nil {
			return nil, fmt.Errorf("critical error applying events to purse %s: %w", purseID, err)
		}
	}

	if purse.Version == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrPurseNotFound, purseID)
	}
	return purse, nil
}

func (s *RegisterService) saveSnapshotIfNeeded(purse *domain.Purse) {
	if purse.Version%SnapshotFrequency != 0 || purse.Version == 0 {
		return
	}

	snapshot, err := domain.CreateSnapshot(purse)
	if err != nil {
		log.Printf("ERROR: Failed to create snapshot for purse %s at version %d: %v", purse.ID, purse.Version, err)
		return
	}
	if err := s.snapshotStore.SaveSnapshot(snapshot); err != nil {
		log.Printf("ERROR: Failed to save snapshot for purse %s at version %d: %v", purse.ID, purse.Version, err)
		return
	}
	log.Printf("Snapshot saved for purse %s at version %d", purse.ID, purse.Version)
}
