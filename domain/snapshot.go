package domain

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"making-change/events"
	"making-change/shared"
)

type Snapshot struct {
	PurseID   string    `json:"purseId"`
	Version   int       `json:"version"`
	State     []byte    `json:"state"`
	Timestamp time.Time `json:"timestamp"`
}

// purseState is the serialised form of a purse; JSON cannot key a map by a struct.
type purseState struct {
	ID        string           `json:"id"`
	Version   int              `json:"version"`
	Requested shared.Cents     `json:"requested"`
	Holdings  []shared.Holding `json:"holdings"`
}

func CreateSnapshot(purse *Purse) (*Snapshot, error) {
	stateJSON, err := json.Marshal(purseState{
		ID:        purse.ID,
		Version:   purse.Version,
		Requested: purse.Requested,
		Holdings:  purse.Holdings(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal purse state for snapshot (ID: %s, Version: %d): %w", purse.ID, purse.Version, err)
	}

	return &Snapshot{
		PurseID:   purse.ID,
		Version:   purse.Version,
		State:     stateJSON,
		Timestamp: time.Now().UTC(),
	}, nil
}

func ApplySnapshot(snap *Snapshot) (*Purse, error) {
	var state purseState
	if err := json.Unmarshal(snap.State, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot state into purse (ID: %s, Version: %d): %w", snap.PurseID, snap.Version, err)
	}

	if state.ID != snap.PurseID || state.Version != snap.Version {
		log.Printf("Warning: Snapshot/State mismatch after unmarshal for %s. Snapshot Version: %d, State Version: %d. Snapshot ID: %s, State ID: %s. Overwriting state with snapshot metadata.",
			snap.PurseID, snap.Version, state.Version, snap.PurseID, state.ID)
		state.ID = snap.PurseID
		state.Version = snap.Version
	}

	purse := &Purse{
		ID:        state.ID,
		Version:   state.Version,
		Requested: state.Requested,
		cash:      make(map[shared.Denomination]int64, len(state.Holdings)),
		changes:   make([]events.Event, 0),
	}
	for _, h := range state.Holdings {
		if h.Count <= 0 {
			return nil, fmt.Errorf("snapshot for purse %s (v%d) holds %d x %s", snap.PurseID, snap.Version, h.Count, h.Denomination.Name)
		}
		purse.cash[h.Denomination] += h.Count
	}
	return purse, nil
}
