package domain

import (
	"fmt"
	"log"
	"math"
	"sort"
	"strings"

	"making-change/events"
	"making-change/shared"
)

// Purse is a multiset of denominations. It is the aggregate root of the
// register: every Add and Remove is recorded as an event, and the purse state
// is only ever changed by applying those events.
type Purse struct {
	ID        string
	Version   int
	Requested shared.Cents

	cash    map[shared.Denomination]int64
	changes []events.Event
}

func NewPurse(id string) *Purse {
	return &Purse{
		ID:      id,
		cash:    make(map[shared.Denomination]int64),
		changes: make([]events.Event, 0),
	}
}

func (p *Purse) GetUncommittedChanges() []events.Event {
	unCommittedChanges := p.changes
	p.changes = make([]events.Event, 0)
	return unCommittedChanges
}

func (p *Purse) handleChange(event events.Event) error {
	if err := p.ApplyEvent(event); err != nil {
		log.Printf("ERROR: Internal Apply failed for event %T on purse %s: %v", event, p.ID, err)
		return fmt.Errorf("internal error applying event %T: %w", event, err)
	}
	p.changes = append(p.changes, event)
	return nil
}

// HandleOpen marks a fresh purse as built by the register for the requested amount.
func (p *Purse) HandleOpen(requested shared.Cents) error {
	if p.Version > 0 {
		return fmt.Errorf("%w: purse %s (current version %d)", ErrPurseExists, p.ID, p.Version)
	}
	if requested < 0 {
		return fmt.Errorf("%w: %s", ErrNegativeAmount, requested)
	}
	event := events.PurseOpenedEvent{
		BaseEvent: events.NewBaseEvent(p.ID, p.Version+1, events.PurseOpenedType),
		Requested: requested,
	}
	return p.handleChange(event)
}

// Add increments the stored count of d. Adding zero is a no-op.
func (p *Purse) Add(d shared.Denomination, count int64) error {
	if err := validateDenomination(d); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDenomination, err)
	}
	if count < 0 {
		return NewDomainError("count to add must not be negative: %d", count)
	}
	if count == 0 {
		return nil
	}
	if err := p.checkCapacity(d, count); err != nil {
		return err
	}

	event := events.DenominationAddedEvent{
		BaseEvent:    events.NewBaseEvent(p.ID, p.Version+1, events.DenominationAddedType),
		Denomination: d,
		Count:        count,
	}
	return p.handleChange(event)
}

// Remove takes count pieces of d out of the purse and returns their value.
// The purse is left untouched when it holds fewer than count pieces.
func (p *Purse) Remove(d shared.Denomination, count int64) (shared.Cents, error) {
	if count < 0 {
		return 0, NewDomainError("count to remove must not be negative: %d", count)
	}
	stored := p.cash[d]
	if stored < count {
		return 0, fmt.Errorf("%w: requested %d x %s, available %d",
			ErrInsufficientQuantity, count, d.Name, stored)
	}
	if count == 0 {
		return 0, nil
	}

	event := events.DenominationRemovedEvent{
		BaseEvent:    events.NewBaseEvent(p.ID, p.Version+1, events.DenominationRemovedType),
		Denomination: d,
		Count:        count,
	}
	if err := p.handleChange(event); err != nil {
		return 0, err
	}
	return d.Value * shared.Cents(count), nil
}

// checkCapacity rejects an addition whose count or purse total would not fit in int64.
func (p *Purse) checkCapacity(d shared.Denomination, count int64) error {
	if d.Value <= 0 {
		return fmt.Errorf("%w: face value of %q must be positive", ErrInvalidDenomination, d.Name)
	}
	if count > math.MaxInt64-p.cash[d] {
		return fmt.Errorf("%w: %d x %s would overflow the stored count %d",
			ErrInvalidAmount, count, d.Name, p.cash[d])
	}
	total := p.TotalValue()
	if count > int64(math.MaxInt64-total)/int64(d.Value) {
		return fmt.Errorf("%w: %d x %s would overflow the purse total %s",
			ErrInvalidAmount, count, d.Name, total)
	}
	return nil
}

func (p *Purse) Count(d shared.Denomination) int64 {
	return p.cash[d]
}

func (p *Purse) IsEmpty() bool {
	return len(p.cash) == 0
}

func (p *Purse) TotalValue() shared.Cents {
	var total shared.Cents
	for d, count := range p.cash {
		total += d.Value * shared.Cents(count)
	}
	return total
}

// Snapshot returns a copy of the purse contents; changing it does not affect the purse.
func (p *Purse) Snapshot() map[shared.Denomination]int64 {
	out := make(map[shared.Denomination]int64, len(p.cash))
	for d, count := range p.cash {
		out[d] = count
	}
	return out
}

// Holdings lists the contents largest face value first.
func (p *Purse) Holdings() []shared.Holding {
	holdings := make([]shared.Holding, 0, len(p.cash))
	for d, count := range p.cash {
		holdings = append(holdings, shared.Holding{Denomination: d, Count: count})
	}
	sort.Slice(holdings, func(i, j int) bool {
		a, b := holdings[i].Denomination, holdings[j].Denomination
		if a.Value != b.Value {
			return a.Value > b.Value
		}
		return a.Name < b.Name
	})
	return holdings
}

func (p *Purse) String() string {
	parts := make([]string, 0, len(p.cash))
	for _, h := range p.Holdings() {
		parts = append(parts, fmt.Sprintf("%s: %d", h.Denomination.Name, h.Count))
	}
	return "Purse [" + strings.Join(parts, ", ") + "]"
}

func (p *Purse) ApplyEvent(event events.Event) error {
	base := event.GetBase()

	if base.Version != p.Version+1 {
		return fmt.Errorf("apply failed: event version mismatch for purse %s: expected %d, got %d for event %T (%s)",
			p.ID, p.Version+1, base.Version, event, base.EventID)
	}

	switch e := event.(type) {
	case events.PurseOpenedEvent:
		p.ID = e.PurseID
		p.Requested = e.Requested
		p.cash = make(map[shared.Denomination]int64)
	case events.DenominationAddedEvent:
		if e.Count <= 0 {
			return fmt.Errorf("invariant violation: non-positive count %d applying %T (v%d)", e.Count, event, base.Version)
		}
		if err := p.checkCapacity(e.Denomination, e.Count); err != nil {
			return fmt.Errorf("invariant violation applying %T (v%d): %w", event, base.Version, err)
		}
		p.cash[e.Denomination] += e.Count
	case events.DenominationRemovedEvent:
		remaining := p.cash[e.Denomination] - e.Count
		if remaining < 0 {
			log.Printf("CRITICAL: Invariant Violation! Purse %s count of %s negative after applying %T (v%d): %d - %d = %d",
				p.ID, e.Denomination.Name, event, base.Version, p.cash[e.Denomination], e.Count, remaining)
			return fmt.Errorf("invariant violation: negative count applying %T (v%d)", event, base.Version)
		}
		if remaining == 0 {
			delete(p.cash, e.Denomination)
		} else {
			p.cash[e.Denomination] = remaining
		}
	default:
		return fmt.Errorf("apply failed: unknown event type %T for purse %s", event, p.ID)
	}

	p.Version = base.Version
	return nil
}

func (p *Purse) ApplyEvents(history []events.Event) error {
	for _, event := range history {
		if err := p.ApplyEvent(event); err != nil {
			base := event.GetBase()
			log.Printf("Error applying event during reconstruction: ID=%s, Type=%T, Version=%d, PurseID=%s\n", base.EventID, event, base.Version, base.PurseID)
			return fmt.Errorf("failed to apply event %s (%T) at version %d during reconstruction: %w", base.EventID, event, base.Version, err)
		}
	}
	return nil
}
