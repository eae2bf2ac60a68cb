package domain

import (
	"fmt"

	"making-change/shared"
)

// Register makes change greedily: as many of the largest denomination as fit,
// then the next smaller one. The result is optimal for canonical catalogs
// such as US currency.
type Register struct {
	catalog *Catalog
}

func NewRegister(catalog *Catalog) *Register {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Register{catalog: catalog}
}

func (r *Register) Catalog() *Catalog { return r.catalog }

// Breakdown returns the greedy split of amount, largest denomination first,
// and whatever could not be represented by the catalog.
func (r *Register) Breakdown(amount shared.Cents) ([]shared.Holding, shared.Cents, error) {
	if amount < 0 {
		return nil, 0, fmt.Errorf("%w: %s", ErrNegativeAmount, amount)
	}

	holdings := make([]shared.Holding, 0, r.catalog.Len())
	remaining := amount
	for _, d := range r.catalog.denominations {
		if remaining <= 0 {
			break
		}
		count := int64(remaining / d.Value)
		if count > 0 {
			holdings = append(holdings, shared.Holding{Denomination: d, Count: count})
			remaining -= d.Value * shared.Cents(count)
		}
	}
	return holdings, remaining, nil
}

func (r *Register) MakeChange(amount shared.Cents) (*Purse, error) {
	return r.MakeChangeFor("", amount)
}

// MakeChangeFor builds a new purse with the given ID holding the change for amount.
func (r *Register) MakeChangeFor(purseID string, amount shared.Cents) (*Purse, error) {
	holdings, remainder, err := r.Breakdown(amount)
	if err != nil {
		return nil, err
	}
	if remainder != 0 {
		return nil, fmt.Errorf("%w: %s cannot be paid out, smallest denomination is %s (%s)",
			ErrInvalidAmount, remainder, r.catalog.Smallest().Name, r.catalog.Smallest().Value)
	}

	purse := NewPurse(purseID)
	if err := purse.HandleOpen(amount); err != nil {
		return nil, err
	}
	for _, h := range holdings {
		if err := purse.Add(h.Denomination, h.Count); err != nil {
			return nil, fmt.Errorf("adding %d x %s: %w", h.Count, h.Denomination.Name, err)
		}
	}
	return purse, nil
}
