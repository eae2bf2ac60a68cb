package domain

import (
	"fmt"
	"sort"
	"strings"

	"making-change/shared"
)

// Catalog is the read-only set of denominations a register can hand out,
// ordered by strictly descending face value.
type Catalog struct {
	denominations []shared.Denomination
}

func NewCatalog(denominations []shared.Denomination) (*Catalog, error) {
	if len(denominations) == 0 {
		return nil, fmt.Errorf("%w: no denominations", ErrInvalidCatalog)
	}

	ordered := make([]shared.Denomination, len(denominations))
	copy(ordered, denominations)

	names := make(map[string]struct{}, len(ordered))
	for _, d := range ordered {
		if err := validateDenomination(d); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
		}
		key := strings.ToLower(d.Name)
		if _, dup := names[key]; dup {
			return nil, fmt.Errorf("%w: duplicate denomination name %q", ErrInvalidCatalog, d.Name)
		}
		names[key] = struct{}{}
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Value > ordered[j].Value
	})
	for i := 1; i < len(ordered); i++ {
		if ordered[i].Value == ordered[i-1].Value {
			return nil, fmt.Errorf("%w: %q and %q share face value %s",
				ErrInvalidCatalog, ordered[i-1].Name, ordered[i].Name, ordered[i].Value)
		}
	}

	return &Catalog{denominations: ordered}, nil
}

func DefaultCatalog() *Catalog {
	c, err := NewCatalog([]shared.Denomination{
		{Name: "Hundred Bill", Value: 10000, Kind: shared.Bill, Icon: "hundred_note.png"},
		{Name: "Fifty Bill", Value: 5000, Kind: shared.Bill, Icon: "fifty_note.png"},
		{Name: "Twenty Bill", Value: 2000, Kind: shared.Bill, Icon: "twenty_note.png"},
		{Name: "Ten Bill", Value: 1000, Kind: shared.Bill, Icon: "ten_note.png"},
		{Name: "Five Bill", Value: 500, Kind: shared.Bill, Icon: "five_note.png"},
		{Name: "One Bill", Value: 100, Kind: shared.Bill, Icon: "one_note.png"},
		{Name: "Quarter", Value: 25, Kind: shared.Coin, Icon: "quarter.png"},
		{Name: "Dime", Value: 10, Kind: shared.Coin, Icon: "dime.png"},
		{Name: "Nickel", Value: 5, Kind: shared.Coin, Icon: "nickel.png"},
		{Name: "Penny", Value: 1, Kind: shared.Coin, Icon: "penny.png"},
	})
	if err != nil {
		panic(err)
	}
	return c
}

// Denominations returns a copy of the ordered sequence.
func (c *Catalog) Denominations() []shared.Denomination {
	out := make([]shared.Denomination, len(c.denominations))
	copy(out, c.denominations)
	return out
}

func (c *Catalog) Len() int { return len(c.denominations) }

func (c *Catalog) Smallest() shared.Denomination {
	return c.denominations[len(c.denominations)-1]
}

// Lookup finds a denomination by name, ignoring case and surrounding spaces.
func (c *Catalog) Lookup(name string) (shared.Denomination, error) {
	want := strings.TrimSpace(name)
	for _, d := range c.denominations {
		if strings.EqualFold(d.Name, want) {
			return d, nil
		}
	}
	return shared.Denomination{}, fmt.Errorf("%w: %q", ErrUnknownDenomination, name)
}

func validateDenomination(d shared.Denomination) error {
	if strings.TrimSpace(d.Name) == "" {
		return NewDomainError("denomination name cannot be empty")
	}
	if d.Value <= 0 {
		return NewDomainError("face value of %q must be positive: %s", d.Name, d.Value)
	}
	if d.Kind != shared.Bill && d.Kind != shared.Coin {
		return NewDomainError("kind of %q must be bill or coin, got %q", d.Name, d.Kind)
	}
	return nil
}
