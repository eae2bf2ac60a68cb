package shared

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Cents counts the lowest currency unit, e.g. $1.20 = 120.
type Cents int64

func (c Cents) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

func (c Cents) String() string {
	return c.Decimal().StringFixed(2)
}

type Kind string

const (
	Bill Kind = "bill"
	Coin Kind = "coin"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case Bill, Coin:
		return k, nil
	default:
		return "", fmt.Errorf("unknown denomination kind %q (expected bill or coin)", s)
	}
}

// Denomination is one bill or coin. It is a plain value and can be used as a map key.
type Denomination struct {
	Name  string `json:"name"`
	Value Cents  `json:"value"`
	Kind  Kind   `json:"kind"`
	Icon  string `json:"icon,omitempty"`
}

type Holding struct {
	Denomination Denomination `json:"denomination"`
	Count        int64        `json:"count"`
}

func (h Holding) Value() Cents {
	return h.Denomination.Value * Cents(h.Count)
}
