package domain

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"making-change/shared"
)

const DefaultCurrencySymbol = "$"

var maxCents = decimal.NewFromInt(math.MaxInt64)

// ParseAmount converts user input such as "12.34" or "$12.34" into cents.
// Amounts with fractions of a cent are rejected rather than rounded.
func ParseAmount(s string) (shared.Cents, error) {
	return ParseAmountIn(s, DefaultCurrencySymbol)
}

// ParseAmountIn is ParseAmount for a register that prints amounts with symbol.
// Both symbol and "$" are accepted as a prefix.
func ParseAmountIn(s, symbol string) (shared.Cents, error) {
	raw := strings.TrimSpace(s)
	if symbol != "" && strings.HasPrefix(raw, symbol) {
		raw = strings.TrimPrefix(raw, symbol)
	} else {
		raw = strings.TrimPrefix(raw, DefaultCurrencySymbol)
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidAmount)
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, s)
	}
	if amount.IsNegative() {
		return 0, fmt.Errorf("%w: %s", ErrNegativeAmount, amount.String())
	}
	if !amount.Equal(amount.Truncate(2)) {
		return 0, fmt.Errorf("%w: %s has fractions of a cent", ErrInvalidAmount, amount.String())
	}

	cents := amount.Shift(2)
	if cents.GreaterThan(maxCents) {
		return 0, fmt.Errorf("%w: %s is too large", ErrInvalidAmount, amount.String())
	}
	return shared.Cents(cents.IntPart()), nil
}

func MustParseAmount(s string) shared.Cents {
	c, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return c
}

func FormatAmount(c shared.Cents, symbol string) string {
	return symbol + c.Decimal().StringFixed(2)
}
