package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"making-change/domain"
	"making-change/shared"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in      string
		out     shared.Cents
		wantErr error
	}{
		{"0", 0, nil},
		{"1", 100, nil},
		{"1.63", 163, nil},
		{"163", 16300, nil},
		{"0.41", 41, nil},
		{" $12.30 ", 1230, nil},
		{"$ 5", 500, nil},
		{"1.500", 150, nil},
		{"abc", 0, domain.ErrInvalidAmount},
		{"", 0, domain.ErrInvalidAmount},
		{"$", 0, domain.ErrInvalidAmount},
		{"1.2.3", 0, domain.ErrInvalidAmount},
		{"1.005", 0, domain.ErrInvalidAmount},
		{"99999999999999999999", 0, domain.ErrInvalidAmount},
		{"-1", 0, domain.ErrNegativeAmount},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := domain.ParseAmount(tc.in)
			if tc.wantErr != nil {
				assert.True(t, errors.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.out, got)
		})
	}
}

func TestParseAmountIn(t *testing.T) {
	tests := []struct {
		in     string
		symbol string
		out    shared.Cents
	}{
		{"€5", "€", 500},
		{" € 1.25 ", "€", 125},
		{"$2", "€", 200},
		{"CHF 3.10", "CHF", 310},
		{"7", "", 700},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := domain.ParseAmountIn(tc.in, tc.symbol)
			assert.NoError(t, err)
			assert.Equal(t, tc.out, got)
		})
	}

	_, err := domain.ParseAmountIn("€5", "$")
	assert.True(t, errors.Is(err, domain.ErrInvalidAmount), "got %v", err)

	// round trip through the printed form
	printed := domain.FormatAmount(4321, "€")
	got, err := domain.ParseAmountIn(printed, "€")
	assert.NoError(t, err)
	assert.Equal(t, shared.Cents(4321), got)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "$3.00", domain.FormatAmount(300, "$"))
	assert.Equal(t, "$0.05", domain.FormatAmount(5, "$"))
	assert.Equal(t, "€1234.56", domain.FormatAmount(123456, "€"))
	assert.Equal(t, "$0.00", domain.FormatAmount(0, "$"))
}
