package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"making-change/domain"
	"making-change/events"
	"making-change/shared"
)

func TestRegister_MakeChange(t *testing.T) {
	r := domain.NewRegister(nil)

	cases := []struct {
		name   string
		amount shared.Cents
		want   map[string]int64
	}{
		{"Zero", 0, map[string]int64{}},
		{"FortyOneCents", 41, map[string]int64{"Quarter": 1, "Dime": 1, "Nickel": 1, "Penny": 1}},
		{"OneSixtyThree", 163, map[string]int64{"One Bill": 1, "Quarter": 2, "Dime": 1, "Penny": 3}},
		{"OneSixtyThreeDollars", 16300, map[string]int64{"Hundred Bill": 1, "Fifty Bill": 1, "Ten Bill": 1, "One Bill": 3}},
		{"EveryDenomination", 18691, map[string]int64{
			"Hundred Bill": 1, "Fifty Bill": 1, "Twenty Bill": 1, "Ten Bill": 1, "Five Bill": 1,
			"One Bill": 1, "Quarter": 3, "Dime": 1, "Nickel": 1, "Penny": 1,
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			purse, err := r.MakeChange(tc.amount)
			require.NoError(t, err)
			assert.Equal(t, tc.want, counts(purse))
			assert.Equal(t, tc.amount, purse.TotalValue())
			assert.Equal(t, tc.amount, purse.Requested)
		})
	}

	t.Run("RejectsNegative", func(t *testing.T) {
		purse, err := r.MakeChange(-1)
		assert.Nil(t, purse)
		assert.True(t, errors.Is(err, domain.ErrNegativeAmount))
	})
}

func TestRegister_MakeChangeInvariants(t *testing.T) {
	r := domain.NewRegister(nil)
	for amount := shared.Cents(0); amount <= 20000; amount += 37 {
		purse, err := r.MakeChange(amount)
		require.NoError(t, err)
		if purse.TotalValue() != amount {
			t.Fatalf("amount %s: total %s", amount, purse.TotalValue())
		}
		for d, c := range purse.Snapshot() {
			if c <= 0 {
				t.Fatalf("amount %s: %s stored with count %d", amount, d.Name, c)
			}
		}
	}
}

func TestRegister_BreakdownOrder(t *testing.T) {
	r := domain.NewRegister(nil)
	holdings, remainder, err := r.Breakdown(18691)
	require.NoError(t, err)
	assert.Equal(t, shared.Cents(0), remainder)
	require.Len(t, holdings, 10)
	for i := 1; i < len(holdings); i++ {
		assert.Greater(t, holdings[i-1].Denomination.Value, holdings[i].Denomination.Value)
	}
}

func TestRegister_EventsFollowCatalogOrder(t *testing.T) {
	purse, err := domain.NewRegister(nil).MakeChangeFor("p-1", 16300)
	require.NoError(t, err)
	assert.Equal(t, "p-1", purse.ID)

	changes := purse.GetUncommittedChanges()
	require.Len(t, changes, 5)
	opened, ok := changes[0].(events.PurseOpenedEvent)
	require.True(t, ok, "first event is %T", changes[0])
	assert.Equal(t, shared.Cents(16300), opened.Requested)

	var last shared.Cents = 1 << 62
	for _, e := range changes[1:] {
		added, ok := e.(events.DenominationAddedEvent)
		require.True(t, ok, "event is %T", e)
		assert.Less(t, added.Denomination.Value, last)
		last = added.Denomination.Value
	}
}

func TestRegister_CustomCatalog(t *testing.T) {
	catalog, err := domain.NewCatalog([]shared.Denomination{
		{Name: "Quarter", Value: 25, Kind: shared.Coin},
		{Name: "Dime", Value: 10, Kind: shared.Coin},
	})
	require.NoError(t, err)
	r := domain.NewRegister(catalog)

	t.Run("Exact", func(t *testing.T) {
		purse, err := r.MakeChange(60)
		require.NoError(t, err)
		assert.Equal(t, map[string]int64{"Quarter": 2, "Dime": 1}, counts(purse))
	})

	t.Run("Remainder", func(t *testing.T) {
		holdings, remainder, err := r.Breakdown(37)
		require.NoError(t, err)
		assert.Equal(t, shared.Cents(2), remainder)
		require.Len(t, holdings, 2)

		_, err = r.MakeChange(37)
		assert.True(t, errors.Is(err, domain.ErrInvalidAmount))
	})
}
