package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"making-change/domain"
	"making-change/store"
)

func newSnapshot(t *testing.T, purseID string, amount int64) *domain.Snapshot {
	t.Helper()
	purse, err := domain.NewRegister(nil).MakeChangeFor(purseID, 0)
	require.NoError(t, err)
	require.NoError(t, purse.Add(dime, amount))
	snap, err := domain.CreateSnapshot(purse)
	require.NoError(t, err)
	return snap
}

func TestInMemorySnapshotStore_SaveAndGetSnapshot(t *testing.T) {
	ss := store.NewInMemorySnapshotStore()
	purseID := "snap-purse-1"

	t.Run("GetNotFound", func(t *testing.T) {
		snap, found, err := ss.GetLatestSnapshot(purseID)
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, snap)
	})

	t.Run("SaveAndGet", func(t *testing.T) {
		require.NoError(t, ss.SaveSnapshot(newSnapshot(t, purseID, 5)))

		snap, found, err := ss.GetLatestSnapshot(purseID)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, purseID, snap.PurseID)
		assert.Equal(t, 2, snap.Version)

		purse, err := domain.ApplySnapshot(snap)
		require.NoError(t, err)
		assert.Equal(t, int64(5), purse.Count(dime))

		// mutate the copy
		snap.State[0] = 'x'
		snap.Version = 99
		again, _, _ := ss.GetLatestSnapshot(purseID)
		assert.Equal(t, 2, again.Version)
		_, err = domain.ApplySnapshot(again)
		assert.NoError(t, err)
	})

	t.Run("SaveDoesNotAliasCallerState", func(t *testing.T) {
		snap := newSnapshot(t, "alias", 1)
		require.NoError(t, ss.SaveSnapshot(snap))
		snap.State[0] = 'x'
		stored, _, _ := ss.GetLatestSnapshot("alias")
		_, err := domain.ApplySnapshot(stored)
		assert.NoError(t, err)
	})

	t.Run("OlderSnapshotIgnored", func(t *testing.T) {
		newer := newSnapshot(t, purseID, 7)
		newer.Version = 10
		require.NoError(t, ss.SaveSnapshot(newer))
		older := newSnapshot(t, purseID, 1)
		require.NoError(t, ss.SaveSnapshot(older))

		snap, _, _ := ss.GetLatestSnapshot(purseID)
		assert.Equal(t, 10, snap.Version)
	})

	t.Run("SaveNilSnapshot", func(t *testing.T) {
		assert.Error(t, ss.SaveSnapshot(nil))
	})
}
