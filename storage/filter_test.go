package storage

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mosaic-engine/mosaic/iterators"
	"github.com/mosaic-engine/mosaic/types"
)

func TestFilterMatches(t *testing.T) {
	f := NewFilter(
		[]types.ComponentID{1, 2},
		[]types.ComponentID{3},
	)

	var rec Record
	rec.AddPair(1, 0)
	require.False(t, f.Matches(&rec), "missing included type")

	rec.AddPair(2, 0)
	require.True(t, f.Matches(&rec))

	rec.AddPair(3, 0)
	require.False(t, f.Matches(&rec), "excluded type present")
	require.True(t, f.matchesWithout(&rec, 3))
}

func TestFilterAddRemove(t *testing.T) {
	f := NewFilter([]types.ComponentID{1}, nil)

	a := types.Handle{ID: 10, Gen: 1}
	b := types.Handle{ID: 20, Gen: 1}
	c := types.Handle{ID: 30, Gen: 1}

	require.NoError(t, f.Add(a))
	require.NoError(t, f.Add(b))
	require.NoError(t, f.Add(c))
	require.Equal(t, 3, f.Len())
	require.True(t, f.ContainsEntity(a.ID))

	err := f.Add(a)
	require.ErrorIs(t, err, iterators.ErrEntityAlreadyInFilter)

	// Swap-with-last: removing the first member moves the last into its
	// place, and the moved member stays reachable through the index.
	require.NoError(t, f.Remove(a))
	require.Equal(t, 2, f.Len())
	require.False(t, f.ContainsEntity(a.ID))
	require.Equal(t, c, f.MemberAt(0))
	require.NoError(t, f.Remove(c))
	require.Equal(t, []types.Handle{b}, f.Members())

	err = f.Remove(a)
	require.ErrorIs(t, err, iterators.ErrEntityNotInFilter)
}

func TestFilterMembersIsSnapshot(t *testing.T) {
	f := NewFilter([]types.ComponentID{1}, nil)
	a := types.Handle{ID: 1, Gen: 1}
	require.NoError(t, f.Add(a))

	snap := f.Members()
	require.NoError(t, f.Remove(a))
	require.Equal(t, []types.Handle{a}, snap)
	require.Equal(t, 0, f.Len())
}
