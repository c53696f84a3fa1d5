package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type health struct {
	Current int
	Max     int
}

func TestPoolNewSlotGrowsThenReuses(t *testing.T) {
	pool := NewPool[health](4)

	a := pool.NewSlot()
	b := pool.NewSlot()
	require.Equal(t, int32(0), a)
	require.Equal(t, int32(1), b)
	require.Equal(t, 2, pool.Len())
	require.Equal(t, 0, pool.Reserved())

	pool.Recycle(a)
	require.Equal(t, 1, pool.Reserved())

	// The recycled slot comes back before the array grows again.
	c := pool.NewSlot()
	require.Equal(t, a, c)
	require.Equal(t, 2, pool.Len())
	require.Equal(t, 0, pool.Reserved())
}

func TestPoolRecycleZeroesTheSlot(t *testing.T) {
	pool := NewPool[health](4)

	slot := pool.NewSlot()
	v := pool.Get(slot)
	v.Current = 75
	v.Max = 100
	require.Equal(t, health{Current: 75, Max: 100}, pool.Value(slot))

	pool.Recycle(slot)
	reused := pool.NewSlot()
	require.Equal(t, slot, reused)
	require.Equal(t, health{}, *pool.Get(reused))
}

func TestPoolGetReturnsStablePointerWithinSlot(t *testing.T) {
	pool := NewPool[health](4)

	slot := pool.NewSlot()
	pool.Get(slot).Current = 10
	pool.Get(slot).Current++
	require.Equal(t, 11, pool.Get(slot).Current)
}
