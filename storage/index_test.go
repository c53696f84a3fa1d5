package storage

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mosaic-engine/mosaic/types"
)

const (
	idMass   types.ComponentID = 1
	idCharge types.ComponentID = 2
	idGhost  types.ComponentID = 3
)

// attach and detach drive the index with the same ordering the world uses:
// the pair is added before the add signal, and the remove signal fires while
// the pair is still on the record.
func attach(t *testing.T, ix *FilterIndex, rec *Record, h types.Handle, id types.ComponentID) {
	t.Helper()
	rec.AddPair(id, 0)
	require.NoError(t, ix.OnComponentAdded(rec, h, id))
}

func detach(t *testing.T, ix *FilterIndex, rec *Record, h types.Handle, id types.ComponentID) {
	t.Helper()
	require.NoError(t, ix.OnComponentRemoved(rec, h, id))
	_, ok := rec.RemovePair(id)
	require.True(t, ok)
}

func TestFilterIndexIncludedSide(t *testing.T) {
	ix := NewFilterIndex()
	f := NewFilter([]types.ComponentID{idMass, idCharge}, nil)
	ix.Register(f)

	h := types.Handle{ID: 7, Gen: 1}
	var rec Record

	attach(t, ix, &rec, h, idMass)
	require.False(t, f.ContainsEntity(h.ID), "one of two included types is not enough")

	attach(t, ix, &rec, h, idCharge)
	require.True(t, f.ContainsEntity(h.ID))

	detach(t, ix, &rec, h, idMass)
	require.False(t, f.ContainsEntity(h.ID))

	detach(t, ix, &rec, h, idCharge)
	require.Equal(t, 0, f.Len())
}

func TestFilterIndexExcludedSide(t *testing.T) {
	ix := NewFilterIndex()
	f := NewFilter([]types.ComponentID{idMass}, []types.ComponentID{idGhost})
	ix.Register(f)

	h := types.Handle{ID: 3, Gen: 1}
	var rec Record

	attach(t, ix, &rec, h, idMass)
	require.True(t, f.ContainsEntity(h.ID))

	// Attaching the excluded type evicts the member.
	attach(t, ix, &rec, h, idGhost)
	require.False(t, f.ContainsEntity(h.ID))

	// Detaching it re-admits the entity: the surviving set qualifies.
	detach(t, ix, &rec, h, idGhost)
	require.True(t, f.ContainsEntity(h.ID))
}

func TestFilterIndexExcludedTypeArrivesFirst(t *testing.T) {
	ix := NewFilterIndex()
	f := NewFilter([]types.ComponentID{idMass}, []types.ComponentID{idGhost})
	ix.Register(f)

	h := types.Handle{ID: 4, Gen: 1}
	var rec Record

	// The entity was never a member, so the excluded attach must not try to
	// remove it, and the later included attach must not admit it.
	attach(t, ix, &rec, h, idGhost)
	require.Equal(t, 0, f.Len())

	attach(t, ix, &rec, h, idMass)
	require.False(t, f.ContainsEntity(h.ID))

	detach(t, ix, &rec, h, idGhost)
	require.True(t, f.ContainsEntity(h.ID))
}

func TestFilterIndexUnknownTypeIsIgnored(t *testing.T) {
	ix := NewFilterIndex()
	f := NewFilter([]types.ComponentID{idMass}, nil)
	ix.Register(f)

	h := types.Handle{ID: 9, Gen: 1}
	var rec Record

	// A type no filter cares about must not touch any membership.
	attach(t, ix, &rec, h, 40)
	require.Equal(t, 0, f.Len())
	detach(t, ix, &rec, h, 40)
	require.Equal(t, 0, f.Len())
}

func TestFilterIndexMultipleFiltersPerType(t *testing.T) {
	ix := NewFilterIndex()
	fMass := NewFilter([]types.ComponentID{idMass}, nil)
	fBoth := NewFilter([]types.ComponentID{idMass, idCharge}, nil)
	fNoGhost := NewFilter([]types.ComponentID{idMass}, []types.ComponentID{idGhost})
	ix.Register(fMass)
	ix.Register(fBoth)
	ix.Register(fNoGhost)

	h := types.Handle{ID: 1, Gen: 1}
	var rec Record

	attach(t, ix, &rec, h, idMass)
	require.True(t, fMass.ContainsEntity(h.ID))
	require.False(t, fBoth.ContainsEntity(h.ID))
	require.True(t, fNoGhost.ContainsEntity(h.ID))

	attach(t, ix, &rec, h, idCharge)
	require.True(t, fBoth.ContainsEntity(h.ID))

	attach(t, ix, &rec, h, idGhost)
	require.True(t, fMass.ContainsEntity(h.ID))
	require.True(t, fBoth.ContainsEntity(h.ID))
	require.False(t, fNoGhost.ContainsEntity(h.ID))
}
