package mosaic_test

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/mosaic-engine/mosaic"
	"github.com/mosaic-engine/mosaic/types"
)

func TestEntityLifecycle(t *testing.T) {
	world := newTestWorld(t)

	e := world.NewEntity()
	assert.Assert(t, !e.IsNil())
	assert.Assert(t, world.IsAlive(e))

	assert.NilError(t, world.DestroyEntity(e))
	assert.Assert(t, !world.IsAlive(e))

	// Operating on the dead handle is an error, not a crash.
	err := world.DestroyEntity(e)
	assert.ErrorIs(t, err, mosaic.ErrStaleHandle)
	_, err = mosaic.Attach[Position](world, e)
	assert.ErrorIs(t, err, mosaic.ErrStaleHandle)
	_, err = mosaic.Get[Position](world, e)
	assert.ErrorIs(t, err, mosaic.ErrStaleHandle)
	assert.Assert(t, !mosaic.Has[Position](world, e))
}

func TestEntityIDRecycling(t *testing.T) {
	world := newTestWorld(t)

	const n = 1000
	first := make([]types.Handle, 0, n)
	for i := 0; i < n; i++ {
		first = append(first, world.NewEntity())
	}
	for _, h := range first {
		assert.NilError(t, world.DestroyEntity(h))
	}
	assert.Equal(t, n, world.Stats().ReservedEntities)

	second := make([]types.Handle, 0, n)
	for i := 0; i < n; i++ {
		second = append(second, world.NewEntity())
	}
	assert.Equal(t, n, world.Stats().ActiveEntities)
	assert.Equal(t, 0, world.Stats().ReservedEntities)

	reused := make(map[types.EntityID]bool, n)
	for _, h := range second {
		reused[h.ID] = true
		assert.Assert(t, world.IsAlive(h))
	}
	assert.Equal(t, n, len(reused))
	for _, h := range first {
		assert.Assert(t, reused[h.ID], "every id must be recycled")
		assert.Assert(t, !world.IsAlive(h), "old handles stay dead after reuse")
	}
}

func TestHandleFromRawID(t *testing.T) {
	world := newTestWorld(t)

	e := world.NewEntity()
	got, err := world.HandleFromRawID(int(e.ID))
	assert.NilError(t, err)
	assert.Equal(t, e, got)

	assert.NilError(t, world.DestroyEntity(e))
	_, err = world.HandleFromRawID(int(e.ID))
	assert.ErrorIs(t, err, mosaic.ErrStaleHandle)

	_, err = world.HandleFromRawID(12345)
	assert.ErrorIs(t, err, mosaic.ErrStaleHandle)
}

func TestNilHandleIsNeverAlive(t *testing.T) {
	world := newTestWorld(t)
	world.NewEntity()
	assert.Assert(t, !world.IsAlive(types.Nil))
}
