package mosaic

import (
	"strconv"

	"github.com/rotisserie/eris"

	"github.com/mosaic-engine/mosaic/iterators"
	"github.com/mosaic-engine/mosaic/storage"
	"github.com/mosaic-engine/mosaic/types"
)

// Attach returns a pointer to the entity's T component, creating it when
// absent. Attaching twice is get-or-create, never an error, and never
// creates a second slot. The pointer stays valid until the entity's
// component list changes structurally or the pool grows.
func Attach[T any](w *World, h types.Handle) (*T, error) {
	tid := storage.TypeIndex[T]()
	rec, err := w.table.Record(h)
	if err != nil {
		return nil, err
	}
	pool := poolOf[T](w, tid)
	if slot, ok := rec.SlotFor(tid); ok {
		return pool.Get(slot), nil
	}

	slot := pool.NewSlot()
	// The record must reflect the addition before the filter index runs, so
	// inclusion checks see the new component.
	rec.AddPair(tid, slot)
	if err := w.index.OnComponentAdded(rec, h, tid); err != nil {
		w.logAndPanic(err)
	}
	w.notifyComponentChanged(h, tid, true)
	return pool.Get(slot), nil
}

// Get returns a pointer to the entity's T component. Absence is a caller
// contract violation reported as ErrComponentNotFound; performance-sensitive
// paths should check with Has first.
func Get[T any](w *World, h types.Handle) (*T, error) {
	tid := storage.TypeIndex[T]()
	rec, err := w.table.Record(h)
	if err != nil {
		return nil, err
	}
	slot, ok := rec.SlotFor(tid)
	if !ok {
		return nil, eris.Wrapf(iterators.ErrComponentNotFound, "%s on entity %d", componentName(tid), h.ID)
	}
	return poolOf[T](w, tid).Get(slot), nil
}

// Has reports whether the entity currently holds a T component. No side
// effects beyond first-use type registration.
func Has[T any](w *World, h types.Handle) bool {
	tid := storage.TypeIndex[T]()
	rec, err := w.table.Record(h)
	if err != nil {
		return false
	}
	return rec.HasType(tid)
}

// Detach removes the entity's T component. Removing the last component
// destroys the entity itself.
func Detach[T any](w *World, h types.Handle) error {
	tid := storage.TypeIndex[T]()
	rec, err := w.table.Record(h)
	if err != nil {
		return err
	}
	slot, ok := rec.SlotFor(tid)
	if !ok {
		return eris.Wrapf(iterators.ErrComponentNotFound, "%s on entity %d", componentName(tid), h.ID)
	}
	w.removeComponent(rec, h, tid, slot)
	if rec.ComponentCount() == 0 {
		w.finishDestroy(h)
	}
	return nil
}

// removeComponent runs the detach protocol for one (type, slot) pair: filter
// notification first, against the pre-removal component set, then the pool
// slot recycle, then the swap-remove of the pair itself.
func (w *World) removeComponent(rec *storage.Record, h types.Handle, tid types.ComponentID, slot int32) {
	if err := w.index.OnComponentRemoved(rec, h, tid); err != nil {
		w.logAndPanic(err)
	}
	w.pools[tid].Recycle(slot)
	rec.RemovePair(tid)
	w.notifyComponentChanged(h, tid, false)
}

func (w *World) notifyComponentChanged(h types.Handle, tid types.ComponentID, added bool) {
	for _, l := range w.listeners {
		l.OnComponentChanged(h, tid, added)
	}
	w.logger.Debug().
		Str("entity_id", strconv.Itoa(int(h.ID))).
		Str("component_name", componentName(tid)).
		Int("component_id", int(tid)).
		Bool("attached", added).
		Msg("entity component list changed")
}

func poolOf[T any](w *World, tid types.ComponentID) *storage.Pool[T] {
	for len(w.pools) <= int(tid) {
		w.pools = append(w.pools, nil)
	}
	if w.pools[tid] == nil {
		w.pools[tid] = storage.NewPool[T](w.cfg.MosaicEntityCapacity)
	}
	return w.pools[tid].(*storage.Pool[T])
}

func componentName(tid types.ComponentID) string {
	meta, ok := storage.MetadataByID(tid)
	if !ok {
		return "unknown"
	}
	return meta.Name()
}
