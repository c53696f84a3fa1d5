package mosaic

import (
	"github.com/mosaic-engine/mosaic/types"
)

// NewEntity creates an entity and returns its handle. The id is recycled
// from a previously destroyed entity when one is available. An entity
// created here holds no components until the first Attach; a world torn down
// while such an entity is still alive reports it as a leak.
func (w *World) NewEntity() types.Handle {
	h := w.table.NewEntity()
	for _, l := range w.listeners {
		l.OnEntityCreated(h)
	}
	w.logger.Debug().
		Int("entity_id", int(h.ID)).
		Int("entity_gen", int(h.Gen)).
		Msg("entity created")
	return h
}

// DestroyEntity removes the entity and every component attached to it. The
// component list is torn down from the end; each removal notifies the filter
// index against the pre-removal component set before the pool slot is
// recycled. Destroying an entity with zero components just recycles the
// record.
func (w *World) DestroyEntity(h types.Handle) error {
	rec, err := w.table.Record(h)
	if err != nil {
		return err
	}
	for rec.ComponentCount() > 0 {
		tid, slot := rec.PairAt(rec.ComponentCount() - 1)
		w.removeComponent(rec, h, tid, slot)
	}
	w.finishDestroy(h)
	return nil
}

// IsAlive reports whether the handle still refers to a live entity. A
// handle issued before the entity was destroyed stays dead even after the
// id is reused, because the generation differs.
func (w *World) IsAlive(h types.Handle) bool {
	return w.table.IsAlive(h)
}

// HandleFromRawID rebuilds a handle from a raw entity id, for serialization
// and debug round-trips. The generation is derived from current record
// state, never trusted from the caller.
func (w *World) HandleFromRawID(raw int) (types.Handle, error) {
	return w.table.HandleForID(raw)
}

func (w *World) finishDestroy(h types.Handle) {
	w.table.Recycle(h.ID)
	for _, l := range w.listeners {
		l.OnEntityDestroyed(h)
	}
	w.logger.Debug().
		Int("entity_id", int(h.ID)).
		Int("entity_gen", int(h.Gen)).
		Msg("entity destroyed")
}
