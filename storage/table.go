package storage

import (
	"github.com/rotisserie/eris"

	"github.com/mosaic-engine/mosaic/iterators"
	"github.com/mosaic-engine/mosaic/types"
)

// recycledCountX2 marks a record that has been recycled and is waiting on
// the free list for reuse.
const recycledCountX2 = -2

// Record is the per-entity bookkeeping: the slot's current generation plus a
// packed list of (type index, pool slot) pairs in insertion order. countX2
// is twice the live component count, which keeps the recycled sentinel
// strictly negative.
type Record struct {
	gen     types.Generation
	countX2 int32
	comps   []int32
}

// Gen returns the record's current generation.
func (r *Record) Gen() types.Generation {
	return r.gen
}

// ComponentCount returns the number of components on the entity.
func (r *Record) ComponentCount() int {
	if r.countX2 < 0 {
		return 0
	}
	return int(r.countX2) / 2
}

func (r *Record) alive() bool {
	return r.countX2 >= 0
}

// HasType reports whether the record holds a slot for the given type.
func (r *Record) HasType(id types.ComponentID) bool {
	_, ok := r.SlotFor(id)
	return ok
}

// SlotFor linear-scans the pair list for the given type index. The list is
// small in practice, so the scan beats a secondary per-type lookup on the
// hot path.
func (r *Record) SlotFor(id types.ComponentID) (int32, bool) {
	for i := 0; i < int(r.countX2); i += 2 {
		if types.ComponentID(r.comps[i]) == id {
			return r.comps[i+1], true
		}
	}
	return 0, false
}

// PairAt returns the i-th (type index, pool slot) pair.
func (r *Record) PairAt(i int) (types.ComponentID, int32) {
	return types.ComponentID(r.comps[2*i]), r.comps[2*i+1]
}

// AddPair appends a pair. The caller guarantees the type is not already
// present.
func (r *Record) AddPair(id types.ComponentID, slot int32) {
	r.comps = append(r.comps, int32(id), slot)
	r.countX2 += 2
}

// RemovePair removes the pair for the given type by swapping the last pair
// into its place. Pair order is not preserved. Returns the pool slot the
// pair held.
func (r *Record) RemovePair(id types.ComponentID) (int32, bool) {
	for i := 0; i < int(r.countX2); i += 2 {
		if types.ComponentID(r.comps[i]) == id {
			slot := r.comps[i+1]
			last := int(r.countX2) - 2
			r.comps[i] = r.comps[last]
			r.comps[i+1] = r.comps[last+1]
			r.comps = r.comps[:last]
			r.countX2 -= 2
			return slot, true
		}
	}
	return 0, false
}

// Table owns entity identity: the record array and the free list of recycled
// ids. Records are never freed, only recycled, so memory is bounded by the
// historical peak population.
type Table struct {
	records []Record
	free    []types.EntityID
	active  int
}

func NewTable(capacity int) *Table {
	return &Table{
		records: make([]Record, 0, capacity),
		free:    make([]types.EntityID, 0, capacity),
	}
}

// NewEntity pops a recycled id when one is available and appends a fresh
// record otherwise. Fresh records start at generation 1 so the null handle
// can never match a live entity.
func (t *Table) NewEntity() types.Handle {
	var id types.EntityID
	if n := len(t.free) - 1; n >= 0 {
		id = t.free[n]
		t.free = t.free[:n]
		t.records[id].countX2 = 0
	} else {
		id = types.EntityID(len(t.records))
		t.records = append(t.records, Record{gen: 1})
	}
	t.active++
	return types.Handle{ID: id, Gen: t.records[id].gen}
}

// Record resolves a handle to its record, rejecting stale generations.
func (t *Table) Record(h types.Handle) (*Record, error) {
	if h.ID < 0 || int(h.ID) >= len(t.records) {
		return nil, eris.Wrapf(iterators.ErrStaleHandle, "entity id %d out of range", h.ID)
	}
	rec := &t.records[h.ID]
	if rec.gen != h.Gen || !rec.alive() {
		return nil, eris.Wrapf(iterators.ErrStaleHandle, "entity %d gen %d", h.ID, h.Gen)
	}
	return rec, nil
}

// IsAlive reports whether the handle still refers to a live entity.
func (t *Table) IsAlive(h types.Handle) bool {
	if h.ID < 0 || int(h.ID) >= len(t.records) {
		return false
	}
	rec := &t.records[h.ID]
	return rec.gen == h.Gen && rec.alive()
}

// Recycle retires a record and pushes its id onto the free list. The
// generation is bumped (wrapping, skipping 0) so every outstanding handle
// for the old incarnation turns stale. Recycling a record that still holds
// components means a pool slot reference leaked; that is fatal.
func (t *Table) Recycle(id types.EntityID) {
	rec := &t.records[id]
	if rec.countX2 != 0 {
		panic(eris.Errorf("recycling entity %d with %d live components", id, rec.ComponentCount()))
	}
	rec.gen++
	if rec.gen == 0 {
		rec.gen = 1
	}
	rec.countX2 = recycledCountX2
	t.free = append(t.free, id)
	t.active--
}

// HandleForID rebuilds a handle from a raw entity id for serialization and
// debug round-trips. The generation is derived from the current record
// state, never trusted from the caller.
func (t *Table) HandleForID(raw int) (types.Handle, error) {
	if raw < 0 || raw >= len(t.records) {
		return types.Nil, eris.Wrapf(iterators.ErrStaleHandle, "entity id %d out of range", raw)
	}
	rec := &t.records[raw]
	if !rec.alive() {
		return types.Nil, eris.Wrapf(iterators.ErrStaleHandle, "entity id %d is not alive", raw)
	}
	return types.Handle{ID: types.EntityID(raw), Gen: rec.gen}, nil
}

// ActiveCount returns the number of live entities.
func (t *Table) ActiveCount() int {
	return t.active
}

// ReservedCount returns the number of recycled ids awaiting reuse.
func (t *Table) ReservedCount() int {
	return len(t.free)
}

// LiveHandles returns a handle for every live entity, in id order.
func (t *Table) LiveHandles() []types.Handle {
	handles := make([]types.Handle, 0, t.active)
	for i := range t.records {
		if t.records[i].alive() {
			handles = append(handles, types.Handle{ID: types.EntityID(i), Gen: t.records[i].gen})
		}
	}
	return handles
}
