package mosaic

import (
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/mosaic-engine/mosaic/filter"
	"github.com/mosaic-engine/mosaic/iterators"
	ecslog "github.com/mosaic-engine/mosaic/log"
	"github.com/mosaic-engine/mosaic/storage"
	"github.com/mosaic-engine/mosaic/types"
)

// Filter is the world-facing view of a registered predicate: a live,
// incrementally maintained membership of the entities that hold every
// included type and none of the excluded types.
type Filter struct {
	world     *World
	impl      *storage.Filter
	signature string
}

// RegisterFilter resolves or creates the filter for the given predicate.
// Re-registering the exact same declaration returns the existing filter.
// The same type sets under a different declaration order are rejected,
// because typed access through a filter assumes one canonical ordering of
// the included types. Filters live for the lifetime of the world.
func (w *World) RegisterFilter(def filter.Definition) (*Filter, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}

	signature := def.Signature()
	if existing, ok := w.bySig[signature]; ok {
		if idsEqual(existing.impl.Include(), def.IncludeIDs()) &&
			idsEqual(existing.impl.Exclude(), def.ExcludeIDs()) {
			return existing, nil
		}
		return nil, eris.Wrapf(iterators.ErrDuplicateFilterPredicate, "signature %s", signature)
	}

	impl := storage.NewFilter(def.IncludeIDs(), def.ExcludeIDs())
	w.index.Register(impl)

	// Entities may already exist; seed the membership with a one-time scan.
	// From here on the filter is maintained purely incrementally.
	for _, h := range w.table.LiveHandles() {
		rec, err := w.table.Record(h)
		if err != nil {
			continue
		}
		if impl.Matches(rec) {
			if err := impl.Add(h); err != nil {
				w.logAndPanic(err)
			}
		}
	}

	f := &Filter{world: w, impl: impl, signature: signature}
	w.filters = append(w.filters, f)
	w.bySig[signature] = f

	for _, l := range w.listeners {
		l.OnFilterCreated(f)
	}
	w.logger.Debug().
		Str("filter", signature).
		Int("seeded_members", impl.Len()).
		Msg("filter created")
	ecslog.Filters(&w.logger, w, zerolog.DebugLevel)
	return f, nil
}

// Each iterates a snapshot of the membership, stopping early when the
// callback returns false. Structural changes made during iteration mutate
// the live filter, not the snapshot, so destroying the current entity (or
// any other) mid-iteration is safe. Handles from the snapshot should be
// re-checked with IsAlive when earlier callbacks may have destroyed them.
func (f *Filter) Each(callback func(types.Handle) bool) {
	for _, h := range f.impl.Members() {
		if !callback(h) {
			return
		}
	}
}

// Iterator returns a restartable iterator over a snapshot of the current
// membership.
func (f *Filter) Iterator() iterators.MemberIterator {
	return iterators.NewMemberIterator(f.impl.Members())
}

// Count returns the number of entities currently matching the filter.
func (f *Filter) Count() int {
	return f.impl.Len()
}

// First returns a member of the filter, or ErrNoMatchingEntities when the
// filter is empty. Membership order is unspecified.
func (f *Filter) First() (types.Handle, error) {
	if f.impl.Len() == 0 {
		return types.Nil, eris.Wrapf(iterators.ErrNoMatchingEntities, "filter %s", f.signature)
	}
	return f.impl.MemberAt(0), nil
}

// MustFirst is First for callers that treat an empty filter as a bug.
func (f *Filter) MustFirst() types.Handle {
	h, err := f.First()
	if err != nil {
		f.world.logAndPanic(err)
	}
	return h
}

// Contains reports whether the entity is currently a member.
func (f *Filter) Contains(h types.Handle) bool {
	return f.world.IsAlive(h) && f.impl.ContainsEntity(h.ID)
}

// Include returns the included type indices in declaration order.
func (f *Filter) Include() []types.ComponentID {
	return f.impl.Include()
}

// Exclude returns the excluded type indices in declaration order.
func (f *Filter) Exclude() []types.ComponentID {
	return f.impl.Exclude()
}

// String returns the filter's canonical signature.
func (f *Filter) String() string {
	return f.signature
}

func idsEqual(a, b []types.ComponentID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
