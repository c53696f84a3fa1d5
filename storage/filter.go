package storage

import (
	"github.com/rotisserie/eris"

	"github.com/mosaic-engine/mosaic/iterators"
	"github.com/mosaic-engine/mosaic/types"
)

// Filter is a live, incrementally maintained set of entities that hold every
// included type and none of the excluded types. It owns only membership;
// component data stays in the pools.
type Filter struct {
	include []types.ComponentID
	exclude []types.ComponentID
	members []types.Handle
	indexOf map[types.EntityID]int
}

// NewFilter creates an empty filter for the given type sets. Declaration
// order of the included types is preserved; downstream typed access relies
// on it.
func NewFilter(include, exclude []types.ComponentID) *Filter {
	return &Filter{
		include: append([]types.ComponentID(nil), include...),
		exclude: append([]types.ComponentID(nil), exclude...),
		indexOf: make(map[types.EntityID]int),
	}
}

// Include returns the included type indices in declaration order.
func (f *Filter) Include() []types.ComponentID {
	return append([]types.ComponentID(nil), f.include...)
}

// Exclude returns the excluded type indices in declaration order.
func (f *Filter) Exclude() []types.ComponentID {
	return append([]types.ComponentID(nil), f.exclude...)
}

// Members returns a snapshot of the current membership. The world may be
// mutated while the snapshot is iterated; the snapshot simply goes stale.
func (f *Filter) Members() []types.Handle {
	return append([]types.Handle(nil), f.members...)
}

// Len returns the current member count.
func (f *Filter) Len() int {
	return len(f.members)
}

// MemberAt returns the i-th member. Membership order is unspecified.
func (f *Filter) MemberAt(i int) types.Handle {
	return f.members[i]
}

// ContainsEntity reports whether the entity id is currently a member.
func (f *Filter) ContainsEntity(id types.EntityID) bool {
	_, ok := f.indexOf[id]
	return ok
}

// Matches reports whether the record holds every included type and none of
// the excluded types.
func (f *Filter) Matches(rec *Record) bool {
	for _, inc := range f.include {
		if !rec.HasType(inc) {
			return false
		}
	}
	for _, exc := range f.exclude {
		if rec.HasType(exc) {
			return false
		}
	}
	return true
}

// matchesWithout is Matches with one excluded type ignored. During an attach
// of an excluded type it answers "was the entity a member just before this
// change"; during a detach of an excluded type (signaled while the pair is
// still on the record) it answers "does the surviving set qualify".
func (f *Filter) matchesWithout(rec *Record, pivot types.ComponentID) bool {
	for _, inc := range f.include {
		if !rec.HasType(inc) {
			return false
		}
	}
	for _, exc := range f.exclude {
		if exc != pivot && rec.HasType(exc) {
			return false
		}
	}
	return true
}

// Add appends the entity to the membership. Adding an existing member means
// the update protocol fired twice for one structural change, which is a bug
// in the engine, not a caller error.
func (f *Filter) Add(h types.Handle) error {
	if _, ok := f.indexOf[h.ID]; ok {
		return eris.Wrapf(iterators.ErrEntityAlreadyInFilter, "entity %d", h.ID)
	}
	f.indexOf[h.ID] = len(f.members)
	f.members = append(f.members, h)
	return nil
}

// Remove drops the entity via swap-with-last. Membership order is not
// preserved.
func (f *Filter) Remove(h types.Handle) error {
	i, ok := f.indexOf[h.ID]
	if !ok {
		return eris.Wrapf(iterators.ErrEntityNotInFilter, "entity %d", h.ID)
	}
	last := len(f.members) - 1
	if i < last {
		f.members[i] = f.members[last]
		f.indexOf[f.members[i].ID] = i
	}
	f.members = f.members[:last]
	delete(f.indexOf, h.ID)
	return nil
}
