package filter

import (
	"sort"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/mosaic-engine/mosaic/iterators"
	"github.com/mosaic-engine/mosaic/types"
)

// Definition is a static predicate over component types: entities must hold
// every included type and none of the excluded types. Definitions are
// immutable value types; Without returns a new one.
type Definition struct {
	include []ComponentRef
	exclude []ComponentRef
}

// Contains declares the component types an entity must hold to match.
func Contains(refs ...ComponentRef) Definition {
	return Definition{include: refs}
}

// Without adds component types that disqualify an entity from matching.
func (d Definition) Without(refs ...ComponentRef) Definition {
	exclude := make([]ComponentRef, 0, len(d.exclude)+len(refs))
	exclude = append(exclude, d.exclude...)
	exclude = append(exclude, refs...)
	return Definition{include: d.include, exclude: exclude}
}

// IncludeIDs returns the included type indices in declaration order.
func (d Definition) IncludeIDs() []types.ComponentID {
	return refIDs(d.include)
}

// ExcludeIDs returns the excluded type indices in declaration order.
func (d Definition) ExcludeIDs() []types.ComponentID {
	return refIDs(d.exclude)
}

// Validate rejects predicates with an empty include set, a repeated type, or
// a type that is both included and excluded.
func (d Definition) Validate() error {
	if len(d.include) == 0 {
		return eris.Wrap(iterators.ErrInvalidFilterPredicate, "empty include set")
	}
	seen := make(map[types.ComponentID]string, len(d.include)+len(d.exclude))
	for _, ref := range d.include {
		if _, ok := seen[ref.id]; ok {
			return eris.Wrapf(iterators.ErrInvalidFilterPredicate, "type %s declared twice", ref.name)
		}
		seen[ref.id] = ref.name
	}
	for _, ref := range d.exclude {
		if _, ok := seen[ref.id]; ok {
			return eris.Wrapf(iterators.ErrInvalidFilterPredicate, "type %s declared twice", ref.name)
		}
		seen[ref.id] = ref.name
	}
	return nil
}

// Signature returns the canonical, order-insensitive identity of the
// predicate. Two definitions over the same type sets share a signature
// regardless of declaration order.
func (d Definition) Signature() string {
	var b strings.Builder
	b.WriteString("in(")
	writeSorted(&b, d.IncludeIDs())
	b.WriteString(")ex(")
	writeSorted(&b, d.ExcludeIDs())
	b.WriteString(")")
	return b.String()
}

func refIDs(refs []ComponentRef) []types.ComponentID {
	ids := make([]types.ComponentID, len(refs))
	for i, ref := range refs {
		ids[i] = ref.id
	}
	return ids
}

func writeSorted(b *strings.Builder, ids []types.ComponentID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(id)))
	}
}
