package iterators

import (
	"github.com/mosaic-engine/mosaic/types"
)

// MemberIterator walks a snapshot of filter membership. Because it iterates
// over a copy taken at construction time, entities may be created or
// destroyed while the iterator is in use without corrupting the walk;
// callers should still re-check liveness of each handle before use.
type MemberIterator struct {
	current int
	members []types.Handle
}

// NewMemberIterator returns an iterator over the given membership snapshot.
// The slice is owned by the iterator after this call.
func NewMemberIterator(members []types.Handle) MemberIterator {
	return MemberIterator{
		current: 0,
		members: members,
	}
}

// HasNext returns true if there are more handles to iterate over.
func (it *MemberIterator) HasNext() bool {
	return it.current < len(it.members)
}

// Next returns the next member handle.
func (it *MemberIterator) Next() types.Handle {
	h := it.members[it.current]
	it.current++
	return h
}

// Reset restarts the iterator at the beginning of the snapshot.
func (it *MemberIterator) Reset() {
	it.current = 0
}

// Len returns the number of handles in the snapshot.
func (it *MemberIterator) Len() int {
	return len(it.members)
}
