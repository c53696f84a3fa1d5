package storage

import (
	"github.com/mosaic-engine/mosaic/types"
)

// FilterIndex maps each component type index to the filters that include or
// exclude it, and drives the incremental membership updates fired by every
// attach and detach. A filter with N included and M excluded types appears
// in N entries of includedBy and M entries of excludedBy.
type FilterIndex struct {
	includedBy [][]*Filter
	excludedBy [][]*Filter
}

func NewFilterIndex() *FilterIndex {
	return &FilterIndex{}
}

func (ix *FilterIndex) ensure(id types.ComponentID) {
	for len(ix.includedBy) <= int(id) {
		ix.includedBy = append(ix.includedBy, nil)
		ix.excludedBy = append(ix.excludedBy, nil)
	}
}

// Register adds the filter to the per-type interest lists.
func (ix *FilterIndex) Register(f *Filter) {
	for _, inc := range f.include {
		ix.ensure(inc)
		ix.includedBy[inc] = append(ix.includedBy[inc], f)
	}
	for _, exc := range f.exclude {
		ix.ensure(exc)
		ix.excludedBy[exc] = append(ix.excludedBy[exc], f)
	}
}

// OnComponentAdded runs after the new pair is already on the record. Filters
// that include the added type see the post-change set, so a full match means
// the entity just entered. Filters that exclude it now fail by definition;
// matchesWithout answers whether the entity was a member just before the
// change and must leave.
func (ix *FilterIndex) OnComponentAdded(rec *Record, h types.Handle, added types.ComponentID) error {
	if int(added) < len(ix.includedBy) {
		for _, f := range ix.includedBy[added] {
			if f.Matches(rec) {
				if err := f.Add(h); err != nil {
					return err
				}
			}
		}
		for _, f := range ix.excludedBy[added] {
			if f.matchesWithout(rec, added) {
				if err := f.Remove(h); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// OnComponentRemoved runs while the departing pair is still on the record
// and before its pool slot is recycled. Filters that include the removed
// type still see the full pre-change set, so a match means the entity was a
// member and must leave. Filters that exclude it test the surviving set by
// ignoring the departing type and re-admit the entity when it now qualifies.
func (ix *FilterIndex) OnComponentRemoved(rec *Record, h types.Handle, removed types.ComponentID) error {
	if int(removed) < len(ix.includedBy) {
		for _, f := range ix.includedBy[removed] {
			if f.Matches(rec) {
				if err := f.Remove(h); err != nil {
					return err
				}
			}
		}
		for _, f := range ix.excludedBy[removed] {
			if f.matchesWithout(rec, removed) {
				if err := f.Add(h); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
