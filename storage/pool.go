package storage

// ComponentPool is the type-erased view of a Pool. The world recycles slots
// and reads values through it without knowing the component's Go type.
type ComponentPool interface {
	Recycle(slot int32)
	Value(slot int32) any
	Len() int
	Reserved() int
}

// Pool is dense per-type storage for component values: a resizable array
// plus a free list of recycled slot indices. A slot is meaningful only while
// some entity record references it.
type Pool[T any] struct {
	items []T
	free  []int32
}

var _ ComponentPool = (*Pool[int])(nil)

func NewPool[T any](capacity int) *Pool[T] {
	return &Pool[T]{
		items: make([]T, 0, capacity),
	}
}

// NewSlot returns a slot index for a new component value, popping the free
// list when possible and growing the dense array otherwise.
func (p *Pool[T]) NewSlot() int32 {
	if n := len(p.free) - 1; n >= 0 {
		slot := p.free[n]
		p.free = p.free[:n]
		return slot
	}
	var zero T
	p.items = append(p.items, zero)
	return int32(len(p.items) - 1)
}

// Get returns a pointer to the value in the given slot. The pointer stays
// valid until the pool grows or the slot is recycled.
func (p *Pool[T]) Get(slot int32) *T {
	return &p.items[slot]
}

// Recycle resets the slot to the zero value and pushes it onto the free
// list. Resetting keeps stale slot indices from ever observing old data.
func (p *Pool[T]) Recycle(slot int32) {
	var zero T
	p.items[slot] = zero
	p.free = append(p.free, slot)
}

// Value returns the slot's value as an interface, for debug dumps.
func (p *Pool[T]) Value(slot int32) any {
	return p.items[slot]
}

// Len returns the size of the dense array, recycled slots included.
func (p *Pool[T]) Len() int {
	return len(p.items)
}

// Reserved returns the number of recycled slots awaiting reuse.
func (p *Pool[T]) Reserved() int {
	return len(p.free)
}
