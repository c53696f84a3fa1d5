package storage

import (
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/rotisserie/eris"

	"github.com/mosaic-engine/mosaic/iterators"
	"github.com/mosaic-engine/mosaic/types"
)

// MaxComponentTypes bounds the process-wide component type space. The filter
// index keeps dense per-type tables, so the bound keeps those tables small.
const MaxComponentTypes = 1024

// typeRegistry assigns each distinct component type a stable small index at
// first use. Indices start at 1; 0 is reserved as "no type". Registration
// may race across goroutines during process init, so this is the one piece
// of cross-thread state in the engine. Everything else is single-threaded.
type typeRegistry struct {
	mu     sync.Mutex
	byType map[reflect.Type]*types.ComponentMetadata
	byID   []*types.ComponentMetadata
	count  atomic.Int32
}

var registry = &typeRegistry{
	byType: make(map[reflect.Type]*types.ComponentMetadata, 64),
	byID:   make([]*types.ComponentMetadata, 1, 64),
}

// TypeIndex returns the component type index for T, registering the type on
// first use. Registration failure is fatal.
func TypeIndex[T any]() types.ComponentID {
	return registry.register(reflect.TypeOf((*T)(nil)).Elem())
}

func (r *typeRegistry) register(rtype reflect.Type) types.ComponentID {
	r.mu.Lock()
	defer r.mu.Unlock()

	if meta, ok := r.byType[rtype]; ok {
		return meta.ID()
	}

	id := types.ComponentID(len(r.byID))
	if id > MaxComponentTypes {
		panic(eris.Wrapf(iterators.ErrCapacityExhausted, "cannot register component type %s", rtype))
	}
	meta, err := types.NewComponentMetadata(id, rtype)
	if err != nil {
		panic(eris.Wrapf(err, "cannot register component type %s", rtype))
	}

	r.byType[rtype] = meta
	r.byID = append(r.byID, meta)
	r.count.Store(int32(len(r.byID)) - 1)
	return id
}

// MetadataByID returns the metadata for a registered type index.
func MetadataByID(id types.ComponentID) (*types.ComponentMetadata, bool) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if id < 1 || int(id) >= len(registry.byID) {
		return nil, false
	}
	return registry.byID[id], true
}

// RegisteredComponents returns the metadata of every registered type, in
// index order.
func RegisteredComponents() []*types.ComponentMetadata {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	return append([]*types.ComponentMetadata(nil), registry.byID[1:]...)
}

// RegisteredTypeCount returns the number of registered component types. It
// reads an atomic counter so stats snapshots never need the registry lock.
func RegisteredTypeCount() int {
	return int(registry.count.Load())
}
