// Package filter declares the static include/exclude predicates that worlds
// turn into live filters. Predicates are built explicitly from component
// type references; there is no runtime type discovery.
package filter

import (
	"github.com/mosaic-engine/mosaic/storage"
	"github.com/mosaic-engine/mosaic/types"
)

// ComponentRef identifies one component type inside a filter declaration.
// This type is intentionally opaque; obtain one with Component.
type ComponentRef struct {
	id   types.ComponentID
	name string
}

// Component returns a ComponentRef for the component type T, registering T
// with the process-wide type registry on first use.
func Component[T any]() ComponentRef {
	id := storage.TypeIndex[T]()
	meta, _ := storage.MetadataByID(id)
	return ComponentRef{
		id:   id,
		name: meta.Name(),
	}
}

// ID returns the referenced type index.
func (r ComponentRef) ID() types.ComponentID {
	return r.id
}

// Name returns the referenced type name.
func (r ComponentRef) Name() string {
	return r.name
}
