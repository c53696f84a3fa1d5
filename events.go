package mosaic

import (
	"github.com/mosaic-engine/mosaic/types"
)

// Listener receives debug callbacks at defined points in the entity
// lifecycle. Every callback fires synchronously on the world's thread after
// the underlying state change has been committed. Implementations must not
// mutate the world from inside a callback.
type Listener interface {
	OnEntityCreated(h types.Handle)
	OnEntityDestroyed(h types.Handle)
	OnComponentChanged(h types.Handle, id types.ComponentID, added bool)
	OnFilterCreated(f *Filter)
	OnWorldDestroyed(w *World)
}

// NoopListener implements Listener with empty methods. Embed it to implement
// only the callbacks you care about.
type NoopListener struct{}

var _ Listener = NoopListener{}

func (NoopListener) OnEntityCreated(types.Handle)                             {}
func (NoopListener) OnEntityDestroyed(types.Handle)                           {}
func (NoopListener) OnComponentChanged(types.Handle, types.ComponentID, bool) {}
func (NoopListener) OnFilterCreated(*Filter)                                  {}
func (NoopListener) OnWorldDestroyed(*World)                                  {}
