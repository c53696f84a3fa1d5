package iterators

import (
	"errors"
)

var (
	// ErrStaleHandle is returned when an operation is attempted through a
	// handle whose generation no longer matches the entity table. It marks a
	// use-after-destroy by the caller.
	ErrStaleHandle = errors.New("stale entity handle")

	// ErrComponentNotFound is returned by a required get for a component
	// type the entity does not hold.
	ErrComponentNotFound = errors.New("component not found on entity")

	ErrDuplicateFilterPredicate = errors.New("filter predicate already registered with a different declaration order")
	ErrInvalidFilterPredicate   = errors.New("filter predicate must include at least one component type")

	// ErrLeakedEntityDetected is reported at world teardown when an entity
	// that never received a component is still alive.
	ErrLeakedEntityDetected = errors.New("entity with no components still alive at world teardown")

	// ErrCapacityExhausted is fatal: the process-wide component type space
	// is full.
	ErrCapacityExhausted = errors.New("component type capacity exhausted")

	// ErrNoMatchingEntities is returned when a filter has no members.
	ErrNoMatchingEntities = errors.New("no entities match the filter")

	// Membership invariant violations. These indicate a bug in the
	// incremental update protocol, not a caller error.
	ErrEntityAlreadyInFilter = errors.New("entity already in filter")
	ErrEntityNotInFilter     = errors.New("entity not in filter")
)
