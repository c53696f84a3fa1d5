package mosaic

import (
	"github.com/mosaic-engine/mosaic/iterators"
)

var (
	ErrStaleHandle              = iterators.ErrStaleHandle
	ErrComponentNotFound        = iterators.ErrComponentNotFound
	ErrDuplicateFilterPredicate = iterators.ErrDuplicateFilterPredicate
	ErrInvalidFilterPredicate   = iterators.ErrInvalidFilterPredicate
	ErrLeakedEntityDetected     = iterators.ErrLeakedEntityDetected
	ErrCapacityExhausted        = iterators.ErrCapacityExhausted
	ErrNoMatchingEntities       = iterators.ErrNoMatchingEntities
)
