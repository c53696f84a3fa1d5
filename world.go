// Package mosaic is an in-memory entity-component-system data store. It
// manages a dynamic population of entities, attaches and removes typed
// component values at high frequency, and keeps live filters over
// component-presence predicates so per-frame logic iterates only the
// entities it cares about.
//
// All structural mutation happens on one logical thread; the only
// cross-thread state is the process-wide component type registry.
package mosaic

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/mosaic-engine/mosaic/iterators"
	ecslog "github.com/mosaic-engine/mosaic/log"
	"github.com/mosaic-engine/mosaic/storage"
	"github.com/mosaic-engine/mosaic/types"
)

// World owns all entity records, component pools, and filters. A World is
// not safe for concurrent use; see the package comment.
type World struct {
	instanceID string
	cfg        WorldConfig
	logger     zerolog.Logger
	table      *storage.Table
	pools      []storage.ComponentPool
	index      *storage.FilterIndex
	filters    []*Filter
	bySig      map[string]*Filter
	listeners  []Listener
	destroyed  bool

	// set by options, consumed once in NewWorld
	overrideLogger *zerolog.Logger
}

// NewWorld creates a world configured from the environment (see WorldConfig)
// and the given options. Options win over environment values.
func NewWorld(opts ...WorldOption) (*World, error) {
	cfg, err := loadWorldConfig()
	if err != nil {
		return nil, err
	}

	w := &World{
		instanceID: uuid.New().String(),
		cfg:        *cfg,
		index:      storage.NewFilterIndex(),
		bySig:      make(map[string]*Filter),
	}
	for _, opt := range opts {
		opt.worldOption(w)
	}
	if err := w.cfg.Validate(); err != nil {
		return nil, err
	}

	base := w.buildLogger()
	w.overrideLogger = nil
	w.logger = *ecslog.CreateWorldLogger(&base, w.instanceID)
	w.table = storage.NewTable(w.cfg.MosaicEntityCapacity)

	w.logger.Info().
		Int("entity_capacity", w.cfg.MosaicEntityCapacity).
		Bool("validation", w.cfg.MosaicValidation).
		Msg("world created")
	return w, nil
}

func (w *World) buildLogger() zerolog.Logger {
	if w.overrideLogger != nil {
		return *w.overrideLogger
	}
	// Config was validated, so the level always parses.
	level, _ := zerolog.ParseLevel(w.cfg.MosaicLogLevel)
	var out io.Writer = os.Stderr
	if w.cfg.MosaicLogPretty {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// Logger returns the world's logger.
func (w *World) Logger() *zerolog.Logger {
	return &w.logger
}

// InstanceID returns the unique id assigned to this world at creation. It
// tags every log line the world emits.
func (w *World) InstanceID() string {
	return w.instanceID
}

// Stats returns a point-in-time snapshot of the world's counters.
func (w *World) Stats() types.WorldStats {
	return types.WorldStats{
		ActiveEntities:     w.table.ActiveCount(),
		ReservedEntities:   w.table.ReservedCount(),
		FilterCount:        len(w.filters),
		ComponentTypeCount: storage.RegisteredTypeCount(),
	}
}

// GetRegisteredComponents implements log.Loggable.
func (w *World) GetRegisteredComponents() []*types.ComponentMetadata {
	return storage.RegisteredComponents()
}

// GetRegisteredFilters implements log.Loggable.
func (w *World) GetRegisteredFilters() []string {
	signatures := make([]string, len(w.filters))
	for i, f := range w.filters {
		signatures[i] = f.signature
	}
	return signatures
}

// Destroy tears the world down: every live entity is destroyed (driving the
// usual filter-update path) and listeners are notified. In validation mode,
// entities that were created but never received a component are reported as
// leaks.
func (w *World) Destroy() error {
	if w.destroyed {
		return nil
	}

	var leaked []types.EntityID
	if w.cfg.MosaicValidation {
		for _, h := range w.table.LiveHandles() {
			rec, err := w.table.Record(h)
			if err != nil {
				continue
			}
			if rec.ComponentCount() == 0 {
				leaked = append(leaked, h.ID)
			}
		}
	}

	for _, h := range w.table.LiveHandles() {
		if err := w.DestroyEntity(h); err != nil {
			return err
		}
	}
	w.destroyed = true

	for _, l := range w.listeners {
		l.OnWorldDestroyed(w)
	}
	ecslog.World(&w.logger, w, zerolog.InfoLevel)
	w.logger.Info().Msg("world destroyed")

	if len(leaked) > 0 {
		return eris.Wrapf(iterators.ErrLeakedEntityDetected, "entity ids %v", leaked)
	}
	return nil
}

// logAndPanic reports an internal invariant violation. These are engine
// bugs, never recoverable caller errors.
func (w *World) logAndPanic(err error) {
	w.logger.Panic().Err(err).Msg(eris.ToString(err, true))
}
