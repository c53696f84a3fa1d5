package log

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/mosaic-engine/mosaic/types"
)

type Loggable interface {
	GetRegisteredComponents() []*types.ComponentMetadata
	GetRegisteredFilters() []string
}

func loadComponentIntoArrayLogger(
	meta *types.ComponentMetadata,
	arrayLogger *zerolog.Array,
) *zerolog.Array {
	dictLogger := zerolog.Dict()
	dictLogger = dictLogger.Int("component_id", int(meta.ID()))
	dictLogger = dictLogger.Str("component_name", meta.Name())
	return arrayLogger.Dict(dictLogger)
}

func loadComponentsToEvent(zeroLoggerEvent *zerolog.Event, target Loggable) *zerolog.Event {
	components := target.GetRegisteredComponents()
	sort.Slice(components, func(i, j int) bool {
		return components[i].ID() < components[j].ID()
	})
	zeroLoggerEvent.Int("total_components", len(components))
	arrayLogger := zerolog.Arr()
	for _, meta := range components {
		arrayLogger = loadComponentIntoArrayLogger(meta, arrayLogger)
	}
	return zeroLoggerEvent.Array("components", arrayLogger)
}

func loadFiltersToEvent(zeroLoggerEvent *zerolog.Event, target Loggable) *zerolog.Event {
	filters := target.GetRegisteredFilters()
	zeroLoggerEvent.Int("total_filters", len(filters))
	arrayLogger := zerolog.Arr()
	for _, signature := range filters {
		arrayLogger = arrayLogger.Str(signature)
	}
	return zeroLoggerEvent.Array("filters", arrayLogger)
}

func loadEntityIntoEvent(
	zeroLoggerEvent *zerolog.Event, h types.Handle,
	components []*types.ComponentMetadata,
) *zerolog.Event {
	arrayLogger := zerolog.Arr()
	for _, meta := range components {
		arrayLogger = loadComponentIntoArrayLogger(meta, arrayLogger)
	}
	zeroLoggerEvent.Array("components", arrayLogger)
	zeroLoggerEvent.Int("entity_id", int(h.ID))
	return zeroLoggerEvent.Int("entity_gen", int(h.Gen))
}

// Components logs every component type registered with the world.
func Components(logger *zerolog.Logger, target Loggable, level zerolog.Level) {
	zeroLoggerEvent := logger.WithLevel(level)
	zeroLoggerEvent = loadComponentsToEvent(zeroLoggerEvent, target)
	zeroLoggerEvent.Send()
}

// Filters logs the signatures of every registered filter.
func Filters(logger *zerolog.Logger, target Loggable, level zerolog.Level) {
	zeroLoggerEvent := logger.WithLevel(level)
	zeroLoggerEvent = loadFiltersToEvent(zeroLoggerEvent, target)
	zeroLoggerEvent.Send()
}

// Entity logs an entity with its current component list.
func Entity(
	logger *zerolog.Logger,
	level zerolog.Level, h types.Handle,
	components []*types.ComponentMetadata,
) {
	zeroLoggerEvent := logger.WithLevel(level)
	loadEntityIntoEvent(zeroLoggerEvent, h, components).Send()
}

// World logs everything about the world (components and filters).
func World(logger *zerolog.Logger, target Loggable, level zerolog.Level) {
	zeroLoggerEvent := logger.WithLevel(level)
	zeroLoggerEvent = loadComponentsToEvent(zeroLoggerEvent, target)
	zeroLoggerEvent = loadFiltersToEvent(zeroLoggerEvent, target)
	zeroLoggerEvent.Send()
}

// CreateWorldLogger returns a sub logger tagged with the world instance id.
func CreateWorldLogger(logger *zerolog.Logger, worldID string) *zerolog.Logger {
	newLogger := logger.With().Str("world_id", worldID).Logger()
	return &newLogger
}
