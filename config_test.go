package mosaic

import (
	"testing"

	"github.com/rs/zerolog"
	"gotest.tools/v3/assert"
)

func TestLoadWorldConfigDefaults(t *testing.T) {
	cfg, err := loadWorldConfig()
	assert.NilError(t, err)
	assert.Equal(t, DefaultLogLevel, cfg.MosaicLogLevel)
	assert.Equal(t, false, cfg.MosaicLogPretty)
	assert.Equal(t, true, cfg.MosaicValidation)
	assert.Equal(t, DefaultEntityCapacity, cfg.MosaicEntityCapacity)
}

func TestLoadWorldConfigFromEnv(t *testing.T) {
	t.Setenv("MOSAIC_LOG_LEVEL", "debug")
	t.Setenv("MOSAIC_LOG_PRETTY", "true")
	t.Setenv("MOSAIC_VALIDATION", "false")
	t.Setenv("MOSAIC_ENTITY_CAPACITY", "64")

	cfg, err := loadWorldConfig()
	assert.NilError(t, err)
	assert.Equal(t, "debug", cfg.MosaicLogLevel)
	assert.Equal(t, true, cfg.MosaicLogPretty)
	assert.Equal(t, false, cfg.MosaicValidation)
	assert.Equal(t, 64, cfg.MosaicEntityCapacity)
}

func TestLoadWorldConfigRejectsBadLevel(t *testing.T) {
	t.Setenv("MOSAIC_LOG_LEVEL", "chatty")

	_, err := loadWorldConfig()
	assert.ErrorContains(t, err, "invalid log level")
}

func TestWorldConfigValidate(t *testing.T) {
	cfg := defaultConfig
	assert.NilError(t, cfg.Validate())

	bad := defaultConfig
	bad.MosaicEntityCapacity = 0
	assert.ErrorContains(t, bad.Validate(), "entity capacity")

	bad = defaultConfig
	bad.MosaicLogLevel = "nope"
	assert.ErrorContains(t, bad.Validate(), "invalid log level")
}

func TestOptionsWinOverEnv(t *testing.T) {
	t.Setenv("MOSAIC_ENTITY_CAPACITY", "16")

	world, err := NewWorld(
		WithLogger(zerolog.Nop()),
		WithEntityCapacity(128),
		WithValidation(false),
	)
	assert.NilError(t, err)
	assert.Equal(t, 128, world.cfg.MosaicEntityCapacity)
	assert.Equal(t, false, world.cfg.MosaicValidation)
}
