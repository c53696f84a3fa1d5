package mosaic

import (
	jlconfig "github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

const (
	// DefaultLogLevel is the zerolog level used when MOSAIC_LOG_LEVEL is
	// unset.
	DefaultLogLevel = "info"

	// DefaultEntityCapacity is the initial entity table and pool capacity
	// used when MOSAIC_ENTITY_CAPACITY is unset.
	DefaultEntityCapacity = 512
)

var defaultConfig = WorldConfig{
	MosaicLogLevel:       DefaultLogLevel,
	MosaicLogPretty:      false,
	MosaicValidation:     true,
	MosaicEntityCapacity: DefaultEntityCapacity,
}

// WorldConfig is loaded from the environment when a world is created.
// Functional options passed to NewWorld take precedence.
type WorldConfig struct {
	MosaicLogLevel       string `config:"MOSAIC_LOG_LEVEL"`
	MosaicLogPretty      bool   `config:"MOSAIC_LOG_PRETTY"`
	MosaicValidation     bool   `config:"MOSAIC_VALIDATION"`
	MosaicEntityCapacity int    `config:"MOSAIC_ENTITY_CAPACITY"`
}

func loadWorldConfig() (*WorldConfig, error) {
	cfg := defaultConfig
	if err := jlconfig.FromEnv().To(&cfg); err != nil {
		return nil, eris.Wrap(err, "failed to load world config from env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configs that cannot produce a working world.
func (c *WorldConfig) Validate() error {
	if _, err := zerolog.ParseLevel(c.MosaicLogLevel); err != nil {
		return eris.Wrapf(err, "invalid log level %q", c.MosaicLogLevel)
	}
	if c.MosaicEntityCapacity <= 0 {
		return eris.Errorf("entity capacity must be positive, got %d", c.MosaicEntityCapacity)
	}
	return nil
}
