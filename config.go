package mirage

import (
	"fmt"
	"os"
	"time"

	"github.com/gekko3d/mirage/lighting"
	"gopkg.in/yaml.v3"
)

// Config is the file-backed configuration of a lighting app.
//
//	log_prefix: mirage
//	debug: false
//	tick_rate: 50ms
//	lighting:
//	  enabled: true
//	  max_distance: 64
//	  max_lights: 10
//	  frame_skip: 0
type Config struct {
	LogPrefix string          `yaml:"log_prefix"`
	Debug     bool            `yaml:"debug"`
	TickRate  time.Duration   `yaml:"tick_rate"`
	Lighting  lighting.Config `yaml:"lighting"`
}

func DefaultConfig() Config {
	return Config{
		LogPrefix: "mirage",
		TickRate:  DefaultTickRate,
		Lighting:  lighting.DefaultConfig(),
	}
}

// LoadConfig reads a YAML config file. Keys missing from the file keep
// their defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate %v must be positive", lighting.ErrInvalidConfig, c.TickRate)
	}
	return c.Lighting.Validate()
}
