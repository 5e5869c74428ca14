package lighting

import "fmt"

// Config is the read-only tuning surface of the pipeline.
type Config struct {
	Enabled     bool    `yaml:"enabled"`
	MaxDistance float64 `yaml:"max_distance"`
	MaxLights   int     `yaml:"max_lights"`
	FrameSkip   int     `yaml:"frame_skip"`
}

func DefaultConfig() Config {
	return Config{
		Enabled:     true,
		MaxDistance: 64,
		MaxLights:   10,
		FrameSkip:   0,
	}
}

func (c Config) Validate() error {
	if c.MaxDistance < 0 {
		return fmt.Errorf("%w: max_distance %v is negative", ErrInvalidConfig, c.MaxDistance)
	}
	if c.MaxLights < 0 {
		return fmt.Errorf("%w: max_lights %d is negative", ErrInvalidConfig, c.MaxLights)
	}
	if c.FrameSkip < 0 {
		return fmt.Errorf("%w: frame_skip %d is negative", ErrInvalidConfig, c.FrameSkip)
	}
	return nil
}
