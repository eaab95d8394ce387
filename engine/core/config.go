package core

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

type RandomConfig struct {
	// Seed for the process-wide generator. Zero means seed from the wall clock.
	Seed uint64 `toml:"seed"`
}

type GeometryConfig struct {
	CircleSegments int `toml:"circle_segments"`
	SphereRings    int `toml:"sphere_rings"`
	SphereSectors  int `toml:"sphere_sectors"`
	// Upper bound on the number of float64 values a generator may allocate.
	MaxBufferLen int `toml:"max_buffer_len"`
}

type JobsConfig struct {
	Workers   int `toml:"workers"`
	QueueSize int `toml:"queue_size"`
}

// Config is the on-disk configuration of the icemath tools.
type Config struct {
	LogLevel string         `toml:"log_level"`
	Random   RandomConfig   `toml:"random"`
	Geometry GeometryConfig `toml:"geometry"`
	Jobs     JobsConfig     `toml:"jobs"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Geometry: GeometryConfig{
			CircleSegments: 64,
			SphereRings:    16,
			SphereSectors:  32,
			MaxBufferLen:   1 << 24,
		},
		Jobs: JobsConfig{
			Workers:   4,
			QueueSize: 64,
		},
	}
}

// LoadConfig reads the TOML file at path on top of DefaultConfig. A missing file
// is not an error, unknown keys are.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			LogDebug("config file %s not found, using defaults", path)
			return cfg, nil
		}
		return nil, err
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("decoding config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Geometry.CircleSegments < 3 {
		return fmt.Errorf("geometry.circle_segments must be >= 3, got %d", c.Geometry.CircleSegments)
	}
	if c.Geometry.SphereRings < 1 {
		return fmt.Errorf("geometry.sphere_rings must be >= 1, got %d", c.Geometry.SphereRings)
	}
	if c.Geometry.SphereSectors < 3 {
		return fmt.Errorf("geometry.sphere_sectors must be >= 3, got %d", c.Geometry.SphereSectors)
	}
	if c.Geometry.MaxBufferLen < 1 {
		return fmt.Errorf("geometry.max_buffer_len must be > 0, got %d", c.Geometry.MaxBufferLen)
	}
	if c.Jobs.Workers < 1 {
		return ErrNoWorkers
	}
	if c.Jobs.QueueSize < 0 {
		return ErrNegativeChannelSize
	}
	return nil
}

// Save writes the configuration as TOML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
