package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/stepclimb/climb"
	"github.com/lixenwraith/stepclimb/decal"
	"github.com/lixenwraith/stepclimb/parameter"
)

// Config is the full program configuration, file values layered over Default
type Config struct {
	Steps  int          `yaml:"steps"`
	Finale string       `yaml:"finale,omitempty"`
	Audio  AudioConfig  `yaml:"audio"`
	Decal  decal.Config `yaml:"decal"`
}

// AudioConfig toggles the step and finale cues
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Steps: parameter.DefaultSteps,
		Audio: AudioConfig{
			Enabled: true,
			Volume:  parameter.AudioDefaultVolume,
		},
		Decal: decal.DefaultConfig(),
	}
}

// Load reads path over the defaults, a missing file yields the defaults
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result
// Unknown keys are rejected
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the staircase and decal settings
func (c Config) Validate() error {
	if c.Steps < 1 {
		return fmt.Errorf("steps must be at least 1, got %d", c.Steps)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be in [0,1], got %v", c.Audio.Volume)
	}
	return c.Decal.Validate()
}

// FinaleMessage returns the configured finale or the stock one for Steps
func (c Config) FinaleMessage() string {
	if c.Finale != "" {
		return c.Finale
	}
	return climb.FinaleText(c.Steps)
}
