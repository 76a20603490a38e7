package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"habiter/internal/domain"

	"gopkg.in/yaml.v3"
)

type WindowConfig struct {
	Title string  `yaml:"title"`
	Scale float64 `yaml:"scale"`
}

type Config struct {
	Game        domain.GameConfig `yaml:"game"`
	Window      WindowConfig      `yaml:"window"`
	Sound       bool              `yaml:"sound"`
	RecordsPath string            `yaml:"records_path"`
}

func Default() *Config {
	return &Config{
		Game: *domain.DefaultGameConfig(),
		Window: WindowConfig{
			Title: "Snake Game - Health Habiter",
			Scale: 1,
		},
		Sound: true,
	}
}

// Load reads path on top of the defaults. An empty path means defaults only.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := cfg.decode(data); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (c *Config) Validate() error {
	if err := c.Game.Validate(); err != nil {
		return err
	}
	if c.Window.Scale < 0.5 || c.Window.Scale > 4 {
		return fmt.Errorf("window scale must be 0.5-4, got %g", c.Window.Scale)
	}
	return nil
}

// WindowSize is the board in screen pixels, before the side panel and header.
func (c *Config) WindowSize() (int, int) {
	return int(float64(c.Game.BoardWidth) * c.Window.Scale), int(float64(c.Game.BoardHeight) * c.Window.Scale)
}

func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
