// Package config reads the viewer settings from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/axuy/axuy/torus"
)

// EnvPath names the environment variable consulted when no path is given.
const EnvPath = "AXUY_CONFIG"

type Config struct {
	Size           [2]int  `yaml:"size"`
	VSync          bool    `yaml:"vsync"`
	FOV            float32 `yaml:"fov"`
	MouseSpeed     float32 `yaml:"mouse_speed"`
	ZoomSpeed      float32 `yaml:"zoom_speed"`
	Color          string  `yaml:"color"`
	Tiles          string  `yaml:"tiles"`
	Generator      string  `yaml:"generator"`
	PlacementTries int     `yaml:"placement_tries"`
	Seed           uint64  `yaml:"seed"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Size:           [2]int{640, 480},
		VSync:          true,
		FOV:            90,
		MouseSpeed:     1,
		ZoomSpeed:      1,
		Color:          "eeeeec",
		Generator:      "random",
		PlacementTries: torus.DefaultPlacementTries,
	}
}

// Load reads a YAML file over the defaults. An empty path falls back to
// $AXUY_CONFIG; if that is unset too, the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvPath)
		if path == "" {
			return cfg, nil
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the viewer cannot start with.
func (c *Config) Validate() error {
	if c.Size[0] <= 0 || c.Size[1] <= 0 {
		return fmt.Errorf("invalid size %dx%d", c.Size[0], c.Size[1])
	}
	if c.FOV <= 0 || c.FOV >= 180 {
		return fmt.Errorf("invalid fov %.1f", c.FOV)
	}
	if _, err := torus.ParseHexColor(c.Color); err != nil {
		return err
	}
	return nil
}

// RGB returns the parsed mesh color.
func (c *Config) RGB() ([3]float32, error) {
	return torus.ParseHexColor(c.Color)
}
