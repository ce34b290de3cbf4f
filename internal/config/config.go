package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"ganttview/internal/model"
)

// Config holds rendering and serving options. Everything here is cosmetic
// or transport-level: parsing and validation semantics never depend on it.
type Config struct {
	ListenAddr     string   `yaml:"listen_addr"`
	Palette        []string `yaml:"palette"`
	ShowLegend     bool     `yaml:"show_legend"`
	ChartWidth     int      `yaml:"chart_width"`
	LaneHeight     int      `yaml:"lane_height"`
	LabelSize      int      `yaml:"label_size"`
	RefreshSeconds int      `yaml:"refresh_seconds"`
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// DefaultConfig returns sensible defaults in case no options file is provided.
func DefaultConfig() Config {
	return Config{
		ListenAddr:     "localhost:8080",
		ShowLegend:     true,
		ChartWidth:     1000,
		LaneHeight:     36,
		LabelSize:      11,
		RefreshSeconds: 2,
	}
}

// Load reads options from a yaml file. An empty path or a missing file falls
// back to defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = DefaultConfig().ListenAddr
	}
	if cfg.ChartWidth <= 0 {
		cfg.ChartWidth = DefaultConfig().ChartWidth
	}
	if cfg.LaneHeight <= 0 {
		cfg.LaneHeight = DefaultConfig().LaneHeight
	}
	if cfg.LabelSize <= 0 {
		cfg.LabelSize = DefaultConfig().LabelSize
	}
	if cfg.RefreshSeconds <= 0 {
		cfg.RefreshSeconds = DefaultConfig().RefreshSeconds
	}
	for i, c := range cfg.Palette {
		if !hexColor.MatchString(c) {
			return Config{}, fmt.Errorf("palette entry %d (%q) is not a #rrggbb color", i, c)
		}
	}
	return cfg, nil
}

// PaletteColors converts the configured palette into model colors. Nil when
// no override is configured, so callers fall back to the built-in palette.
func (c Config) PaletteColors() []model.Color {
	if len(c.Palette) == 0 {
		return nil
	}
	out := make([]model.Color, len(c.Palette))
	for i, p := range c.Palette {
		out[i] = model.Color(p)
	}
	return out
}
