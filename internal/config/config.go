// Package config provides YAML-based configuration loading for Boulder.
package config

import (
	"fmt"
	"time"

	"github.com/gookit/color"

	"github.com/vovakirdan/tui-boulder/internal/games/boulder/core"
)

// BoulderConfig contains all configuration for the game and its front ends.
type BoulderConfig struct {
	Loop    LoopConfig    `yaml:"loop"`
	Display DisplayConfig `yaml:"display"`
	Palette PaletteConfig `yaml:"palette"`
	Paths   PathsConfig   `yaml:"paths"`
}

// LoopConfig defines simulation timing.
type LoopConfig struct {
	FPS int `yaml:"fps"`
}

// DisplayConfig defines tile dimensions per front end.
type DisplayConfig struct {
	TileSize  int `yaml:"tile_size"`  // Window pixels per tile
	CellWidth int `yaml:"cell_width"` // Terminal columns per tile
}

// PaletteConfig defines tile colors as #rrggbb strings.
type PaletteConfig struct {
	Flux        string         `yaml:"flux"`
	Unbreakable string         `yaml:"unbreakable"`
	Stone       string         `yaml:"stone"`
	Box         string         `yaml:"box"`
	Player      string         `yaml:"player"`
	Keys        map[int]string `yaml:"keys"`
}

// PathsConfig defines where levels and session history live.
type PathsConfig struct {
	LevelsDir string `yaml:"levels_dir"`
	Database  string `yaml:"database"`
}

// TickInterval returns the delay between simulation steps.
func (c BoulderConfig) TickInterval() time.Duration {
	if c.Loop.FPS <= 0 {
		return time.Second / time.Duration(DefaultConfig().Loop.FPS)
	}
	return time.Second / time.Duration(c.Loop.FPS)
}

// Normalize replaces missing or out-of-range values with defaults.
// Palette entries left empty fall back to the default colors.
func (c *BoulderConfig) Normalize() {
	def := DefaultConfig()

	if c.Loop.FPS <= 0 {
		c.Loop.FPS = def.Loop.FPS
	}
	if c.Display.TileSize <= 0 {
		c.Display.TileSize = def.Display.TileSize
	}
	if c.Display.CellWidth <= 0 {
		c.Display.CellWidth = def.Display.CellWidth
	}

	fill := func(dst *string, fallback string) {
		if *dst == "" {
			*dst = fallback
		}
	}
	fill(&c.Palette.Flux, def.Palette.Flux)
	fill(&c.Palette.Unbreakable, def.Palette.Unbreakable)
	fill(&c.Palette.Stone, def.Palette.Stone)
	fill(&c.Palette.Box, def.Palette.Box)
	fill(&c.Palette.Player, def.Palette.Player)
	fill(&c.Paths.Database, def.Paths.Database)
}

// Validate checks that every palette entry is a hex color.
func (c BoulderConfig) Validate() error {
	entries := map[string]string{
		"flux":        c.Palette.Flux,
		"unbreakable": c.Palette.Unbreakable,
		"stone":       c.Palette.Stone,
		"box":         c.Palette.Box,
		"player":      c.Palette.Player,
	}
	for idx, hex := range c.Palette.Keys {
		entries[fmt.Sprintf("keys.%d", idx)] = hex
	}

	for name, hex := range entries {
		if hex == "" {
			continue
		}
		if len(color.HexToRgb(hex)) != 3 {
			return fmt.Errorf("config: palette %s: invalid color %q", name, hex)
		}
	}
	return nil
}

// CorePalette converts the configured colors for the drawing layer.
func (c BoulderConfig) CorePalette() core.Palette {
	p := core.DefaultPalette()
	if c.Palette.Flux != "" {
		p.Flux = c.Palette.Flux
	}
	if c.Palette.Unbreakable != "" {
		p.Unbreakable = c.Palette.Unbreakable
	}
	if c.Palette.Stone != "" {
		p.Stone = c.Palette.Stone
	}
	if c.Palette.Box != "" {
		p.Box = c.Palette.Box
	}
	if c.Palette.Player != "" {
		p.Player = c.Palette.Player
	}
	if len(c.Palette.Keys) > 0 {
		p.Keys = make(map[int]string, len(c.Palette.Keys))
		for idx, hex := range c.Palette.Keys {
			p.Keys[idx] = hex
		}
	}
	return p
}
