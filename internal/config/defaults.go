package config

import (
	_ "embed"
)

//go:embed defaults/boulder.yaml
var defaultBoulderYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() BoulderConfig {
	return BoulderConfig{
		Loop: LoopConfig{
			FPS: 30,
		},
		Display: DisplayConfig{
			TileSize:  30,
			CellWidth: 2,
		},
		Palette: PaletteConfig{
			Flux:        "#ccffcc",
			Unbreakable: "#999999",
			Stone:       "#0000cc",
			Box:         "#8b4513",
			Player:      "#ff0000",
			Keys: map[int]string{
				1: "#ffcc00",
				2: "#00ccff",
			},
		},
		Paths: PathsConfig{
			Database: "~/.boulder/sessions.db",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBoulderYAML
}
