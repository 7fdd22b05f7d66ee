// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-boulder/internal/games/boulder/core"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Tiles    [][]int           `yaml:"tiles"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// Level represents a parsed level ready for use.
type Level struct {
	ID       string
	Name     string
	Grid     *core.Grid
	Metadata map[string]string
}

// ParseYAML parses a YAML level file.
// Tile codes outside the known set fail with core.ErrUnknownTileCode.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, fmt.Errorf("level has no id")
	}

	rows := make([][]core.RawTile, len(yl.Tiles))
	for y, row := range yl.Tiles {
		rows[y] = make([]core.RawTile, len(row))
		for x, code := range row {
			rows[y][x] = core.RawTile(code)
		}
	}

	grid, err := core.Decode(rows)
	if err != nil {
		return Level{}, fmt.Errorf("level %s: %w", yl.ID, err)
	}

	name := yl.Name
	if name == "" {
		name = yl.ID
	}

	return Level{
		ID:       yl.ID,
		Name:     name,
		Grid:     grid,
		Metadata: yl.Metadata,
	}, nil
}

// MarshalYAML encodes a level back into the file format.
func MarshalYAML(l Level) ([]byte, error) {
	rows, err := l.Grid.Encode()
	if err != nil {
		return nil, err
	}

	yl := YAMLLevel{
		ID:       l.ID,
		Name:     l.Name,
		Tiles:    make([][]int, len(rows)),
		Metadata: l.Metadata,
	}
	for y, row := range rows {
		yl.Tiles[y] = make([]int, len(row))
		for x, code := range row {
			yl.Tiles[y][x] = int(code)
		}
	}
	return yaml.Marshal(yl)
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
