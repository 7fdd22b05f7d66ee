// Package levels provides level loading functionality for Boulder.
// This package depends on core but core does not depend on levels.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-boulder/internal/games/boulder/core"
	"github.com/vovakirdan/tui-boulder/internal/games/boulder/levels/formats"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Grid     *core.Grid // Initial layout; never mutated by play
	Metadata map[string]string
	FilePath string
}

// NewWorld creates a fresh world from the level's initial layout.
func (l *Level) NewWorld() *core.World {
	return core.NewWorld(l.Grid.Clone())
}

// Loader handles loading levels from a file tree.
type Loader struct {
	FS     fs.FS
	Root   string      // Display name of the tree, used in errors
	Logger *log.Logger // Optional; defaults to the package-level logger
}

// NewLoader creates a loader over a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{FS: os.DirFS(root), Root: root}
}

// Builtin returns a loader over the levels compiled into the binary.
func Builtin() *Loader {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		panic("levels: " + err.Error())
	}
	return &Loader{FS: sub, Root: "builtin"}
}

func (l *Loader) logger() *log.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return log.Default()
}

// LoadAll recursively scans and loads all level files.
// Files that fail to parse or validate are skipped, except for unknown tile
// codes, which abort loading. Returns levels sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.FS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(p))
		if !isSupportedExtension(ext) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			if errors.Is(err, core.ErrUnknownTileCode) {
				return err
			}
			l.logger().Debug("skipping level file", "root", l.Root, "file", p, "error", err)
			return nil
		}

		levels = append(levels, level)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", l.Root, err)
	}

	// Sort by ID for determinism
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads and validates a single level file relative to the loader root.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.FS, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	lvl, err := Parse(data, path.Ext(p))
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}
	lvl.FilePath = path.Join(l.Root, p)
	return lvl, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// Parse decodes and validates level data in the format given by ext.
func Parse(data []byte, ext string) (Level, error) {
	parsed, err := parseByExtension(data, strings.ToLower(ext))
	if err != nil {
		return Level{}, err
	}
	if err := core.Validate(parsed.Grid); err != nil {
		return Level{}, fmt.Errorf("level %s: %w", parsed.ID, err)
	}

	return Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Grid:     parsed.Grid,
		Metadata: parsed.Metadata,
	}, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
