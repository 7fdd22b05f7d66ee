package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-boulder/internal/games/boulder/core"
	"github.com/vovakirdan/tui-boulder/internal/games/boulder/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long: `Shows the built-in levels plus any found in the configured level directory.
A level in the directory replaces a built-in level with the same ID.`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	lvls := mustLoadLevels()

	if len(lvls) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, l := range lvls {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	fmt.Printf("  %-*s  %-5s  %-5s  %s\n", maxIDLen, "ID", "Size", "Keys", "Name")
	fmt.Printf("  %-*s  %-5s  %-5s  %s\n", maxIDLen, "--", "----", "----", "----")

	for _, l := range lvls {
		size := fmt.Sprintf("%dx%d", l.Grid.W, l.Grid.H)
		keys := l.Grid.Count(core.KindKey)
		fmt.Printf("  %-*s  %-5s  %-5d  %s\n", maxIDLen, l.ID, size, keys, l.Name)
	}

	fmt.Println()
	fmt.Println("Run 'boulder play <id>' to play a level.")
}

// loadLevels returns the built-in levels merged with the configured directory.
func loadLevels() ([]levels.Level, error) {
	builtin := levels.Builtin()
	builtin.Logger = app.logger
	lvls, err := builtin.LoadAll()
	if err != nil {
		return nil, err
	}

	dir := expandHome(app.cfg.Paths.LevelsDir)
	if dir == "" {
		return lvls, nil
	}

	user := levels.NewLoader(dir)
	user.Logger = app.logger
	extra, err := user.LoadAll()
	if err != nil {
		return nil, err
	}
	app.logger.Debug("loaded level directory", "dir", dir, "levels", len(extra))

	return mergeLevels(lvls, extra), nil
}

// mergeLevels overlays extra onto base by ID, keeping base order first.
func mergeLevels(base, extra []levels.Level) []levels.Level {
	index := make(map[string]int, len(base))
	out := append([]levels.Level(nil), base...)
	for i, l := range out {
		index[l.ID] = i
	}
	for _, l := range extra {
		if i, ok := index[l.ID]; ok {
			out[i] = l
			continue
		}
		index[l.ID] = len(out)
		out = append(out, l)
	}
	return out
}

// levelError labels a level loading failure, singling out corrupt tile data.
func levelError(err error) error {
	if errors.Is(err, core.ErrUnknownTileCode) {
		return fmt.Errorf("corrupt level data: %w", err)
	}
	return fmt.Errorf("could not load level: %w", err)
}

// mustLoadLevels loads levels or exits. Unknown tile codes are fatal.
func mustLoadLevels() []levels.Level {
	lvls, err := loadLevels()
	if err != nil {
		log.Fatal(levelError(err))
	}
	return lvls
}

// resolveLevel finds a level by ID, or loads it directly when arg is a level file.
func resolveLevel(arg string) (levels.Level, error) {
	ext := strings.ToLower(filepath.Ext(arg))
	if ext == ".yaml" || ext == ".yml" {
		if _, err := os.Stat(arg); err == nil {
			return levels.NewLoader(filepath.Dir(arg)).LoadFile(filepath.Base(arg))
		}
	}

	lvls, err := loadLevels()
	if err != nil {
		return levels.Level{}, err
	}
	for _, l := range lvls {
		if l.ID == arg {
			return l, nil
		}
	}
	return levels.Level{}, fmt.Errorf("unknown level %q (run 'boulder levels' to list them)", arg)
}

// mustResolveLevel resolves a level or exits.
func mustResolveLevel(arg string) levels.Level {
	lvl, err := resolveLevel(arg)
	if err != nil {
		log.Fatal(levelError(err), "level", arg)
	}
	return lvl
}
