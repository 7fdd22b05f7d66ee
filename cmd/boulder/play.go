package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-boulder/internal/core"
	"github.com/vovakirdan/tui-boulder/internal/games/boulder"
	"github.com/vovakirdan/tui-boulder/internal/platform/tui"
	"github.com/vovakirdan/tui-boulder/internal/platform/window"
	"github.com/vovakirdan/tui-boulder/internal/storage"
)

var flagWindow bool

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing the given level, or pick one from a menu when omitted.
The level may be an ID from 'boulder levels' or a path to a level file.

Controls:
  Arrows/WASD  - Move (queued, applied on the next tick)
  R            - Restart the level
  Esc/B        - Back to the level picker
  Q/Ctrl+C     - Quit

Examples:
  boulder play
  boulder play 01-classic
  boulder play ./my-level.yaml
  boulder play 02-two-keys --window --fps 20`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Open a desktop window instead of using the terminal")
}

func gameOptions() boulder.Options {
	return boulder.Options{
		Palette:   app.cfg.CorePalette(),
		CellWidth: app.cfg.Display.CellWidth,
	}
}

// openStore opens session storage, continuing without it on failure.
func openStore() *storage.Store {
	store, err := storage.Open(app.cfg.Paths.Database)
	if err != nil {
		log.Warn("could not open session database", "error", err)
		return nil
	}
	return store
}

func currentUser() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return os.Getenv("USERNAME")
}

func runPlay(_ *cobra.Command, args []string) error {
	if flagWindow && len(args) == 0 {
		return errors.New("--window needs a level argument")
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	user := currentUser()

	if flagWindow {
		return playWindow(args[0], store, user)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		TickInterval: app.cfg.TickInterval(),
	}

	if len(args) == 0 {
		lvls, err := loadLevels()
		if err != nil {
			return levelError(err)
		}
		if err := tui.RunSession(lvls, gameOptions(), store, cfg, user); err != nil {
			return fmt.Errorf("error running game: %w", err)
		}
		return nil
	}

	lvl, err := resolveLevel(args[0])
	if err != nil {
		return levelError(err)
	}
	state, err := tui.Run(boulder.New(lvl, gameOptions()), store, cfg, user)
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	logSummary(lvl.ID, state)
	return nil
}

// playWindow runs a level in a desktop window. Every run, including the
// ones ended by a restart, is recorded.
func playWindow(arg string, store *storage.Store, user string) error {
	lvl, err := resolveLevel(arg)
	if err != nil {
		return levelError(err)
	}
	game := boulder.New(lvl, gameOptions())

	record := func(s core.GameState) {
		recordSession(store, lvl.ID, user, s)
	}
	state, err := window.Run(game, window.Options{
		TileSize:     app.cfg.Display.TileSize,
		TPS:          app.cfg.Loop.FPS,
		OnSessionEnd: record,
	})
	if err != nil {
		return fmt.Errorf("error running window: %w", err)
	}

	logSummary(lvl.ID, state)
	return nil
}

// recordSession stores a finished session when anything was moved.
func recordSession(store *storage.Store, levelID, user string, state core.GameState) {
	if store == nil || state.Moves == 0 {
		return
	}
	_, err := store.SaveSession(storage.Session{
		LevelID:     levelID,
		User:        user,
		Moves:       state.Moves,
		Pushes:      state.Pushes,
		LocksOpened: state.LocksOpened,
		Ticks:       state.Tick,
	})
	if err != nil {
		log.Warn("could not save session", "level", levelID, "error", err)
	}
}

func logSummary(levelID string, state core.GameState) {
	log.Info("session finished",
		"level", levelID,
		"ticks", state.Tick,
		"moves", state.Moves,
		"pushes", state.Pushes,
		"locks", state.LocksOpened,
	)
}
