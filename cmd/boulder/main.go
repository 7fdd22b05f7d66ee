// boulder is a falling-rock tile puzzle for the terminal, a desktop window, or SSH.
//
// Usage:
//
//	boulder levels                 - List available levels
//	boulder play [level]           - Play a level (picker when omitted)
//	boulder show <level>           - Print a level's layout
//	boulder validate <file>...     - Check level files
//	boulder simulate <level>       - Replay moves headlessly
//	boulder history [level]        - Show recorded sessions
//	boulder serve                  - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>   - Config file (default search: ~/.boulder/config.yaml, ./configs/boulder.yaml)
//	--fps <rate>      - Override simulation rate
//	--db <path>       - Override session database path
//	--levels <dir>    - Extra level directory
//	--debug           - Debug logging
//	--log-file <path> - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-boulder/internal/config"
)

var (
	// Global flags
	flagConfig    string
	flagFPS       int
	flagDBPath    string
	flagLevelsDir string
	flagDebug     bool
	flagLogFile   string
)

// app holds what the persistent pre-run resolved for subcommands.
var app struct {
	cfg     config.BoulderConfig
	logger  *log.Logger
	logSink io.Closer
}

func main() {
	err := rootCmd.Execute()
	if app.logSink != nil {
		app.logSink.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "boulder",
	Short: "Boulder - push stones, open locks, mind the gravity",
	Long: `Boulder is a tile puzzle: walk through flux, push stones and boxes,
collect keys to open matching locks, and watch unsupported tiles fall.

Available commands:
  levels    - Show all available levels
  play      - Play a level in the terminal or a window
  show      - Print a level's layout
  validate  - Check level files for errors
  simulate  - Replay a move sequence without a UI
  history   - View recorded sessions
  serve     - Start SSH server for remote play

Examples:
  boulder levels
  boulder play 01-classic
  boulder play 01-classic --window
  boulder simulate 01-classic --moves RRRDDLD
  boulder serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to session database (empty = use config)")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Extra level directory (empty = use config)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup builds the logger and loads configuration before any subcommand runs.
func setup(_ *cobra.Command, _ []string) error {
	var out io.Writer = os.Stderr
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		out = f
		app.logSink = f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "boulder",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	log.SetDefault(logger)
	app.logger = logger

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	// Flags override config
	if flagFPS > 0 {
		cfg.Loop.FPS = flagFPS
	}
	if flagDBPath != "" {
		cfg.Paths.Database = flagDBPath
	}
	if flagLevelsDir != "" {
		cfg.Paths.LevelsDir = flagLevelsDir
	}
	app.cfg = cfg

	logger.Debug("configuration loaded",
		"fps", cfg.Loop.FPS,
		"levels_dir", cfg.Paths.LevelsDir,
		"db", cfg.Paths.Database,
	)
	return nil
}

// expandHome resolves a leading ~ to the user's home directory.
func expandHome(p string) string {
	if p == "" || p[0] != '~' {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[1:])
}
