package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-boulder/internal/games/boulder/core"
	"github.com/vovakirdan/tui-boulder/internal/games/boulder/levels/formats"
)

var flagStrict bool

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check level files for errors",
	Long: `Decode each level file and check it can be played: known tile codes,
rectangular rows, and exactly one player. Warnings report keys without a
matching lock and locks without a matching key.

Exits non-zero if any file has an error (or a warning with --strict).

Examples:
  boulder validate levels/*.yaml
  boulder validate --strict my-level.yaml`,
	Args: cobra.MinimumNArgs(1),
	Run:  runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&flagStrict, "strict", false, "Treat warnings as errors")
}

func runValidate(_ *cobra.Command, args []string) {
	failed := 0
	for _, path := range args {
		errs, warns := validateFile(path)
		for _, e := range errs {
			fmt.Printf("%s: error: %v\n", path, e)
		}
		for _, w := range warns {
			fmt.Printf("%s: warning: %v\n", path, w)
		}
		if len(errs) > 0 || (flagStrict && len(warns) > 0) {
			failed++
			continue
		}
		fmt.Printf("%s: ok\n", path)
	}

	if failed > 0 {
		log.Error("validation failed", "files", failed, "total", len(args))
		os.Exit(1)
	}
}

// validateFile returns blocking errors and lint warnings for one file.
func validateFile(path string) (errs []error, warns []core.ValidationError) {
	data, err := os.ReadFile(path)
	if err != nil {
		return []error{err}, nil
	}

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
	default:
		return []error{fmt.Errorf("unsupported extension %q", filepath.Ext(path))}, nil
	}

	lvl, err := formats.ParseYAML(data)
	if err != nil {
		if errors.Is(err, core.ErrUnknownTileCode) {
			log.Debug("unknown tile code", "file", path, "error", err)
		}
		return []error{err}, nil
	}

	if err := core.Validate(lvl.Grid); err != nil {
		errs = append(errs, err)
	}
	return errs, core.Lint(lvl.Grid)
}
