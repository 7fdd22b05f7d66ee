package main

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-boulder/internal/games/boulder/core"
	"github.com/vovakirdan/tui-boulder/internal/games/boulder/levels/formats"
)

var (
	flagMoves  string
	flagSettle int
	flagBatch  bool
	flagYAML   bool
	flagTrace  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <level>",
	Short: "Replay a move sequence without a UI",
	Long: `Run a level headlessly. Each move is queued and followed by one tick,
then extra ticks let falling tiles settle. Moves are L, R, U, D; spaces and
commas are ignored.

With --batch every move is queued before a single tick, and the queue is
drained newest first.

Examples:
  boulder simulate 01-classic --moves RRRDDLD
  boulder simulate 01-classic --moves "R R D" --trace
  boulder simulate 03-avalanche --moves LLD --yaml > after.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagMoves, "moves", "", "Moves to apply (L/R/U/D)")
	simulateCmd.Flags().IntVar(&flagSettle, "settle", 5, "Extra ticks after the last move")
	simulateCmd.Flags().BoolVar(&flagBatch, "batch", false, "Queue all moves before one tick")
	simulateCmd.Flags().BoolVar(&flagYAML, "yaml", false, "Print the final state as a level file")
	simulateCmd.Flags().BoolVar(&flagTrace, "trace", false, "Print the grid after every tick")
}

// parseMoves reads a move string such as "RRD L,U".
func parseMoves(s string) ([]core.Dir, error) {
	var dirs []core.Dir
	for i, r := range s {
		if unicode.IsSpace(r) || r == ',' {
			continue
		}
		d, ok := core.ParseDir(string(r))
		if !ok {
			return nil, fmt.Errorf("move %d: unknown direction %q", i+1, r)
		}
		dirs = append(dirs, d)
	}
	return dirs, nil
}

// simulation tallies what happened over a run.
type simulation struct {
	world  *core.World
	moves  []core.MoveEvent
	falls  int
	traces []string
}

func (s *simulation) tick(trace bool) {
	res := s.world.Step()
	s.moves = append(s.moves, res.Moves...)
	s.falls += len(res.Falls)
	if trace {
		s.traces = append(s.traces, fmt.Sprintf("tick %d\n%s", res.Tick, s.world.Grid.String()))
	}
}

// runMoves applies dirs to w, either one per tick or all in one tick.
func runMoves(w *core.World, dirs []core.Dir, batch bool, settle int, trace bool) *simulation {
	sim := &simulation{world: w}
	if batch {
		for _, d := range dirs {
			w.Input.Push(d)
		}
		sim.tick(trace)
	} else {
		for _, d := range dirs {
			w.Input.Push(d)
			sim.tick(trace)
		}
	}
	for i := 0; i < settle; i++ {
		sim.tick(trace)
	}
	return sim
}

func runSimulate(_ *cobra.Command, args []string) {
	lvl := mustResolveLevel(args[0])

	dirs, err := parseMoves(flagMoves)
	if err != nil {
		log.Fatal("invalid moves", "error", err)
	}

	sim := runMoves(lvl.NewWorld(), dirs, flagBatch, flagSettle, flagTrace)

	if flagYAML {
		out, err := formats.MarshalYAML(formats.Level{
			ID:       lvl.ID,
			Name:     lvl.Name,
			Grid:     sim.world.Grid,
			Metadata: lvl.Metadata,
		})
		if err != nil {
			log.Fatal("could not encode level", "error", err)
		}
		fmt.Print(string(out))
		return
	}

	for _, t := range sim.traces {
		fmt.Println(t)
		fmt.Println()
	}

	for _, ev := range sim.moves {
		line := fmt.Sprintf("%-5s %s -> %s  %s", ev.Dir, ev.From, ev.To, ev.Outcome)
		if ev.LocksOpened > 0 {
			line += fmt.Sprintf(" (%d locks)", ev.LocksOpened)
		}
		fmt.Println(strings.TrimRight(line, " "))
	}

	fmt.Println()
	fmt.Println(sim.world.Grid.String())
	fmt.Println()
	fmt.Printf("ticks %d  moves %d  falls %d\n", sim.world.Tick, len(sim.moves), sim.falls)
	if pos, ok := sim.world.Player(); ok {
		fmt.Printf("player at %s\n", pos)
	}
}
