package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-boulder/internal/games/boulder/core"
)

var flagShowASCII bool

var showCmd = &cobra.Command{
	Use:   "show <level>",
	Short: "Print a level's layout",
	Long: `Print the starting layout of a level in color, followed by a legend.

Examples:
  boulder show 01-classic
  boulder show ./my-level.yaml --ascii`,
	Args: cobra.ExactArgs(1),
	Run:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&flagShowASCII, "ascii", false, "Print tile characters without color")
}

func runShow(_ *cobra.Command, args []string) {
	lvl := mustResolveLevel(args[0])

	fmt.Printf("%s (%s) %dx%d\n\n", lvl.Name, lvl.ID, lvl.Grid.W, lvl.Grid.H)

	if flagShowASCII {
		fmt.Println(lvl.Grid.String())
	} else {
		fmt.Print(colorGrid(lvl.Grid, app.cfg.CorePalette(), app.cfg.Display.CellWidth))
	}

	fmt.Println()
	fmt.Println(legend())
	keys := make([]string, 0, len(lvl.Metadata))
	for k := range lvl.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%s: %s\n", k, lvl.Metadata[k])
	}
}

// colorGrid paints each tile as a block of background color, with the
// tile character in the first column.
func colorGrid(g *core.Grid, p core.Palette, cellWidth int) string {
	if cellWidth < 1 {
		cellWidth = 1
	}

	var b strings.Builder
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			t := g.Get(core.C(x, y))
			cell := string(t.Char()) + strings.Repeat(" ", cellWidth-1)

			hex, ok := p.Color(t)
			if t.IsPlayer() {
				hex, ok = p.Player, true
			}
			if !ok {
				b.WriteString(strings.Repeat(" ", cellWidth))
				continue
			}
			b.WriteString(color.HEX(hex, true).Sprint(cell))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// legend names each tile character, with one key/lock pair per key configuration.
func legend() string {
	var b strings.Builder
	b.WriteString(". air  : flux  # wall  @ player  O stone  X box")
	for _, kc := range core.KeyConfigs() {
		fmt.Fprintf(&b, "  %c/%c key/lock %d", core.Key(kc.Index).Char(), core.Lock(kc.Index).Char(), kc.Index)
	}
	b.WriteString("  (lowercase o/x = falling)")
	return b.String()
}
