// Package boulder provides the Boulder falling-rock puzzle for the platform layers.
package boulder

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-boulder/internal/core"
	"github.com/vovakirdan/tui-boulder/internal/games/boulder/core"
	"github.com/vovakirdan/tui-boulder/internal/games/boulder/levels"
)

// Options configures how a game is presented.
type Options struct {
	Palette   core.Palette
	CellWidth int // Terminal columns per tile (tiles are one row tall)
}

// DefaultOptions returns the standard palette with two-column tiles.
func DefaultOptions() Options {
	return Options{
		Palette:   core.DefaultPalette(),
		CellWidth: 2,
	}
}

// Stats accumulates what happened during a session.
type Stats struct {
	Ticks       uint64
	Moves       int // Commands that changed the grid
	Blocked     int // Commands that were no-ops
	Pushes      int
	LocksOpened int
	Falls       int // Single-row drops by stones and boxes
}

// Game runs one level for a platform layer.
type Game struct {
	level levels.Level
	world *core.World
	opts  Options
	stats Stats

	screenW int
	screenH int
}

// New creates a game for the given level.
func New(level levels.Level, opts Options) *Game {
	if opts.CellWidth <= 0 {
		opts.CellWidth = DefaultOptions().CellWidth
	}
	g := &Game{
		level: level,
		opts:  opts,
	}
	g.Reset(platformcore.DefaultConfig())
	return g
}

// ID returns the identifier of the level being played.
func (g *Game) ID() string {
	return g.level.ID
}

// Title returns the level's display name.
func (g *Game) Title() string {
	return g.level.Name
}

// Level returns the level being played.
func (g *Game) Level() levels.Level {
	return g.level
}

// World exposes the running simulation.
func (g *Game) World() *core.World {
	return g.world
}

// Palette returns the colors used for drawing.
func (g *Game) Palette() core.Palette {
	return g.opts.Palette
}

// Stats returns the session counters.
func (g *Game) Stats() Stats {
	return g.stats
}

// Reset restarts the level from its initial layout.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.world = g.level.NewWorld()
	g.stats = Stats{}
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the layout for a new screen size without touching the world.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Step queues the frame's directional actions and advances the simulation by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	for _, a := range in.Actions() {
		if d, ok := dirForAction(a); ok {
			g.world.Input.Push(d)
		}
	}

	res := g.world.Step()
	g.record(res)

	return platformcore.StepResult{State: g.State()}
}

func (g *Game) record(res core.StepResult) {
	g.stats.Ticks = res.Tick
	for _, ev := range res.Moves {
		switch ev.Outcome {
		case core.MoveBlocked:
			g.stats.Blocked++
			continue
		case core.MovePushed:
			g.stats.Pushes++
		case core.MoveUnlocked:
			g.stats.LocksOpened += ev.LocksOpened
		}
		g.stats.Moves++
	}
	g.stats.Falls += len(res.Falls)
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Tick:        g.stats.Ticks,
		Moves:       g.stats.Moves,
		Pushes:      g.stats.Pushes,
		LocksOpened: g.stats.LocksOpened,
	}
}

// dirForAction maps platform actions to movement directions.
func dirForAction(a platformcore.Action) (core.Dir, bool) {
	switch a {
	case platformcore.ActionLeft:
		return core.DirLeft, true
	case platformcore.ActionRight:
		return core.DirRight, true
	case platformcore.ActionUp:
		return core.DirUp, true
	case platformcore.ActionDown:
		return core.DirDown, true
	default:
		return core.DirLeft, false
	}
}

// offsetSurface shifts drawing by a fixed origin.
type offsetSurface struct {
	dst    *platformcore.Screen
	ox, oy int
}

func (s offsetSurface) FillRect(x, y, w, h int, color string) {
	s.dst.FillRect(s.ox+x, s.oy+y, w, h, color)
}

// Render draws the board centered on the screen with a title and status line.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	grid := g.world.Grid
	boardW := grid.W * g.opts.CellWidth
	boardH := grid.H

	// Title, border and status need three extra rows and two columns
	if boardW+2 > dst.Width() || boardH+4 > dst.Height() {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", platformcore.ColorRed)
		dst.DrawTextCentered(dst.Height()/2+1,
			fmt.Sprintf("need %dx%d", boardW+2, boardH+4), platformcore.ColorGray)
		return
	}

	ox := (dst.Width() - boardW) / 2
	oy := platformcore.Max((dst.Height()-boardH-4)/2, 0) + 2

	dst.DrawTextCentered(oy-2, fmt.Sprintf("BOULDER - %s", g.level.Name), platformcore.ColorYellow)
	dst.DrawBox(platformcore.NewRect(ox-1, oy-1, boardW+2, boardH+2), platformcore.ColorDim)

	core.Draw(offsetSurface{dst: dst, ox: ox, oy: oy}, g.world, g.opts.Palette, g.opts.CellWidth, 1)

	status := fmt.Sprintf("tick %d  moves %d  pushes %d  locks %d",
		g.stats.Ticks, g.stats.Moves, g.stats.Pushes, g.stats.LocksOpened)
	dst.DrawTextCentered(oy+boardH+1, status, platformcore.ColorGray)
}
