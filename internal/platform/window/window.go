// Package window runs Boulder in a desktop window using Ebiten.
package window

import (
	"errors"
	"image/color"

	hexcolor "github.com/gookit/color"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-boulder/internal/core"
	"github.com/vovakirdan/tui-boulder/internal/games/boulder"
	bcore "github.com/vovakirdan/tui-boulder/internal/games/boulder/core"
)

// Options configures the window.
type Options struct {
	TileSize   int    // Pixels per tile edge
	TPS        int    // Simulation steps per second
	Background string // #rrggbb behind air cells

	// OnSessionEnd receives the game state when a run ends, either by
	// restarting the level or by closing the window.
	OnSessionEnd func(core.GameState)
}

// DefaultOptions returns 30px tiles at 30 steps per second on black.
func DefaultOptions() Options {
	return Options{
		TileSize:   30,
		TPS:        30,
		Background: "#000000",
	}
}

// keyActions maps keyboard keys to game actions. Arrow keys and WASD move.
var keyActions = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyA, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyD, core.ActionRight},
	{ebiten.KeyArrowUp, core.ActionUp},
	{ebiten.KeyW, core.ActionUp},
	{ebiten.KeyArrowDown, core.ActionDown},
	{ebiten.KeyS, core.ActionDown},
	{ebiten.KeyEscape, core.ActionQuit},
	{ebiten.KeyQ, core.ActionQuit},
}

// collectActions appends the actions whose keys were just pressed, in table order.
func collectActions(frame *core.InputFrame, justPressed func(ebiten.Key) bool) {
	for _, ka := range keyActions {
		if justPressed(ka.key) {
			frame.Push(ka.action)
		}
	}
}

// Window implements ebiten.Game around a Boulder game.
type Window struct {
	game        *boulder.Game
	opts        Options
	frame       core.InputFrame
	fill        *pixelSurface
	justPressed func(ebiten.Key) bool
}

// New creates a window for the game.
func New(game *boulder.Game, opts Options) *Window {
	def := DefaultOptions()
	if opts.TileSize <= 0 {
		opts.TileSize = def.TileSize
	}
	if opts.TPS <= 0 {
		opts.TPS = def.TPS
	}
	if opts.Background == "" {
		opts.Background = def.Background
	}
	return &Window{
		game:        game,
		opts:        opts,
		frame:       core.NewInputFrame(),
		fill:        newPixelSurface(nil),
		justPressed: inpututil.IsKeyJustPressed,
	}
}

// Update collects key presses and advances the game by one step.
func (w *Window) Update() error {
	if w.justPressed(ebiten.KeyR) {
		w.endSession()
		w.game.Reset(core.DefaultConfig())
		w.frame.Clear()
		return nil
	}

	collectActions(&w.frame, w.justPressed)
	if w.frame.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	w.game.Step(w.frame)
	w.frame.Clear()
	return nil
}

// endSession hands the current run to the OnSessionEnd hook.
func (w *Window) endSession() {
	if w.opts.OnSessionEnd != nil {
		w.opts.OnSessionEnd(w.game.State())
	}
}

// Draw paints the board, one square per tile.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(w.fill.rgba(w.opts.Background))

	w.fill.fillFn = func(x, y, width, height float32, c color.Color) {
		vector.DrawFilledRect(screen, x, y, width, height, c, false)
	}
	bcore.Draw(w.fill, w.game.World(), w.game.Palette(), w.opts.TileSize, w.opts.TileSize)
}

// Layout returns the logical screen size: the board at the configured tile size.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.boardSize()
}

func (w *Window) boardSize() (int, int) {
	g := w.game.World().Grid
	return g.W * w.opts.TileSize, g.H * w.opts.TileSize
}

// Run opens the window and blocks until it is closed.
// The last run is passed to OnSessionEnd before Run returns the final game state.
func Run(game *boulder.Game, opts Options) (core.GameState, error) {
	w := New(game, opts)

	width, height := w.boardSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Boulder - " + game.Title())
	ebiten.SetTPS(w.opts.TPS)

	err := ebiten.RunGame(w)
	w.endSession()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return game.State(), err
	}
	return game.State(), nil
}

// pixelSurface adapts a rectangle filler to the game's drawing surface,
// converting hex colors once and caching them.
type pixelSurface struct {
	fillFn func(x, y, w, h float32, c color.Color)
	cache  map[string]color.RGBA
}

func newPixelSurface(fill func(x, y, w, h float32, c color.Color)) *pixelSurface {
	return &pixelSurface{
		fillFn: fill,
		cache:  make(map[string]color.RGBA),
	}
}

// FillRect paints a rectangle given in pixels.
func (s *pixelSurface) FillRect(x, y, w, h int, hex string) {
	if s.fillFn == nil {
		return
	}
	s.fillFn(float32(x), float32(y), float32(w), float32(h), s.rgba(hex))
}

// rgba converts #rrggbb to RGBA. Unparsable values render as magenta.
func (s *pixelSurface) rgba(hex string) color.RGBA {
	if c, ok := s.cache[hex]; ok {
		return c
	}
	c := color.RGBA{R: 255, B: 255, A: 255}
	if rgb := hexcolor.HexToRgb(hex); len(rgb) == 3 {
		c = color.RGBA{R: uint8(rgb[0]), G: uint8(rgb[1]), B: uint8(rgb[2]), A: 255}
	}
	s.cache[hex] = c
	return c
}
