package window

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-boulder/internal/core"
	"github.com/vovakirdan/tui-boulder/internal/games/boulder"
	bcore "github.com/vovakirdan/tui-boulder/internal/games/boulder/core"
	"github.com/vovakirdan/tui-boulder/internal/games/boulder/levels"
)

type rect struct {
	x, y, w, h float32
	c          color.Color
}

func testGame() *boulder.Game {
	lvl := levels.Level{
		ID:   "t",
		Name: "Test",
		Grid: bcore.MustDecode([][]bcore.RawTile{
			{2, 2, 2},
			{2, 3, 2},
			{2, 2, 2},
		}),
	}
	return boulder.New(lvl, boulder.DefaultOptions())
}

func TestCollectActionsOrder(t *testing.T) {
	pressed := map[ebiten.Key]bool{
		ebiten.KeyW:          true,
		ebiten.KeyArrowLeft:  true,
		ebiten.KeyArrowRight: false,
	}
	frame := core.NewInputFrame()

	collectActions(&frame, func(k ebiten.Key) bool { return pressed[k] })

	assert.Equal(t, []core.Action{core.ActionLeft, core.ActionUp}, frame.Actions())
}

func TestCollectActionsQuit(t *testing.T) {
	frame := core.NewInputFrame()

	collectActions(&frame, func(k ebiten.Key) bool { return k == ebiten.KeyEscape })

	assert.True(t, frame.Has(core.ActionQuit))
}

func TestPixelSurfaceScalesAndConverts(t *testing.T) {
	var got []rect
	s := newPixelSurface(func(x, y, w, h float32, c color.Color) {
		got = append(got, rect{x, y, w, h, c})
	})

	s.FillRect(30, 60, 30, 30, "#ff8000")
	s.FillRect(0, 0, 1, 1, "nonsense")

	require.Len(t, got, 2)
	assert.Equal(t, rect{30, 60, 30, 30, color.RGBA{R: 255, G: 128, A: 255}}, got[0])
	assert.Equal(t, color.RGBA{R: 255, B: 255, A: 255}, got[1].c)
	assert.Len(t, s.cache, 2)
}

func TestDrawThroughPixelSurface(t *testing.T) {
	game := testGame()
	var got []rect
	s := newPixelSurface(func(x, y, w, h float32, c color.Color) {
		got = append(got, rect{x, y, w, h, c})
	})

	bcore.Draw(s, game.World(), game.Palette(), 30, 30)

	// Eight walls then the player.
	require.Len(t, got, 9)
	assert.Equal(t, rect{30, 30, 30, 30, color.RGBA{R: 255, A: 255}}, got[8])
}

func TestNewDefaultsAndLayout(t *testing.T) {
	w := New(testGame(), Options{})

	assert.Equal(t, DefaultOptions(), w.opts)

	width, height := w.Layout(1024, 768)
	assert.Equal(t, 90, width)
	assert.Equal(t, 90, height)
}

func TestRestartEndsSession(t *testing.T) {
	lvl := levels.Level{
		ID:   "corridor",
		Name: "Corridor",
		Grid: bcore.MustDecode([][]bcore.RawTile{
			{2, 2, 2, 2},
			{2, 3, 0, 2},
			{2, 2, 2, 2},
		}),
	}
	game := boulder.New(lvl, boulder.DefaultOptions())

	var ended []core.GameState
	w := New(game, Options{OnSessionEnd: func(s core.GameState) { ended = append(ended, s) }})
	var pressed ebiten.Key = -1
	w.justPressed = func(k ebiten.Key) bool { return k == pressed }

	pressed = ebiten.KeyArrowRight
	require.NoError(t, w.Update())
	require.Equal(t, 1, game.Stats().Moves)

	pressed = ebiten.KeyR
	require.NoError(t, w.Update())

	require.Len(t, ended, 1)
	assert.Equal(t, 1, ended[0].Moves)
	assert.Equal(t, uint64(1), ended[0].Tick)
	assert.Equal(t, 0, game.Stats().Moves)

	pressed = ebiten.KeyEscape
	assert.ErrorIs(t, w.Update(), ebiten.Termination)
	assert.Len(t, ended, 1, "quitting leaves the final report to Run")
}
