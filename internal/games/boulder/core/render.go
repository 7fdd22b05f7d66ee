package core

// Surface is a drawing target that can fill solid rectangles.
// Coordinates are in surface units (pixels or terminal cells).
type Surface interface {
	FillRect(x, y, w, h int, color string)
}

// Palette maps tiles to display colors in #rrggbb form.
type Palette struct {
	Flux        string
	Unbreakable string
	Stone       string
	Box         string
	Player      string
	Keys        map[int]string // Key and lock color by index, overrides KeyConfiguration
}

// DefaultPalette returns the standard colors.
func DefaultPalette() Palette {
	return Palette{
		Flux:        "#ccffcc",
		Unbreakable: "#999999",
		Stone:       "#0000cc",
		Box:         "#8b4513",
		Player:      "#ff0000",
	}
}

// Color returns the fill color for a tile.
// Returns false for tiles that are not painted (air and the player marker).
func (p Palette) Color(t Tile) (string, bool) {
	switch t.Kind {
	case KindAir, KindPlayer:
		return "", false
	case KindFlux:
		return p.Flux, true
	case KindUnbreakable:
		return p.Unbreakable, true
	case KindStone:
		return p.Stone, true
	case KindBox:
		return p.Box, true
	case KindKey, KindLock:
		return p.KeyColor(t.Lock), true
	default:
		return "", false
	}
}

// KeyColor returns the color shared by keys and locks with the given index.
func (p Palette) KeyColor(index int) string {
	if c, ok := p.Keys[index]; ok && c != "" {
		return c
	}
	if kc, ok := KeyConfig(index); ok {
		return kc.Color
	}
	return "#ffffff"
}

// Draw paints the world onto dst. Each cell covers tileW x tileH surface units.
// The player is painted last, over whatever its cell holds.
func Draw(dst Surface, w *World, p Palette, tileW, tileH int) {
	g := w.Grid
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			color, ok := p.Color(g.Get(C(x, y)))
			if !ok {
				continue
			}
			dst.FillRect(x*tileW, y*tileH, tileW, tileH, color)
		}
	}

	if pos, ok := w.Player(); ok {
		dst.FillRect(pos.X*tileW, pos.Y*tileH, tileW, tileH, p.Player)
	}
}
