package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var classicRows = [][]RawTile{
	{2, 2, 2, 2, 2, 2, 2, 2},
	{2, 3, 0, 1, 1, 2, 0, 2},
	{2, 4, 2, 6, 1, 2, 0, 2},
	{2, 8, 4, 1, 1, 2, 0, 2},
	{2, 4, 1, 1, 1, 9, 0, 2},
	{2, 2, 2, 2, 2, 2, 2, 2},
}

func TestDecodeClassic(t *testing.T) {
	g, err := Decode(classicRows)
	require.NoError(t, err)

	assert.Equal(t, 8, g.W)
	assert.Equal(t, 6, g.H)
	assert.Equal(t, 1, g.Count(KindPlayer))
	assert.Equal(t, Stone(Resting), g.Get(C(1, 2)))
	assert.Equal(t, Box(Resting), g.Get(C(3, 2)))
	assert.Equal(t, Key(1), g.Get(C(1, 3)))
	assert.Equal(t, Lock(1), g.Get(C(5, 4)))

	w := NewWorld(g)
	pos, ok := w.Player()
	require.True(t, ok)
	assert.Equal(t, C(1, 1), pos)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode([][]RawTile{{2, 2}, {2}})
	assert.Error(t, err, "ragged rows should fail")

	_, err = Decode([][]RawTile{{2, 2}, {2, 42}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownTileCode))
	assert.Contains(t, err.Error(), "(1,1)")

	assert.Panics(t, func() { MustDecode([][]RawTile{{12}}) })
}

func TestDecodeEmpty(t *testing.T) {
	g, err := Decode(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, g.W)
	assert.Equal(t, 0, g.H)
}

func TestGridEncodeRoundTrip(t *testing.T) {
	g := MustDecode(classicRows)
	rows, err := g.Encode()
	require.NoError(t, err)
	assert.Equal(t, classicRows, rows)

	g.Set(C(1, 1), Key(5))
	_, err = g.Encode()
	assert.Error(t, err)
}

func TestGridOutOfBoundsIsWall(t *testing.T) {
	g := NewGrid(2, 2)

	for _, c := range []Coord{C(-1, 0), C(0, -1), C(2, 0), C(0, 2)} {
		assert.Equal(t, Unbreakable(), g.Get(c), "Get%s", c)
	}

	// Writes outside the grid are ignored
	g.Set(C(5, 5), Stone(Resting))
	assert.Equal(t, 0, g.Count(KindStone))
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := MustDecode(classicRows)
	clone := g.Clone()
	require.True(t, g.Equal(clone))

	clone.Set(C(2, 1), Stone(Resting))
	assert.False(t, g.Equal(clone))
	assert.Equal(t, Air(), g.Get(C(2, 1)))
}

func TestGridString(t *testing.T) {
	g := MustDecode([][]RawTile{
		{2, 2, 2, 2},
		{2, 3, 4, 7},
		{8, 9, 10, 11},
		{0, 1, 5, 6},
	})

	expected := "####\n#@Ox\naAbB\n.:oX"
	assert.Equal(t, expected, g.String())
}
