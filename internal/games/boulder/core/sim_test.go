package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func worldFrom(t *testing.T, rows [][]RawTile) *World {
	t.Helper()
	g, err := Decode(rows)
	require.NoError(t, err)
	return NewWorld(g)
}

func requirePlayerAt(t *testing.T, w *World, want Coord) {
	t.Helper()
	require.Equal(t, 1, w.Grid.Count(KindPlayer), "exactly one player marker expected")
	pos, ok := w.Player()
	require.True(t, ok)
	require.Equal(t, want, pos)
}

func TestMoveOntoAirAndFlux(t *testing.T) {
	w := worldFrom(t, [][]RawTile{
		{2, 2, 2, 2, 2},
		{2, 3, 0, 1, 2},
		{2, 1, 2, 2, 2},
		{2, 2, 2, 2, 2},
	})

	ev := w.Move(DirRight)
	assert.Equal(t, MoveWalked, ev.Outcome)
	assert.Equal(t, C(1, 1), ev.From)
	assert.Equal(t, C(2, 1), ev.To)
	requirePlayerAt(t, w, C(2, 1))
	assert.Equal(t, Air(), w.Grid.Get(C(1, 1)))

	ev = w.Move(DirRight)
	assert.Equal(t, MoveWalked, ev.Outcome, "flux is walkable")
	requirePlayerAt(t, w, C(3, 1))
	assert.Equal(t, Air(), w.Grid.Get(C(2, 1)))

	// Back to (1,1) then down onto flux
	w.Move(DirLeft)
	w.Move(DirLeft)
	ev = w.Move(DirDown)
	assert.Equal(t, MoveWalked, ev.Outcome)
	requirePlayerAt(t, w, C(1, 2))
}

func TestMoveIntoInertTiles(t *testing.T) {
	tests := []struct {
		name string
		code RawTile
		dir  Dir
	}{
		{"wall right", RawUnbreakable, DirRight},
		{"lock right", RawLock1, DirRight},
		{"wall down", RawUnbreakable, DirDown},
		{"lock down", RawLock2, DirDown},
		{"stone down", RawStone, DirDown},
		{"box down", RawBox, DirDown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rows := [][]RawTile{
				{2, 2, 2, 2},
				{2, 3, 0, 2},
				{2, 0, 2, 2},
				{2, 2, 2, 2},
			}
			dx, dy := tc.dir.Delta()
			rows[1+dy][1+dx] = tc.code

			w := worldFrom(t, rows)
			before := w.Grid.Clone()

			ev := w.Move(tc.dir)
			assert.Equal(t, MoveBlocked, ev.Outcome)
			assert.Equal(t, ev.From, ev.To)
			assert.True(t, before.Equal(w.Grid), "grid should be unchanged")
		})
	}
}

func TestMoveOffGridIsNoop(t *testing.T) {
	w := worldFrom(t, [][]RawTile{{3, 0}})
	before := w.Grid.Clone()

	for _, d := range []Dir{DirLeft, DirUp, DirDown} {
		ev := w.Move(d)
		assert.Equal(t, MoveBlocked, ev.Outcome, "move %s", d)
	}
	assert.True(t, before.Equal(w.Grid))
}

func TestPushBox(t *testing.T) {
	w := worldFrom(t, [][]RawTile{
		{2, 2, 2, 2, 2},
		{2, 3, 6, 0, 2},
		{2, 2, 2, 2, 2},
	})

	ev := w.Move(DirRight)
	assert.Equal(t, MovePushed, ev.Outcome)
	assert.Equal(t, Box(Resting), w.Grid.Get(C(3, 1)))
	assert.Equal(t, Air(), w.Grid.Get(C(1, 1)))
	requirePlayerAt(t, w, C(2, 1))
}

func TestPushStoneLeft(t *testing.T) {
	w := worldFrom(t, [][]RawTile{
		{2, 2, 2, 2, 2},
		{2, 0, 4, 3, 2},
		{2, 2, 2, 2, 2},
	})

	ev := w.Move(DirLeft)
	assert.Equal(t, MovePushed, ev.Outcome)
	assert.Equal(t, Stone(Resting), w.Grid.Get(C(1, 1)))
	requirePlayerAt(t, w, C(2, 1))
}

func TestPushPreconditions(t *testing.T) {
	tests := []struct {
		name string
		rows [][]RawTile
	}{
		{
			name: "landing occupied",
			rows: [][]RawTile{
				{2, 2, 2, 2, 2, 2},
				{2, 3, 6, 4, 0, 2},
				{2, 2, 2, 2, 2, 2},
			},
		},
		{
			name: "landing is flux",
			rows: [][]RawTile{
				{2, 2, 2, 2, 2},
				{2, 3, 4, 1, 2},
				{2, 2, 2, 2, 2},
			},
		},
		{
			name: "air under pushed tile",
			rows: [][]RawTile{
				{2, 2, 2, 2, 2},
				{2, 3, 6, 0, 2},
				{2, 2, 0, 2, 2},
				{2, 2, 2, 2, 2},
			},
		},
		{
			name: "falling box",
			rows: [][]RawTile{
				{2, 2, 2, 2, 2},
				{2, 3, 7, 0, 2},
				{2, 2, 2, 2, 2},
			},
		},
		{
			name: "falling stone",
			rows: [][]RawTile{
				{2, 2, 2, 2, 2},
				{2, 3, 5, 0, 2},
				{2, 2, 2, 2, 2},
			},
		},
		{
			name: "landing off grid",
			rows: [][]RawTile{
				{3, 6},
				{2, 2},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := worldFrom(t, tc.rows)
			before := w.Grid.Clone()

			ev := w.Move(DirRight)
			assert.Equal(t, MoveBlocked, ev.Outcome)
			assert.True(t, before.Equal(w.Grid), "grid should be unchanged")
		})
	}
}

func TestKeyRemovesMatchingLocks(t *testing.T) {
	w := worldFrom(t, [][]RawTile{
		{2, 2, 2, 2, 2, 2},
		{2, 3, 8, 0, 9, 2},
		{2, 9, 2, 11, 2, 2},
		{2, 2, 2, 2, 2, 2},
	})

	ev := w.Move(DirRight)
	assert.Equal(t, MoveUnlocked, ev.Outcome)
	assert.Equal(t, 2, ev.LocksOpened)

	assert.Equal(t, Air(), w.Grid.Get(C(4, 1)))
	assert.Equal(t, Air(), w.Grid.Get(C(1, 2)))
	assert.Equal(t, Lock(2), w.Grid.Get(C(3, 2)), "other lock index must stay")
	assert.Equal(t, 0, w.Grid.Count(KindKey))
	requirePlayerAt(t, w, C(2, 1))
}

func TestKeyFromBelow(t *testing.T) {
	w := worldFrom(t, [][]RawTile{
		{2, 2, 2, 2},
		{2, 10, 11, 2},
		{2, 3, 11, 2},
		{2, 2, 2, 2},
	})

	ev := w.Move(DirUp)
	assert.Equal(t, MoveUnlocked, ev.Outcome)
	assert.Equal(t, 2, ev.LocksOpened)
	assert.Equal(t, 0, w.Grid.Count(KindLock))
	requirePlayerAt(t, w, C(1, 1))
}

func TestKeyWithoutLocks(t *testing.T) {
	w := worldFrom(t, [][]RawTile{{3, 8, 0}})

	ev := w.Move(DirRight)
	assert.Equal(t, MoveUnlocked, ev.Outcome)
	assert.Equal(t, 0, ev.LocksOpened)
	requirePlayerAt(t, w, C(1, 0))
}

func TestGravityRestsOnSolid(t *testing.T) {
	// Unbreakable border, stone at (1,1), air at (2,1), no player
	w := worldFrom(t, [][]RawTile{
		{2, 2, 2},
		{2, 4, 0},
		{2, 2, 2},
	})

	res := w.Step()
	assert.Empty(t, res.Falls)
	assert.Empty(t, res.Moves)
	assert.Equal(t, Stone(Resting), w.Grid.Get(C(1, 1)))
	assert.Equal(t, Air(), w.Grid.Get(C(2, 1)))
}

func TestGravityOneRowPerTick(t *testing.T) {
	w := worldFrom(t, [][]RawTile{
		{2, 2, 2},
		{2, 4, 2},
		{2, 0, 2},
		{2, 0, 2},
		{2, 2, 2},
	})

	res := w.Step()
	require.Len(t, res.Falls, 1)
	assert.Equal(t, C(1, 1), res.Falls[0].From)
	assert.Equal(t, C(1, 2), res.Falls[0].To)
	assert.Equal(t, Stone(Falling), w.Grid.Get(C(1, 2)))
	assert.Equal(t, Air(), w.Grid.Get(C(1, 1)))

	res = w.Step()
	require.Len(t, res.Falls, 1)
	assert.Equal(t, Stone(Falling), w.Grid.Get(C(1, 3)))
	assert.Empty(t, res.Landed)

	res = w.Step()
	assert.Empty(t, res.Falls)
	assert.Equal(t, []Coord{C(1, 3)}, res.Landed)
	assert.Equal(t, Stone(Resting), w.Grid.Get(C(1, 3)))
	assert.Equal(t, uint64(3), res.Tick)
}

func TestGravityStackedTilesEachDropOnce(t *testing.T) {
	w := worldFrom(t, [][]RawTile{
		{2, 2, 2},
		{2, 4, 2},
		{2, 6, 2},
		{2, 0, 2},
		{2, 0, 2},
		{2, 2, 2},
	})

	res := w.Step()
	assert.Len(t, res.Falls, 2)
	assert.Equal(t, Air(), w.Grid.Get(C(1, 1)))
	assert.Equal(t, Stone(Falling), w.Grid.Get(C(1, 2)))
	assert.Equal(t, Box(Falling), w.Grid.Get(C(1, 3)))
	assert.Equal(t, Air(), w.Grid.Get(C(1, 4)))
}

func TestGravityAtBottomEdge(t *testing.T) {
	w := worldFrom(t, [][]RawTile{{5, 7}})

	res := w.Step()
	assert.Empty(t, res.Falls)
	assert.ElementsMatch(t, []Coord{C(0, 0), C(1, 0)}, res.Landed)
	assert.Equal(t, Stone(Resting), w.Grid.Get(C(0, 0)))
	assert.Equal(t, Box(Resting), w.Grid.Get(C(1, 0)))
}

func TestFallingTileLandsOnPlayer(t *testing.T) {
	w := worldFrom(t, [][]RawTile{
		{2, 5, 2},
		{2, 3, 2},
		{2, 2, 2},
	})

	w.Step()
	assert.Equal(t, Stone(Resting), w.Grid.Get(C(1, 0)))
	requirePlayerAt(t, w, C(1, 1))
}

func TestStepPushThenFall(t *testing.T) {
	w := worldFrom(t, [][]RawTile{
		{2, 2, 2, 2, 2},
		{2, 3, 6, 0, 2},
		{2, 2, 2, 0, 2},
		{2, 2, 2, 2, 2},
	})

	w.Input.Push(DirRight)
	res := w.Step()

	require.Len(t, res.Moves, 1)
	assert.Equal(t, MovePushed, res.Moves[0].Outcome)
	require.Len(t, res.Falls, 1)
	assert.Equal(t, C(3, 1), res.Falls[0].From)
	assert.Equal(t, Box(Falling), w.Grid.Get(C(3, 2)))
	requirePlayerAt(t, w, C(2, 1))
}

// Commands queued within one tick are applied most recent first.
func TestStepDrainsInputInReverseOrder(t *testing.T) {
	w := worldFrom(t, [][]RawTile{
		{2, 2, 2, 2, 2},
		{2, 0, 3, 0, 2},
		{2, 2, 2, 2, 2},
	})

	w.Input.Push(DirRight)
	w.Input.Push(DirRight)
	w.Input.Push(DirLeft)
	res := w.Step()

	require.Len(t, res.Moves, 3)
	assert.Equal(t, DirLeft, res.Moves[0].Dir)
	assert.Equal(t, DirRight, res.Moves[1].Dir)
	assert.Equal(t, DirRight, res.Moves[2].Dir)
	assert.Equal(t, 0, w.Input.Len())

	// Arrival order would end at (2,1); reverse order ends at (3,1)
	requirePlayerAt(t, w, C(3, 1))
}

func TestStepWithoutPlayerIgnoresInput(t *testing.T) {
	w := worldFrom(t, [][]RawTile{{0, 0}})
	w.Input.Push(DirRight)

	res := w.Step()
	require.Len(t, res.Moves, 1)
	assert.Equal(t, MoveBlocked, res.Moves[0].Outcome)
	assert.Equal(t, 0, w.Input.Len())
}

func TestClassicLevelSequence(t *testing.T) {
	w := worldFrom(t, classicRows)

	// Walk around the box through the flux and step out from under it
	for _, d := range []Dir{DirRight, DirRight, DirRight, DirDown, DirDown, DirLeft, DirDown} {
		w.Input.Push(d)
		w.Step()
	}
	requirePlayerAt(t, w, C(3, 4))
	assert.Equal(t, Box(Falling), w.Grid.Get(C(3, 3)), "box drops into the vacated cell")
	assert.Equal(t, Air(), w.Grid.Get(C(3, 2)))

	res := w.Step()
	assert.Equal(t, []Coord{C(3, 3)}, res.Landed)
	assert.Equal(t, Box(Resting), w.Grid.Get(C(3, 3)))
	assert.Equal(t, Stone(Resting), w.Grid.Get(C(1, 2)), "stone rests on the key")
}
