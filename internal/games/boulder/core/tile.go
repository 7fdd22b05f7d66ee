package core

import (
	"errors"
	"fmt"
)

// Kind identifies the variant of a tile.
type Kind uint8

const (
	KindAir Kind = iota
	KindFlux
	KindUnbreakable
	KindPlayer
	KindStone
	KindBox
	KindKey
	KindLock
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case KindAir:
		return "air"
	case KindFlux:
		return "flux"
	case KindUnbreakable:
		return "unbreakable"
	case KindPlayer:
		return "player"
	case KindStone:
		return "stone"
	case KindBox:
		return "box"
	case KindKey:
		return "key"
	case KindLock:
		return "lock"
	default:
		return "unknown"
	}
}

// FallingState is the gravity sub-state carried by stones and boxes.
type FallingState uint8

const (
	Resting FallingState = iota
	Falling
)

// String returns the string representation of a falling state.
func (s FallingState) String() string {
	if s == Falling {
		return "falling"
	}
	return "resting"
}

// Tile is the content of a single grid cell.
// State is meaningful only for stones and boxes, Lock only for keys and locks.
type Tile struct {
	Kind  Kind
	State FallingState
	Lock  int
}

// Air returns an empty tile.
func Air() Tile { return Tile{Kind: KindAir} }

// Flux returns a flux tile.
func Flux() Tile { return Tile{Kind: KindFlux} }

// Unbreakable returns a wall tile.
func Unbreakable() Tile { return Tile{Kind: KindUnbreakable} }

// PlayerMarker returns the tile marking the player's cell.
func PlayerMarker() Tile { return Tile{Kind: KindPlayer} }

// Stone returns a stone in the given state.
func Stone(s FallingState) Tile { return Tile{Kind: KindStone, State: s} }

// Box returns a box in the given state.
func Box(s FallingState) Tile { return Tile{Kind: KindBox, State: s} }

// Key returns a key opening the locks with the given index.
func Key(index int) Tile { return Tile{Kind: KindKey, Lock: index} }

// Lock returns a lock with the given index.
func Lock(index int) Tile { return Tile{Kind: KindLock, Lock: index} }

// IsAir reports whether the tile is empty space.
func (t Tile) IsAir() bool { return t.Kind == KindAir }

// IsPlayer reports whether the tile is the player marker.
func (t Tile) IsPlayer() bool { return t.Kind == KindPlayer }

// IsLock reports whether the tile is a lock with the given index.
func (t Tile) IsLock(index int) bool { return t.Kind == KindLock && t.Lock == index }

// IsFalling reports whether the tile is a stone or box currently falling.
func (t Tile) IsFalling() bool { return t.Gravity() && t.State == Falling }

// Gravity reports whether the tile is affected by gravity.
func (t Tile) Gravity() bool { return t.Kind == KindStone || t.Kind == KindBox }

// WithState returns a copy of the tile in the given falling state.
func (t Tile) WithState(s FallingState) Tile {
	t.State = s
	return t
}

// stateAbove is the falling state a tile induces in a gravity tile resting on top of it.
// Only empty space lets a tile drop; every solid tile supports it.
func (t Tile) stateAbove() FallingState {
	if t.IsAir() {
		return Falling
	}
	return Resting
}

// String returns a short description of the tile.
func (t Tile) String() string {
	switch t.Kind {
	case KindStone, KindBox:
		return fmt.Sprintf("%s(%s)", t.Kind, t.State)
	case KindKey, KindLock:
		return fmt.Sprintf("%s%d", t.Kind, t.Lock)
	default:
		return t.Kind.String()
	}
}

// RawTile is the integer code used for cells in level files.
type RawTile int

const (
	RawAir RawTile = iota
	RawFlux
	RawUnbreakable
	RawPlayer
	RawStone
	RawFallingStone
	RawBox
	RawFallingBox
	RawKey1
	RawLock1
	RawKey2
	RawLock2
)

// ErrUnknownTileCode is returned when a level contains a code outside the tile set.
var ErrUnknownTileCode = errors.New("unknown tile code")

// DecodeTile maps a level code to its tile.
func DecodeTile(code RawTile) (Tile, error) {
	switch code {
	case RawAir:
		return Air(), nil
	case RawFlux:
		return Flux(), nil
	case RawUnbreakable:
		return Unbreakable(), nil
	case RawPlayer:
		return PlayerMarker(), nil
	case RawStone:
		return Stone(Resting), nil
	case RawFallingStone:
		return Stone(Falling), nil
	case RawBox:
		return Box(Resting), nil
	case RawFallingBox:
		return Box(Falling), nil
	case RawKey1:
		return Key(1), nil
	case RawLock1:
		return Lock(1), nil
	case RawKey2:
		return Key(2), nil
	case RawLock2:
		return Lock(2), nil
	default:
		return Tile{}, fmt.Errorf("%w: %d", ErrUnknownTileCode, code)
	}
}

// Code returns the level code for the tile.
// Returns false for keys and locks whose index has no code.
func (t Tile) Code() (RawTile, bool) {
	switch t.Kind {
	case KindAir:
		return RawAir, true
	case KindFlux:
		return RawFlux, true
	case KindUnbreakable:
		return RawUnbreakable, true
	case KindPlayer:
		return RawPlayer, true
	case KindStone:
		if t.State == Falling {
			return RawFallingStone, true
		}
		return RawStone, true
	case KindBox:
		if t.State == Falling {
			return RawFallingBox, true
		}
		return RawBox, true
	case KindKey:
		switch t.Lock {
		case 1:
			return RawKey1, true
		case 2:
			return RawKey2, true
		}
	case KindLock:
		switch t.Lock {
		case 1:
			return RawLock1, true
		case 2:
			return RawLock2, true
		}
	}
	return 0, false
}

// Char returns a single character representation of the tile for ASCII rendering.
func (t Tile) Char() rune {
	switch t.Kind {
	case KindAir:
		return '.'
	case KindFlux:
		return ':'
	case KindUnbreakable:
		return '#'
	case KindPlayer:
		return '@'
	case KindStone:
		if t.State == Falling {
			return 'o'
		}
		return 'O'
	case KindBox:
		if t.State == Falling {
			return 'x'
		}
		return 'X'
	case KindKey:
		return rune('a' + t.Lock - 1)
	case KindLock:
		return rune('A' + t.Lock - 1)
	default:
		return '?'
	}
}
