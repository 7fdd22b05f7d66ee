package core

import (
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that a grid is playable: non-empty with exactly one player.
func Validate(g *Grid) error {
	if g.W == 0 || g.H == 0 {
		return ValidationError{
			Code:    "EMPTY_GRID",
			Message: fmt.Sprintf("grid is %dx%d", g.W, g.H),
		}
	}

	switch players := g.Find(Tile.IsPlayer); len(players) {
	case 0:
		return ValidationError{
			Code:    "NO_PLAYER",
			Message: "grid has no player start",
		}
	case 1:
		return nil
	default:
		return ValidationError{
			Code:    "MULTIPLE_PLAYERS",
			Message: fmt.Sprintf("grid has %d player starts, first at %s", len(players), players[0]),
		}
	}
}

// Lint reports suspicious but playable layouts: keys without a lock to open
// and locks no key can open.
func Lint(g *Grid) []ValidationError {
	keys := mapset.New[int]()
	locks := mapset.New[int]()
	for _, t := range g.Tiles {
		switch t.Kind {
		case KindKey:
			keys.Put(t.Lock)
		case KindLock:
			locks.Put(t.Lock)
		}
	}

	var issues []ValidationError
	keys.Each(func(index int) {
		if !locks.Has(index) {
			issues = append(issues, ValidationError{
				Code:    "KEY_WITHOUT_LOCK",
				Message: fmt.Sprintf("key %d has no matching lock", index),
			})
		}
	})
	locks.Each(func(index int) {
		if !keys.Has(index) {
			issues = append(issues, ValidationError{
				Code:    "LOCK_WITHOUT_KEY",
				Message: fmt.Sprintf("lock %d can never be opened", index),
			})
		}
	})

	// Set iteration order is random
	sort.Slice(issues, func(i, j int) bool {
		if issues[i].Code != issues[j].Code {
			return issues[i].Code < issues[j].Code
		}
		return issues[i].Message < issues[j].Message
	})
	return issues
}
