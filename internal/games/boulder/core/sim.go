package core

// MoveOutcome describes what a single directional command did.
type MoveOutcome uint8

const (
	MoveBlocked  MoveOutcome = iota // Nothing changed
	MoveWalked                      // Player stepped onto air or flux
	MovePushed                      // Player pushed a stone or box and followed it
	MoveUnlocked                    // Player picked up a key
)

// String returns the string representation of an outcome.
func (o MoveOutcome) String() string {
	switch o {
	case MoveBlocked:
		return "blocked"
	case MoveWalked:
		return "walked"
	case MovePushed:
		return "pushed"
	case MoveUnlocked:
		return "unlocked"
	default:
		return "unknown"
	}
}

// MoveEvent records one applied command.
type MoveEvent struct {
	Dir         Dir
	From        Coord
	To          Coord
	Outcome     MoveOutcome
	LocksOpened int // Locks cleared by a key pickup
}

// FallEvent records a gravity tile dropping one row.
type FallEvent struct {
	From Coord
	To   Coord
	Tile Tile
}

// StepResult contains information about what happened during a simulation step.
type StepResult struct {
	Tick   uint64
	Moves  []MoveEvent
	Falls  []FallEvent
	Landed []Coord // Tiles that stopped falling this tick
}

// World is the mutable game state: the grid plus the commands waiting for the next tick.
// The player position is not stored separately; it is the cell holding the player marker.
type World struct {
	Grid  *Grid
	Input *InputQueue
	Tick  uint64
}

// NewWorld creates a world around a decoded grid.
func NewWorld(g *Grid) *World {
	return &World{
		Grid:  g,
		Input: NewInputQueue(),
	}
}

// Player returns the position of the player marker.
// Returns false if the grid has no player.
func (w *World) Player() (Coord, bool) {
	for i, t := range w.Grid.Tiles {
		if t.IsPlayer() {
			return C(i%w.Grid.W, i/w.Grid.W), true
		}
	}
	return Coord{}, false
}

// Step advances the simulation by one tick: every queued command is applied,
// then gravity is resolved across the whole grid.
func (w *World) Step() StepResult {
	result := StepResult{
		Moves:  make([]MoveEvent, 0),
		Falls:  make([]FallEvent, 0),
		Landed: make([]Coord, 0),
	}

	w.Input.Drain(func(d Dir) {
		result.Moves = append(result.Moves, w.Move(d))
	})

	w.applyGravity(&result)

	w.Tick++
	result.Tick = w.Tick
	return result
}

// Move applies one directional command immediately.
// The tile being moved into decides the effect.
func (w *World) Move(d Dir) MoveEvent {
	from, ok := w.Player()
	if !ok {
		return MoveEvent{Dir: d, Outcome: MoveBlocked}
	}

	target := from.Step(d)
	ev := MoveEvent{Dir: d, From: from, To: from, Outcome: MoveBlocked}
	if d.Horizontal() {
		w.moveHorizontal(&ev, target, d)
	} else {
		w.moveVertical(&ev, target)
	}
	return ev
}

func (w *World) moveHorizontal(ev *MoveEvent, target Coord, d Dir) {
	t := w.Grid.Get(target)
	switch t.Kind {
	case KindAir, KindFlux:
		w.walk(ev, target, MoveWalked)
	case KindStone, KindBox:
		landing := target.Step(d)
		if t.State == Resting &&
			w.Grid.Get(landing).IsAir() &&
			!w.Grid.Get(target.Below()).IsAir() {
			w.Grid.Set(landing, t)
			w.walk(ev, target, MovePushed)
		}
	case KindKey:
		ev.LocksOpened = w.removeLocks(t.Lock)
		w.walk(ev, target, MoveUnlocked)
	case KindUnbreakable, KindPlayer, KindLock:
	default:
		panic("core: unhandled tile kind " + t.Kind.String())
	}
}

func (w *World) moveVertical(ev *MoveEvent, target Coord) {
	t := w.Grid.Get(target)
	switch t.Kind {
	case KindAir, KindFlux:
		w.walk(ev, target, MoveWalked)
	case KindKey:
		ev.LocksOpened = w.removeLocks(t.Lock)
		w.walk(ev, target, MoveUnlocked)
	case KindUnbreakable, KindPlayer, KindStone, KindBox, KindLock:
	default:
		panic("core: unhandled tile kind " + t.Kind.String())
	}
}

// walk relocates the player marker, leaving air behind.
func (w *World) walk(ev *MoveEvent, to Coord, outcome MoveOutcome) {
	w.Grid.Set(ev.From, Air())
	w.Grid.Set(to, PlayerMarker())
	ev.To = to
	ev.Outcome = outcome
}

// removeLocks clears every lock opened by the key configuration with the given index.
// Returns the number of locks removed.
func (w *World) removeLocks(index int) int {
	kc, ok := KeyConfig(index)
	if !ok {
		kc = KeyConfiguration{Index: index}
	}

	removed := 0
	for i, t := range w.Grid.Tiles {
		if kc.Removes(t) {
			w.Grid.Tiles[i] = Air()
			removed++
		}
	}
	return removed
}

// applyGravity scans from the bottom row up so a tile that drops is never
// evaluated a second time in the same tick.
func (w *World) applyGravity(result *StepResult) {
	for y := w.Grid.H - 1; y >= 0; y-- {
		for x := 0; x < w.Grid.W; x++ {
			w.update(C(x, y), result)
		}
	}
}

func (w *World) update(c Coord, result *StepResult) {
	t := w.Grid.Get(c)
	switch t.Kind {
	case KindStone, KindBox:
		below := c.Below()
		if w.Grid.Get(below).stateAbove() == Falling {
			w.Grid.Set(below, t.WithState(Falling))
			w.Grid.Set(c, Air())
			result.Falls = append(result.Falls, FallEvent{From: c, To: below, Tile: t})
			return
		}
		if t.State == Falling {
			result.Landed = append(result.Landed, c)
		}
		w.Grid.Set(c, t.WithState(Resting))
	case KindAir, KindFlux, KindUnbreakable, KindPlayer, KindKey, KindLock:
	default:
		panic("core: unhandled tile kind " + t.Kind.String())
	}
}
