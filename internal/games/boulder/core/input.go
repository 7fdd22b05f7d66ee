package core

import "github.com/zyedidia/generic/stack"

// InputQueue holds the directional commands pressed since the last tick.
// Commands are drained most recent first.
type InputQueue struct {
	pending *stack.Stack[Dir]
}

// NewInputQueue creates an empty input queue.
func NewInputQueue() *InputQueue {
	return &InputQueue{pending: stack.New[Dir]()}
}

// Push appends a command.
func (q *InputQueue) Push(d Dir) {
	q.pending.Push(d)
}

// Len returns the number of pending commands.
func (q *InputQueue) Len() int {
	return q.pending.Size()
}

// Drain removes every pending command, calling fn for each one in
// reverse arrival order. Returns the number of commands drained.
func (q *InputQueue) Drain(fn func(Dir)) int {
	n := 0
	for q.pending.Size() > 0 {
		fn(q.pending.Pop())
		n++
	}
	return n
}
