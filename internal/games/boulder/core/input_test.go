package core

import "testing"

func TestInputQueueDrainOrder(t *testing.T) {
	q := NewInputQueue()
	q.Push(DirUp)
	q.Push(DirLeft)
	q.Push(DirDown)

	if q.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", q.Len())
	}

	var got []Dir
	n := q.Drain(func(d Dir) { got = append(got, d) })

	if n != 3 {
		t.Errorf("Drain() = %d, expected 3", n)
	}
	expected := []Dir{DirDown, DirLeft, DirUp}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("drained[%d] = %s, expected %s", i, got[i], expected[i])
		}
	}
	if q.Len() != 0 {
		t.Errorf("queue should be empty after Drain, has %d", q.Len())
	}
}

func TestInputQueueDrainEmpty(t *testing.T) {
	q := NewInputQueue()
	called := false
	if n := q.Drain(func(Dir) { called = true }); n != 0 || called {
		t.Error("draining an empty queue should not call fn")
	}
}
