package tactile

import (
	"testing"
	"time"
)

func TestDrag(t *testing.T) {
	s := NewSyntheticSurface(CapPointer)
	s.SetClock(time.Unix(1_700_000_000, 0))

	var moves []Point
	var pressed, released Point
	s.AddListener(eventPointerDown, func(ev NativeEvent) { pressed = ev.Points[0] }, true)
	s.AddListener(eventPointerMove, func(ev NativeEvent) { moves = append(moves, ev.Points[0]) }, true)
	s.AddListener(eventPointerUp, func(ev NativeEvent) { released = ev.Points[0] }, true)

	start := s.timestamp()
	s.Drag(0, 0, 100, 40, 4, 30*time.Millisecond)

	if pressed != (Point{0, 0}) {
		t.Errorf("pressed at %v, want (0, 0)", pressed)
	}
	if len(moves) != 4 {
		t.Fatalf("emitted %d moves, want 4", len(moves))
	}
	// Evenly spaced, with the final move landing on the destination.
	want := []Point{{25, 10}, {50, 20}, {75, 30}, {100, 40}}
	for i := range want {
		if moves[i] != want[i] {
			t.Errorf("move %d = %v, want %v", i, moves[i], want[i])
		}
	}
	if released != (Point{100, 40}) {
		t.Errorf("released at %v, want (100, 40)", released)
	}
	if got := s.timestamp().Sub(start); got != 150*time.Millisecond {
		t.Errorf("stroke spanned %v, want 150ms", got)
	}
}

func TestDrag_MinimumOneStep(t *testing.T) {
	s := NewSyntheticSurface(CapPointer)

	var moves []Point
	s.AddListener(eventPointerMove, func(ev NativeEvent) { moves = append(moves, ev.Points[0]) }, true)

	s.Drag(0, 0, 50, 0, 0, 0)

	if len(moves) != 1 || moves[0] != (Point{50, 0}) {
		t.Errorf("moves = %v, want one move at (50, 0)", moves)
	}
}
