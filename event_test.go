package tactile

import "testing"

func TestEnvelopePreventDefault(t *testing.T) {
	var cancelled int
	env := Envelope{Native: NativeEvent{Cancel: func() { cancelled++ }}}

	if env.DefaultPrevented() {
		t.Error("fresh envelope reports prevented")
	}
	env.PreventDefault()
	env.PreventDefault()

	if cancelled != 1 {
		t.Errorf("native cancel ran %d times, want 1", cancelled)
	}
	if !env.DefaultPrevented() {
		t.Error("envelope not marked prevented")
	}
}

func TestEnvelopeStopPropagation(t *testing.T) {
	var stopped int
	env := Envelope{Native: NativeEvent{Stop: func() { stopped++ }}}

	env.StopPropagation()
	env.StopPropagation()

	if stopped != 1 {
		t.Errorf("native stop ran %d times, want 1", stopped)
	}
	if !env.PropagationStopped() {
		t.Error("envelope not marked stopped")
	}
}

func TestEnvelopeNilNativeHooks(t *testing.T) {
	var env Envelope
	// No native hooks: flags still flip without panicking.
	env.PreventDefault()
	env.StopPropagation()
	if !env.DefaultPrevented() || !env.PropagationStopped() {
		t.Error("flags not set")
	}
}

func TestGestureTypeString(t *testing.T) {
	tests := []struct {
		typ  GestureType
		want string
	}{
		{GestureTap, "tap"},
		{GestureSwipe, "swipe"},
		{GestureSwipeUp, "swipeup"},
		{GestureSwipeDown, "swipedown"},
		{GestureSwipeLeft, "swipeleft"},
		{GestureSwipeRight, "swiperight"},
		{GestureLongPress, "longpress"},
		{GesturePan, "pan"},
		{GesturePinch, "pinch"},
		{GestureRotate, "rotate"},
		{GestureType(200), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("GestureType(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

func TestDirection(t *testing.T) {
	tests := []struct {
		dir      Direction
		wantName string
		wantType GestureType
	}{
		{DirectionUp, "up", GestureSwipeUp},
		{DirectionDown, "down", GestureSwipeDown},
		{DirectionLeft, "left", GestureSwipeLeft},
		{DirectionRight, "right", GestureSwipeRight},
	}
	for _, tt := range tests {
		if got := tt.dir.String(); got != tt.wantName {
			t.Errorf("Direction(%d).String() = %q, want %q", tt.dir, got, tt.wantName)
		}
		if got := tt.dir.GestureType(); got != tt.wantType {
			t.Errorf("Direction(%d).GestureType() = %v, want %v", tt.dir, got, tt.wantType)
		}
	}
}
