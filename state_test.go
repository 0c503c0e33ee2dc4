package tactile

import (
	"testing"
	"time"
)

func TestStrokeStateBegin(t *testing.T) {
	var st strokeState
	now := time.Unix(2000, 0)

	st.begin(NativeEvent{Points: []Point{{10, 20}}, Target: "card"}, now)

	if !st.active {
		t.Fatal("stroke not active after begin")
	}
	if st.startX != 10 || st.startY != 20 || st.currentX != 10 || st.currentY != 20 {
		t.Errorf("positions = start(%v,%v) current(%v,%v), want all (10,20)",
			st.startX, st.startY, st.currentX, st.currentY)
	}
	if st.touchCount != 1 {
		t.Errorf("touchCount = %d, want 1", st.touchCount)
	}
	if st.startDistance != 0 {
		t.Errorf("single-point stroke captured a baseline: %v", st.startDistance)
	}
	if st.target != "card" {
		t.Errorf("target = %v, want card", st.target)
	}
}

func TestStrokeStateBegin_TwoPointBaseline(t *testing.T) {
	var st strokeState
	st.begin(NativeEvent{Points: []Point{{0, 0}, {100, 0}}}, time.Unix(2000, 0))

	if st.touchCount != 2 {
		t.Errorf("touchCount = %d, want 2", st.touchCount)
	}
	if st.startDistance != 100 {
		t.Errorf("startDistance = %v, want 100", st.startDistance)
	}
	if st.startAngle != 0 {
		t.Errorf("startAngle = %v, want 0", st.startAngle)
	}
}

func TestStrokeStateReset(t *testing.T) {
	var st strokeState
	st.begin(NativeEvent{Points: []Point{{0, 0}, {100, 0}}, Target: "card"}, time.Unix(2000, 0))
	st.longPressed = true
	st.lastTapTime = time.Unix(2000, 0)
	st.tapCount = 2

	st.reset()

	if st.active || st.longPressed || st.touchCount != 0 || st.startDistance != 0 || st.target != nil {
		t.Errorf("reset left stroke fields populated: %+v", st)
	}
	// Tap bookkeeping spans strokes and must survive.
	if st.tapCount != 2 || st.lastTapTime.IsZero() {
		t.Error("reset cleared tap bookkeeping")
	}
}

func TestPressTimer(t *testing.T) {
	var pt pressTimer
	if pt.armed() {
		t.Error("zero timer reports armed")
	}

	fired := make(chan struct{}, 1)
	pt.arm(10*time.Millisecond, func() { fired <- struct{}{} })
	if !pt.armed() {
		t.Error("timer not armed after arm")
	}
	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}

	// Re-arming replaces the pending timer; cancel silences it.
	pt.arm(10*time.Millisecond, func() { fired <- struct{}{} })
	pt.cancel()
	select {
	case <-fired:
		t.Error("cancelled timer fired")
	case <-time.After(50 * time.Millisecond):
	}
}
