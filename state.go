package tactile

import "time"

// strokeState tracks one logical stroke from initial contact to release or
// cancel. A Manager owns exactly one; it is reused across strokes.
type strokeState struct {
	active bool

	startTime time.Time

	startX, startY     float64
	lastX, lastY       float64
	currentX, currentY float64

	touchCount int

	// Two-point baseline, captured once when the stroke gains a second
	// contact point. Zero until then.
	startDistance float64
	startAngle    float64

	// longPressed marks that the long-press timer already fired for this
	// stroke, suppressing tap/swipe classification at release.
	longPressed bool

	target any

	// startEvent is the native event that opened the stroke, kept so the
	// long-press timer has an originating event to report (move events may
	// not carry a target).
	startEvent NativeEvent

	longPress pressTimer

	// Tap bookkeeping. Survives stroke resets: the double-tap window spans
	// strokes by definition.
	lastTapTime time.Time
	tapCount    int
}

// begin starts a new stroke at the primary contact of ev.
func (st *strokeState) begin(ev NativeEvent, now time.Time) {
	p := ev.Points[0]
	st.active = true
	st.startTime = now
	st.startX, st.startY = p.X, p.Y
	st.lastX, st.lastY = p.X, p.Y
	st.currentX, st.currentY = p.X, p.Y
	st.touchCount = len(ev.Points)
	st.startDistance = 0
	st.startAngle = 0
	st.longPressed = false
	st.target = ev.Target
	st.startEvent = ev
	if len(ev.Points) >= 2 {
		st.captureBaseline(ev.Points[0], ev.Points[1])
	}
}

// captureBaseline stores the two-point separation and orientation the pinch
// and rotate classifiers measure against.
func (st *strokeState) captureBaseline(p0, p1 Point) {
	st.startDistance = pointDistance(p0, p1)
	st.startAngle = pointAngle(p0, p1)
}

// reset returns the stroke to idle with the long-press timer cleared.
// Tap bookkeeping is preserved.
func (st *strokeState) reset() {
	st.longPress.cancel()
	st.active = false
	st.touchCount = 0
	st.startDistance = 0
	st.startAngle = 0
	st.longPressed = false
	st.target = nil
	st.startEvent = NativeEvent{}
}
