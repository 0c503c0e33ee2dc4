package tactile

import "time"

// --- Release classification ---

// endClass is the outcome of classifying a stroke at release. Tap and swipe
// are mutually exclusive; strokes that qualify as neither already delivered
// their semantics incrementally as pan/pinch/rotate events.
type endClass uint8

const (
	endNone endClass = iota
	endTap
	endSwipe
)

// endResult carries the measurements classifyEnd computed for the stroke.
type endResult struct {
	distance       float64
	deltaX, deltaY float64
	duration       time.Duration
	velocity       float64 // px/ms
	direction      Direction
}

// classifyEnd decides, from the tracked state, what a concluded stroke was.
// Ordering: tap wins when total displacement stays inside the dead zone;
// otherwise a stroke that traveled far enough fast enough is a swipe.
func classifyEnd(st *strokeState, cfg Config, endTime time.Time) (endClass, endResult) {
	dx := st.currentX - st.startX
	dy := st.currentY - st.startY
	res := endResult{
		distance: pointDistance(Point{st.startX, st.startY}, Point{st.currentX, st.currentY}),
		deltaX:   dx,
		deltaY:   dy,
		duration: endTime.Sub(st.startTime),
	}
	if ms := float64(res.duration) / float64(time.Millisecond); ms > 0 {
		res.velocity = res.distance / ms
	}
	res.direction = swipeDirection(dx, dy)

	if res.distance < cfg.TapDistanceThreshold {
		return endTap, res
	}
	if res.distance >= cfg.SwipeThreshold && res.duration <= cfg.SwipeTimeThreshold {
		return endSwipe, res
	}
	return endNone, res
}

// --- Two-point classification ---

// twoPointResult reports which of pinch and rotate a move's geometry
// triggered. Both may trigger from the same move since they measure
// independent properties.
type twoPointResult struct {
	pinch    bool
	scale    float64
	rotate   bool
	rotation float64

	centerX, centerY float64
}

// evalTwoPoint compares the current two-point geometry to the stroke
// baseline. A zero baseline separation (two contacts reported at the same
// coordinates) makes both measurements a no-op until a usable baseline
// exists, guarding the pinch scale division.
func evalTwoPoint(st *strokeState, p0, p1 Point, cfg Config) twoPointResult {
	var res twoPointResult
	res.centerX, res.centerY = midpoint(p0, p1)
	if st.startDistance == 0 {
		return res
	}

	d := pointDistance(p0, p1)
	if diff := d - st.startDistance; diff > cfg.PinchThreshold || diff < -cfg.PinchThreshold {
		res.pinch = true
		res.scale = d / st.startDistance
	}

	angle := pointAngle(p0, p1)
	if diff := angle - st.startAngle; diff > cfg.RotateThreshold || diff < -cfg.RotateThreshold {
		res.rotate = true
		res.rotation = diff
	}
	return res
}
