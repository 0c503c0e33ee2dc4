package tactile

import "math"

// --- Geometry helpers ---

// pointDistance returns the Euclidean distance between two points.
func pointDistance(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// pointAngle returns the angle of the segment a→b in degrees,
// normalized to [0, 360).
func pointAngle(a, b Point) float64 {
	deg := math.Atan2(b.Y-a.Y, b.X-a.X) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}

// midpoint returns the center point between a and b.
func midpoint(a, b Point) (float64, float64) {
	return (a.X + b.X) / 2, (a.Y + b.Y) / 2
}

// swipeDirection picks the cardinal direction of a displacement by its
// dominant axis. Horizontal wins ties. The Y axis grows downward.
func swipeDirection(dx, dy float64) Direction {
	if math.Abs(dx) >= math.Abs(dy) {
		if dx >= 0 {
			return DirectionRight
		}
		return DirectionLeft
	}
	if dy >= 0 {
		return DirectionDown
	}
	return DirectionUp
}

// exceedsTapTravel reports whether movement from the stroke origin has left
// the tap dead zone on either axis.
func exceedsTapTravel(dx, dy, threshold float64) bool {
	return math.Abs(dx) > threshold || math.Abs(dy) > threshold
}
