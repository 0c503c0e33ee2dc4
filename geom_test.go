package tactile

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestPointDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want float64
	}{
		{"same point", Point{5, 5}, Point{5, 5}, 0},
		{"horizontal", Point{0, 0}, Point{100, 0}, 100},
		{"vertical", Point{0, 0}, Point{0, 40}, 40},
		{"3-4-5 triangle", Point{0, 0}, Point{3, 4}, 5},
		{"negative coords", Point{-3, -4}, Point{0, 0}, 5},
		{"spec tap example", Point{0, 0}, Point{5, 3}, math.Sqrt(34)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pointDistance(tt.a, tt.b); !almostEqual(got, tt.want) {
				t.Errorf("pointDistance(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestPointAngle(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want float64
	}{
		{"east", Point{0, 0}, Point{1, 0}, 0},
		{"south", Point{0, 0}, Point{0, 1}, 90}, // Y grows downward
		{"west", Point{0, 0}, Point{-1, 0}, 180},
		{"north", Point{0, 0}, Point{0, -1}, 270},
		{"diagonal", Point{0, 0}, Point{1, 1}, 45},
		{"north-west stays in range", Point{0, 0}, Point{-1, -1}, 225},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pointAngle(tt.a, tt.b)
			if !almostEqual(got, tt.want) {
				t.Errorf("pointAngle(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got < 0 || got >= 360 {
				t.Errorf("pointAngle(%v, %v) = %v, outside [0, 360)", tt.a, tt.b, got)
			}
		})
	}
}

func TestMidpoint(t *testing.T) {
	x, y := midpoint(Point{0, 0}, Point{100, 40})
	if x != 50 || y != 20 {
		t.Errorf("midpoint = (%v, %v), want (50, 20)", x, y)
	}
}

func TestSwipeDirection(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   Direction
	}{
		{"right", 50, 0, DirectionRight},
		{"left", -50, 0, DirectionLeft},
		{"down", 0, 50, DirectionDown},
		{"up", 0, -50, DirectionUp},
		{"mostly right", 50, 20, DirectionRight},
		{"mostly up", 10, -80, DirectionUp},
		{"tie goes horizontal", 30, 30, DirectionRight},
		{"negative tie goes horizontal", -30, -30, DirectionLeft},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := swipeDirection(tt.dx, tt.dy); got != tt.want {
				t.Errorf("swipeDirection(%v, %v) = %v, want %v", tt.dx, tt.dy, got, tt.want)
			}
		})
	}
}

func TestExceedsTapTravel(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   bool
	}{
		{"stationary", 0, 0, false},
		{"inside dead zone", 5, -5, false},
		{"exactly at threshold", 10, 10, false},
		{"x axis out", 11, 0, true},
		{"y axis out", 0, -11, true},
		{"both out", 20, 20, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exceedsTapTravel(tt.dx, tt.dy, 10); got != tt.want {
				t.Errorf("exceedsTapTravel(%v, %v, 10) = %v, want %v", tt.dx, tt.dy, got, tt.want)
			}
		})
	}
}
