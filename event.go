package tactile

import "time"

// --- Gesture event envelope ---

// Envelope is the common header shared by every gesture event. Handlers
// receive events by pointer so PreventDefault and StopPropagation act on
// the dispatch in progress.
type Envelope struct {
	Type      GestureType
	Native    NativeEvent // the raw event that completed the classification
	Target    any         // element the stroke originated on
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration

	defaultPrevented   bool
	propagationStopped bool
}

// PreventDefault suppresses the surface's default reaction to the underlying
// native event immediately, and marks the envelope so the manager-level
// policy does not apply it a second time.
func (e *Envelope) PreventDefault() {
	if !e.defaultPrevented && e.Native.Cancel != nil {
		e.Native.Cancel()
	}
	e.defaultPrevented = true
}

// StopPropagation halts further propagation of the underlying native event.
func (e *Envelope) StopPropagation() {
	if !e.propagationStopped && e.Native.Stop != nil {
		e.Native.Stop()
	}
	e.propagationStopped = true
}

// DefaultPrevented reports whether a handler already called PreventDefault.
func (e *Envelope) DefaultPrevented() bool { return e.defaultPrevented }

// PropagationStopped reports whether a handler already called StopPropagation.
func (e *Envelope) PropagationStopped() bool { return e.propagationStopped }

// --- Per-kind gesture events ---

// TapEvent reports a press/release with negligible movement. Count is the
// number of consecutive taps inside the double-tap window (2 on the second
// tap of a double-tap).
type TapEvent struct {
	Envelope
	Count int
	X, Y  float64
}

// SwipeEvent reports a fast, sufficiently long stroke classified at release.
// Velocity is in px/ms.
type SwipeEvent struct {
	Envelope
	Direction      Direction
	DeltaX, DeltaY float64
	Distance       float64
	Velocity       float64
	StartX, StartY float64
	EndX, EndY     float64
}

// LongPressEvent reports a stationary hold past the long-press duration,
// located at the stroke's start point.
type LongPressEvent struct {
	Envelope
	X, Y float64
}

// PanEvent reports the live delta from the stroke origin. Fired on every
// qualifying move once the stroke leaves the tap dead zone.
type PanEvent struct {
	Envelope
	DeltaX, DeltaY float64
	StartX, StartY float64
	X, Y           float64
}

// PinchEvent reports a two-point separation change. Scale is the ratio of
// the current separation to the separation captured at stroke start.
type PinchEvent struct {
	Envelope
	Scale            float64
	CenterX, CenterY float64
}

// RotateEvent reports a two-point orientation change in degrees relative to
// the angle captured at stroke start.
type RotateEvent struct {
	Envelope
	Rotation         float64
	CenterX, CenterY float64
}

// --- Sink bridge ---

// EventSink is an optional observer for integration layers. When set on a
// Manager, every dispatched gesture is forwarded as a flat GestureRecord
// after the regular handlers ran.
type EventSink interface {
	EmitGesture(rec GestureRecord)
}

// GestureRecord carries gesture data in a single flat struct for sinks.
// Only the fields matching Type are meaningful.
type GestureRecord struct {
	Type     GestureType
	Duration time.Duration
	X, Y     float64
	// Tap fields
	Count int
	// Swipe / pan fields
	Direction      Direction
	DeltaX, DeltaY float64
	Distance       float64
	Velocity       float64
	// Pinch / rotate fields
	Scale    float64
	Rotation float64
}
