package tactile

import "time"

// Point is a single contact point in surface coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// GestureType identifies a kind of semantic gesture.
type GestureType uint8

const (
	GestureTap        GestureType = iota // press and release with negligible movement
	GestureSwipe                         // fast, long, mostly straight stroke
	GestureSwipeUp                       // swipe whose dominant direction is up
	GestureSwipeDown                     // swipe whose dominant direction is down
	GestureSwipeLeft                     // swipe whose dominant direction is left
	GestureSwipeRight                    // swipe whose dominant direction is right
	GestureLongPress                     // stationary hold past the long-press duration
	GesturePan                           // continuous delta reporting past the tap dead zone
	GesturePinch                         // two-point separation change against the baseline
	GestureRotate                        // two-point angle change against the baseline
)

// String returns the wire-style name of the gesture type.
func (g GestureType) String() string {
	switch g {
	case GestureTap:
		return "tap"
	case GestureSwipe:
		return "swipe"
	case GestureSwipeUp:
		return "swipeup"
	case GestureSwipeDown:
		return "swipedown"
	case GestureSwipeLeft:
		return "swipeleft"
	case GestureSwipeRight:
		return "swiperight"
	case GestureLongPress:
		return "longpress"
	case GesturePan:
		return "pan"
	case GesturePinch:
		return "pinch"
	case GestureRotate:
		return "rotate"
	default:
		return "unknown"
	}
}

// Direction is a cardinal swipe direction.
type Direction uint8

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "unknown"
	}
}

// GestureType returns the direction-specific swipe gesture type.
func (d Direction) GestureType() GestureType {
	switch d {
	case DirectionUp:
		return GestureSwipeUp
	case DirectionDown:
		return GestureSwipeDown
	case DirectionLeft:
		return GestureSwipeLeft
	default:
		return GestureSwipeRight
	}
}

// Capability is a bitmask of input event families a surface can deliver.
// Values can be combined with bitwise OR (e.g. CapTouch | CapMouse).
type Capability uint8

const (
	CapPointer Capability = 1 << iota // unified pointer events
	CapTouch                          // touch events with multi-point contact lists
	CapMouse                          // mouse events (single contact, no multi-touch)
)

// NativeEvent is a normalized raw input event delivered by a Surface.
// Points holds every active contact; Points[0] is the primary contact.
type NativeEvent struct {
	Name   string    // native event name the listener was bound under
	Time   time.Time // event timestamp; zero means "now"
	Points []Point   // active contact points, may be empty on end events
	Target any       // element or region the event originated on

	// Cancel suppresses the surface's default reaction to this event.
	// Stop halts further propagation on the surface. Either may be nil.
	Cancel func()
	Stop   func()
}

// Surface is a target that can deliver native input events. A Manager binds
// at most one listener per event name; surfaces only need to remember the
// latest listener registered under each name.
type Surface interface {
	AddListener(name string, fn func(NativeEvent), passive bool)
	RemoveListener(name string)
	Capabilities() Capability
}

// Supported reports whether a gesture type can be recognized on a surface
// with the given capabilities. Pinch and rotate need multi-point input
// (touch or pointer); every other gesture works on any family.
func Supported(caps Capability, t GestureType) bool {
	switch t {
	case GesturePinch, GestureRotate:
		return caps&(CapTouch|CapPointer) != 0
	default:
		return true
	}
}
