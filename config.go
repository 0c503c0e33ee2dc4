package tactile

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// --- Defaults ---

const (
	defaultSwipeThreshold       = 30.0 // px
	defaultSwipeTimeThreshold   = 300 * time.Millisecond
	defaultLongPressTime        = 500 * time.Millisecond
	defaultTapDistanceThreshold = 10.0 // px
	defaultPinchThreshold       = 10.0 // px of separation change
	defaultRotateThreshold      = 10.0 // degrees

	// doubleTapWindow is the maximum gap between consecutive taps for the
	// tap counter to keep incrementing. Fixed, not configurable.
	doubleTapWindow = 300 * time.Millisecond
)

// Config holds the recognition thresholds and dispatch policy for one
// Manager. Zero-valued numeric fields are backfilled with the defaults at
// construction; start from DefaultConfig when overriding booleans, since
// their zero values are meaningful.
type Config struct {
	// SwipeThreshold is the minimum travel in px for a stroke to qualify
	// as a swipe at release.
	SwipeThreshold float64 `validate:"gte=0"`

	// SwipeTimeThreshold is the maximum stroke duration for a swipe.
	SwipeTimeThreshold time.Duration `validate:"gte=0"`

	// LongPressTime is how long a stationary hold lasts before a
	// long-press fires.
	LongPressTime time.Duration `validate:"gte=0"`

	// TapDistanceThreshold is the movement dead zone in px: strokes that
	// stay inside it on both axes classify as taps at release.
	TapDistanceThreshold float64 `validate:"gte=0"`

	// PinchThreshold is the separation change in px needed before pinch
	// events fire for a two-point stroke.
	PinchThreshold float64 `validate:"gte=0"`

	// RotateThreshold is the angle change in degrees needed before rotate
	// events fire for a two-point stroke.
	RotateThreshold float64 `validate:"gte=0"`

	// PreventDefault suppresses the surface's default reaction to events
	// that produced a gesture, unless a handler already did so itself.
	// Listeners are bound non-passive only when this is set.
	PreventDefault bool

	// StopPropagation halts further surface propagation after dispatch.
	StopPropagation bool

	// Logger receives handler panic reports and lifecycle traces.
	// Nil means no logging.
	Logger *zerolog.Logger
}

// DefaultConfig returns the fully populated default configuration:
// 30 px / 300 ms swipe, 500 ms long-press, 10 px tap dead zone,
// 10 px / 10° two-point sensitivity, preventDefault on.
func DefaultConfig() Config {
	return Config{
		SwipeThreshold:       defaultSwipeThreshold,
		SwipeTimeThreshold:   defaultSwipeTimeThreshold,
		LongPressTime:        defaultLongPressTime,
		TapDistanceThreshold: defaultTapDistanceThreshold,
		PinchThreshold:       defaultPinchThreshold,
		RotateThreshold:      defaultRotateThreshold,
		PreventDefault:       true,
	}
}

// withDefaults backfills zero-valued numeric fields.
func (c Config) withDefaults() Config {
	if c.SwipeThreshold == 0 {
		c.SwipeThreshold = defaultSwipeThreshold
	}
	if c.SwipeTimeThreshold == 0 {
		c.SwipeTimeThreshold = defaultSwipeTimeThreshold
	}
	if c.LongPressTime == 0 {
		c.LongPressTime = defaultLongPressTime
	}
	if c.TapDistanceThreshold == 0 {
		c.TapDistanceThreshold = defaultTapDistanceThreshold
	}
	if c.PinchThreshold == 0 {
		c.PinchThreshold = defaultPinchThreshold
	}
	if c.RotateThreshold == 0 {
		c.RotateThreshold = defaultRotateThreshold
	}
	return c
}

// logger returns the configured logger or a no-op one.
func (c Config) logger() zerolog.Logger {
	if c.Logger != nil {
		return *c.Logger
	}
	return zerolog.Nop()
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator used for Config checks.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// validate rejects configurations with negative thresholds.
func (c Config) validate() error {
	if err := validatorInstance().Struct(c); err != nil {
		return fmt.Errorf("invalid gesture config: %w", err)
	}
	return nil
}
