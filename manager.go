package tactile

import (
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Manager recognizes gestures on one target surface. It owns the stroke
// state, the handler registry, and the bound native listeners; no two
// managers share state. Create with New, tear down with Destroy.
type Manager struct {
	mu sync.Mutex

	surface  Surface
	cfg      Config
	adapter  *adapter
	state    strokeState
	handlers handlerRegistry
	sink     EventSink
	log      zerolog.Logger

	enabled   bool
	destroyed bool
}

// New creates a Manager bound to surface and binds its native listeners.
// A nil config means DefaultConfig; zero numeric fields are backfilled and
// negative thresholds are rejected.
func New(surface Surface, cfg *Config) (*Manager, error) {
	if surface == nil {
		return nil, errors.New("tactile: nil surface")
	}
	c := DefaultConfig()
	if cfg != nil {
		c = cfg.withDefaults()
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	if selectFamily(surface.Capabilities()) == familyNone {
		return nil, errors.New("tactile: surface reports no input capabilities")
	}

	m := &Manager{
		surface: surface,
		cfg:     c,
		log:     c.logger(),
	}
	// Non-passive listeners only when the caller wants to be able to
	// cancel default surface behavior.
	m.adapter = newAdapter(surface, !c.PreventDefault)
	m.Enable()
	return m, nil
}

// Config returns the manager's effective configuration.
func (m *Manager) Config() Config {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cfg
}

// Enabled reports whether native listeners are currently bound.
func (m *Manager) Enabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.enabled
}

// Supported reports whether the gesture type can be recognized on this
// manager's surface.
func (m *Manager) Supported(t GestureType) bool {
	return Supported(m.surface.Capabilities(), t)
}

// SetSink installs an observer that receives every dispatched gesture.
// Pass nil to detach.
func (m *Manager) SetSink(sink EventSink) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.destroyed {
		return
	}
	m.sink = sink
}

// Enable binds the native listeners. Rebinding while enabled is idempotent;
// registered handlers and configuration are untouched.
func (m *Manager) Enable() *Manager {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.destroyed {
		return m
	}
	m.adapter.bind(adapterCallbacks{
		start:  m.handleStart,
		move:   m.handleMove,
		end:    m.handleEnd,
		cancel: m.handleCancel,
	})
	m.enabled = true
	m.log.Debug().Msg("gesture manager enabled")
	return m
}

// Disable unbinds the native listeners and abandons any stroke in progress,
// cancelling its long-press timer. Configuration and handlers survive, so
// Enable restores the manager as it was.
func (m *Manager) Disable() *Manager {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.destroyed {
		return m
	}
	m.adapter.unbind()
	m.state.reset()
	m.enabled = false
	m.log.Debug().Msg("gesture manager disabled")
	return m
}

// Destroy unbinds listeners, cancels any pending timer, and empties the
// handler registry. Terminal: every later call on the manager is a no-op,
// and no gesture is dispatched afterward. Safe to call more than once.
func (m *Manager) Destroy() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.destroyed {
		return
	}
	m.adapter.unbind()
	m.state.reset()
	m.handlers.clear()
	m.sink = nil
	m.enabled = false
	m.destroyed = true
	m.log.Debug().Msg("gesture manager destroyed")
}

// --- Stroke state machine ---

// nativeTime returns the event's timestamp, defaulting to the wall clock.
func nativeTime(ev NativeEvent) time.Time {
	if ev.Time.IsZero() {
		return time.Now()
	}
	return ev.Time
}

// gestureEnvelope builds the common event header.
func gestureEnvelope(t GestureType, native NativeEvent, target any, start, end time.Time) Envelope {
	return Envelope{
		Type:      t,
		Native:    native,
		Target:    target,
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
	}
}

// handleStart opens a stroke, or upgrades a single-point stroke to a
// two-point one when a second contact lands. An upgrade captures the pinch/
// rotate baseline without resetting the stroke origin, so already-dispatched
// events keep their meaning.
func (m *Manager) handleStart(ev NativeEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.destroyed {
		return
	}
	if len(ev.Points) == 0 {
		return
	}
	st := &m.state

	if st.active {
		if len(ev.Points) >= 2 && st.touchCount < 2 {
			st.touchCount = len(ev.Points)
			st.captureBaseline(ev.Points[0], ev.Points[1])
		}
		return
	}

	st.begin(ev, nativeTime(ev))
	st.longPress.arm(m.cfg.LongPressTime, m.longPressFired)
}

// longPressFired runs when the long-press timer elapses. It re-checks that
// the stroke is still active and still inside the tap dead zone; timer
// delivery can race with a move that crossed the threshold in the same tick.
func (m *Manager) longPressFired() {
	m.mu.Lock()
	st := &m.state
	if m.destroyed || !st.active {
		m.mu.Unlock()
		return
	}
	dx := st.currentX - st.startX
	dy := st.currentY - st.startY
	if exceedsTapTravel(dx, dy, m.cfg.TapDistanceThreshold) {
		m.mu.Unlock()
		return
	}
	st.longPressed = true
	st.longPress.cancel()

	now := time.Now()
	ev := &LongPressEvent{
		Envelope: gestureEnvelope(GestureLongPress, st.startEvent, st.target, st.startTime, now),
		X:        st.startX,
		Y:        st.startY,
	}
	m.mu.Unlock()

	m.dispatchLongPress(ev)
}

// handleMove updates the stroke and emits the incremental gestures: pan once
// the tap dead zone is left, pinch/rotate for qualifying two-point moves.
func (m *Manager) handleMove(ev NativeEvent) {
	m.mu.Lock()
	st := &m.state
	if m.destroyed || !st.active || len(ev.Points) == 0 {
		m.mu.Unlock()
		return
	}

	p := ev.Points[0]
	st.currentX, st.currentY = p.X, p.Y
	now := nativeTime(ev)

	dx := st.currentX - st.startX
	dy := st.currentY - st.startY

	var pan *PanEvent
	if exceedsTapTravel(dx, dy, m.cfg.TapDistanceThreshold) {
		// A stroke cannot be both a long-press and a pan/swipe.
		st.longPress.cancel()
		pan = &PanEvent{
			Envelope: gestureEnvelope(GesturePan, ev, st.target, st.startTime, now),
			DeltaX:   dx, DeltaY: dy,
			StartX: st.startX, StartY: st.startY,
			X: st.currentX, Y: st.currentY,
		}
	}

	var pinch *PinchEvent
	var rotate *RotateEvent
	if st.touchCount >= 2 && len(ev.Points) >= 2 {
		res := evalTwoPoint(st, ev.Points[0], ev.Points[1], m.cfg)
		if res.pinch {
			pinch = &PinchEvent{
				Envelope: gestureEnvelope(GesturePinch, ev, st.target, st.startTime, now),
				Scale:    res.scale,
				CenterX:  res.centerX, CenterY: res.centerY,
			}
		}
		if res.rotate {
			rotate = &RotateEvent{
				Envelope: gestureEnvelope(GestureRotate, ev, st.target, st.startTime, now),
				Rotation: res.rotation,
				CenterX:  res.centerX, CenterY: res.centerY,
			}
		}
	}

	st.lastX, st.lastY = p.X, p.Y
	m.mu.Unlock()

	if pan != nil {
		m.dispatchPan(pan)
	}
	if pinch != nil {
		m.dispatchPinch(pinch)
	}
	if rotate != nil {
		m.dispatchRotate(rotate)
	}
}

// handleEnd concludes the stroke: tap or swipe, mutually exclusive in that
// order. Strokes that qualify as neither already delivered their semantics
// incrementally during move, so nothing is retro-classified here.
func (m *Manager) handleEnd(ev NativeEvent) {
	m.mu.Lock()
	st := &m.state
	if m.destroyed || !st.active {
		m.mu.Unlock()
		return
	}
	st.longPress.cancel()

	// End events may carry no contact points (an emptied touch list); the
	// last tracked position is the release position then.
	if len(ev.Points) > 0 {
		st.currentX, st.currentY = ev.Points[0].X, ev.Points[0].Y
	}
	now := nativeTime(ev)

	if st.longPressed {
		st.reset()
		m.mu.Unlock()
		return
	}

	kind, res := classifyEnd(st, m.cfg, now)

	var tap *TapEvent
	var swipe *SwipeEvent
	switch kind {
	case endTap:
		if !st.lastTapTime.IsZero() && now.Sub(st.lastTapTime) <= doubleTapWindow {
			st.tapCount++
		} else {
			st.tapCount = 1
		}
		st.lastTapTime = now
		tap = &TapEvent{
			Envelope: gestureEnvelope(GestureTap, ev, st.target, st.startTime, now),
			Count:    st.tapCount,
			X:        st.currentX, Y: st.currentY,
		}
	case endSwipe:
		swipe = &SwipeEvent{
			Envelope:  gestureEnvelope(GestureSwipe, ev, st.target, st.startTime, now),
			Direction: res.direction,
			DeltaX:    res.deltaX, DeltaY: res.deltaY,
			Distance: res.distance,
			Velocity: res.velocity,
			StartX:   st.startX, StartY: st.startY,
			EndX: st.currentX, EndY: st.currentY,
		}
	}

	st.reset()
	m.mu.Unlock()

	if tap != nil {
		m.dispatchTap(tap)
	}
	if swipe != nil {
		m.dispatchSwipe(swipe)
	}
}

// handleCancel abandons the stroke without dispatching anything.
func (m *Manager) handleCancel(ev NativeEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.destroyed || !m.state.active {
		return
	}
	m.state.reset()
	m.log.Debug().Msg("stroke cancelled")
}
