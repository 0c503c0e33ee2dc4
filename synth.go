package tactile

import "time"

// SyntheticSurface is a Surface driven programmatically instead of by a real
// input device. It backs the package's own tests and the script player, and
// is useful for driving a Manager from recorded or generated interactions.
//
// With SetClock the surface runs on a synthetic clock that only moves when
// Advance is called, making timing-sensitive sequences deterministic. The
// long-press timer still runs on the wall clock; use real (short) durations
// when exercising it.
type SyntheticSurface struct {
	caps      Capability
	listeners map[string]func(NativeEvent)
	target    any

	now time.Time // synthetic clock; zero means wall clock

	adds      int // AddListener calls, for rebind accounting
	prevented int
	stopped   int
}

// NewSyntheticSurface creates a surface advertising the given capabilities.
// Zero capabilities default to pointer events.
func NewSyntheticSurface(caps Capability) *SyntheticSurface {
	if caps == 0 {
		caps = CapPointer
	}
	return &SyntheticSurface{
		caps:      caps,
		listeners: make(map[string]func(NativeEvent)),
	}
}

// AddListener stores the listener for name, replacing any previous one.
func (s *SyntheticSurface) AddListener(name string, fn func(NativeEvent), passive bool) {
	s.listeners[name] = fn
	s.adds++
}

// RemoveListener drops the listener for name.
func (s *SyntheticSurface) RemoveListener(name string) {
	delete(s.listeners, name)
}

// Capabilities returns the capability mask given at construction.
func (s *SyntheticSurface) Capabilities() Capability {
	return s.caps
}

// ListenerCount returns the number of distinct event names with a bound
// listener.
func (s *SyntheticSurface) ListenerCount() int {
	return len(s.listeners)
}

// AddCalls returns how many times AddListener has been called in total.
func (s *SyntheticSurface) AddCalls() int {
	return s.adds
}

// Prevented returns how often an event's default behavior was cancelled.
func (s *SyntheticSurface) Prevented() int {
	return s.prevented
}

// Stopped returns how often an event's propagation was stopped.
func (s *SyntheticSurface) Stopped() int {
	return s.stopped
}

// SetTarget sets the value reported as the originating target on every
// subsequent event.
func (s *SyntheticSurface) SetTarget(target any) {
	s.target = target
}

// SetClock switches the surface to a synthetic clock starting at t.
func (s *SyntheticSurface) SetClock(t time.Time) {
	s.now = t
}

// Advance moves the synthetic clock forward. No-op on the wall clock.
func (s *SyntheticSurface) Advance(d time.Duration) {
	if !s.now.IsZero() {
		s.now = s.now.Add(d)
	}
}

func (s *SyntheticSurface) timestamp() time.Time {
	if s.now.IsZero() {
		return time.Now()
	}
	return s.now
}

// emit delivers an event to the listener bound under name, if any.
func (s *SyntheticSurface) emit(name string, pts []Point) {
	fn := s.listeners[name]
	if fn == nil {
		return
	}
	fn(NativeEvent{
		Name:   name,
		Time:   s.timestamp(),
		Points: pts,
		Target: s.target,
		Cancel: func() { s.prevented++ },
		Stop:   func() { s.stopped++ },
	})
}

// eventNames resolves the native names for the family a manager would bind
// on this surface.
func (s *SyntheticSurface) eventNames() (start, move, end, cancel string) {
	return selectFamily(s.caps).eventNames()
}

// Press emits a single-point start event at (x, y).
func (s *SyntheticSurface) Press(x, y float64) {
	start, _, _, _ := s.eventNames()
	s.emit(start, []Point{{x, y}})
}

// Move emits a single-point move event at (x, y).
func (s *SyntheticSurface) Move(x, y float64) {
	_, move, _, _ := s.eventNames()
	s.emit(move, []Point{{x, y}})
}

// Release emits an end event at (x, y).
func (s *SyntheticSurface) Release(x, y float64) {
	_, _, end, _ := s.eventNames()
	s.emit(end, []Point{{x, y}})
}

// ReleaseAll emits an end event with an empty contact list, the shape a
// touch surface reports when the last finger lifts.
func (s *SyntheticSurface) ReleaseAll() {
	_, _, end, _ := s.eventNames()
	s.emit(end, nil)
}

// CancelStroke emits a cancel event.
func (s *SyntheticSurface) CancelStroke() {
	_, _, _, cancel := s.eventNames()
	s.emit(cancel, nil)
}

// PressPoints, MovePoints, and ReleasePoints are the multi-contact variants
// used for pinch/rotate sequences.
func (s *SyntheticSurface) PressPoints(pts ...Point) {
	start, _, _, _ := s.eventNames()
	s.emit(start, pts)
}

func (s *SyntheticSurface) MovePoints(pts ...Point) {
	_, move, _, _ := s.eventNames()
	s.emit(move, pts)
}

func (s *SyntheticSurface) ReleasePoints(pts ...Point) {
	_, _, end, _ := s.eventNames()
	s.emit(end, pts)
}

// Tap is a convenience that presses and releases at the same coordinates.
func (s *SyntheticSurface) Tap(x, y float64) {
	s.Press(x, y)
	s.Release(x, y)
}

// Drag presses at (fromX, fromY), emits steps linearly interpolated moves
// with the last one landing on (toX, toY), and releases there. On a synthetic
// clock each segment advances the clock by stepTime, so the whole stroke
// spans (steps+1)*stepTime.
func (s *SyntheticSurface) Drag(fromX, fromY, toX, toY float64, steps int, stepTime time.Duration) {
	if steps < 1 {
		steps = 1
	}
	s.Press(fromX, fromY)
	for i := 1; i <= steps; i++ {
		s.Advance(stepTime)
		t := float64(i) / float64(steps)
		s.Move(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.Advance(stepTime)
	s.Release(toX, toY)
}
