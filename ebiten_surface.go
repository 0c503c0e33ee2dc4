package tactile

import "github.com/hajimehoshi/ebiten/v2"

// EbitenSurface adapts Ebitengine's polled input model to the event-driven
// Surface contract. Call Update once per game tick: it diffs the current
// mouse and touch state against the previous tick and synthesizes the
// corresponding start/move/end events.
//
// Mouse and touch input are normalized into one contact stream, delivered
// under the touch event family: a held primary mouse button counts as one
// contact, real touches keep their own points, so pinch and rotate work on
// touch hardware while taps, swipes, and pans work everywhere.
type EbitenSurface struct {
	listeners map[string]func(NativeEvent)

	// Poll functions, swappable in tests.
	cursorPos    func() (int, int)
	mousePressed func() bool
	touchIDs     func([]ebiten.TouchID) []ebiten.TouchID
	touchPos     func(ebiten.TouchID) (int, int)

	down    bool
	lastPts []Point
	idBuf   []ebiten.TouchID
	ptsBuf  []Point
}

// NewEbitenSurface creates a surface polling the global Ebitengine input
// state.
func NewEbitenSurface() *EbitenSurface {
	return &EbitenSurface{
		listeners: make(map[string]func(NativeEvent)),
		cursorPos: ebiten.CursorPosition,
		mousePressed: func() bool {
			return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
		},
		touchIDs: ebiten.AppendTouchIDs,
		touchPos: ebiten.TouchPosition,
	}
}

// AddListener stores the listener for name, replacing any previous one.
func (s *EbitenSurface) AddListener(name string, fn func(NativeEvent), passive bool) {
	s.listeners[name] = fn
}

// RemoveListener drops the listener for name.
func (s *EbitenSurface) RemoveListener(name string) {
	delete(s.listeners, name)
}

// Capabilities reports touch: the normalized contact stream is delivered
// under the touch event family.
func (s *EbitenSurface) Capabilities() Capability {
	return CapTouch
}

func (s *EbitenSurface) emit(name string, pts []Point) {
	fn := s.listeners[name]
	if fn == nil {
		return
	}
	// Zero Time: the receiver stamps with the wall clock on delivery.
	fn(NativeEvent{Name: name, Points: pts})
}

// pollContacts gathers the current contact list: touches first, then the
// cursor when the primary mouse button is held.
func (s *EbitenSurface) pollContacts() []Point {
	s.idBuf = s.touchIDs(s.idBuf[:0])
	s.ptsBuf = s.ptsBuf[:0]
	for _, id := range s.idBuf {
		x, y := s.touchPos(id)
		s.ptsBuf = append(s.ptsBuf, Point{float64(x), float64(y)})
	}
	if len(s.ptsBuf) == 0 && s.mousePressed() {
		x, y := s.cursorPos()
		s.ptsBuf = append(s.ptsBuf, Point{float64(x), float64(y)})
	}
	return s.ptsBuf
}

// Update polls the input state and synthesizes events. Call once per
// Ebitengine Update tick.
func (s *EbitenSurface) Update() {
	pts := s.pollContacts()
	active := len(pts) > 0

	switch {
	case active && !s.down:
		s.down = true
		s.emit(eventTouchStart, clonePoints(pts))
	case active && s.down:
		// A grown contact list re-announces as a start so two-point
		// baselines get captured; otherwise report movement.
		if len(pts) > len(s.lastPts) {
			s.emit(eventTouchStart, clonePoints(pts))
		} else if !pointsEqual(pts, s.lastPts) {
			s.emit(eventTouchMove, clonePoints(pts))
		}
	case !active && s.down:
		s.down = false
		s.emit(eventTouchEnd, nil)
	}

	s.lastPts = append(s.lastPts[:0], pts...)
}

func clonePoints(pts []Point) []Point {
	return append([]Point(nil), pts...)
}

func pointsEqual(a, b []Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
