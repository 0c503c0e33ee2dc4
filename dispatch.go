package tactile

// --- Handler registry ---

type tapHandler struct {
	id uint32
	fn func(*TapEvent)
}

type swipeHandler struct {
	id uint32
	fn func(*SwipeEvent)
}

type longPressHandler struct {
	id uint32
	fn func(*LongPressEvent)
}

type panHandler struct {
	id uint32
	fn func(*PanEvent)
}

type pinchHandler struct {
	id uint32
	fn func(*PinchEvent)
}

type rotateHandler struct {
	id uint32
	fn func(*RotateEvent)
}

type handlerRegistry struct {
	tap       []tapHandler
	swipe     []swipeHandler
	swipeDir  [4][]swipeHandler // indexed by Direction
	longPress []longPressHandler
	pan       []panHandler
	pinch     []pinchHandler
	rotate    []rotateHandler
	nextID    uint32
}

// clear drops every registered handler.
func (r *handlerRegistry) clear() {
	r.tap = nil
	r.swipe = nil
	for i := range r.swipeDir {
		r.swipeDir[i] = nil
	}
	r.longPress = nil
	r.pan = nil
	r.pinch = nil
	r.rotate = nil
}

// CallbackHandle allows removing a registered gesture handler.
type CallbackHandle struct {
	id    uint32
	m     *Manager
	event GestureType
}

// Remove unregisters this handler so it no longer fires. Safe to call from
// inside a handler; the dispatch in progress finishes with its snapshot.
func (h CallbackHandle) Remove() {
	if h.m == nil {
		return
	}
	h.m.mu.Lock()
	defer h.m.mu.Unlock()
	reg := &h.m.handlers
	switch h.event {
	case GestureTap:
		reg.tap = removeTapHandler(reg.tap, h.id)
	case GestureSwipe:
		reg.swipe = removeSwipeHandler(reg.swipe, h.id)
	case GestureSwipeUp, GestureSwipeDown, GestureSwipeLeft, GestureSwipeRight:
		d := directionOf(h.event)
		reg.swipeDir[d] = removeSwipeHandler(reg.swipeDir[d], h.id)
	case GestureLongPress:
		reg.longPress = removeLongPressHandler(reg.longPress, h.id)
	case GesturePan:
		reg.pan = removePanHandler(reg.pan, h.id)
	case GesturePinch:
		reg.pinch = removePinchHandler(reg.pinch, h.id)
	case GestureRotate:
		reg.rotate = removeRotateHandler(reg.rotate, h.id)
	}
}

// directionOf maps a direction-specific swipe type back to its Direction.
func directionOf(t GestureType) Direction {
	switch t {
	case GestureSwipeUp:
		return DirectionUp
	case GestureSwipeDown:
		return DirectionDown
	case GestureSwipeLeft:
		return DirectionLeft
	default:
		return DirectionRight
	}
}

func removeTapHandler(s []tapHandler, id uint32) []tapHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = tapHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeSwipeHandler(s []swipeHandler, id uint32) []swipeHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = swipeHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeLongPressHandler(s []longPressHandler, id uint32) []longPressHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = longPressHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removePanHandler(s []panHandler, id uint32) []panHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = panHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removePinchHandler(s []pinchHandler, id uint32) []pinchHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = pinchHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeRotateHandler(s []rotateHandler, id uint32) []rotateHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = rotateHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Registration ---

// OnTap registers a handler for tap events.
func (m *Manager) OnTap(fn func(*TapEvent)) CallbackHandle {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.destroyed {
		return CallbackHandle{}
	}
	m.handlers.nextID++
	id := m.handlers.nextID
	m.handlers.tap = append(m.handlers.tap, tapHandler{id: id, fn: fn})
	return CallbackHandle{id: id, m: m, event: GestureTap}
}

// OnSwipe registers a handler for swipe events of any direction.
func (m *Manager) OnSwipe(fn func(*SwipeEvent)) CallbackHandle {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.destroyed {
		return CallbackHandle{}
	}
	m.handlers.nextID++
	id := m.handlers.nextID
	m.handlers.swipe = append(m.handlers.swipe, swipeHandler{id: id, fn: fn})
	return CallbackHandle{id: id, m: m, event: GestureSwipe}
}

// OnSwipeDirection registers a handler for swipes in one cardinal direction.
// It receives the derived direction-specific event dispatched after the
// general swipe handlers; a handler registered through both OnSwipe and
// OnSwipeDirection observes the same physical gesture twice.
func (m *Manager) OnSwipeDirection(dir Direction, fn func(*SwipeEvent)) CallbackHandle {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.destroyed {
		return CallbackHandle{}
	}
	m.handlers.nextID++
	id := m.handlers.nextID
	m.handlers.swipeDir[dir] = append(m.handlers.swipeDir[dir], swipeHandler{id: id, fn: fn})
	return CallbackHandle{id: id, m: m, event: dir.GestureType()}
}

// OnLongPress registers a handler for long-press events.
func (m *Manager) OnLongPress(fn func(*LongPressEvent)) CallbackHandle {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.destroyed {
		return CallbackHandle{}
	}
	m.handlers.nextID++
	id := m.handlers.nextID
	m.handlers.longPress = append(m.handlers.longPress, longPressHandler{id: id, fn: fn})
	return CallbackHandle{id: id, m: m, event: GestureLongPress}
}

// OnPan registers a handler for pan events.
func (m *Manager) OnPan(fn func(*PanEvent)) CallbackHandle {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.destroyed {
		return CallbackHandle{}
	}
	m.handlers.nextID++
	id := m.handlers.nextID
	m.handlers.pan = append(m.handlers.pan, panHandler{id: id, fn: fn})
	return CallbackHandle{id: id, m: m, event: GesturePan}
}

// OnPinch registers a handler for pinch events.
func (m *Manager) OnPinch(fn func(*PinchEvent)) CallbackHandle {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.destroyed {
		return CallbackHandle{}
	}
	m.handlers.nextID++
	id := m.handlers.nextID
	m.handlers.pinch = append(m.handlers.pinch, pinchHandler{id: id, fn: fn})
	return CallbackHandle{id: id, m: m, event: GesturePinch}
}

// OnRotate registers a handler for rotate events.
func (m *Manager) OnRotate(fn func(*RotateEvent)) CallbackHandle {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.destroyed {
		return CallbackHandle{}
	}
	m.handlers.nextID++
	id := m.handlers.nextID
	m.handlers.rotate = append(m.handlers.rotate, rotateHandler{id: id, fn: fn})
	return CallbackHandle{id: id, m: m, event: GestureRotate}
}

// --- Dispatch ---

// invoke runs one handler, converting a panic into an error log entry so a
// broken handler never blocks its siblings.
func (m *Manager) invoke(t GestureType, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			m.log.Error().Str("gesture", t.String()).Interface("panic", r).Msg("gesture handler panicked")
		}
	}()
	fn()
}

// finish enforces the manager-level preventDefault/stopPropagation policy on
// the underlying native event, unless a handler already applied it through
// the envelope.
func (m *Manager) finish(env *Envelope, cfg Config) {
	if !env.defaultPrevented && cfg.PreventDefault && env.Native.Cancel != nil {
		env.Native.Cancel()
	}
	if !env.propagationStopped && cfg.StopPropagation && env.Native.Stop != nil {
		env.Native.Stop()
	}
}

func (m *Manager) dispatchTap(ev *TapEvent) {
	m.mu.Lock()
	if m.destroyed {
		m.mu.Unlock()
		return
	}
	hs := append([]tapHandler(nil), m.handlers.tap...)
	sink, cfg := m.sink, m.cfg
	m.mu.Unlock()

	for _, h := range hs {
		m.invoke(GestureTap, func() { h.fn(ev) })
	}
	m.finish(&ev.Envelope, cfg)
	if sink != nil {
		sink.EmitGesture(GestureRecord{
			Type: GestureTap, Duration: ev.Duration,
			X: ev.X, Y: ev.Y, Count: ev.Count,
		})
	}
}

// dispatchSwipe invokes the general swipe handlers, then re-enters with a
// derived event whose type names the direction, so consumers may subscribe
// to direction-specific swipes directly.
func (m *Manager) dispatchSwipe(ev *SwipeEvent) {
	m.mu.Lock()
	if m.destroyed {
		m.mu.Unlock()
		return
	}
	hs := append([]swipeHandler(nil), m.handlers.swipe...)
	dhs := append([]swipeHandler(nil), m.handlers.swipeDir[ev.Direction]...)
	sink, cfg := m.sink, m.cfg
	m.mu.Unlock()

	for _, h := range hs {
		m.invoke(GestureSwipe, func() { h.fn(ev) })
	}

	derived := *ev
	derived.Type = ev.Direction.GestureType()
	for _, h := range dhs {
		m.invoke(derived.Type, func() { h.fn(&derived) })
	}
	// Envelope flags set on the derived copy count toward the policy.
	ev.defaultPrevented = ev.defaultPrevented || derived.defaultPrevented
	ev.propagationStopped = ev.propagationStopped || derived.propagationStopped

	m.finish(&ev.Envelope, cfg)
	if sink != nil {
		sink.EmitGesture(GestureRecord{
			Type: GestureSwipe, Duration: ev.Duration,
			X: ev.EndX, Y: ev.EndY,
			Direction: ev.Direction,
			DeltaX:    ev.DeltaX, DeltaY: ev.DeltaY,
			Distance: ev.Distance, Velocity: ev.Velocity,
		})
	}
}

func (m *Manager) dispatchLongPress(ev *LongPressEvent) {
	m.mu.Lock()
	if m.destroyed {
		m.mu.Unlock()
		return
	}
	hs := append([]longPressHandler(nil), m.handlers.longPress...)
	sink, cfg := m.sink, m.cfg
	m.mu.Unlock()

	for _, h := range hs {
		m.invoke(GestureLongPress, func() { h.fn(ev) })
	}
	m.finish(&ev.Envelope, cfg)
	if sink != nil {
		sink.EmitGesture(GestureRecord{
			Type: GestureLongPress, Duration: ev.Duration,
			X: ev.X, Y: ev.Y,
		})
	}
}

func (m *Manager) dispatchPan(ev *PanEvent) {
	m.mu.Lock()
	if m.destroyed {
		m.mu.Unlock()
		return
	}
	hs := append([]panHandler(nil), m.handlers.pan...)
	sink, cfg := m.sink, m.cfg
	m.mu.Unlock()

	for _, h := range hs {
		m.invoke(GesturePan, func() { h.fn(ev) })
	}
	m.finish(&ev.Envelope, cfg)
	if sink != nil {
		sink.EmitGesture(GestureRecord{
			Type: GesturePan, Duration: ev.Duration,
			X: ev.X, Y: ev.Y,
			DeltaX: ev.DeltaX, DeltaY: ev.DeltaY,
		})
	}
}

func (m *Manager) dispatchPinch(ev *PinchEvent) {
	m.mu.Lock()
	if m.destroyed {
		m.mu.Unlock()
		return
	}
	hs := append([]pinchHandler(nil), m.handlers.pinch...)
	sink, cfg := m.sink, m.cfg
	m.mu.Unlock()

	for _, h := range hs {
		m.invoke(GesturePinch, func() { h.fn(ev) })
	}
	m.finish(&ev.Envelope, cfg)
	if sink != nil {
		sink.EmitGesture(GestureRecord{
			Type: GesturePinch, Duration: ev.Duration,
			X: ev.CenterX, Y: ev.CenterY, Scale: ev.Scale,
		})
	}
}

func (m *Manager) dispatchRotate(ev *RotateEvent) {
	m.mu.Lock()
	if m.destroyed {
		m.mu.Unlock()
		return
	}
	hs := append([]rotateHandler(nil), m.handlers.rotate...)
	sink, cfg := m.sink, m.cfg
	m.mu.Unlock()

	for _, h := range hs {
		m.invoke(GestureRotate, func() { h.fn(ev) })
	}
	m.finish(&ev.Envelope, cfg)
	if sink != nil {
		sink.EmitGesture(GestureRecord{
			Type: GestureRotate, Duration: ev.Duration,
			X: ev.CenterX, Y: ev.CenterY, Rotation: ev.Rotation,
		})
	}
}
