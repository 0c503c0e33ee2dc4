package tactile

// --- Native event names ---

const (
	eventPointerDown   = "pointerdown"
	eventPointerMove   = "pointermove"
	eventPointerUp     = "pointerup"
	eventPointerCancel = "pointercancel"

	eventTouchStart  = "touchstart"
	eventTouchMove   = "touchmove"
	eventTouchEnd    = "touchend"
	eventTouchCancel = "touchcancel"

	eventMouseDown  = "mousedown"
	eventMouseMove  = "mousemove"
	eventMouseUp    = "mouseup"
	eventMouseLeave = "mouseleave"
)

// inputFamily is the native event family an adapter binds to.
type inputFamily uint8

const (
	familyNone inputFamily = iota
	familyPointer
	familyTouch
	familyMouse
)

// selectFamily picks exactly one family from a surface's capabilities,
// preferring pointer, then touch, then mouse.
func selectFamily(caps Capability) inputFamily {
	switch {
	case caps&CapPointer != 0:
		return familyPointer
	case caps&CapTouch != 0:
		return familyTouch
	case caps&CapMouse != 0:
		return familyMouse
	default:
		return familyNone
	}
}

// eventNames returns the native names for the start, move, end, and cancel
// events of the family. Mouse has no native cancel; leave stands in for it.
func (f inputFamily) eventNames() (start, move, end, cancel string) {
	switch f {
	case familyPointer:
		return eventPointerDown, eventPointerMove, eventPointerUp, eventPointerCancel
	case familyTouch:
		return eventTouchStart, eventTouchMove, eventTouchEnd, eventTouchCancel
	case familyMouse:
		return eventMouseDown, eventMouseMove, eventMouseUp, eventMouseLeave
	default:
		return "", "", "", ""
	}
}

// adapterCallbacks are the four logical callbacks an adapter routes native
// events into.
type adapterCallbacks struct {
	start  func(NativeEvent)
	move   func(NativeEvent)
	end    func(NativeEvent)
	cancel func(NativeEvent)
}

// adapter binds one input family's listeners on a surface. The family is
// chosen once at construction; enable/disable cycles reuse it.
type adapter struct {
	surface Surface
	family  inputFamily
	passive bool
	bound   bool
}

// newAdapter selects the input family for the surface. Listeners are bound
// passive unless the caller needs to cancel default surface behavior.
func newAdapter(surface Surface, passive bool) *adapter {
	return &adapter{
		surface: surface,
		family:  selectFamily(surface.Capabilities()),
		passive: passive,
	}
}

// bind registers one listener per logical callback. Rebinding is idempotent:
// existing listeners are removed first so a listener is never duplicated.
func (a *adapter) bind(cb adapterCallbacks) {
	if a.family == familyNone {
		return
	}
	a.unbind()
	start, move, end, cancel := a.family.eventNames()
	a.surface.AddListener(start, cb.start, a.passive)
	a.surface.AddListener(move, cb.move, a.passive)
	a.surface.AddListener(end, cb.end, a.passive)
	a.surface.AddListener(cancel, cb.cancel, a.passive)
	a.bound = true
}

// unbind removes all listeners. The family and passivity are kept so a later
// bind restores the same configuration.
func (a *adapter) unbind() {
	if !a.bound {
		return
	}
	start, move, end, cancel := a.family.eventNames()
	a.surface.RemoveListener(start)
	a.surface.RemoveListener(move)
	a.surface.RemoveListener(end)
	a.surface.RemoveListener(cancel)
	a.bound = false
}
