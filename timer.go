package tactile

import "time"

// pressTimer is the single cancellable delayed callback used for long-press
// detection. Every stroke exit path (move past the dead zone, end, cancel,
// disable, destroy) must go through cancel so a stale callback can never
// fire after the stroke concluded.
type pressTimer struct {
	t *time.Timer
}

// arm schedules fn after d, replacing any pending callback.
func (p *pressTimer) arm(d time.Duration, fn func()) {
	p.cancel()
	p.t = time.AfterFunc(d, fn)
}

// cancel stops the pending callback, if any.
func (p *pressTimer) cancel() {
	if p.t != nil {
		p.t.Stop()
		p.t = nil
	}
}

// armed reports whether a callback is scheduled.
func (p *pressTimer) armed() bool {
	return p.t != nil
}
