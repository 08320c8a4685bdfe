package monitor

import "time"

// Debouncer accepts a raw level change only after a quiet window anchored at
// the last accepted transition. Chatter inside the window is absorbed
// without restarting the window, so a noisy edge settles at a predictable
// instant instead of being pushed out by its own bounces.
type Debouncer struct {
	window     time.Duration
	lastStable bool
	lastChange time.Time
}

// NewDebouncer starts at stable-low with no transition on record, so the
// first observed change is accepted immediately.
func NewDebouncer(window time.Duration) Debouncer {
	return Debouncer{window: window}
}

// Poll feeds one raw level observation. It reports true exactly when a
// stable low-to-high transition is accepted; high-to-low transitions update
// state silently.
func (d *Debouncer) Poll(raw bool, now time.Time) bool {
	if raw == d.lastStable {
		return false
	}
	if !d.lastChange.IsZero() && now.Sub(d.lastChange) < d.window {
		return false
	}
	d.lastStable = raw
	d.lastChange = now
	return raw
}

// Level reports the current stable level.
func (d *Debouncer) Level() bool { return d.lastStable }
