package trail

import "time"

// Debouncer is a single-slot timer polled from the frame loop. Every Reset
// replaces the pending deadline; there is never more than one.
type Debouncer struct {
	deadline time.Time
	armed    bool
}

// Reset schedules the timer to fire d after now, replacing any pending deadline.
func (d *Debouncer) Reset(now time.Time, delay time.Duration) {
	d.deadline = now.Add(delay)
	d.armed = true
}

// Cancel disarms the timer.
func (d *Debouncer) Cancel() {
	d.armed = false
}

// Armed reports whether a deadline is pending.
func (d *Debouncer) Armed() bool { return d.armed }

// Deadline is the time set by the last Reset. It is stale once the timer
// has fired or been cancelled.
func (d *Debouncer) Deadline() time.Time { return d.deadline }

// Fire reports whether the deadline has passed and disarms the timer if so.
// It returns true at most once per Reset.
func (d *Debouncer) Fire(now time.Time) bool {
	if !d.armed || now.Before(d.deadline) {
		return false
	}
	d.armed = false
	return true
}
