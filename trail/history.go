package trail

import "time"

// Sample is one recorded pointer position
type Sample struct {
	X, Y float64
	Time time.Time
}

// History keeps the most recent pointer samples, newest first.
type History struct {
	samples []Sample
	limit   int
}

// NewHistory returns an empty history holding at most limit samples.
// A limit below one is treated as one.
func NewHistory(limit int) *History {
	if limit < 1 {
		limit = 1
	}
	return &History{
		samples: make([]Sample, 0, limit+1),
		limit:   limit,
	}
}

// Push inserts s at the front and drops the oldest sample when over the limit.
func (h *History) Push(s Sample) {
	h.samples = append(h.samples, Sample{})
	copy(h.samples[1:], h.samples)
	h.samples[0] = s
	if len(h.samples) > h.limit {
		h.samples = h.samples[:h.limit]
	}
}

// Reset clears the history and seeds it with s.
func (h *History) Reset(s Sample) {
	h.samples = h.samples[:0]
	h.samples = append(h.samples, s)
}

// Len is the number of samples held, never more than Limit.
func (h *History) Len() int { return len(h.samples) }

// Limit is the capacity the history was created with.
func (h *History) Limit() int { return h.limit }

// At returns the sample at i, where 0 is the newest. i must be in range.
func (h *History) At(i int) Sample {
	return h.samples[i]
}

// Samples returns a copy of the history, newest first.
func (h *History) Samples() []Sample {
	out := make([]Sample, len(h.samples))
	copy(out, h.samples)
	return out
}
