package analysis

import "time"

// history is a bounded FIFO sequence of metric values. Once the limit is
// reached the oldest value is evicted on every push.
type history struct {
	values []float64
	limit  int
}

func newHistory(limit int) *history {
	return &history{
		values: make([]float64, 0, limit),
		limit:  limit,
	}
}

func (h *history) push(v float64) {
	h.values = append(h.values, v)
	if len(h.values) > h.limit {
		h.values = h.values[1:]
	}
}

func (h *history) len() int {
	return len(h.values)
}

// tail returns the most recent n values, or everything when fewer exist.
// The returned slice aliases the history and must not be retained.
func (h *history) tail(n int) []float64 {
	if n >= len(h.values) {
		return h.values
	}
	return h.values[len(h.values)-n:]
}

func (h *history) clear() {
	h.values = h.values[:0]
}

// sample is one confidence reading on the session timeline.
type sample struct {
	at    time.Time
	score float64
}

func meanScore(samples []sample) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		sum += s.score
	}
	return sum / float64(len(samples))
}
