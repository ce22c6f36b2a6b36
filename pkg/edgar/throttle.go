package edgar

import "time"

// Throttle spaces calls by a fixed minimum interval. It is a cooperative,
// single-threaded sleep-until-elapsed gate, not a token bucket; callers run
// sequentially so no locking is needed.
type Throttle struct {
	minInterval time.Duration
	last        time.Time
}

func NewThrottle(minInterval time.Duration) *Throttle {
	return &Throttle{minInterval: minInterval}
}

// Wait blocks until at least minInterval has elapsed since the previous call,
// then records the new call time.
func (t *Throttle) Wait() {
	if !t.last.IsZero() {
		if elapsed := time.Since(t.last); elapsed < t.minInterval {
			time.Sleep(t.minInterval - elapsed)
		}
	}
	t.last = time.Now()
}
