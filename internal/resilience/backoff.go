package resilience

import "time"

// Backoff is a deterministic exponential schedule without jitter.
// Delays: Initial, Initial*2, Initial*4, ... capped at Max when Max > 0.
type Backoff struct {
	Initial time.Duration
	Max     time.Duration
}

// Delay returns the wait before retry number attempt+1, i.e. Initial × 2^attempt.
func (b Backoff) Delay(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	d := b.Initial
	for i := 0; i < attempt; i++ {
		// Stop doubling once the cap is reached or the next doubling would overflow.
		if b.Max > 0 && d >= b.Max {
			return b.Max
		}
		if d > maxDuration/2 {
			d = maxDuration
			break
		}
		d *= 2
	}
	if b.Max > 0 && d > b.Max {
		return b.Max
	}
	return d
}

const maxDuration = time.Duration(1<<63 - 1)
