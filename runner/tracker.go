package runner

import "math"

// Tracker applies a Policy to a stream of best distances.
// The zero value is not usable; call NewTracker.
type Tracker struct {
	policy Policy
	recent []uint64 // ring of the last Window distances, as bits
	seen   int
	reason StopReason
}

// NewTracker returns a Tracker for p (defaults applied).
func NewTracker(p Policy) *Tracker {
	p.normalize()
	return &Tracker{policy: p, recent: make([]uint64, p.Window)}
}

// Observe records one generation's best distance and reports whether the
// run should stop. Once it has returned true it keeps returning true.
func (t *Tracker) Observe(distance float64) bool {
	if t.reason != StopNone {
		return true
	}

	t.recent[t.seen%t.policy.Window] = math.Float64bits(distance)
	t.seen++

	switch {
	case t.stagnant():
		t.reason = StopStagnant
	case t.seen >= t.policy.MaxSteps:
		t.reason = StopMaxSteps
	}

	return t.reason != StopNone
}

func (t *Tracker) stagnant() bool {
	if t.seen < t.policy.Window {
		return false
	}
	for _, v := range t.recent[1:] {
		if v != t.recent[0] {
			return false
		}
	}
	return true
}

// Reason returns why the tracker stopped, or StopNone.
func (t *Tracker) Reason() StopReason { return t.reason }

// Observed returns the number of distances recorded so far.
func (t *Tracker) Observed() int { return t.seen }

// Policy returns the effective policy.
func (t *Tracker) Policy() Policy { return t.policy }

// Reset forgets every observation.
func (t *Tracker) Reset() {
	for i := range t.recent {
		t.recent[i] = 0
	}
	t.seen = 0
	t.reason = StopNone
}
