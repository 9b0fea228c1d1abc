package runner

import "github.com/katalvlaran/escapepath/escape"

// Default policy values.
const (
	DefaultWindow   = 10
	DefaultMaxSteps = 100
)

// Policy bounds a run.
//   - Window:   stop once this many consecutive best distances are identical.
//   - MaxSteps: hard cap on generations.
//
// Non-positive fields take their defaults.
type Policy struct {
	Window   int
	MaxSteps int
}

// DefaultPolicy returns Policy{DefaultWindow, DefaultMaxSteps}.
func DefaultPolicy() Policy {
	return Policy{Window: DefaultWindow, MaxSteps: DefaultMaxSteps}
}

func (p *Policy) normalize() {
	if p.Window <= 0 {
		p.Window = DefaultWindow
	}
	if p.MaxSteps <= 0 {
		p.MaxSteps = DefaultMaxSteps
	}
}

// StopReason tells why a run ended.
type StopReason int

const (
	StopNone StopReason = iota
	StopStagnant
	StopMaxSteps
	StopCancelled
)

// String implements fmt.Stringer.
func (r StopReason) String() string {
	switch r {
	case StopNone:
		return "running"
	case StopStagnant:
		return "stagnant"
	case StopMaxSteps:
		return "max-steps"
	case StopCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Stepper is the part of *escape.Solver that Run needs.
type Stepper interface {
	Step() (escape.Generation, error)
}

// Result summarizes a run.
type Result struct {
	Best        escape.Generation // last generation reported
	Generations int               // Step calls that succeeded
	Reason      StopReason
	Distances   []float64 // best distance per generation, in order
}
