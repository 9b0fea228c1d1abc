// Package runner drives an escape solver generation by generation and
// decides when to stop.
//
// The solver itself never stops on its own; a Policy does:
//
//   - Stagnation: the last Window best distances are bit-identical.
//   - Budget:     MaxSteps generations have been observed.
//   - Cancellation: the context passed to Run is done. It is checked between
//     generations only; a generation in progress always completes.
//
// Usage:
//
//	s, _ := escape.New(b, escape.DefaultOptions())
//	_ = s.Prepare()
//	res, err := runner.Run(ctx, s, runner.DefaultPolicy(), func(g escape.Generation) {
//	    log.Printf("gen %d: %.3f", g.Index, g.Distance)
//	})
//
// Tracker is exported separately for event-loop callers (one Step per frame)
// that cannot hand control to Run.
package runner
