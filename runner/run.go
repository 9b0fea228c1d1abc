package runner

import (
	"context"
	"fmt"

	"github.com/katalvlaran/escapepath/escape"
)

// Run steps s until p stops it, Step fails, or ctx is done.
//
// onStep, if non-nil, is called with every generation before the policy is
// consulted. A nil ctx is treated as context.Background().
//
// Errors:
//   - ctx.Err() when cancelled; Result.Reason is StopCancelled.
//   - the Step error, wrapped, when a generation fails.
//
// In both cases the Result covers the generations completed so far.
func Run(ctx context.Context, s Stepper, p Policy, onStep func(escape.Generation)) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	var (
		tr  = NewTracker(p)
		res Result
	)

	for {
		if err := ctx.Err(); err != nil {
			res.Reason = StopCancelled
			return res, err
		}

		gen, err := s.Step()
		if err != nil {
			return res, fmt.Errorf("runner: generation %d: %w", res.Generations, err)
		}
		res.Best = gen
		res.Generations++
		res.Distances = append(res.Distances, gen.Distance)

		if onStep != nil {
			onStep(gen)
		}
		if tr.Observe(gen.Distance) {
			res.Reason = tr.Reason()
			escape.Logger().Info("runner: stopped",
				"reason", res.Reason.String(),
				"generations", res.Generations,
				"distance", gen.Distance,
			)
			return res, nil
		}
	}
}
