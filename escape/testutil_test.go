package escape_test

import (
	"github.com/katalvlaran/escapepath/escape"
	"github.com/katalvlaran/escapepath/geom"
)

const (
	// seedDet is the deterministic seed used across solver tests.
	seedDet = int64(2024)

	// generationsShort keeps multi-generation tests fast.
	generationsShort = 6
)

func square() geom.Boundary {
	return geom.NewBoundary(geom.Pt(0, 0), geom.Pt(100, 0), geom.Pt(100, 100), geom.Pt(0, 100))
}

func lShape() geom.Boundary {
	return geom.NewBoundary(
		geom.Pt(0, 0), geom.Pt(100, 0), geom.Pt(100, 50),
		geom.Pt(50, 50), geom.Pt(50, 100), geom.Pt(0, 100),
	)
}

// fastOptions shrinks every grid so a generation costs a few thousand walks.
func fastOptions() escape.Options {
	opts := escape.DefaultOptions()
	opts.Seed = seedDet
	opts.Region.LineSampleDensity = 2
	opts.Region.BulkCount = 10
	opts.Fitness.HeadingCount = 4
	opts.Fitness.Walk.Steps = 40
	return opts
}
