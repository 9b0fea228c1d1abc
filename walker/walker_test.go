package walker_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/escapepath/geom"
	"github.com/katalvlaran/escapepath/walker"
)

func square() geom.Boundary {
	return geom.NewBoundary(geom.Pt(0, 0), geom.Pt(100, 0), geom.Pt(100, 100), geom.Pt(0, 100))
}

// circling returns a path that turns by 2π/12 every step: a closed 12-gon of
// radius ≈ 9.7 that never reaches the square's edges from its centre.
func circling(steps int) walker.Path {
	p := walker.NewPath(steps)
	for i := range p {
		p[i] = 2 * math.Pi / 12
	}
	return p
}

// TestDistance_StraightLineFromCentre walks the zero path east from (50,50);
// the exit is the edge x=100, fifty units away.
func TestDistance_StraightLineFromCentre(t *testing.T) {
	opts := walker.DefaultOptions()
	path := walker.NewPath(opts.Steps)

	d := walker.Distance(geom.Pt(50, 50), 0, path, square(), opts)
	assert.InDelta(t, 50.0, d, opts.SegmentLength)

	res := walker.Simulate(geom.Pt(50, 50), 0, path, square(), opts)
	require.True(t, res.Escaped)
	assert.Equal(t, 10, res.Steps)
	assert.InDelta(t, 100.0, res.Exit.X, 1e-9)
	assert.InDelta(t, 50.0, res.Exit.Y, 1e-9)
}

// TestDistance_NorthFromCentre uses heading π/2; cos(π/2) is not exactly zero,
// so the tolerance only has to absorb that drift.
func TestDistance_NorthFromCentre(t *testing.T) {
	opts := walker.DefaultOptions()
	d := walker.Distance(geom.Pt(50, 50), math.Pi/2, walker.NewPath(opts.Steps), square(), opts)
	assert.InDelta(t, 50.0, d, 1e-9)
}

// TestDistance_PartialStep adds only the distance to the contact point.
func TestDistance_PartialStep(t *testing.T) {
	opts := walker.DefaultOptions()
	d := walker.Distance(geom.Pt(97, 50), 0, walker.NewPath(opts.Steps), square(), opts)
	assert.InDelta(t, 3.0, d, 1e-12)
}

// TestDistance_NeverEscapesIsCapped: the circling path stays inside, so the
// result is the horizon exactly.
func TestDistance_NeverEscapesIsCapped(t *testing.T) {
	opts := walker.DefaultOptions()
	res := walker.Simulate(geom.Pt(50, 50), 0, circling(opts.Steps), square(), opts)

	assert.False(t, res.Escaped)
	assert.Equal(t, opts.Horizon(), res.Distance)
	assert.Equal(t, 500.0, opts.Horizon())
	assert.Equal(t, opts.Steps, res.Steps)
}

// TestTrace_MatchesDistance checks the recorded waypoints of the straight walk.
func TestTrace_MatchesDistance(t *testing.T) {
	opts := walker.DefaultOptions()
	trace := walker.Trace(geom.Pt(50, 50), 0, walker.NewPath(opts.Steps), square(), opts)

	want := make([]geom.Point, 0, 11)
	for x := 50.0; x < 100; x += 5 {
		want = append(want, geom.Pt(x, 50))
	}
	want = append(want, geom.Pt(100, 50))

	if diff := cmp.Diff(want, trace, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("trace mismatch (-want +got):\n%s", diff)
	}
}

// TestTrace_NonEscapingLength: Steps pre-step positions plus the final one.
func TestTrace_NonEscapingLength(t *testing.T) {
	opts := walker.Options{Steps: 24, SegmentLength: 5}
	trace := walker.Trace(geom.Pt(50, 50), 0, circling(24), square(), opts)

	require.Len(t, trace, 25)
	// Two full turns of the 12-gon bring the walker back to the start.
	assert.InDelta(t, 50.0, trace[24].X, 1e-9)
	assert.InDelta(t, 50.0, trace[24].Y, 1e-9)
}

// TestDistance_ShortPathTreatsMissingDeltasAsZero.
func TestDistance_ShortPathTreatsMissingDeltasAsZero(t *testing.T) {
	opts := walker.DefaultOptions()
	short := walker.Distance(geom.Pt(50, 50), 0, walker.Path{0, 0}, square(), opts)
	full := walker.Distance(geom.Pt(50, 50), 0, walker.NewPath(opts.Steps), square(), opts)
	assert.Equal(t, full, short)
}

func TestPath_CloneAndEqual(t *testing.T) {
	p := walker.Path{0.1, -0.2, 0.3}
	q := p.Clone()
	require.True(t, p.Equal(q))

	q[1] = 0.25
	assert.False(t, p.Equal(q))
	assert.Equal(t, -0.2, p[1], "clone must not alias")
	assert.False(t, p.Equal(p[:2]))
	assert.Empty(t, walker.NewPath(-3))
}
