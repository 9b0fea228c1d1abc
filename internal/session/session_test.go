package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/escapepath/escape"
	"github.com/katalvlaran/escapepath/geom"
	"github.com/katalvlaran/escapepath/internal/session"
	"github.com/katalvlaran/escapepath/runner"
)

func smallOptions() escape.Options {
	opts := escape.DefaultOptions()
	opts.Seed = 5
	opts.Region.LineSampleDensity = 2
	opts.Region.BulkCount = 8
	opts.Fitness.HeadingCount = 4
	opts.Fitness.Walk.Steps = 20
	return opts
}

func TestSession_DrawCloseSolve(t *testing.T) {
	s := session.New(smallOptions(), runner.Policy{Window: 3, MaxSteps: 5})
	assert.Equal(t, session.Drawing, s.State())
	assert.Contains(t, s.Status(), "0 vertices")

	for _, p := range []geom.Point{geom.Pt(0, 0), geom.Pt(80, 0), geom.Pt(80, 60), geom.Pt(0, 60), geom.Pt(-5, -5)} {
		require.True(t, s.AddVertex(p))
	}
	s.Undo()
	require.Len(t, s.Vertices(), 4)

	require.NoError(t, s.Close())
	assert.Equal(t, session.Solving, s.State())
	assert.Len(t, s.Boundary(), 4)
	assert.False(t, s.AddVertex(geom.Pt(1, 1)), "closed polygon takes no vertices")
	assert.ErrorIs(t, s.Close(), session.ErrNotDrawing)

	ticks := 0
	for s.Tick() {
		ticks++
		require.LessOrEqual(t, ticks, 5)
	}
	assert.Equal(t, session.Done, s.State())
	gen, ok := s.Last()
	require.True(t, ok)
	assert.Equal(t, ticks-1, gen.Index)
	assert.Contains(t, s.Status(), "stopped")
	assert.False(t, s.Tick())
}

func TestSession_InvalidPolygonFails(t *testing.T) {
	s := session.New(smallOptions(), runner.DefaultPolicy())
	s.AddVertex(geom.Pt(0, 0))
	s.AddVertex(geom.Pt(10, 10))

	err := s.Close()
	assert.ErrorIs(t, err, escape.ErrInvalidBoundary)
	assert.Equal(t, session.Failed, s.State())
	assert.ErrorIs(t, s.Err(), escape.ErrInvalidBoundary)
	assert.Contains(t, s.Status(), "error")
	assert.False(t, s.Tick())

	s.Reset()
	assert.Equal(t, session.Drawing, s.State())
	assert.NoError(t, s.Err())
	assert.Empty(t, s.Vertices())
}

func TestSession_LoadAndReset(t *testing.T) {
	s := session.New(smallOptions(), runner.Policy{Window: 2, MaxSteps: 3})
	b := geom.NewBoundary(geom.Pt(0, 0), geom.Pt(30, 0), geom.Pt(30, 30), geom.Pt(0, 30))

	require.NoError(t, s.Load(b))
	assert.Equal(t, session.Solving, s.State())
	assert.Equal(t, b.Vertices(), s.Vertices())
	assert.True(t, s.Tick())

	s.Reset()
	_, ok := s.Last()
	assert.False(t, ok)
	assert.Nil(t, s.Boundary())
	assert.Equal(t, session.Drawing, s.State())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "drawing", session.Drawing.String())
	assert.Equal(t, "solving", session.Solving.String())
	assert.Equal(t, "done", session.Done.String())
	assert.Equal(t, "failed", session.Failed.String())
	assert.Equal(t, "unknown", session.State(9).String())
}

// TestSession_RejectsCrossingEdge: a bowtie's fourth vertex would cross the
// first edge, so it is refused and both edges are reported.
func TestSession_RejectsCrossingEdge(t *testing.T) {
	s := session.New(smallOptions(), runner.DefaultPolicy())
	require.True(t, s.AddVertex(geom.Pt(0, 0)))
	require.True(t, s.AddVertex(geom.Pt(100, 100)))
	require.True(t, s.AddVertex(geom.Pt(100, 0)))

	assert.False(t, s.AddVertex(geom.Pt(0, 100)))
	assert.Len(t, s.Vertices(), 3)
	assert.Equal(t, []geom.Segment{
		geom.Seg(geom.Pt(0, 0), geom.Pt(100, 100)),
		geom.Seg(geom.Pt(100, 0), geom.Pt(0, 100)),
	}, s.BadEdges())
	assert.Contains(t, s.Status(), "rejected")
	assert.Equal(t, session.Drawing, s.State())

	// a non-crossing vertex clears the report
	require.True(t, s.AddVertex(geom.Pt(50, -40)))
	assert.Nil(t, s.BadEdges())
}

// TestSession_RejectsCrossingClosingEdge: every open edge is fine, only the
// closing edge G→A cuts through E→F of the spiral.
func TestSession_RejectsCrossingClosingEdge(t *testing.T) {
	s := session.New(smallOptions(), runner.Policy{Window: 2, MaxSteps: 2})
	spiral := []geom.Point{
		geom.Pt(0, 0), geom.Pt(100, 0), geom.Pt(100, 100), geom.Pt(20, 100),
		geom.Pt(20, 20), geom.Pt(80, 20), geom.Pt(80, 60),
	}
	for _, p := range spiral {
		require.True(t, s.AddVertex(p), "vertex %v", p)
	}

	err := s.Close()
	require.ErrorIs(t, err, session.ErrSelfIntersecting)
	assert.Equal(t, session.Drawing, s.State(), "a rejected close keeps drawing")
	assert.Equal(t, []geom.Segment{
		geom.Seg(geom.Pt(20, 20), geom.Pt(80, 20)),
		geom.Seg(geom.Pt(80, 60), geom.Pt(0, 0)),
	}, s.BadEdges())

	s.Undo()
	assert.Nil(t, s.BadEdges())
	require.NoError(t, s.Close())
	assert.Equal(t, session.Solving, s.State())
}

func TestSession_LoadRejectsSelfCrossing(t *testing.T) {
	s := session.New(smallOptions(), runner.DefaultPolicy())
	bowtie := geom.NewBoundary(geom.Pt(0, 0), geom.Pt(100, 100), geom.Pt(100, 0), geom.Pt(0, 100))

	err := s.Load(bowtie)
	assert.ErrorIs(t, err, session.ErrSelfIntersecting)
	assert.Equal(t, session.Failed, s.State())
	assert.NotEmpty(t, s.BadEdges())
	assert.False(t, s.Tick())
}
