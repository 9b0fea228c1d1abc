package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/escapepath/config"
	"github.com/katalvlaran/escapepath/escape"
	"github.com/katalvlaran/escapepath/geom"
	"github.com/katalvlaran/escapepath/runner"
)

func TestLoad_YAMLVertices(t *testing.T) {
	f, err := config.Load(filepath.Join("testdata", "square.yaml"))
	require.NoError(t, err)

	b, err := f.BoundaryValue()
	require.NoError(t, err)
	want := geom.NewBoundary(geom.Pt(0, 0), geom.Pt(100, 0), geom.Pt(100, 100), geom.Pt(0, 100))
	if diff := cmp.Diff(want, b); diff != "" {
		t.Errorf("boundary mismatch (-want +got):\n%s", diff)
	}

	opts := f.Options()
	assert.Equal(t, int64(42), opts.Seed)
	assert.Equal(t, 80, opts.Steps())
	assert.Equal(t, 2.5, opts.Fitness.Walk.SegmentLength)
	assert.Equal(t, 8, opts.Fitness.HeadingCount)
	assert.Equal(t, 0.0, opts.MutationBound)
	// untouched fields keep defaults
	def := escape.DefaultOptions()
	assert.Equal(t, def.MaxChange, opts.MaxChange)
	assert.Equal(t, def.Region, opts.Region)

	p := f.RunPolicy()
	assert.Equal(t, runner.Policy{Window: 8, MaxSteps: runner.DefaultMaxSteps}, p)
}

func TestLoad_JSONTuples(t *testing.T) {
	f, err := config.Load(filepath.Join("testdata", "lshape.json"))
	require.NoError(t, err)

	b, err := f.BoundaryValue()
	require.NoError(t, err)
	require.Len(t, b, 6)
	require.NoError(t, b.Validate(1e-9))
	assert.Equal(t, geom.Segment{X1: 100, Y1: 50, X2: 50, Y2: 50}, b[2])

	opts := f.Options()
	assert.Equal(t, int64(7), opts.Seed)
	assert.Equal(t, 4, opts.Workers)
	assert.Equal(t, 30, opts.Region.BulkCount)
	assert.Equal(t, runner.DefaultWindow, f.RunPolicy().Window)
	assert.Equal(t, 40, f.RunPolicy().MaxSteps)

	// the loaded configuration is accepted by the solver
	_, err = escape.New(b, opts)
	assert.NoError(t, err)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join("testdata", "square.toml"))
	assert.ErrorIs(t, err, config.ErrUnsupportedFormat)

	_, err = config.Load(filepath.Join("testdata", "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(filepath.Join("testdata", "unknown.yaml"))
	assert.Error(t, err, "unknown keys are rejected")
}

func TestParse_UnknownJSONField(t *testing.T) {
	_, err := config.Parse([]byte(`{"vertices": [[0,0],[1,0],[1,1]], "extra": 1}`), config.FormatJSON)
	assert.Error(t, err)

	_, err = config.Parse([]byte(`{}`), config.Format("toml"))
	assert.ErrorIs(t, err, config.ErrUnsupportedFormat)
}

func TestBoundaryValue_MissingOrAmbiguous(t *testing.T) {
	f, err := config.Parse([]byte(`solver: {seed: 1}`), config.FormatYAML)
	require.NoError(t, err)
	_, err = f.BoundaryValue()
	assert.ErrorIs(t, err, config.ErrEmptyBoundary)

	f = &config.File{
		Boundary: [][4]float64{{0, 0, 1, 0}},
		Vertices: [][2]float64{{0, 0}},
	}
	_, err = f.BoundaryValue()
	assert.ErrorIs(t, err, config.ErrEmptyBoundary)
}

func TestFormatOf(t *testing.T) {
	for path, want := range map[string]config.Format{
		"a.json": config.FormatJSON,
		"b.YAML": config.FormatYAML,
		"c.yml":  config.FormatYAML,
	} {
		got, err := config.FormatOf(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}
	_, err := config.FormatOf("noext")
	assert.ErrorIs(t, err, config.ErrUnsupportedFormat)
}

// TestRoundTrip_Tuples: tuples written by Boundary.Tuples load back unchanged.
func TestRoundTrip_Tuples(t *testing.T) {
	b := geom.NewBoundary(geom.Pt(0, 0), geom.Pt(3, 0), geom.Pt(3, 2))
	f := &config.File{Boundary: b.Tuples()}
	got, err := f.BoundaryValue()
	require.NoError(t, err)
	assert.True(t, cmp.Equal(b, got))
}
