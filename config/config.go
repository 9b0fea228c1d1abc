package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/escapepath/escape"
	"github.com/katalvlaran/escapepath/geom"
	"github.com/katalvlaran/escapepath/runner"
)

// FormatOf maps a path's extension to a Format.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads and decodes the file at path. The format follows the extension.
func Load(path string) (*File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	f, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return f, nil
}

// Parse decodes data. Unknown fields are rejected in both formats.
func Parse(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return &f, nil
}

// BoundaryValue builds the geometry from Boundary or Vertices. It does not
// validate the result; escape.New does.
func (f *File) BoundaryValue() (geom.Boundary, error) {
	switch {
	case len(f.Boundary) > 0 && len(f.Vertices) > 0:
		return nil, fmt.Errorf("%w: both boundary and vertices given", ErrEmptyBoundary)
	case len(f.Boundary) > 0:
		return geom.BoundaryFromTuples(f.Boundary), nil
	case len(f.Vertices) > 0:
		pts := make([]geom.Point, len(f.Vertices))
		for i, v := range f.Vertices {
			pts[i] = geom.Pt(v[0], v[1])
		}
		return geom.NewBoundary(pts...), nil
	default:
		return nil, ErrEmptyBoundary
	}
}

// Options returns escape.DefaultOptions with the solver section applied.
func (f *File) Options() escape.Options {
	opts := escape.DefaultOptions()
	s := f.Solver

	setInt64(&opts.Seed, s.Seed)
	setInt(&opts.Workers, s.Workers)
	setFloat(&opts.MaxChange, s.MaxChange)
	setFloat(&opts.MutationBound, s.MutationBound)
	setFloat(&opts.RoundingEps, s.RoundingEps)
	setFloat(&opts.CloseTol, s.CloseTol)

	setInt(&opts.Fitness.Walk.Steps, s.Steps)
	setFloat(&opts.Fitness.Walk.SegmentLength, s.SegmentLength)
	setInt(&opts.Fitness.HeadingCount, s.HeadingCount)
	setFloat(&opts.Fitness.Margin, s.Margin)

	setInt(&opts.Region.RaycastCount, s.RaycastCount)
	setInt(&opts.Region.LineSampleDensity, s.LineSampleDensity)
	setFloat(&opts.Region.JitterEps, s.JitterEps)
	setInt(&opts.Region.BulkCount, s.BulkCount)
	setInt(&opts.Region.MaxAttempts, s.MaxAttempts)

	return opts
}

// RunPolicy returns runner.DefaultPolicy with the policy section applied.
func (f *File) RunPolicy() runner.Policy {
	p := runner.DefaultPolicy()
	setInt(&p.Window, f.Policy.Window)
	setInt(&p.MaxSteps, f.Policy.MaxSteps)
	return p
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setInt64(dst *int64, v *int64) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
