package config

import "errors"

// Sentinel errors.
var (
	// ErrUnsupportedFormat is returned for file extensions other than
	// .json, .yaml and .yml.
	ErrUnsupportedFormat = errors.New("config: unsupported format")

	// ErrEmptyBoundary is returned when neither boundary nor vertices is set,
	// or when both are.
	ErrEmptyBoundary = errors.New("config: boundary missing or ambiguous")
)

// Format selects the decoder.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// File is the on-disk layout.
type File struct {
	Boundary [][4]float64 `json:"boundary,omitempty" yaml:"boundary,omitempty"`
	Vertices [][2]float64 `json:"vertices,omitempty" yaml:"vertices,omitempty"`
	Solver   SolverSection `json:"solver" yaml:"solver"`
	Policy   PolicySection `json:"policy" yaml:"policy"`
}

// SolverSection overlays escape.Options.
type SolverSection struct {
	Seed          *int64   `json:"seed,omitempty" yaml:"seed,omitempty"`
	Workers       *int     `json:"workers,omitempty" yaml:"workers,omitempty"`
	MaxChange     *float64 `json:"max_change,omitempty" yaml:"max_change,omitempty"`
	MutationBound *float64 `json:"mutation_bound,omitempty" yaml:"mutation_bound,omitempty"`
	RoundingEps   *float64 `json:"rounding_eps,omitempty" yaml:"rounding_eps,omitempty"`
	CloseTol      *float64 `json:"close_tol,omitempty" yaml:"close_tol,omitempty"`

	// walker
	Steps         *int     `json:"steps,omitempty" yaml:"steps,omitempty"`
	SegmentLength *float64 `json:"segment_length,omitempty" yaml:"segment_length,omitempty"`

	// fitness
	HeadingCount *int     `json:"heading_count,omitempty" yaml:"heading_count,omitempty"`
	Margin       *float64 `json:"margin,omitempty" yaml:"margin,omitempty"`

	// region
	RaycastCount      *int     `json:"raycast_count,omitempty" yaml:"raycast_count,omitempty"`
	LineSampleDensity *int     `json:"line_sample_density,omitempty" yaml:"line_sample_density,omitempty"`
	JitterEps         *float64 `json:"jitter_eps,omitempty" yaml:"jitter_eps,omitempty"`
	BulkCount         *int     `json:"bulk_count,omitempty" yaml:"bulk_count,omitempty"`
	MaxAttempts       *int     `json:"max_attempts,omitempty" yaml:"max_attempts,omitempty"`
}

// PolicySection overlays runner.Policy.
type PolicySection struct {
	Window   *int `json:"window,omitempty" yaml:"window,omitempty"`
	MaxSteps *int `json:"max_steps,omitempty" yaml:"max_steps,omitempty"`
}
