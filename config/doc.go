// Package config loads solver inputs from JSON or YAML files.
//
// A file carries the boundary and optional overrides for the solver and the
// run policy. Every override is a pointer: an absent field keeps the library
// default, a present zero is passed through (and validated by escape.New).
//
//	# square.yaml
//	vertices: [[0, 0], [100, 0], [100, 100], [0, 100]]
//	solver:
//	  seed: 42
//	  steps: 80
//	policy:
//	  window: 8
//
// The boundary may be given either as edge tuples ([x1, y1, x2, y2]) under
// "boundary" or as a vertex ring under "vertices", not both.
package config
