// Package escapepath finds a single walking path that gets you out of a
// closed region no matter where you start or which way you face.
//
// 🚀 What is escapepath?
//
//	A deterministic, seedable search over "turn by δ, walk L" instruction
//	lists, scored by their worst case:
//		• Geometry: segments, tolerant intersection, closed boundaries
//		• Region: jittered raycast inside-test and interior sampling
//		• Walker: simulate a path from one start point and heading
//		• Fitness: worst-case escape distance over samples × headings
//		• Escape: seven-member elitist population (mutate + blend)
//		• Runner: stagnation / step-cap policy with context cancellation
//
// Layout:
//
//	geom/       — Point, Segment, Intersect, Boundary
//	region/     — Classifier, Sample
//	walker/     — Path, Simulate, Trace
//	fitness/    — WorstCase
//	escape/     — Solver (New, Prepare, Step)
//	runner/     — Policy, Tracker, Run
//	config/     — JSON / YAML loader
//	render/     — Viewport, Palette, SavePNG
//	cmd/escape      — headless solver
//	cmd/escapeview  — interactive viewer
//
// Quick start:
//
//	go run ./cmd/escape -config config/testdata/square.yaml -out escape.png
package escapepath
