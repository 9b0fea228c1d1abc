// Package walker simulates a fixed escape Path from one (start, heading)
// pair until the walker crosses the Boundary.
//
// A Path is a sequence of heading deltas (radians). At every step the walker
// turns by the next delta, advances SegmentLength along its heading, and tests
// the step segment against every boundary edge. The first edge (in boundary
// order) that reports an Interior or Endpoint contact ends the walk; the
// partial distance to the contact point is added to the distance travelled.
//
// A walk that survives all Steps steps is a capped, non-escaping outcome: its
// distance is exactly Options.Horizon().
//
// Two entry points share one algorithm:
//   - Distance — scalar distance travelled, for fitness evaluation.
//   - Trace    — pre-step waypoints plus the last point reached, for rendering.
package walker
