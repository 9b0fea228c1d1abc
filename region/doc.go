// Package region decides which points lie inside a Boundary and builds the
// SampleSet of interior start points used to score escape paths.
//
// Interior Classifier:
//
//	Casts RaycastCount rays from the query point at independent random angles,
//	each long enough to leave the boundary's bounding box. Every ray counts its
//	InteriorIntersection crossings and votes "odd" or "even"; the point is
//	inside iff odd votes strictly outnumber even votes. A single
//	EndpointIntersection on any ray (the ray grazes a vertex, or starts on an
//	edge) classifies the point as outside immediately.
//
// Region Sampler:
//
//  1. Edge pass — LineSampleDensity+1 evenly spaced stations per edge, each
//     jittered by ±JitterEps along x and y; jittered copies the classifier
//     accepts are kept. This guarantees coverage right next to every edge.
//  2. Bulk pass — uniform rejection sampling in the bounding box until
//     BulkCount interior points were accepted, bounded by MaxAttempts draws.
//     Exhausting the budget returns ErrSamplingExhausted.
//
// All randomness comes from the *rand.Rand passed in; a fixed seed gives a
// reproducible SampleSet.
package region
