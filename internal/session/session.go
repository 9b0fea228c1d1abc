// Package session holds the state machine behind cmd/escapeview: collect
// vertices, close the polygon, then advance the solver one generation per
// tick until the stopping policy fires. It has no UI dependencies.
package session

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/escapepath/escape"
	"github.com/katalvlaran/escapepath/geom"
	"github.com/katalvlaran/escapepath/runner"
)

// State is the phase of a Session.
type State int

const (
	Drawing State = iota // collecting vertices
	Solving              // stepping one generation per Tick
	Done                 // the tracker stopped the run
	Failed               // New, Prepare or Step returned an error
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Drawing:
		return "drawing"
	case Solving:
		return "solving"
	case Done:
		return "done"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

var (
	// ErrNotDrawing is returned by Close when the polygon is already closed.
	ErrNotDrawing = errors.New("session: polygon already closed")

	// ErrSelfIntersecting is returned when an edge would cross another edge.
	ErrSelfIntersecting = errors.New("session: edge crosses the polygon")
)

// Session is not safe for concurrent use; ebiten calls Update and Draw from
// one goroutine.
type Session struct {
	opts   escape.Options
	policy runner.Policy

	state    State
	vertices []geom.Point
	boundary geom.Boundary
	solver   *escape.Solver
	tracker  *runner.Tracker
	last     escape.Generation
	stepped  bool
	err      error
	bad      []geom.Segment // edges involved in the last rejected crossing
}

// New returns a Session in the Drawing state.
func New(opts escape.Options, policy runner.Policy) *Session {
	return &Session{opts: opts, policy: policy, tracker: runner.NewTracker(policy)}
}

// AddVertex appends p to the open polygon. It is ignored outside Drawing,
// and rejected when the new edge crosses an existing one; BadEdges then
// reports the offending edges.
func (s *Session) AddVertex(p geom.Point) bool {
	if s.state != Drawing {
		return false
	}
	s.bad = nil
	if n := len(s.vertices); n > 0 {
		edge := geom.Seg(s.vertices[n-1], p)
		if s.bad = s.crossings(openChain(s.vertices), edge); s.bad != nil {
			return false
		}
	}
	s.vertices = append(s.vertices, p)
	return true
}

// Undo drops the last vertex while drawing.
func (s *Session) Undo() {
	if s.state == Drawing && len(s.vertices) > 0 {
		s.vertices = s.vertices[:len(s.vertices)-1]
		s.bad = nil
	}
}

// crossings returns the edges that edge crosses at an interior point,
// followed by edge itself, or nil when there are none. Shared vertices
// report Endpoint and never count.
func (s *Session) crossings(edges []geom.Segment, edge geom.Segment) []geom.Segment {
	eps := s.opts.RoundingEps
	if eps <= 0 {
		eps = geom.DefaultRoundingEps
	}
	var bad []geom.Segment
	for _, e := range edges {
		if geom.Intersect(edge, e, eps).Kind == geom.InteriorIntersection {
			bad = append(bad, e)
		}
	}
	if bad == nil {
		return nil
	}
	return append(bad, edge)
}

// openChain returns the edges v0→v1→…→vn-1 without the closing edge.
func openChain(vs []geom.Point) []geom.Segment {
	b := geom.NewBoundary(vs...)
	if len(b) == 0 {
		return nil
	}
	return b[:len(b)-1]
}

// selfCrossings checks every edge of b against the edges before it.
func (s *Session) selfCrossings(b geom.Boundary) []geom.Segment {
	for i := 1; i < len(b); i++ {
		if bad := s.crossings(b[:i], b[i]); bad != nil {
			return bad
		}
	}
	return nil
}

// Close turns the collected vertices into a boundary and prepares a solver.
// On failure the session moves to Failed and Err reports why.
func (s *Session) Close() error {
	if s.state != Drawing {
		return ErrNotDrawing
	}
	b := geom.NewBoundary(s.vertices...)
	if n := len(b); n >= 3 {
		if s.bad = s.crossings(b[:n-1], b[n-1]); s.bad != nil {
			return fmt.Errorf("%w: closing edge crosses %d edge(s)", ErrSelfIntersecting, len(s.bad)-1)
		}
	}
	return s.start(b)
}

// Load replaces any drawing with b and starts solving it. A self-crossing b
// moves the session to Failed with ErrSelfIntersecting.
func (s *Session) Load(b geom.Boundary) error {
	s.Reset()
	s.vertices = b.Vertices()
	if s.bad = s.selfCrossings(b); s.bad != nil {
		s.boundary = b
		s.fail(fmt.Errorf("%w: %d edge(s) involved", ErrSelfIntersecting, len(s.bad)))
		return s.err
	}
	return s.start(b)
}

func (s *Session) start(b geom.Boundary) error {
	s.boundary = b
	solver, err := escape.New(b, s.opts)
	if err == nil {
		err = solver.Prepare()
	}
	if err != nil {
		s.fail(err)
		return s.err
	}
	s.solver = solver
	s.state = Solving
	return nil
}

// Tick runs one generation while Solving and reports whether it did.
func (s *Session) Tick() bool {
	if s.state != Solving {
		return false
	}
	gen, err := s.solver.Step()
	if err != nil {
		s.fail(err)
		return false
	}
	s.last, s.stepped = gen, true
	if s.tracker.Observe(gen.Distance) {
		s.state = Done
	}
	return true
}

func (s *Session) fail(err error) {
	s.state = Failed
	s.err = err
	escape.Logger().Warn("session: failed", "err", err)
}

// Reset returns to an empty Drawing state.
func (s *Session) Reset() {
	s.state = Drawing
	s.vertices = nil
	s.boundary = nil
	s.solver = nil
	s.tracker.Reset()
	s.last, s.stepped = escape.Generation{}, false
	s.err = nil
	s.bad = nil
}

// State returns the current phase.
func (s *Session) State() State { return s.state }

// Vertices returns the vertices drawn so far.
func (s *Session) Vertices() []geom.Point { return s.vertices }

// Boundary returns the closed boundary, nil while drawing.
func (s *Session) Boundary() geom.Boundary { return s.boundary }

// Last returns the most recent generation, if any.
func (s *Session) Last() (escape.Generation, bool) { return s.last, s.stepped }

// BadEdges returns the edges of the last rejected crossing, the candidate
// edge last, or nil.
func (s *Session) BadEdges() []geom.Segment { return s.bad }

// Err returns the failure that moved the session to Failed.
func (s *Session) Err() error { return s.err }

// Status is a one-line summary for the window.
func (s *Session) Status() string {
	switch s.state {
	case Drawing:
		if s.bad != nil {
			return fmt.Sprintf("drawing: %d vertices  edge rejected, it crosses the polygon  [backspace] undo", len(s.vertices))
		}
		return fmt.Sprintf("drawing: %d vertices  [click] add  [backspace] undo  [enter] solve", len(s.vertices))
	case Failed:
		return fmt.Sprintf("error: %v  [r] reset", s.err)
	}
	line := fmt.Sprintf("%s: generation %d", s.state, s.tracker.Observed())
	if s.stepped {
		line += fmt.Sprintf("  worst case %.3f", s.last.Distance)
		if !s.last.Escaped {
			line += " (no escape)"
		}
	}
	if s.state == Done {
		line += fmt.Sprintf("  stopped: %s", s.tracker.Reason())
	}
	return line + "  [r] reset"
}
