package clipper

import (
	"fmt"
	"io"
)

// Session holds the state of one flatten operation: the two input
// shapes' edges, the arrangement built from them, and (after Flatten)
// the resulting polygons. A Session is used once - Reset starts a fresh
// one with the same rule - and is not safe for concurrent use, though
// independent Sessions share no state and can run on separate
// goroutines (spec.md §5).
type Session struct {
	rule Rule

	// Debug turns on diagnostic logging of the sweep via debugf. Also
	// defaulted on by the POLYCLIP_DEBUG environment variable.
	Debug bool

	vs      vertexSet
	snapSet vertexSet

	ael  ael
	dot  *vertex
	todo []*edge

	snapOpen map[*edge]struct{}

	result    []Polygon
	flattened bool
}

// NewSession starts a session that will combine its two input shapes
// under rule once Flatten is called.
func NewSession(rule Rule) *Session {
	return &Session{rule: rule, Debug: defaultDebug}
}

// AddEdge adds one directed boundary edge of shape A (isShapeB false) or
// shape B (isShapeB true) running from (x, y) to (u, v). Edges whose
// coordinates fall outside MaxCoordinateBits, or that are zero-length,
// are silently dropped, mirroring the teacher algorithm's own
// exception-swallowing add_edge wrapper (spec.md §6, and see the Open
// Question resolution in SPEC_FULL.md about why this stays silent
// rather than returning an error).
func (s *Session) AddEdge(x, y, u, v int, isShapeB bool) {
	if !coordInRange(x) || !coordInRange(y) || !coordInRange(u) || !coordInRange(v) {
		return
	}
	if x == u && y == v {
		return
	}

	p := s.vs.find(ratInt(int64(x)), ratInt(int64(y)))
	q := s.vs.find(ratInt(int64(u)), ratInt(int64(v)))

	w := wind{a: 1}
	if isShapeB {
		w = wind{b: 1}
	}

	raw := rawLine{int64(x), int64(y), int64(u), int64(v)}
	p.goesTo(q, raw, w, nil)

	s.debugf("add edge (%d,%d)->(%d,%d) shapeB=%v", x, y, u, v, isShapeB)
}

// Flatten runs the plane sweep, classifies and culls the arrangement,
// and stable-snap-rounds the surviving edges back onto the integer
// grid. On success Result returns the combined polygons; on failure no
// partial result is exposed (spec.md §7).
func (s *Session) Flatten() (err error) {
	defer recoverInto(&err)

	s.debugf("flatten: %d vertices before sweep", s.vs.len())

	s.runSweep()
	s.cull()
	s.fold()
	s.stableSnapRound()

	s.result = s.trace()
	s.flattened = true

	s.debugf("flatten: %d polygons", len(s.result))

	return nil
}

// Result returns the polygons produced by the most recent successful
// Flatten call, or nil if Flatten hasn't been called or returned an
// error.
func (s *Session) Result() []Polygon {
	if !s.flattened {
		return nil
	}
	return s.result
}

// Reset discards all edges and intermediate state, preserving the
// session's rule and Debug setting so it can be reused for another
// flatten.
func (s *Session) Reset() {
	*s = Session{rule: s.rule, Debug: s.Debug}
}

// Verify re-checks the double-link invariant described in graph.go's
// vertex comment (every edge reachable from exactly one entry in each
// endpoint's map, with matching keys) and that no sweep state is left
// over. It's meant for tests and diagnostics, not the hot path -
// supplemented from the teacher algorithm's declared-but-unimplemented
// verify() (original_source/source/flatten_arrangement.h).
func (s *Session) Verify() (err error) {
	defer recoverInto(&err)

	for _, v := range s.vs.items {
		for to, e := range v.below {
			assert(e.from == v, "Verify: below entry keyed under wrong vertex")
			assert(e.to == to, "Verify: below value disagrees with its key")
			assert(to.above[v] == e, "Verify: above side missing matching entry")
		}
		for from, e := range v.above {
			assert(e.to == v, "Verify: above entry keyed under wrong vertex")
			assert(e.from == from, "Verify: above value disagrees with its key")
			assert(from.below[v] == e, "Verify: below side missing matching entry")
		}
	}

	assert(len(s.todo) == 0, "Verify: todo list not drained")
	assert(s.ael.len() == 0, "Verify: AEL not empty after sweep")

	return nil
}

// DumpGraph writes a line per remaining edge, for debugging a flatten
// that produced an unexpected result. Supplemented from the teacher
// algorithm's print(FILE*) (original_source/source/flatten_arrangement.h).
func (s *Session) DumpGraph(w io.Writer) {
	for _, v := range s.vs.items {
		for _, e := range v.below {
			fmt.Fprintf(w, "(%d,%d)->(%d,%d) wind=%+d,%+d keep=%v sense=%v\n",
				e.from.x.intPart(), e.from.y.intPart(),
				e.to.x.intPart(), e.to.y.intPart(),
				e.wind.a, e.wind.b, e.keep, e.sense)
		}
	}
}
