package clipper

import "sort"

// pin is an integer-grid vertex inserted into a snapped edge to bend it
// around a grid point it would otherwise pass on the wrong side of.
type pin struct {
	v     *vertex
	above bool
}

// pinSet accumulates the pins discovered for one snap-set edge, plus its
// own endpoints (added unconditionally so every edge always has at least
// two entries to route through).
type pinSet struct {
	from *vertex
	pins []pin
}

func (e *edge) addPin(p *vertex, above bool) {
	assert(p.x.n == 0 && p.y.n == 0, "addPin: pin coordinate not integer")
	if e.pins == nil {
		e.pins = &pinSet{from: e.from}
	}
	e.pins.pins = append(e.pins.pins, pin{v: p, above: above})
}

func (v *vertex) distSq(o *vertex) int64 {
	dx := o.x.intPart() - v.x.intPart()
	dy := o.y.intPart() - v.y.intPart()
	return dx*dx + dy*dy
}

// snapCoord rounds a rational coordinate to the nearest integer,
// breaking exact ties upward (spec.md §4.6 phase 1).
func snapCoord(v rat) rat {
	if v.n == 0 {
		return v
	}
	if !v.less(half(v.i)) {
		v.i++
	}
	v.n = 0
	v.d = 1
	return v
}

// snap rounds (x, y) to the integer grid and inserts the result into the
// secondary snap-set vertex collection, distinct from the primary set so
// an edge between two already-snapped endpoints can't be silently
// combined with one still awaiting snap-rounding.
func (s *Session) snap(x, y rat) *vertex {
	return s.snapSet.find(snapCoord(x), snapCoord(y))
}

// extractToSnapSet is phase 1 of stable snap-rounding: force every kept
// edge's winding to a signed unit contribution (so cancelling edges can
// be detected once rebuilt via goesTo's summation), compute its snapped
// endpoints, and move it into the snap set unless it was integer-valued
// already.
func (s *Session) extractToSnapSet() {
	for _, v := range s.vs.items {
		for _, e := range v.above {
			assert(e.keep, "extractToSnapSet: non-kept edge survived cull")

			w := wind{a: 1}
			if e.sense {
				w = wind{a: -1}
			}
			e.wind = w

			p := s.snap(e.from.x, e.from.y)
			q := s.snap(e.to.x, e.to.y)

			if e.from.x.n == 0 && e.from.y.n == 0 && e.to.x.n == 0 && e.to.y.n == 0 {
				continue
			}

			p.goesTo(q, e.raw, e.wind, e)
			removeEdge(e)
		}
	}
}

// hitTest checks vertex v (already on the integer grid) against every
// currently open snapped edge: if v lies on the raw line exactly, or on
// opposite sides of the raw and snapped versions of the edge, v deflects
// that edge and becomes one of its pins.
func (s *Session) hitTest(v *vertex) {
	for p := range s.snapOpen {
		if !newRng(p.from.x, p.to.x).overlaps(newRng(v.x, v.x)) {
			continue
		}

		snapped := rawLine{
			p.from.x.intPart(), p.from.y.intPart(),
			p.to.x.intPart(), p.to.y.intPart(),
		}
		a := sideOfLine(v, snapped)
		b := sideOfLine(v, p.raw)

		if b == 0 || a*b < 0 {
			p.addPin(s.vs.find(v.x, v.y), b <= 0)
		}
	}
}

// discoverPins is phase 2: sweep the snap set in order, opening each
// edge at its 'from' and closing it at its 'to', hit-testing every
// visited vertex against the edges currently open.
func (s *Session) discoverPins() {
	s.snapOpen = map[*edge]struct{}{}

	for _, v := range s.snapSet.items {
		for _, e := range v.above {
			e.addPin(s.vs.find(v.x, v.y), true)
			delete(s.snapOpen, e)
		}

		s.hitTest(v)

		for _, e := range v.below {
			e.addPin(s.vs.find(v.x, v.y), true)
			s.snapOpen[e] = struct{}{}
		}
	}

	assert(len(s.snapOpen) == 0, "discoverPins: edges still open after snap sweep")
}

// snapToPins is phase 3: reroute e through its accumulated pins in the
// order that keeps the path on the correct side of the original snapped
// line, per spec.md §4.6's monotone-stack trim.
func (e *edge) snapToPins() {
	if e.pins == nil {
		return
	}

	from := e.pins.from
	sorted := make([]pin, len(e.pins.pins))
	copy(sorted, e.pins.pins)
	sort.SliceStable(sorted, func(i, j int) bool {
		return from.distSq(sorted[i].v) < from.distSq(sorted[j].v)
	})

	var pinA, pinB pin
	var stack []pin
	count := 0

	for _, it := range sorted {
		for count >= 2 {
			ln := rawLine{
				pinB.v.x.intPart(), pinB.v.y.intPart(),
				pinA.v.x.intPart(), pinA.v.y.intPart(),
			}
			a := sideOfLine(it.v, ln)
			if a == 0 || (a < 0) == it.above {
				break
			}
			pinA = pinB
			if len(stack) > 0 {
				pinB = stack[len(stack)-1]
				stack = stack[:len(stack)-1]
			}
			count--
		}

		if count >= 2 {
			stack = append(stack, pinB)
		}
		pinB = pinA
		pinA = it
		count++
	}

	for count >= 2 {
		newE := pinB.v.goesTo(pinA.v, e.raw, e.wind, e)
		pinA = pinB
		if newE.wind.isZero() {
			removeEdge(newE)
		}
		if len(stack) > 0 {
			pinB = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		}
		count--
	}
}

// stableSnapRound runs all three snap-rounding phases in sequence,
// leaving the primary vertex set holding an all-integer arrangement.
func (s *Session) stableSnapRound() {
	s.extractToSnapSet()
	s.discoverPins()

	for _, v := range s.snapSet.items {
		for _, e := range v.above {
			e.snapToPins()
			removeEdge(e)
		}
	}
}
