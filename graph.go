package clipper

// vertex is a point in the sweep, identified by its (possibly rational)
// position. Vertices are de-duplicated on insert by coordinate equality,
// so two edges sharing an endpoint always share one *vertex.
type vertex struct {
	x, y rat

	// above holds predecessors in sweep order (edges whose 'to' is this
	// vertex); below holds successors (edges whose 'from' is this
	// vertex). Every edge is reachable from exactly one entry in each
	// of its endpoints' maps.
	above edgeMap
	below edgeMap
}

type edgeMap map[*vertex]*edge

// edge is a directed arc from.from -> e.to, 'from' always above-or-left
// of 'to' in sweep order.
type edge struct {
	raw rawLine // the original, never-truncated input segment

	from, to *vertex
	wind     wind
	checkedWind wind

	keep    bool // survives cull into the result
	checked bool // walklist has already classified this edge
	active  bool // currently linked into the AEL
	sense   bool // which side is "inside"; used to orient output
	visited bool // already traced into an output polygon
	todo    bool // already queued on the sweep's todo list

	pins *pinSet // only populated during snap-round

	aelPos int // index into session.ael while active; undefined otherwise
}

func vertexLess(a, b *vertex) bool {
	return cmpYX(a.y, a.x, b.y, b.x) < 0
}

func cmpYX(ay, ax, by, bx rat) int {
	if !ay.eq(by) {
		if ay.less(by) {
			return -1
		}
		return 1
	}
	if !ax.eq(bx) {
		if ax.less(bx) {
			return -1
		}
		return 1
	}
	return 0
}

// vertexSet is the sweepline-ordered, coordinate-deduplicated vertex
// collection. It backs both the primary (possibly-rational) vertex set
// and the secondary integer snap set described in spec.md §4.6 - the two
// never share storage, which is what lets snap-rounding rebuild edges
// between snapped endpoints without colliding with not-yet-snapped ones.
type vertexSet struct {
	items []*vertex
}

// find returns the vertex at (x, y), creating it if it doesn't exist yet.
func (s *vertexSet) find(x, y rat) *vertex {
	lo, hi := 0, len(s.items)
	for lo < hi {
		mid := (lo + hi) / 2
		c := cmpYX(s.items[mid].y, s.items[mid].x, y, x)
		switch {
		case c == 0:
			return s.items[mid]
		case c < 0:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	v := &vertex{x: x, y: y, above: edgeMap{}, below: edgeMap{}}
	s.items = append(s.items, nil)
	copy(s.items[lo+1:], s.items[lo:])
	s.items[lo] = v
	return v
}

func (s *vertexSet) len() int { return len(s.items) }

// goesTo ensures a single edge exists between p and q (ordered by sweep
// order, never by call order), folding in wind as a new contribution. If
// state is non-nil, this call is producing a sub-edge via a split and
// inherits state's {checked, sense, keep} flags, XORing sense with
// whether the endpoints got flipped to restore sweep order.
func (p *vertex) goesTo(q *vertex, raw rawLine, w wind, state *edge) *edge {
	if q == p {
		return nil
	}

	from, to := p, q
	flip := false
	if vertexLess(q, p) {
		from, to = q, p
		w = wind{-w.a, -w.b}
		raw = raw.reversed()
		flip = true
	}

	e := from.below[to]
	if e == nil {
		e = &edge{raw: raw, from: from, to: to}
		from.below[to] = e
		to.above[from] = e
	}

	e.wind = e.wind.add(w)

	if state != nil {
		e.checked = state.checked
		e.sense = state.sense != flip
		e.keep = state.keep
	}

	return e
}

// unlink removes e from the maps that reference it, without freeing any
// other state - used both when discarding an edge and just before
// replacing it with sub-edges.
func unlink(e *edge) {
	delete(e.from.below, e.to)
	delete(e.to.above, e.from)
}

// removeEdge unlinks e from the graph. e must not be active or queued.
func removeEdge(e *edge) {
	unlink(e)
}

// rng is a closed numeric range, normalized so l <= r on construction.
type rng struct {
	l, r rat
}

func newRng(a, b rat) rng {
	if b.less(a) {
		return rng{b, a}
	}
	return rng{a, b}
}

func (r rng) overlaps(o rng) bool {
	if o.r.less(r.l) || r.r.less(o.l) {
		return false
	}
	return true
}
