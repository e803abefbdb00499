package clipper

import "sort"

// push queues e for (re-)insertion into the AEL, but only if it still
// spans the current sweep point: an edge that ends at or before dot has
// nothing left to contribute. Used by split/intersect resolution, where
// e might already have missed its window (spec.md §4.3.4's precondition
// that v is at or after dot guards against that in the common path, but
// push is the single gate that enforces it for every caller).
func (s *Session) push(e *edge) {
	if e == nil {
		return
	}
	if s.dot == e.to || vertexLess(e.to, s.dot) {
		return
	}
	if e.todo {
		return
	}
	if vertexLess(s.dot, e.from) {
		return
	}
	e.checked = false
	e.todo = true
	s.todo = append([]*edge{e}, s.todo...)
}

// pushDot queues e unconditionally (used only for edges already known to
// span the current point: dot's own outgoing edges, and an edge revealed
// as a new AEL neighbour by removing edges ending at dot).
func (s *Session) pushDot(e *edge) {
	if e.todo {
		return
	}
	e.todo = true
	s.todo = append(s.todo, e)
}

// split replaces p with one or two fresh sub-edges through v, both
// inheriting p's raw line and winding, and queues them for insertion.
func (s *Session) split(p *edge, v *vertex) {
	assert(!p.active, "split: edge still active")
	assert(!p.todo, "split: edge still queued")

	if v == p.from || v == p.to {
		s.push(p.from.goesTo(p.to, p.raw, p.wind, p))
		return
	}

	assert(s.dot == v || vertexLess(s.dot, v), "split: v already swept")
	assert(vertexLess(p.from, v), "split: v not after p.from")
	assert(vertexLess(v, p.to), "split: v not before p.to")

	s.push(p.from.goesTo(v, p.raw, p.wind, p))
	s.push(v.goesTo(p.to, p.raw, p.wind, nil))
}

// intersectEdges computes the exact rational crossing of p and q's raw
// lines (spec.md §4.3.3) and splits both at it.
func (s *Session) intersectEdges(p, q *edge) {
	x1, y1 := p.raw.x0, p.raw.y0
	x2, y2 := p.raw.x1, p.raw.y1
	x3, y3 := q.raw.x0, q.raw.y0
	x4, y4 := q.raw.x1, q.raw.y1

	un := (x4-x3)*(y1-y3) - (y4-y3)*(x1-x3)
	ud := (y4-y3)*(x2-x1) - (x4-x3)*(y2-y1)

	assert(ud != 0, "intersectEdges: parallel raw lines")

	vx := newRat(x1, (x2-x1)*un, ud)
	vy := newRat(y1, (y2-y1)*un, ud)
	v := s.vs.find(vx, vy)

	s.split(p, v)
	s.split(q, v)
}

// insert attempts to place e into the AEL, resolving any collision the
// comparator reports by unlinking the colliding edges and scheduling
// their replacements, per spec.md §4.3 / §5's rollback contract.
func (s *Session) insert(e *edge) {
	assert(e != nil, "insert: nil edge")
	if e.active {
		return
	}

	coll := s.ael.insert(e)
	if coll == nil {
		return
	}

	p, q := coll.p, coll.q
	assert(e == p || e == q, "insert: collision doesn't involve inserted edge")
	assert(p != q, "insert: edge collided with itself")

	if p.active {
		s.ael.remove(p)
	}
	unlink(p)
	p.checked = false

	if q.active {
		s.ael.remove(q)
	}
	unlink(q)
	q.checked = false

	switch coll.kind {
	case collisionIntersect:
		s.intersectEdges(p, q)
	case collisionSplit:
		s.split(p, coll.v)
		s.split(q, coll.v)
	}
}

// sweepAtDot performs the per-vertex work of spec.md §4.3: unhook edges
// ending here, queue edges starting here, and drain the todo list into
// the AEL.
func (s *Session) sweepAtDot() {
	assert(len(s.todo) == 0, "sweepAtDot: todo not drained from previous dot")

	var endingPos []int
	for _, e := range s.dot.above {
		if e.active {
			endingPos = append(endingPos, e.aelPos)
		}
	}
	sort.Ints(endingPos)

	if len(endingPos) > 0 {
		ending := make([]*edge, len(endingPos))
		for i, pos := range endingPos {
			ending[i] = s.ael.items[pos]
		}
		for i := len(ending) - 1; i >= 0; i-- {
			s.ael.remove(ending[i])
		}

		// removing edges that all ended at dot may have exposed a
		// new adjacency between two AEL edges that were never
		// directly compared; pull the right-hand one out and make
		// it prove its position again.
		minPos := endingPos[0]
		if minPos < s.ael.len() {
			revealed := s.ael.items[minPos]
			s.ael.remove(revealed)
			s.pushDot(revealed)
		}
	}

	for _, e := range s.dot.below {
		assert(!e.active, "sweepAtDot: below-edge already active")
		s.pushDot(e)
	}

	for len(s.todo) > 0 {
		e := s.todo[0]
		s.todo = s.todo[1:]
		assert(e.todo, "sweepAtDot: dequeued edge not marked todo")
		e.todo = false

		if e.wind.isZero() {
			continue
		}
		s.insert(e)
	}
}

// runSweep drives the plane sweep vertex by vertex, classifying the AEL
// after each one. The vertex set can grow while this loop runs -
// intersectEdges() inserts fresh intersection vertices - but only
// ever at or after the current index, since every new vertex is at or
// after 'dot' in sweep order (spec.md §4.3.4).
func (s *Session) runSweep() {
	i := 0
	for i < s.vs.len() {
		s.dot = s.vs.items[i]
		s.sweepAtDot()
		s.walklist()
		i++
	}
}
