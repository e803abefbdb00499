package clipper

// collisionKind distinguishes the two ways an AEL insertion attempt can
// fail: the new edge is exactly collinear with (and overlapping) an
// existing one, or it properly crosses one.
type collisionKind int

const (
	collisionSplit collisionKind = iota
	collisionIntersect
)

// collision is returned by ael.insert in place of the teacher's thrown
// exception (spec.md §9's redesign flag): the comparator detected that p
// and q can't be ordered without first splitting one or both of them at
// v (collisionSplit), or without computing a fresh intersection vertex
// between them (collisionIntersect, v is nil).
type collision struct {
	kind collisionKind
	p, q *edge
	v    *vertex
}

// ael is the active edge list: the edges currently crossed by the sweep
// line, kept sorted left to right. See SPEC_FULL.md §4.x for why this is
// a binary-searched slice rather than a balanced tree.
type ael struct {
	items []*edge
}

func (a *ael) len() int { return len(a.items) }

// insert attempts to place e into the ordered list. On success it
// returns (nil) and e.active becomes true. On collision it returns the
// collision and leaves the list exactly as it was - the caller is
// responsible for resolving the collision and retrying.
func (a *ael) insert(e *edge) *collision {
	if e.active {
		return nil
	}

	lo, hi := 0, len(a.items)
	for lo < hi {
		mid := (lo + hi) / 2
		order, coll := cmp(e, a.items[mid])
		if coll != nil {
			return coll
		}
		if order < 0 {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	a.items = append(a.items, nil)
	copy(a.items[lo+1:], a.items[lo:])
	a.items[lo] = e
	e.active = true
	for i := lo; i < len(a.items); i++ {
		a.items[i].aelPos = i
	}
	return nil
}

// removeAt removes the edge currently at position pos.
func (a *ael) removeAt(pos int) {
	e := a.items[pos]
	e.active = false
	copy(a.items[pos:], a.items[pos+1:])
	a.items = a.items[:len(a.items)-1]
	for i := pos; i < len(a.items); i++ {
		a.items[i].aelPos = i
	}
}

func (a *ael) remove(e *edge) {
	if !e.active {
		return
	}
	a.removeAt(e.aelPos)
}

// cmp orders two distinct active (or about-to-be-active) edges left to
// right. It either returns a strict order (-1: p before q, +1: q before
// p) or a collision describing why no order can be given yet. See
// spec.md §4.3.1.
func cmp(p, q *edge) (int, *collision) {
	if p == q {
		return 0, nil
	}

	if !newRng(p.from.x, p.to.x).overlaps(newRng(q.from.x, q.to.x)) {
		switch {
		case p.from.x.less(q.from.x):
			return -1, nil
		case q.from.x.less(p.from.x):
			return 1, nil
		default:
			return 0, nil
		}
	}

	if p.from == q.from {
		if side(q.to, p) != 0 {
			if angleLess(q, p) {
				return -1, nil
			}
			return 1, nil
		}
		// same top point, collinear, not identical: split the one
		// whose 'to' comes first.
		if vertexLess(p.to, q.to) {
			return 0, &collision{kind: collisionSplit, p: q, q: p, v: p.to}
		}
		return 0, &collision{kind: collisionSplit, p: p, q: q, v: q.to}
	}

	if p.to == q.to {
		if side(q.from, p) != 0 {
			if angleLess(p, q) {
				return -1, nil
			}
			return 1, nil
		}
		if vertexLess(p.from, q.from) {
			return 0, &collision{kind: collisionSplit, p: p, q: q, v: q.from}
		}
		return 0, &collision{kind: collisionSplit, p: q, q: p, v: p.from}
	}

	a := side(p.from, q)
	b := side(p.to, q)
	if a*b > 0 {
		if a < 0 {
			return -1, nil
		}
		return 1, nil
	}

	c := side(q.from, p)
	d := side(q.to, p)
	if c*d > 0 {
		if c > 0 {
			return -1, nil
		}
		return 1, nil
	}

	if a == 0 && b == 0 {
		// collinear and overlapping: split one edge at the other's
		// earlier endpoint, catch the rest next time around.
		if vertexLess(p.from, q.from) {
			return 0, &collision{kind: collisionSplit, p: p, q: q, v: q.from}
		}
		return 0, &collision{kind: collisionSplit, p: q, q: p, v: p.from}
	}

	return 0, &collision{kind: collisionIntersect, p: p, q: q}
}
