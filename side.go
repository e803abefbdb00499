package clipper

// rawLine is the original integer segment a sub-edge descends from. It
// never changes across splits, so every side test for a chain of
// sub-edges produced from one input edge uses the same undisplaced line -
// this is what keeps the predicate exact even after many splits.
type rawLine struct {
	x0, y0, x1, y1 int64
}

func (l rawLine) reversed() rawLine {
	return rawLine{l.x1, l.y1, l.x0, l.y0}
}

// sideInt returns -1/0/+1 for which side of the directed line (ln) the
// integer point (vx, vy) falls on. Inputs are bounded to
// MaxCoordinateBits signed bits (bounds.go), so the products below
// never overflow int64.
func sideInt(vx, vy int64, ln rawLine) int {
	a := (vy - ln.y0) * (ln.x0 - ln.x1)
	b := (vx - ln.x0) * (ln.y0 - ln.y1)
	switch {
	case a == b:
		return 0
	case a < b:
		return -1
	default:
		return 1
	}
}

// sideRat is the same predicate with a rational point, computed in
// exact rat arithmetic so collinearity is detected exactly rather than
// approximately.
func sideRat(vx, vy rat, ln rawLine) int {
	a := vy.sub(ln.y0).mul(ln.x0 - ln.x1)
	b := vx.sub(ln.x0).mul(ln.y0 - ln.y1)
	switch {
	case a.eq(b):
		return 0
	case a.less(b):
		return -1
	default:
		return 1
	}
}

// side is which side of e's raw line the vertex v lies on.
func side(v *vertex, e *edge) int {
	return sideRat(v.x, v.y, e.raw)
}

// sideOfLine is which side of ln an integer-valued vertex lies on. Callers
// must only pass vertices known to already have integer coordinates (snap
// set members and pins); otherwise it uses each coordinate's integer
// part (the floor) and ignores the fraction.
func sideOfLine(v *vertex, ln rawLine) int {
	return sideInt(v.x.intPart(), v.y.intPart(), ln)
}

// quadrant folds (dx, dy) into the first quadrant by repeated 90-degree
// rotations, returning the rotation count. Used only to order edges that
// share a 'from' vertex, where side() alone can't discriminate direction.
func quadrant(dx, dy *int64) int {
	n := 0
	for !(*dx > 0 && *dy >= 0) {
		*dx, *dy = *dy, -*dx
		n++
	}
	return n
}

// angleLess orders two edges' raw directions, as if both originated at
// the same point: by quadrant first, then by cross-product sign within
// the quadrant. Only used to break a tie between edges that share a top
// or bottom vertex and are not collinear.
func angleLess(p, q *edge) bool {
	px, py := p.raw.x1-p.raw.x0, p.raw.y1-p.raw.y0
	qx, qy := q.raw.x1-q.raw.x0, q.raw.y1-q.raw.y0

	if px == qx && py == qy {
		return false
	}

	pp := quadrant(&px, &py)
	qq := quadrant(&qx, &qy)

	if pp != qq {
		return pp < qq
	}

	// same quadrant, not equal: the intersect-or-split handler should
	// already have noticed an exactly equal angle.
	return px*qy > qx*py
}
