package clipper

// dirFrom and dirTo give an edge's direction of travel in the output
// contour: sense (set by walklist, spec.md §4.4) tells which way is
// "into" the kept region, so an edge with sense set is walked to -> from.
func (e *edge) dirFrom() *vertex {
	if e.sense {
		return e.to
	}
	return e.from
}

func (e *edge) dirTo() *vertex {
	if e.sense {
		return e.from
	}
	return e.to
}

// outgoing returns the first not-yet-traced edge that leaves v in its
// direction of travel, or nil if every edge leaving v has already been
// consumed by a loop.
func outgoing(v *vertex) *edge {
	for _, e := range v.below {
		if !e.visited && !e.sense {
			return e
		}
	}
	for _, e := range v.above {
		if !e.visited && e.sense {
			return e
		}
	}
	return nil
}

func vertexPoint(v *vertex) Point {
	return Point{X: int(v.x.intPart()), Y: int(v.y.intPart())}
}

// traceLoop walks the directed cycle starting at start until it returns
// to its own start vertex, emitting one point per edge. It returns nil,
// rather than a partial polygon, if the walk runs off the end of an
// open path - the in/out-degree balance classify.go maintains means
// this should never happen on a correctly flattened graph, but a
// dangling path is a diagnostic condition, not a crash (spec.md §4.7).
func traceLoop(start *edge) Polygon {
	var poly Polygon
	startVertex := start.dirFrom()
	v := startVertex
	e := start

	for {
		assert(!e.visited, "traceLoop: edge revisited")
		e.visited = true
		poly = append(poly, vertexPoint(v))

		v = e.dirTo()
		if v == startVertex {
			return poly
		}

		next := outgoing(v)
		if next == nil {
			return nil
		}
		e = next
	}
}

// trace extracts every closed contour from the flattened graph, per
// spec.md §4.7. Each kept edge belongs to exactly one loop; a vertex's
// in-degree and out-degree in the direction-of-travel sense are always
// equal, since every surviving edge came out of walklist with its
// winding balanced.
func (s *Session) trace() []Polygon {
	var polys []Polygon

	for _, v := range s.vs.items {
		for _, e := range v.below {
			if e.visited {
				continue
			}
			if poly := traceLoop(e); poly != nil {
				polys = append(polys, poly)
			}
		}
		for _, e := range v.above {
			if e.visited {
				continue
			}
			if poly := traceLoop(e); poly != nil {
				polys = append(polys, poly)
			}
		}
	}

	return polys
}
