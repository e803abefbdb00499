package clipper

// walklist classifies the AEL after dot has been fully swept in
// (spec.md §4.4): walking left to right, accumulating winding, marking
// each edge as kept and orienting its sense wherever the accumulated
// winding's insideness toggles.
func (s *Session) walklist() {
	w := wind{}

	for _, e := range s.ael.items {
		assert(e.active, "walklist: AEL member not active")

		next := w.add(e.wind)

		if e.checked {
			assert(next == e.checkedWind, "walklist: winding mismatch on re-check")
			w = next
			continue
		}

		before := w.isInside(s.rule)
		after := next.isInside(s.rule)

		if before != after {
			e.keep = true
			e.sense = after
		} else {
			e.keep = false
		}
		e.checked = true
		e.checkedWind = next

		w = next
	}

	assert(w.isZero(), "walklist: arrangement did not close")
}

// cull removes every edge the classifier marked for discard.
func (s *Session) cull() {
	for _, v := range s.vs.items {
		for _, e := range v.below {
			if !e.keep {
				removeEdge(e)
			}
		}
	}
}

// fold coalesces a vertex with exactly one incoming and one outgoing
// edge when both descend from the same raw line and agree on sense -
// spec.md §4.5. This collapses runs of collinear sub-edges that only
// exist because of a split at a vertex that isn't itself part of the
// output.
func (s *Session) fold() {
	for _, v := range s.vs.items {
		if len(v.above) != 1 || len(v.below) != 1 {
			continue
		}
		var a, b *edge
		for _, e := range v.above {
			a = e
		}
		for _, e := range v.below {
			b = e
		}
		if a.raw == b.raw && a.sense == b.sense {
			a.from.goesTo(b.to, a.raw, a.wind, a)
			removeEdge(a)
			removeEdge(b)
		}
	}
}
