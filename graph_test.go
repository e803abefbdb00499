package clipper

import "testing"

func TestVertexSetDedups(t *testing.T) {
	var vs vertexSet
	a := vs.find(ratInt(3), ratInt(4))
	b := vs.find(ratInt(3), ratInt(4))
	if a != b {
		t.Fatalf("find(3,4) twice returned different vertices")
	}
	if vs.len() != 1 {
		t.Fatalf("len = %d, want 1", vs.len())
	}
	c := vs.find(ratInt(3), ratInt(5))
	if c == a {
		t.Fatalf("distinct coordinates returned the same vertex")
	}
	if vs.len() != 2 {
		t.Fatalf("len = %d, want 2", vs.len())
	}
}

func TestVertexSetSweepOrder(t *testing.T) {
	var vs vertexSet
	vs.find(ratInt(5), ratInt(1))
	vs.find(ratInt(1), ratInt(0))
	vs.find(ratInt(9), ratInt(0))
	vs.find(ratInt(1), ratInt(1))

	for i := 1; i < vs.len(); i++ {
		if !vertexLess(vs.items[i-1], vs.items[i]) {
			t.Fatalf("items[%d]=%v not before items[%d]=%v in sweep order",
				i-1, vs.items[i-1], i, vs.items[i])
		}
	}
}

// doubleLinked asserts the invariant described on vertex in graph.go:
// every edge is reachable from exactly one entry in each endpoint's map,
// and the keys agree with the edge's own from/to fields.
func doubleLinked(t *testing.T, vs *vertexSet) {
	t.Helper()
	for _, v := range vs.items {
		for to, e := range v.below {
			if e.from != v || e.to != to {
				t.Errorf("below[%v] = %v: from/to mismatch", to, e)
			}
			if to.above[v] != e {
				t.Errorf("edge %v missing matching above entry", e)
			}
		}
		for from, e := range v.above {
			if e.to != v || e.from != from {
				t.Errorf("above[%v] = %v: from/to mismatch", from, e)
			}
			if from.below[v] != e {
				t.Errorf("edge %v missing matching below entry", e)
			}
		}
	}
}

func TestGoesToLinksBothWays(t *testing.T) {
	var vs vertexSet
	p := vs.find(ratInt(0), ratInt(0))
	q := vs.find(ratInt(10), ratInt(0))

	ln := rawLine{0, 0, 10, 0}
	e := p.goesTo(q, ln, wind{a: 1}, nil)
	if e.from != p || e.to != q {
		t.Fatalf("goesTo in sweep order should not flip endpoints")
	}
	doubleLinked(t, &vs)

	// Calling goesTo the other way round must find the same edge and
	// fold the winding in, not create a second one. The call runs
	// against sweep order, so its contribution is negated and cancels
	// the first.
	e2 := q.goesTo(p, ln.reversed(), wind{a: 1}, nil)
	if e2 != e {
		t.Fatalf("goesTo(q,p) should return the existing p->q edge")
	}
	if e.wind.a != 0 {
		t.Fatalf("wind.a = %d, want 0 after folding in the reversed contribution", e.wind.a)
	}
	doubleLinked(t, &vs)
}

func TestUnlinkRemovesBothEntries(t *testing.T) {
	var vs vertexSet
	p := vs.find(ratInt(0), ratInt(0))
	q := vs.find(ratInt(1), ratInt(1))
	e := p.goesTo(q, rawLine{0, 0, 1, 1}, wind{a: 1}, nil)

	removeEdge(e)

	if _, ok := p.below[q]; ok {
		t.Fatalf("p.below still has q after removeEdge")
	}
	if _, ok := q.above[p]; ok {
		t.Fatalf("q.above still has p after removeEdge")
	}
}
