package clipper

import "testing"

func TestRatCanonicalizeReduces(t *testing.T) {
	r := newRat(0, 4, 8)
	if r.n != 1 || r.d != 2 {
		t.Fatalf("newRat(0,4,8) = %+v, want n=1 d=2", r)
	}
}

func TestRatNormalizeCarries(t *testing.T) {
	r := newRat(1, 7, 4)
	if r.i != 2 || r.n != 3 || r.d != 4 {
		t.Fatalf("newRat(1,7,4) = %+v, want i=2 n=3 d=4", r)
	}

	r = newRat(1, -1, 4)
	if r.i != 0 || r.n != 3 || r.d != 4 {
		t.Fatalf("newRat(1,-1,4) = %+v, want i=0 n=3 d=4", r)
	}
}

func TestRatEq(t *testing.T) {
	a := newRat(1, 1, 2)
	b := newRat(0, 3, 2)
	if !a.eq(b) {
		t.Fatalf("%+v and %+v should be equal", a, b)
	}
}

func TestRatLessTotalOrder(t *testing.T) {
	vs := []rat{
		ratInt(-5),
		newRat(-1, 1, 3),
		ratInt(0),
		newRat(0, 1, 4),
		newRat(0, 1, 2),
		newRat(0, 3, 4),
		ratInt(1),
		newRat(1, 1, 2),
		ratInt(2),
	}
	for i := 0; i < len(vs); i++ {
		for j := 0; j < len(vs); j++ {
			want := i < j
			got := vs[i].less(vs[j])
			if got != want {
				t.Errorf("vs[%d]=%+v less vs[%d]=%+v: got %v, want %v", i, vs[i], j, vs[j], got, want)
			}
		}
	}
}

func TestRatLessAntisymmetric(t *testing.T) {
	a, b := newRat(3, 5, 7), newRat(3, 6, 11)
	if a.less(b) == b.less(a) && !a.eq(b) {
		t.Fatalf("less must be antisymmetric for distinct %+v, %+v", a, b)
	}
}

func TestHalfTiebreak(t *testing.T) {
	exact := newRat(2, 1, 2)
	if exact.less(half(2)) {
		t.Fatalf("2.5 should not be less than half(2)")
	}
	if half(2).less(exact) {
		t.Fatalf("half(2) should not be less than 2.5")
	}
}
