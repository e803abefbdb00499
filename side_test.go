package clipper

import "testing"

func vr(x, y int64) (rat, rat) { return ratInt(x), ratInt(y) }

func TestSideBasic(t *testing.T) {
	ln := rawLine{0, 0, 10, 0}
	vx, vy := vr(5, 5)
	if got := sideRat(vx, vy, ln); got != -1 {
		t.Fatalf("point above a left-to-right line: got %d, want -1", got)
	}
	vx, vy = vr(5, -5)
	if got := sideRat(vx, vy, ln); got != 1 {
		t.Fatalf("point below a left-to-right line: got %d, want +1", got)
	}
	vx, vy = vr(5, 0)
	if got := sideRat(vx, vy, ln); got != 0 {
		t.Fatalf("point on the line: got %d, want 0", got)
	}
}

func TestSideAntisymmetricUnderReversal(t *testing.T) {
	ln := rawLine{1, 2, 9, 7}
	rev := ln.reversed()
	pts := [][2]int64{{3, 8}, {5, 1}, {0, 0}, {9, 7}}
	for _, p := range pts {
		vx, vy := vr(p[0], p[1])
		a := sideRat(vx, vy, ln)
		b := sideRat(vx, vy, rev)
		if a != -b {
			t.Errorf("side(%v, ln)=%d, side(%v, reversed)=%d; want negation", p, a, p, b)
		}
	}
}

func TestSideIntRatAgree(t *testing.T) {
	ln := rawLine{-4, 2, 6, -3}
	for x := int64(-5); x <= 5; x++ {
		for y := int64(-5); y <= 5; y++ {
			vx, vy := vr(x, y)
			want := sideInt(x, y, ln)
			got := sideRat(vx, vy, ln)
			if want != got {
				t.Fatalf("sideInt(%d,%d)=%d != sideRat=%d", x, y, want, got)
			}
		}
	}
}

func TestQuadrant(t *testing.T) {
	cases := []struct {
		dx, dy int64
		want   int
	}{
		{1, 1, 0},
		{-1, 1, 1},
		{-1, -1, 2},
		{1, -1, 3},
		{1, 0, 0},
	}
	for _, c := range cases {
		dx, dy := c.dx, c.dy
		got := quadrant(&dx, &dy)
		if got != c.want {
			t.Errorf("quadrant(%d,%d) = %d, want %d", c.dx, c.dy, got, c.want)
		}
	}
}
