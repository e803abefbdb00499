package clipper

// rat is an exact rational i + n/d, d > 0, 0 <= n < d, gcd(n, d) == 1 in
// canonical form. The sweep's active-edge ordering and intersection math
// run entirely in rat so no comparison ever rounds and gets the wrong
// sign; only the snap-round pass (snap.go) ever turns one of these back
// into an integer.
type rat struct {
	i, n, d int64
}

// ratInt builds the rational equal to the integer v.
func ratInt(v int64) rat {
	return rat{i: v, n: 0, d: 1}
}

// newRat builds i + n/d, normalizing and canonicalizing the fraction.
func newRat(i, n, d int64) rat {
	r := rat{i: i, n: n, d: d}
	r.normalize(true)
	return r
}

func (r rat) intPart() int64 {
	return r.i
}

// sub subtracts an integer.
func (r rat) sub(v int64) rat {
	r.i -= v
	return r
}

// mul multiplies by an integer and canonicalizes, so the result is safe
// to compare for equality.
func (r rat) mul(v int64) rat {
	r.i *= v
	r.n *= v
	r.normalize(true)
	return r
}

// mulNorm multiplies by an integer and only normalizes (carries the
// integer part, keeps d > 0) without reducing the fraction - cheaper,
// and sufficient when the result will only be compared with < or fed
// into further arithmetic rather than tested for equality.
func (r rat) mulNorm(v int64) rat {
	r.i *= v
	r.n *= v
	r.normalize(false)
	return r
}

func gcdInt64(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for a != 0 {
		a, b = b%a, a
	}
	return b
}

// normalize carries the fractional part into the integer part and fixes
// the sign of d, optionally also reducing n/d to lowest terms.
func (r *rat) normalize(canonical bool) {
	if r.n == 0 {
		r.d = 1
		return
	}
	if r.d < 0 {
		r.n = -r.n
		r.d = -r.d
	}
	r.i += r.n / r.d
	r.n %= r.d
	if r.n < 0 {
		r.n += r.d
		r.i--
	}
	if canonical {
		r.canonicalize()
	}
}

func (r *rat) canonicalize() {
	if r.n == 0 {
		r.d = 1
		return
	}
	g := gcdInt64(r.n, r.d)
	r.n /= g
	r.d /= g
}

// eq compares component-wise; both operands must be canonical.
func (r rat) eq(o rat) bool {
	return r.i == o.i && r.n == o.n && r.d == o.d
}

// less is a total order: integer part first, then a bit-race between the
// two fractions' binary expansions. This is the comparator used
// everywhere on the geometric hot path, so it is worth keeping cheap -
// cross-multiplying n/d against the other fraction would also work but
// costs a 64-bit multiply per comparison where this costs a handful of
// additions for the small fractions that arise from intersecting
// 20-bit-bounded input edges.
func (r rat) less(o rat) bool {
	if r.i != o.i {
		return r.i < o.i
	}
	if r.d == o.d {
		return r.n < o.n
	}

	na, nb := r.n, o.n
	da, db := r.d, o.d
	for {
		na += na
		nb += nb
		a := na >= da
		b := nb >= db
		if a != b {
			return b
		}
		if a {
			na -= da
			nb -= db
		}
	}
}

// half is the rational one-half, used by the snap-rounding tiebreak.
func half(i int64) rat {
	return rat{i: i, n: 1, d: 2}
}
