package clipper

// Coordinate range. The exact-arithmetic predicates in side.go compute
// determinants with cubic terms in the input coordinates; bounding inputs
// to MaxCoordinateBits signed bits keeps every intermediate product inside
// int64, so no comparison on the geometric hot path can overflow and flip
// sign.
const (
	MaxCoordinateBits = 20
	maxCoordinate     = int64(1) << MaxCoordinateBits
)

func coordInRange(v int) bool {
	x := int64(v)
	return x > -maxCoordinate && x < maxCoordinate
}
