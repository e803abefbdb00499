package clipper

import "fmt"

// Point is an integer-grid vertex of an input or output polygon.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Polygon is a single closed contour, first vertex implicitly joined to
// the last. Outer boundaries and holes share this type; orientation is
// what distinguishes them (see Session.Result).
type Polygon []Point
