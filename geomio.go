package clipper

import (
	"math"

	"github.com/ctessum/geom"
)

// PolygonsToGeom converts flattened integer-grid polygons into a
// geom.MultiPolygon, each contour becoming a single-ring geom.Polygon.
// This is the only pack dependency actually wired (see DESIGN.md):
// feeding Session.Result into the rest of an application's geometry
// pipeline - simplification, projection, area/centroid queries - rather
// than requiring every caller to hand-roll its own float conversion.
func PolygonsToGeom(polys []Polygon) geom.MultiPolygon {
	mp := make(geom.MultiPolygon, len(polys))
	for i, poly := range polys {
		path := make(geom.Path, len(poly))
		for j, p := range poly {
			path[j] = geom.Point{X: float64(p.X), Y: float64(p.Y)}
		}
		mp[i] = geom.Polygon{path}
	}
	return mp
}

// EdgesFromGeom adds every ring of every polygon in mp to s as boundary
// edges of shape A or shape B, closing each ring back to its first
// point. Ring coordinates are rounded to the nearest integer - callers
// working in a coordinate system with sub-integer precision should
// scale up before calling this, since Session operates on an integer
// grid throughout (spec.md §3).
func EdgesFromGeom(s *Session, mp geom.MultiPolygon, isShapeB bool) {
	for _, poly := range mp {
		for _, ring := range poly {
			n := len(ring)
			if n < 2 {
				continue
			}
			for i := 0; i < n; i++ {
				a := ring[i]
				b := ring[(i+1)%n]
				s.AddEdge(
					int(math.Round(a.X)), int(math.Round(a.Y)),
					int(math.Round(b.X)), int(math.Round(b.Y)),
					isShapeB,
				)
			}
		}
	}
}

// GeomToPolygons converts a geom.MultiPolygon's outer rings back into
// the integer Polygon type, rounding each coordinate to the nearest
// grid point. Inner rings (holes) are dropped: Session has no notion of
// a ring nested inside another, only oppositely-wound contours (spec.md
// §4.7), so a caller round-tripping through geom.Polygon's hole
// representation should flatten holes into separate same-shape input
// rings before calling EdgesFromGeom instead.
func GeomToPolygons(mp geom.MultiPolygon) []Polygon {
	polys := make([]Polygon, 0, len(mp))
	for _, p := range mp {
		if len(p) == 0 {
			continue
		}
		ring := p[0]
		poly := make(Polygon, len(ring))
		for i, pt := range ring {
			poly[i] = Point{X: int(math.Round(pt.X)), Y: int(math.Round(pt.Y))}
		}
		polys = append(polys, poly)
	}
	return polys
}
