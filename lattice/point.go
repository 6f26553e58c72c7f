package lattice

import "strconv"

// Point is a position on the FCC lattice. Coordinates are exact signed
// integers; the lattice has no fractional positions.
type Point struct {
	X, Y, Z int
}

// String renders the point as the decimal triple "x,y,z". This is the
// per-point serialization used in canonical forms and must not change:
// canonical strings, and therefore CIDs, depend on it byte for byte.
func (p Point) String() string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y) + "," + strconv.Itoa(p.Z)
}

// Translate returns a copy of pts with (dx, dy, dz) added to every point.
func Translate(pts []Point, dx, dy, dz int) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Point{p.X + dx, p.Y + dy, p.Z + dz}
	}
	return out
}

// Dedupe returns pts with exact duplicate points removed, preserving
// first-occurrence order. A shape's points are logically unique;
// serialize-and-sort alone does not collapse repeats, so callers that
// need set semantics must dedupe first.
func Dedupe(pts []Point) []Point {
	if len(pts) < 2 {
		return append([]Point(nil), pts...)
	}
	seen := make(map[Point]struct{}, len(pts))
	out := make([]Point, 0, len(pts))
	for _, p := range pts {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
