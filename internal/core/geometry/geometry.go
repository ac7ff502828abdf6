// Package geometry holds the integer polygon primitives the crane engine uses
// for collision: outline generation, point containment and overlap tests.
package geometry

import "math"

// Point is a position in world units. Y grows downward.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns p translated by d.
func (p Point) Add(d Point) Point { return Point{X: p.X + d.X, Y: p.Y + d.Y} }

// Polygon is an ordered, implicitly closed path of vertices.
type Polygon []Point

// Distance computes the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(float64(b.X-a.X), float64(b.Y-a.Y))
}

// Rect is an axis-aligned bounding box with inclusive edges.
type Rect struct {
	Min, Max Point
}

// Intersects reports whether r and o share at least one point.
func (r Rect) Intersects(o Rect) bool {
	if r.Min.X > o.Max.X || o.Min.X > r.Max.X {
		return false
	}
	if r.Min.Y > o.Max.Y || o.Min.Y > r.Max.Y {
		return false
	}
	return true
}

// Bounds returns the bounding box of poly. The zero Rect is returned for an
// empty polygon.
func (poly Polygon) Bounds() Rect {
	if len(poly) == 0 {
		return Rect{}
	}
	r := Rect{Min: poly[0], Max: poly[0]}
	for _, p := range poly[1:] {
		r.Min.X = min(r.Min.X, p.X)
		r.Min.Y = min(r.Min.Y, p.Y)
		r.Max.X = max(r.Max.X, p.X)
		r.Max.Y = max(r.Max.Y, p.Y)
	}
	return r
}

// Contains runs an even-odd ray cast to the right of p.
//
// An edge counts as a crossing when p.Y lies in the half-open span between its
// endpoints' Y values and p is left of (or on) the edge at that height.
// Horizontal edges never satisfy the span test and are skipped.
func (poly Polygon) Contains(p Point) bool {
	n := len(poly)
	if n == 0 {
		return false
	}
	inside := false
	for i := 0; i < n; i++ {
		p1 := poly[i]
		p2 := poly[(i+1)%n]
		if (p1.Y >= p.Y) == (p2.Y >= p.Y) {
			continue
		}
		xCross := float64((p2.X-p1.X)*(p.Y-p1.Y))/float64(p2.Y-p1.Y) + float64(p1.X)
		if float64(p.X) <= xCross {
			inside = !inside
		}
	}
	return inside
}

// Overlaps reports whether any vertex of a lies inside b.
//
// The test is directional: a small polygon fully enclosed by a large one has
// no vertex of the large one inside it, so Overlaps(large, small) can be false
// while Overlaps(small, large) is true. Use OverlapsEither for a symmetric test.
func Overlaps(a, b Polygon) bool {
	if !a.Bounds().Intersects(b.Bounds()) {
		return false
	}
	for _, p := range a {
		if b.Contains(p) {
			return true
		}
	}
	return false
}

// OverlapsEither applies Overlaps in both directions.
func OverlapsEither(a, b Polygon) bool {
	return Overlaps(a, b) || Overlaps(b, a)
}
