package geometry

import "math"

// DefaultCircleSamples samples a circle boundary at one degree increments.
const DefaultCircleSamples = 360

// Circle samples the boundary of a circle. Offsets are truncated toward zero
// so the outline lands on the same integer grid as the other shapes.
func Circle(center Point, radius, samples int) Polygon {
	if samples <= 0 {
		samples = DefaultCircleSamples
	}
	r := float64(radius)
	poly := make(Polygon, 0, samples)
	for i := 0; i < samples; i++ {
		angle := 2 * math.Pi * float64(i) / float64(samples)
		poly = append(poly, Point{
			X: center.X + int(r*math.Cos(angle)),
			Y: center.Y + int(r*math.Sin(angle)),
		})
	}
	return poly
}

// Triangle outlines an upward-pointing isosceles triangle inscribed in the
// 2*half square around center: top, lower-left, lower-right.
func Triangle(center Point, half int) Polygon {
	top := Point{X: center.X, Y: center.Y - half}
	left := Point{X: center.X - half, Y: center.Y + half}
	right := Point{X: center.X + half, Y: center.Y + half}
	return path(half, top, left, right, top)
}

// Square outlines the 2*half square around center, clockwise on screen
// starting at the top-left corner.
func Square(center Point, half int) Polygon {
	tl := Point{X: center.X - half, Y: center.Y - half}
	tr := Point{X: center.X + half, Y: center.Y - half}
	br := Point{X: center.X + half, Y: center.Y + half}
	bl := Point{X: center.X - half, Y: center.Y + half}
	return path(half, tl, tr, br, bl, tl)
}

// path subdivides each leg of corners into segments equal parts. Both ends of
// every leg are emitted, so shared corners appear twice.
func path(segments int, corners ...Point) Polygon {
	if segments <= 0 {
		segments = 1
	}
	poly := make(Polygon, 0, (len(corners)-1)*(segments+1))
	for c := 0; c+1 < len(corners); c++ {
		a, b := corners[c], corners[c+1]
		for i := 0; i <= segments; i++ {
			poly = append(poly, Point{
				X: a.X + (b.X-a.X)*i/segments,
				Y: a.Y + (b.Y-a.Y)*i/segments,
			})
		}
	}
	return poly
}
