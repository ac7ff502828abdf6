package crane

import "github.com/zeusync/cranesim/internal/core/geometry"

// outlineFunc builds the polygon of a shape centered at c.
type outlineFunc func(c geometry.Point, cfg *Config) geometry.Polygon

// traits is indexed by Kind. Half-size and default weight live in Config.
var traits = [kindCount]struct {
	outline outlineFunc
}{
	Circle: {outline: func(c geometry.Point, cfg *Config) geometry.Polygon {
		return geometry.Circle(c, cfg.ShapeSize, cfg.CircleSamples)
	}},
	Triangle: {outline: func(c geometry.Point, cfg *Config) geometry.Polygon {
		return geometry.Triangle(c, cfg.ShapeSize)
	}},
	Square: {outline: func(c geometry.Point, cfg *Config) geometry.Polygon {
		return geometry.Square(c, cfg.ShapeSize)
	}},
}

// Outline returns the collision polygon of s.
func (e *Engine) Outline(s Shape) geometry.Polygon {
	return traits[s.Kind].outline(s.Pos, &e.cfg)
}

// overlaps tests mover against obstacle with the configured overlap mode.
func (e *Engine) overlaps(mover, obstacle geometry.Polygon) bool {
	if e.cfg.Overlap == OverlapSymmetric {
		return geometry.OverlapsEither(mover, obstacle)
	}
	return geometry.Overlaps(mover, obstacle)
}

// blocked reports whether candidate, standing in for the shape at index self,
// would collide with any other shape. Lifted obstacles are ignored when
// skipLifted is set.
func (e *Engine) blocked(candidate Shape, self int, skipLifted bool) bool {
	poly := e.Outline(candidate)
	for j, other := range e.world.Shapes {
		if j == self || (skipLifted && other.Lifted) {
			continue
		}
		if e.overlaps(poly, e.Outline(other)) {
			return true
		}
	}
	return false
}
