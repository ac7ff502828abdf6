package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutlineSizes(t *testing.T) {
	c := Pt(100, 100)

	circle := Circle(c, 30, DefaultCircleSamples)
	require.Len(t, circle, 360)
	assert.Equal(t, Pt(130, 100), circle[0])

	tri := Triangle(c, 30)
	require.Len(t, tri, 3*31)
	assert.Equal(t, Pt(100, 70), tri[0])
	assert.Equal(t, Pt(70, 130), tri[30])
	assert.Equal(t, Pt(130, 130), tri[61])

	sq := Square(c, 30)
	require.Len(t, sq, 4*31)
	assert.Equal(t, Pt(70, 70), sq[0])
	assert.Equal(t, Pt(130, 70), sq[30])
	assert.Equal(t, Pt(130, 130), sq[61])
	assert.Equal(t, Pt(70, 130), sq[92])
}

func TestCircleDefaultSamples(t *testing.T) {
	assert.Len(t, Circle(Pt(0, 0), 10, 0), DefaultCircleSamples)
}

func TestShapesContainTheirCenter(t *testing.T) {
	centers := []Point{Pt(0, 0), Pt(700, 510), Pt(-45, 13), Pt(300, 220)}
	for _, c := range centers {
		assert.True(t, Circle(c, 30, 360).Contains(c), "circle %v", c)
		assert.True(t, Triangle(c, 30).Contains(c), "triangle %v", c)
		assert.True(t, Square(c, 30).Contains(c), "square %v", c)
	}
}

func TestContains(t *testing.T) {
	sq := Square(Pt(0, 0), 30)
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"inside", Pt(10, -10), true},
		{"far right", Pt(100, 0), false},
		{"far left", Pt(-100, 0), false},
		{"above", Pt(0, -31), false},
		{"below", Pt(0, 31), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sq.Contains(tt.p))
		})
	}

	tri := Triangle(Pt(0, 0), 30)
	assert.True(t, tri.Contains(Pt(0, 20)))
	assert.False(t, tri.Contains(Pt(-25, -20)), "outside the slanted edge")

	assert.False(t, Polygon(nil).Contains(Pt(0, 0)))
}

func TestOverlapsIsDirectional(t *testing.T) {
	large := Square(Pt(0, 0), 30)
	small := Square(Pt(0, 0), 5)

	assert.True(t, Overlaps(small, large))
	assert.False(t, Overlaps(large, small))
	assert.True(t, OverlapsEither(large, small))
}

func TestTouchingEdges(t *testing.T) {
	a := Square(Pt(0, 0), 30)
	side := Square(Pt(60, 0), 30)
	below := Square(Pt(0, 60), 30)

	// Vertices on the left or top boundary of the other square are outside.
	assert.False(t, Overlaps(a, side))
	assert.False(t, Overlaps(a, below))

	// Vertices on the right or bottom boundary are inside.
	assert.True(t, Overlaps(side, a))
	assert.True(t, Overlaps(below, a))

	assert.True(t, Overlaps(a, Square(Pt(0, 55), 30)))
}

func TestDisjointBoundsShortCircuit(t *testing.T) {
	a := Circle(Pt(0, 0), 30, 360)
	b := Circle(Pt(500, 500), 30, 360)
	assert.False(t, a.Bounds().Intersects(b.Bounds()))
	assert.False(t, OverlapsEither(a, b))
}

func TestBounds(t *testing.T) {
	r := Triangle(Pt(10, 20), 30).Bounds()
	assert.Equal(t, Rect{Min: Pt(-20, -10), Max: Pt(40, 50)}, r)
	assert.Equal(t, Rect{}, Polygon(nil).Bounds())
}

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5.0, Distance(Pt(0, 0), Pt(3, 4)), 1e-9)
	assert.Equal(t, Pt(4, 6), Pt(1, 2).Add(Pt(3, 4)))
}
