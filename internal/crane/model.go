package crane

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/zeusync/cranesim/internal/core/geometry"
)

// Kind is the fixed geometry class of a shape.
type Kind uint8

const (
	Circle Kind = iota
	Triangle
	Square
	kindCount
)

// Kinds lists every shape kind in declaration order.
func Kinds() []Kind { return []Kind{Circle, Triangle, Square} }

func (k Kind) Valid() bool { return k < kindCount }

func (k Kind) String() string {
	switch k {
	case Circle:
		return "circle"
	case Triangle:
		return "triangle"
	case Square:
		return "square"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// LiftFilter restricts which kinds the hoist may pick up.
type LiftFilter uint8

const (
	FilterAny LiftFilter = iota
	FilterCircleOnly
	FilterTriangleOnly
	FilterSquareOnly
	filterCount
)

func (f LiftFilter) Valid() bool { return f < filterCount }

// Allows reports whether a shape of kind k is eligible under f.
func (f LiftFilter) Allows(k Kind) bool {
	switch f {
	case FilterAny:
		return true
	case FilterCircleOnly:
		return k == Circle
	case FilterTriangleOnly:
		return k == Triangle
	case FilterSquareOnly:
		return k == Square
	default:
		return false
	}
}

func (f LiftFilter) String() string {
	switch f {
	case FilterAny:
		return "any"
	case FilterCircleOnly:
		return "circle"
	case FilterTriangleOnly:
		return "triangle"
	case FilterSquareOnly:
		return "square"
	default:
		return fmt.Sprintf("filter(%d)", uint8(f))
	}
}

// ParseLiftFilter accepts "any" or a kind name.
func ParseLiftFilter(s string) (LiftFilter, error) {
	for f := FilterAny; f < filterCount; f++ {
		if strings.EqualFold(s, f.String()) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFilter, s)
}

// Direction is one hoist movement step.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

func ParseDirection(s string) (Direction, error) {
	for d := Up; d <= Right; d++ {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// Shape is one rigid body. Pos is the center of its outline.
type Shape struct {
	ID     uuid.UUID
	Kind   Kind
	Pos    geometry.Point
	Lifted bool
	Weight float64
}

// NoSelection marks an empty World.Selected.
const NoSelection = -1

// World is the whole simulation state. Shape order is significant: gravity
// processes shapes in this order and lift ties go to the lowest index.
type World struct {
	Shapes   []Shape
	CraneX   int
	HookY    int
	Filter   LiftFilter
	Capacity float64
	Selected int
}

// Clone returns a copy that shares nothing with w.
func (w World) Clone() World {
	out := w
	out.Shapes = append([]Shape(nil), w.Shapes...)
	return out
}

// Hoist returns the hoist position.
func (w World) Hoist() geometry.Point { return geometry.Pt(w.CraneX, w.HookY) }

// LiftedIndex returns the index of the carried shape.
func (w World) LiftedIndex() (int, bool) {
	if w.Selected < 0 || w.Selected >= len(w.Shapes) {
		return NoSelection, false
	}
	if !w.Shapes[w.Selected].Lifted {
		return NoSelection, false
	}
	return w.Selected, true
}

// SelectedShape returns the selected shape, lifted or not.
func (w World) SelectedShape() (Shape, bool) {
	if w.Selected < 0 || w.Selected >= len(w.Shapes) {
		return Shape{}, false
	}
	return w.Shapes[w.Selected], true
}

// CountKind returns how many shapes of kind k exist.
func (w World) CountKind(k Kind) int {
	n := 0
	for _, s := range w.Shapes {
		if s.Kind == k {
			n++
		}
	}
	return n
}
