package crane

import (
	"errors"
	"fmt"
)

var (
	ErrPopulationLimitExceeded = errors.New("population limit for shape kind reached")
	ErrSpawnZoneOccupied       = errors.New("spawn zone is occupied")
	ErrOverCapacity            = errors.New("shape is heavier than crane capacity")
	ErrMoveBlocked             = errors.New("crane move blocked by collision")
	ErrWeightBelowFloor        = errors.New("weight would drop below floor")
	ErrSelectionLocked         = errors.New("selection is locked while a shape is lifted")
	ErrUnknownKind             = errors.New("unknown shape kind")
	ErrUnknownFilter           = errors.New("unknown lift filter")
	ErrUnknownDirection        = errors.New("unknown crane direction")
	ErrInvalidConfig           = errors.New("invalid crane configuration")
)

// CapacityError reports a shape that is too heavy for the crane. Dropped is
// set when the shape was already lifted and the crane let go of it.
type CapacityError struct {
	Index    int
	Shape    Shape
	Capacity float64
	Dropped  bool
}

func (e *CapacityError) Error() string {
	verb := "cannot lift"
	if e.Dropped {
		verb = "dropped"
	}
	return fmt.Sprintf("%s %s #%d: weight %.1f kg exceeds capacity %.1f kg",
		verb, e.Shape.Kind, e.Index, e.Shape.Weight, e.Capacity)
}

func (e *CapacityError) Unwrap() error { return ErrOverCapacity }
