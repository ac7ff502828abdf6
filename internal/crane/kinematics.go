package crane

import (
	"github.com/zeusync/cranesim/internal/core/geometry"
	"github.com/zeusync/cranesim/internal/core/observability/log"
)

// MoveCrane moves the hoist one step in dir, clamped to its travel bounds.
// A carried shape moves with it; if the shape would collide with any other
// shape the whole move is rejected with ErrMoveBlocked and nothing changes.
func (e *Engine) MoveCrane(dir Direction) error {
	target, err := e.stepTarget(dir)
	if err != nil {
		return err
	}
	if target == e.world.Hoist() {
		return nil
	}

	idx, carrying := e.world.LiftedIndex()
	if carrying {
		candidate := e.world.Shapes[idx]
		candidate.Pos = target
		if e.blocked(candidate, idx, false) {
			e.logger.Debug("crane move blocked",
				log.Stringer("direction", dir), log.Int("x", target.X), log.Int("y", target.Y))
			e.shapeEvent(EventCraneBlocked, idx)
			return ErrMoveBlocked
		}
		e.world.Shapes[idx].Pos = target
	}
	e.world.CraneX, e.world.HookY = target.X, target.Y
	return nil
}

func (e *Engine) stepTarget(dir Direction) (geometry.Point, error) {
	b := e.cfg.Crane
	step := e.cfg.CraneStep
	x, y := e.world.CraneX, e.world.HookY
	switch dir {
	case Up:
		y = max(y-step, b.MinY)
	case Down:
		y = min(y+step, b.MaxY)
	case Left:
		x = max(x-step, b.MinX)
	case Right:
		x = min(x+step, b.MaxX)
	default:
		return geometry.Point{}, ErrUnknownDirection
	}
	return geometry.Pt(x, y), nil
}

// syncLiftedShape is the lift-sync system.
func (e *Engine) syncLiftedShape() error {
	e.snapLifted()
	return nil
}

// snapLifted re-attaches the carried shape to the hoist. When the hoist
// position is blocked the shape keeps its last valid position.
func (e *Engine) snapLifted() {
	idx, carrying := e.world.LiftedIndex()
	if !carrying {
		return
	}
	hoist := e.world.Hoist()
	if e.world.Shapes[idx].Pos == hoist {
		return
	}
	candidate := e.world.Shapes[idx]
	candidate.Pos = hoist
	if e.blocked(candidate, idx, false) {
		return
	}
	e.world.Shapes[idx].Pos = hoist
}
