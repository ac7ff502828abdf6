package crane

import (
	"math"

	"github.com/zeusync/cranesim/internal/core/events/bus"
	"github.com/zeusync/cranesim/internal/core/geometry"
	"github.com/zeusync/cranesim/internal/core/observability/log"
)

// HookContact is the point shapes are picked up from: the bottom of the hook.
func (e *Engine) HookContact() geometry.Point {
	return geometry.Pt(e.world.CraneX, e.world.HookY+e.cfg.HookHeight)
}

// LiftNearest lifts the nearest resting shape the lift filter allows within
// the pickup radius. Any shape already lifted is released first. A candidate
// heavier than the capacity is not lifted and a *CapacityError is returned.
// The selection is cleared whenever nothing ends up lifted. Releasing the
// previous load and the outcome are published as one batch.
func (e *Engine) LiftNearest() error {
	hook := e.HookContact()
	nearest := NoSelection
	best := math.Inf(1)
	for i, s := range e.world.Shapes {
		if s.Lifted || !e.world.Filter.Allows(s.Kind) {
			continue
		}
		d := geometry.Distance(s.Pos, hook)
		if d < best && d <= e.cfg.PickupRadius {
			best = d
			nearest = i
		}
	}

	prev, carrying := e.world.LiftedIndex()
	for i := range e.world.Shapes {
		e.world.Shapes[i].Lifted = false
	}
	var released []bus.Event
	if carrying {
		released = append(released, e.shapeEventOf(EventShapeDropped, prev))
	}

	if nearest == NoSelection {
		e.world.Selected = NoSelection
		e.logger.Debug("nothing to lift", log.Int("x", hook.X), log.Int("y", hook.Y), log.Stringer("filter", e.world.Filter))
		e.emit(released...)
		return nil
	}

	s := e.world.Shapes[nearest]
	if s.Weight > e.world.Capacity {
		e.world.Selected = NoSelection
		e.logger.Info("lift rejected: over capacity",
			log.Int("index", nearest), log.Float64("weight", s.Weight), log.Float64("capacity", e.world.Capacity))
		e.emit(append(released, e.shapeEventOf(EventOverCapacity, nearest))...)
		return &CapacityError{Index: nearest, Shape: s, Capacity: e.world.Capacity}
	}

	e.world.Shapes[nearest].Lifted = true
	e.world.Selected = nearest
	e.snapLifted()
	e.logger.Debug("shape lifted", log.Int("index", nearest), log.Stringer("kind", s.Kind))
	e.emit(append(released, e.shapeEventOf(EventShapeLifted, nearest))...)
	return nil
}

// Drop releases the carried shape where it is. It reports whether anything
// was released.
func (e *Engine) Drop() bool {
	idx, carrying := e.world.LiftedIndex()
	if !carrying {
		return false
	}
	e.world.Shapes[idx].Lifted = false
	e.shapeEvent(EventShapeDropped, idx)
	return true
}

// checkOverload drops the carried shape once it outweighs the capacity.
func (e *Engine) checkOverload() error {
	idx, carrying := e.world.LiftedIndex()
	if !carrying {
		return nil
	}
	s := e.world.Shapes[idx]
	if s.Weight <= e.world.Capacity {
		return nil
	}
	e.world.Shapes[idx].Lifted = false
	e.logger.Warn("crane overloaded, shape dropped",
		log.Int("index", idx), log.Float64("weight", s.Weight), log.Float64("capacity", e.world.Capacity))
	e.shapeEvent(EventOverloadDrop, idx)
	return &CapacityError{Index: idx, Shape: e.world.Shapes[idx], Capacity: e.world.Capacity, Dropped: true}
}
