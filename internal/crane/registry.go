package crane

import (
	"github.com/google/uuid"

	"github.com/zeusync/cranesim/internal/core/geometry"
	"github.com/zeusync/cranesim/internal/core/observability/log"
)

// SpawnPoint is where new shapes appear and the only place they can be deleted.
func (e *Engine) SpawnPoint() geometry.Point {
	return geometry.Pt(e.cfg.Spawn.X, e.cfg.Spawn.Y)
}

// AddShape creates a shape of kind k at the spawn point and selects it. While
// another shape is lifted the selection stays with the lifted shape.
func (e *Engine) AddShape(k Kind) (Shape, error) {
	if !k.Valid() {
		return Shape{}, ErrUnknownKind
	}
	if e.world.CountKind(k) >= e.cfg.MaxPerKind {
		e.logger.Info("add rejected: population limit",
			log.Stringer("kind", k), log.Int("limit", e.cfg.MaxPerKind))
		return Shape{}, ErrPopulationLimitExceeded
	}
	spawn := e.SpawnPoint()
	window := 2 * e.cfg.ShapeSize
	for _, s := range e.world.Shapes {
		if abs(s.Pos.X-spawn.X) < window && abs(s.Pos.Y-spawn.Y) < window {
			e.logger.Info("add rejected: spawn zone occupied", log.Stringer("kind", k))
			return Shape{}, ErrSpawnZoneOccupied
		}
	}

	s := Shape{
		ID:     uuid.New(),
		Kind:   k,
		Pos:    spawn,
		Weight: e.cfg.DefaultWeight(k),
	}
	e.world.Shapes = append(e.world.Shapes, s)
	idx := len(e.world.Shapes) - 1
	if _, carrying := e.world.LiftedIndex(); !carrying {
		e.world.Selected = idx
	}
	e.logger.Debug("shape added", log.Stringer("kind", k), log.Int("index", idx), log.Stringer("id", s.ID))
	e.shapeEvent(EventShapeAdded, idx)
	return s, nil
}

// DeleteAtSpawn removes the first shape positioned exactly on the spawn point.
// A carried shape counts when the hoist is parked there.
func (e *Engine) DeleteAtSpawn() (Shape, bool) {
	spawn := e.SpawnPoint()
	for i, s := range e.world.Shapes {
		if s.Pos != spawn {
			continue
		}
		e.shapeEvent(EventShapeRemoved, i)
		e.world.Shapes = append(e.world.Shapes[:i], e.world.Shapes[i+1:]...)
		switch {
		case e.world.Selected == i:
			e.world.Selected = NoSelection
		case e.world.Selected > i:
			e.world.Selected--
		}
		e.logger.Debug("shape removed", log.Stringer("kind", s.Kind), log.Int("index", i))
		return s, true
	}
	return Shape{}, false
}

// SelectAt selects the topmost shape whose outline contains p, or clears the
// selection when none does. It is refused while a shape is lifted.
func (e *Engine) SelectAt(p geometry.Point) (int, error) {
	if _, carrying := e.world.LiftedIndex(); carrying {
		return e.world.Selected, ErrSelectionLocked
	}
	e.world.Selected = NoSelection
	for i := len(e.world.Shapes) - 1; i >= 0; i-- {
		if e.Outline(e.world.Shapes[i]).Contains(p) {
			e.world.Selected = i
			e.shapeEvent(EventShapeSelected, i)
			break
		}
	}
	return e.world.Selected, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
