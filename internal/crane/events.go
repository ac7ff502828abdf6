package crane

import (
	"github.com/zeusync/cranesim/internal/core/events/bus"
	"github.com/zeusync/cranesim/internal/core/observability/log"
)

// EventSource is the Source of every event the engine publishes.
const EventSource = "crane"

// Event types published on the engine bus.
const (
	EventShapeAdded     = "shape.added"
	EventShapeRemoved   = "shape.removed"
	EventShapeSelected  = "shape.selected"
	EventShapeLifted    = "shape.lifted"
	EventShapeDropped   = "shape.dropped"
	EventOverCapacity   = "lift.over_capacity"
	EventOverloadDrop   = "lift.overload_drop"
	EventCraneBlocked   = "crane.blocked"
	EventCapacityChange = "capacity.changed"
	EventWeightChange   = "weight.changed"
	EventFilterChange   = "filter.changed"
)

// EventData is the payload of every engine event. Fields that do not apply
// to an event type are left zero; Index is NoSelection when no shape is involved.
type EventData struct {
	Frame    uint64
	Index    int
	Shape    Shape
	Capacity float64
	Filter   LiftFilter
	Hoist    [2]int
}

func (e *Engine) publish(eventType string, data EventData) {
	e.emit(e.newEvent(eventType, data))
}

func (e *Engine) shapeEvent(eventType string, idx int) {
	e.emit(e.shapeEventOf(eventType, idx))
}

func (e *Engine) newEvent(eventType string, data EventData) bus.Event {
	data.Frame = e.frame
	data.Capacity = e.world.Capacity
	data.Filter = e.world.Filter
	data.Hoist = [2]int{e.world.CraneX, e.world.HookY}
	return bus.NewEvent(eventType, EventSource, data, nil)
}

func (e *Engine) shapeEventOf(eventType string, idx int) bus.Event {
	data := EventData{Index: idx}
	if idx >= 0 && idx < len(e.world.Shapes) {
		data.Shape = e.world.Shapes[idx]
	}
	return e.newEvent(eventType, data)
}

// emit delivers events in order. Handler errors are logged; state is already
// committed and subscribers cannot veto it.
func (e *Engine) emit(events ...bus.Event) {
	if e.bus == nil || len(events) == 0 {
		return
	}
	var err error
	if len(events) == 1 {
		err = e.bus.Publish(events[0])
	} else {
		err = e.bus.PublishBatch(events...)
	}
	if err != nil {
		e.logger.Warn("event handler failed", log.String("event", events[0].Type()), log.Error(err))
	}
}
