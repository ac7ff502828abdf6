// Package crane is the crane simulator engine: shapes resting on a ground
// line, gravity, and a hoist that carries one shape at a time.
//
// An Engine exclusively owns its World. It is driven by one goroutine: an
// external tick source calls Tick, and commands issued between two ticks
// are applied in call order. Engine is not safe for concurrent use.
package crane

import (
	"github.com/zeusync/cranesim/internal/core/events/bus"
	"github.com/zeusync/cranesim/internal/core/observability/log"
	"github.com/zeusync/cranesim/internal/core/systems"
)

// Engine system names, in tick order.
const (
	SystemOverload = "overload"
	SystemGravity  = "gravity"
	SystemLiftSync = "lift-sync"
)

type Engine struct {
	cfg     Config
	world   World
	frame   uint64
	bus     bus.EventBus
	logger  log.Log
	systems *systems.Pipeline[*Engine]
}

// New validates cfg and returns an engine with an empty world. A nil bus
// creates a private one; a nil logger discards output.
func New(cfg Config, eventBus bus.EventBus, logger log.Log) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if eventBus == nil {
		eventBus = bus.New()
	}
	if logger == nil {
		logger = log.NewNop()
	}
	e := &Engine{
		cfg:    cfg,
		bus:    eventBus,
		logger: logger.Named("crane"),
		world: World{
			CraneX:   cfg.Crane.StartX,
			HookY:    cfg.Crane.StartY,
			Filter:   FilterAny,
			Capacity: cfg.Capacity,
			Selected: NoSelection,
		},
	}
	e.systems = systems.NewPipeline[*Engine](
		systems.Func[*Engine]{SystemName: SystemOverload, SystemPriority: systems.PriorityHigh, Fn: (*Engine).checkOverload},
		systems.Func[*Engine]{SystemName: SystemGravity, SystemPriority: systems.PriorityNormal, Fn: (*Engine).applyGravity},
		systems.Func[*Engine]{SystemName: SystemLiftSync, SystemPriority: systems.PriorityLow, Fn: (*Engine).syncLiftedShape},
	)
	return e, nil
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// Bus returns the bus engine events are published on.
func (e *Engine) Bus() bus.EventBus { return e.bus }

// Frame returns the number of completed ticks.
func (e *Engine) Frame() uint64 { return e.frame }

// Tick advances the simulation one frame: the overload check, gravity, then
// re-attaching the carried shape to the hoist. An automatic drop is reported
// as a *CapacityError; the tick still completes.
func (e *Engine) Tick() error {
	e.frame++
	return e.systems.Update(e)
}

// SystemMetrics exposes per-system timing for diagnostics.
func (e *Engine) SystemMetrics(name string) (systems.Metrics, bool) {
	return e.systems.Metrics(name)
}

// Snapshot returns a read-only copy of the world.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{Frame: e.frame, World: e.world.Clone()}
}

// SetLiftFilter changes which kinds future lifts may pick up.
func (e *Engine) SetLiftFilter(f LiftFilter) error {
	if !f.Valid() {
		return ErrUnknownFilter
	}
	if e.world.Filter == f {
		return nil
	}
	e.world.Filter = f
	e.logger.Debug("lift filter changed", log.Stringer("filter", f))
	e.publish(EventFilterChange, EventData{Index: NoSelection})
	return nil
}

// AdjustCapacity changes the crane capacity by delta, never going below the
// capacity floor, and returns the new capacity. Lowering it below the weight
// of a carried shape drops that shape on the next tick.
func (e *Engine) AdjustCapacity(delta float64) float64 {
	next := max(e.world.Capacity+delta, e.cfg.CapacityFloor)
	if next != e.world.Capacity {
		e.world.Capacity = next
		e.logger.Debug("capacity changed", log.Float64("capacity", next))
		e.publish(EventCapacityChange, EventData{Index: NoSelection})
	}
	return e.world.Capacity
}

// RaiseCapacity adds one capacity step.
func (e *Engine) RaiseCapacity() float64 { return e.AdjustCapacity(e.cfg.CapacityStep) }

// LowerCapacity removes one capacity step, stopping at the floor.
func (e *Engine) LowerCapacity() float64 { return e.AdjustCapacity(-e.cfg.CapacityStep) }

// AdjustSelectedWeight changes the weight of the selected shape by delta.
// Without a selection it does nothing.
func (e *Engine) AdjustSelectedWeight(delta float64) error {
	s, ok := e.world.SelectedShape()
	if !ok {
		return nil
	}
	idx := e.world.Selected
	next := s.Weight + delta
	if next < e.cfg.WeightFloor {
		e.logger.Info("weight change rejected",
			log.Int("index", idx), log.Float64("weight", next), log.Float64("floor", e.cfg.WeightFloor))
		return ErrWeightBelowFloor
	}
	e.world.Shapes[idx].Weight = next
	e.shapeEvent(EventWeightChange, idx)
	return nil
}

// IncreaseSelectedWeight adds one weight step to the selected shape.
func (e *Engine) IncreaseSelectedWeight() error {
	return e.AdjustSelectedWeight(e.cfg.WeightStep)
}

// DecreaseSelectedWeight removes one weight step from the selected shape.
func (e *Engine) DecreaseSelectedWeight() error {
	return e.AdjustSelectedWeight(-e.cfg.WeightStep)
}

// SystemNames lists the per-tick systems in execution order.
func (e *Engine) SystemNames() []string {
	return e.systems.Names()
}
