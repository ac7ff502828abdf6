package script

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"time"

	"github.com/zeusync/cranesim/internal/core/events/bus"
	"github.com/zeusync/cranesim/internal/core/geometry"
	"github.com/zeusync/cranesim/internal/core/observability/log"
	"github.com/zeusync/cranesim/internal/core/systems"
	"github.com/zeusync/cranesim/internal/crane"
)

// Report summarises a finished run.
type Report struct {
	Ticks       int
	Commands    int
	Rejected    int
	Overloads   int
	Fingerprint uint64
	Final       crane.Snapshot

	// Events counts published engine events by type.
	Events  map[string]uint64
	Bus     bus.EventBusMetrics
	Systems []SystemStat
}

// SystemStat is the timing of one engine system over the run.
type SystemStat struct {
	Name    string
	Metrics systems.Metrics
}

// eventCounter observes the engine bus for the duration of a run.
type eventCounter struct {
	counts map[string]uint64
}

func (c *eventCounter) OnPublish(eventType string, _ bus.Event) {
	c.counts[eventType]++
}

func (c *eventCounter) OnDelivered(string, int, error, time.Duration) {}

// Driver owns the tick loop for one engine.
type Driver struct {
	engine *crane.Engine
	logger log.Log

	// OnTick, if set, sees the world after each tick's commands.
	OnTick func(crane.Snapshot)
}

func NewDriver(engine *crane.Engine, logger log.Log) *Driver {
	if logger == nil {
		logger = log.NewNop()
	}
	return &Driver{engine: engine, logger: logger.Named("driver")}
}

func (d *Driver) Engine() *crane.Engine { return d.engine }

// Run plays sc to completion or until ctx is done. Rejected commands and
// overload drops are logged and counted, never fatal.
func (d *Driver) Run(ctx context.Context, sc *Scenario) (Report, error) {
	var rep Report
	plan := sc.schedule()

	counter := &eventCounter{counts: make(map[string]uint64)}
	events := d.engine.Bus()
	events.AddObserver(counter)
	defer events.RemoveObserver(counter)

	var ticker *time.Ticker
	if sc.Interval > 0 {
		ticker = time.NewTicker(sc.Interval)
		defer ticker.Stop()
	}

	d.logger.Info("scenario started",
		log.String("name", sc.Name), log.Int("ticks", sc.Ticks), log.Duration("interval", sc.Interval))
	d.applyAll(plan[0], &rep)

	for n := 1; n <= sc.Ticks; n++ {
		if ticker != nil {
			select {
			case <-ctx.Done():
				return d.finish(rep, counter), ctx.Err()
			case <-ticker.C:
			}
		} else if err := ctx.Err(); err != nil {
			return d.finish(rep, counter), err
		}

		if err := d.engine.Tick(); err != nil {
			var capErr *crane.CapacityError
			if errors.As(err, &capErr) {
				rep.Overloads++
			}
			d.logger.Warn("tick reported", log.Int("tick", n), log.Error(err))
		}
		rep.Ticks = n
		d.applyAll(plan[n], &rep)

		if d.OnTick != nil {
			d.OnTick(d.engine.Snapshot())
		}
	}

	rep = d.finish(rep, counter)
	d.logger.Info("scenario finished",
		log.String("name", sc.Name),
		log.Int("commands", rep.Commands),
		log.Int("rejected", rep.Rejected),
		log.Int("overloads", rep.Overloads),
		log.String("fingerprint", fmt.Sprintf("%016x", rep.Fingerprint)))
	return rep, nil
}

func (d *Driver) finish(rep Report, counter *eventCounter) Report {
	rep.Final = d.engine.Snapshot()
	rep.Fingerprint = rep.Final.Fingerprint()
	rep.Events = maps.Clone(counter.counts)
	rep.Bus = d.engine.Bus().GetMetrics()
	for _, name := range d.engine.SystemNames() {
		m, _ := d.engine.SystemMetrics(name)
		rep.Systems = append(rep.Systems, SystemStat{Name: name, Metrics: m})
	}
	return rep
}

func (d *Driver) applyAll(steps []Step, rep *Report) {
	for _, st := range steps {
		for loopIdx := 0; loopIdx < st.Times(); loopIdx++ {
			rep.Commands++
			if err := Apply(d.engine, st); err != nil {
				rep.Rejected++
				d.logger.Info("command rejected",
					log.Int("tick", st.Tick), log.Stringer("step", st), log.Error(err))
			}
		}
	}
}

// Apply issues the command of one step once.
func Apply(e *crane.Engine, st Step) error {
	switch st.Do {
	case CmdAdd:
		k, err := crane.ParseKind(st.Kind)
		if err != nil {
			return err
		}
		_, err = e.AddShape(k)
		return err
	case CmdDelete:
		e.DeleteAtSpawn()
		return nil
	case CmdLift:
		return e.LiftNearest()
	case CmdDrop:
		e.Drop()
		return nil
	case CmdMove:
		dir, err := crane.ParseDirection(st.Direction)
		if err != nil {
			return err
		}
		return e.MoveCrane(dir)
	case CmdFilter:
		f, err := crane.ParseLiftFilter(st.Filter)
		if err != nil {
			return err
		}
		return e.SetLiftFilter(f)
	case CmdCapacity:
		e.AdjustCapacity(st.Delta)
		return nil
	case CmdCapacityUp:
		e.RaiseCapacity()
		return nil
	case CmdCapacityDown:
		e.LowerCapacity()
		return nil
	case CmdWeight:
		return e.AdjustSelectedWeight(st.Delta)
	case CmdWeightUp:
		return e.IncreaseSelectedWeight()
	case CmdWeightDown:
		return e.DecreaseSelectedWeight()
	case CmdSelect:
		_, err := e.SelectAt(geometry.Pt(st.X, st.Y))
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, st.Do)
	}
}
