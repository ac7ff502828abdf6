package systems

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// System is one per-tick processor over a world of type W.
type System[W any] interface {
	Name() string
	Priority() Priority
	Update(world W) error
}

// Priority defines execution order. Higher priorities run first.
type Priority uint16

const (
	PriorityLow    Priority = 500
	PriorityNormal Priority = 600
	PriorityHigh   Priority = 1000
)

// Metrics provides runtime metrics for a system
type Metrics struct {
	ExecutionCount     uint64
	TotalExecutionTime time.Duration
	MaxExecutionTime   time.Duration
	ErrorCount         uint64
	LastError          error
}

// AverageExecutionTime is zero until the system has run once.
func (m Metrics) AverageExecutionTime() time.Duration {
	if m.ExecutionCount == 0 {
		return 0
	}
	return m.TotalExecutionTime / time.Duration(m.ExecutionCount)
}

type entry[W any] struct {
	system  System[W]
	metrics Metrics
}

// Pipeline runs registered systems in priority order. Systems with equal
// priority keep registration order. A failing system does not stop the ones
// after it; all errors are joined.
//
// Pipeline is not safe for concurrent use.
type Pipeline[W any] struct {
	entries []*entry[W]
	byName  map[string]*entry[W]
}

func NewPipeline[W any](list ...System[W]) *Pipeline[W] {
	p := &Pipeline[W]{byName: make(map[string]*entry[W])}
	for _, s := range list {
		// names are fixed by the caller; a duplicate is a programming error
		if err := p.Register(s); err != nil {
			panic(err)
		}
	}
	return p
}

// Register adds s to the pipeline.
func (p *Pipeline[W]) Register(s System[W]) error {
	if _, exists := p.byName[s.Name()]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateSystem, s.Name())
	}
	e := &entry[W]{system: s}
	p.entries = append(p.entries, e)
	p.byName[s.Name()] = e
	sort.SliceStable(p.entries, func(i, j int) bool {
		return p.entries[i].system.Priority() > p.entries[j].system.Priority()
	})
	return nil
}

// Update runs one tick of every system.
func (p *Pipeline[W]) Update(world W) error {
	var all error
	for _, e := range p.entries {
		start := time.Now()
		err := e.system.Update(world)
		elapsed := time.Since(start)

		e.metrics.ExecutionCount++
		e.metrics.TotalExecutionTime += elapsed
		e.metrics.MaxExecutionTime = max(e.metrics.MaxExecutionTime, elapsed)
		if err != nil {
			e.metrics.ErrorCount++
			e.metrics.LastError = err
			all = errors.Join(all, err)
		}
	}
	return all
}

// Names lists systems in execution order.
func (p *Pipeline[W]) Names() []string {
	out := make([]string, len(p.entries))
	for i, e := range p.entries {
		out[i] = e.system.Name()
	}
	return out
}

// Metrics returns a copy of the metrics recorded for name.
func (p *Pipeline[W]) Metrics(name string) (Metrics, bool) {
	e, ok := p.byName[name]
	if !ok {
		return Metrics{}, false
	}
	return e.metrics, true
}

// Func adapts a function into a System.
type Func[W any] struct {
	SystemName     string
	SystemPriority Priority
	Fn             func(world W) error
}

func (f Func[W]) Name() string         { return f.SystemName }
func (f Func[W]) Priority() Priority   { return f.SystemPriority }
func (f Func[W]) Update(world W) error { return f.Fn(world) }
