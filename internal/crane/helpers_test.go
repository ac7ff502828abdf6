package crane

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/cranesim/internal/core/events/bus"
	"github.com/zeusync/cranesim/internal/core/geometry"
)

func newTestEngine(t *testing.T, opts ...func(*Config)) *Engine {
	t.Helper()
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	e, err := New(cfg, nil, nil)
	require.NoError(t, err)
	return e
}

// place puts a resting shape directly into the world, bypassing spawn rules.
func place(e *Engine, k Kind, x, y int) int {
	e.world.Shapes = append(e.world.Shapes, Shape{
		ID:     uuid.New(),
		Kind:   k,
		Pos:    geometry.Pt(x, y),
		Weight: e.cfg.DefaultWeight(k),
	})
	return len(e.world.Shapes) - 1
}

// carry attaches the shape at idx to a hoist positioned on top of it.
func carry(e *Engine, idx int) {
	s := &e.world.Shapes[idx]
	s.Lifted = true
	e.world.Selected = idx
	e.world.CraneX, e.world.HookY = s.Pos.X, s.Pos.Y
}

func hoistAt(e *Engine, x, y int) {
	e.world.CraneX, e.world.HookY = x, y
}

type eventLog struct {
	events []bus.Event
}

func (l *eventLog) types() []string {
	out := make([]string, len(l.events))
	for i, ev := range l.events {
		out[i] = ev.Type()
	}
	return out
}

func (l *eventLog) last(eventType string) (EventData, bool) {
	for i := len(l.events) - 1; i >= 0; i-- {
		if l.events[i].Type() == eventType {
			return l.events[i].Data().(EventData), true
		}
	}
	return EventData{}, false
}

func recordEvents(t *testing.T, e *Engine) *eventLog {
	t.Helper()
	l := &eventLog{}
	_, err := e.Bus().Subscribe(bus.AllEvents, func(ev bus.Event) error {
		l.events = append(l.events, ev)
		return nil
	})
	require.NoError(t, err)
	return l
}
