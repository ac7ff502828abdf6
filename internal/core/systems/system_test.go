package systems

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type trace struct{ calls []string }

func recorder(name string, prio Priority, err error) Func[*trace] {
	return Func[*trace]{
		SystemName:     name,
		SystemPriority: prio,
		Fn: func(w *trace) error {
			w.calls = append(w.calls, name)
			return err
		},
	}
}

func TestPipelineOrder(t *testing.T) {
	p := NewPipeline[*trace](
		recorder("sync", PriorityLow, nil),
		recorder("gravity", PriorityNormal, nil),
		recorder("overload", PriorityHigh, nil),
		recorder("gravity-2", PriorityNormal, nil),
	)
	assert.Equal(t, []string{"overload", "gravity", "gravity-2", "sync"}, p.Names())

	w := &trace{}
	require.NoError(t, p.Update(w))
	assert.Equal(t, p.Names(), w.calls)
}

func TestPipelineJoinsErrorsAndKeepsGoing(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")
	p := NewPipeline[*trace](recorder("a", PriorityHigh, errA), recorder("b", PriorityLow, errB))

	w := &trace{}
	err := p.Update(w)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
	assert.Equal(t, []string{"a", "b"}, w.calls)

	m, ok := p.Metrics("a")
	require.True(t, ok)
	assert.EqualValues(t, 1, m.ExecutionCount)
	assert.EqualValues(t, 1, m.ErrorCount)
	assert.ErrorIs(t, m.LastError, errA)
}

func TestPipelineDuplicates(t *testing.T) {
	p := NewPipeline[*trace](recorder("a", PriorityNormal, nil))
	assert.ErrorIs(t, p.Register(recorder("a", PriorityLow, nil)), ErrDuplicateSystem)
	assert.Panics(t, func() {
		NewPipeline[*trace](recorder("b", PriorityLow, nil), recorder("b", PriorityHigh, nil))
	})

	_, ok := p.Metrics("missing")
	assert.False(t, ok)
}

func TestAverageExecutionTime(t *testing.T) {
	assert.Zero(t, Metrics{}.AverageExecutionTime())
	m := Metrics{ExecutionCount: 4, TotalExecutionTime: 8 * time.Millisecond}
	assert.Equal(t, 2*time.Millisecond, m.AverageExecutionTime())
}
