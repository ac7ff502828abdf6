package script

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	sc, err := LoadFile("testdata/relocate.yaml")
	require.NoError(t, err)

	assert.Equal(t, "relocate-circle", sc.Name)
	assert.Equal(t, 20, sc.Ticks)
	assert.Zero(t, sc.Interval)
	require.Len(t, sc.Steps, 10)
	assert.Equal(t, Step{Tick: 1, Do: CmdMove, Direction: "right", Repeat: 40}, sc.Steps[1])
	assert.Equal(t, -3.0, sc.Steps[8].Delta)

	plan := sc.schedule()
	require.Len(t, plan[1], 2)
	assert.Equal(t, "right", plan[1][0].Direction)
	assert.Equal(t, "down", plan[1][1].Direction)
	assert.Empty(t, plan[6])
}

func TestLoadInterval(t *testing.T) {
	sc, err := Load(strings.NewReader("ticks: 3\ninterval: 30ms\n"))
	require.NoError(t, err)
	assert.Equal(t, 30*time.Millisecond, sc.Interval)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no ticks", "ticks: 0\n"},
		{"tick out of range", "ticks: 2\nsteps:\n  - {tick: 3, do: lift}\n"},
		{"unknown verb", "ticks: 2\nsteps:\n  - {tick: 1, do: jump}\n"},
		{"bad kind", "ticks: 2\nsteps:\n  - {tick: 1, do: add, kind: hexagon}\n"},
		{"bad direction", "ticks: 2\nsteps:\n  - {tick: 1, do: move, direction: north}\n"},
		{"bad filter", "ticks: 2\nsteps:\n  - {tick: 1, do: filter, filter: heavy}\n"},
		{"negative repeat", "ticks: 2\nsteps:\n  - {tick: 1, do: lift, repeat: -1}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, ErrInvalidScenario)
		})
	}

	_, err := Load(strings.NewReader("ticks: 2\nspeed: 3\n"))
	assert.Error(t, err, "unknown keys are rejected")
}

func TestStepString(t *testing.T) {
	assert.Equal(t, "move left x20", Step{Do: CmdMove, Direction: "left", Repeat: 20}.String())
	assert.Equal(t, "capacity -7", Step{Do: CmdCapacity, Delta: -7}.String())
	assert.Equal(t, "select (10,20)", Step{Do: CmdSelect, X: 10, Y: 20}.String())
	assert.Equal(t, "lift", Step{Do: CmdLift}.String())
	assert.Equal(t, "weight_down x3", Step{Do: CmdWeightDown, Repeat: 3}.String())
}

func TestStepVerbsValidate(t *testing.T) {
	sc, err := Load(strings.NewReader("ticks: 1\nsteps:\n  - {tick: 1, do: capacity_up}\n  - {tick: 1, do: weight_down, repeat: 2}\n"))
	require.NoError(t, err)
	assert.Len(t, sc.Steps, 2)
}

func TestShippedScenariosLoad(t *testing.T) {
	sc, err := LoadFile("../../scenarios/demo.yaml")
	require.NoError(t, err)
	assert.Equal(t, "demo", sc.Name)
	assert.NotEmpty(t, sc.Steps)
}
