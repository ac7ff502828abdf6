// Package script plays scripted command sequences against a crane engine.
// It stands in for the interactive front end: a scenario says which commands
// to issue after which tick, and the Driver supplies the tick source.
package script

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/cranesim/internal/crane"
)

var (
	ErrInvalidScenario = errors.New("invalid scenario")
	ErrUnknownCommand  = errors.New("unknown command")
)

// Command verbs.
const (
	CmdAdd      = "add"
	CmdDelete   = "delete"
	CmdLift     = "lift"
	CmdDrop     = "drop"
	CmdMove     = "move"
	CmdFilter   = "filter"
	CmdCapacity = "capacity"
	CmdWeight   = "weight"
	CmdSelect   = "select"

	// Single configured steps, like the +/- and W/S keys.
	CmdCapacityUp   = "capacity_up"
	CmdCapacityDown = "capacity_down"
	CmdWeightUp     = "weight_up"
	CmdWeightDown   = "weight_down"
)

// Scenario is a scripted run. Steps with Tick 0 run before the first tick;
// a step with Tick n runs right after tick n, in file order.
type Scenario struct {
	Name     string        `json:"name" yaml:"name"`
	Ticks    int           `json:"ticks" yaml:"ticks"`
	Interval time.Duration `json:"interval,omitempty" yaml:"interval,omitempty"`
	Steps    []Step        `json:"steps" yaml:"steps"`
}

// Step is one command. Only the fields its verb needs are read.
type Step struct {
	Tick      int     `json:"tick" yaml:"tick"`
	Do        string  `json:"do" yaml:"do"`
	Kind      string  `json:"kind,omitempty" yaml:"kind,omitempty"`
	Filter    string  `json:"filter,omitempty" yaml:"filter,omitempty"`
	Direction string  `json:"direction,omitempty" yaml:"direction,omitempty"`
	Delta     float64 `json:"delta,omitempty" yaml:"delta,omitempty"`
	X         int     `json:"x,omitempty" yaml:"x,omitempty"`
	Y         int     `json:"y,omitempty" yaml:"y,omitempty"`
	Repeat    int     `json:"repeat,omitempty" yaml:"repeat,omitempty"`
}

// Times is how often the step's command is issued.
func (s Step) Times() int {
	return max(s.Repeat, 1)
}

func (s Step) String() string {
	arg := ""
	switch s.Do {
	case CmdAdd:
		arg = s.Kind
	case CmdMove:
		arg = s.Direction
	case CmdFilter:
		arg = s.Filter
	case CmdCapacity, CmdWeight:
		arg = fmt.Sprintf("%+g", s.Delta)
	case CmdSelect:
		arg = fmt.Sprintf("(%d,%d)", s.X, s.Y)
	}
	out := s.Do
	if arg != "" {
		out += " " + arg
	}
	if s.Times() > 1 {
		out += fmt.Sprintf(" x%d", s.Times())
	}
	return out
}

// Load decodes and validates a YAML scenario.
func Load(r io.Reader) (*Scenario, error) {
	var sc Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// LoadFile reads a scenario from path.
func LoadFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scenario: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Validate checks tick ranges and that every step names a known verb with
// parseable arguments.
func (sc *Scenario) Validate() error {
	if sc.Ticks <= 0 {
		return fmt.Errorf("%w: ticks must be positive, got %d", ErrInvalidScenario, sc.Ticks)
	}
	if sc.Interval < 0 {
		return fmt.Errorf("%w: negative interval %s", ErrInvalidScenario, sc.Interval)
	}
	for i, st := range sc.Steps {
		if st.Tick < 0 || st.Tick > sc.Ticks {
			return fmt.Errorf("%w: step %d: tick %d outside [0, %d]", ErrInvalidScenario, i, st.Tick, sc.Ticks)
		}
		if st.Repeat < 0 {
			return fmt.Errorf("%w: step %d: negative repeat", ErrInvalidScenario, i)
		}
		if err := st.check(); err != nil {
			return fmt.Errorf("%w: step %d: %w", ErrInvalidScenario, i, err)
		}
	}
	return nil
}

func (s Step) check() error {
	var err error
	switch s.Do {
	case CmdAdd:
		_, err = crane.ParseKind(s.Kind)
	case CmdMove:
		_, err = crane.ParseDirection(s.Direction)
	case CmdFilter:
		_, err = crane.ParseLiftFilter(s.Filter)
	case CmdDelete, CmdLift, CmdDrop, CmdCapacity, CmdWeight, CmdSelect,
		CmdCapacityUp, CmdCapacityDown, CmdWeightUp, CmdWeightDown:
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownCommand, s.Do)
	}
	return err
}

// schedule groups steps by tick keeping file order within a tick.
func (sc *Scenario) schedule() map[int][]Step {
	out := make(map[int][]Step)
	for _, st := range sc.Steps {
		out[st.Tick] = append(out[st.Tick], st)
	}
	return out
}
