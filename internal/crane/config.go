package crane

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// OverlapMode selects how two outlines are tested for collision.
type OverlapMode string

const (
	// OverlapDirectional tests only the moving shape's vertices against the
	// obstacle, as the engine always has.
	OverlapDirectional OverlapMode = "directional"
	// OverlapSymmetric also tests the obstacle's vertices against the mover.
	OverlapSymmetric OverlapMode = "symmetric"
)

// Config holds every tunable of the simulation.
type Config struct {
	// ShapeSize is the half-size of every shape; circles use it as radius.
	ShapeSize     int `json:"shape_size" yaml:"shape_size"`
	CircleSamples int `json:"circle_samples" yaml:"circle_samples"`

	GroundY  int `json:"ground_y" yaml:"ground_y"`
	FallStep int `json:"fall_step" yaml:"fall_step"`

	PickupRadius float64     `json:"pickup_radius" yaml:"pickup_radius"`
	HookHeight   int         `json:"hook_height" yaml:"hook_height"`
	CraneStep    int         `json:"crane_step" yaml:"crane_step"`
	Crane        CraneConfig `json:"crane" yaml:"crane"`

	Spawn      SpawnConfig `json:"spawn" yaml:"spawn"`
	MaxPerKind int         `json:"max_per_kind" yaml:"max_per_kind"`

	Capacity      float64 `json:"capacity" yaml:"capacity"`
	CapacityFloor float64 `json:"capacity_floor" yaml:"capacity_floor"`
	CapacityStep  float64 `json:"capacity_step" yaml:"capacity_step"`

	WeightFloor float64       `json:"weight_floor" yaml:"weight_floor"`
	WeightStep  float64       `json:"weight_step" yaml:"weight_step"`
	Weights     WeightsConfig `json:"weights" yaml:"weights"`

	Overlap OverlapMode `json:"overlap" yaml:"overlap"`
}

// CraneConfig bounds the hoist travel. Y is the hook position.
type CraneConfig struct {
	MinX   int `json:"min_x" yaml:"min_x"`
	MaxX   int `json:"max_x" yaml:"max_x"`
	MinY   int `json:"min_y" yaml:"min_y"`
	MaxY   int `json:"max_y" yaml:"max_y"`
	StartX int `json:"start_x" yaml:"start_x"`
	StartY int `json:"start_y" yaml:"start_y"`
}

type SpawnConfig struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// WeightsConfig holds the default weight in kilograms of each kind.
type WeightsConfig struct {
	Circle   float64 `json:"circle" yaml:"circle"`
	Triangle float64 `json:"triangle" yaml:"triangle"`
	Square   float64 `json:"square" yaml:"square"`
}

// DefaultConfig returns the stock simulator setup: an 800x600 scene with the
// ground line at 510, spawn at the right end of the crane jib.
func DefaultConfig() Config {
	return Config{
		ShapeSize:     30,
		CircleSamples: 360,
		GroundY:       510,
		FallStep:      5,
		PickupRadius:  50,
		HookHeight:    20,
		CraneStep:     10,
		Crane: CraneConfig{
			MinX:   140,
			MaxX:   700,
			MinY:   120,
			MaxY:   510,
			StartX: 300,
			StartY: 200,
		},
		Spawn:         SpawnConfig{X: 700, Y: 510},
		MaxPerKind:    3,
		Capacity:      8.0,
		CapacityFloor: 1.0,
		CapacityStep:  1.0,
		WeightFloor:   0.5,
		WeightStep:    0.5,
		Weights: WeightsConfig{
			Circle:   5.0,
			Triangle: 7.5,
			Square:   10.0,
		},
		Overlap: OverlapDirectional,
	}
}

// LoadConfig decodes YAML on top of DefaultConfig, so a document only needs
// the keys it changes.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("decode crane config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads a YAML config from path. An empty path yields the defaults.
func LoadConfigFile(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open crane config: %w", err)
	}
	defer f.Close()
	return LoadConfig(f)
}

// Validate checks ranges and cross-field constraints.
func (c Config) Validate() error {
	invalid := func(field, format string, args ...any) error {
		return fmt.Errorf("%w: %s: %s", ErrInvalidConfig, field, fmt.Sprintf(format, args...))
	}
	switch {
	case c.ShapeSize <= 0:
		return invalid("shape_size", "must be positive, got %d", c.ShapeSize)
	case c.CircleSamples < 3:
		return invalid("circle_samples", "need at least 3, got %d", c.CircleSamples)
	case c.FallStep <= 0:
		return invalid("fall_step", "must be positive, got %d", c.FallStep)
	case c.PickupRadius < 0:
		return invalid("pickup_radius", "must not be negative, got %g", c.PickupRadius)
	case c.CraneStep <= 0:
		return invalid("crane_step", "must be positive, got %d", c.CraneStep)
	case c.Crane.MinX > c.Crane.MaxX:
		return invalid("crane", "min_x %d above max_x %d", c.Crane.MinX, c.Crane.MaxX)
	case c.Crane.MinY > c.Crane.MaxY:
		return invalid("crane", "min_y %d above max_y %d", c.Crane.MinY, c.Crane.MaxY)
	case c.Crane.StartX < c.Crane.MinX || c.Crane.StartX > c.Crane.MaxX:
		return invalid("crane.start_x", "%d outside [%d, %d]", c.Crane.StartX, c.Crane.MinX, c.Crane.MaxX)
	case c.Crane.StartY < c.Crane.MinY || c.Crane.StartY > c.Crane.MaxY:
		return invalid("crane.start_y", "%d outside [%d, %d]", c.Crane.StartY, c.Crane.MinY, c.Crane.MaxY)
	case c.MaxPerKind <= 0:
		return invalid("max_per_kind", "must be positive, got %d", c.MaxPerKind)
	case c.CapacityFloor <= 0:
		return invalid("capacity_floor", "must be positive, got %g", c.CapacityFloor)
	case c.Capacity < c.CapacityFloor:
		return invalid("capacity", "%g below capacity_floor %g", c.Capacity, c.CapacityFloor)
	case c.CapacityStep <= 0:
		return invalid("capacity_step", "must be positive, got %g", c.CapacityStep)
	case c.WeightFloor <= 0:
		return invalid("weight_floor", "must be positive, got %g", c.WeightFloor)
	case c.WeightStep <= 0:
		return invalid("weight_step", "must be positive, got %g", c.WeightStep)
	case c.Overlap != OverlapDirectional && c.Overlap != OverlapSymmetric:
		return invalid("overlap", "unknown mode %q", c.Overlap)
	}
	for _, k := range Kinds() {
		if w := c.DefaultWeight(k); w < c.WeightFloor {
			return invalid("weights."+k.String(), "%g below weight_floor %g", w, c.WeightFloor)
		}
	}
	return nil
}

// DefaultWeight returns the configured starting weight for kind.
func (c Config) DefaultWeight(k Kind) float64 {
	switch k {
	case Circle:
		return c.Weights.Circle
	case Triangle:
		return c.Weights.Triangle
	case Square:
		return c.Weights.Square
	default:
		return 0
	}
}
