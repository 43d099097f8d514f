package cloth

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Integrator selects the time-stepping scheme used to advance free particles.
type Integrator uint8

const (
	// IntegratorVerlet is position Verlet. Velocity is implied by the position history and drag is
	// applied as damping of the position delta.
	IntegratorVerlet Integrator = iota
	// IntegratorLeapfrog is leapfrog velocity Verlet with drag applied as a true force.
	IntegratorLeapfrog
)

func (i Integrator) String() string {
	switch i {
	case IntegratorVerlet:
		return "verlet"
	case IntegratorLeapfrog:
		return "leapfrog"
	}
	return "unknown"
}

// Stiffness holds the spring coefficient for each constraint kind.
type Stiffness struct {
	Structural float64
	Shear      float64
	Bending    float64
}

// Of returns the stiffness for the given kind.
func (s Stiffness) Of(k Kind) float64 {
	switch k {
	case KindShear:
		return s.Shear
	case KindBending:
		return s.Bending
	}
	return s.Structural
}

// Pin is a grid coordinate of a particle to lock in addition to the corners.
type Pin struct {
	Column, Row int
}

// Config describes a cloth to build.
type Config struct {
	Columns, Rows int
	Spacing       float64
	Origin        mgl64.Vec3

	ParticleMass    float64
	DragCoefficient float64
	Gravity         mgl64.Vec3

	// Iterations is the number of relaxation passes made per step.
	Iterations int
	// RelaxationStiffness scales every relaxation correction. 1 projects each constraint fully onto
	// its relaxed length; smaller values converge over several iterations.
	RelaxationStiffness float64

	Integrator Integrator
	Stiffness  Stiffness
	Pins       []Pin

	// Debugf receives construction diagnostics for callers that want them.
	Debugf func(format string, args ...any)
}

// DefaultConfig returns the configuration of a columns x rows cloth using the default spacing,
// mass, gravity and stiffness.
func DefaultConfig(columns, rows int) Config {
	return Config{
		Columns:             columns,
		Rows:                rows,
		Spacing:             DefaultSpacing,
		Origin:              DefaultOrigin,
		ParticleMass:        DefaultParticleMass,
		Gravity:             DefaultGravity,
		Iterations:          DefaultIterations,
		RelaxationStiffness: 1,
		Integrator:          IntegratorVerlet,
		Stiffness: Stiffness{
			Structural: StructuralStiffness,
			Shear:      ShearStiffness,
			Bending:    BendingStiffness,
		},
	}
}

// Validate checks that the configuration describes a cloth that can be built.
func (cfg Config) Validate() error {
	if cfg.Columns < 2 || cfg.Rows < 2 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, cfg.Columns, cfg.Rows)
	}
	if !(cfg.Spacing > 0) {
		return fmt.Errorf("%w: got %g", ErrInvalidSpacing, cfg.Spacing)
	}
	if !(cfg.ParticleMass >= MinParticleMass) {
		return fmt.Errorf("%w: got %g", ErrInvalidMass, cfg.ParticleMass)
	}
	if !(cfg.DragCoefficient >= 0) {
		return fmt.Errorf("%w: got %g", ErrInvalidDrag, cfg.DragCoefficient)
	}
	if cfg.Iterations < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidIterations, cfg.Iterations)
	}
	if !(cfg.RelaxationStiffness > 0 && cfg.RelaxationStiffness <= 1) {
		return fmt.Errorf("%w: got %g", ErrInvalidRelaxation, cfg.RelaxationStiffness)
	}
	for _, k := range Kinds {
		if !(cfg.Stiffness.Of(k) >= 0) {
			return fmt.Errorf("%w: %s stiffness is %g", ErrInvalidStiffness, k, cfg.Stiffness.Of(k))
		}
	}
	for _, pin := range cfg.Pins {
		if pin.Column < 0 || pin.Column >= cfg.Columns || pin.Row < 0 || pin.Row >= cfg.Rows {
			return fmt.Errorf("%w: (%d, %d) in a %dx%d grid", ErrPinOutOfRange, pin.Column, pin.Row, cfg.Columns, cfg.Rows)
		}
	}
	return nil
}

func (cfg Config) debugf(format string, args ...any) {
	if cfg.Debugf != nil {
		cfg.Debugf(format, args...)
	}
}
