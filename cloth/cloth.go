package cloth

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Cloth is a rectangular grid of particles joined by structural, shear and bending constraints.
// A Cloth is not safe for concurrent use; all of its storage is allocated when it is built.
type Cloth struct {
	topology *Topology
	// particles aliases topology.Particles.
	particles []Particle

	wind    mgl64.Vec3
	drag    float64
	gravity mgl64.Vec3

	iterations          int
	relaxationStiffness float64
	integrator          Integrator

	tick uint64

	// checksumBuf is scratch space for Checksum.
	checksumBuf []byte
	// unrelaxed holds positions from before relaxation for the leapfrog velocity correction.
	unrelaxed []mgl64.Vec3

	debugf func(format string, args ...any)
}

// New builds a columns x rows cloth with the default configuration and the given drag
// coefficient.
func New(columns, rows int, dragCoefficient float64) (*Cloth, error) {
	cfg := DefaultConfig(columns, rows)
	cfg.DragCoefficient = dragCoefficient
	return NewFromConfig(cfg)
}

// NewFromConfig builds a cloth from the given configuration. The topology is generated
// immediately; an invalid configuration returns an error and no cloth.
func NewFromConfig(cfg Config) (*Cloth, error) {
	t, err := GenerateTopology(cfg)
	if err != nil {
		return nil, fmt.Errorf("build cloth: %w", err)
	}
	c := &Cloth{
		topology:            t,
		particles:           t.Particles,
		drag:                cfg.DragCoefficient,
		gravity:             cfg.Gravity,
		iterations:          cfg.Iterations,
		relaxationStiffness: cfg.RelaxationStiffness,
		integrator:          cfg.Integrator,
		checksumBuf:         make([]byte, 0, len(t.Particles)*checksumStride),
		unrelaxed:           make([]mgl64.Vec3, len(t.Particles)),
		debugf:              cfg.Debugf,
	}
	ComputeNormals(c.particles, t.Triangles)

	c.logf("built %dx%d cloth: %d particles, %d structural, %d shear, %d bending constraints, %s integrator",
		cfg.Columns, cfg.Rows, len(c.particles),
		len(t.Constraints[KindStructural]), len(t.Constraints[KindShear]), len(t.Constraints[KindBending]),
		cfg.Integrator)
	return c, nil
}

// Update advances the cloth by deltaSeconds. The step clears accelerations, recomputes normals,
// resolves constraints with the given mode, applies wind, gravity and drag, and finally
// integrates every free particle. Oversized steps are not clamped.
func (c *Cloth) Update(deltaSeconds float64, mode SolverMode) {
	ps := c.particles
	for i := range ps {
		ps[i].Accel = mgl64.Vec3{}
	}
	ComputeNormals(ps, c.topology.Triangles)

	switch mode {
	case SolverRelaxation:
		leapfrog := c.integrator == IntegratorLeapfrog
		if leapfrog {
			for i := range ps {
				c.unrelaxed[i] = ps[i].Pos
			}
		}
		for range c.iterations {
			for _, k := range Kinds {
				Relax(ps, c.topology.Constraints[k], c.relaxationStiffness)
			}
		}
		if leapfrog {
			correctVelocities(ps, c.unrelaxed, deltaSeconds)
		}
	case SolverSpring:
		for _, k := range Kinds {
			ApplySprings(ps, c.topology.Constraints[k])
		}
	}

	ApplyWind(ps, c.topology.Triangles, c.wind)

	for i := range ps {
		p := &ps[i]
		if p.Locked {
			continue
		}
		p.Accel = p.Accel.Add(c.gravity)

		switch c.integrator {
		case IntegratorLeapfrog:
			p.AddForce(p.Vel.Mul(-c.drag))
			IntegrateLeapfrog(p, deltaSeconds)
		default:
			IntegrateVerlet(p, deltaSeconds, c.drag)
		}
	}
	c.tick++
}

// correctVelocities adds the displacement made by relaxation to the velocity of every free particle.
// Leapfrog drifts with Vel, so relaxation has to be reflected there as well as in Pos.
func correctVelocities(ps []Particle, before []mgl64.Vec3, dt float64) {
	if dt <= 0 {
		return
	}
	for i := range ps {
		p := &ps[i]
		if p.Locked {
			continue
		}
		p.Vel = p.Vel.Add(p.Pos.Sub(before[i]).Mul(1 / dt))
	}
}

// SetWindForce sets the wind used by every following step.
func (c *Cloth) SetWindForce(wind mgl64.Vec3) {
	c.wind = wind
}

// WindForce returns the current wind.
func (c *Cloth) WindForce() mgl64.Vec3 {
	return c.wind
}

// SetDragCoefficient changes the drag coefficient. Negative coefficients are rejected.
func (c *Cloth) SetDragCoefficient(drag float64) error {
	if !(drag >= 0) {
		return fmt.Errorf("%w: got %g", ErrInvalidDrag, drag)
	}
	c.drag = drag
	c.logf("drag coefficient set to %g", drag)
	return nil
}

// DragCoefficient returns the current drag coefficient.
func (c *Cloth) DragCoefficient() float64 {
	return c.drag
}

// Pin locks the particle at (col, row) in place. Locked particles stay locked for the lifetime of
// the cloth.
func (c *Cloth) Pin(col, row int) error {
	if col < 0 || col >= c.topology.Columns || row < 0 || row >= c.topology.Rows {
		return fmt.Errorf("%w: (%d, %d) in a %dx%d grid", ErrPinOutOfRange, col, row, c.topology.Columns, c.topology.Rows)
	}
	p := &c.particles[c.topology.Index(col, row)]
	p.Locked = true
	p.Accel = mgl64.Vec3{}
	p.Vel, p.LastVel = mgl64.Vec3{}, mgl64.Vec3{}
	p.LastPos = p.Pos
	return nil
}

// Integrator returns the integration scheme the cloth was built with.
func (c *Cloth) Integrator() Integrator {
	return c.integrator
}

// Iterations returns the number of relaxation passes made per step.
func (c *Cloth) Iterations() int {
	return c.iterations
}

// Tick returns the number of steps taken since the cloth was built.
func (c *Cloth) Tick() uint64 {
	return c.tick
}

func (c *Cloth) logf(format string, args ...any) {
	if c.debugf != nil {
		c.debugf(format, args...)
	}
}
