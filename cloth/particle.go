package cloth

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Particle is a single point mass of the cloth. Particles are stored by value in a slice owned by
// the Cloth and are only ever referred to by index.
type Particle struct {
	Pos, LastPos mgl64.Vec3
	Vel, LastVel mgl64.Vec3

	// Accel accumulates the acceleration applied during the current step. It is zeroed at the start
	// of every step.
	Accel mgl64.Vec3
	// Normal is the shading normal, recomputed every step from the adjacent triangles.
	Normal mgl64.Vec3

	Mass    float64
	InvMass float64

	// Locked particles are anchors: they receive no forces and are never integrated.
	Locked bool
}

// NewParticle returns a particle at rest at the given position. The inverse mass is computed once
// here and never again.
func NewParticle(pos mgl64.Vec3, mass float64) (Particle, error) {
	if !(mass >= MinParticleMass) {
		return Particle{}, fmt.Errorf("%w: got %g", ErrInvalidMass, mass)
	}
	return Particle{
		Pos:     pos,
		LastPos: pos,
		Normal:  DefaultNormal,
		Mass:    mass,
		InvMass: 1 / mass,
	}, nil
}

// AddForce converts a force into acceleration on a free particle. Locked particles ignore it.
func (p *Particle) AddForce(f mgl64.Vec3) {
	if p.Locked {
		return
	}
	p.Accel = p.Accel.Add(f.Mul(p.InvMass))
}
