package cloth

import "github.com/oomph-ac/drape/omath"

// IntegrateVerlet advances a free particle with position Verlet. drag damps the position delta by
// drag*dt/mass, clamped to [0, 1]. Vel is refreshed from the resulting displacement.
func IntegrateVerlet(p *Particle, dt, drag float64) {
	if p.Locked {
		return
	}
	damping := omath.Clamp(drag*dt*p.InvMass, 0, 1)

	old := p.Pos
	p.Pos = p.Pos.Add(p.Pos.Sub(p.LastPos).Mul(1 - damping)).Add(p.Accel.Mul(dt * dt))
	p.LastPos = old

	p.LastVel = p.Vel
	if dt > 0 {
		p.Vel = p.Pos.Sub(old).Mul(1 / dt)
	}
}

// IntegrateLeapfrog advances a free particle with leapfrog velocity Verlet. Drag is expected to be
// part of Accel already.
func IntegrateLeapfrog(p *Particle, dt float64) {
	if p.Locked {
		return
	}
	halfStep := p.Accel.Mul(0.5 * dt)
	mid := p.Vel.Add(halfStep)

	p.LastPos = p.Pos
	p.Pos = p.Pos.Add(mid.Mul(dt))

	p.LastVel = p.Vel
	p.Vel = mid.Add(halfStep)
}
