package cloth

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	freeFallTime = 1.0
	tickRate     = 60
)

func freeFall(t *testing.T, step func(p *Particle, dt float64)) float64 {
	t.Helper()
	p, err := NewParticle(mgl64.Vec3{}, DefaultParticleMass)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dt := 1.0 / tickRate
	for range int(freeFallTime * tickRate) {
		p.Accel = DefaultGravity
		step(&p, dt)
	}
	if p.Pos.X() != 0 || p.Pos.Y() != 0 {
		t.Fatalf("free fall drifted horizontally: %v", p.Pos)
	}
	return p.Pos.Z()
}

func TestVerletFreeFall(t *testing.T) {
	z := freeFall(t, func(p *Particle, dt float64) { IntegrateVerlet(p, dt, 0) })
	want := 0.5 * DefaultGravity.Z() * freeFallTime * freeFallTime
	if math.Abs(z-want)/math.Abs(want) > 0.03 {
		t.Fatalf("verlet free fall z = %f, want %f within 3%%", z, want)
	}
}

func TestLeapfrogFreeFall(t *testing.T) {
	z := freeFall(t, IntegrateLeapfrog)
	want := 0.5 * DefaultGravity.Z() * freeFallTime * freeFallTime
	if math.Abs(z-want)/math.Abs(want) > 0.005 {
		t.Fatalf("leapfrog free fall z = %f, want %f within 0.5%%", z, want)
	}
}

func TestLeapfrogVelocity(t *testing.T) {
	p, _ := NewParticle(mgl64.Vec3{}, DefaultParticleMass)
	dt := 1.0 / tickRate
	for range tickRate {
		p.Accel = DefaultGravity
		IntegrateLeapfrog(&p, dt)
	}
	if math.Abs(p.Vel.Z()-DefaultGravity.Z()) > 1e-9 {
		t.Fatalf("velocity after 1s = %f, want %f", p.Vel.Z(), DefaultGravity.Z())
	}
}

func TestVerletDragDampsMotion(t *testing.T) {
	free, _ := NewParticle(mgl64.Vec3{}, DefaultParticleMass)
	damped := free
	free.LastPos = mgl64.Vec3{-0.1, 0, 0}
	damped.LastPos = free.LastPos

	IntegrateVerlet(&free, 1.0/tickRate, 0)
	IntegrateVerlet(&damped, 1.0/tickRate, 1)
	if !(damped.Pos.X() < free.Pos.X()) || damped.Pos.X() <= 0 {
		t.Fatalf("drag should shorten the step without reversing it: free=%v damped=%v", free.Pos, damped.Pos)
	}

	// A damping factor above one is clamped, so the particle stops instead of bouncing back.
	stopped, _ := NewParticle(mgl64.Vec3{}, DefaultParticleMass)
	stopped.LastPos = mgl64.Vec3{-0.1, 0, 0}
	IntegrateVerlet(&stopped, 1, 1000)
	if stopped.Pos != (mgl64.Vec3{}) {
		t.Fatalf("fully damped particle moved to %v", stopped.Pos)
	}
}

func TestIntegratorsSkipLocked(t *testing.T) {
	p, _ := NewParticle(mgl64.Vec3{1, 2, 3}, DefaultParticleMass)
	p.Locked = true
	p.Accel = DefaultGravity
	IntegrateVerlet(&p, 0.5, 0)
	IntegrateLeapfrog(&p, 0.5)
	if p.Pos != (mgl64.Vec3{1, 2, 3}) {
		t.Fatalf("locked particle moved to %v", p.Pos)
	}
}

func TestNewParticleRejectsMass(t *testing.T) {
	for _, m := range []float64{0, -1, MinParticleMass / 2, math.NaN()} {
		if _, err := NewParticle(mgl64.Vec3{}, m); err == nil {
			t.Errorf("mass %g accepted", m)
		}
	}
	p, err := NewParticle(mgl64.Vec3{}, 4)
	if err != nil || p.InvMass != 0.25 {
		t.Fatalf("mass 4: particle %+v, err %v", p, err)
	}
}
