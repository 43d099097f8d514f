package cloth

import "github.com/go-gl/mathgl/mgl64"

const (
	// Epsilon is the length below which a vector is treated as having no direction.
	Epsilon = 1e-9
	// MinParticleMass is the smallest mass a particle may be created with.
	MinParticleMass = 1e-6

	DefaultSpacing      = 2.0
	DefaultParticleMass = 0.2
	DefaultIterations   = 8

	StructuralStiffness = 8.0
	ShearStiffness      = 6.0
	BendingStiffness    = 7.0
)

var (
	// DefaultOrigin is the position of the particle at column 0, row 0. Columns extend along +X and
	// rows along -Y, so the origin is the top left corner of the cloth.
	DefaultOrigin = mgl64.Vec3{-5, 5, 0}
	// DefaultGravity is the gravitational acceleration applied to free particles. Z is up.
	DefaultGravity = mgl64.Vec3{0, 0, -9.8}
	// DefaultNormal is substituted for the normal of a degenerate triangle, and is the normal of
	// the cloth at rest.
	DefaultNormal = mgl64.Vec3{0, 0, 1}
)
