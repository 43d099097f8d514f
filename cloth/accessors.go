package cloth

import (
	"encoding/binary"
	"fmt"
	"iter"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/drape/omath"
	"github.com/zeebo/xxh3"
)

// checksumStride is the number of bytes each particle contributes to a checksum.
const checksumStride = 3 * 8

// ParticleView is a read-only copy of the state of one particle.
type ParticleView struct {
	Index       int
	Column, Row int

	Position mgl64.Vec3
	Normal   mgl64.Vec3
	Velocity mgl64.Vec3
	Mass     float64
	Locked   bool
}

// ConstraintView is a read-only copy of one constraint and the current positions of its
// endpoints.
type ConstraintView struct {
	Kind          Kind
	A, B          int
	PosA, PosB    mgl64.Vec3
	RelaxedLength float64
}

// Columns returns the number of particles in each row.
func (c *Cloth) Columns() int {
	return c.topology.Columns
}

// Rows returns the number of particles in each column.
func (c *Cloth) Rows() int {
	return c.topology.Rows
}

// Index returns the particle index of the grid coordinate (col, row).
func (c *Cloth) Index(col, row int) int {
	return c.topology.Index(col, row)
}

// ParticleCount returns the number of particles in the cloth.
func (c *Cloth) ParticleCount() int {
	return len(c.particles)
}

// Particle returns a view of the particle at index i.
func (c *Cloth) Particle(i int) ParticleView {
	p := &c.particles[i]
	return ParticleView{
		Index:    i,
		Column:   i % c.topology.Columns,
		Row:      i / c.topology.Columns,
		Position: p.Pos,
		Normal:   p.Normal,
		Velocity: p.Vel,
		Mass:     p.Mass,
		Locked:   p.Locked,
	}
}

// Particles iterates over every particle in index order.
func (c *Cloth) Particles() iter.Seq2[int, ParticleView] {
	return func(yield func(int, ParticleView) bool) {
		for i := range c.particles {
			if !yield(i, c.Particle(i)) {
				return
			}
		}
	}
}

// Constraints iterates over every constraint, structural first, then shear, then bending.
func (c *Cloth) Constraints() iter.Seq2[int, ConstraintView] {
	return func(yield func(int, ConstraintView) bool) {
		n := 0
		for _, k := range Kinds {
			for _, con := range c.topology.Constraints[k] {
				v := ConstraintView{
					Kind:          con.Kind,
					A:             con.A,
					B:             con.B,
					PosA:          c.particles[con.A].Pos,
					PosB:          c.particles[con.B].Pos,
					RelaxedLength: con.RelaxedLength,
				}
				if !yield(n, v) {
					return
				}
				n++
			}
		}
	}
}

// ConstraintCount returns the number of constraints of the given kind.
func (c *Cloth) ConstraintCount(kind Kind) int {
	if kind >= kindCount {
		return 0
	}
	return len(c.topology.Constraints[kind])
}

// TotalConstraints returns the number of constraints of every kind.
func (c *Cloth) TotalConstraints() (n int) {
	for _, k := range Kinds {
		n += len(c.topology.Constraints[k])
	}
	return n
}

// MaxStrain returns the largest relative deviation of any constraint from its relaxed length.
func (c *Cloth) MaxStrain() (strain float64) {
	for _, k := range Kinds {
		for _, con := range c.topology.Constraints[k] {
			l := c.particles[con.B].Pos.Sub(c.particles[con.A].Pos).Len()
			strain = math.Max(strain, math.Abs(l-con.RelaxedLength)/con.RelaxedLength)
		}
	}
	return strain
}

// Validate reports the first particle whose state holds a NaN or an infinity. It is a diagnostic
// and is never called while stepping.
func (c *Cloth) Validate() error {
	for i := range c.particles {
		p := &c.particles[i]
		if !omath.IsFinite(p.Pos) || !omath.IsFinite(p.LastPos) || !omath.IsFinite(p.Vel) || !omath.IsFinite(p.Normal) {
			return fmt.Errorf("%w: particle %d at tick %d (pos=%v vel=%v)", ErrNonFiniteState, i, c.tick, p.Pos, p.Vel)
		}
	}
	return nil
}

// Checksum returns an xxh3 hash of every particle position. Two cloths built and stepped
// identically produce the same checksum.
func (c *Cloth) Checksum() uint64 {
	buf := c.checksumBuf[:0]
	for i := range c.particles {
		for _, v := range c.particles[i].Pos {
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
		}
	}
	c.checksumBuf = buf
	return xxh3.Hash(buf)
}
