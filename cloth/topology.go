package cloth

import "github.com/go-gl/mathgl/mgl64"

// Topology is the particle grid and constraint lists generated for a cloth. It is built once and
// never reshaped afterwards.
type Topology struct {
	Columns, Rows int

	Particles []Particle
	// Constraints is indexed by Kind.
	Constraints [kindCount][]Constraint
	// Triangles lists the particle indices of both triangles of every cell, two per cell.
	Triangles [][3]int
}

// Index returns the particle index of the grid coordinate (col, row).
func (t *Topology) Index(col, row int) int {
	return row*t.Columns + col
}

// StructuralCount returns the number of structural constraints in a columns x rows grid.
func StructuralCount(columns, rows int) int {
	return (columns-1)*rows + columns*(rows-1)
}

// ShearCount returns the number of shear constraints in a columns x rows grid.
func ShearCount(columns, rows int) int {
	return 2 * (columns - 1) * (rows - 1)
}

// BendingCount returns the number of bending constraints in a columns x rows grid.
func BendingCount(columns, rows int) int {
	return max(columns-2, 0)*rows + columns*max(rows-2, 0)
}

// GenerateTopology builds the particles and constraints described by cfg. The four corners and
// every configured pin are locked.
func GenerateTopology(cfg Config) (*Topology, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	t := &Topology{
		Columns:   cfg.Columns,
		Rows:      cfg.Rows,
		Particles: make([]Particle, 0, cfg.Columns*cfg.Rows),
		Triangles: make([][3]int, 0, 2*(cfg.Columns-1)*(cfg.Rows-1)),
	}
	t.Constraints[KindStructural] = make([]Constraint, 0, StructuralCount(cfg.Columns, cfg.Rows))
	t.Constraints[KindShear] = make([]Constraint, 0, ShearCount(cfg.Columns, cfg.Rows))
	t.Constraints[KindBending] = make([]Constraint, 0, BendingCount(cfg.Columns, cfg.Rows))

	for row := range cfg.Rows {
		for col := range cfg.Columns {
			pos := cfg.Origin.Add(mgl64.Vec3{float64(col) * cfg.Spacing, -float64(row) * cfg.Spacing, 0})
			p, err := NewParticle(pos, cfg.ParticleMass)
			if err != nil {
				return nil, err
			}
			t.Particles = append(t.Particles, p)
		}
	}

	last := len(t.Particles) - 1
	t.Particles[0].Locked = true
	t.Particles[cfg.Columns-1].Locked = true
	t.Particles[last-(cfg.Columns-1)].Locked = true
	t.Particles[last].Locked = true
	for _, pin := range cfg.Pins {
		t.Particles[t.Index(pin.Column, pin.Row)].Locked = true
	}

	for row := range cfg.Rows {
		for col := range cfg.Columns {
			t.link(cfg, col, row)
		}
	}
	return t, nil
}

// link creates every constraint and triangle anchored at (col, row).
func (t *Topology) link(cfg Config, col, row int) {
	i := t.Index(col, row)
	east, south := col+1 < t.Columns, row+1 < t.Rows

	if east {
		t.add(cfg, i, t.Index(col+1, row), KindStructural)
	}
	if south {
		t.add(cfg, i, t.Index(col, row+1), KindStructural)
	}
	if east && south {
		se, e, s := t.Index(col+1, row+1), t.Index(col+1, row), t.Index(col, row+1)
		t.add(cfg, i, se, KindShear)
		t.add(cfg, e, s, KindShear)

		t.Triangles = append(t.Triangles, [3]int{e, i, s}, [3]int{se, e, s})
	}
	if col+2 < t.Columns {
		t.add(cfg, i, t.Index(col+2, row), KindBending)
	}
	if row+2 < t.Rows {
		t.add(cfg, i, t.Index(col, row+2), KindBending)
	}
}

func (t *Topology) add(cfg Config, a, b int, kind Kind) {
	t.Constraints[kind] = append(t.Constraints[kind], newConstraint(t.Particles, a, b, kind, cfg.Stiffness.Of(kind)))
}
