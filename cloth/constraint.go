package cloth

import "github.com/oomph-ac/drape/assert"

// Kind describes the role a constraint plays in the grid.
type Kind uint8

const (
	// KindStructural joins orthogonal neighbours.
	KindStructural Kind = iota
	// KindShear joins the diagonal corners of a cell.
	KindShear
	// KindBending joins particles two apart along a row or column.
	KindBending

	kindCount
)

// Kinds lists every constraint kind in solver pass order.
var Kinds = [kindCount]Kind{KindStructural, KindShear, KindBending}

func (k Kind) String() string {
	switch k {
	case KindStructural:
		return "structural"
	case KindShear:
		return "shear"
	case KindBending:
		return "bending"
	}
	return "unknown"
}

// Constraint keeps two particles at their relaxed distance from each other.
type Constraint struct {
	A, B int
	// RelaxedLength is the distance between A and B when the constraint was created.
	RelaxedLength float64
	Stiffness     float64
	Kind          Kind
}

// newConstraint creates a constraint between the particles at indices a and b, taking the relaxed
// length from their current positions.
func newConstraint(particles []Particle, a, b int, kind Kind, stiffness float64) Constraint {
	assert.IsTrue(a != b, "%s constraint joins particle %d to itself", kind, a)
	assert.IsTrue(a >= 0 && a < len(particles) && b >= 0 && b < len(particles),
		"%s constraint (%d, %d) out of range for %d particles", kind, a, b, len(particles))

	length := particles[b].Pos.Sub(particles[a].Pos).Len()
	assert.IsTrue(length > Epsilon, "%s constraint (%d, %d) has zero relaxed length", kind, a, b)
	return Constraint{
		A:             a,
		B:             b,
		RelaxedLength: length,
		Stiffness:     stiffness,
		Kind:          kind,
	}
}
