package cloth

// SolverMode selects how constraints respond during a step. Exactly one mode runs per step.
type SolverMode uint8

const (
	// SolverRelaxation projects particle positions directly onto their relaxed lengths.
	SolverRelaxation SolverMode = iota
	// SolverSpring turns each constraint into a Hooke spring that accumulates acceleration.
	SolverSpring
)

// SolverModeFor returns SolverRelaxation when useConstraintSatisfaction is true and SolverSpring
// otherwise.
func SolverModeFor(useConstraintSatisfaction bool) SolverMode {
	if useConstraintSatisfaction {
		return SolverRelaxation
	}
	return SolverSpring
}

func (m SolverMode) String() string {
	switch m {
	case SolverRelaxation:
		return "relaxation"
	case SolverSpring:
		return "spring"
	}
	return "unknown"
}

// Relax runs one Gauss-Seidel pass over the constraints: each correction reads the positions left
// by the corrections before it. stiffness scales every correction and must be in (0, 1].
func Relax(particles []Particle, constraints []Constraint, stiffness float64) {
	for _, c := range constraints {
		p1, p2 := &particles[c.A], &particles[c.B]
		if p1.Locked && p2.Locked {
			continue
		}

		delta := p2.Pos.Sub(p1.Pos)
		l := delta.Len()
		if l <= Epsilon {
			continue
		}
		correction := delta.Mul((1 - c.RelaxedLength/l) * stiffness)

		switch {
		case p1.Locked:
			p2.Pos = p2.Pos.Sub(correction)
		case p2.Locked:
			p1.Pos = p1.Pos.Add(correction)
		default:
			half := correction.Mul(0.5)
			p1.Pos = p1.Pos.Add(half)
			p2.Pos = p2.Pos.Sub(half)
		}
	}
}

// ApplySprings accumulates the Hooke spring acceleration of every constraint onto its free
// endpoints.
func ApplySprings(particles []Particle, constraints []Constraint) {
	for _, c := range constraints {
		p1, p2 := &particles[c.A], &particles[c.B]

		delta := p2.Pos.Sub(p1.Pos)
		l := delta.Len()
		if l <= Epsilon {
			continue
		}
		// Positive extension pulls the endpoints together.
		force := delta.Mul(-c.Stiffness * (l - c.RelaxedLength) / l)

		p1.AddForce(force.Mul(-1))
		p2.AddForce(force)
	}
}
