package cloth

import "github.com/oomph-ac/drape/oerror"

var (
	ErrInvalidDimensions = oerror.New("cloth: grid must have at least 2 columns and 2 rows")
	ErrInvalidSpacing    = oerror.New("cloth: particle spacing must be positive")
	ErrInvalidMass       = oerror.New("cloth: particle mass must be at least %g", MinParticleMass)
	ErrInvalidDrag       = oerror.New("cloth: drag coefficient must not be negative")
	ErrInvalidIterations = oerror.New("cloth: relaxation iteration count must be at least 1")
	ErrInvalidStiffness  = oerror.New("cloth: stiffness must not be negative")
	ErrInvalidRelaxation = oerror.New("cloth: relaxation stiffness must be in (0, 1]")
	ErrPinOutOfRange     = oerror.New("cloth: pinned particle lies outside the grid")
	ErrNonFiniteState    = oerror.New("cloth: particle state is NaN or infinite")
)
