package assert

import "github.com/oomph-ac/drape/oerror"

// IsTrue panics with a ClothError if ok is false. It is reserved for internal invariants that can
// only be broken by a bug, never for validating caller input.
func IsTrue(ok bool, message string, args ...any) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}
