package oerror

import "fmt"

// ClothError is an error raised while building or configuring a cloth. Values are compared by
// identity, so package level ClothErrors can be used as sentinels with errors.Is.
type ClothError struct {
	Err string
}

// New returns a new ClothError with a message formatted from the given arguments.
func New(format string, args ...any) *ClothError {
	if len(args) == 0 {
		return &ClothError{Err: format}
	}
	return &ClothError{Err: fmt.Sprintf(format, args...)}
}

func (e *ClothError) Error() string {
	return e.Err
}
