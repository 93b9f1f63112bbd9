package geometry

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is returned by mesh factories for caller-supplied
// parameters that cannot produce a well-defined solid: non-positive radii or
// lengths, division counts below the geometric minimum, non-finite inputs.
// Factories fail fast; no parameter is silently clamped.
var ErrInvalidParameter = errors.New("geometry: invalid parameter")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}
