package service

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Handlers map these to HTTP status codes so a caller
// can always tell "your input is invalid" apart from "the system could not
// complete the operation".
var (
	// ErrValidacion marks locally recoverable input errors. No partial
	// mutation happens when it is returned.
	ErrValidacion = errors.New("validacion")

	// ErrNoEncontrado marks a referenced entity or price list that does not
	// resolve.
	ErrNoEncontrado = errors.New("no encontrado")
)

func validacionf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrValidacion}, args...)...)
}

func noEncontradof(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrNoEncontrado}, args...)...)
}
