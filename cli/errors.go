package cli

import (
	"errors"

	"fincalc/engine"
	"fincalc/service"
)

// Exit codes.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitInvalid     = 2
	ExitConvergence = 3
)

// usageError marks bad flags or arguments.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// ExitCode maps an error returned by a command to the process exit code.
func ExitCode(err error) int {
	var usage usageError
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &usage),
		errors.Is(err, engine.ErrInvalidInput),
		errors.Is(err, service.ErrLimitExceeded):
		return ExitInvalid
	case errors.Is(err, engine.ErrConvergence):
		return ExitConvergence
	default:
		return ExitFailure
	}
}
