package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput matches every *InvalidInputError via errors.Is.
	ErrInvalidInput = errors.New("invalid input")
	// ErrConvergence matches every *ConvergenceError via errors.Is.
	ErrConvergence = errors.New("no convergence")
)

// InvalidInputError reports a violated precondition of an engine operation.
type InvalidInputError struct {
	Op     string
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: invalid input: %s", e.Op, e.Reason)
	}
	return fmt.Sprintf("%s: invalid input: %s %s", e.Op, e.Field, e.Reason)
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// ConvergenceError reports an iterative solver that stopped without a root.
type ConvergenceError struct {
	Op         string
	Iterations int
	LastRate   float64
	Reason     string
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%s: %s after %d iterations (last estimate %g)", e.Op, e.Reason, e.Iterations, e.LastRate)
}

func (e *ConvergenceError) Is(target error) bool {
	return target == ErrConvergence
}

func invalid(op, field, reason string) error {
	return &InvalidInputError{Op: op, Field: field, Reason: reason}
}
