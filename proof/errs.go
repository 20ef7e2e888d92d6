package proof

import (
	"errors"
	"fmt"
)

var (
	ErrIncomplete = errors.New("proof is incomplete")
	ErrMismatch   = errors.New("proof step does not match")
	ErrNoExpr     = errors.New("no expression for statement")
)

// StepError locates a failed check at a proof step.
type StepError struct {
	Theorem string
	Step    string
	Err     error
}

func (e *StepError) Unwrap() error {
	return e.Err
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: step %s: %v", e.Theorem, e.Step, e.Err)
}
