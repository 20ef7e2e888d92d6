package workvar

import "errors"

var (
	ErrBadPrefix       = errors.New("bad work variable prefix")
	ErrDuplicatePrefix = errors.New("duplicate work variable prefix")
	ErrBadCount        = errors.New("work variable count out of range")
	ErrAlreadyDeclared = errors.New("work variables already declared")
	ErrNameClash       = errors.New("work variable name clashes with database")
	ErrUnknownType     = errors.New("no work variables for type code")
	ErrExhausted       = errors.New("work variable pool exhausted")
	ErrNotWorkVar      = errors.New("not a work variable")
)
