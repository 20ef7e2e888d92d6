package codec

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrLabelNotFound     = errors.New("label not found")
	ErrForwardRef        = errors.New("label not declared before theorem")
	ErrBadLabelKind      = errors.New("label is neither a variable hypothesis nor an assertion")
	ErrHypAfterAssertion = errors.New("hypothesis label after assertion label")
	ErrNotOptional       = errors.New("variable hypothesis is not an optional hypothesis")
	ErrBadChar           = errors.New("invalid character")
	ErrCharInNumber      = errors.New("unknown character inside number")
	ErrBadRepeat         = errors.New("misplaced repeated subproof marker")
	ErrBadRef            = errors.New("reference out of range")
	ErrCorrupt           = errors.New("corrupt proof")
	ErrNoBlocks          = errors.New("no proof blocks")
	ErrIncompleteNumber  = errors.New("proof ends inside a number")
	ErrEncode            = errors.New("cannot encode proof")
)

// Error is a decoding failure, attached to the theorem being decoded and,
// where applicable, to an offending label or a position in the blocks.
// Block and Char are -1 when not applicable.
type Error struct {
	Theorem string
	Label   string
	Block   int
	Char    int
	Err     error
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Theorem)
	if e.Label != "" {
		fmt.Fprintf(&b, ": label %q", e.Label)
	}
	if e.Block >= 0 {
		fmt.Fprintf(&b, ": block %d char %d", e.Block+1, e.Char+1)
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	return b.String()
}

func labelErr(thm, label string, err error) *Error {
	return &Error{Theorem: thm, Label: label, Block: -1, Char: -1, Err: err}
}

func posErr(thm string, block, char int, err error) *Error {
	return &Error{Theorem: thm, Block: block, Char: char, Err: err}
}
