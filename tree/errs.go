package tree

import (
	"errors"
	"fmt"
)

var (
	errInternal = errors.New("internal tree error")

	ErrRPNShape = errors.New("malformed postfix sequence")
)

func internalf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errInternal, fmt.Sprintf(format, args...))
}
