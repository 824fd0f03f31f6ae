package manip

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownOperator = errors.New("unknown operator")
	ErrBadPatch        = errors.New("bad patch")
)

// UnknownOperatorError reports a patch tag with no registered operator.
type UnknownOperatorError struct {
	// Tag is the operator name without its leading '$'.
	Tag string
}

func (e *UnknownOperatorError) Error() string {
	return fmt.Sprintf("%s %q", ErrUnknownOperator, e.Tag)
}

func (e *UnknownOperatorError) Is(target error) bool {
	return target == ErrUnknownOperator
}
