package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse    = errors.New("parse error")
	ErrKeyType  = fmt.Errorf("%w: object keys must be strings", ErrParse)
	ErrTrailing = fmt.Errorf("%w: trailing data after document", ErrParse)
)
