package ir

import "errors"

var ErrUnsupportedValue = errors.New("unsupported value")
