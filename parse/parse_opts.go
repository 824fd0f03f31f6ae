package parse

import "github.com/signadot/manip/format"

type parseOpts struct {
	format format.Format
	detect bool
}

type ParseOption func(*parseOpts)

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) {
		o.format = f
		o.detect = false
	}
}

// ParseDetect chooses JSON when the input's first non-space byte opens a
// JSON value and YAML otherwise. It is the default.
func ParseDetect() ParseOption {
	return func(o *parseOpts) { o.detect = true }
}
