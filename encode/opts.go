package encode

import "github.com/signadot/manip/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// FormatSuffix returns the file extension for the given format.
func FormatSuffix(f format.Format) string {
	switch f {
	case format.YAMLFormat:
		return ".yaml"
	default:
		return ".json"
	}
}

// EncodeWire selects compact output. It has no effect on YAML.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}

// EncodeIndent sets the indentation width of non-wire output.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
