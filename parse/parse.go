// Package parse decodes JSON and YAML text into document trees, keeping
// the order of object keys as written.
package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"math"
	"slices"

	"github.com/signadot/manip/format"
	"github.com/signadot/manip/ir"

	"github.com/goccy/go-yaml"
)

// Parse decodes d. Empty input decodes to null.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{detect: true}
	for _, opt := range opts {
		opt(pOpts)
	}
	if len(bytes.TrimSpace(d)) == 0 {
		return ir.Null(), nil
	}
	f := pOpts.format
	if pOpts.detect {
		f = detect(d)
	}
	switch f {
	case format.JSONFormat:
		return parseJSON(d)
	case format.YAMLFormat:
		return parseYAML(d)
	default:
		return nil, fmt.Errorf("%w: %d", format.ErrBadFormat, f)
	}
}

func detect(d []byte) format.Format {
	d = bytes.TrimSpace(d)
	switch d[0] {
	case '{', '[', '"':
		return format.JSONFormat
	}
	return format.YAMLFormat
}

func parseJSON(d []byte) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	res, err := jsonValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, ErrTrailing
	}
	return res, nil
}

func jsonValue(dec *json.Decoder) (*ir.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return jsonObject(dec)
		case '[':
			return jsonArray(dec)
		}
		return nil, fmt.Errorf("%w: unexpected %q", ErrParse, t)
	case string:
		return ir.FromString(t), nil
	case json.Number:
		return ir.FromNumber(t.String()), nil
	case bool:
		return ir.FromBool(t), nil
	case nil:
		return ir.Null(), nil
	}
	return nil, fmt.Errorf("%w: unexpected token %v", ErrParse, tok)
}

func jsonObject(dec *json.Decoder) (*ir.Node, error) {
	res := ir.Object()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, ErrKeyType
		}
		val, err := jsonValue(dec)
		if err != nil {
			return nil, err
		}
		res.SetField(key, val)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return res, nil
}

func jsonArray(dec *json.Decoder) (*ir.Node, error) {
	res := ir.FromSlice(nil)
	for dec.More() {
		val, err := jsonValue(dec)
		if err != nil {
			return nil, err
		}
		res.Values = append(res.Values, val)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return res, nil
}

func parseYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return FromAny(v)
}

// FromAny converts decoded Go values (as produced by encoding/json or
// goccy/go-yaml) into a document.
func FromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case *ir.Node:
		return x.Clone(), nil
	case yaml.MapSlice:
		res := ir.Object()
		for _, item := range x {
			key, err := keyString(item.Key)
			if err != nil {
				return nil, err
			}
			val, err := FromAny(item.Value)
			if err != nil {
				return nil, err
			}
			res.SetField(key, val)
		}
		return res, nil
	case map[string]any:
		res := ir.Object()
		for _, key := range slices.Sorted(maps.Keys(x)) {
			val, err := FromAny(x[key])
			if err != nil {
				return nil, err
			}
			res.SetField(key, val)
		}
		return res, nil
	case []any:
		res := ir.FromSlice(nil)
		for _, elt := range x {
			val, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			res.Values = append(res.Values, val)
		}
		return res, nil
	case string:
		return ir.FromString(x), nil
	case bool:
		return ir.FromBool(x), nil
	case json.Number:
		return ir.FromNumber(x.String()), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int8:
		return ir.FromInt(int64(x)), nil
	case int16:
		return ir.FromInt(int64(x)), nil
	case int32:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint:
		return fromUint(uint64(x)), nil
	case uint8:
		return ir.FromInt(int64(x)), nil
	case uint16:
		return ir.FromInt(int64(x)), nil
	case uint32:
		return ir.FromInt(int64(x)), nil
	case uint64:
		return fromUint(x), nil
	case float32:
		return ir.FromFloat(float64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case fmt.Stringer:
		return ir.FromString(x.String()), nil
	}
	return nil, fmt.Errorf("%w: %T", ir.ErrUnsupportedValue, v)
}

func fromUint(u uint64) *ir.Node {
	if u > math.MaxInt64 {
		return ir.FromNumber(fmt.Sprint(u))
	}
	return ir.FromInt(int64(u))
}

func keyString(k any) (string, error) {
	switch x := k.(type) {
	case string:
		return x, nil
	case nil:
		return "null", nil
	case yaml.MapSlice, map[string]any, []any:
		return "", fmt.Errorf("%w: got %T", ErrKeyType, k)
	}
	return fmt.Sprint(k), nil
}
