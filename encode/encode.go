// Package encode renders document trees as JSON or YAML, keeping the
// order of object keys.
package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/manip/format"
	"github.com/signadot/manip/ir"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/lexer"
	"github.com/goccy/go-yaml/printer"
)

type EncState struct {
	format format.Format
	wire   bool
	indent int
	colors *Colors

	buf *bytes.Buffer
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2, buf: bytes.NewBuffer(nil)}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.JSONFormat:
		if err := es.json(node, 0); err != nil {
			return err
		}
		es.buf.WriteByte('\n')
	case format.YAMLFormat:
		if err := es.yaml(node); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
	}
	_, err := w.Write(es.buf.Bytes())
	return err
}

func (es *EncState) json(node *ir.Node, depth int) error {
	switch node.Type {
	case ir.ObjectType:
		if len(node.Fields) == 0 {
			es.buf.WriteString(es.colors.Color(SepColor, "{}"))
			return nil
		}
		es.buf.WriteString(es.colors.Color(SepColor, "{"))
		for i, f := range node.Fields {
			if i > 0 {
				es.buf.WriteString(es.colors.Color(SepColor, ","))
			}
			es.newline(depth + 1)
			es.buf.WriteString(es.colors.Color(FieldColor, quote(f.String)))
			es.buf.WriteString(es.colors.Color(SepColor, ":"))
			if !es.wire {
				es.buf.WriteByte(' ')
			}
			if err := es.json(node.Values[i], depth+1); err != nil {
				return err
			}
		}
		es.newline(depth)
		es.buf.WriteString(es.colors.Color(SepColor, "}"))
	case ir.ArrayType:
		if len(node.Values) == 0 {
			es.buf.WriteString(es.colors.Color(SepColor, "[]"))
			return nil
		}
		es.buf.WriteString(es.colors.Color(SepColor, "["))
		for i, v := range node.Values {
			if i > 0 {
				es.buf.WriteString(es.colors.Color(SepColor, ","))
			}
			es.newline(depth + 1)
			if err := es.json(v, depth+1); err != nil {
				return err
			}
		}
		es.newline(depth)
		es.buf.WriteString(es.colors.Color(SepColor, "]"))
	case ir.StringType:
		es.buf.WriteString(es.colors.Color(StringColor, quote(node.String)))
	case ir.NumberType:
		es.buf.WriteString(es.colors.Color(NumberColor, numberText(node)))
	case ir.BoolType:
		es.buf.WriteString(es.colors.Color(BoolColor, strconv.FormatBool(node.Bool)))
	case ir.NullType:
		es.buf.WriteString(es.colors.Color(NullColor, "null"))
	default:
		return fmt.Errorf("%w: node type %s", ir.ErrUnsupportedValue, node.Type)
	}
	return nil
}

func (es *EncState) newline(depth int) {
	if es.wire {
		return
	}
	es.buf.WriteByte('\n')
	es.buf.WriteString(strings.Repeat(" ", depth*es.indent))
}

func quote(s string) string {
	buf := bytes.NewBuffer(nil)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return strconv.Quote(s)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

func numberText(node *ir.Node) string {
	switch {
	case node.Int64 != nil:
		return strconv.FormatInt(*node.Int64, 10)
	case node.Float64 != nil:
		f := *node.Float64
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "null"
		}
		return strconv.FormatFloat(f, 'g', -1, 64)
	case node.Number != "":
		return node.Number
	}
	return "0"
}

func (es *EncState) yaml(node *ir.Node) error {
	v, err := ToAny(node)
	if err != nil {
		return err
	}
	d, err := yaml.MarshalWithOptions(v, yaml.Indent(es.indent), yaml.IndentSequence(true))
	if err != nil {
		return err
	}
	if es.colors == nil {
		es.buf.Write(d)
		return nil
	}
	p := printer.Printer{
		MapKey: es.property(FieldColor),
		String: es.property(StringColor),
		Number: es.property(NumberColor),
		Bool:   es.property(BoolColor),
	}
	out := p.PrintTokens(lexer.Tokenize(string(d)))
	es.buf.WriteString(out)
	if !strings.HasSuffix(out, "\n") {
		es.buf.WriteByte('\n')
	}
	return nil
}

func (es *EncState) property(a ColorAttr) printer.PrintFunc {
	prefix, suffix := es.colors.escapes(a)
	return func() *printer.Property {
		return &printer.Property{Prefix: prefix, Suffix: suffix}
	}
}

// ToAny converts node into plain Go values. Objects become yaml.MapSlice
// so that key order survives marshalling.
func ToAny(node *ir.Node) (any, error) {
	switch node.Type {
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i, f := range node.Fields {
			v, err := ToAny(node.Values[i])
			if err != nil {
				return nil, err
			}
			res[i] = yaml.MapItem{Key: f.String, Value: v}
		}
		return res, nil
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			v, err := ToAny(elt)
			if err != nil {
				return nil, err
			}
			res[i] = v
		}
		return res, nil
	case ir.StringType:
		return node.String, nil
	case ir.NumberType:
		if node.Int64 != nil {
			return *node.Int64, nil
		}
		if node.Float64 != nil {
			return *node.Float64, nil
		}
		if u, err := strconv.ParseUint(node.Number, 10, 64); err == nil {
			return u, nil
		}
		return node.Number, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.NullType:
		return nil, nil
	}
	return nil, fmt.Errorf("%w: node type %s", ir.ErrUnsupportedValue, node.Type)
}
