package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/manip/encode"
	"github.com/signadot/manip/ir"
)

type parseTest struct {
	in   string
	opts []ParseOption
	out  string
	e    error
}

func TestParse(t *testing.T) {
	pts := []parseTest{
		{in: ``, out: `null`},
		{in: "  \n", out: `null`},
		{in: `null`, out: `null`},
		{in: `true`, out: `true`},
		{in: `22`, out: `22`},
		{in: `-22`, out: `-22`},
		{in: `1.5`, out: `1.5`},
		{in: `"hello"`, out: `"hello"`},
		{in: `hello`, out: `"hello"`},
		{in: `{"b":1,"a":{"z":[1,"x",null,true]}}`, out: `{"b":1,"a":{"z":[1,"x",null,true]}}`},
		{in: `{"big":12345678901234567890}`, out: `{"big":1.2345678901234567e+19}`},
		{in: `{"a":1.0}`, out: `{"a":1}`},
		{in: "z: 1\na: [1, 2]\nm:\n  k: v\n", out: `{"z":1,"a":[1,2],"m":{"k":"v"}}`},
		{in: "- a\n- 2\n- null\n", out: `["a",2,null]`},
		{in: "1: one\ntrue: two\n", out: `{"1":"one","true":"two"}`},
		{in: "s: |\n  z\n", out: `{"s":"z\n"}`},
		{in: `{"a":1} {}`, e: ErrTrailing},
		{in: `{"a":}`, e: ErrParse},
		{in: `{"a":1`, e: ErrParse},
		{in: `a: [1`, e: ErrParse},
		{in: `a: 1`, opts: []ParseOption{ParseJSON()}, e: ErrParse},
		{in: `{"a": 1}`, opts: []ParseOption{ParseYAML()}, out: `{"a":1}`},
	}
	for _, pt := range pts {
		t.Run(pt.in, func(t *testing.T) {
			node, err := Parse([]byte(pt.in), pt.opts...)
			if pt.e != nil {
				if !errors.Is(err, pt.e) {
					t.Fatalf("got error %v, want %v", err, pt.e)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(pt.out, encode.MustString(node)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseKeepsKeyOrder(t *testing.T) {
	for _, in := range []string{
		`{"z":1,"y":2,"a":3}`,
		"z: 1\ny: 2\na: 3\n",
	} {
		node, err := Parse([]byte(in))
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]string{"z", "y", "a"}, node.Keys()); diff != "" {
			t.Errorf("keys of %q (-want +got):\n%s", in, diff)
		}
	}
}

func TestParseNumbers(t *testing.T) {
	node, err := Parse([]byte(`[3, 3.25, 1e400]`))
	if err != nil {
		t.Fatal(err)
	}
	if v := node.Values[0]; v.Int64 == nil || *v.Int64 != 3 {
		t.Errorf("3 = %+v", v)
	}
	if v := node.Values[1]; v.Float64 == nil || *v.Float64 != 3.25 {
		t.Errorf("3.25 = %+v", v)
	}
	if v := node.Values[2]; v.Type != ir.NumberType || v.Number != "1e400" {
		t.Errorf("1e400 = %+v", v)
	}
}

func TestFromAny(t *testing.T) {
	node, err := FromAny(map[string]any{
		"b": []any{int8(1), uint16(2), float32(0.5)},
		"a": nil,
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(`{"a":null,"b":[1,2,0.5]}`, encode.MustString(node)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if _, err := FromAny(struct{}{}); !errors.Is(err, ir.ErrUnsupportedValue) {
		t.Errorf("got %v, want ErrUnsupportedValue", err)
	}
}
