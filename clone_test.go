package manip

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/manip/encode"
	"github.com/signadot/manip/ir"
)

func TestClones(t *testing.T) {
	for name, clone := range map[string]CloneFunc{
		"deep": DeepClone,
		"json": JSONClone,
	} {
		t.Run(name, func(t *testing.T) {
			doc := mustParse(t, `{"z":1,"a":{"b":[1,"x",null,true]}}`)
			c, err := clone(doc)
			if err != nil {
				t.Fatal(err)
			}
			if !ir.Equal(doc, c) {
				t.Fatalf("clone differs: %s", encode.MustString(c))
			}
			ir.SetPath(c, "a.b.0", ir.FromInt(9))
			if diff := cmp.Diff(`{"z":1,"a":{"b":[1,"x",null,true]}}`, encode.MustString(doc)); diff != "" {
				t.Errorf("original modified (-want +got):\n%s", diff)
			}
		})
	}
}

func TestJSONCloneNaN(t *testing.T) {
	c, err := JSONClone(ir.FromSlice([]*ir.Node{ir.FromFloat(math.NaN())}))
	if err != nil {
		t.Fatal(err)
	}
	if c.Values[0].Type != ir.NullType {
		t.Errorf("NaN became %s", c.Values[0].Type)
	}
}
