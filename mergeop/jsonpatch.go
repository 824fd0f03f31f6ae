package mergeop

import (
	"bytes"
	"fmt"

	"github.com/signadot/manip/debug"
	"github.com/signadot/manip/encode"
	"github.com/signadot/manip/format"
	"github.com/signadot/manip/ir"
	"github.com/signadot/manip/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

var jPatchSym = &jPatchOp{name: jPatchName}

// JSONPatch applies an RFC 6902 operation array to the whole document.
func JSONPatch() Op {
	return jPatchSym
}

const (
	jPatchName name = "jsonpatch"
)

type jPatchOp struct {
	name
}

func (jp jPatchOp) Patch(doc, spec *ir.Node) (*ir.Node, error) {
	if debug.Op() {
		debug.Logf("jsonpatch op called with %v\n", spec)
	}
	if spec.Type != ir.ArrayType {
		return nil, fmt.Errorf("%s op expects an array of operations, got %s", jp, spec.Type)
	}
	p, err := marshalJSON(spec)
	if err != nil {
		return nil, err
	}
	ops, err := jsonpatch.DecodePatch(p)
	if err != nil {
		return nil, err
	}
	d, err := marshalJSON(doc)
	if err != nil {
		return nil, err
	}
	jOut, err := ops.Apply(d)
	if err != nil {
		return nil, err
	}
	return parse.Parse(jOut, parse.ParseFormat(format.JSONFormat))
}

func marshalJSON(node *ir.Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, encode.EncodeWire(true)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
