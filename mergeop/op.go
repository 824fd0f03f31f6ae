package mergeop

import (
	"github.com/signadot/manip/ir"
)

// Op is a patch operator. Patch receives the working document and the
// operator's sub-document from the patch, and returns the document to
// continue with, which may be doc itself.
type Op interface {
	Patch(doc, spec *ir.Node) (*ir.Node, error)
	String() string
}

// PatchFunc is the signature of Op.Patch.
type PatchFunc func(doc, spec *ir.Node) (*ir.Node, error)

type name string

func (n name) String() string {
	return string(n)
}

// Func makes an Op named n out of f.
func Func(n string, f PatchFunc) Op {
	return funcOp{name: name(n), f: f}
}

type funcOp struct {
	name
	f PatchFunc
}

func (o funcOp) Patch(doc, spec *ir.Node) (*ir.Node, error) {
	return o.f(doc, spec)
}

// eachPath calls f with each path and value of an object spec, in
// order. Specs which are not objects have no paths.
func eachPath(spec *ir.Node, f func(p ir.Path, v *ir.Node) error) error {
	if spec == nil || spec.Type != ir.ObjectType {
		return nil
	}
	for i, field := range spec.Fields {
		if err := f(ir.ParsePath(field.String), spec.Values[i]); err != nil {
			return err
		}
	}
	return nil
}

// sequenceOf returns the elements a push-like operator starts from:
// nothing for an absent or null value, the elements of an array, and
// otherwise the value itself.
func sequenceOf(cur *ir.Node) []*ir.Node {
	switch {
	case cur == nil, cur.Type == ir.NullType:
		return nil
	case cur.Type == ir.ArrayType:
		res := make([]*ir.Node, len(cur.Values))
		copy(res, cur.Values)
		return res
	default:
		return []*ir.Node{cur}
	}
}
