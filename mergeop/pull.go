package mergeop

import (
	"slices"

	"github.com/signadot/manip/debug"
	"github.com/signadot/manip/ir"
)

var pullSym = &pullOp{name: pullName}

func Pull() Op {
	return pullSym
}

const (
	pullName name = "pull"
)

type pullOp struct {
	name
}

// Patch removes matching elements from the array at each path of spec.
// An object condition matches object elements having equal values at
// all of its field paths, any other condition matches equal elements.
func (o pullOp) Patch(doc, spec *ir.Node) (*ir.Node, error) {
	err := eachPath(spec, func(p ir.Path, cond *ir.Node) error {
		cur, ok := p.Lookup(doc)
		if !ok || cur.Type != ir.ArrayType {
			return nil
		}
		n := len(cur.Values)
		cur.Values = slices.DeleteFunc(cur.Values, func(e *ir.Node) bool {
			return pullMatch(e, cond)
		})
		if debug.Op() {
			debug.Logf("pull op at %s with %v removed %d\n", p, cond, n-len(cur.Values))
		}
		return nil
	})
	return doc, err
}

func pullMatch(e, cond *ir.Node) bool {
	if cond.Type != ir.ObjectType || e.Type != ir.ObjectType {
		return ir.Equal(e, cond)
	}
	for i, f := range cond.Fields {
		v, ok := ir.ParsePath(f.String).Lookup(e)
		if !ok || !ir.Equal(v, cond.Values[i]) {
			return false
		}
	}
	return true
}
