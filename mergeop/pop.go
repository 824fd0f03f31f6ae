package mergeop

import (
	"github.com/signadot/manip/debug"
	"github.com/signadot/manip/ir"
)

var popSym = &popOp{name: popName}

func Pop() Op {
	return popSym
}

const (
	popName name = "pop"
)

type popOp struct {
	name
}

// Patch removes the last element of the array at each path of spec when
// the value is positive and the first when it is negative.
func (o popOp) Patch(doc, spec *ir.Node) (*ir.Node, error) {
	err := eachPath(spec, func(p ir.Path, v *ir.Node) error {
		cur, ok := p.Lookup(doc)
		if !ok || cur.Type != ir.ArrayType || len(cur.Values) == 0 {
			return nil
		}
		n := ir.Int(v)
		if debug.Op() {
			debug.Logf("pop op at %s direction %d\n", p, n)
		}
		switch {
		case n > 0:
			cur.Values = cur.Values[:len(cur.Values)-1]
		case n < 0:
			cur.Values = cur.Values[1:]
		}
		return nil
	})
	return doc, err
}
