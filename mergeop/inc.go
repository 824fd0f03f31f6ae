package mergeop

import (
	"github.com/signadot/manip/debug"
	"github.com/signadot/manip/ir"
)

var incSym = &incOp{name: incName}

func Inc() Op {
	return incSym
}

const (
	incName name = "inc"
)

type incOp struct {
	name
}

// Patch adds each delta in spec to the integer value at its path. A
// missing or non numeric current value counts as 0.
func (n incOp) Patch(doc, spec *ir.Node) (*ir.Node, error) {
	err := eachPath(spec, func(p ir.Path, delta *ir.Node) error {
		cur, _ := p.Get(doc)
		res := addInt(ir.Int(cur), delta)
		if debug.Op() {
			debug.Logf("inc op at %s: %v + %v = %v\n", p, cur, delta, res)
		}
		doc = p.Set(doc, res)
		return nil
	})
	return doc, err
}

// addInt adds delta to x. Integer deltas give integers unless the sum
// overflows, other numbers give floats and anything else adds nothing.
func addInt(x int64, delta *ir.Node) *ir.Node {
	if delta.Type != ir.NumberType {
		return ir.FromInt(x)
	}
	if delta.Int64 != nil {
		d := *delta.Int64
		sum := x + d
		if (d > 0 && sum < x) || (d < 0 && sum > x) {
			return ir.FromFloat(float64(x) + float64(d))
		}
		return ir.FromInt(sum)
	}
	f, ok := ir.Float(delta)
	if !ok {
		return ir.FromInt(x)
	}
	return ir.FromFloat(float64(x) + f)
}
