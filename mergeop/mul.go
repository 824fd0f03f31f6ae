package mergeop

import (
	"math"

	"github.com/signadot/manip/debug"
	"github.com/signadot/manip/ir"
)

var mulSym = &mulOp{name: mulName}

func Mul() Op {
	return mulSym
}

const (
	mulName name = "mul"
)

type mulOp struct {
	name
}

// Patch multiplies the value at each path by the factor in spec. A
// missing value counts as 0, non numbers are coerced as by inc. Integer
// products which overflow become floats.
func (m mulOp) Patch(doc, spec *ir.Node) (*ir.Node, error) {
	err := eachPath(spec, func(p ir.Path, factor *ir.Node) error {
		cur, _ := p.Get(doc)
		res := mul(cur, factor)
		if debug.Op() {
			debug.Logf("mul op at %s: %v * %v = %v\n", p, cur, factor, res)
		}
		doc = p.Set(doc, res)
		return nil
	})
	return doc, err
}

func mul(cur, factor *ir.Node) *ir.Node {
	if cur != nil && cur.Type == ir.NumberType && cur.Int64 == nil {
		f, _ := ir.Float(cur)
		g, _ := ir.Float(factor)
		return ir.FromFloat(f * g)
	}
	x := ir.Int(cur)
	if factor.Type != ir.NumberType {
		return ir.FromInt(0)
	}
	if factor.Int64 != nil {
		y := *factor.Int64
		if p, ok := mulInt(x, y); ok {
			return ir.FromInt(p)
		}
		return ir.FromFloat(float64(x) * float64(y))
	}
	g, _ := ir.Float(factor)
	return ir.FromFloat(float64(x) * g)
}

// mulInt reports whether x*y fits in an int64.
func mulInt(x, y int64) (int64, bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	if (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) {
		return 0, false
	}
	p := x * y
	if p/y != x {
		return 0, false
	}
	return p, true
}
