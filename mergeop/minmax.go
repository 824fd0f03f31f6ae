package mergeop

import (
	"github.com/signadot/manip/debug"
	"github.com/signadot/manip/ir"
)

var (
	minSym = &boundOp{name: minName, keep: -1}
	maxSym = &boundOp{name: maxName, keep: 1}
)

// Min sets a path to the given value when it is lower than the current
// one.
func Min() Op {
	return minSym
}

// Max sets a path to the given value when it is higher than the current
// one.
func Max() Op {
	return maxSym
}

const (
	minName name = "min"
	maxName name = "max"
)

type boundOp struct {
	name
	keep int
}

func (b boundOp) Patch(doc, spec *ir.Node) (*ir.Node, error) {
	err := eachPath(spec, func(p ir.Path, v *ir.Node) error {
		cur, ok := p.Lookup(doc)
		replace := !ok || ir.Compare(v, cur) == b.keep
		if debug.Op() {
			debug.Logf("%s op at %s: current %v given %v replace %t\n", b, p, cur, v, replace)
		}
		if replace {
			doc = p.Set(doc, v.Clone())
		}
		return nil
	})
	return doc, err
}
