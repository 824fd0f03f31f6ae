package mergeop

import (
	"github.com/signadot/manip/debug"
	"github.com/signadot/manip/ir"
)

var setSym = &setOp{name: setName}

func Set() Op {
	return setSym
}

const (
	setName name = "set"
)

type setOp struct {
	name
}

func (s setOp) Patch(doc, spec *ir.Node) (*ir.Node, error) {
	err := eachPath(spec, func(p ir.Path, v *ir.Node) error {
		if debug.Op() {
			debug.Logf("set op at %s to %v\n", p, v)
		}
		doc = p.Set(doc, v.Clone())
		return nil
	})
	return doc, err
}
