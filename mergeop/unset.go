package mergeop

import (
	"github.com/signadot/manip/debug"
	"github.com/signadot/manip/ir"
)

var unsetSym = &unsetOp{name: unsetName}

func Unset() Op {
	return unsetSym
}

const (
	unsetName name = "unset"
)

type unsetOp struct {
	name
}

// Patch removes every path named in spec. The values in spec are
// ignored.
func (u unsetOp) Patch(doc, spec *ir.Node) (*ir.Node, error) {
	err := eachPath(spec, func(p ir.Path, _ *ir.Node) error {
		if debug.Op() {
			debug.Logf("unset op at %s\n", p)
		}
		doc = p.Remove(doc)
		return nil
	})
	return doc, err
}
