package mergeop

import (
	"github.com/signadot/manip/debug"
	"github.com/signadot/manip/ir"
)

var renameSym = &renameOp{name: renameName}

func Rename() Op {
	return renameSym
}

const (
	renameName name = "rename"
)

type renameOp struct {
	name
}

// Patch moves the value at each path of spec to the path given as its
// string value. Missing sources and non string targets are skipped.
func (r renameOp) Patch(doc, spec *ir.Node) (*ir.Node, error) {
	err := eachPath(spec, func(from ir.Path, to *ir.Node) error {
		if to.Type != ir.StringType {
			return nil
		}
		v, ok := from.Lookup(doc)
		if debug.Op() {
			debug.Logf("rename op %s -> %s (present %t)\n", from, to.String, ok)
		}
		if !ok {
			return nil
		}
		doc = from.Remove(doc)
		doc = ir.ParsePath(to.String).Set(doc, v)
		return nil
	})
	return doc, err
}
