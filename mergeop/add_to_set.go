package mergeop

import (
	"slices"

	"github.com/signadot/manip/debug"
	"github.com/signadot/manip/ir"
)

var addToSetSym = &addToSetOp{name: addToSetName}

func AddToSet() Op {
	return addToSetSym
}

const (
	addToSetName name = "addToSet"
)

type addToSetOp struct {
	name
}

// Patch appends the value of each path of spec, or each element of its
// $each array, unless an equal element is already present.
func (a addToSetOp) Patch(doc, spec *ir.Node) (*ir.Node, error) {
	err := eachPath(spec, func(p ir.Path, v *ir.Node) error {
		cur, _ := p.Get(doc)
		seq := sequenceOf(cur)
		candidates := []*ir.Node{v}
		if each := ir.Field(v, EachKey); each != nil {
			candidates = eachStage(nil, each)
		}
		for _, c := range candidates {
			if slices.ContainsFunc(seq, func(e *ir.Node) bool { return ir.Equal(e, c) }) {
				continue
			}
			seq = append(seq, c.Clone())
		}
		if debug.Op() {
			debug.Logf("addToSet op at %s with %v: %d elements\n", p, v, len(seq))
		}
		doc = p.Set(doc, ir.FromSlice(seq))
		return nil
	})
	return doc, err
}
