package mergeop

import (
	"math"

	"github.com/signadot/manip/debug"
	"github.com/signadot/manip/ir"
)

var pushSym = &pushOp{name: pushName}

func Push() Op {
	return pushSym
}

const (
	pushName name = "push"

	EachKey  = "$each"
	SortKey  = "$sort"
	SliceKey = "$slice"

	// NaturalSort is the $sort argument ordering whole elements
	// ascending.
	NaturalSort = "."
)

// stage transforms the working sequence of a push.
type stage func(seq []*ir.Node, arg *ir.Node) []*ir.Node

var stages = map[string]stage{
	EachKey:  eachStage,
	SortKey:  sortStage,
	SliceKey: sliceStage,
}

type pushOp struct {
	name
}

// Patch appends to the array at each path of spec. An absent or null
// value starts as an empty array and any other non array value becomes
// the first element.
//
// A push value without $each, $sort or $slice keys is appended as one
// element. Otherwise the stages run in the order their keys appear and
// the remaining keys, if any, form one object appended last.
func (o pushOp) Patch(doc, spec *ir.Node) (*ir.Node, error) {
	err := eachPath(spec, func(p ir.Path, ps *ir.Node) error {
		cur, _ := p.Get(doc)
		seq := pipeline(sequenceOf(cur), ps)
		if debug.Op() {
			debug.Logf("push op at %s with %v: %v -> %d elements\n", p, ps, cur, len(seq))
		}
		doc = p.Set(doc, ir.FromSlice(seq))
		return nil
	})
	return doc, err
}

func pipeline(seq []*ir.Node, ps *ir.Node) []*ir.Node {
	if !hasStages(ps) {
		return append(seq, ps.Clone())
	}
	var rest *ir.Node
	for i, f := range ps.Fields {
		arg := ps.Values[i]
		if st, ok := stages[f.String]; ok {
			seq = st(seq, arg)
			continue
		}
		if rest == nil {
			rest = ir.Object()
		}
		rest.SetField(f.String, arg.Clone())
	}
	if rest != nil {
		seq = append(seq, rest)
	}
	return seq
}

func hasStages(ps *ir.Node) bool {
	if ps.Type != ir.ObjectType {
		return false
	}
	for _, f := range ps.Fields {
		if _, ok := stages[f.String]; ok {
			return true
		}
	}
	return false
}

func eachStage(seq []*ir.Node, arg *ir.Node) []*ir.Node {
	if arg.Type != ir.ArrayType {
		return append(seq, arg.Clone())
	}
	for _, v := range arg.Values {
		seq = append(seq, v.Clone())
	}
	return seq
}

// sliceStage keeps the first n elements for positive n, the last -n for
// negative n and none for 0. Fractions are truncated and non numeric
// arguments leave seq alone.
func sliceStage(seq []*ir.Node, arg *ir.Node) []*ir.Node {
	n, ok := ir.Float(arg)
	if !ok || math.IsNaN(n) {
		return seq
	}
	n = math.Trunc(n)
	l := float64(len(seq))
	switch {
	case n == 0:
		return seq[:0]
	case n > 0:
		if n < l {
			return seq[:int(n)]
		}
	default:
		if -n < l {
			return seq[len(seq)+int(n):]
		}
	}
	return seq
}
