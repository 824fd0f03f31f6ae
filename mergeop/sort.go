package mergeop

import (
	"slices"

	"github.com/signadot/manip/ir"
)

type sortField struct {
	path ir.Path
	dir  int
}

// sortStage orders seq stably. arg is NaturalSort, 1 or -1 to compare
// whole elements, or an object of field paths to directions where the
// first field is the primary key. Elements lacking a field order before
// those having it, reversed for descending fields. Unrecognised
// arguments leave seq alone.
func sortStage(seq []*ir.Node, arg *ir.Node) []*ir.Node {
	cmpFunc := sortFunc(arg)
	if cmpFunc == nil {
		return seq
	}
	slices.SortStableFunc(seq, cmpFunc)
	return seq
}

func sortFunc(arg *ir.Node) func(a, b *ir.Node) int {
	switch arg.Type {
	case ir.StringType:
		if arg.String != NaturalSort {
			return nil
		}
		return ir.Compare
	case ir.NumberType:
		dir := direction(arg)
		return func(a, b *ir.Node) int {
			return dir * ir.Compare(a, b)
		}
	case ir.ObjectType:
		fields := make([]sortField, len(arg.Fields))
		for i, f := range arg.Fields {
			fields[i] = sortField{
				path: ir.ParsePath(f.String),
				dir:  direction(arg.Values[i]),
			}
		}
		return func(a, b *ir.Node) int {
			return compareFields(fields, a, b)
		}
	}
	return nil
}

func direction(n *ir.Node) int {
	if f, ok := ir.Float(n); ok && f < 0 {
		return -1
	}
	return 1
}

func compareFields(fields []sortField, a, b *ir.Node) int {
	for _, sf := range fields {
		av, aOK := sf.path.Lookup(a)
		bv, bOK := sf.path.Lookup(b)
		var c int
		switch {
		case !aOK && !bOK:
			continue
		case !aOK:
			c = -1
		case !bOK:
			c = 1
		default:
			c = ir.Compare(av, bv)
		}
		if c != 0 {
			return sf.dir * c
		}
	}
	return 0
}
