package ir

import (
	"cmp"
	"slices"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case NumberType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.String, b.String)
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	}
	return 0
}

// Equal reports whether a and b hold the same value.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Number < String < Array < Object
func rank(t Type) int {
	switch t {
	case NullType:
		return 1
	case BoolType:
		return 2
	case NumberType:
		return 3
	case StringType:
		return 4
	case ArrayType:
		return 5
	case ObjectType:
		return 6
	}
	return 100
}

func compareNumbers(a, b *Node) int {
	if a.Int64 != nil && b.Int64 != nil {
		return cmp.Compare(*a.Int64, *b.Int64)
	}
	fa, okA := Float(a)
	fb, okB := Float(b)
	switch {
	case okA && okB:
		return cmp.Compare(fa, fb)
	case okA:
		return -1
	case okB:
		return 1
	}
	return strings.Compare(a.Number, b.Number)
}

func compareArrays(a, b *Node) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

// compareObjects orders objects by their fields taken in key order, so
// the order fields were inserted in does not matter.
func compareObjects(a, b *Node) int {
	ia := keyOrder(a)
	ib := keyOrder(b)
	minLen := min(len(ia), len(ib))

	for i := 0; i < minLen; i++ {
		fa, fb := ia[i], ib[i]
		if c := strings.Compare(a.Fields[fa].String, b.Fields[fb].String); c != 0 {
			return c
		}
		if c := Compare(a.Values[fa], b.Values[fb]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(ia), len(ib))
}

// keyOrder returns the positions of the fields of y sorted by key.
func keyOrder(y *Node) []int {
	res := make([]int, len(y.Fields))
	for i := range res {
		res[i] = i
	}
	slices.SortFunc(res, func(i, j int) int {
		return strings.Compare(y.Fields[i].String, y.Fields[j].String)
	})
	return res
}
