package ir

import (
	"maps"
	"slices"
	"strconv"
)

// Node is a document value. Type selects which of the remaining fields
// are meaningful.
type Node struct {
	Type   Type
	Fields []*Node
	Values []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Fields = nil
	dst.Values = nil
	if y.Fields != nil {
		dst.Fields = make([]*Node, len(y.Fields))
		for i, yf := range y.Fields {
			dst.Fields[i] = yf.Clone()
		}
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = yv.Clone()
		}
	}
	dst.String = y.String
	dst.Bool = y.Bool
	dst.Number = y.Number
	dst.Float64 = nil
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	dst.Int64 = nil
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	return dst
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

// FromNumber parses a textual number, preferring an integer
// representation, then a float one, and falling back to keeping the
// text.
func FromNumber(v string) *Node {
	if i, err := strconv.ParseInt(v, 10, 64); err == nil {
		return FromInt(i)
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return FromFloat(f)
	}
	return &Node{Type: NumberType, Number: v}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

// Object returns an empty object node.
func Object() *Node {
	return &Node{Type: ObjectType, Fields: []*Node{}, Values: []*Node{}}
}

func FromMap(yMap map[string]*Node) *Node {
	keys := slices.Sorted(maps.Keys(yMap))
	kvs := make([]KeyVal, len(keys))
	for i, key := range keys {
		kvs[i] = KeyVal{Key: key, Val: yMap[key]}
	}
	return FromKeyVals(kvs)
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object keeping the order of kvs. Later
// duplicates of a key replace the value of the first occurrence.
func FromKeyVals(kvs []KeyVal) *Node {
	res := Object()
	for _, kv := range kvs {
		val := kv.Val
		if val == nil {
			val = Null()
		}
		res.SetField(kv.Key, val)
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type:   ArrayType,
		Values: make([]*Node, len(ySlice)),
	}
	copy(res.Values, ySlice)
	return res
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i := range node.Fields {
		res[node.Fields[i].String] = node.Values[i]
	}
	return res
}

// Field returns the value of field in the object y, or nil.
func Field(y *Node, field string) *Node {
	if i := y.FieldIndex(field); i >= 0 {
		return y.Values[i]
	}
	return nil
}

// FieldIndex returns the position of field in the object y, or -1.
func (y *Node) FieldIndex(field string) int {
	if y == nil || y.Type != ObjectType {
		return -1
	}
	for i, f := range y.Fields {
		if f.String == field {
			return i
		}
	}
	return -1
}

// SetField assigns val to field, appending the field if y does not have
// it yet. y must be an object.
func (y *Node) SetField(field string, val *Node) {
	if i := y.FieldIndex(field); i >= 0 {
		y.Values[i] = val
		return
	}
	y.Fields = append(y.Fields, FromString(field))
	y.Values = append(y.Values, val)
}

// DeleteField removes field from the object y, reporting whether it was
// present.
func (y *Node) DeleteField(field string) bool {
	i := y.FieldIndex(field)
	if i < 0 {
		return false
	}
	y.Fields = slices.Delete(y.Fields, i, i+1)
	y.Values = slices.Delete(y.Values, i, i+1)
	return true
}

// Keys returns the field names of an object in order.
func (y *Node) Keys() []string {
	if y.Type != ObjectType {
		return nil
	}
	res := make([]string, len(y.Fields))
	for i, f := range y.Fields {
		res[i] = f.String
	}
	return res
}

// Reset turns y into an empty node of type t in place, so that parents
// holding y observe the change.
func (y *Node) Reset(t Type) *Node {
	*y = Node{Type: t}
	switch t {
	case ObjectType:
		y.Fields = []*Node{}
		y.Values = []*Node{}
	case ArrayType:
		y.Values = []*Node{}
	}
	return y
}
