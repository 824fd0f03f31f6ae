package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFields(t *testing.T) {
	obj := Object()
	obj.SetField("b", FromInt(1))
	obj.SetField("a", FromInt(2))
	obj.SetField("b", FromInt(3))
	if diff := cmp.Diff([]string{"b", "a"}, obj.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if v := Field(obj, "b"); v == nil || *v.Int64 != 3 {
		t.Errorf("b = %+v, want 3", v)
	}
	if !obj.DeleteField("b") {
		t.Errorf("DeleteField(b) reported absent")
	}
	if obj.DeleteField("b") {
		t.Errorf("DeleteField(b) twice reported present")
	}
	if diff := cmp.Diff([]string{"a"}, obj.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if Field(FromInt(1), "a") != nil {
		t.Errorf("Field of a scalar should be nil")
	}
}

func TestClone(t *testing.T) {
	orig := FromKeyVals([]KeyVal{
		{Key: "n", Val: FromInt(1)},
		{Key: "list", Val: FromSlice([]*Node{FromString("x")})},
		{Key: "nil", Val: nil},
	})
	c := orig.Clone()
	*Field(c, "n").Int64 = 2
	Field(c, "list").Values[0].String = "y"
	c.SetField("new", Null())

	if *Field(orig, "n").Int64 != 1 {
		t.Errorf("clone shares an integer with the original")
	}
	if Field(orig, "list").Values[0].String != "x" {
		t.Errorf("clone shares array elements with the original")
	}
	if Field(orig, "new") != nil {
		t.Errorf("clone shares fields with the original")
	}
	if Field(orig, "nil").Type != NullType {
		t.Errorf("nil value should become null")
	}
	var nilNode *Node
	if nilNode.Clone() != nil {
		t.Errorf("clone of nil should be nil")
	}
}

func TestReset(t *testing.T) {
	n := FromInt(3)
	parent := FromSlice([]*Node{n})
	n.Reset(ObjectType).SetField("a", FromBool(true))
	got := parent.Values[0]
	if got.Type != ObjectType || got.Int64 != nil {
		t.Fatalf("reset node = %+v", got)
	}
	if diff := cmp.Diff([]string{"a"}, got.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
}

func TestFromMap(t *testing.T) {
	obj := FromMap(map[string]*Node{"z": FromInt(1), "a": FromInt(2)})
	if diff := cmp.Diff([]string{"a", "z"}, obj.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	m := ToMap(obj)
	if len(m) != 2 || *m["z"].Int64 != 1 {
		t.Errorf("ToMap = %v", m)
	}
}
