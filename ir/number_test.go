package ir

import (
	"math"
	"testing"
)

func TestInt(t *testing.T) {
	tests := []struct {
		name string
		in   *Node
		want int64
	}{
		{"nil", nil, 0},
		{"null", Null(), 0},
		{"int", FromInt(-7), -7},
		{"float truncates", FromFloat(2.9), 2},
		{"negative float truncates", FromFloat(-2.9), -2},
		{"nan", FromFloat(math.NaN()), 0},
		{"inf", FromFloat(math.Inf(1)), 0},
		{"numeric string", FromString("42"), 42},
		{"leading digits", FromString("12abc"), 12},
		{"leading space and sign", FromString("  -3x"), -3},
		{"no digits", FromString("abc"), 0},
		{"sign only", FromString("-"), 0},
		{"bool", FromBool(true), 0},
		{"object", Object(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Int(tt.in); got != tt.want {
				t.Errorf("Int() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFloat(t *testing.T) {
	if f, ok := Float(FromInt(3)); !ok || f != 3 {
		t.Errorf("Float(3) = %v, %t", f, ok)
	}
	if f, ok := Float(&Node{Type: NumberType, Number: "2.5"}); !ok || f != 2.5 {
		t.Errorf("Float(\"2.5\") = %v, %t", f, ok)
	}
	if _, ok := Float(FromString("3")); ok {
		t.Errorf("Float of a string should fail")
	}
}

func TestFromNumber(t *testing.T) {
	if n := FromNumber("12"); n.Int64 == nil || *n.Int64 != 12 {
		t.Errorf("FromNumber(12) = %+v", n)
	}
	if n := FromNumber("1.5"); n.Float64 == nil || *n.Float64 != 1.5 {
		t.Errorf("FromNumber(1.5) = %+v", n)
	}
	if n := FromNumber("1e400"); n.Number != "1e400" || n.Float64 != nil || n.Int64 != nil {
		t.Errorf("FromNumber(1e400) = %+v", n)
	}
}
