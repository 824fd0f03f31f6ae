package ir

import (
	"math"
	"strconv"
	"strings"
)

// Float returns the numeric value of a number node.
func Float(n *Node) (float64, bool) {
	if n == nil || n.Type != NumberType {
		return 0, false
	}
	if n.Int64 != nil {
		return float64(*n.Int64), true
	}
	if n.Float64 != nil {
		return *n.Float64, true
	}
	f, err := strconv.ParseFloat(n.Number, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Int coerces n to an integer. Floats are truncated, strings contribute
// their leading decimal integer ("12abc" is 12) and everything else,
// including a nil node, is 0.
func Int(n *Node) int64 {
	if n == nil {
		return 0
	}
	switch n.Type {
	case NumberType:
		if n.Int64 != nil {
			return *n.Int64
		}
		f, ok := Float(n)
		if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return int64(f)
	case StringType:
		return leadingInt(n.String)
	}
	return 0
}

func leadingInt(s string) int64 {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0
	}
	i, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0
	}
	return i
}
