package ir

import (
	"strconv"
	"strings"
)

// maxPad bounds how far past the end of an array SetPath will pad with
// nulls.
const maxPad = 1 << 16

// Path is a sequence of keys addressing a value from a document root.
type Path []string

// ParsePath splits a '.' delimited path. Every string is a valid path;
// the empty string addresses the empty key.
func ParsePath(p string) Path {
	return Path(strings.Split(p, "."))
}

func (p Path) String() string {
	return strings.Join(p, ".")
}

// GetPath is ParsePath(path).Get(root).
func GetPath(root *Node, path string) (*Node, bool) {
	return ParsePath(path).Get(root)
}

// SetPath is ParsePath(path).Set(root, val).
func SetPath(root *Node, path string, val *Node) *Node {
	return ParsePath(path).Set(root, val)
}

// RemovePath is ParsePath(path).Remove(root).
func RemovePath(root *Node, path string) *Node {
	return ParsePath(path).Remove(root)
}

// LookupPath is ParsePath(path).Lookup(root).
func LookupPath(root *Node, path string) (*Node, bool) {
	return ParsePath(path).Lookup(root)
}

// Get returns the value at p. Missing intermediate object keys are
// created as empty objects along the way, so Get may modify root even
// when it reports the value as absent.
func (p Path) Get(root *Node) (*Node, bool) {
	return p.walk(root, true)
}

// Lookup is like Get but never modifies root.
func (p Path) Lookup(root *Node) (*Node, bool) {
	return p.walk(root, false)
}

func (p Path) walk(root *Node, vivify bool) (*Node, bool) {
	if len(p) == 0 {
		return root, root != nil
	}
	cur := root
	n := len(p)
	for _, seg := range p[:n-1] {
		next := child(cur, seg)
		if next == nil {
			if !vivify || cur == nil || cur.Type != ObjectType {
				return nil, false
			}
			next = Object()
			cur.SetField(seg, next)
		}
		cur = next
	}
	res := child(cur, p[n-1])
	return res, res != nil
}

// Set assigns val at p and returns root. Missing intermediates are
// created as empty objects and intermediate scalars are replaced by
// empty objects. Array elements are addressed by decimal index;
// assigning past the end pads the array with nulls.
func (p Path) Set(root, val *Node) *Node {
	if len(p) == 0 {
		return root
	}
	cur := root
	n := len(p)
	for _, seg := range p[:n-1] {
		next := child(cur, seg)
		if next == nil || next.Type.IsLeaf() {
			if next != nil {
				next.Reset(ObjectType)
			} else {
				next = Object()
				if !assign(cur, seg, next) {
					return root
				}
			}
		}
		cur = next
	}
	assign(cur, p[n-1], val)
	return root
}

// Remove deletes the value at p and returns root. If any intermediate is
// missing, root is returned unchanged. Removing an array element
// replaces it with null, keeping the array length.
func (p Path) Remove(root *Node) *Node {
	if len(p) == 0 {
		return root
	}
	n := len(p)
	parent, ok := p[:n-1].Lookup(root)
	if !ok {
		return root
	}
	last := p[n-1]
	switch parent.Type {
	case ObjectType:
		parent.DeleteField(last)
	case ArrayType:
		if i, ok := parseIndex(last); ok && i < len(parent.Values) {
			parent.Values[i] = Null()
		}
	}
	return root
}

func child(node *Node, seg string) *Node {
	if node == nil {
		return nil
	}
	switch node.Type {
	case ObjectType:
		return Field(node, seg)
	case ArrayType:
		i, ok := parseIndex(seg)
		if !ok || i >= len(node.Values) {
			return nil
		}
		return node.Values[i]
	}
	return nil
}

// assign sets seg of node to val, turning node into an object when it
// cannot hold seg.
func assign(node *Node, seg string, val *Node) bool {
	if node.Type == ArrayType {
		if i, ok := parseIndex(seg); ok {
			if i < len(node.Values) {
				node.Values[i] = val
				return true
			}
			if i-len(node.Values) > maxPad {
				return false
			}
			for len(node.Values) < i {
				node.Values = append(node.Values, Null())
			}
			node.Values = append(node.Values, val)
			return true
		}
	}
	if node.Type != ObjectType {
		node.Reset(ObjectType)
	}
	node.SetField(seg, val)
	return true
}

func parseIndex(seg string) (int, bool) {
	if seg == "" {
		return 0, false
	}
	for i := 0; i < len(seg); i++ {
		if seg[i] < '0' || seg[i] > '9' {
			return 0, false
		}
	}
	i, err := strconv.Atoi(seg)
	if err != nil {
		return 0, false
	}
	return i, true
}
