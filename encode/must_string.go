package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/manip/ir"
)

// MustString renders node as compact JSON, panicking on failure.
func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, EncodeWire(true)); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
