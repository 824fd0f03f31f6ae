package manip

import (
	"bytes"

	"github.com/signadot/manip/encode"
	"github.com/signadot/manip/format"
	"github.com/signadot/manip/ir"
	"github.com/signadot/manip/parse"
)

// CloneFunc produces a copy of a document sharing no mutable state with
// it.
type CloneFunc func(*ir.Node) (*ir.Node, error)

// DeepClone copies doc node by node. It is the default CloneFunc.
func DeepClone(doc *ir.Node) (*ir.Node, error) {
	return doc.Clone(), nil
}

// JSONClone copies doc by encoding it as JSON and decoding the result.
// Numbers which JSON cannot represent become null.
func JSONClone(doc *ir.Node) (*ir.Node, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(doc, buf, encode.EncodeWire(true)); err != nil {
		return nil, err
	}
	return parse.Parse(buf.Bytes(), parse.ParseFormat(format.JSONFormat))
}
