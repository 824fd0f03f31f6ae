package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/signadot/manip/encode"
	"github.com/signadot/manip/ir"
)

var out io.Writer = os.Stderr

// SetOutput redirects tracing, returning the previous writer.
func SetOutput(w io.Writer) io.Writer {
	prev := out
	out = w
	return prev
}

// Logf writes a trace line. *ir.Node arguments, formatted with %v, are
// rendered as compact JSON and ir.Path arguments in dotted form.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.Marshal(a)
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			if x == nil {
				args[i] = "<absent>"
				continue
			}
			args[i] = nodeString(x)
		case ir.Path:
			args[i] = x.String()
		}
	}
	fmt.Fprintf(out, msg, args...)
}

func nodeString(x *ir.Node) (s string) {
	defer func() {
		if recover() != nil {
			s = fmt.Sprintf("[raw *ir.Node] %v", x)
		}
	}()
	return encode.MustString(x)
}
