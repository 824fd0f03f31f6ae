package libdiff

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/manip/encode"
	"github.com/signadot/manip/ir"
)

func TestLines(t *testing.T) {
	got := Lines("a\nb\nc\n", "a\nx\nc\n")
	want := []Line{
		{Op: Equal, Text: "a"},
		{Op: Delete, Text: "b"},
		{Op: Insert, Text: "x"},
		{Op: Equal, Text: "c"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if !Changed(got) {
		t.Errorf("Changed = false")
	}
	if Changed(Lines("a\n", "a\n")) {
		t.Errorf("identical text reported changed")
	}
}

func TestNodes(t *testing.T) {
	from := ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.FromInt(1)}})
	to := ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.FromInt(1)}, {Key: "b", Val: ir.FromInt(2)}})
	lines, err := Nodes(from, to)
	if err != nil {
		t.Fatal(err)
	}
	buf := bytes.NewBuffer(nil)
	if err := Write(buf, lines, false); err != nil {
		t.Fatal(err)
	}
	want := "  {\n" +
		"-   \"a\": 1\n" +
		"+   \"a\": 1,\n" +
		"+   \"b\": 2\n" +
		"  }\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	lines, err = Nodes(from, from, encode.EncodeWire(true))
	if err != nil {
		t.Fatal(err)
	}
	if Changed(lines) {
		t.Errorf("identical documents reported changed")
	}
}
