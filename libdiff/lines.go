// Package libdiff computes line diffs between encoded documents.
package libdiff

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/manip/encode"
	"github.com/signadot/manip/ir"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (o Op) Prefix() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return " "
	}
}

type Line struct {
	Op   Op
	Text string
}

// Lines returns the line by line difference from -> to.
func Lines(from, to string) []Line {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)
	var res []Line
	for _, d := range diffs {
		var op Op
		switch d.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		default:
			op = Equal
		}
		for _, text := range strings.SplitAfter(d.Text, "\n") {
			if text == "" {
				continue
			}
			res = append(res, Line{Op: op, Text: strings.TrimSuffix(text, "\n")})
		}
	}
	return res
}

// Changed reports whether any line differs.
func Changed(lines []Line) bool {
	for _, l := range lines {
		if l.Op != Equal {
			return true
		}
	}
	return false
}

// Nodes encodes from and to with opts and diffs the results.
func Nodes(from, to *ir.Node, opts ...encode.EncodeOption) ([]Line, error) {
	fromBuf := bytes.NewBuffer(nil)
	if err := encode.Encode(from, fromBuf, opts...); err != nil {
		return nil, fmt.Errorf("error encoding original: %w", err)
	}
	toBuf := bytes.NewBuffer(nil)
	if err := encode.Encode(to, toBuf, opts...); err != nil {
		return nil, fmt.Errorf("error encoding result: %w", err)
	}
	return Lines(fromBuf.String(), toBuf.String()), nil
}

// Write prints lines prefixed by their Op, coloured when colors is set.
func Write(w io.Writer, lines []Line, colors bool) error {
	ins := fmt.Sprint
	del := fmt.Sprint
	if colors {
		ins = color.New(color.FgGreen).Sprint
		del = color.New(color.FgRed).Sprint
	}
	for _, l := range lines {
		s := l.Op.Prefix() + " " + l.Text
		switch l.Op {
		case Insert:
			s = ins(s)
		case Delete:
			s = del(s)
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}
