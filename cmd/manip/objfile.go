package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/manip/ir"
	"github.com/signadot/manip/parse"

	"github.com/scott-cotton/cli"
)

func getObjFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*ir.Node, error) {
	var (
		r io.Reader
	)
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return parse.Parse(d, opts...)
}

// getish reads arg as a document (s) or as the path of a file holding
// one (f). Neither flag means s.
func getish(s, f bool, cc *cli.Context, arg string, opts []parse.ParseOption) (*ir.Node, error) {
	if s && f {
		return nil, fmt.Errorf("%w: only one of -s, -f may be specified", cli.ErrUsage)
	}
	if f {
		return getObjFile(cc, arg, opts...)
	}
	return parse.Parse([]byte(strings.TrimSpace(arg)), opts...)
}

// inputFiles defaults to stdin.
func inputFiles(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func writeSep(w io.Writer, f bool) error {
	if !f {
		return nil
	}
	_, err := w.Write([]byte("---\n"))
	return err
}
