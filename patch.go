package manip

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/signadot/manip/debug"
	"github.com/signadot/manip/encode"
	"github.com/signadot/manip/format"
	"github.com/signadot/manip/ir"
	"github.com/signadot/manip/mergeop"
	"github.com/signadot/manip/parse"
)

// Sentinel prefixes the keys of a patch which name operators.
const Sentinel = "$"

type ApplyConfig struct {
	Clone    CloneFunc
	Registry *mergeop.Registry
}

type ApplyOpt func(*ApplyConfig)

// WithClone replaces the function used to copy the input document.
func WithClone(f CloneFunc) ApplyOpt {
	return func(c *ApplyConfig) { c.Clone = f }
}

// WithRegistry looks operators up in r instead of mergeop.Default().
func WithRegistry(r *mergeop.Registry) ApplyOpt {
	return func(c *ApplyConfig) { c.Registry = r }
}

type step struct {
	tag  string
	op   mergeop.Op
	spec *ir.Node
}

// Apply returns the result of applying patch to a copy of doc. Neither
// doc nor patch is modified.
//
// Keys of patch starting with '$' name operators, which run in key
// order, each on the result of the previous one. Other keys are
// ignored. All tags are resolved before any operator runs, so a patch
// naming an unknown operator fails with an *UnknownOperatorError and
// nothing is applied.
func Apply(doc, patch *ir.Node, opts ...ApplyOpt) (*ir.Node, error) {
	cfg := &ApplyConfig{
		Clone:    DeepClone,
		Registry: mergeop.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if patch == nil || patch.Type != ir.ObjectType {
		t := "nil"
		if patch != nil {
			t = patch.Type.String()
		}
		return nil, fmt.Errorf("%w: expected an object, got %s", ErrBadPatch, t)
	}
	steps, err := resolve(cfg.Registry, patch)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		doc = ir.Null()
	}
	res, err := cfg.Clone(doc)
	if err != nil {
		return nil, fmt.Errorf("error cloning document: %w", err)
	}
	for _, s := range steps {
		if debug.Apply() {
			debug.Logf("apply %s%s with %v\n", Sentinel, s.tag, s.spec)
		}
		res, err = s.op.Patch(res, s.spec)
		if err != nil {
			return nil, fmt.Errorf("%s%s: %w", Sentinel, s.tag, err)
		}
		if res == nil {
			return nil, fmt.Errorf("%s%s: operator returned no document", Sentinel, s.tag)
		}
	}
	return res, nil
}

func resolve(reg *mergeop.Registry, patch *ir.Node) ([]step, error) {
	steps := make([]step, 0, len(patch.Fields))
	for i, f := range patch.Fields {
		key := f.String
		if !strings.HasPrefix(key, Sentinel) {
			if debug.Apply() {
				debug.Logf("ignoring patch key %q\n", key)
			}
			continue
		}
		tag := key[len(Sentinel):]
		op := reg.Lookup(tag)
		if op == nil {
			return nil, &UnknownOperatorError{Tag: tag}
		}
		steps = append(steps, step{tag: tag, op: op, spec: patch.Values[i]})
	}
	return steps, nil
}

// ApplyJSON is Apply for JSON encoded documents and patches. The result
// is compact JSON.
func ApplyJSON(doc, patch []byte, opts ...ApplyOpt) ([]byte, error) {
	yDoc, err := parse.Parse(doc, parse.ParseFormat(format.JSONFormat))
	if err != nil {
		return nil, fmt.Errorf("error decoding document: %w", err)
	}
	yPatch, err := parse.Parse(patch, parse.ParseFormat(format.JSONFormat))
	if err != nil {
		return nil, fmt.Errorf("error decoding patch: %w", err)
	}
	res, err := Apply(yDoc, yPatch, opts...)
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(res, buf, encode.EncodeWire(true)); err != nil {
		return nil, err
	}
	return bytes.TrimSpace(buf.Bytes()), nil
}
