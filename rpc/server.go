// Package rpc serves patch application as JSON-RPC 2.0.
//
// Methods:
//
//	manip.apply      {"document": <json>, "patch": <json>} -> {"document": <json>}
//	manip.operators  -> ["$addToSet", "$inc", ...]
package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/signadot/manip"
	"github.com/signadot/manip/debug"
	"github.com/signadot/manip/mergeop"

	"go.lsp.dev/jsonrpc2"
)

const (
	MethodApply     = "manip.apply"
	MethodOperators = "manip.operators"
)

type ApplyParams struct {
	Document json.RawMessage `json:"document"`
	Patch    json.RawMessage `json:"patch"`
}

type ApplyResult struct {
	Document json.RawMessage `json:"document"`
}

type Server struct {
	// Registry defaults to mergeop.Default().
	Registry *mergeop.Registry
	// Clone defaults to manip.DeepClone.
	Clone manip.CloneFunc
}

// Serve answers requests read from rwc until it is closed or ctx is
// done.
func (s *Server) Serve(ctx context.Context, rwc io.ReadWriteCloser) error {
	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(rwc))
	conn.Go(ctx, s.Handle)
	select {
	case <-ctx.Done():
		conn.Close()
		<-conn.Done()
		return ctx.Err()
	case <-conn.Done():
	}
	err := conn.Err()
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrClosedPipe) {
		return nil
	}
	return err
}

func (s *Server) Handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	if debug.RPC() {
		debug.Logf("rpc %s %s\n", req.Method(), string(req.Params()))
	}
	switch req.Method() {
	case MethodApply:
		params := &ApplyParams{}
		if err := json.Unmarshal(req.Params(), params); err != nil {
			return reply(ctx, nil, fmt.Errorf("%w: %w", jsonrpc2.ErrInvalidParams, err))
		}
		res, err := manip.ApplyJSON(params.Document, params.Patch, s.applyOpts()...)
		if err != nil {
			return reply(ctx, nil, err)
		}
		return reply(ctx, &ApplyResult{Document: res}, nil)
	case MethodOperators:
		syms := s.registry().Symbols()
		res := make([]string, len(syms))
		for i, sym := range syms {
			res[i] = manip.Sentinel + sym
		}
		return reply(ctx, res, nil)
	}
	return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
}

func (s *Server) registry() *mergeop.Registry {
	if s.Registry == nil {
		return mergeop.Default()
	}
	return s.Registry
}

func (s *Server) applyOpts() []manip.ApplyOpt {
	opts := []manip.ApplyOpt{manip.WithRegistry(s.registry())}
	if s.Clone != nil {
		opts = append(opts, manip.WithClone(s.Clone))
	}
	return opts
}
