package main

import (
	"context"
	"errors"
	"io"
	"os/signal"
	"syscall"

	"github.com/signadot/manip"
	"github.com/signadot/manip/mergeop"
	"github.com/signadot/manip/rpc"

	"github.com/scott-cotton/cli"
)

func serve(cfg *ServeConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Serve.Parse(cc, args); err != nil {
		cfg.Serve.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	reg := mergeop.Default()
	reg.Freeze()
	srv := &rpc.Server{Registry: reg}
	if cfg.JSONClone {
		srv.Clone = manip.JSONClone
	}
	err := srv.Serve(ctx, &stdioReadWriteCloser{read: cc.In, write: cc.Out})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

type stdioReadWriteCloser struct {
	read  io.Reader
	write io.Writer
}

func (s *stdioReadWriteCloser) Read(p []byte) (n int, err error) {
	return s.read.Read(p)
}

func (s *stdioReadWriteCloser) Write(p []byte) (n int, err error) {
	return s.write.Write(p)
}

func (s *stdioReadWriteCloser) Close() error {
	return nil
}
