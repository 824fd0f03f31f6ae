package main

import (
	"fmt"

	"github.com/signadot/manip"
	"github.com/signadot/manip/mergeop"

	"github.com/scott-cotton/cli"
)

func ops(cfg *OpsConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Ops.Parse(cc, args); err != nil {
		cfg.Ops.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	fmt.Fprintf(cc.Out, "available patch operators:\n")
	for _, s := range mergeop.Symbols() {
		fmt.Fprintf(cc.Out, "\t- %s%s\n", manip.Sentinel, s)
	}
	return nil
}
