package main

import (
	"fmt"

	"github.com/signadot/manip/encode"
	"github.com/signadot/manip/ir"

	"github.com/scott-cotton/cli"
)

// get prints the value at a path in each input. Inputs lacking the path
// print nothing and make the exit code 1.
func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a dotted path", cli.ErrUsage)
	}
	path := ir.ParsePath(args[0])
	missing := false
	printed := 0
	for _, file := range inputFiles(args[1:]) {
		doc, err := getObjFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		v, ok := path.Lookup(doc)
		if !ok {
			missing = true
			continue
		}
		if err := writeSep(cc.Out, printed > 0); err != nil {
			return err
		}
		if err := encode.Encode(v, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s of %s: %w", path, file, err)
		}
		printed++
	}
	if missing {
		return cli.ExitCodeErr(1)
	}
	return nil
}
