package main

import (
	"fmt"

	"github.com/signadot/manip"
	"github.com/signadot/manip/encode"
	"github.com/signadot/manip/ir"
	"github.com/signadot/manip/libdiff"

	"github.com/scott-cotton/cli"
)

func apply(cfg *ApplyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Apply.Parse(cc, args)
	if err != nil {
		cfg.Apply.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: apply requires a patch argument", cli.ErrUsage)
	}
	patch, err := getPatch(cfg, cc, args[0])
	if err != nil {
		return err
	}
	changed := false
	for i, file := range inputFiles(args[1:]) {
		doc, err := getObjFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		res, err := manip.Apply(doc, patch)
		if err != nil {
			return fmt.Errorf("error applying patch to %s: %w", file, err)
		}
		if err := writeSep(cc.Out, i > 0); err != nil {
			return err
		}
		if cfg.Diff {
			diff, err := applyDiff(cfg, cc, doc, res)
			if err != nil {
				return fmt.Errorf("error diffing %s: %w", file, err)
			}
			changed = changed || diff
			continue
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	if changed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func getPatch(cfg *ApplyConfig, cc *cli.Context, arg string) (*ir.Node, error) {
	res, err := getish(cfg.String, cfg.File, cc, arg, cfg.parseOpts())
	if err != nil {
		return nil, fmt.Errorf("%w: error reading patch: %w", cli.ErrUsage, err)
	}
	return res, nil
}

func applyDiff(cfg *ApplyConfig, cc *cli.Context, from, to *ir.Node) (bool, error) {
	lines, err := libdiff.Nodes(from, to, cfg.plainEncOpts()...)
	if err != nil {
		return false, err
	}
	if err := libdiff.Write(cc.Out, lines, cfg.useColor(cc.Out)); err != nil {
		return false, err
	}
	return libdiff.Changed(lines), nil
}
