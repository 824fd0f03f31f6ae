package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "manip").
		WithSynopsis("manip [opts] command [opts]").
		WithDescription("manip applies declarative update patches to JSON and YAML documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return manipMain(cfg, cc, args)
		}).
		WithSubs(
			ApplyCommand(cfg),
			GetCommand(cfg),
			OpsCommand(cfg),
			ServeCommand(cfg))
}

func ApplyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ApplyConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("apply").
		WithAliases("a", "ap").
		WithSynopsis("apply [-s|-f] [-d] <patch> [files]").
		WithDescription(applyDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return apply(cfg, cc, args)
		})
	cfg.Apply = cmd
	return cmd
}

const applyDescription = `apply a patch to documents

A patch is an object whose '$' prefixed keys name operators, for example

  {"$set": {"a.b": 1}, "$push": {"tags": {"$each": ["x", "y"], "$sort": "."}}}

Operators run in the order written. Run 'manip ops' for the list of
available operators.

With -d, a line diff between each document and its result is printed
instead of the result, and the exit code is 1 if any document changed.`

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g", "ge").
		WithSynopsis("get <path> [files]").
		WithDescription("get the values at a dotted path from documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func OpsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &OpsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Ops, "ops").
		WithSynopsis("ops").
		WithDescription("list available patch operators").
		WithRun(func(cc *cli.Context, args []string) error {
			return ops(cfg, cc, args)
		})
}

func ServeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ServeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Serve, "serve").
		WithSynopsis("serve [-json-clone]").
		WithDescription("serve manip.apply and manip.operators as JSON-RPC 2.0 on stdin/stdout").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return serve(cfg, cc, args)
		})
}
