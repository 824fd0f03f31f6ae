package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/manip/encode"
	"github.com/signadot/manip/format"
	"github.com/signadot/manip/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// parseOpts detects the input format unless one is given.
func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	switch {
	case cfg.InFormat != nil:
		return []parse.ParseOption{parse.ParseFormat(*cfg.InFormat)}
	case cfg.Y:
		return []parse.ParseOption{parse.ParseYAML()}
	case cfg.J:
		return []parse.ParseOption{parse.ParseJSON()}
	}
	return []parse.ParseOption{parse.ParseDetect()}
}

func (cfg *MainConfig) outFormat() format.Format {
	f := format.JSONFormat
	if cfg.Y {
		f = format.YAMLFormat
	}
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	return f
}

// plainEncOpts are the encoding options without colour.
func (cfg *MainConfig) plainEncOpts() []encode.EncodeOption {
	return []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.EncodeWire(cfg.WireOut),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := cfg.plainEncOpts()
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// useColor is -color when given, and otherwise whether w is a
// terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ApplyConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg as string'"`
	File   bool `cli:"name=f desc='patch arg as file'"`
	Diff   bool `cli:"name=d aliases=diff desc='print a line diff instead of the result'"`

	Apply *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type OpsConfig struct {
	*MainConfig

	Ops *cli.Command
}

type ServeConfig struct {
	*MainConfig
	JSONClone bool `cli:"name=json-clone desc='copy documents by a JSON round trip'"`

	Serve *cli.Command
}
