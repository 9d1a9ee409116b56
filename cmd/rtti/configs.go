package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/signadot/tony-format/go-rtti/encode"
	"github.com/signadot/tony-format/go-rtti/format"
	"github.com/signadot/tony-format/go-rtti/marshal"
	"github.com/signadot/tony-format/go-rtti/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`
	Indent  int  `cli:"name=indent desc='indent output by n spaces per level'"`

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

func (cfg *MainConfig) inFormat() format.Format {
	fmat := format.JSONFormat
	if cfg.Y {
		fmat = format.YAMLFormat
	}
	if cfg.InFormat != nil {
		fmat = *cfg.InFormat
	}
	return fmat
}

func (cfg *MainConfig) outFormat() format.Format {
	fmat := format.JSONFormat
	if cfg.Y {
		fmat = format.YAMLFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	return fmat
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{parse.ParseFormat(cfg.inFormat())}
}

func (cfg *MainConfig) unmapOpts() []marshal.UnmapOption {
	return []marshal.UnmapOption{marshal.WithParseOptions(cfg.parseOpts()...)}
}

func (cfg *MainConfig) mapOpts(w io.Writer) []marshal.MapOption {
	return []marshal.MapOption{marshal.WithEncodeOptions(cfg.encOpts(w)...)}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.EncodeWire(cfg.WireOut),
		encode.Indent(cfg.Indent),
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// useColor reports whether output to w is colored: always with -color,
// otherwise when w is a terminal and -color was not given explicitly.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type TypesConfig struct {
	*MainConfig
	Builtins bool `cli:"name=a desc='include builtin types'"`

	Types *cli.Command
}

type DescribeConfig struct {
	*MainConfig

	Describe *cli.Command
}

type EnumConfig struct {
	*MainConfig

	Enum *cli.Command
}

type DecodeConfig struct {
	*MainConfig
	Type string `cli:"name=t aliases=type desc='registered type name'"`

	Decode *cli.Command
}

type NewConfig struct {
	*MainConfig

	New *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Type string `cli:"name=t aliases=type desc='registered type name'"`

	Diff *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Type string `cli:"name=t aliases=type desc='registered type name'"`
	Expr string `cli:"name=e aliases=expr desc='expression to evaluate'"`

	Eval *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Type  string `cli:"name=t aliases=type desc='registered type name'"`
	Patch string `cli:"name=p aliases=patch desc='patch document'"`
	File  bool   `cli:"name=f desc='patch arg as file'"`
	Merge bool   `cli:"name=m aliases=merge desc='patch is a json merge patch'"`

	Cmd *cli.Command
}

type StoreConfig struct {
	*MainConfig
	Addr   string `cli:"name=addr desc='redis address' default=localhost:6379"`
	Prefix string `cli:"name=prefix desc='key prefix' default=rtti:"`

	Store *cli.Command
}

type StorePutConfig struct {
	*StoreConfig
	Type string `cli:"name=t aliases=type desc='registered type name'"`
	TTL  time.Duration

	Put *cli.Command
}

type StoreGetConfig struct {
	*StoreConfig
	Type string `cli:"name=t aliases=type desc='registered type name'"`

	Get *cli.Command
}

type StoreDelConfig struct {
	*StoreConfig

	Del *cli.Command
}

type StoreKeysConfig struct {
	*StoreConfig

	Keys *cli.Command
}

func (cfg *StorePutConfig) mkTTL() func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		d, err := time.ParseDuration(a)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		cfg.TTL = d
		return d, nil
	}
}
