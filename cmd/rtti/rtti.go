package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/signadot/tony-format/go-rtti/meta"
)

func rttiMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if count(cfg.J, cfg.Y) > 1 {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func count(vs ...bool) int {
	ttl := 0
	for _, v := range vs {
		if v {
			ttl++
		}
	}
	return ttl
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// lookupType returns the registered type called name.
func lookupType(name string) (*meta.Type, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: a type is required (-t)", cli.ErrUsage)
	}
	t := meta.Lookup(name)
	if t == nil {
		return nil, fmt.Errorf("%w: %q", meta.ErrTypeNotFound, name)
	}
	return t, nil
}

// readInputs reads each file in args, or stdin if there are none. The
// file "-" also means stdin.
func readInputs(args []string) ([]input, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	res := make([]input, 0, len(args))
	for _, arg := range args {
		var (
			d   []byte
			err error
		)
		if arg == "-" {
			d, err = io.ReadAll(os.Stdin)
		} else {
			d, err = os.ReadFile(arg)
		}
		if err != nil {
			return nil, fmt.Errorf("could not read %q: %w", arg, err)
		}
		res = append(res, input{name: arg, data: d})
	}
	return res, nil
}

type input struct {
	name string
	data []byte
}

func writeSep(w io.Writer, i, n int) error {
	if i == n-1 {
		_, err := w.Write([]byte("\n"))
		return err
	}
	_, err := w.Write([]byte("\n---\n"))
	return err
}
