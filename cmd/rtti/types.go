package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/tony-format/go-rtti/meta"
)

func types(cfg *TypesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Types.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: types takes no arguments", cli.ErrUsage)
	}
	for _, t := range meta.Default().Types() {
		if !cfg.Builtins && isBuiltin(t) {
			continue
		}
		fmt.Fprintf(cc.Out, "%s\t%s\n", t.Name(), t.Kind())
	}
	return nil
}

func isBuiltin(t *meta.Type) bool {
	return t.IsNumber() || t.IsBool() || t.IsString()
}

func describe(cfg *DescribeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Describe.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: describe requires a type", cli.ErrUsage)
	}
	for i, name := range args {
		t, err := lookupType(name)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(cc.Out)
		}
		fmt.Fprintln(cc.Out, t.Describe())
	}
	return nil
}

func enum(cfg *EnumConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Enum.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: enum requires one type", cli.ErrUsage)
	}
	t, err := lookupType(args[0])
	if err != nil {
		return err
	}
	e := t.Enum()
	if e == nil {
		return fmt.Errorf("%w: %s is a %s, not an enum", meta.ErrTypeMismatch, t.Name(), t.Kind())
	}
	vals := e.Values()
	for i, name := range e.Names() {
		fmt.Fprintf(cc.Out, "%s\t%d\n", name, vals[i])
	}
	return nil
}
