package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/tony-format/go-rtti/encode"
	"github.com/signadot/tony-format/go-rtti/eval"
	"github.com/signadot/tony-format/go-rtti/marshal"
)

func evalExpr(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: an expression is required (-e)", cli.ErrUsage)
	}
	t, err := lookupType(cfg.Type)
	if err != nil {
		return err
	}
	ins, err := readInputs(args)
	if err != nil {
		return err
	}
	m := marshal.DefaultMapper()
	for i, in := range ins {
		a, err := m.Read(in.data, t, cfg.unmapOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", in.name, err)
		}
		res, err := eval.Eval(cfg.Expr, a)
		if err != nil {
			return fmt.Errorf("error evaluating %s: %w", in.name, err)
		}
		node, err := eval.ToNode(res)
		if err != nil {
			return err
		}
		if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result %d: %w", i, err)
		}
		if err := writeSep(cc.Out, i, len(ins)); err != nil {
			return err
		}
	}
	return nil
}
