package main

import (
	"bytes"
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/tony-format/go-rtti/encode"
	"github.com/signadot/tony-format/go-rtti/libdiff"
	"github.com/signadot/tony-format/go-rtti/marshal"
	"github.com/signadot/tony-format/go-rtti/meta"
	"github.com/signadot/tony-format/go-rtti/parse"
)

func decode(cfg *DecodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Decode.Parse(cc, args)
	if err != nil {
		return err
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
		d, err := m.Render(a, cfg.mapOpts(cc.Out)...)
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", in.name, err)
		}
		if _, err := cc.Out.Write(d); err != nil {
			return err
		}
		if err := writeSep(cc.Out, i, len(ins)); err != nil {
			return err
		}
	}
	return nil
}

func newValue(cfg *NewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.New.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: new requires one type", cli.ErrUsage)
	}
	t, err := lookupType(args[0])
	if err != nil {
		return err
	}
	a := meta.New(t)
	if t.IsComposite() {
		ctor, err := t.DefaultConstructor()
		if err != nil {
			return err
		}
		if a, err = ctor.Invoke(); err != nil {
			return err
		}
	}
	d, err := marshal.DefaultMapper().Render(a, cfg.mapOpts(cc.Out)...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cc.Out, "%s\n", d)
	return err
}

// diff shows each input against its decoded and re-encoded rendering,
// which has the defaults filled in and keys in field order.
func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	t, err := lookupType(cfg.Type)
	if err != nil {
		return err
	}
	ins, err := readInputs(args)
	if err != nil {
		return err
	}
	// colors go on the diff lines, not in the renderings
	eOpts := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.Indent(max(cfg.Indent, 2)),
	}
	m := marshal.DefaultMapper()
	for i, in := range ins {
		node, err := parse.Parse(in.data, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", in.name, err)
		}
		a, err := marshal.Decode(node, t)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", in.name, err)
		}
		from := &bytes.Buffer{}
		if err := encode.Encode(node, from, eOpts...); err != nil {
			return err
		}
		to, err := m.Render(a, marshal.WithEncodeOptions(eOpts...))
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", in.name, err)
		}
		lines := libdiff.Lines(from.String(), string(to))
		if !libdiff.Changed(lines) {
			continue
		}
		fmt.Fprintf(cc.Out, "--- %s\n+++ %s\n", in.name, t.Name())
		fmt.Fprint(cc.Out, libdiff.Format(lines, cfg.useColor(cc.Out)))
		if i < len(ins)-1 {
			fmt.Fprintln(cc.Out)
		}
	}
	return nil
}
