package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/signadot/tony-format/go-rtti/marshal"
	"github.com/signadot/tony-format/go-rtti/patch"
)

func patchDocs(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Cmd.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Patch == "" {
		return fmt.Errorf("%w: a patch is required (-p)", cli.ErrUsage)
	}
	doc := []byte(cfg.Patch)
	if cfg.File {
		doc, err = os.ReadFile(cfg.Patch)
		if err != nil {
			return fmt.Errorf("could not read patch: %w", err)
		}
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
		if cfg.Merge {
			a, err = patch.Merge(a, doc)
		} else {
			a, err = patch.Apply(a, doc)
		}
		if err != nil {
			return fmt.Errorf("error patching %s: %w", in.name, err)
		}
		d, err := m.Render(a, cfg.mapOpts(cc.Out)...)
		if err != nil {
			return err
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
