package main

import (
	"fmt"
	"os"

	"github.com/signadot/formtree/encode"
	"github.com/signadot/formtree/fieldtree"
	"github.com/signadot/formtree/mergeop"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	d, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("could not read patch %s: %w", args[0], err)
	}
	root, err := readTree(cfg.MainConfig, args[1:])
	if err != nil {
		return err
	}
	var res *fieldtree.Node
	if cfg.Merge {
		res, err = mergeop.MergePatch(root, d)
	} else {
		res, err = mergeop.JSONPatch(root, d)
	}
	if err != nil {
		return fmt.Errorf("error patching with %s: %w", args[0], err)
	}
	if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
