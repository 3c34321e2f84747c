package main

import (
	"fmt"

	"github.com/signadot/formtree/encode"
	"github.com/signadot/formtree/eval"
	"github.com/signadot/formtree/fieldtree"

	"github.com/scott-cotton/cli"
)

func tree(cfg *TreeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tree.Parse(cc, args)
	if err != nil {
		cfg.Tree.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	pairs, err := readPairs(cfg.MainConfig, args)
	if err != nil {
		return err
	}
	if cfg.Where != "" {
		w, err := eval.Compile(cfg.Where)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		pairs, err = w.Filter(pairs)
		if err != nil {
			return err
		}
	}
	root := fieldtree.Build(pairs)
	if err := encode.Encode(root, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
