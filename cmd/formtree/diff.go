package main

import (
	"fmt"

	"github.com/signadot/formtree/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	from, to := args[0], args[1]
	if cfg.Reverse {
		from, to = to, from
	}
	t1, err := readTree(cfg.MainConfig, []string{from})
	if err != nil {
		return err
	}
	t2, err := readTree(cfg.MainConfig, []string{to})
	if err != nil {
		return err
	}
	changes, err := libdiff.Diff(t1, t2)
	if err != nil {
		return err
	}
	if len(changes) == 0 {
		return nil
	}
	if err := libdiff.Format(changes, cc.Out, cfg.colors(cc.Out)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
