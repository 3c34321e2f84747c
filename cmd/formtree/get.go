package main

import (
	"fmt"

	"github.com/signadot/formtree/encode"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a node path", cli.ErrUsage)
	}
	path := args[0]
	root, err := readTree(cfg.MainConfig, args[1:])
	if err != nil {
		return err
	}
	node := root.GetPath(path)
	if node == nil {
		// nothing at path, nothing to print
		return cli.ExitCodeErr(1)
	}
	if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
