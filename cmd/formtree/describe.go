package main

import (
	"fmt"
	"strings"

	"github.com/signadot/formtree/encode"
	"github.com/signadot/formtree/fieldtree"

	"github.com/scott-cotton/cli"
)

func describe(cfg *DescribeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Describe.Parse(cc, args)
	if err != nil {
		cfg.Describe.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	root, err := readTree(cfg.MainConfig, args)
	if err != nil {
		return err
	}
	colors := cfg.colors(cc.Out)
	err = root.Walk(func(path []string, n *fieldtree.Node) error {
		p := "."
		if len(path) != 0 {
			p = strings.Join(path, fieldtree.Separator)
		}
		if colors != nil {
			p = colors.Color(encode.FieldColor, p)
		}
		_, err := fmt.Fprintf(cc.Out, "%s\t%s\n", p, n)
		return err
	})
	if err != nil {
		return err
	}
	nodes, fields := root.Count()
	_, err = fmt.Fprintf(cc.Out, "# %d nodes, %d fields\n", nodes, fields)
	return err
}
