package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func formtreeMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.J && cfg.Y {
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

// outOpt redirects command output to the file named by a. "-" keeps stdout.
// A later -o replaces an earlier one, whose file is closed.
func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	if cfg.CloseOut != nil {
		if err := cfg.CloseOut(); err != nil {
			return nil, fmt.Errorf("closing %s: %w", cfg.Out, err)
		}
		cfg.CloseOut = nil
		cc.Out = os.Stdout
	}
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.Create(a)
	if err != nil {
		return nil, fmt.Errorf("output: %w", err)
	}
	cc.Out, cfg.CloseOut = f, f.Close
	return nil, nil
}
