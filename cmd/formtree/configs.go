package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/signadot/formtree/encode"
	"github.com/signadot/formtree/format"
	"github.com/signadot/formtree/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	J bool `cli:"name=j aliases=json desc='output json'"`
	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// parseOpts picks the input format: -I if given, else the file suffix, else
// form encoding.
func (cfg *MainConfig) parseOpts(file string) []parse.ParseOption {
	if cfg.InFormat != nil {
		return []parse.ParseOption{parse.ParseFormat(*cfg.InFormat)}
	}
	if f, ok := format.FromSuffix(filepath.Ext(file)); ok && f.IsInput() {
		return []parse.ParseOption{parse.ParseFormat(f)}
	}
	return []parse.ParseOption{parse.ParseForm()}
}

func (cfg *MainConfig) outFormat() format.Format {
	fmt := format.TextFormat
	switch {
	case cfg.J:
		fmt = format.JSONFormat
	case cfg.Y:
		fmt = format.YAMLFormat
	}
	if cfg.OutFormat != nil {
		fmt = *cfg.OutFormat
	}
	return fmt
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
	}
	if colors := cfg.colors(w); colors != nil {
		res = append(res, encode.EncodeColors(colors))
	}
	return res
}

// colors returns the colours to use when writing to w, or nil. -color
// forces them on or off; without it they are used on terminals.
func (cfg *MainConfig) colors(w io.Writer) *encode.Colors {
	if cfg.Color {
		return encode.NewColors()
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return encode.NewColors()
	}
	return nil
}

type TreeConfig struct {
	*MainConfig
	Where string `cli:"name=where desc='only keep pairs for which the expression is true'"`

	Tree *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DescribeConfig struct {
	*MainConfig

	Describe *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=merge desc='the patch is a json merge patch'"`

	Patch *cli.Command
}
