package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/formtree/fieldtree"
	"github.com/signadot/formtree/parse"
)

// readPairs decodes the pairs of every file in order; "-" or no files at
// all reads stdin.
func readPairs(cfg *MainConfig, files []string) ([]fieldtree.Pair, error) {
	if len(files) == 0 {
		files = []string{"-"}
	}
	var res []fieldtree.Pair
	for _, file := range files {
		pairs, err := readFile(cfg, file)
		if err != nil {
			return nil, fmt.Errorf("error decoding %s: %w", file, err)
		}
		res = append(res, pairs...)
	}
	return res, nil
}

func readFile(cfg *MainConfig, file string) ([]fieldtree.Pair, error) {
	var r io.Reader
	if file == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d, cfg.parseOpts(file)...)
}

func readTree(cfg *MainConfig, files []string) (*fieldtree.Node, error) {
	pairs, err := readPairs(cfg, files)
	if err != nil {
		return nil, err
	}
	return fieldtree.Build(pairs), nil
}
