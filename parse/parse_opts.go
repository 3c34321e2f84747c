package parse

import "github.com/signadot/formtree/format"

type parseOpts struct {
	format format.Format
}

type ParseOption func(*parseOpts)

func ParseForm() ParseOption {
	return ParseFormat(format.FormFormat)
}
func ParseLines() ParseOption {
	return ParseFormat(format.LinesFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// FormatFromOpts extracts the format from parse options.
func FormatFromOpts(opts ...ParseOption) format.Format {
	pOpts := &parseOpts{format: format.FormFormat}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts.format
}
