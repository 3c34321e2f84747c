package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	TextFormat Format = iota
	FormFormat
	LinesFormat
	JSONFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"t":     TextFormat,
		"text":  TextFormat,
		"f":     FormFormat,
		"form":  FormFormat,
		"l":     LinesFormat,
		"lines": LinesFormat,
		"j":     JSONFormat,
		"json":  JSONFormat,
		"y":     YAMLFormat,
		"yaml":  YAMLFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case TextFormat:
		return []byte("text"), nil
	case FormFormat:
		return []byte("form"), nil
	case LinesFormat:
		return []byte("lines"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsText() bool  { return f == TextFormat }
func (f Format) IsForm() bool  { return f == FormFormat }
func (f Format) IsLines() bool { return f == LinesFormat }
func (f Format) IsJSON() bool  { return f == JSONFormat }
func (f Format) IsYAML() bool  { return f == YAMLFormat }

// IsInput reports whether pairs can be decoded from f.
func (f Format) IsInput() bool {
	switch f {
	case FormFormat, LinesFormat, JSONFormat, YAMLFormat:
		return true
	}
	return false
}

// IsOutput reports whether trees can be encoded as f.
func (f Format) IsOutput() bool {
	_, err := f.MarshalText()
	return err == nil
}

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case TextFormat:
		return ".txt"
	case FormFormat:
		return ".form"
	case LinesFormat:
		return ".pairs"
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	default:
		return ""
	}
}

// FromSuffix returns the format whose Suffix is ext, if any.
func FromSuffix(ext string) (Format, bool) {
	for _, f := range AllFormats() {
		if f.Suffix() == ext {
			return f, true
		}
	}
	if ext == ".yml" {
		return YAMLFormat, true
	}
	return 0, false
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{TextFormat, FormFormat, LinesFormat, JSONFormat, YAMLFormat}
}
