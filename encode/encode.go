package encode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/signadot/formtree/fieldtree"
	"github.com/signadot/formtree/format"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth, indent int

	format format.Format

	Color func(ColorAttr, string) string
}

// Encode writes node to w. The format defaults to text.
func Encode(node *fieldtree.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.TextFormat:
		return encodeText(node, w, es)
	case format.JSONFormat:
		return encodeJSON(node, w, es)
	case format.YAMLFormat:
		return encodeYAML(node, w, es)
	case format.LinesFormat:
		return encodeLines(node, w)
	case format.FormFormat:
		return encodeForm(node, w)
	default:
		return fmt.Errorf("%w: cannot encode %s", format.ErrBadFormat, es.format)
	}
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func applyColor(es *EncState, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(attr, v)
}

// describe returns the describe line of n, coloured according to es.
func describe(n *fieldtree.Node, es *EncState) string {
	if es.Color == nil {
		return n.String()
	}
	buf := &strings.Builder{}
	buf.WriteString(applyColor(es, NodeColor, n.Name))
	buf.WriteByte(' ')
	counts := "(" + strconv.Itoa(len(n.Children)) + " Children, " + strconv.Itoa(len(n.Fields)) + " Fields)"
	buf.WriteString(applyColor(es, CountColor, counts))
	if n.IsRoot() {
		buf.WriteByte(' ')
		buf.WriteString(applyColor(es, RootColor, "[ROOT]"))
	}
	return buf.String()
}

func encodeText(n *fieldtree.Node, w io.Writer, es *EncState) error {
	pad := strings.Repeat(" ", es.indent*es.depth)
	if err := writeString(w, pad+describe(n, es)+"\n"); err != nil {
		return err
	}
	fieldPad := pad + strings.Repeat(" ", es.indent)
	for _, f := range n.Fields {
		line := fieldPad +
			applyColor(es, FieldColor, f.Key) +
			applyColor(es, SepColor, " = ") +
			applyColor(es, ValueColor, strconv.Quote(f.Value)) + "\n"
		if err := writeString(w, line); err != nil {
			return err
		}
	}
	es.depth++
	defer func() { es.depth-- }()
	for _, c := range n.Children {
		if err := encodeText(c, w, es); err != nil {
			return err
		}
	}
	return nil
}

func encodeJSON(n *fieldtree.Node, w io.Writer, es *EncState) error {
	buf := bytes.NewBuffer(nil)
	if err := writeJSONObject(n, buf); err != nil {
		return err
	}
	out := bytes.NewBuffer(nil)
	if err := json.Indent(out, buf.Bytes(), "", strings.Repeat(" ", es.indent)); err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	out.WriteByte('\n')
	_, err := w.Write(out.Bytes())
	return err
}

func writeJSONObject(n *fieldtree.Node, buf *bytes.Buffer) error {
	buf.WriteByte('{')
	i := 0
	sep := func() {
		if i > 0 {
			buf.WriteByte(',')
		}
		i++
	}
	for _, f := range n.Fields {
		sep()
		if err := writeJSONString(buf, f.Key); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := writeJSONString(buf, f.Value); err != nil {
			return err
		}
	}
	for _, c := range n.Children {
		sep()
		if err := writeJSONString(buf, c.Name); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := writeJSONObject(c, buf); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	d, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	buf.Write(d)
	return nil
}

// ToMapSlice converts the tree below n to an ordered YAML mapping, fields
// before children.
func ToMapSlice(n *fieldtree.Node) yaml.MapSlice {
	res := make(yaml.MapSlice, 0, len(n.Fields)+len(n.Children))
	for _, f := range n.Fields {
		res = append(res, yaml.MapItem{Key: f.Key, Value: f.Value})
	}
	for _, c := range n.Children {
		res = append(res, yaml.MapItem{Key: c.Name, Value: ToMapSlice(c)})
	}
	return res
}

func encodeYAML(n *fieldtree.Node, w io.Writer, es *EncState) error {
	d, err := yaml.MarshalWithOptions(ToMapSlice(n), yaml.Indent(es.indent))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	_, err = w.Write(d)
	return err
}

func encodeLines(n *fieldtree.Node, w io.Writer) error {
	for _, p := range n.Pairs() {
		if strings.ContainsAny(p.Key, "=\n") || strings.Contains(p.Value, "\n") {
			return fmt.Errorf("%w: %q cannot be written as a line", ErrEncoding, p.Key)
		}
		if err := writeString(w, p.Key+"="+p.Value+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func encodeForm(n *fieldtree.Node, w io.Writer) error {
	pairs := n.Pairs()
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = url.QueryEscape(p.Key) + "=" + url.QueryEscape(p.Value)
	}
	return writeString(w, strings.Join(parts, "&")+"\n")
}

// MustString encodes n as text and panics on error.
func MustString(n *fieldtree.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(n, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
