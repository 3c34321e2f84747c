package encode

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/signadot/formtree/fieldtree"
	"github.com/signadot/formtree/format"
	"github.com/signadot/formtree/parse"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
)

func sample() *fieldtree.Node {
	return fieldtree.Build([]fieldtree.Pair{
		{Key: "Customer.Address.City", Value: "Lisbon"},
		{Key: "Customer.Name", Value: "Ana"},
		{Key: "Token", Value: "abc"},
		{Key: "Customer.Tags", Value: "a"},
		{Key: "Customer.Tags", Value: "b"},
	})
}

func encodeString(t *testing.T, n *fieldtree.Node, opts ...EncodeOption) string {
	t.Helper()
	buf := bytes.NewBuffer(nil)
	if err := Encode(n, buf, opts...); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.String()
}

func TestEncodeText(t *testing.T) {
	got := encodeString(t, sample())
	want := `Root (1 Children, 1 Fields) [ROOT]
  Token = "abc"
  Customer (1 Children, 3 Fields)
    Name = "Ana"
    Tags = "a"
    Tags = "b"
    Address (0 Children, 1 Fields)
      City = "Lisbon"
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeTextIndent(t *testing.T) {
	got := encodeString(t, fieldtree.Build([]fieldtree.Pair{{Key: "P.a", Value: "1"}}), EncodeIndent(4))
	want := "Root (1 Children, 0 Fields) [ROOT]\n    P (0 Children, 1 Fields)\n        a = \"1\"\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeTextColors(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = noColor }()

	got := encodeString(t, sample(), EncodeColors(NewColors()))
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("expected escape sequences in %q", got)
	}
	if !strings.Contains(got, "[ROOT]") || !strings.Contains(got, "Lisbon") {
		t.Errorf("content lost in colouring: %q", got)
	}
}

func TestColorsPercent(t *testing.T) {
	c := NewColors()
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()
	if got := c.Color(ValueColor, "100%d"); got != "100%d" {
		t.Errorf("got %q", got)
	}
	if got := c.Color(ColorAttr(99), "x"); got != "x" {
		t.Errorf("unknown attr should use default, got %q", got)
	}
}

func TestEncodeJSON(t *testing.T) {
	got := encodeString(t, sample(), EncodeFormat(format.JSONFormat))
	want := `{
  "Token": "abc",
  "Customer": {
    "Name": "Ana",
    "Tags": "a",
    "Tags": "b",
    "Address": {
      "City": "Lisbon"
    }
  }
}
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if got := encodeString(t, fieldtree.Build(nil), EncodeFormat(format.JSONFormat)); got != "{}\n" {
		t.Errorf("empty tree: %q", got)
	}
}

func TestEncodeLines(t *testing.T) {
	got := encodeString(t, sample(), EncodeFormat(format.LinesFormat))
	want := "Token=abc\nCustomer.Name=Ana\nCustomer.Tags=a\nCustomer.Tags=b\nCustomer.Address.City=Lisbon\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	bad := fieldtree.Build([]fieldtree.Pair{{Key: "a", Value: "x\ny"}})
	if err := Encode(bad, &bytes.Buffer{}, EncodeFormat(format.LinesFormat)); !errors.Is(err, ErrEncoding) {
		t.Errorf("expected ErrEncoding, got %v", err)
	}
}

func TestEncodeForm(t *testing.T) {
	n := fieldtree.Build([]fieldtree.Pair{{Key: "P.a b", Value: "x&y"}, {Key: "c", Value: "1"}})
	got := encodeString(t, n, EncodeFormat(format.FormFormat))
	if want := "c=1&P.a+b=x%26y\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, f := range []format.Format{format.FormFormat, format.LinesFormat, format.JSONFormat, format.YAMLFormat} {
		t.Run(f.String(), func(t *testing.T) {
			tree := sample()
			d := encodeString(t, tree, EncodeFormat(f))
			pairs, err := parse.ParseString(d, parse.ParseFormat(f))
			if err != nil {
				t.Fatalf("parse %s output %q: %v", f, d, err)
			}
			again := fieldtree.Build(pairs)
			if !again.Equal(tree) {
				t.Errorf("round trip through %s:\n%s\nvs\n%s", f, MustString(again), MustString(tree))
			}
		})
	}
}

func TestToMapSlice(t *testing.T) {
	ms := ToMapSlice(sample())
	if len(ms) != 2 {
		t.Fatalf("expected 2 top level items, got %d", len(ms))
	}
	if ms[0].Key != "Token" || ms[0].Value != "abc" {
		t.Errorf("unexpected first item %v", ms[0])
	}
	if ms[1].Key != "Customer" {
		t.Errorf("unexpected second item %v", ms[1])
	}
}

func TestEncodeSubtree(t *testing.T) {
	sub := sample().GetPath("Customer")
	got := encodeString(t, sub, EncodeFormat(format.LinesFormat))
	want := "Name=Ana\nTags=a\nTags=b\nAddress.City=Lisbon\n"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestMustString(t *testing.T) {
	if got := MustString(fieldtree.Build(nil)); got != "Root (0 Children, 0 Fields) [ROOT]" {
		t.Errorf("got %q", got)
	}
}

func TestEncodeBadFormat(t *testing.T) {
	err := Encode(sample(), &bytes.Buffer{}, EncodeFormat(format.Format(42)))
	if !errors.Is(err, format.ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}
