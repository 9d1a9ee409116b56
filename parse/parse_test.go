package parse

import (
	"errors"
	"math"
	"testing"

	"github.com/signadot/tony-format/go-rtti/ir"
)

func TestParseJSON(t *testing.T) {
	node, err := Parse([]byte(`{"name":"John", "height":1.7, "sex":"Female", "phoneNumber" : {"areaCode":"+86", "number":"13888888888"}, "tags": [1, true, null]}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if node.Type != ir.ObjectType {
		t.Fatalf("got %s, want Object", node.Type)
	}
	if got := field(node, "name"); got == nil || got.String != "John" {
		t.Errorf("name = %+v", got)
	}
	height := field(node, "height")
	if f, ok := height.AsFloat64(); !ok || f != 1.7 {
		t.Errorf("height = %v, %v", f, ok)
	}
	area := field(field(node, "phoneNumber"), "areaCode")
	if area.String != "+86" {
		t.Errorf("areaCode = %q", area.String)
	}
	if area.Path() != "$.phoneNumber.areaCode" {
		t.Errorf("Path() = %q", area.Path())
	}
	tags := field(node, "tags")
	wantTypes := []ir.Type{ir.NumberType, ir.BoolType, ir.NullType}
	for i, want := range wantTypes {
		if tags.Values[i].Type != want {
			t.Errorf("tags[%d] = %s, want %s", i, tags.Values[i].Type, want)
		}
	}
	if tags.Values[0].Int64 == nil || *tags.Values[0].Int64 != 1 {
		t.Errorf("integers should parse as Int64, got %+v", tags.Values[0])
	}
}

func TestParseJSONLargeUnsigned(t *testing.T) {
	node, err := Parse([]byte(`18446744073709551615`))
	if err != nil {
		t.Fatal(err)
	}
	u, ok := node.AsUint64()
	if !ok || u != math.MaxUint64 {
		t.Errorf("AsUint64() = %d, %v", u, ok)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts []ParseOption
	}{
		{"unterminated object", `{"name": "John"`, nil},
		{"trailing data", `{} {}`, nil},
		{"empty", ``, nil},
		{"bad yaml", "a: [1, 2", []ParseOption{ParseYAML()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.in), tt.opts...)
			if !errors.Is(err, ErrParse) {
				t.Errorf("expected ErrParse, got %v", err)
			}
		})
	}
}

func TestParseYAMLKeepsOrder(t *testing.T) {
	node, err := Parse([]byte("name: John\nheight: 1.7\nsex: Female\n"), ParseYAML())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := []string{"name", "height", "sex"}
	if len(node.Fields) != len(want) {
		t.Fatalf("got %d fields, want %d", len(node.Fields), len(want))
	}
	for i, k := range want {
		if node.Fields[i].String != k {
			t.Errorf("field %d = %q, want %q", i, node.Fields[i].String, k)
		}
	}
}

func field(node *ir.Node, name string) *ir.Node {
	for i, f := range node.Fields {
		if f.String == name {
			return node.Values[i]
		}
	}
	return nil
}
