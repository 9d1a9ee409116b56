package ir

import (
	"math"
	"testing"
)

func TestPath(t *testing.T) {
	phone := FromMap(map[string]*Node{
		"areaCode": FromString("+86"),
	})
	root := FromMap(map[string]*Node{
		"phoneNumber": phone,
		"tags":        FromSlice([]*Node{FromString("a"), FromString("b")}),
		"a.b":         FromInt(1),
	})
	tests := []struct {
		node *Node
		want string
	}{
		{root, "$"},
		{field(phone, "areaCode"), "$.phoneNumber.areaCode"},
		{field(root, "tags").Values[1], "$.tags[1]"},
		{field(root, "a.b"), "$.'a.b'"},
	}
	for _, tt := range tests {
		if got := tt.node.Path(); got != tt.want {
			t.Errorf("Path() = %q, want %q", got, tt.want)
		}
	}
}

func TestFromKeyValsKeepsOrder(t *testing.T) {
	node := FromKeyVals([]KeyVal{
		{Key: FromString("z"), Val: FromInt(1)},
		{Key: FromString("a"), Val: FromInt(2)},
	})
	if node.Fields[0].String != "z" || node.Fields[1].String != "a" {
		t.Fatalf("unexpected key order %q, %q", node.Fields[0].String, node.Fields[1].String)
	}
	if node.Values[1].ParentField != "a" {
		t.Errorf("ParentField = %q, want %q", node.Values[1].ParentField, "a")
	}
}

func TestClone(t *testing.T) {
	orig := FromMap(map[string]*Node{
		"n": FromInt(3),
		"s": FromSlice([]*Node{FromFloat(1.5)}),
	})
	c := orig.Clone()
	if Compare(orig, c) != 0 {
		t.Fatal("clone differs from original")
	}
	*field(c, "n").Int64 = 4
	if *field(orig, "n").Int64 != 3 {
		t.Error("clone shares number storage with original")
	}
	if field(c, "s").Values[0].Parent != field(c, "s") {
		t.Error("clone children not re-parented")
	}
}

func TestNumberAccessors(t *testing.T) {
	big := FromUint(math.MaxUint64)
	if big.Int64 != nil || big.Number == "" {
		t.Fatalf("FromUint(max) = %+v, want decimal text", big)
	}
	u, ok := big.AsUint64()
	if !ok || u != math.MaxUint64 {
		t.Errorf("AsUint64() = %d, %v", u, ok)
	}
	i, ok := FromFloat(1.7).AsInt64()
	if !ok || i != 1 {
		t.Errorf("AsInt64(1.7) = %d, %v, want 1", i, ok)
	}
	f, ok := FromInt(-2).AsFloat64()
	if !ok || f != -2 {
		t.Errorf("AsFloat64(-2) = %v, %v", f, ok)
	}
	if _, ok := FromString("1").AsInt64(); ok {
		t.Error("AsInt64 accepted a string node")
	}
}

func field(y *Node, name string) *Node {
	for i, f := range y.Fields {
		if f.String == name {
			return y.Values[i]
		}
	}
	return nil
}
