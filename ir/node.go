package ir

import (
	"maps"
	"math"
	"slices"
	"strconv"
)

// Node is a document tree node. Objects keep their keys in Fields and
// their values in Values, index aligned.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

// Clone returns a deep copy of y detached from its parent.
func (y *Node) Clone() *Node {
	res := y.clone()
	res.Parent, res.ParentIndex, res.ParentField = nil, 0, ""
	return res
}

func (y *Node) clone() *Node {
	res := &Node{
		Type:        y.Type,
		Parent:      y.Parent,
		ParentIndex: y.ParentIndex,
		ParentField: y.ParentField,
		String:      y.String,
		Bool:        y.Bool,
		Number:      y.Number,
	}
	if y.Float64 != nil {
		f := *y.Float64
		res.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		res.Int64 = &i
	}
	if y.Fields != nil {
		res.Fields = make([]*Node, len(y.Fields))
		for i, f := range y.Fields {
			res.Fields[i] = f.clone()
			res.Fields[i].Parent = res
		}
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			res.Values[i] = v.clone()
			res.Values[i].Parent = res
		}
	}
	return res
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

// FromUint returns a number node for v. Values which do not fit an
// int64 are kept in their decimal text form.
func FromUint(v uint64) *Node {
	if v <= math.MaxInt64 {
		return FromInt(int64(v))
	}
	return &Node{
		Type:   NumberType,
		Number: strconv.FormatUint(v, 10),
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

// FromMap builds an object node with keys in sorted order.
func FromMap(yMap map[string]*Node) *Node {
	res := &Node{}
	res.Type = ObjectType
	res.Fields = make([]*Node, len(yMap))
	res.Values = make([]*Node, len(yMap))
	keys := slices.Sorted(maps.Keys(yMap))
	for i, key := range keys {
		y := yMap[key]
		y.Parent = res
		y.ParentIndex = i
		y.ParentField = key
		yField := &Node{
			Parent:      res,
			ParentIndex: i,
			ParentField: key,
			Type:        StringType,
			String:      key,
		}
		res.Fields[i] = yField
		res.Values[i] = y
	}
	return res
}

type KeyVal struct {
	Key *Node
	Val *Node
}

// FromKeyVals builds an object node keeping the order of kvs.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		kv.Key.ParentField = kv.Key.String
		kv.Val.ParentField = kv.Key.String
		kv.Val.Parent = res
		kv.Val.ParentIndex = i
		kv.Key.Parent = res
		kv.Key.ParentIndex = i
		res.Fields[i] = kv.Key
		res.Values[i] = kv.Val
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(ySlice))
	for i, y := range ySlice {
		res.Values[i] = y
		y.Parent = res
		y.ParentIndex = i
	}
	return res
}

func Null() *Node {
	return &Node{Type: NullType}
}

// AsInt64 returns the integral value of a number node. Floats are
// converted with Go conversion semantics.
func (y *Node) AsInt64() (int64, bool) {
	if y.Type != NumberType {
		return 0, false
	}
	switch {
	case y.Int64 != nil:
		return *y.Int64, true
	case y.Float64 != nil:
		return int64(*y.Float64), true
	}
	if i, err := strconv.ParseInt(y.Number, 10, 64); err == nil {
		return i, true
	}
	if u, err := strconv.ParseUint(y.Number, 10, 64); err == nil {
		return int64(u), true
	}
	if f, err := strconv.ParseFloat(y.Number, 64); err == nil {
		return int64(f), true
	}
	return 0, false
}

// AsUint64 is like AsInt64 for unsigned targets; negative values wrap.
func (y *Node) AsUint64() (uint64, bool) {
	if y.Type != NumberType {
		return 0, false
	}
	if y.Int64 == nil && y.Float64 == nil {
		if u, err := strconv.ParseUint(y.Number, 10, 64); err == nil {
			return u, true
		}
	}
	if y.Float64 != nil && *y.Float64 >= 0 {
		return uint64(*y.Float64), true
	}
	i, ok := y.AsInt64()
	return uint64(i), ok
}

func (y *Node) AsFloat64() (float64, bool) {
	if y.Type != NumberType {
		return 0, false
	}
	switch {
	case y.Float64 != nil:
		return *y.Float64, true
	case y.Int64 != nil:
		return float64(*y.Int64), true
	}
	f, err := strconv.ParseFloat(y.Number, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
