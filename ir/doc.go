// Package ir provides the document tree used by the marshalling engine.
//
// # Overview
//
// A document is a tree of nodes. The tree is the generic, parsed form of
// JSON shaped text and is what the marshal package decodes typed objects
// from and encodes them to. Parsing and rendering text are done by the
// parse and encode packages.
//
// # Node Types
//
// The Type field indicates the node's type:
//
//   - NullType: null value
//   - BoolType: boolean (true/false)
//   - NumberType: numeric value (int64, float64 or decimal text)
//   - StringType: string value
//   - ArrayType: ordered list of nodes
//   - ObjectType: key-value pairs (fields and values)
//
// # Creating Nodes
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	flag := ir.FromBool(true)
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: ir.FromString("key"), Val: ir.FromString("value")},
//	})
//	arr := ir.FromSlice([]*ir.Node{
//	    ir.FromInt(1),
//	    ir.FromInt(2),
//	})
//
// # Objects
//
// Objects hold their keys in Fields and values in Values, with
// Fields[i] the key of Values[i]. Keys are string nodes. FromMap sorts the
// keys, FromKeyVals preserves the given order.
//
// Each child records its Parent, ParentIndex and ParentField so that
// Path can report locations such as "$.phoneNumber.areaCode" in errors.
package ir
