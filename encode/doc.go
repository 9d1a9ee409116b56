// Package encode renders document trees as text.
//
// # Usage
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: ir.FromString("name"), Val: ir.FromString("John")},
//	    {Key: ir.FromString("height"), Val: ir.FromFloat(1.7)},
//	})
//	err := encode.Encode(node, os.Stdout)
//	// { "name": "John", "height": 1.7 }
//
//	// Compact output
//	err = encode.Encode(node, w, encode.EncodeWire(true))
//	// {"name":"John","height":1.7}
//
//	// Multi-line output
//	err = encode.Encode(node, w, encode.Indent(2))
//
//	// YAML
//	err = encode.Encode(node, w, encode.EncodeFormat(format.YAMLFormat))
//
// Object keys are written in document order.
//
// # Related Packages
//
//   - github.com/signadot/tony-format/go-rtti/ir - document tree
//   - github.com/signadot/tony-format/go-rtti/parse - text to document tree
package encode
