// Package marshal converts between values of registered types and
// document trees.
//
// # Usage
//
//	// Decode a document into a registered type
//	node, err := parse.Parse(data)
//	v, err := marshal.Decode(node, meta.Lookup("Person"))
//
//	// Encode it back
//	node, err = marshal.Encode(v)
//
//	// Or with the text helpers
//	p, err := marshal.FromJSON[sample.Person](nil, data)
//	out, err := marshal.ToJSON(nil, p)
//
// Both directions are driven only by the metadata in a meta.Registry:
// struct fields are reached through their registered accessors and
// structs are built with their registered zero argument constructor.
//
// # Related Packages
//
//   - github.com/signadot/tony-format/go-rtti/meta - type metadata
//   - github.com/signadot/tony-format/go-rtti/ir - document trees
package marshal
