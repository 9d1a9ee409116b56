// Package parse turns JSON or YAML text into document trees.
//
// # Usage
//
//	node, err := parse.Parse([]byte(`{"name": "John", "height": 1.7}`))
//
//	// YAML input
//	node, err := parse.Parse(data, parse.ParseYAML())
//
// Malformed input yields an error wrapping ErrParse.
//
// # Related Packages
//
//   - github.com/signadot/tony-format/go-rtti/ir - document tree
//   - github.com/signadot/tony-format/go-rtti/encode - document tree to text
package parse
