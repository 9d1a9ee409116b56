// Package eval evaluates expressions over values of registered types.
//
// The fields of a struct value are in scope under their names and its
// methods are callable:
//
//	ok, err := eval.Eval(`IsFemale() && phoneNumber.areaCode == "+86"`, p)
//
// # Related Packages
//
//   - github.com/signadot/tony-format/go-rtti/meta - type metadata
//   - github.com/expr-lang/expr - expression language
package eval
