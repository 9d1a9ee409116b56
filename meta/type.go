package meta

import (
	"fmt"
	"reflect"
	"strings"
)

// Type describes the shape of a Go type known to a Registry.
//
// Struct types own their fields, constructors and methods. Pointer and
// slice types are derived by the registry and refer to their element
// type without owning it.
type Type struct {
	name   string
	kind   Kind
	goType reflect.Type
	desc   string
	reg    *Registry

	elem *Type
	ref  Ref

	fields  []*Field
	byName  map[string]*Field
	methods []*Method
	ctors   []*Constructor
	enum    *Enum
}

func (t *Type) Name() string         { return t.name }
func (t *Type) Kind() Kind           { return t.kind }
func (t *Type) GoType() reflect.Type { return t.goType }
func (t *Type) Description() string  { return t.desc }
func (t *Type) Registry() *Registry  { return t.reg }
func (t *Type) String() string       { return t.name }

// Size returns the number of bytes a value of the type occupies, not
// counting memory it references.
func (t *Type) Size() uintptr { return t.goType.Size() }

// Elem returns the element type of a pointer or slice type, nil otherwise.
func (t *Type) Elem() *Type { return t.elem }

// Ref returns the ownership of a pointer type; RefValue for all others.
func (t *Type) Ref() Ref { return t.ref }

// Depth returns the indirection depth: 0 for values, 1 for a pointer to
// a value, and so on.
func (t *Type) Depth() int {
	n := 0
	for x := t; x.kind == PointerKind; x = x.elem {
		n++
	}
	return n
}

// Base returns the type with all pointer indirections removed.
func (t *Type) Base() *Type {
	x := t
	for x.kind == PointerKind {
		x = x.elem
	}
	return x
}

func (t *Type) IsNumber() bool    { return t.kind.IsNumber() }
func (t *Type) IsBool() bool      { return t.kind == BoolKind }
func (t *Type) IsString() bool    { return t.kind == StringKind }
func (t *Type) IsEnum() bool      { return t.kind == EnumKind }
func (t *Type) IsComposite() bool { return t.kind == StructKind }
func (t *Type) IsPointer() bool   { return t.kind == PointerKind }
func (t *Type) IsSlice() bool     { return t.kind == SliceKind }

// Fields returns the fields of a struct type in declaration order.
func (t *Type) Fields() []*Field { return t.fields }

// Field returns the field called name or nil.
func (t *Type) Field(name string) *Field { return t.byName[name] }

func (t *Type) Methods() []*Method { return t.methods }

// Method returns the method called name or nil.
func (t *Type) Method(name string) *Method {
	for _, m := range t.methods {
		if m.name == name {
			return m
		}
	}
	return nil
}

func (t *Type) Constructors() []*Constructor { return t.ctors }

// Constructor returns the constructor taking exactly the given parameter
// types.
func (t *Type) Constructor(params ...*Type) (*Constructor, error) {
	for _, c := range t.ctors {
		if c.matches(params) {
			return c, nil
		}
	}
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name()
	}
	return nil, fmt.Errorf("%w: %s(%s)", ErrConstructorNotFound, t.name, strings.Join(names, ", "))
}

// DefaultConstructor returns the zero argument constructor.
func (t *Type) DefaultConstructor() (*Constructor, error) {
	return t.Constructor()
}

// Enum returns the value table of an enum type, nil for other kinds.
func (t *Type) Enum() *Enum { return t.enum }

// same reports whether t and o describe the same Go type. Pointer types
// of different ownership over the same element are the same Go type.
func (t *Type) same(o *Type) bool {
	return t == o || (t != nil && o != nil && t.goType == o.goType)
}

// Describe renders the type's shape as Go-like source text.
func (t *Type) Describe() string {
	b := &strings.Builder{}
	if t.desc != "" {
		for _, ln := range strings.Split(t.desc, "\n") {
			fmt.Fprintf(b, "// %s\n", ln)
		}
	}
	switch t.kind {
	case EnumKind:
		fmt.Fprintf(b, "type %s %s\n\nconst (\n", t.name, t.goType.Kind())
		for i, n := range t.enum.names {
			fmt.Fprintf(b, "\t%s %s = %d\n", n, t.name, t.enum.values[i])
		}
		b.WriteString(")\n")
		return b.String()
	case StructKind:
	default:
		fmt.Fprintf(b, "type %s %s\n", t.name, t.kind)
		return b.String()
	}
	fmt.Fprintf(b, "type %s struct {\n", t.name)
	for _, f := range t.fields {
		fmt.Fprintf(b, "\t%s %s\n", f.name, f.typeName())
	}
	b.WriteString("}\n")
	if len(t.ctors) != 0 {
		b.WriteString("\nconstructors:\n")
		for _, c := range t.ctors {
			fmt.Fprintf(b, "\t%s\n", c.fn.Type())
		}
	}
	if len(t.methods) != 0 {
		b.WriteString("\nmethods:\n")
		for _, m := range t.methods {
			fmt.Fprintf(b, "\t%s\n", m.signature())
		}
	}
	return b.String()
}
