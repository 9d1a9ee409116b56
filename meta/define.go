package meta

import (
	"fmt"
	"reflect"
)

// Definition is a type declaration which can be registered.
type Definition interface {
	typeName() string
	goType() reflect.Type
	define(r *Registry) (*Type, error)
}

// StructDef declares a struct type S for registration.
type StructDef[S any] struct {
	name    string
	desc    string
	fields  []FieldDef[S]
	ctors   []CtorDef
	methods []MethodDef
}

// Struct declares the struct type S under name.
func Struct[S any](name string) *StructDef[S] {
	return &StructDef[S]{name: name}
}

func (d *StructDef[S]) Describe(desc string) *StructDef[S] {
	d.desc = desc
	return d
}

func (d *StructDef[S]) Fields(fs ...FieldDef[S]) *StructDef[S] {
	d.fields = append(d.fields, fs...)
	return d
}

func (d *StructDef[S]) Ctors(cs ...CtorDef) *StructDef[S] {
	d.ctors = append(d.ctors, cs...)
	return d
}

func (d *StructDef[S]) Methods(ms ...MethodDef) *StructDef[S] {
	d.methods = append(d.methods, ms...)
	return d
}

func (d *StructDef[S]) typeName() string     { return d.name }
func (d *StructDef[S]) goType() reflect.Type { return reflect.TypeFor[S]() }

func (d *StructDef[S]) define(r *Registry) (*Type, error) {
	rt := d.goType()
	if rt.Kind() != reflect.Struct {
		return nil, &RegistryError{TypeName: d.name, Message: fmt.Sprintf("%s is not a struct", rt), Err: ErrInvalidDescriptor}
	}
	t := &Type{
		name:   d.name,
		kind:   StructKind,
		goType: rt,
		desc:   d.desc,
		reg:    r,
		byName: make(map[string]*Field, len(d.fields)),
	}
	for i, fd := range d.fields {
		f, err := fd.build(t, i)
		if err != nil {
			return nil, err
		}
		if _, dup := t.byName[f.name]; dup {
			return nil, &RegistryError{TypeName: d.name, Message: fmt.Sprintf("field %q declared twice", f.name), Err: ErrInvalidDescriptor}
		}
		t.fields = append(t.fields, f)
		t.byName[f.name] = f
	}
	for _, cd := range d.ctors {
		c, err := cd.build(t)
		if err != nil {
			return nil, err
		}
		for _, o := range t.ctors {
			if sameParams(o.fn.Type(), c.fn.Type()) {
				return nil, &RegistryError{TypeName: d.name,
					Message: fmt.Sprintf("constructors %s and %s have the same parameters", o.fn.Type(), c.fn.Type()), Err: ErrInvalidDescriptor}
			}
		}
		t.ctors = append(t.ctors, c)
	}
	if len(t.ctors) == 0 {
		t.ctors = append(t.ctors, zeroCtor(t))
	}
	for _, md := range d.methods {
		m, err := md.build(t)
		if err != nil {
			return nil, err
		}
		if t.Method(m.name) != nil {
			return nil, &RegistryError{TypeName: d.name, Message: fmt.Sprintf("method %q declared twice", m.name), Err: ErrInvalidDescriptor}
		}
		t.methods = append(t.methods, m)
	}
	return t, nil
}

func sameParams(a, b reflect.Type) bool {
	if a.NumIn() != b.NumIn() {
		return false
	}
	for i := range a.NumIn() {
		if a.In(i) != b.In(i) {
			return false
		}
	}
	return true
}
