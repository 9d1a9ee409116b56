package meta

import (
	"fmt"
	"reflect"
)

// Field describes one field of a struct type.
type Field struct {
	name   string
	index  int
	owner  *Type
	typ    *Type
	goType reflect.Type
	ref    Ref

	// ptr returns the addressable field inside an addressable owner.
	ptr func(owner reflect.Value) reflect.Value
}

func (f *Field) Name() string { return f.name }

// Index returns the declaration position of the field in its owner.
func (f *Field) Index() int { return f.index }

func (f *Field) Owner() *Type { return f.owner }

// Type returns the declared type of the field, including indirection.
func (f *Field) Type() *Type { return f.typ }

func (f *Field) typeName() string {
	n := f.goType.String()
	if f.typ != nil {
		n = f.typ.Name()
	}
	if f.ref == RefOwned {
		n += " // owned"
	}
	return n
}

// Get returns a copy of the field's value in obj.
func (f *Field) Get(obj Any) (Any, error) {
	ref, err := f.Ref(obj)
	if err != nil {
		return Any{}, err
	}
	return ref.Copy(), nil
}

// Ref returns a view of the field's storage in obj. Changes made through
// the result are visible in obj.
func (f *Field) Ref(obj Any) (Any, error) {
	ov, err := f.locate(obj)
	if err != nil {
		return Any{}, err
	}
	return Any{typ: f.typ, v: f.ptr(ov)}, nil
}

// Set stores a copy of v in the field of obj. v must have exactly the
// field's declared type.
func (f *Field) Set(obj Any, v Any) error {
	ov, err := f.locate(obj)
	if err != nil {
		return err
	}
	if !v.IsValid() {
		return &CastError{Expected: f.typ.Name(), Actual: "<invalid>",
			Message: fmt.Sprintf("cannot set %s.%s from an empty value", f.owner.name, f.name)}
	}
	if !f.typ.same(v.typ) {
		return &CastError{Expected: f.typ.Name(), Actual: v.typ.Name(),
			Message: fmt.Sprintf("cannot set %s.%s (%s) from %s", f.owner.name, f.name, f.typ.Name(), v.typ.Name())}
	}
	f.ptr(ov).Set(v.Copy().v)
	return nil
}

// locate returns the addressable owner struct held by obj, following
// pointers.
func (f *Field) locate(obj Any) (reflect.Value, error) {
	if !obj.IsValid() {
		return reflect.Value{}, mismatch(f.owner.name, "<invalid>")
	}
	base, err := obj.base()
	if err != nil {
		return reflect.Value{}, err
	}
	if !base.typ.same(f.owner) {
		return reflect.Value{}, &CastError{Expected: f.owner.name, Actual: obj.typ.Name(),
			Message: fmt.Sprintf("field %s belongs to %s, not %s", f.name, f.owner.name, obj.typ.Name())}
	}
	return base.v, nil
}

// FieldDef declares a field of struct S for registration.
type FieldDef[S any] struct {
	name   string
	goType reflect.Type
	ref    Ref
	ptr    func(reflect.Value) reflect.Value
}

// FieldOption configures a FieldDef.
type FieldOption func(*fieldConfig)

type fieldConfig struct {
	owned bool
}

// Owning marks the outermost pointer of the field (or the element pointer
// of a slice field) as owned: copies of the owner clone the pointee.
func Owning() FieldOption {
	return func(c *fieldConfig) { c.owned = true }
}

// FieldOf declares the field name of S whose storage is returned by ref.
//
//	meta.FieldOf("name", func(p *Person) *string { return &p.name })
func FieldOf[S, F any](name string, ref func(*S) *F, opts ...FieldOption) FieldDef[S] {
	cfg := &fieldConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	fd := FieldDef[S]{
		name:   name,
		goType: reflect.TypeFor[F](),
		ptr: func(owner reflect.Value) reflect.Value {
			return reflect.ValueOf(ref(owner.Addr().Interface().(*S))).Elem()
		},
	}
	if cfg.owned {
		fd.ref = RefOwned
	}
	return fd
}

func (fd FieldDef[S]) build(owner *Type, i int) (*Field, error) {
	if fd.name == "" {
		return nil, &RegistryError{TypeName: owner.name, Message: fmt.Sprintf("field %d has no name", i), Err: ErrInvalidDescriptor}
	}
	ref := RefShared
	if fd.ref == RefOwned {
		if !hasPointer(fd.goType) {
			return nil, &RegistryError{TypeName: owner.name,
				Message: fmt.Sprintf("field %s of type %s cannot be owning", fd.name, fd.goType), Err: ErrInvalidDescriptor}
		}
		ref = RefOwned
	}
	return &Field{
		name:   fd.name,
		index:  i,
		owner:  owner,
		goType: fd.goType,
		ref:    ref,
		ptr:    fd.ptr,
	}, nil
}

func hasPointer(rt reflect.Type) bool {
	switch rt.Kind() {
	case reflect.Pointer:
		return true
	case reflect.Slice:
		return rt.Elem().Kind() == reflect.Pointer
	}
	return false
}
