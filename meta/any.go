package meta

import (
	"fmt"
	"reflect"
)

// Any holds a value of a described type.
//
// An Any is a handle onto storage: assigning one Any variable to another
// shares the storage, as does Field.Ref. Copy gives independent storage
// following the copy semantics of the type. The zero Any is empty.
type Any struct {
	typ *Type
	v   reflect.Value
}

// New returns a zero value of t.
func New(t *Type) Any {
	return Any{typ: t, v: reflect.New(t.goType).Elem()}
}

// Wrap captures v with the descriptor of T in r.
func Wrap[T any](r *Registry, v T) (Any, error) {
	t, err := TypeFor[T](r)
	if err != nil {
		return Any{}, err
	}
	a := New(t)
	a.v.Set(reflect.ValueOf(&v).Elem())
	return a, nil
}

// ValueOf is like Wrap for a value whose type is only known at run time.
func ValueOf(r *Registry, v any) (Any, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return Any{}, mismatch("a value", "nil")
	}
	t, err := orDefault(r).TypeOf(rv.Type())
	if err != nil {
		return Any{}, err
	}
	a := New(t)
	a.v.Set(rv)
	return a, nil
}

// Cast returns a copy of the value held by a as a T. Pointers stored
// beyond the depth of T are followed. Any other difference between the
// stored type and T is a type mismatch.
func Cast[T any](a Any) (T, error) {
	var zero T
	m, err := match(a, reflect.TypeFor[T]())
	if err != nil {
		return zero, err
	}
	return m.Copy().v.Interface().(T), nil
}

// CastRef is like Cast but returns a pointer to the storage held by a.
func CastRef[T any](a Any) (*T, error) {
	m, err := match(a, reflect.TypeFor[T]())
	if err != nil {
		return nil, err
	}
	return m.v.Addr().Interface().(*T), nil
}

func match(a Any, rt reflect.Type) (Any, error) {
	if !a.IsValid() {
		return Any{}, mismatch(rt.String(), "<invalid>")
	}
	cur := a
	for cur.v.Type() != rt {
		if cur.typ.kind != PointerKind {
			return Any{}, mismatch(rt.String(), a.typ.Name())
		}
		next, err := cur.Deref()
		if err != nil {
			return Any{}, err
		}
		cur = next
	}
	return cur, nil
}

// collapse is match for function arguments.
func collapse(a Any, rt reflect.Type) (reflect.Value, error) {
	m, err := match(a, rt)
	if err != nil {
		return reflect.Value{}, err
	}
	return m.Copy().v, nil
}

func (a Any) Type() *Type { return a.typ }

func (a Any) typeName() string {
	if a.typ == nil {
		return "<invalid>"
	}
	return a.typ.name
}

// Depth returns the indirection depth of the held value.
func (a Any) Depth() int {
	if a.typ == nil {
		return 0
	}
	return a.typ.Depth()
}

func (a Any) IsValid() bool { return a.typ != nil }

// IsNil reports whether a is empty or holds a nil pointer or slice.
func (a Any) IsNil() bool {
	if a.typ == nil {
		return true
	}
	switch a.typ.kind {
	case PointerKind, SliceKind:
		return a.v.IsNil()
	}
	return false
}

// Interface returns the held value as an interface value.
func (a Any) Interface() any {
	if a.typ == nil {
		return nil
	}
	return a.v.Interface()
}

// Reflect returns the addressable storage of a.
func (a Any) Reflect() reflect.Value { return a.v }

// Deref returns a view of the value a pointer refers to.
func (a Any) Deref() (Any, error) {
	if a.typ == nil {
		return Any{}, mismatch("pointer", "<invalid>")
	}
	if a.typ.kind != PointerKind {
		return Any{}, &CastError{Expected: "pointer", Actual: a.typ.Name(),
			Message: fmt.Sprintf("cannot dereference %s", a.typ.Name())}
	}
	if a.v.IsNil() {
		return Any{}, fmt.Errorf("%w: %s is nil", ErrNullDereference, a.typ.Name())
	}
	return Any{typ: a.typ.elem, v: a.v.Elem()}, nil
}

// base follows pointers down to depth 0.
func (a Any) base() (Any, error) {
	cur := a
	for cur.typ.kind == PointerKind {
		next, err := cur.Deref()
		if err != nil {
			return Any{}, err
		}
		cur = next
	}
	return cur, nil
}

// Len returns the length of a slice.
func (a Any) Len() int {
	if a.typ == nil || a.typ.kind != SliceKind {
		return 0
	}
	return a.v.Len()
}

// Index returns a view of element i of a slice.
func (a Any) Index(i int) (Any, error) {
	if a.typ == nil || a.typ.kind != SliceKind {
		return Any{}, mismatch("slice", a.typeName())
	}
	if i < 0 || i >= a.v.Len() {
		return Any{}, &CastError{Message: fmt.Sprintf("index %d out of range [0:%d]", i, a.v.Len())}
	}
	return Any{typ: a.typ.elem, v: a.v.Index(i)}, nil
}

// Pointer returns a pointer to the storage of a, with the given ownership.
func (a Any) Pointer(ref Ref) (Any, error) {
	if a.typ == nil {
		return Any{}, mismatch("a value", "<invalid>")
	}
	p := New(a.typ.reg.PointerTo(a.typ, ref))
	p.v.Set(a.v.Addr())
	return p, nil
}

// Copy returns a with independent storage. Values are copied, owned
// pointers have their pointee copied and shared pointers are shared.
func (a Any) Copy() Any {
	if a.typ == nil {
		return Any{}
	}
	res := New(a.typ)
	res.v.Set(deepCopy(a.typ, a.v))
	return res
}

// Assign replaces the type and storage of a with a copy of src.
func (a *Any) Assign(src Any) {
	c := src.Copy()
	*a = c
}

// Convert returns the numeric value of a converted to the numeric type t
// with Go conversion semantics. Out of range values are truncated.
func (a Any) Convert(t *Type) (Any, error) {
	if a.typ == nil {
		return Any{}, mismatch(t.Name(), "<invalid>")
	}
	if !a.typ.IsNumber() || !t.IsNumber() {
		return Any{}, mismatch(t.Name(), a.typ.Name())
	}
	res := New(t)
	res.v.Set(a.v.Convert(t.goType))
	return res, nil
}

// String renders the held value. Pointers render as the value they refer
// to. Enums render as their name and values implementing fmt.Stringer use it.
func (a Any) String() string {
	if a.typ == nil {
		return "<invalid>"
	}
	switch a.typ.kind {
	case EnumKind:
		n, err := a.typ.enum.Name(enumInt(a.v))
		if err == nil {
			return n
		}
	case PointerKind:
		b, err := a.base()
		if err != nil {
			return "<nil>"
		}
		return b.String()
	}
	if s, ok := a.v.Addr().Interface().(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(a.v.Interface())
}

func deepCopy(t *Type, v reflect.Value) reflect.Value {
	if t == nil {
		return v
	}
	switch t.kind {
	case PointerKind:
		if v.IsNil() || t.ref != RefOwned {
			return v
		}
		p := reflect.New(t.elem.goType)
		p.Elem().Set(deepCopy(t.elem, v.Elem()))
		return p
	case SliceKind:
		if v.IsNil() {
			return v
		}
		s := reflect.MakeSlice(t.goType, v.Len(), v.Len())
		for i := range v.Len() {
			s.Index(i).Set(deepCopy(t.elem, v.Index(i)))
		}
		return s
	case StructKind:
		out := reflect.New(t.goType).Elem()
		out.Set(v)
		for _, f := range t.fields {
			if f.typ == nil {
				continue
			}
			switch f.typ.kind {
			case PointerKind, SliceKind, StructKind:
				fv := f.ptr(out)
				fv.Set(deepCopy(f.typ, fv))
			}
		}
		return out
	}
	return v
}
