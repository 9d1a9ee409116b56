package meta

import (
	"fmt"
	"reflect"
)

var errorType = reflect.TypeFor[error]()

// Constructor describes a function producing a new value of its owner.
type Constructor struct {
	owner  *Type
	fn     reflect.Value
	params []*Type
	ptr    bool
	err    bool
}

func (c *Constructor) Owner() *Type { return c.owner }

// Params returns the parameter signature of the constructor.
func (c *Constructor) Params() []*Type { return c.params }

func (c *Constructor) matches(params []*Type) bool {
	ft := c.fn.Type()
	if ft.NumIn() != len(params) {
		return false
	}
	for i, p := range params {
		if p == nil || p.goType != ft.In(i) {
			return false
		}
	}
	return true
}

// Invoke calls the constructor and returns the new value at depth 0.
// Arguments are matched against the parameter types as Cast does.
func (c *Constructor) Invoke(args ...Any) (Any, error) {
	ft := c.fn.Type()
	if len(args) != ft.NumIn() {
		return Any{}, &CastError{Message: fmt.Sprintf("constructor %s takes %d arguments, got %d", ft, ft.NumIn(), len(args))}
	}
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		v, err := collapse(a, ft.In(i))
		if err != nil {
			return Any{}, err
		}
		in[i] = v
	}
	out := c.fn.Call(in)
	if c.err && !out[1].IsNil() {
		return Any{}, out[1].Interface().(error)
	}
	res := out[0]
	if c.ptr {
		if res.IsNil() {
			return Any{}, fmt.Errorf("%w: constructor %s returned nil", ErrNullDereference, ft)
		}
		return Any{typ: c.owner, v: res.Elem()}, nil
	}
	a := New(c.owner)
	a.v.Set(res)
	return a, nil
}

// CtorDef declares a constructor for registration.
type CtorDef struct {
	fn reflect.Value
}

// Ctor declares a constructor. fn must return S or *S for the struct S
// being registered, optionally followed by an error.
func Ctor(fn any) CtorDef {
	return CtorDef{fn: reflect.ValueOf(fn)}
}

func (cd CtorDef) build(owner *Type) (*Constructor, error) {
	bad := func(msg string) error {
		return &RegistryError{TypeName: owner.name, Message: msg, Err: ErrInvalidDescriptor}
	}
	if !cd.fn.IsValid() || cd.fn.Kind() != reflect.Func {
		return nil, bad("constructor is not a function")
	}
	ft := cd.fn.Type()
	if ft.IsVariadic() {
		return nil, bad(fmt.Sprintf("constructor %s is variadic", ft))
	}
	c := &Constructor{owner: owner, fn: cd.fn}
	switch ft.NumOut() {
	case 2:
		if ft.Out(1) != errorType {
			return nil, bad(fmt.Sprintf("constructor %s: second result must be error", ft))
		}
		c.err = true
	case 1:
	default:
		return nil, bad(fmt.Sprintf("constructor %s must return %s", ft, owner.goType))
	}
	switch ft.Out(0) {
	case owner.goType:
	case reflect.PointerTo(owner.goType):
		c.ptr = true
	default:
		return nil, bad(fmt.Sprintf("constructor %s must return %s", ft, owner.goType))
	}
	return c, nil
}

func zeroCtor(owner *Type) *Constructor {
	rt := owner.goType
	ft := reflect.FuncOf(nil, []reflect.Type{rt}, false)
	fn := reflect.MakeFunc(ft, func([]reflect.Value) []reflect.Value {
		return []reflect.Value{reflect.Zero(rt)}
	})
	return &Constructor{owner: owner, fn: fn}
}
