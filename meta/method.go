package meta

import (
	"fmt"
	"reflect"
	"strings"
)

// Method describes a function callable on values of its owner, or a
// static function attached to the owner.
type Method struct {
	name   string
	owner  *Type
	fn     reflect.Value
	static bool
	ptrRcv bool
	err    bool

	params []*Type
	result *Type
}

func (m *Method) Name() string  { return m.name }
func (m *Method) Owner() *Type  { return m.owner }
func (m *Method) Static() bool  { return m.static }
func (m *Method) Result() *Type { return m.result }

// Params returns the parameter signature, receiver excluded.
func (m *Method) Params() []*Type { return m.params }

// in returns the Go parameter types, receiver excluded.
func (m *Method) in() []reflect.Type {
	ft := m.fn.Type()
	off := 1
	if m.static {
		off = 0
	}
	res := make([]reflect.Type, 0, ft.NumIn()-off)
	for i := off; i < ft.NumIn(); i++ {
		res = append(res, ft.In(i))
	}
	return res
}

func (m *Method) signature() string {
	b := &strings.Builder{}
	if m.static {
		b.WriteString("static ")
	}
	b.WriteString(m.name)
	b.WriteByte('(')
	for i, p := range m.in() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteByte(')')
	ft := m.fn.Type()
	switch ft.NumOut() {
	case 0:
	case 1:
		fmt.Fprintf(b, " %s", ft.Out(0))
	default:
		outs := make([]string, ft.NumOut())
		for i := range outs {
			outs[i] = ft.Out(i).String()
		}
		fmt.Fprintf(b, " (%s)", strings.Join(outs, ", "))
	}
	return b.String()
}

// Invoke calls the method on recv, which is ignored for static methods.
// A trailing error result is returned as the error; a method without
// other results returns the empty Any.
func (m *Method) Invoke(recv Any, args ...Any) (Any, error) {
	ins := m.in()
	if len(args) != len(ins) {
		return Any{}, &CastError{Message: fmt.Sprintf("method %s.%s takes %d arguments, got %d", m.owner.name, m.name, len(ins), len(args))}
	}
	in := make([]reflect.Value, 0, len(args)+1)
	if !m.static {
		if !recv.IsValid() {
			return Any{}, mismatch(m.owner.name, "<invalid>")
		}
		base, err := recv.base()
		if err != nil {
			return Any{}, err
		}
		if !base.typ.same(m.owner) {
			return Any{}, mismatch(m.owner.name, recv.typ.Name())
		}
		if m.ptrRcv {
			in = append(in, base.v.Addr())
		} else {
			in = append(in, base.v)
		}
	}
	for i, a := range args {
		v, err := collapse(a, ins[i])
		if err != nil {
			return Any{}, err
		}
		in = append(in, v)
	}
	out := m.fn.Call(in)
	if m.err {
		last := out[len(out)-1]
		if !last.IsNil() {
			return Any{}, last.Interface().(error)
		}
		out = out[:len(out)-1]
	}
	if len(out) == 0 {
		return Any{}, nil
	}
	res := New(m.result)
	res.v.Set(out[0])
	return res, nil
}

// MethodDef declares a method for registration.
type MethodDef struct {
	name   string
	fn     reflect.Value
	static bool
}

// MethodOf declares a method from a method expression such as
// (*Person).GetName, whose first parameter is the receiver.
func MethodOf(name string, fn any) MethodDef {
	return MethodDef{name: name, fn: reflect.ValueOf(fn)}
}

// StaticMethod declares a function attached to a type without a receiver.
func StaticMethod(name string, fn any) MethodDef {
	return MethodDef{name: name, fn: reflect.ValueOf(fn), static: true}
}

func (md MethodDef) build(owner *Type) (*Method, error) {
	bad := func(msg string) error {
		return &RegistryError{TypeName: owner.name, Message: fmt.Sprintf("method %s: %s", md.name, msg), Err: ErrInvalidDescriptor}
	}
	if md.name == "" {
		return nil, bad("no name")
	}
	if !md.fn.IsValid() || md.fn.Kind() != reflect.Func {
		return nil, bad("not a function")
	}
	ft := md.fn.Type()
	if ft.IsVariadic() {
		return nil, bad("variadic functions are not supported")
	}
	m := &Method{name: md.name, owner: owner, fn: md.fn, static: md.static}
	if !md.static {
		if ft.NumIn() == 0 {
			return nil, bad("missing receiver")
		}
		switch ft.In(0) {
		case owner.goType:
		case reflect.PointerTo(owner.goType):
			m.ptrRcv = true
		default:
			return nil, bad(fmt.Sprintf("receiver %s is not %s", ft.In(0), owner.goType))
		}
	}
	nOut := ft.NumOut()
	if nOut > 0 && ft.Out(nOut-1) == errorType {
		m.err = true
		nOut--
	}
	if nOut > 1 {
		return nil, bad("more than one result")
	}
	return m, nil
}
