package eval

import (
	"fmt"

	"github.com/signadot/tony-format/go-rtti/marshal"
	"github.com/signadot/tony-format/go-rtti/meta"
)

// Env is the set of names an expression can refer to.
type Env map[string]any

// EnvOf returns the environment of a struct value: each field under its
// name and each method as a function bound to a. Methods are bound to the
// storage of a, so methods which modify their receiver modify a.
func EnvOf(a meta.Any) (Env, error) {
	if !a.IsValid() {
		return nil, fmt.Errorf("%w: empty value", ErrEval)
	}
	t := a.Type().Base()
	if !t.IsComposite() {
		return nil, fmt.Errorf("%w: %s is not a struct", ErrEval, a.Type().Name())
	}
	v, err := envValue(a)
	if err != nil {
		return nil, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: nil %s", ErrEval, a.Type().Name())
	}
	return Env(m), nil
}

// envValue converts a to the plain Go values expressions work on:
// structs become maps, enums their names, signed numbers int, unsigned
// numbers uint64 and floats float64.
func envValue(a meta.Any) (any, error) {
	if !a.IsValid() || a.IsNil() {
		return nil, nil
	}
	t := a.Type()
	rv := a.Reflect()
	switch k := t.Kind(); {
	case k == meta.BoolKind:
		return rv.Bool(), nil
	case k == meta.StringKind:
		return rv.String(), nil
	case k.IsSigned():
		return int(rv.Int()), nil
	case k.IsUnsigned():
		return rv.Uint(), nil
	case k.IsFloat():
		return rv.Float(), nil
	case k == meta.EnumKind:
		return a.EnumName()
	case k == meta.PointerKind:
		elem, err := a.Deref()
		if err != nil {
			return nil, err
		}
		return envValue(elem)
	case k == meta.SliceKind:
		res := make([]any, a.Len())
		for i := range res {
			elem, err := a.Index(i)
			if err != nil {
				return nil, err
			}
			if res[i], err = envValue(elem); err != nil {
				return nil, err
			}
		}
		return res, nil
	case k == meta.StructKind:
		return structEnv(a)
	}
	return nil, fmt.Errorf("%w: unsupported kind %s", ErrEval, t.Kind())
}

func structEnv(a meta.Any) (map[string]any, error) {
	t := a.Type()
	res := make(map[string]any, len(t.Fields())+len(t.Methods()))
	for _, f := range t.Fields() {
		fv, err := f.Ref(a)
		if err != nil {
			return nil, err
		}
		v, err := envValue(fv)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name(), err)
		}
		res[f.Name()] = v
	}
	for _, m := range t.Methods() {
		res[m.Name()] = bind(m, a)
	}
	return res, nil
}

func bind(m *meta.Method, recv meta.Any) func(args ...any) (any, error) {
	return func(args ...any) (any, error) {
		params := m.Params()
		if len(args) != len(params) {
			return nil, fmt.Errorf("%w: %s takes %d arguments, got %d", ErrEval, m.Name(), len(params), len(args))
		}
		in := make([]meta.Any, len(args))
		for i, arg := range args {
			node, err := ToNode(arg)
			if err != nil {
				return nil, err
			}
			v, err := marshal.Decode(node, params[i])
			if err != nil {
				return nil, fmt.Errorf("%s argument %d: %w", m.Name(), i, err)
			}
			in[i] = v
		}
		res, err := m.Invoke(recv, in...)
		if err != nil {
			return nil, err
		}
		return envValue(res)
	}
}
