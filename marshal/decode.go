package marshal

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/signadot/tony-format/go-rtti/debug"
	"github.com/signadot/tony-format/go-rtti/ir"
	"github.com/signadot/tony-format/go-rtti/meta"
)

// Decode builds a value of type t from node.
//
// Numbers are converted to the width of the target with Go conversion
// semantics and are not range checked. Enums are read from their names.
// Structs are built with their zero argument constructor and each key of
// the object sets the field of the same name; fields absent from node keep
// their constructed value. A null node gives the constructed value of a
// struct, a nil pointer or slice, or the zero value of other types.
//
// The first failure is returned as a *DecodeError and no value is
// returned with it.
func Decode(node *ir.Node, t *meta.Type) (meta.Any, error) {
	if t == nil {
		return meta.Any{}, &DecodeError{FieldPath: "$", Message: "no type", Err: meta.ErrTypeNotFound}
	}
	if node == nil {
		node = ir.Null()
	}
	res, err := decode(node, t)
	if err != nil {
		if debug.Decode() {
			debug.Logf("decode %s: %v", t.Name(), err)
		}
		return meta.Any{}, err
	}
	return res, nil
}

func decode(node *ir.Node, t *meta.Type) (meta.Any, error) {
	if debug.Decode() {
		debug.Logf("decode %s as %s at %s", node.Type, t.Name(), node.Path())
	}
	if node.Type == ir.NullType {
		return decodeNull(node, t)
	}
	switch {
	case t.IsBool():
		if node.Type != ir.BoolType {
			return meta.Any{}, mismatch(node, t)
		}
		res := meta.New(t)
		res.Reflect().SetBool(node.Bool)
		return res, nil
	case t.IsString():
		if node.Type != ir.StringType {
			return meta.Any{}, mismatch(node, t)
		}
		res := meta.New(t)
		res.Reflect().SetString(node.String)
		return res, nil
	case t.IsNumber():
		return decodeNumber(node, t)
	case t.IsEnum():
		if node.Type != ir.StringType {
			return meta.Any{}, mismatch(node, t)
		}
		res, err := meta.EnumByName(t, node.String)
		if err != nil {
			return meta.Any{}, &DecodeError{FieldPath: node.Path(), Message: err.Error(), Err: meta.ErrUnknownEnumName}
		}
		return res, nil
	case t.IsComposite():
		return decodeStruct(node, t)
	case t.IsPointer():
		elem, err := decode(node, t.Elem())
		if err != nil {
			return meta.Any{}, err
		}
		return elem.Pointer(t.Ref())
	case t.IsSlice():
		return decodeSlice(node, t)
	}
	return meta.Any{}, &DecodeError{
		FieldPath: node.Path(),
		Message:   fmt.Sprintf("cannot decode into %s of kind %s", t.Name(), t.Kind()),
		Err:       meta.ErrTypeMismatch,
	}
}

func mismatch(node *ir.Node, t *meta.Type) error {
	return &DecodeError{
		FieldPath: node.Path(),
		Message:   fmt.Sprintf("expected %s for %s, got %s", nodeTypeFor(t), t.Name(), node.Type),
		Err:       meta.ErrTypeMismatch,
	}
}

func nodeTypeFor(t *meta.Type) ir.Type {
	switch {
	case t.IsBool():
		return ir.BoolType
	case t.IsNumber():
		return ir.NumberType
	case t.IsString(), t.IsEnum():
		return ir.StringType
	case t.IsSlice():
		return ir.ArrayType
	case t.IsPointer():
		return nodeTypeFor(t.Base())
	}
	return ir.ObjectType
}

func decodeNull(node *ir.Node, t *meta.Type) (meta.Any, error) {
	if !t.IsComposite() {
		return meta.New(t), nil
	}
	return construct(node, t)
}

func construct(node *ir.Node, t *meta.Type) (meta.Any, error) {
	ctor, err := t.DefaultConstructor()
	if err != nil {
		return meta.Any{}, &DecodeError{FieldPath: node.Path(), Message: err.Error(), Err: meta.ErrConstructorNotFound}
	}
	res, err := ctor.Invoke()
	if err != nil {
		return meta.Any{}, &DecodeError{FieldPath: node.Path(), Message: fmt.Sprintf("constructing %s: %v", t.Name(), err), Err: err}
	}
	return res, nil
}

func decodeNumber(node *ir.Node, t *meta.Type) (meta.Any, error) {
	if node.Type != ir.NumberType {
		return meta.Any{}, mismatch(node, t)
	}
	reg := t.Registry()
	var (
		src meta.Any
		err error
	)
	switch {
	case node.Int64 != nil:
		src, err = meta.Wrap(reg, *node.Int64)
	case node.Float64 != nil:
		src, err = meta.Wrap(reg, *node.Float64)
	default:
		u, ok := node.AsUint64()
		if !ok {
			f, fok := node.AsFloat64()
			if !fok {
				return meta.Any{}, &DecodeError{FieldPath: node.Path(), Message: fmt.Sprintf("invalid number %q", node.Number), Err: meta.ErrTypeMismatch}
			}
			src, err = meta.Wrap(reg, f)
			break
		}
		src, err = meta.Wrap(reg, u)
	}
	if err == nil {
		src, err = src.Convert(t)
	}
	if err != nil {
		return meta.Any{}, &DecodeError{FieldPath: node.Path(), Message: err.Error(), Err: err}
	}
	return src, nil
}

func decodeStruct(node *ir.Node, t *meta.Type) (meta.Any, error) {
	if node.Type != ir.ObjectType {
		return meta.Any{}, mismatch(node, t)
	}
	obj, err := construct(node, t)
	if err != nil {
		return meta.Any{}, err
	}
	for i, key := range node.Fields {
		valNode := node.Values[i]
		f := t.Field(key.String)
		if f == nil {
			return meta.Any{}, &DecodeError{
				FieldPath: valNode.Path(),
				Message:   fmt.Sprintf("%s has no field %q", t.Name(), key.String),
				Err:       meta.ErrFieldNotFound,
			}
		}
		v, err := decode(valNode, f.Type())
		if err != nil {
			return meta.Any{}, err
		}
		for v.Depth() > f.Type().Depth() {
			v, err = v.Deref()
			if err != nil {
				return meta.Any{}, &DecodeError{FieldPath: valNode.Path(), Message: err.Error(), Err: meta.ErrNullDereference}
			}
		}
		if err := f.Set(obj, v); err != nil {
			return meta.Any{}, &DecodeError{FieldPath: valNode.Path(), Message: err.Error(), Err: errors.Unwrap(err)}
		}
	}
	return obj, nil
}

func decodeSlice(node *ir.Node, t *meta.Type) (meta.Any, error) {
	if node.Type != ir.ArrayType {
		return meta.Any{}, mismatch(node, t)
	}
	n := len(node.Values)
	s := reflect.MakeSlice(t.GoType(), n, n)
	for i, elt := range node.Values {
		v, err := decode(elt, t.Elem())
		if err != nil {
			return meta.Any{}, err
		}
		s.Index(i).Set(v.Reflect())
	}
	res := meta.New(t)
	res.Reflect().Set(s)
	return res, nil
}
