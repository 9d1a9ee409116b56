package marshal

import (
	"fmt"
	"strconv"

	"github.com/signadot/tony-format/go-rtti/debug"
	"github.com/signadot/tony-format/go-rtti/ir"
	"github.com/signadot/tony-format/go-rtti/meta"
)

// Encode builds the document node for a.
//
// An empty Any and nil pointers encode as null, other pointers encode as
// what they point to. Structs encode as objects holding every declared
// field in declaration order. Enums encode as their names.
func Encode(a meta.Any) (*ir.Node, error) {
	node, err := encodeAt(a, "$")
	if err != nil {
		if debug.Encode() {
			debug.Logf("encode %s: %v", a.Type(), err)
		}
		return nil, err
	}
	return node, nil
}

func encodeAt(a meta.Any, path string) (*ir.Node, error) {
	if !a.IsValid() || a.IsNil() {
		return ir.Null(), nil
	}
	t := a.Type()
	if debug.Encode() {
		debug.Logf("encode %s at %s", t.Name(), path)
	}
	rv := a.Reflect()
	switch k := t.Kind(); {
	case k == meta.BoolKind:
		return ir.FromBool(rv.Bool()), nil
	case k == meta.StringKind:
		return ir.FromString(rv.String()), nil
	case k.IsSigned():
		return ir.FromInt(rv.Int()), nil
	case k.IsUnsigned():
		return ir.FromUint(rv.Uint()), nil
	case k == meta.Float32Kind:
		// shortest form which reads back as the same float32
		f, _ := strconv.ParseFloat(strconv.FormatFloat(rv.Float(), 'g', -1, 32), 64)
		return ir.FromFloat(f), nil
	case k == meta.Float64Kind:
		return ir.FromFloat(rv.Float()), nil
	case k == meta.EnumKind:
		name, err := a.EnumName()
		if err != nil {
			return nil, &EncodeError{FieldPath: path, Message: err.Error(), Err: meta.ErrUnknownEnumValue}
		}
		return ir.FromString(name), nil
	case k == meta.PointerKind:
		elem, err := a.Deref()
		if err != nil {
			return nil, &EncodeError{FieldPath: path, Message: err.Error(), Err: meta.ErrNullDereference}
		}
		return encodeAt(elem, path)
	case k == meta.StructKind:
		return encodeStruct(a, path)
	case k == meta.SliceKind:
		vals := make([]*ir.Node, a.Len())
		for i := range vals {
			elem, err := a.Index(i)
			if err != nil {
				return nil, &EncodeError{FieldPath: path, Message: err.Error(), Err: err}
			}
			n, err := encodeAt(elem, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			vals[i] = n
		}
		return ir.FromSlice(vals), nil
	}
	return nil, &EncodeError{
		FieldPath: path,
		Message:   fmt.Sprintf("cannot encode %s of kind %s", t.Name(), t.Kind()),
		Err:       meta.ErrTypeMismatch,
	}
}

func encodeStruct(a meta.Any, path string) (*ir.Node, error) {
	fields := a.Type().Fields()
	kvs := make([]ir.KeyVal, 0, len(fields))
	for _, f := range fields {
		fPath := path + "." + f.Name()
		fv, err := f.Ref(a)
		if err != nil {
			return nil, &EncodeError{FieldPath: fPath, Message: err.Error(), Err: err}
		}
		n, err := encodeAt(fv, fPath)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: ir.FromString(f.Name()), Val: n})
	}
	return ir.FromKeyVals(kvs), nil
}
