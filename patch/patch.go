// Package patch applies JSON patches (RFC 6902) and JSON merge patches
// (RFC 7396) to values of registered types.
//
// A patch never modifies its input. The patched document is decoded into
// a fresh value of the same type, so fields the patch introduces which the
// type does not declare fail with meta.ErrFieldNotFound.
package patch

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/signadot/tony-format/go-rtti/debug"
	"github.com/signadot/tony-format/go-rtti/encode"
	"github.com/signadot/tony-format/go-rtti/ir"
	"github.com/signadot/tony-format/go-rtti/marshal"
	"github.com/signadot/tony-format/go-rtti/meta"

	jsonpatch "github.com/evanphx/json-patch"
)

var ErrPatch = errors.New("patch error")

var wire = marshal.WithEncodeOptions(encode.EncodeWire(true))

// Apply applies the JSON patch doc to v and returns the result.
//
//	[{"op": "replace", "path": "/name", "value": "Jane"}]
func Apply(v meta.Any, doc []byte) (meta.Any, error) {
	ops, err := jsonpatch.DecodePatch(doc)
	if err != nil {
		return meta.Any{}, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return transform(v, "json patch", func(d []byte) ([]byte, error) {
		return ops.Apply(d)
	})
}

// Merge applies the JSON merge patch doc to v and returns the result.
func Merge(v meta.Any, doc []byte) (meta.Any, error) {
	return transform(v, "merge patch", func(d []byte) ([]byte, error) {
		return jsonpatch.MergePatch(d, doc)
	})
}

// Diff returns the merge patch which turns from into to. Both must have
// the same type. Equal values give the empty patch {}.
func Diff(from, to meta.Any) ([]byte, error) {
	if !from.IsValid() || !to.IsValid() || from.Type().GoType() != to.Type().GoType() {
		return nil, &meta.CastError{Expected: typeName(from), Actual: typeName(to),
			Message: "cannot diff values of different types"}
	}
	a, err := marshal.Encode(from)
	if err != nil {
		return nil, err
	}
	b, err := marshal.Encode(to)
	if err != nil {
		return nil, err
	}
	if ir.Compare(a, b) == 0 {
		return []byte("{}"), nil
	}
	var da, db bytes.Buffer
	if err := encode.Encode(a, &da, encode.EncodeWire(true)); err != nil {
		return nil, err
	}
	if err := encode.Encode(b, &db, encode.EncodeWire(true)); err != nil {
		return nil, err
	}
	res, err := jsonpatch.CreateMergePatch(da.Bytes(), db.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return res, nil
}

func transform(v meta.Any, what string, f func([]byte) ([]byte, error)) (meta.Any, error) {
	if !v.IsValid() {
		return meta.Any{}, fmt.Errorf("%w: empty value", ErrPatch)
	}
	m := mapper(v)
	d, err := m.Render(v, wire)
	if err != nil {
		return meta.Any{}, err
	}
	if debug.Patch() {
		debug.Logf("%s on %s: %s", what, v.Type(), d)
	}
	out, err := f(d)
	if err != nil {
		return meta.Any{}, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return m.Read(out, v.Type())
}

func mapper(v meta.Any) *marshal.Mapper {
	if v.Type() == nil {
		return marshal.DefaultMapper()
	}
	return marshal.NewMapper(v.Type().Registry())
}

func typeName(v meta.Any) string {
	if !v.IsValid() {
		return "<invalid>"
	}
	return v.Type().Name()
}
