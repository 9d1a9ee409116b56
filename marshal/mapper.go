package marshal

import (
	"bytes"
	"fmt"
	"reflect"

	"github.com/signadot/tony-format/go-rtti/encode"
	"github.com/signadot/tony-format/go-rtti/meta"
	"github.com/signadot/tony-format/go-rtti/parse"
)

// Mapper reads and renders values of the types in a registry.
type Mapper struct {
	registry *meta.Registry
}

// NewMapper returns a Mapper over reg, or over the process-wide registry
// if reg is nil.
func NewMapper(reg *meta.Registry) *Mapper {
	if reg == nil {
		reg = meta.Default()
	}
	return &Mapper{registry: reg}
}

// DefaultMapper returns a Mapper over the process-wide registry.
func DefaultMapper() *Mapper {
	return NewMapper(nil)
}

func (m *Mapper) Registry() *meta.Registry {
	return m.registry
}

// Render encodes a and renders it as text.
func (m *Mapper) Render(a meta.Any, opts ...MapOption) ([]byte, error) {
	node, err := Encode(a)
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	eOpts := ToEncodeOptions(opts...)
	if err := encode.Encode(node, buf, eOpts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Read parses data and decodes it as a value of t. Parse errors are
// returned unchanged.
func (m *Mapper) Read(data []byte, t *meta.Type, opts ...UnmapOption) (meta.Any, error) {
	pOpts := ToParseOptions(opts...)
	node, err := parse.Parse(data, pOpts...)
	if err != nil {
		return meta.Any{}, err
	}
	return Decode(node, t)
}

// ReadNamed is Read for the type registered as name.
func (m *Mapper) ReadNamed(data []byte, name string, opts ...UnmapOption) (meta.Any, error) {
	t := m.registry.Lookup(name)
	if t == nil {
		return meta.Any{}, &DecodeError{Message: fmt.Sprintf("no type named %q", name), Err: meta.ErrTypeNotFound}
	}
	return m.Read(data, t, opts...)
}

// Marshal renders v, whose type must be registered.
func (m *Mapper) Marshal(v any, opts ...MapOption) ([]byte, error) {
	a, err := meta.ValueOf(m.registry, v)
	if err != nil {
		return nil, &EncodeError{Message: err.Error(), Err: err}
	}
	return m.Render(a, opts...)
}

// Unmarshal reads data into the value ptr points to.
func (m *Mapper) Unmarshal(data []byte, ptr any, opts ...UnmapOption) error {
	if ptr == nil {
		return &DecodeError{Message: "destination value cannot be nil", Err: meta.ErrNullDereference}
	}
	val := reflect.ValueOf(ptr)
	if val.Kind() != reflect.Pointer {
		return &DecodeError{Message: "destination value must be a pointer", Err: meta.ErrTypeMismatch}
	}
	if val.IsNil() {
		return &DecodeError{Message: "destination pointer cannot be nil", Err: meta.ErrNullDereference}
	}
	t, err := m.registry.TypeOf(val.Type().Elem())
	if err != nil {
		return &DecodeError{Message: err.Error(), Err: err}
	}
	a, err := m.Read(data, t, opts...)
	if err != nil {
		return err
	}
	val.Elem().Set(a.Reflect())
	return nil
}
