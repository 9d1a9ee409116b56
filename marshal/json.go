package marshal

import (
	"github.com/signadot/tony-format/go-rtti/encode"
	"github.com/signadot/tony-format/go-rtti/meta"
	"github.com/signadot/tony-format/go-rtti/parse"
)

// ToJSON renders v, a value of a type registered in r, as JSON text.
// The default rendering is a single line:
//
//	{ "name": "John", "height": 1.7 }
func ToJSON(r *meta.Registry, v any, opts ...encode.EncodeOption) ([]byte, error) {
	return NewMapper(r).Marshal(v, WithEncodeOptions(opts...))
}

// FromJSON decodes JSON text into a new T.
func FromJSON[T any](r *meta.Registry, data []byte, opts ...parse.ParseOption) (*T, error) {
	t, err := meta.TypeFor[T](r)
	if err != nil {
		return nil, &DecodeError{Message: err.Error(), Err: err}
	}
	a, err := NewMapper(r).Read(data, t, WithParseOptions(opts...))
	if err != nil {
		return nil, err
	}
	return meta.CastRef[T](a)
}

// Marshal renders v as JSON using the process-wide registry.
func Marshal(v any, opts ...MapOption) ([]byte, error) {
	return DefaultMapper().Marshal(v, opts...)
}

// Unmarshal reads data into ptr using the process-wide registry.
func Unmarshal(data []byte, ptr any, opts ...UnmapOption) error {
	return DefaultMapper().Unmarshal(data, ptr, opts...)
}
