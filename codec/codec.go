// Package codec converts values of registered types to and from bytes.
package codec

import (
	"github.com/signadot/tony-format/go-rtti/encode"
	"github.com/signadot/tony-format/go-rtti/format"
	"github.com/signadot/tony-format/go-rtti/marshal"
	"github.com/signadot/tony-format/go-rtti/meta"
)

type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, out any) error
}

// JSON encodes values as single line JSON. A nil Registry means the
// process-wide registry.
type JSON struct {
	Registry *meta.Registry
}

func (c JSON) Marshal(v any) ([]byte, error) {
	return marshal.NewMapper(c.Registry).Marshal(v,
		marshal.WithFormat(format.JSONFormat),
		marshal.WithEncodeOptions(encode.EncodeWire(true)))
}

func (c JSON) Unmarshal(data []byte, out any) error {
	return marshal.NewMapper(c.Registry).Unmarshal(data, out, marshal.WithFormat(format.JSONFormat))
}

// YAML encodes values as YAML documents.
type YAML struct {
	Registry *meta.Registry
}

func (c YAML) Marshal(v any) ([]byte, error) {
	return marshal.NewMapper(c.Registry).Marshal(v, marshal.WithFormat(format.YAMLFormat))
}

func (c YAML) Unmarshal(data []byte, out any) error {
	return marshal.NewMapper(c.Registry).Unmarshal(data, out, marshal.WithFormat(format.YAMLFormat))
}

// For returns the codec for f.
func For(f format.Format, r *meta.Registry) Codec {
	if f.IsYAML() {
		return YAML{Registry: r}
	}
	return JSON{Registry: r}
}
