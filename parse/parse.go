package parse

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/signadot/tony-format/go-rtti/format"
	"github.com/signadot/tony-format/go-rtti/ir"

	"github.com/goccy/go-yaml"
	"github.com/segmentio/encoding/json"
)

var ErrParse = errors.New("parse error")

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{format: format.JSONFormat}
	for _, f := range opts {
		f(pOpts)
	}
	var (
		v   any
		err error
	)
	switch pOpts.format {
	case format.JSONFormat:
		v, err = parseJSON(d)
	case format.YAMLFormat:
		v, err = parseYAML(d)
	default:
		return nil, fmt.Errorf("%w: %s", format.ErrBadFormat, pOpts.format)
	}
	if err != nil {
		return nil, err
	}
	return fromAny(v)
}

func parseJSON(d []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty input", ErrParse)
		}
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	var extra any
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after document", ErrParse)
	}
	return v, nil
}

func parseYAML(d []byte) (any, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return v, nil
}

func fromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case json.Number:
		return fromNumber(string(x))
	case int:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint64:
		return ir.FromUint(x), nil
	case float64:
		return ir.FromFloat(x), nil
	case []any:
		vals := make([]*ir.Node, len(x))
		for i, elt := range x {
			n, err := fromAny(elt)
			if err != nil {
				return nil, err
			}
			vals[i] = n
		}
		return ir.FromSlice(vals), nil
	case map[string]any:
		m := make(map[string]*ir.Node, len(x))
		for k, elt := range x {
			n, err := fromAny(elt)
			if err != nil {
				return nil, err
			}
			m[k] = n
		}
		return ir.FromMap(m), nil
	case yaml.MapSlice:
		kvs := make([]ir.KeyVal, len(x))
		for i, item := range x {
			n, err := fromAny(item.Value)
			if err != nil {
				return nil, err
			}
			kvs[i] = ir.KeyVal{Key: ir.FromString(fmt.Sprint(item.Key)), Val: n}
		}
		return ir.FromKeyVals(kvs), nil
	default:
		return nil, fmt.Errorf("%w: unsupported value %T", ErrParse, v)
	}
}

func fromNumber(s string) (*ir.Node, error) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ir.FromInt(i), nil
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return ir.FromUint(u), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid number %q", ErrParse, s)
	}
	return ir.FromFloat(f), nil
}
