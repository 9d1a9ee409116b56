package encode

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/signadot/tony-format/go-rtti/format"
	"github.com/signadot/tony-format/go-rtti/ir"

	"github.com/goccy/go-yaml"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth, indent int
	wire          bool

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w. No trailing newline is written.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if es.format.IsYAML() {
		return encodeYAML(node, w)
	}
	return encode(node, w, es)
}

// Helper functions for writing
func writeNL(w io.Writer, es *EncState) error {
	if es.wire || es.indent == 0 {
		return nil
	}
	indentString := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	return writeString(w, "\n"+indentString)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func multiLine(es *EncState) bool {
	return !es.wire && es.indent > 0
}

// Color application helpers

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

func writeSep(w io.Writer, es *EncState, cType ir.Type, sep string) error {
	return writeString(w, applyColor(es, cType, SepColor, sep))
}

// Main encode function

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.StringType:
		return writeString(w, applyColor(es, ir.StringType, ValueColor, Quote(node.String)))
	case ir.NumberType:
		return encodeNumber(node, w, es)
	case ir.BoolType:
		return writeString(w, applyColor(es, ir.BoolType, ValueColor, strconv.FormatBool(node.Bool)))
	case ir.NullType:
		return writeString(w, applyColor(es, ir.NullType, ValueColor, "null"))
	default:
		return fmt.Errorf("%w: unknown node type %s", ErrEncoding, node.Type)
	}
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	n := len(node.Fields)
	if err := writeSep(w, es, ir.ObjectType, "{"); err != nil {
		return err
	}
	if n == 0 {
		return writeSep(w, es, ir.ObjectType, "}")
	}
	es.depth++
	for i, yField := range node.Fields {
		if i > 0 {
			if err := writeSep(w, es, ir.ObjectType, ","); err != nil {
				return err
			}
		}
		if err := writeItemPrefix(w, es); err != nil {
			return err
		}
		if yField.Type != ir.StringType {
			return fmt.Errorf("%w: object key of type %s", ErrEncoding, yField.Type)
		}
		key := applyColor(es, ir.ObjectType, FieldColor, Quote(yField.String))
		if err := writeString(w, key); err != nil {
			return err
		}
		colon := ": "
		if es.wire {
			colon = ":"
		}
		if err := writeSep(w, es, ir.ObjectType, colon); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeItemSuffix(w, es); err != nil {
		return err
	}
	return writeSep(w, es, ir.ObjectType, "}")
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeSep(w, es, ir.ArrayType, "["); err != nil {
		return err
	}
	if len(node.Values) == 0 {
		return writeSep(w, es, ir.ArrayType, "]")
	}
	es.depth++
	for i, yv := range node.Values {
		if i > 0 {
			if err := writeSep(w, es, ir.ArrayType, ","); err != nil {
				return err
			}
			if !multiLine(es) && !es.wire {
				if err := writeString(w, " "); err != nil {
					return err
				}
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(yv, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, ir.ArrayType, "]")
}

// writeItemPrefix writes what precedes an object entry: a newline in
// multi-line mode, a single space in the default single-line mode.
func writeItemPrefix(w io.Writer, es *EncState) error {
	switch {
	case es.wire:
		return nil
	case multiLine(es):
		return writeNL(w, es)
	default:
		return writeString(w, " ")
	}
}

func writeItemSuffix(w io.Writer, es *EncState) error {
	return writeItemPrefix(w, es)
}

func encodeNumber(node *ir.Node, w io.Writer, es *EncState) error {
	var v string
	switch {
	case node.Int64 != nil:
		v = strconv.FormatInt(*node.Int64, 10)
	case node.Float64 != nil:
		f := *node.Float64
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: %v is not representable at %s", ErrEncoding, f, node.Path())
		}
		v = strconv.FormatFloat(f, 'g', -1, 64)
	case node.Number != "":
		v = node.Number
	default:
		return fmt.Errorf("%w: number node has no value at %s", ErrEncoding, node.Path())
	}
	return writeString(w, applyColor(es, ir.NumberType, ValueColor, v))
}

// Quote returns v as a double quoted JSON string.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

func encodeYAML(node *ir.Node, w io.Writer) error {
	v, err := toYAMLAny(node)
	if err != nil {
		return err
	}
	d, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return writeString(w, strings.TrimRight(string(d), "\n"))
}

func toYAMLAny(node *ir.Node) (any, error) {
	switch node.Type {
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i := range node.Fields {
			v, err := toYAMLAny(node.Values[i])
			if err != nil {
				return nil, err
			}
			res[i] = yaml.MapItem{Key: node.Fields[i].String, Value: v}
		}
		return res, nil
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			v, err := toYAMLAny(elt)
			if err != nil {
				return nil, err
			}
			res[i] = v
		}
		return res, nil
	case ir.StringType:
		return node.String, nil
	case ir.NumberType:
		if node.Int64 != nil {
			return *node.Int64, nil
		}
		if node.Float64 != nil {
			return *node.Float64, nil
		}
		u, err := strconv.ParseUint(node.Number, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid number %q", ErrEncoding, node.Number)
		}
		return u, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.NullType:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: unknown node type %s", ErrEncoding, node.Type)
	}
}
