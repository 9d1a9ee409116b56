package meta

import (
	"fmt"
	"reflect"
	"strings"
)

// Integer is satisfied by the integral types an enum may be defined on.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Enum is the bidirectional mapping between the symbolic names of an
// enum type and their integral values.
type Enum struct {
	names   []string
	values  []int64
	byName  map[string]int64
	byValue map[int64]string
}

// Names returns the symbolic names in declaration order.
func (e *Enum) Names() []string { return e.names }

// Values returns the values in declaration order.
func (e *Enum) Values() []int64 { return e.values }

func (e *Enum) Value(name string) (int64, error) {
	v, ok := e.byName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownEnumName, name, strings.Join(e.names, ", "))
	}
	return v, nil
}

func (e *Enum) Name(v int64) (string, error) {
	n, ok := e.byValue[v]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownEnumValue, v)
	}
	return n, nil
}

func enumInt(v reflect.Value) int64 {
	if v.CanInt() {
		return v.Int()
	}
	return int64(v.Uint())
}

func setEnumInt(v reflect.Value, i int64) {
	if v.CanInt() {
		v.SetInt(i)
		return
	}
	v.SetUint(uint64(i))
}

// EnumDef declares an enum type E for registration.
type EnumDef[E Integer] struct {
	name   string
	desc   string
	names  []string
	values []E
}

// EnumOf declares the enum E named name. The given names take the
// values 0, 1, 2 and so on; Value adds names with explicit values.
func EnumOf[E Integer](name string, names ...string) *EnumDef[E] {
	d := &EnumDef[E]{name: name}
	for i, n := range names {
		d.names = append(d.names, n)
		d.values = append(d.values, E(i))
	}
	return d
}

func (d *EnumDef[E]) Value(name string, v E) *EnumDef[E] {
	d.names = append(d.names, name)
	d.values = append(d.values, v)
	return d
}

func (d *EnumDef[E]) Describe(desc string) *EnumDef[E] {
	d.desc = desc
	return d
}

func (d *EnumDef[E]) typeName() string     { return d.name }
func (d *EnumDef[E]) goType() reflect.Type { return reflect.TypeFor[E]() }

func (d *EnumDef[E]) define(r *Registry) (*Type, error) {
	t := &Type{
		name:   d.name,
		kind:   EnumKind,
		goType: d.goType(),
		desc:   d.desc,
		reg:    r,
		enum: &Enum{
			byName:  make(map[string]int64, len(d.names)),
			byValue: make(map[int64]string, len(d.names)),
		},
	}
	if len(d.names) == 0 {
		return nil, &RegistryError{TypeName: d.name, Message: "enum has no values", Err: ErrInvalidDescriptor}
	}
	e := t.enum
	for i, n := range d.names {
		v := int64(d.values[i])
		if n == "" {
			return nil, &RegistryError{TypeName: d.name, Message: fmt.Sprintf("value %d has no name", v), Err: ErrInvalidDescriptor}
		}
		if _, dup := e.byName[n]; dup {
			return nil, &RegistryError{TypeName: d.name, Message: fmt.Sprintf("name %q declared twice", n), Err: ErrInvalidDescriptor}
		}
		if other, dup := e.byValue[v]; dup {
			return nil, &RegistryError{TypeName: d.name, Message: fmt.Sprintf("names %q and %q share value %d", other, n, v), Err: ErrInvalidDescriptor}
		}
		e.byName[n] = v
		e.byValue[v] = n
		e.names = append(e.names, n)
		e.values = append(e.values, v)
	}
	return t, nil
}

// EnumName returns the symbolic name of v using the descriptor of E in r.
func EnumName[E Integer](r *Registry, v E) (string, error) {
	e, err := enumFor[E](r)
	if err != nil {
		return "", err
	}
	return e.Name(int64(v))
}

// EnumValue returns the value of E named name.
func EnumValue[E Integer](r *Registry, name string) (E, error) {
	e, err := enumFor[E](r)
	if err != nil {
		return 0, err
	}
	v, err := e.Value(name)
	if err != nil {
		return 0, err
	}
	return E(v), nil
}

func enumFor[E Integer](r *Registry) (*Enum, error) {
	t, err := TypeFor[E](r)
	if err != nil {
		return nil, err
	}
	if t.enum == nil {
		return nil, mismatch("enum", t.name)
	}
	return t.enum, nil
}

// EnumByName returns the value of the enum type t named name.
func EnumByName(t *Type, name string) (Any, error) {
	if t.enum == nil {
		return Any{}, mismatch("enum", t.name)
	}
	v, err := t.enum.Value(name)
	if err != nil {
		return Any{}, err
	}
	a := New(t)
	setEnumInt(a.v, v)
	return a, nil
}

// EnumName returns the symbolic name of the enum value held by a.
func (a Any) EnumName() (string, error) {
	if a.typ == nil || a.typ.enum == nil {
		return "", mismatch("enum", a.typeName())
	}
	return a.typ.enum.Name(enumInt(a.v))
}
