package meta

import "reflect"

// Kind is the category of a described type.
type Kind int

const (
	InvalidKind Kind = iota
	BoolKind
	IntKind
	Int8Kind
	Int16Kind
	Int32Kind
	Int64Kind
	UintKind
	Uint8Kind
	Uint16Kind
	Uint32Kind
	Uint64Kind
	Float32Kind
	Float64Kind
	StringKind
	EnumKind
	StructKind
	PointerKind
	SliceKind
)

var kindNames = map[Kind]string{
	InvalidKind: "invalid",
	BoolKind:    "bool",
	IntKind:     "int",
	Int8Kind:    "int8",
	Int16Kind:   "int16",
	Int32Kind:   "int32",
	Int64Kind:   "int64",
	UintKind:    "uint",
	Uint8Kind:   "uint8",
	Uint16Kind:  "uint16",
	Uint32Kind:  "uint32",
	Uint64Kind:  "uint64",
	Float32Kind: "float32",
	Float64Kind: "float64",
	StringKind:  "string",
	EnumKind:    "enum",
	StructKind:  "struct",
	PointerKind: "pointer",
	SliceKind:   "slice",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) IsNumber() bool {
	return k >= IntKind && k <= Float64Kind
}

func (k Kind) IsSigned() bool {
	return k >= IntKind && k <= Int64Kind
}

func (k Kind) IsUnsigned() bool {
	return k >= UintKind && k <= Uint64Kind
}

func (k Kind) IsFloat() bool {
	return k == Float32Kind || k == Float64Kind
}

// primitiveKind maps the reflect kind of a builtin Go type to a Kind.
func primitiveKind(k reflect.Kind) Kind {
	switch k {
	case reflect.Bool:
		return BoolKind
	case reflect.Int:
		return IntKind
	case reflect.Int8:
		return Int8Kind
	case reflect.Int16:
		return Int16Kind
	case reflect.Int32:
		return Int32Kind
	case reflect.Int64:
		return Int64Kind
	case reflect.Uint:
		return UintKind
	case reflect.Uint8:
		return Uint8Kind
	case reflect.Uint16:
		return Uint16Kind
	case reflect.Uint32:
		return Uint32Kind
	case reflect.Uint64:
		return Uint64Kind
	case reflect.Float32:
		return Float32Kind
	case reflect.Float64:
		return Float64Kind
	case reflect.String:
		return StringKind
	default:
		return InvalidKind
	}
}

// Ref is the ownership of a reference held in a pointer type.
type Ref int

const (
	// RefValue marks a non-pointer type.
	RefValue Ref = iota
	// RefShared references are shared by copies.
	RefShared
	// RefOwned references are cloned along with the value that holds them.
	RefOwned
)

func (r Ref) String() string {
	switch r {
	case RefValue:
		return "value"
	case RefShared:
		return "shared"
	case RefOwned:
		return "owned"
	default:
		return "<unknown ref>"
	}
}
