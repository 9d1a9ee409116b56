package meta

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type phone struct {
	area, number string
}

func (p *phone) String() string { return p.area + " " + p.number }

type color uint8

const (
	red color = iota
	green
	blue
)

type person struct {
	name   string
	age    int32
	height float32
	fav    color
	phone  phone
	friend *person
	boss   *person
	tags   []string
}

func newPerson(name string, age int32) *person {
	return &person{name: name, age: age, fav: green}
}

func (p *person) Name() string        { return p.name }
func (p *person) SetName(name string) { p.name = name }
func (p person) Age() int32           { return p.age }

func (p *person) Grow(years int32) (int32, error) {
	if years < 0 {
		return 0, errors.New("cannot shrink")
	}
	p.age += years
	return p.age, nil
}

func population() int { return 42 }

func testDefs() []Definition {
	return []Definition{
		EnumOf[color]("color", "red", "green", "blue"),
		Struct[phone]("phone").Fields(
			FieldOf("area", func(p *phone) *string { return &p.area }),
			FieldOf("number", func(p *phone) *string { return &p.number }),
		),
		Struct[person]("person").
			Describe("A person.").
			Fields(
				FieldOf("name", func(p *person) *string { return &p.name }),
				FieldOf("age", func(p *person) *int32 { return &p.age }),
				FieldOf("height", func(p *person) *float32 { return &p.height }),
				FieldOf("fav", func(p *person) *color { return &p.fav }),
				FieldOf("phone", func(p *person) *phone { return &p.phone }),
				FieldOf("friend", func(p *person) **person { return &p.friend }, Owning()),
				FieldOf("boss", func(p *person) **person { return &p.boss }),
				FieldOf("tags", func(p *person) *[]string { return &p.tags }),
			).
			Ctors(
				Ctor(func() *person { return newPerson("nobody", 0) }),
				Ctor(newPerson),
			).
			Methods(
				MethodOf("Name", (*person).Name),
				MethodOf("SetName", (*person).SetName),
				MethodOf("Age", person.Age),
				MethodOf("Grow", (*person).Grow),
				StaticMethod("Population", population),
			),
	}
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	if err := r.Register(testDefs()...); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := r.Freeze(); err != nil {
		t.Fatalf("Freeze() error = %v", err)
	}
	return r
}

var allowPerson = cmp.AllowUnexported(person{}, phone{})

func TestRegisterIdempotent(t *testing.T) {
	r := newTestRegistry(t)
	r2 := NewRegistry()
	if err := r2.Register(testDefs()...); err != nil {
		t.Fatal(err)
	}
	if err := r2.Register(testDefs()...); err != nil {
		t.Errorf("registering twice: %v", err)
	}
	if r.Lookup("person") == nil || r.Lookup("color") == nil {
		t.Errorf("Lookup() missing registered types")
	}
	if r.Lookup("nope") != nil {
		t.Errorf("Lookup(nope) should be nil")
	}
}

func TestRegisterErrors(t *testing.T) {
	type other struct{ x int }
	tests := []struct {
		name string
		defs []Definition
		want error
	}{
		{
			name: "name reused",
			defs: []Definition{Struct[phone]("thing"), Struct[other]("thing")},
			want: ErrDuplicateType,
		},
		{
			name: "go type reused",
			defs: []Definition{Struct[phone]("phone"), Struct[phone]("phone2")},
			want: ErrDuplicateType,
		},
		{
			name: "different fields",
			defs: []Definition{
				Struct[phone]("phone").Fields(FieldOf("area", func(p *phone) *string { return &p.area })),
				Struct[phone]("phone").Fields(FieldOf("number", func(p *phone) *string { return &p.number })),
			},
			want: ErrDuplicateType,
		},
		{
			name: "same field name elsewhere",
			defs: []Definition{
				Struct[phone]("phone").Fields(FieldOf("area", func(p *phone) *string { return &p.area })),
				Struct[phone]("phone").Fields(FieldOf("area", func(p *phone) *string { return &p.number })),
			},
			want: ErrDuplicateType,
		},
		{
			name: "different methods",
			defs: []Definition{
				Struct[phone]("phone"),
				Struct[phone]("phone").Methods(MethodOf("String", (*phone).String)),
			},
			want: ErrDuplicateType,
		},
		{
			name: "different enum values",
			defs: []Definition{EnumOf[color]("color", "red"), EnumOf[color]("color", "blue")},
			want: ErrDuplicateType,
		},
		{
			name: "duplicate field",
			defs: []Definition{Struct[phone]("phone").Fields(
				FieldOf("area", func(p *phone) *string { return &p.area }),
				FieldOf("area", func(p *phone) *string { return &p.number }),
			)},
			want: ErrInvalidDescriptor,
		},
		{
			name: "shared enum value",
			defs: []Definition{EnumOf[color]("color", "red").Value("crimson", 0)},
			want: ErrInvalidDescriptor,
		},
		{
			name: "duplicate enum name",
			defs: []Definition{EnumOf[color]("color", "red", "red")},
			want: ErrInvalidDescriptor,
		},
		{
			name: "same constructor signature",
			defs: []Definition{Struct[phone]("phone").Ctors(
				Ctor(func() phone { return phone{} }),
				Ctor(func() *phone { return &phone{} }),
			)},
			want: ErrInvalidDescriptor,
		},
		{
			name: "constructor of other type",
			defs: []Definition{Struct[phone]("phone").Ctors(Ctor(func() other { return other{} }))},
			want: ErrInvalidDescriptor,
		},
		{
			name: "owning a value",
			defs: []Definition{Struct[phone]("phone").Fields(
				FieldOf("area", func(p *phone) *string { return &p.area }, Owning()),
			)},
			want: ErrInvalidDescriptor,
		},
		{
			name: "not a struct",
			defs: []Definition{Struct[color]("color")},
			want: ErrInvalidDescriptor,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			err := r.Register(tt.defs...)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Register() error = %v, want %v", err, tt.want)
			}
			var re *RegistryError
			if !errors.As(err, &re) {
				t.Errorf("expected a *RegistryError, got %T", err)
			}
		})
	}
}

func TestFreeze(t *testing.T) {
	r := NewRegistry()
	// person refers to phone and color, registered later.
	if err := r.Register(testDefs()[2]); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := r.Register(testDefs()[:2]...); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := r.Freeze(); err != nil {
		t.Fatalf("Freeze() error = %v", err)
	}
	if !r.Frozen() {
		t.Errorf("Frozen() = false")
	}
	if got := r.Lookup("person").Field("phone").Type(); got != r.Lookup("phone") {
		t.Errorf("phone field type = %v", got)
	}
	err := r.Register(Struct[struct{}]("empty"))
	if !errors.Is(err, ErrFrozen) {
		t.Errorf("Register() after Freeze error = %v", err)
	}
}

func TestFreezeUnresolved(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(testDefs()[2]); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := r.Freeze(); !errors.Is(err, ErrTypeNotFound) {
		t.Errorf("Freeze() error = %v, want ErrTypeNotFound", err)
	}
}

func TestLookupKind(t *testing.T) {
	r := NewRegistry()
	for _, k := range []Kind{BoolKind, IntKind, Uint8Kind, Float32Kind, StringKind} {
		typ := r.LookupKind(k)
		if typ == nil || typ.Kind() != k || typ.Name() != k.String() {
			t.Errorf("LookupKind(%s) = %v", k, typ)
		}
	}
	if r.LookupKind(StructKind) != nil {
		t.Errorf("LookupKind(struct) should be nil")
	}
}

func TestDerivedTypes(t *testing.T) {
	r := newTestRegistry(t)
	p := r.Lookup("*person")
	if p == nil || p.Kind() != PointerKind || p.Elem() != r.Lookup("person") || p.Depth() != 1 {
		t.Fatalf("Lookup(*person) = %v", p)
	}
	if p != r.PointerTo(r.Lookup("person"), RefShared) {
		t.Errorf("pointer types should be cached")
	}
	pp := r.Lookup("**person")
	if pp.Depth() != 2 || pp.Base() != r.Lookup("person") {
		t.Errorf("**person depth = %d base = %v", pp.Depth(), pp.Base())
	}
	friend := r.Lookup("person").Field("friend").Type()
	if friend.Ref() != RefOwned || friend.Name() != "*person" {
		t.Errorf("friend type = %v %v", friend, friend.Ref())
	}
	if boss := r.Lookup("person").Field("boss").Type(); boss.Ref() != RefShared {
		t.Errorf("boss ref = %v", boss.Ref())
	}
	s := r.Lookup("[]string")
	if s == nil || s.Kind() != SliceKind || s.Elem() != r.LookupKind(StringKind) {
		t.Errorf("Lookup([]string) = %v", s)
	}
}

func TestConcurrentLookup(t *testing.T) {
	r := newTestRegistry(t)
	pt := r.Lookup("person")
	want := map[string]*Type{
		"*person":  r.Lookup("*person"),
		"[]phone":  r.Lookup("[]phone"),
		"**person": r.Lookup("**person"),
		"[]*color": r.Lookup("[]*color"),
	}
	for i := range 8 {
		t.Run(fmt.Sprintf("reader %d", i), func(t *testing.T) {
			t.Parallel()
			for range 100 {
				for name, w := range want {
					if got := r.Lookup(name); got != w {
						t.Errorf("Lookup(%s) = %p, want %p", name, got, w)
					}
				}
				if got := r.PointerTo(pt, RefShared); got != want["*person"] {
					t.Errorf("PointerTo(person) = %p, want %p", got, want["*person"])
				}
				if got := r.SliceOf(r.Lookup("phone")); got != want["[]phone"] {
					t.Errorf("SliceOf(phone) = %p, want %p", got, want["[]phone"])
				}
				if owned := r.PointerTo(pt, RefOwned); owned.Ref() != RefOwned {
					t.Errorf("PointerTo(person, owned) ref = %v", owned.Ref())
				}
			}
		})
	}
}

func TestEnumBijection(t *testing.T) {
	r := newTestRegistry(t)
	e := r.Lookup("color").Enum()
	if diff := cmp.Diff([]string{"red", "green", "blue"}, e.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
	for _, v := range e.Values() {
		n, err := e.Name(v)
		if err != nil {
			t.Fatal(err)
		}
		back, err := e.Value(n)
		if err != nil || back != v {
			t.Errorf("Value(Name(%d)) = %d, %v", v, back, err)
		}
	}
	if _, err := e.Value("purple"); !errors.Is(err, ErrUnknownEnumName) {
		t.Errorf("Value(purple) error = %v", err)
	}
	if _, err := e.Name(7); !errors.Is(err, ErrUnknownEnumValue) {
		t.Errorf("Name(7) error = %v", err)
	}
	if n, err := EnumName(r, blue); err != nil || n != "blue" {
		t.Errorf("EnumName(blue) = %q, %v", n, err)
	}
	if v, err := EnumValue[color](r, "green"); err != nil || v != green {
		t.Errorf("EnumValue(green) = %d, %v", v, err)
	}
}

func TestEnumExplicitValues(t *testing.T) {
	type level int16
	r := NewRegistry()
	err := r.Register(EnumOf[level]("level").Value("low", -1).Value("high", 10))
	if err != nil {
		t.Fatal(err)
	}
	if v, err := EnumValue[level](r, "low"); err != nil || v != -1 {
		t.Errorf("EnumValue(low) = %d, %v", v, err)
	}
	a, err := Wrap(r, level(10))
	if err != nil {
		t.Fatal(err)
	}
	if a.String() != "high" {
		t.Errorf("String() = %q", a.String())
	}
}

func TestFieldGetSet(t *testing.T) {
	r := newTestRegistry(t)
	pt := r.Lookup("person")
	p, err := Wrap(r, person{name: "Ann", age: 30})
	if err != nil {
		t.Fatal(err)
	}
	name, err := pt.Field("name").Get(p)
	if err != nil {
		t.Fatal(err)
	}
	if s, _ := Cast[string](name); s != "Ann" {
		t.Errorf("name = %q", s)
	}
	newName, _ := Wrap(r, "Bea")
	if err := pt.Field("name").Set(p, newName); err != nil {
		t.Fatal(err)
	}
	// name is a copy.
	if s, _ := Cast[string](name); s != "Ann" {
		t.Errorf("copied name changed to %q", s)
	}
	got, err := Cast[person](p)
	if err != nil {
		t.Fatal(err)
	}
	if got.name != "Bea" {
		t.Errorf("name after Set = %q", got.name)
	}
	wrong, _ := Wrap(r, int64(3))
	err = pt.Field("age").Set(p, wrong)
	if !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Set(age, int64) error = %v", err)
	}
	other, _ := Wrap(r, phone{})
	if _, err := pt.Field("age").Get(other); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Get on wrong owner error = %v", err)
	}
}

func TestFieldRefAliases(t *testing.T) {
	r := newTestRegistry(t)
	p, _ := Wrap(r, person{age: 1})
	age, err := r.Lookup("person").Field("age").Ref(p)
	if err != nil {
		t.Fatal(err)
	}
	ptr, err := CastRef[int32](age)
	if err != nil {
		t.Fatal(err)
	}
	*ptr = 7
	got, _ := Cast[person](p)
	if got.age != 7 {
		t.Errorf("age = %d, want 7", got.age)
	}
}

func TestFieldThroughPointer(t *testing.T) {
	r := newTestRegistry(t)
	pp, err := Wrap(r, &person{name: "Cy"})
	if err != nil {
		t.Fatal(err)
	}
	if pp.Depth() != 1 {
		t.Fatalf("Depth() = %d", pp.Depth())
	}
	name, err := r.Lookup("person").Field("name").Get(pp)
	if err != nil {
		t.Fatal(err)
	}
	if name.String() != "Cy" {
		t.Errorf("name = %q", name.String())
	}
	var nilp *person
	np, _ := Wrap(r, nilp)
	if _, err := r.Lookup("person").Field("name").Get(np); !errors.Is(err, ErrNullDereference) {
		t.Errorf("Get through nil error = %v", err)
	}
}

func TestCast(t *testing.T) {
	r := newTestRegistry(t)
	a, _ := Wrap(r, int32(5))
	if _, err := Cast[int64](a); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Cast[int64](int32) error = %v", err)
	}
	var ce *CastError
	if _, err := Cast[string](a); !errors.As(err, &ce) || ce.Expected != "string" || ce.Actual != "int32" {
		t.Errorf("Cast[string](int32) error = %v", err)
	}
	if _, err := Cast[int32](Any{}); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Cast of empty Any error = %v", err)
	}
	if _, err := Cast[color](a); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Cast[color](int32) error = %v", err)
	}

	// extra stored depth is collapsed.
	p := &person{name: "Di"}
	pa, _ := Wrap(r, &p)
	got, err := Cast[person](pa)
	if err != nil {
		t.Fatal(err)
	}
	if got.name != "Di" {
		t.Errorf("name = %q", got.name)
	}
	// a copy.
	got.name = "Ed"
	if p.name != "Di" {
		t.Errorf("Cast should copy, p.name = %q", p.name)
	}
	// a reference.
	ref, err := CastRef[person](pa)
	if err != nil {
		t.Fatal(err)
	}
	ref.name = "Ed"
	if p.name != "Ed" {
		t.Errorf("CastRef should share, p.name = %q", p.name)
	}
	// but never less depth than stored.
	v, _ := Wrap(r, person{})
	if _, err := Cast[*person](v); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Cast[*person](person) error = %v", err)
	}
	var nilp *person
	na, _ := Wrap(r, nilp)
	if _, err := Cast[person](na); !errors.Is(err, ErrNullDereference) {
		t.Errorf("Cast through nil error = %v", err)
	}
}

func TestDeref(t *testing.T) {
	r := newTestRegistry(t)
	v, _ := Wrap(r, person{})
	if _, err := v.Deref(); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Deref() of value error = %v", err)
	}
	var nilp *person
	n, _ := Wrap(r, nilp)
	if !n.IsNil() {
		t.Errorf("IsNil() = false")
	}
	if _, err := n.Deref(); !errors.Is(err, ErrNullDereference) {
		t.Errorf("Deref() of nil error = %v", err)
	}
	p, _ := v.Pointer(RefShared)
	d, err := p.Deref()
	if err != nil {
		t.Fatal(err)
	}
	if d.Type() != r.Lookup("person") || d.Depth() != 0 {
		t.Errorf("Deref() = %v depth %d", d.Type(), d.Depth())
	}
}

func TestCopyOwnership(t *testing.T) {
	r := newTestRegistry(t)
	friend := &person{name: "friend"}
	boss := &person{name: "boss"}
	orig, _ := Wrap(r, person{name: "me", friend: friend, boss: boss, tags: []string{"a"}})
	cp := orig.Copy()
	got, err := CastRef[person](cp)
	if err != nil {
		t.Fatal(err)
	}
	if got.friend == friend {
		t.Errorf("owned pointer should be cloned")
	}
	if got.friend.name != "friend" {
		t.Errorf("cloned friend = %+v", got.friend)
	}
	if got.boss != boss {
		t.Errorf("shared pointer should be shared")
	}
	got.tags[0] = "b"
	o, _ := CastRef[person](orig)
	if o.tags[0] != "a" {
		t.Errorf("slices should be copied")
	}
	if diff := cmp.Diff(*o, *got, allowPerson); diff == "" {
		t.Errorf("copies should have diverged")
	}
}

func TestHandleAndAssign(t *testing.T) {
	r := newTestRegistry(t)
	a, _ := Wrap(r, int32(1))
	b := a
	ptr, _ := CastRef[int32](b)
	*ptr = 2
	if v, _ := Cast[int32](a); v != 2 {
		t.Errorf("handles should share storage, got %d", v)
	}
	s, _ := Wrap(r, "x")
	b.Assign(s)
	if b.Type().Name() != "string" {
		t.Errorf("Assign() type = %s", b.Type())
	}
	if v, _ := Cast[int32](a); v != 2 {
		t.Errorf("Assign() should not write through to a, got %d", v)
	}
	if _, err := Cast[int32](b); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Cast after Assign error = %v", err)
	}
}

func TestConvertTruncates(t *testing.T) {
	r := newTestRegistry(t)
	tests := []struct {
		in   any
		to   Kind
		want any
	}{
		{3.9, Int8Kind, int8(3)},
		{int64(300), Uint8Kind, uint8(44)},
		{int64(-1), Uint16Kind, uint16(65535)},
		{int64(70000), Int16Kind, int16(4464)},
		{int64(2), Float32Kind, float32(2)},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v to %s", tt.in, tt.to), func(t *testing.T) {
			a, err := ValueOf(r, tt.in)
			if err != nil {
				t.Fatal(err)
			}
			c, err := a.Convert(r.LookupKind(tt.to))
			if err != nil {
				t.Fatal(err)
			}
			if c.Interface() != tt.want {
				t.Errorf("got %v (%T), want %v (%T)", c.Interface(), c.Interface(), tt.want, tt.want)
			}
		})
	}
	s, _ := Wrap(r, "1")
	if _, err := s.Convert(r.LookupKind(IntKind)); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Convert(string) error = %v", err)
	}
}

func TestConstructors(t *testing.T) {
	r := newTestRegistry(t)
	pt := r.Lookup("person")
	if len(pt.Constructors()) != 2 {
		t.Fatalf("got %d constructors", len(pt.Constructors()))
	}
	def, err := pt.DefaultConstructor()
	if err != nil {
		t.Fatal(err)
	}
	v, err := def.Invoke()
	if err != nil {
		t.Fatal(err)
	}
	if v.Type() != pt || v.Depth() != 0 {
		t.Errorf("Invoke() type = %v", v.Type())
	}
	if got, _ := Cast[person](v); got.name != "nobody" || got.fav != green {
		t.Errorf("default person = %+v", got)
	}
	c, err := pt.Constructor(r.LookupKind(StringKind), r.LookupKind(Int32Kind))
	if err != nil {
		t.Fatal(err)
	}
	name, _ := Wrap(r, "Flo")
	age, _ := Wrap(r, int32(40))
	v, err = c.Invoke(name, age)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := Cast[person](v); got.name != "Flo" || got.age != 40 {
		t.Errorf("person = %+v", got)
	}
	if _, err := c.Invoke(age, name); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Invoke() with swapped args error = %v", err)
	}
	if _, err := pt.Constructor(r.LookupKind(StringKind)); !errors.Is(err, ErrConstructorNotFound) {
		t.Errorf("Constructor(string) error = %v", err)
	}
}

func TestSynthesizedConstructor(t *testing.T) {
	r := newTestRegistry(t)
	c, err := r.Lookup("phone").DefaultConstructor()
	if err != nil {
		t.Fatal(err)
	}
	v, err := c.Invoke()
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := Cast[phone](v); got != (phone{}) {
		t.Errorf("got %+v", got)
	}
}

func TestMethods(t *testing.T) {
	r := newTestRegistry(t)
	pt := r.Lookup("person")
	p, _ := Wrap(r, person{name: "Gus", age: 3})

	res, err := pt.Method("Name").Invoke(p)
	if err != nil {
		t.Fatal(err)
	}
	if res.String() != "Gus" {
		t.Errorf("Name() = %v", res)
	}
	newName, _ := Wrap(r, "Hal")
	res, err = pt.Method("SetName").Invoke(p, newName)
	if err != nil {
		t.Fatal(err)
	}
	if res.IsValid() {
		t.Errorf("SetName() should return the empty Any")
	}
	if got, _ := Cast[person](p); got.name != "Hal" {
		t.Errorf("name after SetName = %q", got.name)
	}
	res, err = pt.Method("Age").Invoke(p)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := Cast[int32](res); v != 3 {
		t.Errorf("Age() = %d", v)
	}
	years, _ := Wrap(r, int32(-1))
	if _, err := pt.Method("Grow").Invoke(p, years); err == nil || err.Error() != "cannot shrink" {
		t.Errorf("Grow(-1) error = %v", err)
	}
	res, err = pt.Method("Population").Invoke(Any{})
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := Cast[int](res); v != 42 {
		t.Errorf("Population() = %d", v)
	}
	if pt.Method("Nope") != nil {
		t.Errorf("Method(Nope) should be nil")
	}
}

func TestAnyString(t *testing.T) {
	r := newTestRegistry(t)
	ph, _ := Wrap(r, phone{area: "+86", number: "1"})
	if ph.String() != "+86 1" {
		t.Errorf("String() = %q", ph.String())
	}
	c, _ := Wrap(r, blue)
	if c.String() != "blue" {
		t.Errorf("String() = %q", c.String())
	}
	if (Any{}).String() != "<invalid>" {
		t.Errorf("empty String() = %q", Any{}.String())
	}
	pph, _ := Wrap(r, &phone{area: "+86", number: "2"})
	if pph.String() != "+86 2" {
		t.Errorf("pointer String() = %q", pph.String())
	}
	fav := green
	pc, _ := Wrap(r, &fav)
	if pc.String() != "green" {
		t.Errorf("enum pointer String() = %q", pc.String())
	}
	var none *phone
	np, _ := Wrap(r, none)
	if np.String() != "<nil>" {
		t.Errorf("nil pointer String() = %q", np.String())
	}
}

func TestDescribe(t *testing.T) {
	r := newTestRegistry(t)
	d := r.Lookup("person").Describe()
	for _, want := range []string{
		"// A person.",
		"type person struct {",
		"\tfriend *person // owned\n",
		"\tboss *person\n",
		"\ttags []string\n",
		"constructors:",
		"func(string, int32) *meta.person",
		"methods:",
		"Grow(int32) (int32, error)",
		"static Population() int",
	} {
		if !strings.Contains(d, want) {
			t.Errorf("Describe() missing %q in:\n%s", want, d)
		}
	}
	e := r.Lookup("color").Describe()
	if !strings.Contains(e, "blue color = 2") {
		t.Errorf("Describe() = %s", e)
	}
}

func TestTypes(t *testing.T) {
	r := newTestRegistry(t)
	var names []string
	for _, typ := range r.Types() {
		names = append(names, typ.Name())
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("Types() not sorted: %v", names)
		}
	}
	if len(names) != len(builtinTypes)+3 {
		t.Errorf("got %d types: %v", len(names), names)
	}
}
