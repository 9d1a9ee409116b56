// Package sample holds registered types used by the rtti command and by
// tests.
package sample

import (
	"sync/atomic"

	"github.com/signadot/tony-format/go-rtti/meta"
)

type PhoneNumber struct {
	areaCode string
	number   string
}

func NewPhoneNumber(areaCode, number string) PhoneNumber {
	return PhoneNumber{areaCode: areaCode, number: number}
}

func (p PhoneNumber) AreaCode() string { return p.areaCode }
func (p PhoneNumber) Number() string   { return p.number }

func (p PhoneNumber) ToString() string {
	return p.areaCode + " " + p.number
}

type Sex int

const (
	SexSecret Sex = iota
	SexMale
	SexFemale
)

var totalNumber atomic.Int64

type Person struct {
	name        string
	height      float32
	sex         Sex
	phoneNumber PhoneNumber
}

// NewPerson returns a new person and counts it in GetTotalNumber.
func NewPerson(name string, height float32, sex Sex) *Person {
	totalNumber.Add(1)
	return &Person{name: name, height: height, sex: sex}
}

func newDefaultPerson() *Person {
	return NewPerson("Unnamed", 0, SexSecret)
}

func (p *Person) GetName() string                  { return p.name }
func (p *Person) SetName(name string)              { p.name = name }
func (p *Person) Name() *string                    { return &p.name }
func (p *Person) GetHeight() float32               { return p.height }
func (p *Person) GetSex() Sex                      { return p.sex }
func (p *Person) IsMale() bool                     { return p.sex == SexMale }
func (p *Person) IsFemale() bool                   { return p.sex == SexFemale }
func (p *Person) GetPhoneNumber() PhoneNumber      { return p.phoneNumber }
func (p *Person) SetPhoneNumber(phone PhoneNumber) { p.phoneNumber = phone }

// GetTotalNumber returns the number of persons constructed so far.
func GetTotalNumber() int {
	return int(totalNumber.Load())
}

// Definitions returns the declarations of the sample types.
func Definitions() []meta.Definition {
	return []meta.Definition{
		meta.Struct[PhoneNumber]("PhoneNumber").
			Describe("A phone number with its area code.").
			Fields(
				meta.FieldOf("areaCode", func(p *PhoneNumber) *string { return &p.areaCode }),
				meta.FieldOf("number", func(p *PhoneNumber) *string { return &p.number }),
			).
			Ctors(
				meta.Ctor(func() PhoneNumber { return PhoneNumber{} }),
				meta.Ctor(NewPhoneNumber),
			).
			Methods(
				meta.MethodOf("ToString", PhoneNumber.ToString),
			),
		meta.EnumOf[Sex]("Sex", "Secret", "Male", "Female"),
		meta.Struct[Person]("Person").
			Fields(
				meta.FieldOf("name", func(p *Person) *string { return &p.name }),
				meta.FieldOf("height", func(p *Person) *float32 { return &p.height }),
				meta.FieldOf("sex", func(p *Person) *Sex { return &p.sex }),
				meta.FieldOf("phoneNumber", func(p *Person) *PhoneNumber { return &p.phoneNumber }),
			).
			Ctors(
				meta.Ctor(newDefaultPerson),
				meta.Ctor(NewPerson),
			).
			Methods(
				meta.MethodOf("GetName", (*Person).GetName),
				meta.MethodOf("SetName", (*Person).SetName),
				meta.MethodOf("Name", (*Person).Name),
				meta.MethodOf("GetHeight", (*Person).GetHeight),
				meta.MethodOf("GetSex", (*Person).GetSex),
				meta.MethodOf("GetPhoneNumber", (*Person).GetPhoneNumber),
				meta.MethodOf("SetPhoneNumber", (*Person).SetPhoneNumber),
				meta.StaticMethod("GetTotalNumber", GetTotalNumber),
				meta.MethodOf("IsMale", (*Person).IsMale),
				meta.MethodOf("IsFemale", (*Person).IsFemale),
			),
	}
}

// Register adds the sample types to r.
func Register(r *meta.Registry) error {
	return r.Register(Definitions()...)
}

// NewRegistry returns a frozen registry holding the sample types.
func NewRegistry() (*meta.Registry, error) {
	r := meta.NewRegistry()
	if err := Register(r); err != nil {
		return nil, err
	}
	if err := r.Freeze(); err != nil {
		return nil, err
	}
	return r, nil
}
