// Package meta provides run time type metadata and a dynamic value
// container.
//
// Types are declared with [Struct] and [EnumOf] and added to a [Registry]:
//
//	meta.MustRegister(
//		meta.EnumOf[Sex]("Sex", "Secret", "Male", "Female"),
//		meta.Struct[Person]("Person").
//			Fields(
//				meta.FieldOf("name", func(p *Person) *string { return &p.name }),
//				meta.FieldOf("sex", func(p *Person) *Sex { return &p.sex }),
//			).
//			Ctors(meta.Ctor(NewPerson)).
//			Methods(meta.MethodOf("GetName", (*Person).GetName)),
//	)
//
// Once every type is registered, [Registry.Freeze] resolves references
// between types and makes the registry read-only and safe for concurrent
// lookups.
//
// An [Any] holds a value together with its [Type]. Values are obtained
// from registered types with [Wrap], [ValueOf], [New] or a [Constructor],
// and read back with [Cast] and [CastRef].
//
// Failures wrap one of the Err sentinels of this package and can be
// checked with errors.Is.
package meta
