package meta

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/signadot/tony-format/go-rtti/debug"
)

// Registry is a catalogue of type descriptors.
//
// A registry has two phases. Types are registered from a single
// goroutine, then Freeze resolves every reference between types and makes
// the registry read-only. A frozen registry is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	frozen   bool
	byName   map[string]*Type
	byGo     map[reflect.Type]*Type
	builtins map[Kind]*Type
	pending  []*Type

	dmu     sync.Mutex
	derived map[derivedKey]*Type
}

type derivedKey struct {
	goType reflect.Type
	ref    Ref
}

// NewRegistry returns a registry holding the builtin bool, numeric and
// string types.
func NewRegistry() *Registry {
	r := &Registry{
		byName:   map[string]*Type{},
		byGo:     map[reflect.Type]*Type{},
		builtins: map[Kind]*Type{},
		derived:  map[derivedKey]*Type{},
	}
	for _, rt := range builtinTypes {
		t := &Type{
			name:   rt.String(),
			kind:   primitiveKind(rt.Kind()),
			goType: rt,
			reg:    r,
		}
		r.byName[t.name] = t
		r.byGo[rt] = t
		r.builtins[t.kind] = t
	}
	return r
}

var builtinTypes = []reflect.Type{
	reflect.TypeFor[bool](),
	reflect.TypeFor[int](),
	reflect.TypeFor[int8](),
	reflect.TypeFor[int16](),
	reflect.TypeFor[int32](),
	reflect.TypeFor[int64](),
	reflect.TypeFor[uint](),
	reflect.TypeFor[uint8](),
	reflect.TypeFor[uint16](),
	reflect.TypeFor[uint32](),
	reflect.TypeFor[uint64](),
	reflect.TypeFor[float32](),
	reflect.TypeFor[float64](),
	reflect.TypeFor[string](),
}

// Register adds the types defined by defs. Registering the same
// definition again has no effect. A name or Go type already
// registered differently is a duplicate.
func (r *Registry) Register(defs ...Definition) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen {
		return &RegistryError{Message: "cannot register types", Err: ErrFrozen}
	}
	for _, def := range defs {
		if err := r.register(def); err != nil {
			return err
		}
	}
	return r.resolvePending(false)
}

func (r *Registry) register(def Definition) error {
	name, rt := def.typeName(), def.goType()
	if name == "" {
		return &RegistryError{Message: fmt.Sprintf("%s has no name", rt), Err: ErrInvalidDescriptor}
	}
	if strings.ContainsAny(name, "*[] \t\n") {
		return &RegistryError{TypeName: name, Message: "invalid type name", Err: ErrInvalidDescriptor}
	}
	if t := r.byName[name]; t != nil {
		if t.goType == rt {
			again, err := def.define(r)
			if err != nil {
				return err
			}
			if !sameDefinition(t, again) {
				return &RegistryError{TypeName: name,
					Message: "already registered with a different definition", Err: ErrDuplicateType}
			}
			return nil
		}
		return &RegistryError{TypeName: name,
			Message: fmt.Sprintf("already registered for %s, not %s", t.goType, rt), Err: ErrDuplicateType}
	}
	if t := r.byGo[rt]; t != nil {
		return &RegistryError{TypeName: name,
			Message: fmt.Sprintf("%s is already registered as %q", rt, t.name), Err: ErrDuplicateType}
	}
	t, err := def.define(r)
	if err != nil {
		return err
	}
	r.byName[name] = t
	r.byGo[rt] = t
	if t.kind == StructKind {
		r.pending = append(r.pending, t)
	}
	if debug.Registry() {
		debug.Logf("registered %s %s (%s)", t.kind, t.name, rt)
	}
	return nil
}

// sameDefinition reports whether a and b declare the same fields,
// constructors, methods and enum values.
func sameDefinition(a, b *Type) bool {
	if a.kind != b.kind || a.desc != b.desc ||
		len(a.fields) != len(b.fields) || len(a.ctors) != len(b.ctors) || len(a.methods) != len(b.methods) {
		return false
	}
	for i, fa := range a.fields {
		fb := b.fields[i]
		if fa.name != fb.name || fa.goType != fb.goType || fa.ref != fb.ref || fieldOffset(fa) != fieldOffset(fb) {
			return false
		}
	}
	for i, ca := range a.ctors {
		if ca.fn.Type() != b.ctors[i].fn.Type() {
			return false
		}
	}
	for i, ma := range a.methods {
		mb := b.methods[i]
		if ma.name != mb.name || ma.static != mb.static || ma.fn.Type() != mb.fn.Type() {
			return false
		}
	}
	if a.enum != nil {
		return slices.Equal(a.enum.names, b.enum.names) && slices.Equal(a.enum.values, b.enum.values)
	}
	return true
}

// fieldOffset locates f within a value of its owner.
func fieldOffset(f *Field) uintptr {
	owner := reflect.New(f.owner.goType).Elem()
	return f.ptr(owner).UnsafeAddr() - owner.UnsafeAddr()
}

// resolvePending resolves the field, parameter and result types of
// registered structs. Types which refer to unregistered types stay
// pending unless final is set.
func (r *Registry) resolvePending(final bool) error {
	var still []*Type
	for _, t := range r.pending {
		err := r.resolve(t)
		if err == nil {
			continue
		}
		if !final && errors.Is(err, ErrTypeNotFound) {
			still = append(still, t)
			continue
		}
		return err
	}
	r.pending = still
	return nil
}

func (r *Registry) resolve(t *Type) error {
	notFound := func(what string, err error) error {
		return &RegistryError{TypeName: t.name, Message: fmt.Sprintf("%s: %v", what, err), Err: ErrTypeNotFound}
	}
	for _, f := range t.fields {
		if f.typ != nil {
			continue
		}
		ft, err := r.typeOfLocked(f.goType, f.ref)
		if err != nil {
			return notFound("field "+f.name, err)
		}
		f.typ = ft
	}
	for _, c := range t.ctors {
		ps, err := r.typesOf(funcIn(c.fn.Type(), 0))
		if err != nil {
			return notFound(fmt.Sprintf("constructor %s", c.fn.Type()), err)
		}
		c.params = ps
	}
	for _, m := range t.methods {
		ps, err := r.typesOf(m.in())
		if err != nil {
			return notFound("method "+m.name, err)
		}
		m.params = ps
		ft := m.fn.Type()
		n := ft.NumOut()
		if m.err {
			n--
		}
		if n == 1 {
			rt, err := r.typeOfLocked(ft.Out(0), RefShared)
			if err != nil {
				return notFound("method "+m.name, err)
			}
			m.result = rt
		}
	}
	return nil
}

func funcIn(ft reflect.Type, off int) []reflect.Type {
	res := make([]reflect.Type, 0, ft.NumIn())
	for i := off; i < ft.NumIn(); i++ {
		res = append(res, ft.In(i))
	}
	return res
}

func (r *Registry) typesOf(rts []reflect.Type) ([]*Type, error) {
	res := make([]*Type, len(rts))
	for i, rt := range rts {
		t, err := r.typeOfLocked(rt, RefShared)
		if err != nil {
			return nil, err
		}
		res[i] = t
	}
	return res, nil
}

// typeOfLocked returns the descriptor for rt, deriving pointer and slice
// descriptors. ref applies to the outermost pointer, or to the element
// pointer of a slice. r.mu must be held.
func (r *Registry) typeOfLocked(rt reflect.Type, ref Ref) (*Type, error) {
	if t := r.byGo[rt]; t != nil {
		return t, nil
	}
	switch rt.Kind() {
	case reflect.Pointer:
		elem, err := r.typeOfLocked(rt.Elem(), RefShared)
		if err != nil {
			return nil, err
		}
		return r.PointerTo(elem, ref), nil
	case reflect.Slice:
		elem, err := r.typeOfLocked(rt.Elem(), ref)
		if err != nil {
			return nil, err
		}
		return r.SliceOf(elem), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrTypeNotFound, rt)
}

// Freeze resolves all references between registered types and ends the
// registration phase.
func (r *Registry) Freeze() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen {
		return nil
	}
	if err := r.resolvePending(true); err != nil {
		return err
	}
	r.frozen = true
	if debug.Registry() {
		debug.Logf("registry frozen with %d types", len(r.byName))
	}
	return nil
}

func (r *Registry) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frozen
}

// Lookup returns the type registered under name, or nil. Names prefixed
// with "*" or "[]" denote pointers to and slices of registered types.
func (r *Registry) Lookup(name string) *Type {
	switch {
	case strings.HasPrefix(name, "*"):
		elem := r.Lookup(name[1:])
		if elem == nil {
			return nil
		}
		return r.PointerTo(elem, RefShared)
	case strings.HasPrefix(name, "[]"):
		elem := r.Lookup(name[2:])
		if elem == nil {
			return nil
		}
		return r.SliceOf(elem)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byName[name]
}

// LookupKind returns the builtin type of a bool, numeric or string kind.
func (r *Registry) LookupKind(k Kind) *Type {
	return r.builtins[k]
}

// TypeOf returns the descriptor of the Go type rt. Pointers are shared.
func (r *Registry) TypeOf(rt reflect.Type) (*Type, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, err := r.typeOfLocked(rt, RefShared)
	if err != nil {
		return nil, &RegistryError{Message: err.Error(), Err: ErrTypeNotFound}
	}
	return t, nil
}

// TypeFor returns the descriptor of T in r.
func TypeFor[T any](r *Registry) (*Type, error) {
	return orDefault(r).TypeOf(reflect.TypeFor[T]())
}

// PointerTo returns the pointer type to t with the given ownership.
func (r *Registry) PointerTo(t *Type, ref Ref) *Type {
	if ref == RefValue {
		ref = RefShared
	}
	rt := reflect.PointerTo(t.goType)
	r.dmu.Lock()
	defer r.dmu.Unlock()
	k := derivedKey{goType: rt, ref: ref}
	if p := r.derived[k]; p != nil {
		return p
	}
	p := &Type{
		name:   "*" + t.name,
		kind:   PointerKind,
		goType: rt,
		reg:    r,
		elem:   t,
		ref:    ref,
	}
	r.derived[k] = p
	return p
}

// SliceOf returns the slice type with elements of type t.
func (r *Registry) SliceOf(t *Type) *Type {
	rt := reflect.SliceOf(t.goType)
	r.dmu.Lock()
	defer r.dmu.Unlock()
	k := derivedKey{goType: rt, ref: t.ref}
	if s := r.derived[k]; s != nil {
		return s
	}
	s := &Type{
		name:   "[]" + t.name,
		kind:   SliceKind,
		goType: rt,
		reg:    r,
		elem:   t,
	}
	r.derived[k] = s
	return s
}

// Types returns the registered types sorted by name.
func (r *Registry) Types() []*Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]*Type, 0, len(r.byName))
	for _, t := range r.byName {
		res = append(res, t)
	}
	slices.SortFunc(res, func(a, b *Type) int { return strings.Compare(a.name, b.name) })
	return res
}
