package meta

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

func orDefault(r *Registry) *Registry {
	if r == nil {
		return defaultRegistry
	}
	return r
}

// Register adds defs to the process-wide registry.
func Register(defs ...Definition) error {
	return defaultRegistry.Register(defs...)
}

// MustRegister is like Register but panics on error. It is meant for
// package initialization.
func MustRegister(defs ...Definition) {
	if err := defaultRegistry.Register(defs...); err != nil {
		panic(err)
	}
}

func Lookup(name string) *Type {
	return defaultRegistry.Lookup(name)
}

func Freeze() error {
	return defaultRegistry.Freeze()
}
