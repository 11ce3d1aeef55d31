package simpledi

import (
	"reflect"
	"sort"
	"sync"
)

// Source provides the initializers known for a type.
type Source interface {
	// Describe returns a fresh view of t's initializers. Types the source
	// knows nothing about yield a descriptor without initializers.
	Describe(t reflect.Type) *TypeDescriptor
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(t reflect.Type) *TypeDescriptor

// Describe implements Source.
func (f SourceFunc) Describe(t reflect.Type) *TypeDescriptor { return f(t) }

// TypeDescriptor is a read-only view of a type and its initializers.
type TypeDescriptor struct {
	typ          reflect.Type
	initializers []*Initializer
}

// NewTypeDescriptor builds a descriptor for t from the given initializers.
// Initializers producing another type are ignored.
func NewTypeDescriptor(t reflect.Type, inits ...*Initializer) *TypeDescriptor {
	d := &TypeDescriptor{typ: t}
	for _, init := range inits {
		if init != nil && init.typ == t {
			d.initializers = append(d.initializers, init)
		}
	}
	return d
}

// Type returns the described type.
func (d *TypeDescriptor) Type() reflect.Type { return d.typ }

// Initializers returns every initializer, visible or not, in registration order.
func (d *TypeDescriptor) Initializers() []*Initializer {
	out := make([]*Initializer, len(d.initializers))
	copy(out, d.initializers)
	return out
}

// Visible returns the initializers eligible for selection.
func (d *TypeDescriptor) Visible() []*Initializer {
	var out []*Initializer
	for _, init := range d.initializers {
		if init.visible {
			out = append(out, init)
		}
	}
	return out
}

// Catalog is a registration table of initializers keyed by the type they
// produce. It is safe for concurrent use.
type Catalog struct {
	types map[reflect.Type][]*Initializer
	mu    sync.RWMutex
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		types: make(map[reflect.Type][]*Initializer),
	}
}

// Register adds a constructor function. The function must have the shape
// func(args...) T or func(args...) (T, error); it is filed under T.
//
// Example:
//
//	c := simpledi.NewCatalog()
//	c.Register(NewServer)
//	c.Register(NewServerWithAddr, simpledi.Inject())
func (c *Catalog) Register(ctor any, opts ...InitializerOption) error {
	init, err := analyzeInitializer(ctor, opts...)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, existing := range c.types[init.typ] {
		if existing.sameSignature(init) {
			return ErrDuplicateInitializer(init.typ, init.Signature())
		}
	}

	c.types[init.typ] = append(c.types[init.typ], init)
	return nil
}

// MustRegister registers or panics - use only during startup.
func (c *Catalog) MustRegister(ctor any, opts ...InitializerOption) {
	if err := c.Register(ctor, opts...); err != nil {
		panic(err)
	}
}

// Describe implements Source.
func (c *Catalog) Describe(t reflect.Type) *TypeDescriptor {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return NewTypeDescriptor(t, c.types[t]...)
}

// Has reports whether any initializer is registered for t.
func (c *Catalog) Has(t reflect.Type) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.types[t]) > 0
}

// Types returns the registered types sorted by name.
func (c *Catalog) Types() []reflect.Type {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]reflect.Type, 0, len(c.types))
	for t := range c.types {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].String() < out[j].String()
	})
	return out
}

// Len returns the number of registered types.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.types)
}
