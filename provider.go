package simpledi

import "fmt"

// Provider is a typed handle that constructs a new T on each access.
// It keeps no instance between calls.
type Provider[T any] struct {
	resolver     *Resolver
	interceptors []Interceptor
}

// NewProvider creates a provider for T. The interceptors are applied on
// every Provide call, inside those configured on the resolver.
func NewProvider[T any](r *Resolver, interceptors ...Interceptor) *Provider[T] {
	return &Provider[T]{
		resolver:     r,
		interceptors: interceptors,
	}
}

// Provide resolves and returns a new instance of T.
func (p *Provider[T]) Provide() (T, error) {
	return ResolveWith[T](p.resolver, p.interceptors...)
}

// MustProvide resolves and returns a new instance, panicking on error.
func (p *Provider[T]) MustProvide() T {
	value, err := p.Provide()
	if err != nil {
		panic(fmt.Sprintf("provider %s failed: %v", TypeOf[T](), err))
	}

	return value
}

// Func returns Provide as a plain function value.
func (p *Provider[T]) Func() func() (T, error) {
	return p.Provide
}
