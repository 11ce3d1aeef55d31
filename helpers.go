package simpledi

import (
	"fmt"
	"reflect"
)

// TypeOf returns the reflect.Type of T, including interface types.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Resolve with type safety.
func Resolve[T any](r *Resolver) (T, error) {
	return ResolveWith[T](r)
}

// ResolveWith resolves T with additional call-time interceptors.
func ResolveWith[T any](r *Resolver, interceptors ...Interceptor) (T, error) {
	var zero T
	t := TypeOf[T]()

	instance, err := r.ResolveWith(t, interceptors...)
	if err != nil {
		return zero, err
	}

	typed, ok := instance.(T)
	if !ok {
		return zero, ErrTypeMismatch(t, instance)
	}

	return typed, nil
}

// Must resolves or panics - use only during startup.
func Must[T any](r *Resolver) T {
	instance, err := Resolve[T](r)
	if err != nil {
		panic(fmt.Sprintf("failed to resolve %s: %v", TypeOf[T](), err))
	}

	return instance
}

// Register is a typed convenience wrapper around Catalog.Register that
// fixes the produced type at compile time.
func Register[T any](c *Catalog, ctor func() T, opts ...InitializerOption) error {
	return c.Register(ctor, opts...)
}

// RegisterErr is Register for initializers that can fail.
func RegisterErr[T any](c *Catalog, ctor func() (T, error), opts ...InitializerOption) error {
	return c.Register(ctor, opts...)
}
