package simpledi

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"
)

// Resolver selects and invokes initializers. It only holds immutable
// configuration, so one Resolver may serve concurrent callers.
type Resolver struct {
	source       Source
	interceptors []Interceptor
	marked       MarkerFunc
	logger       *zap.Logger
}

// Resolve selects t's initializer and invokes it with an empty argument
// list. Each call constructs a new instance.
func (r *Resolver) Resolve(t reflect.Type) (any, error) {
	return r.resolve(t, nil)
}

// ResolveWith is Resolve with additional call-time interceptors. They run
// inside the interceptors configured on the resolver.
func (r *Resolver) ResolveWith(t reflect.Type, interceptors ...Interceptor) (any, error) {
	return r.resolve(t, interceptors)
}

// Select returns the initializer Resolve would use for t without invoking it.
func (r *Resolver) Select(t reflect.Type) (*Initializer, error) {
	return Select(r.describe(t), r.marked)
}

func (r *Resolver) resolve(t reflect.Type, extra []Interceptor) (any, error) {
	init, err := r.Select(t)
	if err != nil {
		r.logger.Debug("initializer selection failed",
			zap.String("type", typeName(t)),
			zap.Error(err),
		)
		return nil, err
	}

	r.logger.Debug("initializer selected",
		zap.String("type", typeName(t)),
		zap.Stringer("initializer", init),
		zap.Bool("marked", r.marked(init)),
	)

	instance, err := r.invoke(init, extra)
	if err != nil {
		r.logger.Debug("instantiation failed",
			zap.String("type", typeName(t)),
			zap.Stringer("initializer", init),
			zap.Error(err),
		)
		return nil, err
	}

	return instance, nil
}

// invoke runs the interceptor chain around Invoke with an empty argument list.
// A panic raised by an interceptor is reported like one raised by the
// initializer itself.
func (r *Resolver) invoke(init *Initializer, extra []Interceptor) (instance any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			instance = nil
			err = NewInstantiationError(init.typ, init.name, fmt.Errorf("panic: %v", rec))
		}
	}()

	interceptors := r.interceptors
	if len(extra) > 0 {
		interceptors = make([]Interceptor, 0, len(r.interceptors)+len(extra))
		interceptors = append(interceptors, r.interceptors...)
		interceptors = append(interceptors, extra...)
	}

	instance, err = chain(interceptors, Invoke)(init, nil)
	if err != nil {
		if !isResolveError(err) {
			err = NewInstantiationError(init.typ, init.name, err)
		}
		return nil, err
	}
	if instance == nil {
		return nil, NewInstantiationError(init.typ, init.name, errNilInstance)
	}

	return instance, nil
}

func (r *Resolver) describe(t reflect.Type) *TypeDescriptor {
	if t == nil {
		return nil
	}
	if d := r.source.Describe(t); d != nil {
		return d
	}
	return NewTypeDescriptor(t)
}
