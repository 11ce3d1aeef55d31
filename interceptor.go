package simpledi

import (
	"errors"
	"fmt"
	"reflect"
)

// InvokeFunc calls an initializer with an argument list.
type InvokeFunc func(init *Initializer, args []any) (any, error)

// Interceptor wraps initializer invocation. It may rewrite args before
// delegating to next, typically to supply implicit values the caller of
// Resolve cannot know about, such as an enclosing instance.
//
// Example:
//
//	func(init *simpledi.Initializer, args []any, next simpledi.InvokeFunc) (any, error) {
//	    return next(init, append([]any{suite}, args...))
//	}
type Interceptor func(init *Initializer, args []any, next InvokeFunc) (any, error)

// Invoke is the default invocation: it calls init with args and returns
// the produced instance. Every failure is an INSTANTIATION_FAILURE.
func Invoke(init *Initializer, args []any) (instance any, err error) {
	if init == nil {
		return nil, NewInstantiationError(nil, "<nil>", errors.New("no initializer"))
	}

	in, err := init.arguments(args)
	if err != nil {
		return nil, NewInstantiationError(init.typ, init.name, err)
	}

	defer func() {
		if rec := recover(); rec != nil {
			instance = nil
			err = NewInstantiationError(init.typ, init.name, fmt.Errorf("panic: %v", rec))
		}
	}()

	results := init.fn.Call(in)

	if init.hasError {
		if errVal := results[len(results)-1]; !errVal.IsNil() {
			return nil, NewInstantiationError(init.typ, init.name, errVal.Interface().(error))
		}
	}

	out := results[0]
	if nillable(out.Type()) && out.IsNil() {
		return nil, NewInstantiationError(init.typ, init.name, errNilInstance)
	}

	return out.Interface(), nil
}

// arguments converts args into call values, checking count and types.
func (i *Initializer) arguments(args []any) ([]reflect.Value, error) {
	n := len(i.params)
	variadic := i.Variadic()

	if variadic {
		if len(args) < n-1 {
			return nil, fmt.Errorf("expected at least %d arguments, got %d", n-1, len(args))
		}
	} else if len(args) != n {
		return nil, fmt.Errorf("expected %d arguments, got %d", n, len(args))
	}

	in := make([]reflect.Value, len(args))
	for idx, arg := range args {
		var want reflect.Type
		if variadic && idx >= n-1 {
			want = i.params[n-1].Elem()
		} else {
			want = i.params[idx]
		}

		if arg == nil {
			if !nillable(want) {
				return nil, fmt.Errorf("argument %d: nil is not a valid %s", idx, want)
			}
			in[idx] = reflect.Zero(want)
			continue
		}

		v := reflect.ValueOf(arg)
		if !v.Type().AssignableTo(want) {
			return nil, fmt.Errorf("argument %d: %s is not assignable to %s", idx, v.Type(), want)
		}
		in[idx] = v
	}

	return in, nil
}

// chain composes interceptors around final. The first interceptor is the
// outermost.
func chain(interceptors []Interceptor, final InvokeFunc) InvokeFunc {
	next := final
	for idx := len(interceptors) - 1; idx >= 0; idx-- {
		ic := interceptors[idx]
		inner := next
		next = func(init *Initializer, args []any) (any, error) {
			return ic(init, args, inner)
		}
	}
	return next
}

// Prepend returns an interceptor that places values before the arguments
// it receives. This is how an enclosing instance reaches an initializer
// declared as func(outer *Suite, ...) *T.
func Prepend(values ...any) Interceptor {
	return func(init *Initializer, args []any, next InvokeFunc) (any, error) {
		merged := make([]any, 0, len(values)+len(args))
		merged = append(merged, values...)
		merged = append(merged, args...)
		return next(init, merged)
	}
}

// Append returns an interceptor that places values after the arguments it
// receives.
func Append(values ...any) Interceptor {
	return func(init *Initializer, args []any, next InvokeFunc) (any, error) {
		merged := make([]any, 0, len(args)+len(values))
		merged = append(merged, args...)
		merged = append(merged, values...)
		return next(init, merged)
	}
}
