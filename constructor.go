package simpledi

import (
	"errors"
	"go/token"
	"reflect"
	"runtime"
	"strings"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Initializer describes one registered constructor function of a type.
// It is immutable once registered and safe to share between goroutines.
type Initializer struct {
	fn       reflect.Value
	fnType   reflect.Type
	typ      reflect.Type
	name     string
	params   []reflect.Type
	hasError bool
	visible  bool
	marked   bool
	metadata map[string]string
}

// Type returns the type the initializer produces.
func (i *Initializer) Type() reflect.Type { return i.typ }

// Name returns the function name used in diagnostics.
func (i *Initializer) Name() string { return i.name }

// Params returns a copy of the ordered parameter types.
func (i *Initializer) Params() []reflect.Type {
	out := make([]reflect.Type, len(i.params))
	copy(out, i.params)
	return out
}

// Arity returns the number of declared parameters.
func (i *Initializer) Arity() int { return len(i.params) }

// Variadic reports whether the last parameter is variadic.
func (i *Initializer) Variadic() bool { return i.fnType.IsVariadic() }

// Visible reports whether the initializer is eligible for selection.
func (i *Initializer) Visible() bool { return i.visible }

// Marked reports whether the initializer was registered with Inject.
func (i *Initializer) Marked() bool { return i.marked }

// Metadata returns the registration metadata stored under key.
func (i *Initializer) Metadata(key string) (string, bool) {
	v, ok := i.metadata[key]
	return v, ok
}

// Signature renders the parameter list, e.g. "(string, ...int)".
func (i *Initializer) Signature() string {
	var b strings.Builder
	b.WriteByte('(')
	for idx, p := range i.params {
		if idx > 0 {
			b.WriteString(", ")
		}
		if idx == len(i.params)-1 && i.Variadic() {
			b.WriteString("...")
			b.WriteString(p.Elem().String())
			continue
		}
		b.WriteString(p.String())
	}
	b.WriteByte(')')
	return b.String()
}

// String returns the name followed by the signature.
func (i *Initializer) String() string {
	return i.name + i.Signature()
}

// analyzeInitializer inspects a constructor function and extracts the
// metadata the selector and the instantiator need.
func analyzeInitializer(ctor any, opts ...InitializerOption) (*Initializer, error) {
	if ctor == nil {
		return nil, ErrInvalidInitializer
	}

	fnValue := reflect.ValueOf(ctor)
	fnType := fnValue.Type()

	if fnType.Kind() != reflect.Func {
		return nil, ErrInvalidInitializerf("expected a function, got %s", fnType)
	}
	if fnValue.IsNil() {
		return nil, ErrInvalidInitializer
	}

	// Results: T or (T, error)
	switch fnType.NumOut() {
	case 1:
		if fnType.Out(0) == errorType {
			return nil, ErrInvalidInitializerf("%s must return a non-error value", fnType)
		}
	case 2:
		if fnType.Out(1) != errorType {
			return nil, ErrInvalidInitializerf("%s: error must be the last return value", fnType)
		}
		if fnType.Out(0) == errorType {
			return nil, ErrInvalidInitializerf("%s must return a non-error value", fnType)
		}
	default:
		return nil, ErrInvalidInitializerf("%s must return (T) or (T, error)", fnType)
	}

	init := &Initializer{
		fn:       fnValue,
		fnType:   fnType,
		typ:      fnType.Out(0),
		hasError: fnType.NumOut() == 2,
		metadata: map[string]string{},
	}

	for i := 0; i < fnType.NumIn(); i++ {
		init.params = append(init.params, fnType.In(i))
	}

	fullName := funcName(fnValue)
	init.name = shortName(fullName)
	init.visible = exportedFunc(fullName)

	settings := initializerSettings{}
	for _, opt := range opts {
		opt(&settings)
	}
	if settings.name != "" {
		init.name = settings.name
	}
	if settings.visible != nil {
		init.visible = *settings.visible
	}
	init.marked = settings.marked
	for k, v := range settings.metadata {
		init.metadata[k] = v
	}

	return init, nil
}

// sameSignature reports whether two initializers take identical parameter lists.
func (i *Initializer) sameSignature(other *Initializer) bool {
	if len(i.params) != len(other.params) || i.Variadic() != other.Variadic() {
		return false
	}
	for idx := range i.params {
		if i.params[idx] != other.params[idx] {
			return false
		}
	}
	return true
}

func funcName(fn reflect.Value) string {
	f := runtime.FuncForPC(fn.Pointer())
	if f == nil {
		return ""
	}
	return f.Name()
}

// shortName strips the import path, keeping "pkg.Func" or "pkg.(*T).Method".
func shortName(full string) string {
	if idx := strings.LastIndex(full, "/"); idx >= 0 {
		full = full[idx+1:]
	}
	return strings.TrimSuffix(full, "-fm")
}

// exportedFunc applies Go's visibility rule to a runtime function name.
// Top-level functions and method values are visible when their identifier
// is exported. Closures have no identifier of their own and are visible.
func exportedFunc(full string) bool {
	// Generic instantiations are reported as "Name[...]", whose dots would
	// otherwise split the identifier.
	name := strings.ReplaceAll(shortName(full), "[...]", "")
	if name == "" {
		return true
	}

	// Drop the package qualifier.
	dot := strings.Index(name, ".")
	if dot < 0 {
		return true
	}
	parts := strings.Split(name[dot+1:], ".")

	last := parts[len(parts)-1]
	if isClosureName(last) {
		return true
	}
	return token.IsExported(last)
}

// isClosureName matches compiler generated names such as "func1" or "1".
func isClosureName(s string) bool {
	s = strings.TrimPrefix(s, "func")
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// nillable reports whether nil is a valid value for t.
func nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	}
	return false
}

// errNilInstance is the cause reported when an initializer returns nil without an error.
var errNilInstance = errors.New("initializer returned a nil instance")
