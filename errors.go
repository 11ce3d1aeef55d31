package simpledi

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/xraph/go-utils/errs"
)

// =============================================================================
// ERROR CODES
// =============================================================================

const (
	// CodeNoConstructor indicates a type exposes no visible initializer
	CodeNoConstructor = "NO_CONSTRUCTOR_AVAILABLE"

	// CodeAmbiguousConstructor indicates selection could not narrow the
	// visible initializers to exactly one
	CodeAmbiguousConstructor = "AMBIGUOUS_CONSTRUCTOR"

	// CodeInstantiationFailure indicates the selected initializer could not be invoked
	CodeInstantiationFailure = "INSTANTIATION_FAILURE"

	// CodeInvalidInitializer indicates a registered initializer has an unsupported shape
	CodeInvalidInitializer = "INVALID_INITIALIZER"

	// CodeDuplicateInitializer indicates two initializers of one type share a signature
	CodeDuplicateInitializer = "DUPLICATE_INITIALIZER"

	// CodeTypeMismatch indicates a produced instance is not of the requested type
	CodeTypeMismatch = "TYPE_MISMATCH"
)

// =============================================================================
// SENTINEL ERRORS
// =============================================================================

// ErrNoConstructorSentinel is a sentinel error for types without a visible initializer.
var ErrNoConstructorSentinel = errs.NewError(CodeNoConstructor, "no constructor available", nil)

// ErrAmbiguousConstructorSentinel is a sentinel error for ambiguous selection.
var ErrAmbiguousConstructorSentinel = errs.NewError(CodeAmbiguousConstructor, "ambiguous constructor", nil)

// ErrInstantiationSentinel is a sentinel error for failed invocations.
var ErrInstantiationSentinel = errs.NewError(CodeInstantiationFailure, "instantiation failed", nil)

// ErrInvalidInitializer is returned when a nil or malformed initializer is registered.
var ErrInvalidInitializer = errs.NewError(CodeInvalidInitializer, "invalid initializer", nil)

// ErrDuplicateInitializerSentinel is a sentinel error for duplicate signatures.
var ErrDuplicateInitializerSentinel = errs.NewError(CodeDuplicateInitializer, "duplicate initializer", nil)

// ErrTypeMismatchSentinel is a sentinel error for type mismatch during resolution.
var ErrTypeMismatchSentinel = errs.NewError(CodeTypeMismatch, "type mismatch", nil)

// =============================================================================
// ERROR CONSTRUCTORS
// =============================================================================

// ErrNoConstructor creates an error for a type with zero visible initializers
func ErrNoConstructor(t reflect.Type) *errs.Error {
	name := typeName(t)
	return errs.NewError(
		CodeNoConstructor,
		fmt.Sprintf("cannot create an instance of %s: the type has no visible initializer", name),
		nil,
	).WithContext("type", name).(*errs.Error)
}

// ErrAmbiguousConstructor creates an error for a type whose visible
// initializers could not be narrowed to one by the inject marker
func ErrAmbiguousConstructor(t reflect.Type, visible, marked int) *errs.Error {
	name := typeName(t)
	return errs.NewError(
		CodeAmbiguousConstructor,
		fmt.Sprintf("cannot create an instance of %s: %d visible initializers and %d marked; "+
			"make exactly one initializer visible or mark exactly one with Inject", name, visible, marked),
		nil,
	).WithContext("type", name).
		WithContext("visible", visible).
		WithContext("marked", marked).(*errs.Error)
}

// NewInstantiationError creates an error wrapping a failed initializer call
func NewInstantiationError(t reflect.Type, initializer string, cause error) *errs.Error {
	name := typeName(t)
	return errs.NewError(
		CodeInstantiationFailure,
		fmt.Sprintf("cannot create an instance of %s with initializer %s", name, initializer),
		cause,
	).WithContext("type", name).
		WithContext("initializer", initializer).(*errs.Error)
}

// ErrInvalidInitializerf creates an error for a malformed initializer registration
func ErrInvalidInitializerf(format string, args ...any) *errs.Error {
	reason := fmt.Sprintf(format, args...)
	return errs.NewError(
		CodeInvalidInitializer,
		"invalid initializer: "+reason,
		nil,
	).WithContext("reason", reason).(*errs.Error)
}

// ErrDuplicateInitializer creates an error for a signature already registered for a type
func ErrDuplicateInitializer(t reflect.Type, signature string) *errs.Error {
	name := typeName(t)
	return errs.NewError(
		CodeDuplicateInitializer,
		fmt.Sprintf("type %s already has an initializer %s", name, signature),
		nil,
	).WithContext("type", name).
		WithContext("signature", signature).(*errs.Error)
}

// ErrTypeMismatch creates an error for type mismatch during resolution
func ErrTypeMismatch(t reflect.Type, actual any) *errs.Error {
	name := typeName(t)
	return errs.NewError(
		CodeTypeMismatch,
		fmt.Sprintf("type %s mismatch: got %T", name, actual),
		nil,
	).WithContext("type", name).
		WithContext("actual_type", fmt.Sprintf("%T", actual)).(*errs.Error)
}

// =============================================================================
// INSPECTION
// =============================================================================

// IsNoConstructor reports whether err is a NO_CONSTRUCTOR_AVAILABLE failure.
// Only the outermost coded error decides, so an instantiation failure
// caused by a nested resolution does not answer true here.
func IsNoConstructor(err error) bool {
	return hasCode(err, CodeNoConstructor)
}

// IsAmbiguous reports whether err is an AMBIGUOUS_CONSTRUCTOR failure.
func IsAmbiguous(err error) bool {
	return hasCode(err, CodeAmbiguousConstructor)
}

// IsInstantiationFailure reports whether err is an INSTANTIATION_FAILURE.
func IsInstantiationFailure(err error) bool {
	return hasCode(err, CodeInstantiationFailure)
}

func hasCode(err error, code string) bool {
	var e *errs.Error
	return errors.As(err, &e) && e.GetCode() == code
}

// isResolveError reports whether err is itself one of the three resolution
// kinds. Errors that merely wrap one do not count.
func isResolveError(err error) bool {
	e, ok := err.(*errs.Error)
	if !ok {
		return false
	}
	switch e.GetCode() {
	case CodeNoConstructor, CodeAmbiguousConstructor, CodeInstantiationFailure:
		return true
	}
	return false
}

// ErrorType returns the name of the type a resolution error was raised for,
// or "" if err carries no type context.
func ErrorType(err error) string {
	var e *errs.Error
	if !errors.As(err, &e) {
		return ""
	}
	name, _ := e.GetContext()["type"].(string)
	return name
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
