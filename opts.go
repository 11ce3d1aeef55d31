package simpledi

import "go.uber.org/zap"

// InitializerOption is a configuration option for initializer registration.
type InitializerOption func(*initializerSettings)

type initializerSettings struct {
	name     string
	visible  *bool
	marked   bool
	metadata map[string]string
}

// Inject marks the initializer as the one to use when a type has more than
// one visible initializer.
func Inject() InitializerOption {
	return func(s *initializerSettings) {
		s.marked = true
	}
}

// Exported forces the initializer to be visible regardless of its name.
func Exported() InitializerOption {
	return setVisible(true)
}

// Unexported hides the initializer from selection regardless of its name.
func Unexported() InitializerOption {
	return setVisible(false)
}

func setVisible(v bool) InitializerOption {
	return func(s *initializerSettings) {
		s.visible = &v
	}
}

// WithName overrides the diagnostic name of the initializer.
func WithName(name string) InitializerOption {
	return func(s *initializerSettings) {
		s.name = name
	}
}

// WithMetadata attaches diagnostic metadata to the initializer.
func WithMetadata(key, value string) InitializerOption {
	return func(s *initializerSettings) {
		if s.metadata == nil {
			s.metadata = make(map[string]string)
		}
		s.metadata[key] = value
	}
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for resolution diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithInterceptor adds an invocation interceptor. Interceptors run in the
// order they are added; the first one added is the outermost.
func WithInterceptor(ic Interceptor) Option {
	return func(r *Resolver) {
		if ic != nil {
			r.interceptors = append(r.interceptors, ic)
		}
	}
}

// WithMarker replaces the predicate used to recognise the inject marker.
func WithMarker(m MarkerFunc) Option {
	return func(r *Resolver) {
		if m != nil {
			r.marked = m
		}
	}
}
