package simpledi

import (
	"reflect"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Registration holds an initializer to be registered with a catalog.
type Registration struct {
	Ctor    any
	Options []InitializerOption
}

// Ctor creates a Registration for batch registration.
//
// Example:
//
//	simpledi.RegisterAll(c,
//	    simpledi.Ctor(NewServer),
//	    simpledi.Ctor(NewServerWithAddr, simpledi.Inject()),
//	)
func Ctor(ctor any, opts ...InitializerOption) Registration {
	return Registration{
		Ctor:    ctor,
		Options: opts,
	}
}

// RegisterAll registers multiple initializers in a single call.
// Returns the first error; registrations before it are kept.
func RegisterAll(c *Catalog, regs ...Registration) error {
	for _, reg := range regs {
		if err := c.Register(reg.Ctor, reg.Options...); err != nil {
			return err
		}
	}
	return nil
}

// ResolveAll resolves each type independently. The returned slice is
// index-aligned with types; failed entries are nil. The error combines
// every failure, and each one keeps its own kind and type.
func (r *Resolver) ResolveAll(types ...reflect.Type) ([]any, error) {
	instances := make([]any, len(types))

	var err error
	for idx, t := range types {
		instance, resolveErr := r.Resolve(t)
		if resolveErr != nil {
			err = multierr.Append(err, resolveErr)
			continue
		}
		instances[idx] = instance
	}

	if err != nil {
		r.logger.Debug("batch resolution finished with failures",
			zap.Int("requested", len(types)),
			zap.Int("failed", len(multierr.Errors(err))),
		)
	}

	return instances, err
}
