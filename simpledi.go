// Package simpledi creates instances from registered constructor functions.
//
// A type may have several initializers. The resolver uses the only visible
// one, or, when there are several, the one registered with Inject. Any
// other situation is an error rather than a guess.
//
//	c := simpledi.NewCatalog()
//	c.Register(NewServer)
//	c.Register(NewServerWithAddr, simpledi.Inject())
//
//	r := simpledi.New(c)
//	srv, err := simpledi.Resolve[*Server](r)
//
// Initializers are called with no arguments unless an Interceptor supplies
// them; parameters are never resolved recursively.
package simpledi

import "go.uber.org/zap"

// New creates a resolver reading initializers from source.
func New(source Source, opts ...Option) *Resolver {
	if source == nil {
		source = NewCatalog()
	}

	r := &Resolver{
		source: source,
		marked: DefaultMarker,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}
