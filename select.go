package simpledi

// MarkerFunc reports whether an initializer carries the inject marker.
type MarkerFunc func(*Initializer) bool

// DefaultMarker recognises initializers registered with Inject.
func DefaultMarker(init *Initializer) bool {
	return init.Marked()
}

// MetadataMarker recognises initializers registered with
// WithMetadata(key, "true").
func MetadataMarker(key string) MarkerFunc {
	return func(init *Initializer) bool {
		v, ok := init.Metadata(key)
		return ok && v == "true"
	}
}

// Select picks the initializer to use for the described type.
//
// A single visible initializer is always chosen. With several visible
// initializers exactly one of them must carry the marker. Anything else
// fails; there is no fallback to a no-argument initializer.
func Select(desc *TypeDescriptor, marked MarkerFunc) (*Initializer, error) {
	if desc == nil {
		return nil, ErrNoConstructor(nil)
	}
	if marked == nil {
		marked = DefaultMarker
	}

	visible := desc.Visible()
	switch len(visible) {
	case 0:
		return nil, ErrNoConstructor(desc.typ)
	case 1:
		return visible[0], nil
	}

	var candidates []*Initializer
	for _, init := range visible {
		if marked(init) {
			candidates = append(candidates, init)
		}
	}
	if len(candidates) != 1 {
		return nil, ErrAmbiguousConstructor(desc.typ, len(visible), len(candidates))
	}

	return candidates[0], nil
}
