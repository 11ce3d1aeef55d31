package simpledi

import "testing"

// Benchmark initializer registration.
func BenchmarkRegister(b *testing.B) {
	for i := 0; i < b.N; i++ {
		c := NewCatalog()
		_ = c.Register(NewExample)
		_ = c.Register(NewExampleWithGreeting, Inject())
	}
}

// Benchmark selection among several visible initializers.
func BenchmarkSelect_Marked(b *testing.B) {
	c := NewCatalog()
	_ = c.Register(NewExample)
	_ = c.Register(NewExampleWithGreeting, Inject())
	_ = c.Register(func(s *resolverSuite) *example { return &example{outer: s} })
	desc := c.Describe(TypeOf[*example]())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Select(desc, nil)
	}
}

// Benchmark end-to-end resolution.
func BenchmarkResolve(b *testing.B) {
	c := NewCatalog()
	_ = c.Register(NewExample)
	r := New(c)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Resolve[*example](r)
	}
}

func BenchmarkResolve_WithPrepend(b *testing.B) {
	c := NewCatalog()
	_ = c.Register(func(s *resolverSuite) *example { return &example{outer: s} })
	r := New(c, WithInterceptor(Prepend(&resolverSuite{})))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Resolve[*example](r)
	}
}

func BenchmarkResolve_Parallel(b *testing.B) {
	c := NewCatalog()
	_ = c.Register(NewExample)
	r := New(c)

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = Resolve[*example](r)
		}
	})
}
