package jobl2pdf

import "errors"

// Pool manages a fixed set of Builders for parallel batch builds. Each
// Builder owns its own browser instance, so builds acquired from the pool
// may run concurrently without coordination.
type Pool struct {
	builders chan *Builder
	size     int
}

// NewPool creates a pool of size Builders sharing the same options.
// Panics if size <= 0 (programmer error).
func NewPool(size int, opts ...Option) *Pool {
	if size <= 0 {
		panic("jobl2pdf: pool size must be positive")
	}

	p := &Pool{
		builders: make(chan *Builder, size),
		size:     size,
	}
	for i := 0; i < size; i++ {
		p.builders <- New(opts...)
	}
	return p
}

// Acquire takes a Builder from the pool, blocking until one is available.
func (p *Pool) Acquire() *Builder {
	return <-p.builders
}

// Release returns a Builder to the pool. Must be called exactly once per
// Acquire, typically via defer.
func (p *Pool) Release(b *Builder) {
	p.builders <- b
}

// Size returns the number of Builders the pool was created with.
func (p *Pool) Size() int {
	return p.size
}

// Close shuts down every Builder in the pool. It blocks until all Builders
// have been released, then joins their close errors.
func (p *Pool) Close() error {
	var errs []error
	for i := 0; i < p.size; i++ {
		b := <-p.builders
		if err := b.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
