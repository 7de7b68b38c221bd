// Package random provides number helpers over an explicitly constructed generator.
//
// Components that need randomness take a *Generator. Default returns a
// process-wide generator that is created and seeded exactly once, on first use.
package random

import (
	"math/rand/v2"
	"sync"
)

// Generator draws numbers in inclusive ranges. It is safe for concurrent use.
type Generator struct {
	mu sync.Mutex
	r  *rand.Rand
}

// New returns a generator with a fixed seed. Equal seeds give equal sequences.
func New(seed uint64) *Generator {
	return &Generator{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewSeeded returns a generator seeded from the runtime's entropy source.
func NewSeeded() *Generator {
	return New(rand.Uint64())
}

var (
	defaultOnce sync.Once
	defaultGen  *Generator
)

// Default returns the shared generator, seeding it on the first call.
func Default() *Generator {
	defaultOnce.Do(func() {
		defaultGen = NewSeeded()
	})
	return defaultGen
}

// Int returns a whole number in [lo, hi]. Swapped bounds are reordered.
func (g *Generator) Int(lo, hi int64) int64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	span := uint64(hi-lo) + 1
	if span == 0 {
		return int64(g.r.Uint64())
	}
	return lo + int64(g.r.Uint64N(span))
}

// Decimal returns a floating point number in [lo, hi].
func (g *Generator) Decimal(lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	return lo + g.r.Float64()*(hi-lo)
}
