// Package synthetic produces the pseudo-random stand-in data served when a
// precomputed artifact is unavailable.
package synthetic

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Generator is a seedable source of uniform values, safe for concurrent use.
type Generator struct {
	mu   sync.Mutex
	rng  *rand.Rand
	seed uint64
}

// NewGenerator returns a generator seeded with seed, or with the current time
// when seed is 0.
func NewGenerator(seed uint64) *Generator {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Generator{
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		seed: seed,
	}
}

func (g *Generator) Seed() uint64 {
	return g.seed
}

// Float64 returns a value in [0,1).
func (g *Generator) Float64() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Float64()
}

// Between returns a value in [lo,hi).
func (g *Generator) Between(lo, hi float64) float64 {
	return lo + g.Float64()*(hi-lo)
}

// Jitter returns a value in [-span/2, span/2).
func (g *Generator) Jitter(span float64) float64 {
	return (g.Float64() - 0.5) * span
}

// IntBetween returns an integer in [lo,hi].
func (g *Generator) IntBetween(lo, hi int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return lo + g.rng.IntN(hi-lo+1)
}
