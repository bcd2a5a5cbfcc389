package synthetic

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerator_SameSeedSameSequence(t *testing.T) {
	a := NewGenerator(7)
	b := NewGenerator(7)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestGenerator_DifferentSeedsDiverge(t *testing.T) {
	a := NewGenerator(1)
	b := NewGenerator(2)

	same := 0
	for i := 0; i < 20; i++ {
		if a.Float64() == b.Float64() {
			same++
		}
	}
	assert.Less(t, same, 20)
}

func TestGenerator_ZeroSeedIsTimeBased(t *testing.T) {
	g := NewGenerator(0)
	assert.NotZero(t, g.Seed())
}

func TestGenerator_Bounds(t *testing.T) {
	g := NewGenerator(42)

	for i := 0; i < 10000; i++ {
		v := g.Between(30, 70)
		assert.GreaterOrEqual(t, v, 30.0)
		assert.Less(t, v, 70.0)

		j := g.Jitter(10)
		assert.GreaterOrEqual(t, j, -5.0)
		assert.Less(t, j, 5.0)

		n := g.IntBetween(100, 1600)
		assert.GreaterOrEqual(t, n, 100)
		assert.LessOrEqual(t, n, 1600)
	}
}

func TestGenerator_ConcurrentUse(t *testing.T) {
	g := NewGenerator(3)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				_ = g.Float64()
				_ = g.IntBetween(0, 10)
			}
		}()
	}
	wg.Wait()
}
