// Package generator selects target sentences for typing rounds.
package generator

import (
	"math/rand"
	"time"
)

// Generator picks sentences uniformly at random from a fixed pool.
type Generator struct {
	rnd  *rand.Rand
	pool []string
}

// New returns a Generator over pool seeded with the current time.
// An empty pool falls back to Sentences.
func New(pool []string) *Generator {
	return NewWithSeed(pool, time.Now().UnixNano())
}

// NewWithSeed returns a Generator with a reproducible selection order.
func NewWithSeed(pool []string, seed int64) *Generator {
	if len(pool) == 0 {
		pool = Sentences
	}
	return &Generator{
		rnd:  rand.New(rand.NewSource(seed)),
		pool: append([]string(nil), pool...),
	}
}

// Next returns the next sentence.
func (g *Generator) Next() string {
	return g.pool[g.rnd.Intn(len(g.pool))]
}

// Pool returns a copy of the candidate sentences.
func (g *Generator) Pool() []string {
	return append([]string(nil), g.pool...)
}
