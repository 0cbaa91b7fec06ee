package manager

import (
	"golang.org/x/exp/rand"
)

// Rand draws uniformly distributed integers in [0, n).
type Rand interface {
	Intn(n int) int
}

// RandFunc adapts a plain function to Rand.
type RandFunc func(n int) int

func (f RandFunc) Intn(n int) int {
	return f(n)
}

// NewRand returns a seeded pseudo random source.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
