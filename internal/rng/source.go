// Package rng wraps math/rand behind a small interface so the engine
// never depends on a process-wide generator. Every Engine owns one
// private Source; no two engines, and no two goroutines, ever share
// one, which is what makes perform_daily_cycle reproducible across
// thread counts.
package rng

import "math/rand"

// Source is the subset of math/rand's API the engine needs: reseeding
// and uniform draws in [0,1).
type Source interface {
	Seed(seed int64)
	Float64() float64
}

type source struct {
	r *rand.Rand
}

// New returns a Source seeded deterministically from seed.
func New(seed int64) Source {
	return &source{r: rand.New(rand.NewSource(seed))}
}

func (s *source) Seed(seed int64) {
	s.r.Seed(seed)
}

func (s *source) Float64() float64 {
	return s.r.Float64()
}
