// Package weighted implements weighted random selection without
// replacement: at each draw the chance of picking a remaining element is
// proportional to its weight among the elements still in the pool.
package weighted

import (
	"fmt"
	"math/rand"
)

// Sample returns up to k elements drawn from population without
// replacement. The pool is re-weighted after every draw, so this is a
// sequence of k dependent weighted choices, not a one-shot combination.
//
// A nil weights slice means a uniform draw. If k exceeds the population
// size the request is capped to the number of elements available; a k of
// zero or less returns an empty selection. The caller's slices are never
// modified.
//
// Sample panics if weights is non-nil with a length different from the
// population, or if any weight is not positive.
func Sample[T any](rng *rand.Rand, population []T, weights []int, k int) []T {
	if weights != nil && len(weights) != len(population) {
		panic(fmt.Sprintf("weighted: %d weights for %d elements", len(weights), len(population)))
	}

	pool := make([]T, len(population))
	copy(pool, population)

	w := make([]int, len(population))
	if weights == nil {
		for i := range w {
			w[i] = 1
		}
	} else {
		for i, weight := range weights {
			if weight <= 0 {
				panic(fmt.Sprintf("weighted: weight %d at index %d", weight, i))
			}
			w[i] = weight
		}
	}

	if k > len(pool) {
		k = len(pool)
	}
	if k <= 0 {
		return []T{}
	}

	selected := make([]T, 0, k)
	for len(selected) < k {
		i := draw(rng, w)
		selected = append(selected, pool[i])
		pool = append(pool[:i], pool[i+1:]...)
		w = append(w[:i], w[i+1:]...)
	}
	return selected
}

// Choice returns a single weighted draw from population. A nil weights
// slice means a uniform draw. Choice panics on an empty population: every
// caller is expected to guarantee at least one candidate.
func Choice[T any](rng *rand.Rand, population []T, weights []int) T {
	if len(population) == 0 {
		panic("weighted: choice from empty population")
	}
	return Sample(rng, population, weights, 1)[0]
}

// draw picks an index with probability proportional to its weight.
func draw(rng *rand.Rand, weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	r := rng.Intn(total)
	for i, w := range weights {
		r -= w
		if r < 0 {
			return i
		}
	}
	// Unreachable while weights are positive.
	return len(weights) - 1
}
