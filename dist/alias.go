// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

// An AliasTable samples from a categorical distribution over 0..K-1 in
// O(1) time per draw using Walker's alias method.
//
// Construction partitions the scaled weights into slots so that every
// slot holds at most two categories: its own and a fallback "alias".
// A draw picks a slot uniformly and flips one biased coin, so sampling
// cost is independent of both K and the weight values.
type AliasTable struct {
	prob  []float64
	alias []int

	// bound is the largest multiple of K representable in a uint64.
	// Raw Uint64 draws at or above it are rejected before reducing
	// mod K, keeping the slot choice exactly uniform.
	bound uint64

	src rand.Source
}

var _ IntRander = (*AliasTable)(nil)

// NewAliasTable builds an alias table for the categorical distribution
// proportional to weights. The weights need not sum to 1. Construction
// is O(K).
//
// If src is nil the global random source is used for draws.
func NewAliasTable(weights []float64, src rand.Source) (*AliasTable, error) {
	k := len(weights)
	if k == 0 {
		return nil, errors.Wrap(ErrConstruction, "empty weight vector")
	}
	sum := 0.0
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) {
			return nil, errors.Wrapf(ErrConstruction, "weight %v at index %d", w, i)
		}
		sum += w
	}
	if sum == 0 {
		return nil, errors.Wrap(ErrConstruction, "weights sum to zero")
	}

	t := &AliasTable{
		prob:  make([]float64, k),
		alias: make([]int, k),
		bound: math.MaxUint64 / uint64(k) * uint64(k),
		src:   src,
	}

	// Scale so the average slot weight is exactly 1.
	scaled := make([]float64, k)
	for i, w := range weights {
		scaled[i] = w * float64(k) / sum
	}

	// Worklist stacks; neither outlives construction.
	var small, large []int
	for i, s := range scaled {
		switch {
		case s < 1:
			small = append(small, i)
		case s > 1:
			large = append(large, i)
		default:
			t.prob[i] = 1
			t.alias[i] = i
		}
	}

	// Pair each deficient slot with a surplus category. The surplus
	// category donates exactly the deficit and is then reclassified.
	for len(small) > 0 && len(large) > 0 {
		s := small[len(small)-1]
		small = small[:len(small)-1]
		l := large[len(large)-1]
		large = large[:len(large)-1]

		t.prob[s] = scaled[s]
		t.alias[s] = l
		scaled[l] -= 1 - scaled[s]
		switch {
		case scaled[l] < 1:
			small = append(small, l)
		case scaled[l] > 1:
			large = append(large, l)
		default:
			t.prob[l] = 1
			t.alias[l] = l
		}
	}

	// Leftovers hold probability 1 up to floating-point rounding.
	// This pass would be dead code in exact arithmetic; keep it.
	for _, i := range large {
		t.prob[i] = 1
		t.alias[i] = i
	}
	for _, i := range small {
		t.prob[i] = 1
		t.alias[i] = i
	}

	return t, nil
}

// K returns the number of categories.
func (t *AliasTable) K() int {
	return len(t.prob)
}

// Rand returns one category in 0..K-1 distributed according to the
// weights the table was built from.
//
// The slot index is drawn by rejection against bound, so the retry
// loop has no iteration cap; the rejection probability is at most
// K/2^64 per attempt.
func (t *AliasTable) Rand() int {
	uint64n, float64n := rand.Uint64, rand.Float64
	if t.src != nil {
		r := rand.New(t.src)
		uint64n, float64n = r.Uint64, r.Float64
	}
	for {
		u := uint64n()
		if u >= t.bound {
			continue
		}
		c := int(u % uint64(len(t.prob)))
		if float64n() < t.prob[c] {
			return c
		}
		return t.alias[c]
	}
}

// RandN returns n independent draws.
func (t *AliasTable) RandN(n int) []int {
	cs := make([]int, n)
	for i := range cs {
		cs[i] = t.Rand()
	}
	return cs
}

// Probabilities returns the categorical distribution the table
// encodes: the probability of category c is the chance of landing on
// slot c and accepting, plus the chance of being redirected to c from
// any other slot. Up to rounding this reproduces the normalized input
// weights.
func (t *AliasTable) Probabilities() []float64 {
	k := len(t.prob)
	ps := make([]float64, k)
	for i, p := range t.prob {
		ps[i] += p
		ps[t.alias[i]] += 1 - p
	}
	floats.Scale(1/float64(k), ps)
	return ps
}
