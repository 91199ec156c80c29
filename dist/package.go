// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dist provides random-variate samplers and analytic
// distributions: an alias table for O(1) weighted-categorical
// sampling, a von Mises–Fisher sampler for directional data on the
// unit hypersphere, and the Fréchet extreme-value distribution.
//
// All types are immutable after construction and safe for concurrent
// draws provided the rand.Source supplied at construction is itself
// safe for concurrent use (or each goroutine uses its own instance).
package dist // import "github.com/aclements/go-morerand/dist"

import "math"

var inf = math.Inf(1)
