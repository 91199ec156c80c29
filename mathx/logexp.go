// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathx implements special functions missing from the math
// package.
package mathx // import "github.com/aclements/go-morerand/mathx"

import "math"

// Log1MExp returns log(1 - e**y) for y ≤ 0 without losing precision at
// either end of the range.
//
// Above -ln 2, where e**y is close to 1, it evaluates
// log(-expm1(y)) so the cancellation happens inside Expm1 at full
// precision. At or below -ln 2, where e**y is small, log1p(-e**y) is
// the accurate form. The crossover follows Mächler, "Accurately
// Computing log(1 - exp(-|a|))" (2012).
//
// Log1MExp(0) is -Inf and Log1MExp(-Inf) is 0.
func Log1MExp(y float64) float64 {
	if y > -math.Ln2 {
		return math.Log(-math.Expm1(y))
	}
	return math.Log1p(-math.Exp(y))
}
