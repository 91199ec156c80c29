// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "github.com/pkg/errors"

// Constructors in this package validate their parameters eagerly and
// report failures by wrapping one of the sentinel errors below, so
// callers can test the failure class with errors.Is. Sampling and
// evaluation methods never fail on a successfully constructed value.
var (
	// ErrConstruction reports an input that cannot define a
	// categorical distribution, such as an empty, negative, or
	// all-zero weight vector.
	ErrConstruction = errors.New("invalid distribution construction")

	// ErrDomain reports a scalar parameter outside its valid range.
	ErrDomain = errors.New("parameter out of domain")

	// ErrDimension reports a vector parameter with the wrong length
	// or norm.
	ErrDimension = errors.New("bad vector dimension")
)
