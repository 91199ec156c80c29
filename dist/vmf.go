// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// A VonMisesFisher samples unit vectors in ℝᵖ from the von
// Mises–Fisher distribution with mean direction mu and concentration
// kappa. It uses the envelope rejection scheme of Wood (1994,
// "Simulation of the von Mises Fisher distribution", Communications in
// Statistics - Simulation and Computation 23) to draw the cosine of
// the angle to the mean direction, completes the sample with a
// uniformly random tangent direction, and rotates the result from the
// canonical pole (1,0,...,0) to mu.
type VonMisesFisher struct {
	mu    []float64
	kappa float64
	p     int

	// Constants of Wood's envelope, fixed by p and kappa.
	b, x0, c float64

	// rot is orthonormal with first column mu.
	rot *mat.Dense

	beta   distuv.Beta
	normal distuv.Normal
	src    rand.Source
}

// NewVonMisesFisher returns a sampler for the von Mises–Fisher
// distribution with the given mean direction and concentration. mu
// must be a unit vector of dimension at least 2 and kappa must be
// positive.
//
// If src is nil the global random source is used for draws.
func NewVonMisesFisher(mu []float64, kappa float64, src rand.Source) (*VonMisesFisher, error) {
	p := len(mu)
	if p < 2 {
		return nil, errors.Wrapf(ErrDimension, "mean direction has dimension %d, need at least 2", p)
	}
	if norm := floats.Norm(mu, 2); math.Abs(norm-1) > 1e-10 {
		return nil, errors.Wrapf(ErrDimension, "mean direction has norm %v, want 1", norm)
	}
	if !(kappa > 0) {
		return nil, errors.Wrapf(ErrDomain, "concentration kappa = %v, must be positive", kappa)
	}

	pm1 := float64(p - 1)
	b := pm1 / (2*kappa + math.Sqrt(4*kappa*kappa+pm1*pm1))
	x0 := (1 - b) / (1 + b)
	r := pm1 / 2
	return &VonMisesFisher{
		mu:     append([]float64(nil), mu...),
		kappa:  kappa,
		p:      p,
		b:      b,
		x0:     x0,
		c:      kappa*x0 + pm1*math.Log(1-x0*x0),
		rot:    rotationTo(mu),
		beta:   distuv.Beta{Alpha: r, Beta: r, Src: src},
		normal: distuv.Normal{Mu: 0, Sigma: 1, Src: src},
		src:    src,
	}, nil
}

// rotationTo returns an orthonormal p×p matrix whose first column is
// the unit vector mu.
//
// It QR-factorizes the matrix whose first column is mu and whose
// remaining columns are standard basis vectors. The basis column for
// the coordinate where mu has its largest magnitude is the one
// skipped, so the columns stay far from linear dependence even when mu
// lies near a coordinate axis and the factorization is
// well-conditioned. Since mu is unit length, the first column of Q is
// ±mu; a sign flip of one column preserves orthonormality.
func rotationTo(mu []float64) *mat.Dense {
	p := len(mu)
	skip := 0
	for i, v := range mu {
		if math.Abs(v) > math.Abs(mu[skip]) {
			skip = i
		}
	}

	a := mat.NewDense(p, p, nil)
	a.SetCol(0, mu)
	col := 1
	for i := 0; i < p; i++ {
		if i == skip {
			continue
		}
		a.Set(i, col, 1)
		col++
	}

	var qr mat.QR
	qr.Factorize(a)
	q := mat.NewDense(p, p, nil)
	qr.QTo(q)

	if mat.Dot(q.ColView(0), mat.NewVecDense(p, mu)) < 0 {
		for i := 0; i < p; i++ {
			q.Set(i, 0, -q.At(i, 0))
		}
	}
	return q
}

// Dim returns the dimension p of the sampled vectors.
func (d *VonMisesFisher) Dim() int {
	return d.p
}

// Mu returns a copy of the mean direction.
func (d *VonMisesFisher) Mu() []float64 {
	return append([]float64(nil), d.mu...)
}

// Kappa returns the concentration parameter.
func (d *VonMisesFisher) Kappa() float64 {
	return d.kappa
}

// Rand draws one unit vector. If x is non-nil it must have length
// Dim() and the sample is stored in it; otherwise a new slice is
// allocated. Either way the sample is returned.
func (d *VonMisesFisher) Rand(x []float64) []float64 {
	if x == nil {
		x = make([]float64, d.p)
	}
	if len(x) != d.p {
		panic("dist: output vector has wrong dimension")
	}
	t := make([]float64, d.p)
	d.randPolar(t)
	mat.NewVecDense(d.p, x).MulVec(d.rot, mat.NewVecDense(d.p, t))
	return x
}

// RandBatch draws n independent unit vectors and returns them as the
// rows of an n×p matrix. One scratch vector is reused across rows; the
// returned matrix shares no state with the sampler, so concurrent
// RandBatch calls are safe given a safe source.
func (d *VonMisesFisher) RandBatch(n int) *mat.Dense {
	out := mat.NewDense(n, d.p, nil)
	t := make([]float64, d.p)
	for i := 0; i < n; i++ {
		d.randPolar(t)
		row := out.RawRowView(i)
		mat.NewVecDense(d.p, row).MulVec(d.rot, mat.NewVecDense(d.p, t))
	}
	return out
}

// randPolar fills t with a sample in the canonical frame where the
// mean direction is (1,0,...,0): the first coordinate is w from Wood's
// rejection step and the rest is a uniformly random tangent direction
// scaled to radius sqrt(1-w²), so t lands exactly on the unit sphere.
func (d *VonMisesFisher) randPolar(t []float64) {
	w := d.randW()
	s := 0.0
	for i := 1; i < d.p; i++ {
		t[i] = d.normal.Rand()
		s += t[i] * t[i]
	}
	floats.Scale(math.Sqrt((1-w*w)/s), t[1:])
	t[0] = w
}

// randW draws the cosine of the angle between the sample and the mean
// direction by rejection from a Beta((p-1)/2, (p-1)/2) envelope. The
// acceptance probability is bounded away from zero for all valid p and
// kappa, so the loop carries no iteration cap; expected retries are
// O(1).
func (d *VonMisesFisher) randW() float64 {
	pm1 := float64(d.p - 1)
	for {
		z := d.beta.Rand()
		w := (1 - (1+d.b)*z) / (1 - (1-d.b)*z)
		if d.kappa*w+pm1*math.Log(1-d.x0*w)-d.c >= math.Log(d.uniform()) {
			return w
		}
	}
}

func (d *VonMisesFisher) uniform() float64 {
	if d.src == nil {
		return rand.Float64()
	}
	return rand.New(d.src).Float64()
}
