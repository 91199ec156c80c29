// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func TestVonMisesFisherErrors(t *testing.T) {
	unit3 := []float64{0, 0, 1}
	tests := []struct {
		name  string
		mu    []float64
		kappa float64
		want  error
	}{
		{"empty mu", nil, 1, ErrDimension},
		{"dimension 1", []float64{1}, 1, ErrDimension},
		{"non-unit mu", []float64{1, 1, 1}, 1, ErrDimension},
		{"zero kappa", unit3, 0, ErrDomain},
		{"negative kappa", unit3, -2, ErrDomain},
		{"NaN kappa", unit3, math.NaN(), ErrDomain},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewVonMisesFisher(test.mu, test.kappa, nil)
			require.ErrorIs(t, err, test.want)
		})
	}
}

func TestVonMisesFisherRotation(t *testing.T) {
	mus := [][]float64{
		{1, 0, 0}, // canonical pole, skip heuristic hits column 0
		{0, 1, 0},
		{0, 0, -1},
		{-1, 0, 0},
		{1 / math.Sqrt2, 0, -1 / math.Sqrt2},
		{0.5, 0.5, 0.5, -0.5},
		{3. / 13, 4. / 13, 12. / 13},
	}
	for _, mu := range mus {
		t.Run(fmt.Sprint(mu), func(t *testing.T) {
			d, err := NewVonMisesFisher(mu, 2, rand.NewSource(1))
			require.NoError(t, err)
			p := d.Dim()

			// First column of the rotation is mu.
			for i, want := range mu {
				assert.InDelta(t, want, d.rot.At(i, 0), 1e-12)
			}

			// QᵀQ = I.
			var qtq mat.Dense
			qtq.Mul(d.rot.T(), d.rot)
			for i := 0; i < p; i++ {
				for j := 0; j < p; j++ {
					want := 0.0
					if i == j {
						want = 1
					}
					assert.InDelta(t, want, qtq.At(i, j), 1e-12)
				}
			}
		})
	}
}

func TestVonMisesFisherUnitNorm(t *testing.T) {
	for _, p := range []int{2, 3, 5, 10} {
		for _, kappa := range []float64{0.1, 1, 10, 1000} {
			mu := make([]float64, p)
			mu[p-1] = 1
			d, err := NewVonMisesFisher(mu, kappa, rand.NewSource(3))
			require.NoError(t, err)
			x := make([]float64, p)
			for i := 0; i < 200; i++ {
				d.Rand(x)
				if e := math.Abs(floats.Norm(x, 2) - 1); e > 1e-9 {
					t.Fatalf("p=%d kappa=%v: sample %v has norm error %v", p, kappa, x, e)
				}
			}
		}
	}
}

func TestVonMisesFisherConcentration(t *testing.T) {
	mu := []float64{3. / 13, 4. / 13, 12. / 13}

	// Large kappa: draws hug the mean direction.
	d, err := NewVonMisesFisher(mu, 1000, rand.NewSource(5))
	require.NoError(t, err)
	muVec := mat.NewVecDense(3, mu)
	meanDot := 0.0
	const n = 1000
	x := make([]float64, 3)
	for i := 0; i < n; i++ {
		d.Rand(x)
		meanDot += mat.Dot(mat.NewVecDense(3, x), muVec)
	}
	meanDot /= n
	assert.Greater(t, meanDot, 0.99, "draws not concentrated around mu")

	// Tiny kappa: nearly uniform on the sphere, so the sample mean
	// vector is close to zero.
	d, err = NewVonMisesFisher(mu, 1e-3, rand.NewSource(5))
	require.NoError(t, err)
	sum := make([]float64, 3)
	const m = 5000
	for i := 0; i < m; i++ {
		floats.Add(sum, d.Rand(x))
	}
	for j := range sum {
		assert.InDelta(t, 0, sum[j]/m, 0.05, "component %d of the mean of near-uniform draws", j)
	}
}

func TestVonMisesFisherBatch(t *testing.T) {
	mu := []float64{0, 1, 0, 0}
	d, err := NewVonMisesFisher(mu, 5, rand.NewSource(9))
	require.NoError(t, err)

	const n = 50
	xs := d.RandBatch(n)
	r, c := xs.Dims()
	require.Equal(t, n, r)
	require.Equal(t, d.Dim(), c)

	for i := 0; i < n; i++ {
		assert.InDelta(t, 1, floats.Norm(xs.RawRowView(i), 2), 1e-9, "row %d", i)
	}
	// Rows are independent draws, not copies of one scratch buffer.
	assert.False(t, floats.Equal(xs.RawRowView(0), xs.RawRowView(1)))
}
