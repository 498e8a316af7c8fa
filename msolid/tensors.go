// Copyright 2016 The Gocoulomb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import "github.com/cpmech/gosl/la"

// StrainTensor computes the infinitesimal strain tensor from a displacement
// gradient tensor: ε = (G + Gᵀ)/2. The result is symmetric by construction.
func StrainTensor(gradU [][]float64) (ε [][]float64) {
	ε = la.MatAlloc(3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			ε[i][j] = 0.5 * (gradU[i][j] + gradU[j][i])
		}
	}
	return
}

// StressTensor computes the stress tensor of an isotropic linear elastic
// medium: σ = λ tr(ε) I + 2 μ ε
func StressTensor(ε [][]float64, lam, mu float64) (σ [][]float64) {
	σ = la.MatAlloc(3, 3)
	trε := ε[0][0] + ε[1][1] + ε[2][2]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			σ[i][j] = 2.0 * mu * ε[i][j]
			if i == j {
				σ[i][j] += lam * trε
			}
		}
	}
	return
}

// Stress computes the stress tensor corresponding to a given strain tensor
func (o LinElast) Stress(ε [][]float64) [][]float64 {
	return StressTensor(ε, o.Lam, o.Mu)
}

// Tr returns the trace of a 3x3 tensor
func Tr(T [][]float64) float64 {
	return T[0][0] + T[1][1] + T[2][2]
}
