// Copyright 2016 The Gocoulomb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tests

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/num"

	"github.com/cpmech/gocoulomb/coulomb"
)

// GradU compares the displacement gradient summed over the sources of ev
// against central differences of the displacement field at one buried
// station. The depth z is given positive down and must exceed the step h,
// since stations above the surface are not defined
func GradU(tst *testing.T, ev *coulomb.Evaluator, x, y, z, h, tol float64) {

	// analytical gradient
	G := la.MatAlloc(3, 3)
	for _, src := range ev.Sources {
		g, _, err := ev.EvalSource(src, x, y, z)
		if err != nil {
			tst.Errorf("EvalSource failed: %v\n", err)
			return
		}
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				G[i][j] += g[i][j]
			}
		}
	}

	// numerical derivatives; the station moves in km against displacements
	// in m, hence the 1e-3 factor, and its depth runs against the vertical
	// axis of the gradient, hence the sign flip on the last column
	st := []float64{x, y, z}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			dnum, _ := num.DerivCentral(func(t float64, args ...interface{}) float64 {
				p := []float64{x, y, z}
				p[j] = t
				u, _, e := ev.DispAt(p[0], p[1], p[2])
				if e != nil {
					return 0
				}
				return u[i]
			}, st[j], h)
			dnum *= 1e-3
			if j == 2 {
				dnum = -dnum
			}
			chk.AnaNum(tst, io.Sf("g%d%d", i, j), tol, G[i][j], dnum, chk.Verbose)
		}
	}
}
