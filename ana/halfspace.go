// Copyright 2016 The Gocoulomb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements closed-form solutions for dislocation sources buried
// in an elastic half-space, after Okada (1992): internal displacements and
// displacement gradients due to point and finite rectangular sources.
//
//	Reference:
//	 [1] Okada Y (1992) Internal deformation due to shear and tensile faults
//	     in a half-space. Bull Seism Soc Am 82(2):1018-1040
package ana

import "math"

// eps is the snapping tolerance for station coordinates and the cut-off used
// by the degenerate-geometry checks
const eps = 1e-6

// pi2 is 2π, the scaling constant of all kernels
const pi2 = 2.0 * math.Pi

// dconsts holds the medium and dip constants shared by all kernels.
// alpha is the medium constant (λ+μ)/(λ+2μ) and dip is given in degrees.
type dconsts struct {
	alp1, alp2, alp3, alp4, alp5 float64
	sd, cd                       float64 // sin and cos of dip
	sdsd, cdcd, sdcd             float64
	s2d, c2d                     float64 // sin and cos of 2·dip
}

// newDconsts computes medium and dip constants. Nearly vertical dips are
// snapped to exactly vertical to avoid cancellation in the cd-divided terms.
func newDconsts(alpha, dip float64) (o dconsts) {
	o.alp1 = (1.0 - alpha) / 2.0
	o.alp2 = alpha / 2.0
	o.alp3 = (1.0 - alpha) / alpha
	o.alp4 = 1.0 - alpha
	o.alp5 = alpha
	δ := dip * math.Pi / 180.0
	o.sd = math.Sin(δ)
	o.cd = math.Cos(δ)
	if math.Abs(o.cd) < eps {
		o.cd = 0
		if o.sd > 0 {
			o.sd = 1
		}
		if o.sd < 0 {
			o.sd = -1
		}
	}
	o.sdsd = o.sd * o.sd
	o.cdcd = o.cd * o.cd
	o.sdcd = o.sd * o.cd
	o.s2d = 2.0 * o.sdcd
	o.c2d = o.cdcd - o.sdsd
	return
}
