// Copyright 2016 The Gocoulomb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/gocoulomb/geo"
)

// Coulomb resolves a stress tensor τ [Pa] onto a receiver fault plane with
// given strike, dip and rake [deg]. friction is the coefficient of friction
// and B is Skempton's coefficient. Returns the effective normal stress
// (positive = unclamping), the shear stress in the rake direction, and the
// Coulomb failure stress, all in kPa.
func Coulomb(τ [][]float64, strike, dip, rake, friction, B float64) (σn, τr, cfs float64) {
	sv := geo.StrikeVec(strike)
	dv := geo.DipVec(strike, dip)
	n := geo.PlaneNormal(strike, dip)
	return CoulombVecs(τ, sv, dv, n, rake, friction, B)
}

// CoulombVecs resolves a stress tensor onto a receiver plane described by its
// precomputed strike, dip and normal unit vectors. See Coulomb.
func CoulombVecs(τ [][]float64, sv, dv, n []float64, rake, friction, B float64) (σn, τr, cfs float64) {

	// traction acting on the plane
	t := make([]float64, 3)
	la.MatVecMul(t, 1, τ, n) // t := τ·n

	// effective normal stress; positive means unclamping
	σdry := utl.Dot3d(n, t)
	σeff := σdry - Tr(τ)/3.0*B

	// shear components along strike and downdip, rotated into the rake direction
	τs := utl.Dot3d(sv, t)
	τd := utl.Dot3d(dv, t)
	r := rake * math.Pi / 180.0
	τrake := math.Cos(r)*τs - math.Sin(r)*τd

	// Pa to kPa; the sign of the friction term matters
	σn = σeff / 1000.0
	τr = τrake / 1000.0
	cfs = τr + friction*σn
	return
}
