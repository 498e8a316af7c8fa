// Copyright 2016 The Gocoulomb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coulomb drives the dislocation solvers over grids, observation
// points and receiver faults, resolving Coulomb stress changes on the latter
package coulomb

import (
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/gocoulomb/ana"
	"github.com/cpmech/gocoulomb/fault"
	"github.com/cpmech/gocoulomb/geo"
	"github.com/cpmech/gocoulomb/msolid"
)

// Evaluator computes elastic fields at stations due to a set of slipping
// faults. All fields are read-only after construction, hence the methods are
// safe for concurrent use
type Evaluator struct {
	Medium  msolid.LinElast // elastic half-space
	Sources []*fault.Patch  // slipping faults
}

// EvalSource computes the displacement gradient tensor and the displacement
// vector at one station (x, y [km], z [km, positive down]) due to one source.
// The station is translated and rotated into the fault-aligned frame of the
// source, solved there, and the results are rotated back into the ambient
// frame. Singular geometries propagate as errors
func (o *Evaluator) EvalSource(src *fault.Patch, x, y, z float64) (gradU [][]float64, u []float64, err error) {

	// station in the fault-aligned frame
	R, _ := geo.StrikeRot(src.Strike)
	pos := []float64{x - src.XStart, y - src.YStart, -z}
	ξ := make([]float64, 3)
	la.MatVecMul(ξ, 1, R, pos)

	// solve in the fault frame
	var ul []float64
	var gl [][]float64
	if src.IsPoint() {
		ul, gl, err = ana.PointSource(o.Medium.Alpha, ξ[0], ξ[1], ξ[2], src.Top, src.Dip, src.Potency)
		if err != nil {
			return
		}
		// potency sources return nanostrain and microns
		for i := 0; i < 3; i++ {
			ul[i] *= 1e-6
			for j := 0; j < 3; j++ {
				gl[i][j] *= 1e-9
			}
		}
	} else {
		// the solver convention has left-lateral slip positive
		disl := []float64{-src.Rtlat, src.Reverse, src.Tensile}
		ul, gl, err = ana.RectSource(o.Medium.Alpha, ξ[0], ξ[1], ξ[2], src.Top, src.Dip, 0, src.L(), -src.W(), 0, disl)
		if err != nil {
			return
		}
		// slip in metres over distances in kilometres gives millistrain
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				gl[i][j] *= 1e-3
			}
		}
	}

	// back to the ambient frame
	gradU = la.MatAlloc(3, 3)
	u = make([]float64, 3)
	la.MatTrMul3(gradU, 1, R, gl, R) // gradU := trans(R) * gl * R
	la.MatTrVecMul(u, 1, R, ul)      // u := trans(R) * ul
	return
}

// DispAt folds over the sources summing the displacement vector and the
// strain tensor at one station
func (o *Evaluator) DispAt(x, y, z float64) (u []float64, ε [][]float64, err error) {
	u = make([]float64, 3)
	ε = la.MatAlloc(3, 3)
	for _, src := range o.Sources {
		g, du, e := o.EvalSource(src, x, y, z)
		if e != nil {
			err = e
			return
		}
		εs := msolid.StrainTensor(g)
		for i := 0; i < 3; i++ {
			u[i] += du[i]
			for j := 0; j < 3; j++ {
				ε[i][j] += εs[i][j]
			}
		}
	}
	return
}
