// Copyright 2016 The Gocoulomb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geo implements geometry utilities for elastic dislocation problems:
// fault-aligned rotations, fault plane vectors, slip decompositions and a
// flat-Earth projection. Angles are given in degrees at all API boundaries.
package geo

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// StrikeRot returns the pair of rotation matrices associated with a fault of
// given strike [deg]. R rotates map-view (east-north-up) coordinates into the
// fault-aligned system whose x-axis points along strike; R2 rotates back.
// The rotation angle is θ = strike - 90 [deg] about the vertical axis, thus
// R2 equals the transpose of R.
func StrikeRot(strike float64) (R, R2 [][]float64) {
	θ := (strike - 90.0) * math.Pi / 180.0
	s, c := math.Sin(θ), math.Cos(θ)
	R = la.MatAlloc(3, 3)
	R2 = la.MatAlloc(3, 3)
	R[0][0], R[0][1] = c, -s
	R[1][0], R[1][1] = s, c
	R[2][2] = 1.0
	R2[0][0], R2[0][1] = c, s
	R2[1][0], R2[1][1] = -s, c
	R2[2][2] = 1.0
	return
}

// RotPoint rotates the map-view point (x, y) counterclockwise by the given
// angle [deg] about the origin
func RotPoint(x, y, angle float64) (xr, yr float64) {
	θ := angle * math.Pi / 180.0
	s, c := math.Sin(θ), math.Cos(θ)
	xr = c*x - s*y
	yr = s*x + c*y
	return
}

// RotPoints rotates a set of map-view points counterclockwise by the given
// angle [deg] about the origin
func RotPoints(x, y []float64, angle float64) (xr, yr []float64) {
	xr = make([]float64, len(x))
	yr = make([]float64, len(y))
	for i := range x {
		xr[i], yr[i] = RotPoint(x[i], y[i], angle)
	}
	return
}
