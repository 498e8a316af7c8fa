// Copyright 2016 The Gocoulomb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

func Test_strike01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("strike01. strike from horizontal vectors")

	chk.Scalar(tst, "strike(1,0)  ", 1e-12, Strike(1, 0), 90)
	chk.Scalar(tst, "strike(-1,0) ", 1e-12, Strike(-1, 0), 270)
	chk.Scalar(tst, "strike(0,-1) ", 1e-12, Strike(0, -1), 180)
	chk.Scalar(tst, "strike(0,1)  ", 1e-12, Strike(0, 1), 0)

	// vector with azimuth 250
	θ := -160.0 * math.Pi / 180.0
	chk.Scalar(tst, "strike @ 250 ", 1e-12, Strike(math.Cos(θ), math.Sin(θ)), 250)
}

func Test_rake01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rake01. rake from slip components")

	chk.Scalar(tst, "rake(1,0)  ", 1e-12, Rake(1, 0), 0)
	chk.Scalar(tst, "rake(0,1)  ", 1e-12, Rake(0, 1), 90)
	chk.Scalar(tst, "rake(0,-1) ", 1e-12, Rake(0, -1), -90)
	chk.Scalar(tst, "rake(-1,0) ", 1e-12, Rake(-1, 0), 180)

	// decomposition and recombination
	slip, rake := 1.6, 35.0
	rtlat, dipslip := RtlatDipSlip(slip, rake)
	chk.Scalar(tst, "rtlat  ", 1e-15, rtlat, -slip*math.Cos(rake*math.Pi/180.0))
	chk.Scalar(tst, "dipslip", 1e-15, dipslip, slip*math.Sin(rake*math.Pi/180.0))
	chk.Scalar(tst, "slip   ", 1e-14, TotalSlip(rtlat, dipslip), slip)
	chk.Scalar(tst, "rake   ", 1e-12, Rake(-rtlat, dipslip), rake)

	// 3-vector magnitude
	chk.Scalar(tst, "|v|", 1e-15, VecMag3([]float64{2, -3, 6}), 7)
}

func Test_rot01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rot01. fault-aligned rotation matrices")

	// a fault striking east is already aligned with x
	R, R2 := StrikeRot(90)
	I := [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	chk.Matrix(tst, "R  @ strike=90", 1e-15, R, I)
	chk.Matrix(tst, "R2 @ strike=90", 1e-15, R2, I)

	// R2 = transpose(R) for any strike
	for _, strike := range []float64{0, 28, 90, 135, 210, 333} {
		R, R2 = StrikeRot(strike)
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				chk.Scalar(tst, "R2 = trans(R)", 1e-15, R2[i][j], R[j][i])
			}
		}
	}

	// roundtrip
	R, R2 = StrikeRot(214.0)
	p := []float64{1.2, -3.4, 5.6}
	q := make([]float64, 3)
	b := make([]float64, 3)
	for i := 0; i < 3; i++ {
		q[i] = R[i][0]*p[0] + R[i][1]*p[1] + R[i][2]*p[2]
	}
	for i := 0; i < 3; i++ {
		b[i] = R2[i][0]*q[0] + R2[i][1]*q[1] + R2[i][2]*q[2]
	}
	chk.Vector(tst, "roundtrip", 1e-14, b, p)

	// map-view rotation
	xr, yr := RotPoint(1, 0, 90)
	chk.Scalar(tst, "xr", 1e-15, xr, 0)
	chk.Scalar(tst, "yr", 1e-15, yr, 1)
}

func Test_vecs01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vecs01. fault plane vectors")

	chk.Vector(tst, "strike vec N   ", 1e-15, StrikeVec(0), []float64{0, 1, 0})
	chk.Vector(tst, "dip vec vert   ", 1e-15, DipVec(0, 90), []float64{0, 0, -1})
	chk.Vector(tst, "normal vert    ", 1e-15, PlaneNormal(0, 90), []float64{1, 0, 0})
	chk.Vector(tst, "normal horiz   ", 1e-15, PlaneNormal(0, 0), []float64{0, 0, 1})

	// mutual orthogonality and unit length
	for _, strike := range []float64{0, 45, 160, 270} {
		for _, dip := range []float64{10, 45, 89} {
			s := StrikeVec(strike)
			d := DipVec(strike, dip)
			n := PlaneNormal(strike, dip)
			chk.Scalar(tst, "s.d", 1e-14, utl.Dot3d(s, d), 0)
			chk.Scalar(tst, "s.n", 1e-14, utl.Dot3d(s, n), 0)
			chk.Scalar(tst, "d.n", 1e-14, utl.Dot3d(d, n), 0)
			chk.Scalar(tst, "|n|", 1e-14, utl.Dot3d(n, n), 1)
			if n[2] < 0 {
				tst.Errorf("plane normal must point upward: n=%v\n", n)
				return
			}
		}
	}
}

func Test_proj01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("proj01. flat-Earth projection")

	// one degree of longitude at the equator
	x, y := LonLat2XY(1, 0, 0, 0)
	chk.Scalar(tst, "x", 1e-12, x, 111.0)
	chk.Scalar(tst, "y", 1e-12, y, 0)

	// roundtrip about a western US reference
	lon0, lat0 := -121.0, 40.0
	lon, lat := -120.4, 40.35
	x, y = LonLat2XY(lon, lat, lon0, lat0)
	lonb, latb := XY2LonLat(x, y, lon0, lat0)
	chk.Scalar(tst, "lon", 1e-12, lonb, lon)
	chk.Scalar(tst, "lat", 1e-12, latb, lat)

	// walking east
	xb, yb := AddVec(1, 2, 3, 90)
	chk.Scalar(tst, "xb", 1e-14, xb, 4)
	chk.Scalar(tst, "yb", 1e-14, yb, 2)

	// geometry of a dipping plane
	chk.Scalar(tst, "L", 1e-15, StrikeLength(0, 3, 0, 4), 5)
	chk.Scalar(tst, "W", 1e-14, DowndipWidth(2, 4, 30), 4)
	ztop, zbot := TopBottomFromTop(2, 4, 30)
	chk.Scalar(tst, "ztop", 1e-15, ztop, 2)
	chk.Scalar(tst, "zbot", 1e-14, zbot, 4)
}
