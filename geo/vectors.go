// Copyright 2016 The Gocoulomb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// StrikeVec returns the unit vector pointing along strike, in the
// east-north-up system. strike is the azimuth in degrees, clockwise from
// north.
func StrikeVec(strike float64) []float64 {
	α := strike * math.Pi / 180.0
	return []float64{math.Sin(α), math.Cos(α), 0}
}

// DipVec returns the unit vector pointing downdip. The horizontal heading is
// strike+90 and the vertical component is -sin(dip); thus a vertical fault
// gives a straight-down vector and a horizontal fault gives a horizontal one.
func DipVec(strike, dip float64) []float64 {
	φ := (strike + 90.0) * math.Pi / 180.0 // downdip azimuth
	δ := dip * math.Pi / 180.0
	return []float64{math.Sin(φ) * math.Cos(δ), math.Cos(φ) * math.Cos(δ), -math.Sin(δ)}
}

// PlaneNormal returns the unit vector normal to the fault plane defined by
// strike and dip [deg], computed as downdip cross strike so that the vertical
// component is non-negative. With this orientation a positive resolved normal
// stress unclamps the fault.
func PlaneNormal(strike, dip float64) []float64 {
	n := make([]float64, 3)
	utl.Cross3d(n, DipVec(strike, dip), StrikeVec(strike))
	return n
}

// AddVec walks from the map-view point (x, y) along a vector with the given
// magnitude and azimuth [deg, clockwise from north]
func AddVec(x, y, mag, azimuth float64) (xb, yb float64) {
	α := azimuth * math.Pi / 180.0
	xb = x + mag*math.Sin(α)
	yb = y + mag*math.Cos(α)
	return
}

// Strike computes the azimuth [deg] of the horizontal vector (dx, dy),
// clockwise from north and normalised to [0, 360)
func Strike(dx, dy float64) float64 {
	strike := 90.0 - math.Atan2(dy, dx)*180.0/math.Pi
	if strike < 0 {
		strike += 360.0
	}
	return strike
}

// Rake computes the rake angle [deg] in (-180, 180] from the two in-plane
// slip components: ss positive left-lateral and ds positive reverse
func Rake(ss, ds float64) float64 {
	return math.Atan2(ds, ss) * 180.0 / math.Pi
}

// RtlatDipSlip decomposes a slip magnitude and rake [deg] into right-lateral
// and reverse components. Rake 0 is pure left-lateral, hence the negated
// cosine on the right-lateral component.
func RtlatDipSlip(slip, rake float64) (rtlat, dipslip float64) {
	r := rake * math.Pi / 180.0
	rtlat = -slip * math.Cos(r)
	dipslip = slip * math.Sin(r)
	return
}

// TotalSlip returns the slip magnitude from two orthogonal in-plane components
func TotalSlip(ss, ds float64) float64 {
	return math.Sqrt(ss*ss + ds*ds)
}

// VecMag3 returns the Euclidean norm of a 3-vector
func VecMag3(v []float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// StrikeLength returns the along-strike length of a fault trace given its
// map-view end points [km]
func StrikeLength(x0, xf, y0, yf float64) float64 {
	return math.Sqrt((xf-x0)*(xf-x0) + (yf-y0)*(yf-y0))
}

// DowndipWidth returns the downdip width of a plane spanning depths from top
// to bottom [km, positive down] at the given dip [deg]
func DowndipWidth(top, bottom, dip float64) float64 {
	return (bottom - top) / math.Sin(dip*math.Pi/180.0)
}

// TopBottomFromTop returns the top and bottom depths [km, positive down] of a
// plane with the given top depth, downdip width [km] and dip [deg]
func TopBottomFromTop(top, width, dip float64) (ztop, zbot float64) {
	ztop = top
	zbot = top + width*math.Sin(dip*math.Pi/180.0)
	return
}
