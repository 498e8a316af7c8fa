// Copyright 2016 The Gocoulomb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fault implements rectangular fault patches and slip segments,
// including subfault splitting, format conversions and seismic moment
// computations
package fault

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gocoulomb/geo"
)

// Patch represents one rectangular dislocation in an elastic half-space.
// The updip edge runs from (XStart, YStart) to (XFinish, YFinish) in map view
// and the plane extends downdip from Top to Bottom. A patch is either a
// finite source carrying slip (Rtlat, Reverse, Tensile) or a point source
// carrying a 4-component Potency; never both
type Patch struct {
	XStart  float64   `json:"xstart"`  // x of the start of the updip edge [km]
	XFinish float64   `json:"xfinish"` // x of the finish of the updip edge [km]
	YStart  float64   `json:"ystart"`  // y of the start of the updip edge [km]
	YFinish float64   `json:"yfinish"` // y of the finish of the updip edge [km]
	Top     float64   `json:"top"`     // depth of the updip edge [km, positive down]
	Bottom  float64   `json:"bottom"`  // depth of the downdip edge [km, positive down]
	Strike  float64   `json:"strike"`  // strike azimuth [deg, clockwise from north]
	Dip     float64   `json:"dip"`     // dip angle [deg]
	Rake    float64   `json:"rake"`    // rake angle [deg]; receivers resolve shear along it
	Rtlat   float64   `json:"rtlat"`   // right-lateral slip [m]
	Reverse float64   `json:"reverse"` // reverse slip [m]
	Tensile float64   `json:"tensile"` // tensile opening [m]
	Potency []float64 `json:"potency"` // point-source potency {strike-slip, dip-slip, tensile, inflation} [N m]; nil for finite sources
	ZeroLon float64   `json:"zerolon"` // longitude of the cartesian origin [deg]
	ZeroLat float64   `json:"zerolat"` // latitude of the cartesian origin [deg]
	Kode    int       `json:"kode"`    // input format code
	Comment string    `json:"comment"` // free text carried through outputs
}

// Check returns an error if the patch mixes the finite-slip and point-source
// descriptions or if its geometry is inconsistent
func (o *Patch) Check() (err error) {
	if len(o.Potency) > 0 {
		if len(o.Potency) != 4 {
			return chk.Err("fault: patch potency needs 4 components {strike-slip, dip-slip, tensile, inflation}; got %d", len(o.Potency))
		}
		if o.Rtlat != 0 || o.Reverse != 0 || o.Tensile != 0 {
			return chk.Err("fault: patch cannot carry both finite slip and point-source potency")
		}
		if o.XStart != o.XFinish || o.YStart != o.YFinish || o.Top != o.Bottom {
			return chk.Err("fault: point-source patch must have zero extent")
		}
		return
	}
	if o.Bottom < o.Top {
		return chk.Err("fault: patch bottom depth (%g) must not be above top depth (%g)", o.Bottom, o.Top)
	}
	if o.Dip <= 0 || o.Dip > 90 {
		return chk.Err("fault: patch dip must be within (0, 90]; got %g", o.Dip)
	}
	return
}

// IsPoint tells whether the patch is a point source
func (o *Patch) IsPoint() bool {
	return len(o.Potency) > 0
}

// L returns the along-strike length [km]
func (o *Patch) L() float64 {
	return geo.StrikeLength(o.XStart, o.XFinish, o.YStart, o.YFinish)
}

// W returns the downdip width [km]
func (o *Patch) W() float64 {
	return geo.DowndipWidth(o.Top, o.Bottom, o.Dip)
}

// Center returns the x-y-z coordinates of the centre of the patch. The
// map-view point sits halfway along the updip edge, displaced half the
// horizontal downdip reach in the strike+90 direction; z is the mid depth
func (o *Patch) Center() []float64 {
	cz := (o.Top + o.Bottom) / 2.0
	ux := (o.XStart + o.XFinish) / 2.0
	uy := (o.YStart + o.YFinish) / 2.0
	mag := o.W() * math.Cos(o.Dip*math.Pi/180.0) / 2.0
	cx, cy := geo.AddVec(ux, uy, mag, o.Strike+90.0)
	return []float64{cx, cy, cz}
}

// Corners returns the map-view corners of the patch as a closed polygon with
// five points: the updip edge first, then the downdip edge, then back to the
// first corner
func (o *Patch) Corners() (x, y []float64) {
	mag := o.W() * math.Cos(o.Dip*math.Pi/180.0)
	dx0, dy0 := geo.AddVec(o.XStart, o.YStart, mag, o.Strike+90.0)
	dx1, dy1 := geo.AddVec(o.XFinish, o.YFinish, mag, o.Strike+90.0)
	x = []float64{o.XStart, o.XFinish, dx1, dx0, o.XStart}
	y = []float64{o.YStart, o.YFinish, dy1, dy0, o.YStart}
	return
}

// CornersLonLat returns the closed corner polygon in geographic coordinates
func (o *Patch) CornersLonLat() (lons, lats []float64) {
	x, y := o.Corners()
	lons = make([]float64, len(x))
	lats = make([]float64, len(y))
	for i := 0; i < len(x); i++ {
		lons[i], lats[i] = geo.XY2LonLat(x[i], y[i], o.ZeroLon, o.ZeroLat)
	}
	return
}

// WithSlip returns a copy of the patch carrying the given slip components
// instead of the original ones. The copy is a finite source
func (o Patch) WithSlip(rtlat, reverse, tensile float64) Patch {
	o.Rtlat = rtlat
	o.Reverse = reverse
	o.Tensile = tensile
	o.Potency = nil
	return o
}

// Moment computes the seismic moment m0 [N m] and the moment magnitude mw of
// a finite patch with shear modulus mu [Pa]. Point sources have no area and
// cause an error
func (o *Patch) Moment(mu float64) (m0, mw float64, err error) {
	if o.IsPoint() {
		err = chk.Err("fault: cannot compute the moment of a point-source patch")
		return
	}
	area := o.L() * o.W() * 1e6 // [m²]
	slip := geo.TotalSlip(o.Rtlat, o.Reverse)
	m0 = mu * area * slip
	mw = 2.0/3.0*math.Log10(m0) - 6.06
	return
}
