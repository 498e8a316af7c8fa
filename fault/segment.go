// Copyright 2016 The Gocoulomb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fault

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gocoulomb/geo"
)

// Segment describes one rectangular fault in the geographic slip-distribution
// format: the position of the back top corner in lon/lat, the plane geometry,
// and the slip given as magnitude plus rake. Receiver segments carry Slip = 0
type Segment struct {
	Strike  float64 `json:"strike"`  // strike azimuth [deg, clockwise from north]
	Dip     float64 `json:"dip"`     // dip angle [deg]
	Length  float64 `json:"length"`  // along-strike length [km]
	Width   float64 `json:"width"`   // downdip width [km]
	Lon     float64 `json:"lon"`     // longitude of the back top corner [deg]
	Lat     float64 `json:"lat"`     // latitude of the back top corner [deg]
	Depth   float64 `json:"depth"`   // depth of the top edge [km, positive down]
	Rake    float64 `json:"rake"`    // rake angle [deg]
	Slip    float64 `json:"slip"`    // slip magnitude [m]
	Tensile float64 `json:"tensile"` // tensile opening [m]
	SegNum  int     `json:"segment"` // segment number within a multi-segment distribution
}

// ToPatch converts the segment into a cartesian patch with the given
// reference origin. The slip magnitude and rake are decomposed into
// right-lateral and reverse components and the bottom depth follows from the
// width and dip
func (o Segment) ToPatch(zeroLon, zeroLat float64) (p *Patch, err error) {
	if o.Length <= 0 || o.Width <= 0 {
		err = chk.Err("fault: segment needs positive length and width; got L=%g W=%g", o.Length, o.Width)
		return
	}
	if o.Dip <= 0 || o.Dip > 90 {
		err = chk.Err("fault: segment dip must be within (0, 90]; got %g", o.Dip)
		return
	}
	rtlat, dipslip := geo.RtlatDipSlip(o.Slip, o.Rake)
	top, bottom := geo.TopBottomFromTop(o.Depth, o.Width, o.Dip)
	x0, y0 := geo.LonLat2XY(o.Lon, o.Lat, zeroLon, zeroLat)
	x1, y1 := geo.AddVec(x0, y0, o.Length, o.Strike)
	p = &Patch{
		XStart:  x0,
		XFinish: x1,
		YStart:  y0,
		YFinish: y1,
		Top:     top,
		Bottom:  bottom,
		Strike:  o.Strike,
		Dip:     o.Dip,
		Rake:    o.Rake,
		Rtlat:   rtlat,
		Reverse: dipslip,
		Tensile: o.Tensile,
		ZeroLon: zeroLon,
		ZeroLat: zeroLat,
		Kode:    100,
	}
	return
}

// ToSegment converts a finite patch back into the geographic format. Point
// sources have no plane geometry and cause an error
func (o *Patch) ToSegment() (s Segment, err error) {
	if o.IsPoint() {
		err = chk.Err("fault: cannot convert a point-source patch into a segment")
		return
	}
	lon, lat := geo.XY2LonLat(o.XStart, o.YStart, o.ZeroLon, o.ZeroLat)
	s = Segment{
		Strike:  o.Strike,
		Dip:     o.Dip,
		Length:  o.L(),
		Width:   o.W(),
		Lon:     lon,
		Lat:     lat,
		Depth:   o.Top,
		Rake:    geo.Rake(-o.Rtlat, o.Reverse),
		Slip:    geo.TotalSlip(o.Rtlat, o.Reverse),
		Tensile: o.Tensile,
	}
	return
}

// CombineSegments adds the slip vectors of two segment lists with identical
// geometry, returning a new list. The slip components are summed and
// recomposed into magnitude and rake; tensile opening adds directly
func CombineSegments(a, b []*Segment) (res []*Segment, err error) {
	if len(a) != len(b) {
		err = chk.Err("fault: cannot combine segment lists with different lengths: %d != %d", len(a), len(b))
		return
	}
	res = make([]*Segment, len(a))
	for i, s1 := range a {
		s2 := b[i]
		ss1, ds1 := geo.RtlatDipSlip(s1.Slip, s1.Rake)
		ss2, ds2 := geo.RtlatDipSlip(s2.Slip, s2.Rake)
		ss := ss1 + ss2
		ds := ds1 + ds2
		news := *s1
		news.Slip = geo.TotalSlip(ss, ds)
		news.Rake = geo.Rake(-ss, ds)
		news.Tensile = s1.Tensile + s2.Tensile
		res[i] = &news
	}
	return
}

// ChangeSlip returns a new list with the slip magnitude of every segment set
// to slip and, optionally, the rake set to rake. Pass NaN to keep the
// original value of either quantity
func ChangeSlip(segs []*Segment, slip, rake float64) (res []*Segment) {
	res = make([]*Segment, len(segs))
	for i, s := range segs {
		news := *s
		if !math.IsNaN(slip) {
			news.Slip = slip
		}
		if !math.IsNaN(rake) {
			news.Rake = rake
		}
		res[i] = &news
	}
	return
}

// FilterByDepth selects the segments with top depth within [upper, lower] km
func FilterByDepth(segs []*Segment, upper, lower float64) (res []*Segment) {
	for _, s := range segs {
		if s.Depth >= upper && s.Depth <= lower {
			res = append(res, s)
		}
	}
	return
}

// FilterBySegment selects the segments belonging to one segment number
func FilterBySegment(segs []*Segment, segNum int) (res []*Segment) {
	for _, s := range segs {
		if s.SegNum == segNum {
			res = append(res, s)
		}
	}
	return
}

// NumSegments returns the number of distinct segment numbers and the total
// number of patches in a slip distribution
func NumSegments(segs []*Segment) (nsegments, npatches int) {
	seen := make(map[int]bool)
	for _, s := range segs {
		seen[s.SegNum] = true
	}
	return len(seen), len(segs)
}

// TotalMoment accumulates the seismic moment [N m] of a slip distribution
// with shear modulus mu [Pa]
func TotalMoment(segs []*Segment, mu float64) (m0 float64) {
	for _, s := range segs {
		area := s.Length * s.Width * 1e6 // [m²]
		m0 += mu * area * s.Slip
	}
	return
}
