// Copyright 2016 The Gocoulomb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import "math"

// KmPerDeg is the flat-Earth length of one degree of latitude
const KmPerDeg = 111.0

// LonLat2XY projects geographic coordinates onto a flat-Earth Cartesian plane
// centred at (lon0, lat0). x points east and y north, both in km. Longitudes
// are scaled by the cosine of the reference latitude.
func LonLat2XY(lon, lat, lon0, lat0 float64) (x, y float64) {
	x = (lon - lon0) * KmPerDeg * math.Cos(lat0*math.Pi/180.0)
	y = (lat - lat0) * KmPerDeg
	return
}

// XY2LonLat is the inverse flat-Earth projection; x and y in km
func XY2LonLat(x, y, lon0, lat0 float64) (lon, lat float64) {
	lon = lon0 + x/(KmPerDeg*math.Cos(lat0*math.Pi/180.0))
	lat = lat0 + y/KmPerDeg
	return
}
