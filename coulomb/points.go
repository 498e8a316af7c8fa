// Copyright 2016 The Gocoulomb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coulomb

import (
	"github.com/cpmech/gocoulomb/fault"
	"github.com/cpmech/gocoulomb/geo"
	"github.com/cpmech/gocoulomb/inp"
	"github.com/cpmech/gocoulomb/msolid"
)

// DispPoints computes the modelled surface displacements at geographic
// observation points. Each result carries the name and coordinates of the
// original point with the summed displacement components
func (o *Evaluator) DispPoints(pts []*inp.DispPoint, region *inp.Region) (res []*inp.DispPoint, err error) {
	res = make([]*inp.DispPoint, len(pts))
	for k, p := range pts {
		x, y := geo.LonLat2XY(p.Lon, p.Lat, region.ZeroLon, region.ZeroLat)
		u, _, e := o.DispAt(x, y, 0)
		if e != nil {
			return nil, e
		}
		res[k] = &inp.DispPoint{Name: p.Name, Lon: p.Lon, Lat: p.Lat, DE: u[0], DN: u[1], DU: u[2]}
	}
	return
}

// StrainPoints computes the summed strain tensor at geographic observation
// points, at the surface
func (o *Evaluator) StrainPoints(pts []*inp.DispPoint, region *inp.Region) (res [][][]float64, err error) {
	if len(pts) == 0 {
		return
	}
	res = make([][][]float64, len(pts))
	for k, p := range pts {
		x, y := geo.LonLat2XY(p.Lon, p.Lat, region.ZeroLon, region.ZeroLat)
		_, ε, e := o.DispAt(x, y, 0)
		if e != nil {
			return nil, e
		}
		res[k] = ε
	}
	return
}

// ReceiverStresses resolves the stress change at the centre of every receiver
// onto its plane. The strain contributions of all sources are summed first
// and converted into one stress tensor, which is resolved once per receiver.
// Returns the effective normal, shear and Coulomb stress changes [kPa] in the
// receiver order; no receivers give empty results
func (o *Evaluator) ReceiverStresses(receivers []*fault.Patch, friction float64) (normal, shear, cfs []float64, err error) {
	normal = make([]float64, len(receivers))
	shear = make([]float64, len(receivers))
	cfs = make([]float64, len(receivers))
	for k, rec := range receivers {
		c := rec.Center()
		_, ε, e := o.DispAt(c[0], c[1], c[2])
		if e != nil {
			return nil, nil, nil, e
		}
		σ := msolid.StressTensor(ε, o.Medium.Lam, o.Medium.Mu)
		normal[k], shear[k], cfs[k] = msolid.Coulomb(σ, rec.Strike, rec.Dip, rec.Rake, friction, o.Medium.B)
	}
	return
}
