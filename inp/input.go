// Copyright 2016 The Gocoulomb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"math"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gocoulomb/fault"
)

// Region holds the grid extents, the geographic window and the frictional
// property of the receivers
type Region struct {
	StartX   float64 `json:"startx"`   // western edge of the cartesian grid [km]
	FinishX  float64 `json:"finishx"`  // eastern edge of the cartesian grid [km]
	StartY   float64 `json:"starty"`   // southern edge of the cartesian grid [km]
	FinishY  float64 `json:"finishy"`  // northern edge of the cartesian grid [km]
	XInc     float64 `json:"xinc"`     // grid spacing along x [km]
	YInc     float64 `json:"yinc"`     // grid spacing along y [km]
	MinLon   float64 `json:"minlon"`   // western edge of the geographic window [deg]
	MaxLon   float64 `json:"maxlon"`   // eastern edge of the geographic window [deg]
	MinLat   float64 `json:"minlat"`   // southern edge of the geographic window [deg]
	MaxLat   float64 `json:"maxlat"`   // northern edge of the geographic window [deg]
	ZeroLon  float64 `json:"zerolon"`  // longitude of the cartesian origin [deg]
	ZeroLat  float64 `json:"zerolat"`  // latitude of the cartesian origin [deg]
	Depth    float64 `json:"depth"`    // reference computation depth [km]
	Friction float64 `json:"friction"` // coefficient of friction on receiver planes
}

// Input holds all data defining one stress computation. Faults may be given
// directly as cartesian patches or as geographic segments; segments are
// converted into patches while reading
type Input struct {

	// input
	Params           Params           `json:"params"`           // computation parameters
	Region           Region           `json:"region"`           // grid and geographic extents
	Sources          []*fault.Patch   `json:"sources"`          // slipping faults
	Receivers        []*fault.Patch   `json:"receivers"`        // faults receiving stress
	SourceSegments   []*fault.Segment `json:"sourcesegments"`   // sources in segment format
	ReceiverSegments []*fault.Segment `json:"receiversegments"` // receivers in segment format

	// derived
	Key string `json:"-"` // input filename key; e.g. mycalc.json => mycalc
}

// Read reads an input file, converts segment records into patches, applies
// the default values and validates the result
func Read(simfilepath string) (o *Input, prm *Params, err error) {

	// read file
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		err = chk.Err("inp: cannot read input file %q", simfilepath)
		return
	}

	// defaults and decoding
	o = new(Input)
	o.Params.SetDefault()
	if err = json.Unmarshal(b, o); err != nil {
		err = chk.Err("inp: cannot unmarshal input file %q:\n%v", simfilepath, err)
		return
	}
	o.Key = io.FnKey(filepath.Base(simfilepath))

	// derived parameters
	if err = o.Params.Derive(); err != nil {
		return
	}

	// segment records become patches in the region coordinate system
	var p *fault.Patch
	for i, s := range o.SourceSegments {
		if p, err = s.ToPatch(o.Region.ZeroLon, o.Region.ZeroLat); err != nil {
			err = chk.Err("inp: source segment %d is invalid:\n%v", i, err)
			return
		}
		o.Sources = append(o.Sources, p)
	}
	for i, s := range o.ReceiverSegments {
		if p, err = s.ToPatch(o.Region.ZeroLon, o.Region.ZeroLat); err != nil {
			err = chk.Err("inp: receiver segment %d is invalid:\n%v", i, err)
			return
		}
		o.Receivers = append(o.Receivers, p)
	}

	// all patches share the region origin and receivers may get a fixed rake
	for _, p := range o.Sources {
		p.ZeroLon, p.ZeroLat = o.Region.ZeroLon, o.Region.ZeroLat
	}
	for _, p := range o.Receivers {
		p.ZeroLon, p.ZeroLat = o.Region.ZeroLon, o.Region.ZeroLat
		if !math.IsNaN(o.Params.FixedRake) {
			p.Rake = o.Params.FixedRake
		}
	}

	// validation
	if err = o.check(); err != nil {
		return
	}
	prm = &o.Params
	return
}

// check validates the region and every fault
func (o *Input) check() (err error) {
	if o.Region.FinishX > o.Region.StartX && o.Region.XInc <= 0 {
		return chk.Err("inp: xinc must be positive for a grid spanning x = [%g, %g]", o.Region.StartX, o.Region.FinishX)
	}
	if o.Region.FinishY > o.Region.StartY && o.Region.YInc <= 0 {
		return chk.Err("inp: yinc must be positive for a grid spanning y = [%g, %g]", o.Region.StartY, o.Region.FinishY)
	}
	if o.Region.Friction < 0 {
		return chk.Err("inp: friction coefficient must be non-negative; got %g", o.Region.Friction)
	}
	for i, p := range o.Sources {
		if err = p.Check(); err != nil {
			return chk.Err("inp: source %d is invalid:\n%v", i, err)
		}
	}
	for i, p := range o.Receivers {
		if err = p.Check(); err != nil {
			return chk.Err("inp: receiver %d is invalid:\n%v", i, err)
		}
	}
	return
}
