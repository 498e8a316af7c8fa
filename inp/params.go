// Copyright 2016 The Gocoulomb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inp implements the input data read from a JSON input file:
// computation parameters, the grid region, source and receiver faults, and
// observation points
package inp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/gocoulomb/msolid"
)

// Params holds the parameters controlling one stress computation
type Params struct {

	// input
	Prms        fun.Prms `json:"prms"`        // elastic medium parameters: "mu", "lame1" and "B"
	StrikeSplit int      `json:"strikesplit"` // number of receiver subdivisions along strike
	DipSplit    int      `json:"dipsplit"`    // number of receiver subdivisions along dip
	FixedRake   float64  `json:"fixedrake"`   // rake imposed on all receivers; NaN keeps their own
	DirOut      string   `json:"dirout"`      // directory for output files

	// derived
	Medium msolid.LinElast `json:"-"` // elastic medium with derived alpha and nu
}

// SetDefault sets default values before reading the input file
func (o *Params) SetDefault() {
	o.StrikeSplit = 1
	o.DipSplit = 1
	o.FixedRake = math.NaN()
}

// Derive initialises the elastic medium from the parameters and validates the
// splitting counts. An empty parameter set falls back to the example medium
func (o *Params) Derive() (err error) {
	if len(o.Prms) == 0 {
		o.Prms = o.Medium.GetPrms()
	}
	if err = o.Medium.Init(o.Prms); err != nil {
		return
	}
	if o.StrikeSplit < 1 || o.DipSplit < 1 {
		return chk.Err("inp: receiver splitting counts must be at least 1; got strike=%d dip=%d", o.StrikeSplit, o.DipSplit)
	}
	if o.DirOut == "" {
		o.DirOut = "/tmp/gocoulomb"
	}
	return
}
