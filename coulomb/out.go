// Copyright 2016 The Gocoulomb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coulomb

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gocoulomb/fault"
	"github.com/cpmech/gocoulomb/inp"
)

// Out gathers the results of one full stress computation
type Out struct {
	Grid           *GridOut         `json:"grid"`           // surface displacement grid
	DispPoints     []*inp.DispPoint `json:"disppoints"`     // modelled displacements at observation points
	Strains        [][][]float64    `json:"strains"`        // strain tensors at strain observation points
	ReceiverNormal []float64        `json:"receivernormal"` // effective normal stress changes [kPa]
	ReceiverShear  []float64        `json:"receivershear"`  // shear stress changes in the rake direction [kPa]
	ReceiverCfs    []float64        `json:"receivercfs"`    // Coulomb failure stress changes [kPa]
	ZeroLon        float64          `json:"zerolon"`        // longitude of the cartesian origin [deg]
	ZeroLat        float64          `json:"zerolat"`        // latitude of the cartesian origin [deg]
	Sources        []*fault.Patch   `json:"sources"`        // sources of the computation
	Receivers      []*fault.Patch   `json:"receivers"`      // receivers after splitting
}

// Run performs a full stress computation: receiver splitting, the surface
// displacement grid, the observation points and the receiver stresses
func Run(in *inp.Input, prm *inp.Params, dispPts, strainPts []*inp.DispPoint) (out *Out, err error) {

	io.Pf("beginning stress computation\n")
	io.Pf("number of sources:   %d\n", len(in.Sources))
	io.Pf("number of receivers: %d\n", len(in.Receivers))

	// receivers may be subdivided
	receivers := fault.Split(in.Receivers, prm.StrikeSplit, prm.DipSplit)
	if prm.StrikeSplit > 1 || prm.DipSplit > 1 {
		io.Pf("split %d receivers into %d subfaults\n", len(in.Receivers), len(receivers))
	}

	ev := &Evaluator{Medium: prm.Medium, Sources: in.Sources}
	out = &Out{
		ZeroLon:   in.Region.ZeroLon,
		ZeroLat:   in.Region.ZeroLat,
		Sources:   in.Sources,
		Receivers: receivers,
	}
	if out.Grid, err = ev.GridDef(&in.Region); err != nil {
		return nil, err
	}
	if out.DispPoints, err = ev.DispPoints(dispPts, &in.Region); err != nil {
		return nil, err
	}
	if out.Strains, err = ev.StrainPoints(strainPts, &in.Region); err != nil {
		return nil, err
	}
	out.ReceiverNormal, out.ReceiverShear, out.ReceiverCfs, err = ev.ReceiverStresses(receivers, in.Region.Friction)
	if err != nil {
		return nil, err
	}
	return
}

// WriteResults writes the results as an indented JSON file named
// fnkey-results.json within dirout, creating the directory if needed
func WriteResults(out *Out, dirout, fnkey string) (err error) {
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return chk.Err("coulomb: cannot encode results: %v", err)
	}
	io.WriteFileSD(dirout, fnkey+"-results.json", string(b))
	return
}
