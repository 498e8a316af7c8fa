// Copyright 2016 The Gocoulomb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gocoulomb/coulomb"
	"github.com/cpmech/gocoulomb/fault"
	"github.com/cpmech/gocoulomb/geo"
	"github.com/cpmech/gocoulomb/inp"
	"github.com/cpmech/gocoulomb/msolid"
	"github.com/cpmech/gocoulomb/tests"
)

func Test_scenario01(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("scenario01. split receivers beside a strike-slip rupture")

	// read input
	in, prm, err := inp.Read("data/scenario.json")
	if err != nil {
		tst.Errorf("cannot read input file:\n%v", err)
		return
	}
	chk.IntAssert(len(in.Sources), 1)
	chk.IntAssert(len(in.Receivers), 1)

	// run full computation
	out, err := coulomb.Run(in, prm, nil, nil)
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}

	// the receiver was divided 2 along strike and 3 downdip
	chk.IntAssert(len(out.Receivers), 6)
	chk.IntAssert(len(out.ReceiverNormal), 6)
	chk.IntAssert(len(out.ReceiverShear), 6)
	chk.IntAssert(len(out.ReceiverCfs), 6)

	// the subfaults tile the parent plane
	chk.Scalar(tst, "area", 1e-12, tests.Area(out.Receivers), tests.Area(in.Receivers))

	// three rows of two subfaults, starting at the parent top edge
	zbot := 1.0 + 5.0*math.Sin(60.0*math.Pi/180.0)
	dz := (zbot - 1.0) / 3.0
	tops := tests.Tops(out.Receivers)
	chk.Vector(tst, "tops", 1e-13, tops, []float64{1, 1, 1 + dz, 1 + dz, 1 + 2*dz, 1 + 2*dz})

	// the receiver straddles the rupture midline: its south column (even
	// indices) is clamped and the north column unclamped, while the shallow
	// row feels the drop in right-lateral loading as positive left-lateral
	// shear
	io.Pforan("normal = %v\n", out.ReceiverNormal)
	io.Pforan("shear  = %v\n", out.ReceiverShear)
	chk.Vector(tst, "normal", 1e-6, out.ReceiverNormal, []float64{
		-414.30461194983036, 416.48252658800232,
		-431.11897471744072, 433.0502470747752,
		-368.71096012889188, 370.22328913662892,
	})
	chk.Vector(tst, "shear", 1e-6, out.ReceiverShear, []float64{
		81.459686962417294, 80.961250390633083,
		-17.053582141919883, -17.068018081463649,
		-71.066705770769985, -70.858125922372423,
	})
	for k, shear := range out.ReceiverShear {
		chk.Scalar(tst, "cfs identity", 1e-13, out.ReceiverCfs[k], shear+in.Region.Friction*out.ReceiverNormal[k])
	}
}

func Test_scenario02(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("scenario02. far-field decay of a point source")

	// medium with alpha = 0.8
	var med msolid.LinElast
	err := med.Init([]*fun.Prm{
		&fun.Prm{N: "mu", V: 30e9},
		&fun.Prm{N: "lame1", V: 90e9},
		&fun.Prm{N: "B", V: 0},
	})
	if err != nil {
		tst.Errorf("medium initialisation failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "alpha", 1e-15, med.Alpha, 0.8)

	// shallow point source
	src := &fault.Patch{
		XStart: 0, XFinish: 0, YStart: 0, YFinish: 0,
		Top: 2, Bottom: 2, Strike: 90, Dip: 80,
		Potency: []float64{1e6, 2e5, 0, 0},
	}
	ev := &coulomb.Evaluator{Medium: med, Sources: []*fault.Patch{src}}

	// stations along one ray, doubling the distance each time
	d := 100.0 / math.Sqrt2
	var umag, emag [3]float64
	for k := 0; k < 3; k++ {
		u, ε, e := ev.DispAt(d, d, 0)
		if e != nil {
			tst.Errorf("DispAt failed: %v\n", e)
			return
		}
		umag[k] = geo.VecMag3(u)
		emag[k] = math.Abs(ε[0][0]) + math.Abs(ε[0][1]) + math.Abs(ε[1][1])
		d *= 2.0
	}
	io.Pforan("|u| = %v\n", umag)

	// displacements decay with the square and strains with the cube of the
	// distance; the smoke bounds leave room for the free-surface terms
	for k := 0; k < 2; k++ {
		ru := umag[k] / umag[k+1]
		re := emag[k] / emag[k+1]
		io.Pf("ru = %v, re = %v\n", ru, re)
		if ru < 3.0 || ru > 5.5 {
			tst.Errorf("displacement decay ratio %v is out of the far-field range\n", ru)
			return
		}
		if re < 6.0 || re > 11.0 {
			tst.Errorf("strain decay ratio %v is out of the far-field range\n", re)
			return
		}
	}
}

func Test_scenario03(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("scenario03. summed gradient against central differences")

	var med msolid.LinElast
	err := med.Init(med.GetPrms())
	if err != nil {
		tst.Errorf("medium initialisation failed: %v\n", err)
		return
	}
	fin := &fault.Patch{
		XFinish: 4, Top: 1, Bottom: 3, Strike: 90, Dip: 70,
		Rtlat: 1.2, Reverse: -0.3, Tensile: 0.1,
	}
	pnt := &fault.Patch{
		XStart: 1, XFinish: 1, YStart: -2, YFinish: -2,
		Top: 3, Bottom: 3, Strike: 210, Dip: 40,
		Potency: []float64{2.5, -1, 0.5, 0.3},
	}
	ev := &coulomb.Evaluator{Medium: med, Sources: []*fault.Patch{fin, pnt}}
	tests.GradU(tst, ev, 6, 3, 2, 1e-3, 1e-8)
}
