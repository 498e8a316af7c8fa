// Copyright 2016 The Gocoulomb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coulomb

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/gocoulomb/ana"
	"github.com/cpmech/gocoulomb/fault"
	"github.com/cpmech/gocoulomb/msolid"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_eval01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eval01. finite source with strike 90")

	var med msolid.LinElast
	err := med.Init(med.GetPrms())
	if err != nil {
		tst.Errorf("medium initialisation failed: %v\n", err)
		return
	}

	// east-striking fault: the fault-aligned frame coincides with the
	// ambient one and the solver results must come through unchanged
	src := &fault.Patch{
		XFinish: 4, Top: 1, Bottom: 3, Strike: 90, Dip: 70,
		Rtlat: 1.2, Reverse: -0.3, Tensile: 0.1,
	}
	ev := &Evaluator{Medium: med, Sources: []*fault.Patch{src}}
	gradU, u, err := ev.EvalSource(src, 3, 2, 0)
	if err != nil {
		tst.Errorf("EvalSource failed: %v\n", err)
		return
	}
	io.Pforan("u = %v\n", u)

	// direct solver call in the fault frame
	disl := []float64{-src.Rtlat, src.Reverse, src.Tensile}
	ul, gl, err := ana.RectSource(med.Alpha, 3, 2, 0, src.Top, src.Dip, 0, src.L(), -src.W(), 0, disl)
	if err != nil {
		tst.Errorf("RectSource failed: %v\n", err)
		return
	}
	gl3 := la.MatAlloc(3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			gl3[i][j] = gl[i][j] * 1e-3
		}
	}
	chk.Vector(tst, "u     (direct)", 1e-17, u, ul)
	chk.Matrix(tst, "gradU (direct)", 1e-17, gradU, gl3)

	chk.Vector(tst, "u", 1e-10, u, []float64{0.04989227672647312, 0.06466994656102598, 0.03318241109784639})
	chk.Matrix(tst, "gradU", 1e-14, gradU, [][]float64{
		{5.904295588586363e-06, -1.251908099200006e-05, -3.7479734184742985e-06},
		{1.7317387156633216e-05, -1.8912895575365004e-06, 1.4411098286917182e-05},
		{3.747973418474287e-06, -1.4411098286917176e-05, -1.3376686770166356e-06},
	})

	// buried station
	gradU, u, err = ev.EvalSource(src, -1, -2, 1.5)
	if err != nil {
		tst.Errorf("EvalSource failed: %v\n", err)
		return
	}
	chk.Vector(tst, "u (buried)", 1e-10, u, []float64{-0.08425050065575679, -0.07728526207355407, 0.029545333596381743})
	chk.Matrix(tst, "gradU (buried)", 1e-14, gradU, [][]float64{
		{-3.2553311786463155e-05, -2.3117402325984914e-05, 4.414923895777738e-06},
		{-4.1218158560017943e-05, -1.0513151805311667e-05, 8.325139302422766e-06},
		{1.2442666792719864e-05, 1.2925906957100294e-05, 2.13505900875348e-05},
	})
}

func Test_eval02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eval02. rotated finite source and point source")

	var med msolid.LinElast
	err := med.Init(med.GetPrms())
	if err != nil {
		tst.Errorf("medium initialisation failed: %v\n", err)
		return
	}

	// northeast-striking thrust-and-strike-slip fault; the updip edge runs
	// 5 km along azimuth 30
	fin := &fault.Patch{
		XStart: -1, XFinish: 1.4999999999999996,
		YStart: 2, YFinish: 6.330127018922194,
		Top: 2, Bottom: 4, Strike: 30, Dip: 55,
		Rtlat: 0.8, Reverse: 0.4,
	}
	chk.Scalar(tst, "L", 1e-14, fin.L(), 5.0)
	ev := &Evaluator{Medium: med, Sources: []*fault.Patch{fin}}

	gradU, u, err := ev.EvalSource(fin, 2, 1, 0)
	if err != nil {
		tst.Errorf("EvalSource failed: %v\n", err)
		return
	}
	io.Pforan("u = %v\n", u)
	chk.Vector(tst, "u", 1e-10, u, []float64{0.01810846267477958, -0.06265775731466669, 0.05450802401552915})
	chk.Matrix(tst, "gradU", 1e-14, gradU, [][]float64{
		{-1.2852964367054808e-06, -1.9887972844992673e-06, 2.9092822351043366e-05},
		{2.232195698086056e-05, 1.1945632430257152e-06, -1.091494936997709e-05},
		{-2.9092822351043366e-05, 1.0914949369977076e-05, 3.024439789324051e-08},
	})

	// the free surface leaves the vertical shear components antisymmetric
	chk.Scalar(tst, "g02 = -g20", 1e-17, gradU[0][2], -gradU[2][0])
	chk.Scalar(tst, "g12 = -g21", 1e-16, gradU[1][2], -gradU[2][1])

	gradU, u, err = ev.EvalSource(fin, -3, 4, 2)
	if err != nil {
		tst.Errorf("EvalSource failed: %v\n", err)
		return
	}
	chk.Vector(tst, "u (buried)", 1e-10, u, []float64{0.052353952023124345, -0.002843802705063722, -0.005689884997353178})
	chk.Matrix(tst, "gradU (buried)", 1e-14, gradU, [][]float64{
		{1.5715734142093052e-05, -1.0966332257651855e-05, -1.2521398770780314e-05},
		{-1.2504560949288266e-06, -2.9672788904521314e-07, -9.015703612868506e-07},
		{3.728706958937848e-07, -2.269815445012939e-06, -7.611847822569516e-06},
	})

	// point source described by potency
	pnt := &fault.Patch{
		XStart: 1, XFinish: 1, YStart: -2, YFinish: -2,
		Top: 3, Bottom: 3, Strike: 210, Dip: 40,
		Potency: []float64{2.5, -1, 0.5, 0.3},
	}
	ev = &Evaluator{Medium: med, Sources: []*fault.Patch{pnt}}

	gradU, u, err = ev.EvalSource(pnt, 4, -1, 0)
	if err != nil {
		tst.Errorf("EvalSource failed: %v\n", err)
		return
	}
	chk.Vector(tst, "u (point)", 1e-17, u, []float64{-6.952109085165452e-09, -3.3132195808420927e-09, -9.472459385292138e-09})
	chk.Matrix(tst, "gradU (point)", 1e-20, gradU, [][]float64{
		{5.795930447714785e-12, -1.7898572927192407e-12, -8.572977967329415e-12},
		{3.1221675429003803e-12, -4.017991668173617e-12, 1.4401987927804597e-12},
		{8.572977967329415e-12, -1.4401987927804605e-12, -5.926462598470561e-13},
	})

	gradU, u, err = ev.EvalSource(pnt, 0, 1, 2.5)
	if err != nil {
		tst.Errorf("EvalSource failed: %v\n", err)
		return
	}
	chk.Vector(tst, "u (point, buried)", 1e-17, u, []float64{-1.7615422395092107e-09, -1.3470789391487798e-08, -5.540201989885547e-09})
	chk.Matrix(tst, "gradU (point, buried)", 1e-20, gradU, [][]float64{
		{1.3962603567526366e-12, 1.0404175852648586e-12, -3.853316356272587e-13},
		{-8.316393521753205e-12, 5.617129539148156e-12, -2.82697099576831e-12},
		{-5.199177747504855e-12, 1.8729690449644755e-12, -4.165890626982612e-12},
	})
}

func Test_eval03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eval03. superposition over sources")

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
	ev := &Evaluator{Medium: med, Sources: []*fault.Patch{fin, pnt}}

	u, ε, err := ev.DispAt(5, 2, 0)
	if err != nil {
		tst.Errorf("DispAt failed: %v\n", err)
		return
	}
	io.Pforan("u = %v\n", u)
	chk.Vector(tst, "u", 1e-10, u, []float64{0.05174055180425266, 0.05636696031314688, 0.02103974273310574})

	// the sum must equal the per-source contributions added by hand
	g1, u1, err := ev.EvalSource(fin, 5, 2, 0)
	if err != nil {
		tst.Errorf("EvalSource failed: %v\n", err)
		return
	}
	g2, u2, err := ev.EvalSource(pnt, 5, 2, 0)
	if err != nil {
		tst.Errorf("EvalSource failed: %v\n", err)
		return
	}
	ε1 := msolid.StrainTensor(g1)
	ε2 := msolid.StrainTensor(g2)
	for i := 0; i < 3; i++ {
		chk.Scalar(tst, "u sum", 1e-17, u[i], u1[i]+u2[i])
		for j := 0; j < 3; j++ {
			chk.Scalar(tst, "ε sum", 1e-17, ε[i][j], ε1[i][j]+ε2[i][j])
		}
	}

	// strain stays symmetric through the summation
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			chk.Scalar(tst, "εij = εji", 1e-17, ε[i][j], ε[j][i])
		}
	}

	// stations on the edges of a surface-breaking fault are singular
	brk := &fault.Patch{XFinish: 10, Top: 0, Bottom: 10, Strike: 90, Dip: 90, Rtlat: 1}
	ev = &Evaluator{Medium: med, Sources: []*fault.Patch{brk}}
	_, _, err = ev.DispAt(0, 0, 0)
	if err == nil {
		tst.Errorf("DispAt must fail on the edge of a surface-breaking fault\n")
		return
	}
	io.Pf("%v\n", err)
}
