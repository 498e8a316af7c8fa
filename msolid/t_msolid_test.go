// Copyright 2016 The Gocoulomb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/la"
)

func Test_lin01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lin01. linear elastic medium")

	var mdl LinElast
	err := mdl.Init(mdl.GetPrms())
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "μ    ", 1e-15, mdl.Mu, 30e9)
	chk.Scalar(tst, "λ    ", 1e-15, mdl.Lam, 30e9)
	chk.Scalar(tst, "α    ", 1e-15, mdl.Alpha, 2.0/3.0)
	chk.Scalar(tst, "ν    ", 1e-15, mdl.Nu, 0.25)

	// poisson solid with B > 0
	var wet LinElast
	err = wet.Init([]*fun.Prm{
		&fun.Prm{N: "mu", V: 30e9},
		&fun.Prm{N: "lame1", V: 30e9},
		&fun.Prm{N: "B", V: 0.5},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "B", 1e-15, wet.B, 0.5)

	// invalid parameters must be rejected
	var bad LinElast
	if bad.Init([]*fun.Prm{&fun.Prm{N: "kx", V: 1}}) == nil {
		tst.Errorf("Init must fail with unknown parameter\n")
		return
	}
	if bad.Init([]*fun.Prm{&fun.Prm{N: "mu", V: -1}}) == nil {
		tst.Errorf("Init must fail with negative mu\n")
		return
	}
	if bad.Init([]*fun.Prm{&fun.Prm{N: "mu", V: 30e9}, &fun.Prm{N: "B", V: 2}}) == nil {
		tst.Errorf("Init must fail with B out of range\n")
		return
	}
}

func Test_tensors01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tensors01. strain and stress tensors")

	// strain from an arbitrary displacement gradient
	G := [][]float64{
		{1e-6, 8e-6, -3e-6},
		{2e-6, -5e-6, 4e-6},
		{7e-6, 0, 6e-6},
	}
	ε := StrainTensor(G)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			chk.Scalar(tst, "εij = εji", 1e-17, ε[i][j], ε[j][i])
		}
	}
	chk.Matrix(tst, "ε", 1e-12, ε, [][]float64{
		{1e-6, 5e-6, 2e-6},
		{5e-6, -5e-6, 2e-6},
		{2e-6, 2e-6, 6e-6},
	})

	// isotropic linear elastic stress
	lam, mu := 2e9, 1e9
	ε = [][]float64{
		{1e-6, 4e-6, 5e-6},
		{4e-6, 2e-6, 6e-6},
		{5e-6, 6e-6, 3e-6},
	}
	σ := StressTensor(ε, lam, mu)
	chk.Matrix(tst, "σ", 1e-8, σ, [][]float64{
		{14000, 8000, 10000},
		{8000, 16000, 12000},
		{10000, 12000, 18000},
	})
	chk.Scalar(tst, "tr(σ)", 1e-8, Tr(σ), 48000)

	// method form
	var mdl LinElast
	err := mdl.Init([]*fun.Prm{
		&fun.Prm{N: "mu", V: mu},
		&fun.Prm{N: "lame1", V: lam},
		&fun.Prm{N: "B", V: 0},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Matrix(tst, "σ (model)", 1e-8, mdl.Stress(ε), σ)
}

func Test_coulomb01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("coulomb01. resolution of stress onto receiver planes")

	// left-lateral shear on a north-striking vertical fault:
	// positive shear stress in the rake direction, no normal stress
	τ := la.MatAlloc(3, 3)
	τ[0][1], τ[1][0] = 1e6, 1e6
	σn, τr, cfs := Coulomb(τ, 0, 90, 0, 0.4, 0)
	chk.Scalar(tst, "σn ", 1e-9, σn, 0)
	chk.Scalar(tst, "τr ", 1e-9, τr, 1000)
	chk.Scalar(tst, "cfs", 1e-9, cfs, 1000)

	// the same stress discourages right-lateral slip
	_, τr, cfs = Coulomb(τ, 0, 90, 180, 0.4, 0)
	chk.Scalar(tst, "τr  rev", 1e-9, τr, -1000)
	chk.Scalar(tst, "cfs rev", 1e-9, cfs, -1000)

	// isotropic compression clamps any receiver: negative effective normal
	// stress, no shear, coulomb = friction * normal
	P, friction, B := 10e6, 0.4, 0.5
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			τ[i][j] = 0
		}
		τ[i][i] = -P
	}
	σn, τr, cfs = Coulomb(τ, 37, 55, 120, friction, B)
	chk.Scalar(tst, "σn  compression", 1e-6, σn, -P*(1.0-B)/1000.0)
	chk.Scalar(tst, "τr  compression", 1e-6, τr, 0)
	chk.Scalar(tst, "cfs compression", 1e-6, cfs, friction*σn)

	// isotropic extension unclamps
	for i := 0; i < 3; i++ {
		τ[i][i] = P
	}
	σn, _, cfs = Coulomb(τ, 37, 55, 120, friction, B)
	chk.Scalar(tst, "σn  extension", 1e-6, σn, P*(1.0-B)/1000.0)
	chk.Scalar(tst, "cfs extension", 1e-6, cfs, friction*σn)
}
