// Copyright 2016 The Gocoulomb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msolid implements the linear elastic constitutive behaviour of the
// half-space and the resolution of stress tensors onto fault planes
package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// LinElast holds the parameters of the isotropic linear elastic medium.
// Alpha and Nu are derived during Init and the structure is read-only
// afterwards; methods can therefore be called concurrently.
type LinElast struct {

	// parameters
	Mu  float64 // shear modulus [Pa]
	Lam float64 // Lamé's first parameter [Pa]
	B   float64 // Skempton's coefficient

	// derived
	Alpha float64 // medium constant (λ+μ)/(λ+2μ)
	Nu    float64 // Poisson's ratio λ/(2(λ+μ))
}

// Init initialises the medium with parameters such as "mu", "lame1" and "B"
func (o *LinElast) Init(prms fun.Prms) (err error) {
	for _, p := range prms {
		switch p.N {
		case "mu":
			o.Mu = p.V
		case "lame1":
			o.Lam = p.V
		case "B":
			o.B = p.V
		default:
			return chk.Err("linelast: parameter named %q is invalid", p.N)
		}
	}
	if o.Mu <= 0 {
		return chk.Err("linelast: shear modulus mu=%g must be positive", o.Mu)
	}
	if o.Lam+2.0*o.Mu <= 0 || o.Lam+o.Mu <= 0 {
		return chk.Err("linelast: Lamé parameters mu=%g and lame1=%g are invalid", o.Mu, o.Lam)
	}
	if o.B < 0 || o.B > 1 {
		return chk.Err("linelast: Skempton's coefficient B=%g must be within [0,1]", o.B)
	}
	o.Alpha = (o.Lam + o.Mu) / (o.Lam + 2.0*o.Mu)
	o.Nu = o.Lam / (2.0 * (o.Lam + o.Mu))
	return
}

// GetPrms gets (an example of) parameters: a crustal medium with ν = 0.25
func (o LinElast) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "mu", V: 30e9},
		&fun.Prm{N: "lame1", V: 30e9},
		&fun.Prm{N: "B", V: 0},
	}
}
