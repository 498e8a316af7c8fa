// Copyright 2016 The Gocoulomb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// fgeom holds the per-corner geometry quantities of the finite-source kernels.
// xi runs along strike, et downdip within the fault plane and q is the
// fault-normal coordinate. kxi and ket select the degenerate forms of the
// log-terms when the station lies on the negative prolongation of an edge
type fgeom struct {
	xi2, et2, q2           float64
	r, r2, r3, r5          float64
	y, d                   float64 // station coordinates rotated into the dip frame
	tt                     float64 // solid-angle term
	alx, ale               float64
	x11, y11, x32, y32     float64
	ey, ez, fy, fz         float64
	gy, gz, hy, hz         float64
}

func newFgeom(dc *dconsts, xi, et, q float64, kxi, ket int) (g fgeom) {
	g.xi2 = xi * xi
	g.et2 = et * et
	g.q2 = q * q
	g.r2 = g.xi2 + g.et2 + g.q2
	if g.r2 == 0 {
		return
	}
	g.r = math.Sqrt(g.r2)
	g.r3 = g.r * g.r2
	g.r5 = g.r3 * g.r2
	g.y = et*dc.cd + q*dc.sd
	g.d = et*dc.sd - q*dc.cd
	if q == 0 {
		g.tt = 0
	} else {
		g.tt = math.Atan(xi * et / (q * g.r))
	}
	if kxi == 1 {
		g.alx = -math.Log(g.r - xi)
		g.x11 = 0
		g.x32 = 0
	} else {
		rxi := g.r + xi
		g.alx = math.Log(rxi)
		g.x11 = 1 / (g.r * rxi)
		g.x32 = (g.r + rxi) * g.x11 * g.x11 / g.r
	}
	if ket == 1 {
		g.ale = -math.Log(g.r - et)
		g.y11 = 0
		g.y32 = 0
	} else {
		ret := g.r + et
		g.ale = math.Log(ret)
		g.y11 = 1 / (g.r * ret)
		g.y32 = (g.r + ret) * g.y11 * g.y11 / g.r
	}
	g.ey = dc.sd/g.r - g.y*q/g.r3
	g.ez = dc.cd/g.r + g.d*q/g.r3
	g.fy = g.d/g.r3 + g.xi2*g.y32*dc.sd
	g.fz = g.y/g.r3 + g.xi2*g.y32*dc.cd
	g.gy = 2*g.x11*dc.sd - g.y*q*g.x32
	g.gz = 2*g.x11*dc.cd + g.d*q*g.x32
	g.hy = g.d*q*g.x32 + xi*q*g.y32*dc.sd
	g.hz = g.y*q*g.x32 + xi*q*g.y32*dc.cd
	return
}

// ua computes the infinite-medium part of the finite-source solution at one
// corner. disl = {strike-slip, dip-slip, tensile}. Components u[1] and u[2]
// are given in the dip-rotated frame; the caller rotates them back
func ua(dc *dconsts, g *fgeom, xi, et, q float64, disl []float64) (u [12]float64) {
	var du [12]float64
	xy := xi * g.y11
	qx := q * g.x11
	qy := q * g.y11
	if disl[0] != 0 { // strike-slip
		du[0] = g.tt/2 + dc.alp2*xi*qy
		du[1] = dc.alp2 * q / g.r
		du[2] = dc.alp1*g.ale - dc.alp2*q*qy
		du[3] = -dc.alp1*qy - dc.alp2*g.xi2*q*g.y32
		du[4] = -dc.alp2 * xi * q / g.r3
		du[5] = dc.alp1*xy + dc.alp2*xi*g.q2*g.y32
		du[6] = dc.alp1*xy*dc.sd + dc.alp2*xi*g.fy + g.d/2*g.x11
		du[7] = dc.alp2 * g.ey
		du[8] = dc.alp1*(dc.cd/g.r+qy*dc.sd) - dc.alp2*q*g.fy
		du[9] = dc.alp1*xy*dc.cd + dc.alp2*xi*g.fz + g.y/2*g.x11
		du[10] = dc.alp2 * g.ez
		du[11] = -dc.alp1*(dc.sd/g.r-qy*dc.cd) - dc.alp2*q*g.fz
		for i := 0; i < 12; i++ {
			u[i] += disl[0] / pi2 * du[i]
		}
	}
	if disl[1] != 0 { // dip-slip
		du[0] = dc.alp2 * q / g.r
		du[1] = g.tt/2 + dc.alp2*et*qx
		du[2] = dc.alp1*g.alx - dc.alp2*q*qx
		du[3] = -dc.alp2 * xi * q / g.r3
		du[4] = -qy/2 - dc.alp2*et*q/g.r3
		du[5] = dc.alp1/g.r + dc.alp2*g.q2/g.r3
		du[6] = dc.alp2 * g.ey
		du[7] = dc.alp1*g.d*g.x11 + xy/2*dc.sd + dc.alp2*et*g.gy
		du[8] = dc.alp1*g.y*g.x11 - dc.alp2*q*g.gy
		du[9] = dc.alp2 * g.ez
		du[10] = dc.alp1*g.y*g.x11 + xy/2*dc.cd + dc.alp2*et*g.gz
		du[11] = -dc.alp1*g.d*g.x11 - dc.alp2*q*g.gz
		for i := 0; i < 12; i++ {
			u[i] += disl[1] / pi2 * du[i]
		}
	}
	if disl[2] != 0 { // tensile
		du[0] = -dc.alp1*g.ale - dc.alp2*q*qy
		du[1] = -dc.alp1*g.alx - dc.alp2*q*qx
		du[2] = g.tt/2 - dc.alp2*(et*qx+xi*qy)
		du[3] = -dc.alp1*xy + dc.alp2*xi*g.q2*g.y32
		du[4] = -dc.alp1/g.r + dc.alp2*g.q2/g.r3
		du[5] = -dc.alp1*qy - dc.alp2*q*g.q2*g.y32
		du[6] = -dc.alp1*(dc.cd/g.r+qy*dc.sd) - dc.alp2*q*g.fy
		du[7] = -dc.alp1*g.y*g.x11 - dc.alp2*q*g.gy
		du[8] = dc.alp1*(g.d*g.x11+xy*dc.sd) + dc.alp2*q*g.hy
		du[9] = dc.alp1*(dc.sd/g.r-qy*dc.cd) - dc.alp2*q*g.fz
		du[10] = dc.alp1*g.d*g.x11 - dc.alp2*q*g.gz
		du[11] = dc.alp1*(g.y*g.x11+xy*dc.cd) + dc.alp2*q*g.hz
		for i := 0; i < 12; i++ {
			u[i] += disl[2] / pi2 * du[i]
		}
	}
	return
}

// ub computes the surface-deformation related part of the finite-source
// solution at one corner, in the dip-rotated frame
func ub(dc *dconsts, g *fgeom, xi, et, q float64, disl []float64) (u [12]float64) {
	var du [12]float64
	rd := g.r + g.d
	d11 := 1 / (g.r * rd)
	aj2 := xi * g.y / rd * d11
	aj5 := -(g.d + g.y*g.y/rd) * d11
	var ai1, ai2, ai3, ai4, ak1, ak3, aj3, aj6 float64
	if dc.cd != 0 {
		if xi == 0 {
			ai4 = 0
		} else {
			x := math.Sqrt(g.xi2 + g.q2)
			ai4 = 1 / dc.cdcd * (xi/rd*dc.sdcd +
				2*math.Atan((et*(x+q*dc.cd)+x*(g.r+x)*dc.sd)/(xi*(g.r+x)*dc.cd)))
		}
		ai3 = (g.y*dc.cd/rd - g.ale + dc.sd*math.Log(rd)) / dc.cdcd
		ak1 = xi * (d11 - g.y11*dc.sd) / dc.cd
		ak3 = (q*g.y11 - g.y*d11) / dc.cd
		aj3 = (ak1 - aj2*dc.sd) / dc.cd
		aj6 = (ak3 - aj5*dc.sd) / dc.cd
	} else {
		rd2 := rd * rd
		ai3 = (et/rd + g.y*q/rd2 - g.ale) / 2
		ai4 = xi * g.y / rd2 / 2
		ak1 = xi * q / rd * d11
		ak3 = dc.sd / rd * (g.xi2*d11 - 1)
		aj3 = -xi / rd2 * (g.q2*d11 - 0.5)
		aj6 = -g.y / rd2 * (g.xi2*d11 - 0.5)
	}
	xy := xi * g.y11
	ai1 = -xi/rd*dc.cd - ai4*dc.sd
	ai2 = math.Log(rd) + ai3*dc.sd
	ak2 := 1/g.r + ak3*dc.sd
	ak4 := xy*dc.cd - ak1*dc.sd
	aj1 := aj5*dc.cd - aj6*dc.sd
	aj4 := -xy - aj2*dc.cd + aj3*dc.sd
	qx := q * g.x11
	qy := q * g.y11
	if disl[0] != 0 { // strike-slip
		du[0] = -xi*qy - g.tt - dc.alp3*ai1*dc.sd
		du[1] = -q/g.r + dc.alp3*g.y/rd*dc.sd
		du[2] = q*qy - dc.alp3*ai2*dc.sd
		du[3] = g.xi2*q*g.y32 - dc.alp3*aj1*dc.sd
		du[4] = xi*q/g.r3 - dc.alp3*aj2*dc.sd
		du[5] = -xi*g.q2*g.y32 - dc.alp3*aj3*dc.sd
		du[6] = -xi*g.fy - g.d*g.x11 + dc.alp3*(xy+aj4)*dc.sd
		du[7] = -g.ey + dc.alp3*(1/g.r+aj5)*dc.sd
		du[8] = q*g.fy - dc.alp3*(qy-aj6)*dc.sd
		du[9] = -xi*g.fz - g.y*g.x11 + dc.alp3*ak1*dc.sd
		du[10] = -g.ez + dc.alp3*g.y*d11*dc.sd
		du[11] = q*g.fz + dc.alp3*ak2*dc.sd
		for i := 0; i < 12; i++ {
			u[i] += disl[0] / pi2 * du[i]
		}
	}
	if disl[1] != 0 { // dip-slip
		du[0] = -q/g.r + dc.alp3*ai3*dc.sdcd
		du[1] = -et*qx - g.tt - dc.alp3*xi/rd*dc.sdcd
		du[2] = q*qx + dc.alp3*ai4*dc.sdcd
		du[3] = xi*q/g.r3 + dc.alp3*aj4*dc.sdcd
		du[4] = et*q/g.r3 + qy + dc.alp3*aj5*dc.sdcd
		du[5] = -g.q2/g.r3 + dc.alp3*aj6*dc.sdcd
		du[6] = -g.ey + dc.alp3*aj1*dc.sdcd
		du[7] = -et*g.gy - xy*dc.sd + dc.alp3*aj2*dc.sdcd
		du[8] = q*g.gy + dc.alp3*aj3*dc.sdcd
		du[9] = -g.ez - dc.alp3*ak3*dc.sdcd
		du[10] = -et*g.gz - xy*dc.cd - dc.alp3*xi*d11*dc.sdcd
		du[11] = q*g.gz - dc.alp3*ak4*dc.sdcd
		for i := 0; i < 12; i++ {
			u[i] += disl[1] / pi2 * du[i]
		}
	}
	if disl[2] != 0 { // tensile
		du[0] = q*qy - dc.alp3*ai3*dc.sdsd
		du[1] = q*qx + dc.alp3*xi/rd*dc.sdsd
		du[2] = et*qx + xi*qy - g.tt - dc.alp3*ai4*dc.sdsd
		du[3] = -xi*g.q2*g.y32 - dc.alp3*aj4*dc.sdsd
		du[4] = -g.q2/g.r3 - dc.alp3*aj5*dc.sdsd
		du[5] = q*g.q2*g.y32 - dc.alp3*aj6*dc.sdsd
		du[6] = q*g.fy - dc.alp3*aj1*dc.sdsd
		du[7] = q*g.gy - dc.alp3*aj2*dc.sdsd
		du[8] = -q*g.hy - dc.alp3*aj3*dc.sdsd
		du[9] = q*g.fz + dc.alp3*ak3*dc.sdsd
		du[10] = q*g.gz + dc.alp3*xi*d11*dc.sdsd
		du[11] = -q*g.hz + dc.alp3*ak4*dc.sdsd
		for i := 0; i < 12; i++ {
			u[i] += disl[2] / pi2 * du[i]
		}
	}
	return
}

// uc computes the depth-multiplied part of the finite-source solution at one
// corner, in the dip-rotated frame. z is the station depth coordinate
func uc(dc *dconsts, g *fgeom, xi, et, q, z float64, disl []float64) (u [12]float64) {
	var du [12]float64
	c := g.d + z
	x53 := (8*g.r2 + 9*g.r*xi + 3*g.xi2) * g.x11 * g.x11 * g.x11 / g.r2
	y53 := (8*g.r2 + 9*g.r*et + 3*g.et2) * g.y11 * g.y11 * g.y11 / g.r2
	h := q*dc.cd - z
	z32 := dc.sd/g.r3 - h*g.y32
	z53 := 3*dc.sd/g.r5 - h*y53
	y0 := g.y11 - g.xi2*g.y32
	z0 := z32 - g.xi2*z53
	ppy := dc.cd/g.r3 + q*g.y32*dc.sd
	ppz := dc.sd/g.r3 - q*g.y32*dc.cd
	qr := 3 * q / g.r5
	qy := q * g.y11
	xy := xi * g.y11

	// station derivatives of z32 along y and along depth
	dyz32 := -3*(c*dc.cd+q*dc.sdsd)/g.r5 - dc.sdcd*g.y32 + h*q*dc.sd*y53
	dzz32 := 3*dc.sd*(c-q*dc.cd)/g.r5 + dc.sdsd*g.y32 + h*q*dc.cd*y53

	if disl[0] != 0 { // strike-slip
		du[0] = dc.alp4*xy*dc.cd - dc.alp5*xi*q*z32
		du[1] = dc.alp4*(dc.cd/g.r+2*qy*dc.sd) - dc.alp5*c*q/g.r3
		du[2] = dc.alp4*qy*dc.cd - dc.alp5*(c*et/g.r3-z*g.y11+g.xi2*z32)
		du[3] = dc.alp4*y0*dc.cd - dc.alp5*q*z0
		du[4] = -dc.alp4*xi*(dc.cd/g.r3+2*q*g.y32*dc.sd) + dc.alp5*c*xi*qr
		du[5] = -dc.alp4*xi*q*g.y32*dc.cd + dc.alp5*xi*(3*c*et/g.r5-z*g.y32-z32-z0)
		du[6] = -dc.alp4*xi*ppy*dc.cd - dc.alp5*xi*(dc.sd*z32+q*dyz32)
		du[7] = dc.alp4*(2*dc.sd*(dc.sd*g.y11-q*ppy)-g.y*dc.cd/g.r3) - dc.alp5*c*(dc.sd/g.r3-3*g.y*q/g.r5)
		du[8] = dc.alp4*dc.cd*(dc.sd*g.y11-q*ppy) - dc.alp5*(c*(dc.cd/g.r3-3*et*g.y/g.r5)+z*ppy+g.xi2*dyz32)
		du[9] = dc.alp4*xi*ppz*dc.cd - dc.alp5*xi*(dc.cd*z32+q*dzz32)
		du[10] = dc.alp4*(dc.cd*g.d/g.r3+2*dc.sd*(dc.cd*g.y11+q*ppz)) - dc.alp5*c*(dc.cd/g.r3+3*g.d*q/g.r5)
		du[11] = dc.alp4*dc.cd*(dc.cd*g.y11+q*ppz) - dc.alp5*(c*(3*et*g.d/g.r5-dc.sd/g.r3)-g.y11-z*ppz+g.xi2*dzz32)
		for i := 0; i < 12; i++ {
			u[i] += disl[0] / pi2 * du[i]
		}
	}
	if disl[1] != 0 { // dip-slip
		du[0] = dc.alp4*dc.cd/g.r - qy*dc.sd - dc.alp5*c*q/g.r3
		du[1] = dc.alp4*g.y*g.x11 - dc.alp5*c*et*q*g.x32
		du[2] = -g.d*g.x11 - xy*dc.sd - dc.alp5*c*(g.x11-g.q2*g.x32)
		du[3] = -dc.alp4*xi*dc.cd/g.r3 + xi*q*g.y32*dc.sd + dc.alp5*c*xi*qr
		du[4] = -dc.alp4*g.y/g.r3 + dc.alp5*3*c*et*q/g.r5
		du[5] = g.d/g.r3 - y0*dc.sd + dc.alp5*c/g.r3*(1-3*g.q2/g.r2)
		du[6] = -dc.alp4*g.y*dc.cd/g.r3 - dc.sd*(dc.sd*g.y11-q*ppy) - dc.alp5*c*(dc.sd/g.r3-3*g.y*q/g.r5)
		du[7] = dc.alp4*(g.x11-g.y*g.y*g.x32) - dc.alp5*c*(q*dc.cd*g.x32+et*dc.sd*g.x32-et*q*g.y*x53)
		du[8] = g.d*g.y*g.x32 + xi*ppy*dc.sd + dc.alp5*c*(g.y*g.x32+2*q*dc.sd*g.x32-g.q2*g.y*x53)
		du[9] = dc.alp4*dc.cd*g.d/g.r3 - dc.sd*(dc.cd*g.y11+q*ppz) - dc.alp5*c*(dc.cd/g.r3+3*g.d*q/g.r5)
		du[10] = dc.alp4*g.y*g.d*g.x32 - dc.alp5*c*(et*dc.cd*g.x32-q*dc.sd*g.x32+et*q*g.d*x53)
		du[11] = g.x11 - g.d*g.d*g.x32 - xi*ppz*dc.sd - dc.alp5*c*(g.d*g.x32-2*q*dc.cd*g.x32-g.q2*g.d*x53)
		for i := 0; i < 12; i++ {
			u[i] += disl[1] / pi2 * du[i]
		}
	}
	if disl[2] != 0 { // tensile
		du[0] = -dc.alp4*(dc.sd/g.r+qy*dc.cd) - dc.alp5*(z*g.y11-g.q2*z32)
		du[1] = dc.alp4*2*xy*dc.sd + g.d*g.x11 - dc.alp5*c*(g.x11-g.q2*g.x32)
		du[2] = dc.alp4*(g.y*g.x11+xy*dc.cd) + dc.alp5*q*(c*et*g.x32+xi*z32)
		du[3] = dc.alp4*xi*(dc.sd/g.r3+q*g.y32*dc.cd) + dc.alp5*xi*(z*g.y32-g.q2*z53)
		du[4] = dc.alp4*2*dc.sd*y0 - g.d/g.r3 + dc.alp5*c/g.r3*(1-3*g.q2/g.r2)
		du[5] = dc.alp4*(dc.cd*y0-g.y/g.r3) + dc.alp5*q*(z0-3*c*et/g.r5)
		du[6] = dc.alp4*(g.y*dc.sd/g.r3-dc.cd*(dc.sd*g.y11-q*ppy)) + dc.alp5*(z*ppy+2*q*dc.sd*z32+g.q2*dyz32)
		du[7] = -dc.alp4*2*xi*ppy*dc.sd - g.d*g.y*g.x32 + dc.alp5*c*(g.y*g.x32+2*q*dc.sd*g.x32-g.q2*g.y*x53)
		du[8] = dc.alp4*(g.x11-g.y*g.y*g.x32-xi*ppy*dc.cd) +
			dc.alp5*(c*(q*dc.cd*g.x32+et*dc.sd*g.x32-et*q*g.y*x53)+xi*(dc.sd*z32+q*dyz32))
		du[9] = -dc.alp4*(g.d*dc.sd/g.r3+dc.cd*(dc.cd*g.y11+q*ppz)) - dc.alp5*(g.y11+z*ppz-2*q*dc.cd*z32-g.q2*dzz32)
		du[10] = dc.alp4*2*xi*ppz*dc.sd - g.x11 + g.d*g.d*g.x32 - dc.alp5*c*(g.d*g.x32-2*q*dc.cd*g.x32-g.q2*g.d*x53)
		du[11] = dc.alp4*(g.y*g.d*g.x32+xi*ppz*dc.cd) +
			dc.alp5*(c*(et*dc.cd*g.x32-q*dc.sd*g.x32+et*q*g.d*x53)+xi*(dc.cd*z32+q*dzz32))
		for i := 0; i < 12; i++ {
			u[i] += disl[2] / pi2 * du[i]
		}
	}
	return
}

// RectSource computes displacements and displacement gradients at a station
// due to a buried finite rectangular source [1], by summation of the
// analytical corner solutions.
//
//	Input:
//	 alpha    -- medium constant (λ+μ)/(λ+2μ)
//	 x, y     -- horizontal station coordinates relative to the fault
//	             origin [km]; x is along strike
//	 z        -- station depth coordinate (negative downwards) [km]
//	 depth    -- depth of the fault origin (positive) [km]
//	 dip      -- dip angle [deg]
//	 al1, al2 -- fault length range along strike [km]
//	 aw1, aw2 -- fault width range downdip [km]
//	 disl     -- dislocations {strike-slip, dip-slip, tensile} (left-lateral,
//	             thrust and opening positive)
//	Output:
//	 u     -- displacements; same unit as disl
//	 gradU -- displacement gradients; gradU[i][j] = ∂u_i/∂x_j [disl-unit/km]
//
// An explicit error is returned for stations above the free surface and for
// singular configurations with the station on an edge of the fault plane.
func RectSource(alpha, x, y, z, depth, dip, al1, al2, aw1, aw2 float64, disl []float64) (u []float64, gradU [][]float64, err error) {
	if z > 0 {
		err = chk.Err("ana: rect source: station above free surface: z=%g > 0", z)
		return
	}
	if math.Abs(x) < eps {
		x = 0
	}
	if math.Abs(y) < eps {
		y = 0
	}
	if math.Abs(z) < eps {
		z = 0
	}
	dc := newDconsts(alpha, dip)
	var s, du [12]float64
	var xi, et [2]float64
	var kxi, ket [2]int

	xi[0] = x - al1
	xi[1] = x - al2
	for j := 0; j < 2; j++ {
		if math.Abs(xi[j]) < eps {
			xi[j] = 0
		}
	}

	// real and image source contributions
	for src := 0; src < 2; src++ {
		d := depth + z
		if src == 1 {
			d = depth - z
		}
		p := y*dc.cd + d*dc.sd
		q := y*dc.sd - d*dc.cd
		if math.Abs(q) < eps {
			q = 0
		}
		et[0] = p - aw1
		et[1] = p - aw2
		for k := 0; k < 2; k++ {
			if math.Abs(et[k]) < eps {
				et[k] = 0
			}
		}
		if q == 0 &&
			((xi[0]*xi[1] <= 0 && et[0]*et[1] == 0) ||
				(et[0]*et[1] <= 0 && xi[0]*xi[1] == 0)) {
			err = chk.Err("ana: rect source: station on an edge of the fault plane (singular geometry)")
			return
		}
		r12 := math.Sqrt(xi[0]*xi[0] + et[1]*et[1] + q*q)
		r21 := math.Sqrt(xi[1]*xi[1] + et[0]*et[0] + q*q)
		r22 := math.Sqrt(xi[1]*xi[1] + et[1]*et[1] + q*q)
		kxi[0], kxi[1], ket[0], ket[1] = 0, 0, 0, 0
		if xi[0] < 0 && r21+xi[1] < eps {
			kxi[0] = 1
		}
		if xi[0] < 0 && r22+xi[1] < eps {
			kxi[1] = 1
		}
		if et[0] < 0 && r12+et[1] < eps {
			ket[0] = 1
		}
		if et[0] < 0 && r22+et[1] < eps {
			ket[1] = 1
		}
		for k := 0; k < 2; k++ {
			for j := 0; j < 2; j++ {
				g := newFgeom(&dc, xi[j], et[k], q, kxi[k], ket[j])
				if g.r == 0 {
					err = chk.Err("ana: rect source: station coincides with a fault corner (singular geometry)")
					return
				}
				if src == 0 {
					dua := ua(&dc, &g, xi[j], et[k], q, disl)
					for i := 0; i < 12; i += 3 {
						du[i] = -dua[i]
						du[i+1] = -dua[i+1]*dc.cd + dua[i+2]*dc.sd
						du[i+2] = -dua[i+1]*dc.sd - dua[i+2]*dc.cd
						if i == 9 {
							du[i] = -du[i]
							du[i+1] = -du[i+1]
							du[i+2] = -du[i+2]
						}
					}
				} else {
					dua := ua(&dc, &g, xi[j], et[k], q, disl)
					dub := ub(&dc, &g, xi[j], et[k], q, disl)
					duc := uc(&dc, &g, xi[j], et[k], q, z, disl)
					for i := 0; i < 12; i += 3 {
						du[i] = dua[i] + dub[i] + z*duc[i]
						du[i+1] = (dua[i+1]+dub[i+1]+z*duc[i+1])*dc.cd -
							(dua[i+2]+dub[i+2]+z*duc[i+2])*dc.sd
						du[i+2] = (dua[i+1]+dub[i+1]-z*duc[i+1])*dc.sd +
							(dua[i+2]+dub[i+2]-z*duc[i+2])*dc.cd
					}
					du[9] += duc[0]
					du[10] += duc[1]*dc.cd - duc[2]*dc.sd
					du[11] += -duc[1]*dc.sd - duc[2]*dc.cd
				}
				if (j+k)%2 == 0 {
					for i := 0; i < 12; i++ {
						s[i] += du[i]
					}
				} else {
					for i := 0; i < 12; i++ {
						s[i] -= du[i]
					}
				}
			}
		}
	}

	u = []float64{s[0], s[1], s[2]}
	gradU = [][]float64{
		{s[3], s[6], s[9]},
		{s[4], s[7], s[10]},
		{s[5], s[8], s[11]},
	}
	return
}
