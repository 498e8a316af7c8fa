// Copyright 2016 The Gocoulomb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// pgeom holds the station geometry quantities of the point-source kernels.
// x, y are horizontal station coordinates relative to the source and d is the
// vertical separation, all in the fault-frame system of [1]
type pgeom struct {
	p, q, s, t             float64
	xy, x2, y2, d2         float64
	r, r2, r3, r5, r7      float64
	qr, qrx                float64
	a3, a5, b3, c3         float64
	uy, vy, wy, uz, vz, wz float64
}

func newPgeom(dc *dconsts, x, y, d float64) (g pgeom) {
	g.p = y*dc.cd + d*dc.sd
	g.q = y*dc.sd - d*dc.cd
	g.s = g.p*dc.sd + g.q*dc.cd
	g.t = g.p*dc.cd - g.q*dc.sd
	g.xy = x * y
	g.x2 = x * x
	g.y2 = y * y
	g.d2 = d * d
	g.r2 = g.x2 + g.y2 + g.d2
	if g.r2 == 0 {
		return
	}
	g.r = math.Sqrt(g.r2)
	g.r3 = g.r * g.r2
	g.r5 = g.r3 * g.r2
	g.r7 = g.r5 * g.r2
	g.a3 = 1 - 3*g.x2/g.r2
	g.a5 = 1 - 5*g.x2/g.r2
	g.b3 = 1 - 3*g.y2/g.r2
	g.c3 = 1 - 3*g.d2/g.r2
	g.qr = 3 * g.q / g.r5
	g.qrx = 5 * g.qr * x / g.r2
	g.uy = dc.sd - 5*y*g.q/g.r2
	g.uz = dc.cd + 5*d*g.q/g.r2
	g.vy = g.s - 5*y*g.p*g.q/g.r2
	g.vz = g.t + 5*d*g.p*g.q/g.r2
	g.wy = g.uy + dc.sd
	g.wz = g.uz + dc.cd
	return
}

// ua0 computes the infinite-medium part of the point-source solution for the
// four potency components pot = {strike-slip, dip-slip, tensile, inflation}.
// u[0:3] holds ux,uy,uz; u[3:6], u[6:9] and u[9:12] hold the x, y and z
// derivatives. The z derivatives follow the image convention ∂/∂z = -∂/∂d
func ua0(dc *dconsts, g *pgeom, x, y, d float64, pot []float64) (u [12]float64) {
	var du [12]float64
	r3, r5 := g.r3, g.r5
	if pot[0] != 0 { // strike-slip
		du[0] = dc.alp1*g.q/r3 + dc.alp2*g.x2*g.qr
		du[1] = dc.alp1*x*dc.sd/r3 + dc.alp2*g.xy*g.qr
		du[2] = -dc.alp1*x*dc.cd/r3 + dc.alp2*x*d*g.qr
		du[3] = x * g.qr * (-dc.alp1 + dc.alp2*(1+g.a5))
		du[4] = dc.alp1*g.a3/r3*dc.sd + dc.alp2*y*g.qr*g.a5
		du[5] = -dc.alp1*g.a3/r3*dc.cd + dc.alp2*d*g.qr*g.a5
		du[6] = dc.alp1*(dc.sd/r3-y*g.qr) + dc.alp2*3*g.x2/r5*g.uy
		du[7] = 3 * x / r5 * (-dc.alp1*y*dc.sd + dc.alp2*(y*g.uy+g.q))
		du[8] = 3 * x / r5 * (dc.alp1*y*dc.cd + dc.alp2*d*g.uy)
		du[9] = dc.alp1*(dc.cd/r3+d*g.qr) + dc.alp2*3*g.x2/r5*g.uz
		du[10] = 3 * x / r5 * (dc.alp1*d*dc.sd + dc.alp2*y*g.uz)
		du[11] = 3 * x / r5 * (-dc.alp1*d*dc.cd + dc.alp2*(d*g.uz-g.q))
		for i := 0; i < 12; i++ {
			u[i] += pot[0] / pi2 * du[i]
		}
	}
	if pot[1] != 0 { // dip-slip
		du[0] = dc.alp2 * x * g.p * g.qr
		du[1] = dc.alp1*g.s/r3 + dc.alp2*y*g.p*g.qr
		du[2] = -dc.alp1*g.t/r3 + dc.alp2*d*g.p*g.qr
		du[3] = dc.alp2 * g.p * g.qr * g.a5
		du[4] = -dc.alp1*3*x*g.s/r5 - dc.alp2*y*g.p*g.qrx
		du[5] = dc.alp1*3*x*g.t/r5 - dc.alp2*d*g.p*g.qrx
		du[6] = dc.alp2 * 3 * x / r5 * g.vy
		du[7] = dc.alp1*(dc.s2d/r3-3*y*g.s/r5) + dc.alp2*(g.p*g.qr+3*y/r5*g.vy)
		du[8] = -dc.alp1*(dc.c2d/r3-3*y*g.t/r5) + dc.alp2*3*d/r5*g.vy
		du[9] = dc.alp2 * 3 * x / r5 * g.vz
		du[10] = dc.alp1*(dc.c2d/r3+3*d*g.s/r5) + dc.alp2*3*y/r5*g.vz
		du[11] = dc.alp1*(dc.s2d/r3-3*d*g.t/r5) + dc.alp2*(3*d/r5*g.vz-g.p*g.qr)
		for i := 0; i < 12; i++ {
			u[i] += pot[1] / pi2 * du[i]
		}
	}
	if pot[2] != 0 { // tensile
		du[0] = dc.alp1*x/r3 - dc.alp2*x*g.q*g.qr
		du[1] = dc.alp1*g.t/r3 - dc.alp2*y*g.q*g.qr
		du[2] = dc.alp1*g.s/r3 - dc.alp2*d*g.q*g.qr
		du[3] = dc.alp1*g.a3/r3 - dc.alp2*g.q*g.qr*g.a5
		du[4] = -dc.alp1*3*x*g.t/r5 + dc.alp2*y*g.q*g.qrx
		du[5] = -dc.alp1*3*x*g.s/r5 + dc.alp2*d*g.q*g.qrx
		du[6] = -dc.alp1*3*g.xy/r5 - dc.alp2*3*x/r5*g.q*g.wy
		du[7] = dc.alp1*(dc.c2d/r3-3*y*g.t/r5) - dc.alp2*(g.q*g.qr+3*y/r5*g.q*g.wy)
		du[8] = dc.alp1*(dc.s2d/r3-3*y*g.s/r5) - dc.alp2*3*d/r5*g.q*g.wy
		du[9] = dc.alp1*3*x*d/r5 - dc.alp2*3*x/r5*g.q*g.wz
		du[10] = -dc.alp1*(dc.s2d/r3-3*d*g.t/r5) - dc.alp2*3*y/r5*g.q*g.wz
		du[11] = dc.alp1*(dc.c2d/r3+3*d*g.s/r5) + dc.alp2*(g.q*g.qr-3*d/r5*g.q*g.wz)
		for i := 0; i < 12; i++ {
			u[i] += pot[2] / pi2 * du[i]
		}
	}
	if pot[3] != 0 { // inflation
		du[0] = -dc.alp1 * x / r3
		du[1] = -dc.alp1 * y / r3
		du[2] = -dc.alp1 * d / r3
		du[3] = -dc.alp1 * g.a3 / r3
		du[4] = dc.alp1 * 3 * g.xy / r5
		du[5] = dc.alp1 * 3 * x * d / r5
		du[6] = du[4]
		du[7] = -dc.alp1 * g.b3 / r3
		du[8] = dc.alp1 * 3 * y * d / r5
		du[9] = -du[5]
		du[10] = -du[8]
		du[11] = dc.alp1 * g.c3 / r3
		for i := 0; i < 12; i++ {
			u[i] += pot[3] / pi2 * du[i]
		}
	}
	return
}

// ub0 computes the surface-deformation related part of the point-source
// solution, evaluated with the image-source geometry
func ub0(dc *dconsts, g *pgeom, x, y, d, z float64, pot []float64) (u [12]float64) {
	var du [12]float64
	c := d + z
	rd := g.r + d
	d12 := 1 / (g.r * rd * rd)
	d32 := d12 * (2*g.r + d) / g.r2
	d33 := d12 * (3*g.r + d) / (g.r2 * rd)
	d53 := d12 * (8*g.r2 + 9*g.r*d + 3*g.d2) / (g.r2 * g.r2 * rd)
	d54 := d12 * (5*g.r2 + 4*g.r*d + g.d2) / g.r3 * d12

	fi1 := y * (d12 - g.x2*d33)
	fi2 := x * (d12 - g.y2*d33)
	fi3 := x/g.r3 - fi2
	fi4 := -g.xy * d32
	fi5 := 1/(g.r*rd) - g.x2*d32
	fj1 := -3 * g.xy * (d33 - g.x2*d54)
	fj2 := 1/g.r3 - 3*d12 + 3*g.x2*g.y2*d54
	fj3 := g.a3/g.r3 - fj2
	fj4 := -3*g.xy/g.r5 - fj1
	fk1 := -y * (d32 - g.x2*d53)
	fk2 := -x * (d32 - g.y2*d53)
	fk3 := -3*x*d/g.r5 - fk2

	r3, r5 := g.r3, g.r5
	if pot[0] != 0 { // strike-slip
		du[0] = -g.x2*g.qr - dc.alp3*fi1*dc.sd
		du[1] = -g.xy*g.qr - dc.alp3*fi2*dc.sd
		du[2] = -c*x*g.qr - dc.alp3*fi4*dc.sd
		du[3] = -x*g.qr*(1+g.a5) - dc.alp3*fj1*dc.sd
		du[4] = -y*g.qr*g.a5 - dc.alp3*fj2*dc.sd
		du[5] = -c*g.qr*g.a5 - dc.alp3*fk1*dc.sd
		du[6] = -3*g.x2/r5*g.uy - dc.alp3*fj2*dc.sd
		du[7] = -3*g.xy/r5*g.uy - x*g.qr - dc.alp3*fj4*dc.sd
		du[8] = -3*c*x/r5*g.uy - dc.alp3*fk2*dc.sd
		du[9] = -3*g.x2/r5*g.uz + dc.alp3*fk1*dc.sd
		du[10] = -3*g.xy/r5*g.uz + dc.alp3*fk2*dc.sd
		du[11] = 3 * x / r5 * (-c*g.uz + dc.alp3*y*dc.sd)
		for i := 0; i < 12; i++ {
			u[i] += pot[0] / pi2 * du[i]
		}
	}
	if pot[1] != 0 { // dip-slip
		du[0] = -x*g.p*g.qr + dc.alp3*fi3*dc.sdcd
		du[1] = -y*g.p*g.qr + dc.alp3*fi1*dc.sdcd
		du[2] = -c*g.p*g.qr + dc.alp3*fi5*dc.sdcd
		du[3] = -g.p*g.qr*g.a5 + dc.alp3*fj3*dc.sdcd
		du[4] = y*g.p*g.qrx + dc.alp3*fj1*dc.sdcd
		du[5] = c*g.p*g.qrx + dc.alp3*fk3*dc.sdcd
		du[6] = -3*x/r5*g.vy + dc.alp3*fj1*dc.sdcd
		du[7] = -g.p*g.qr - 3*y/r5*g.vy + dc.alp3*fj2*dc.sdcd
		du[8] = -3*c/r5*g.vy + dc.alp3*fk1*dc.sdcd
		du[9] = -3*x/r5*g.vz - dc.alp3*fk3*dc.sdcd
		du[10] = -3*y/r5*g.vz - dc.alp3*fk1*dc.sdcd
		du[11] = -3*c/r5*g.vz + dc.alp3*g.a3/r3*dc.sdcd
		for i := 0; i < 12; i++ {
			u[i] += pot[1] / pi2 * du[i]
		}
	}
	if pot[2] != 0 { // tensile
		du[0] = x*g.q*g.qr - dc.alp3*fi3*dc.sdsd
		du[1] = y*g.q*g.qr - dc.alp3*fi1*dc.sdsd
		du[2] = d*g.q*g.qr - dc.alp3*fi5*dc.sdsd
		du[3] = g.q*g.qr*g.a5 - dc.alp3*fj3*dc.sdsd
		du[4] = -y*g.q*g.qrx - dc.alp3*fj1*dc.sdsd
		du[5] = -d*g.q*g.qrx - dc.alp3*fk3*dc.sdsd
		du[6] = 3*x/r5*g.q*g.wy - dc.alp3*fj1*dc.sdsd
		du[7] = g.q*g.qr + 3*y/r5*g.q*g.wy - dc.alp3*fj2*dc.sdsd
		du[8] = 3*d/r5*g.q*g.wy - dc.alp3*fk1*dc.sdsd
		du[9] = 3*x/r5*g.q*g.wz + dc.alp3*fk3*dc.sdsd
		du[10] = 3*y/r5*g.q*g.wz + dc.alp3*fk1*dc.sdsd
		du[11] = 3*d/r5*g.q*g.wz - g.q*g.qr - dc.alp3*g.a3/r3*dc.sdsd
		for i := 0; i < 12; i++ {
			u[i] += pot[2] / pi2 * du[i]
		}
	}
	if pot[3] != 0 { // inflation
		du[0] = dc.alp3 * x / r3
		du[1] = dc.alp3 * y / r3
		du[2] = dc.alp3 * d / r3
		du[3] = dc.alp3 * g.a3 / r3
		du[4] = -dc.alp3 * 3 * g.xy / r5
		du[5] = -dc.alp3 * 3 * x * d / r5
		du[6] = du[4]
		du[7] = dc.alp3 * g.b3 / r3
		du[8] = -dc.alp3 * 3 * y * d / r5
		du[9] = -du[5]
		du[10] = -du[8]
		du[11] = -dc.alp3 * g.c3 / r3
		for i := 0; i < 12; i++ {
			u[i] += pot[3] / pi2 * du[i]
		}
	}
	return
}

// uc0 computes the depth-multiplied part of the point-source solution,
// evaluated with the image-source geometry
func uc0(dc *dconsts, g *pgeom, x, y, d, z float64, pot []float64) (u [12]float64) {
	var du [12]float64
	c := d + z
	q2 := g.q * g.q
	r2, r3, r5, r7 := g.r2, g.r3, g.r5, g.r7
	a7 := 1 - 7*g.x2/r2
	b5 := 1 - 5*g.y2/r2
	b7 := 1 - 7*g.y2/r2
	c5 := 1 - 5*g.d2/r2
	c7 := 1 - 7*g.d2/r2
	qr5 := 5 * g.q / r2
	dr5 := 5 * d / r2

	if pot[0] != 0 { // strike-slip
		du[0] = -dc.alp4*g.a3/r3*dc.cd + dc.alp5*c*g.qr*g.a5
		du[1] = 3 * x / r5 * (dc.alp4*y*dc.cd + dc.alp5*c*(dc.sd-y*qr5))
		du[2] = 3 * x / r5 * (-dc.alp4*y*dc.sd + dc.alp5*c*(dc.cd+d*qr5))
		du[3] = dc.alp4*3*x*(2+g.a5)*dc.cd/r5 - dc.alp5*c*g.qrx*(2+a7)
		du[4] = 3 / r5 * (dc.alp4*y*g.a5*dc.cd + dc.alp5*c*(g.a5*dc.sd-y*qr5*a7))
		du[5] = 3 / r5 * (-dc.alp4*y*g.a5*dc.sd + dc.alp5*c*(g.a5*dc.cd+d*qr5*a7))
		du[6] = du[4]
		du[7] = 3 * x / r5 * (dc.alp4*b5*dc.cd - dc.alp5*5*c/r2*(2*y*dc.sd+g.q*b7))
		du[8] = 3 * x / r5 * (-dc.alp4*b5*dc.sd + dc.alp5*5*c/r2*(d*b7*dc.sd-y*c7*dc.cd))
		du[9] = 3 / r5 * (-dc.alp4*d*g.a5*dc.cd + dc.alp5*c*(g.a5*dc.cd+d*qr5*a7))
		du[10] = 3 * x / r5 * (dc.alp4*y*dr5*dc.cd + dc.alp5*5*c/r2*(d*b7*dc.sd-y*c7*dc.cd))
		du[11] = 3 * x / r5 * (-dc.alp4*y*dr5*dc.sd + dc.alp5*5*c/r2*(2*d*dc.cd-g.q*c7))
		for i := 0; i < 12; i++ {
			u[i] += pot[0] / pi2 * du[i]
		}
	}
	if pot[1] != 0 { // dip-slip
		du[0] = dc.alp4*3*x*g.t/r5 - dc.alp5*c*g.p*g.qrx
		du[1] = -dc.alp4/r3*(dc.c2d-3*y*g.t/r2) + dc.alp5*3*c/r5*(g.s-y*g.p*qr5)
		du[2] = -dc.alp4*g.a3/r3*dc.sdcd + dc.alp5*3*c/r5*(g.t+d*g.p*qr5)
		du[3] = 3 / r5 * (dc.alp4*g.t*g.a5 - dc.alp5*5*c*g.p*g.q*a7/r2)
		du[4] = 3 * x / r5 * (dc.alp4*(dc.c2d-5*y*g.t/r2) - dc.alp5*5*c/r2*(g.s-7*y*g.p*g.q/r2))
		du[5] = 3 * x / r5 * (dc.alp4*(2+g.a5)*dc.sdcd - dc.alp5*5*c/r2*(g.t+7*d*g.p*g.q/r2))
		du[6] = du[4]
		du[7] = 3 / r5 * (dc.alp4*(2*y*dc.c2d+g.t*b5) + dc.alp5*c*(dc.s2d-10*y*g.s/r2-5*g.p*g.q*b7/r2))
		du[8] = 3 / r5 * (dc.alp4*y*g.a5*dc.sdcd + dc.alp5*c*(dc.c2d+5*(d*g.s-y*g.t)/r2-35*y*d*g.p*g.q/(r2*r2)))
		du[9] = -3 * x / r5 * (dc.alp4*(dc.s2d-5*d*g.t/r2) + dc.alp5*5*c/r2*(g.t+7*d*g.p*g.q/r2))
		du[10] = -3 / r5 * (dc.alp4*(d*dc.c2d+y*dc.s2d-5*y*d*g.t/r2) - dc.alp5*c*(dc.c2d+5*(d*g.s-y*g.t)/r2-35*y*d*g.p*g.q/(r2*r2)))
		du[11] = -3 / r5 * (dc.alp4*d*g.a5*dc.sdcd + dc.alp5*c*(dc.s2d+5*(g.p*g.q-2*d*g.t)/r2-35*g.d2*g.p*g.q/(r2*r2)))
		for i := 0; i < 12; i++ {
			u[i] += pot[1] / pi2 * du[i]
		}
	}
	if pot[2] != 0 { // tensile
		du[0] = -dc.alp4*3*x*g.s/r5 + dc.alp5*(c*g.q*g.qrx-3*x*z/r5)
		du[1] = -dc.alp4*(3*g.p*g.q/r5+g.a3*dc.sdcd/r3) + dc.alp5*3*(c*g.q*(y*qr5-3*dc.sd)+d*g.q*dc.sd-g.p*z*dc.cd)/r5
		du[2] = dc.alp4*((1+(1+dc.sdsd)*g.a3)/r3-3*g.p*g.p/r5) + dc.alp5*3*(g.q*y*dc.sd+g.p*z*dc.sd-c*g.q*(3*dc.cd+d*qr5))/r5
		du[3] = -dc.alp4*3*g.s*g.a5/r5 + dc.alp5*(15*c*q2*a7/r7-3*z*g.a5/r5)
		du[4] = dc.alp4*3*x*((2+g.a5)*dc.sdcd+5*g.p*g.q/r2)/r5 + dc.alp5*15*x*(c*g.q*(3*dc.sd-7*y*g.q/r2)-d*g.q*dc.sd+g.p*z*dc.cd)/r7
		du[5] = -dc.alp4*3*x*(1+(2+g.a5)*(1+dc.sdsd)-5*g.p*g.p/r2)/r5 +
			dc.alp5*15*x*(c*g.q*(3*dc.cd+7*d*g.q/r2)-g.q*y*dc.sd-g.p*z*dc.sd)/r7
		du[6] = -dc.alp4*3*x*(dc.s2d-5*y*g.s/r2)/r5 + dc.alp5*15*x*(2*c*g.q*dc.sd+z*y-7*c*q2*y/r2)/r7
		du[7] = dc.alp4*3*(y*dc.sdcd-g.s+5*y*(g.p*g.q-g.x2*dc.sdcd)/r2)/r5 -
			dc.alp5*(3*((3*c-d)*dc.sdsd+z*dc.cdcd)/r5-15*(c*g.q*(5*y*dc.sd+g.q)-d*g.q*y*dc.sd+g.p*z*y*dc.cd)/r7+105*c*q2*g.y2/(r7*r2))
		du[8] = -dc.alp4*3*(y*(2+dc.sdsd)+2*g.p*dc.cd-5*y*(g.x2*(1+dc.sdsd)+g.p*g.p)/r2)/r5 +
			dc.alp5*(3*((y*dc.sd+g.q)*dc.sd-(3*c-z)*dc.sdcd)/r5+15*(3*c*g.q*y*dc.cd-2*c*d*g.q*dc.sd-g.q*g.y2*dc.sd-g.p*z*y*dc.sd)/r7+105*c*d*q2*y/(r7*r2))
		du[9] = -dc.alp4*3*x*(dc.c2d+5*d*g.s/r2)/r5 + dc.alp5*(15*x*(2*c*g.q*dc.cd-z*d+7*c*q2*d/r2)/r7-3*x/r5)
		du[10] = -dc.alp4*3*(g.t+d*dc.sdcd+5*d*(g.p*g.q-g.x2*dc.sdcd)/r2)/r5 +
			dc.alp5*(3*(c*(2+g.a5)*dc.sdcd-y)/r5-15*(c*d*(g.t+7*g.q*dc.sd)-g.p*g.q*(c+3*c*dc.sdsd+z*dc.c2d)+(q2*(3*c-z)+g.p*g.p*z)*dc.sdcd)/r7+105*c*d*q2*y/(r7*r2))
		du[11] = dc.alp4*3*(d*(2+dc.sdsd)+2*g.p*dc.sd-5*d*(g.x2*(1+dc.sdsd)+g.p*g.p)/r2)/r5 +
			dc.alp5*(3*(g.p*dc.sd+y*dc.sdcd-z*dc.sdsd-3*c*dc.cdcd)/r5+15*(d*g.q*y*dc.sd+g.p*z*d*dc.sd+c*g.q*y*dc.sd-6*c*d*g.q*dc.cd)/r7-105*c*g.d2*q2/(r7*r2))
		for i := 0; i < 12; i++ {
			u[i] += pot[2] / pi2 * du[i]
		}
	}
	if pot[3] != 0 { // inflation
		du[0] = dc.alp4 * 3 * x * d / r5
		du[1] = dc.alp4 * 3 * y * d / r5
		du[2] = dc.alp4 * g.c3 / r3
		du[3] = dc.alp4 * 3 * d * g.a5 / r5
		du[4] = -dc.alp4 * 15 * g.xy * d / r7
		du[5] = -dc.alp4 * 3 * x * c5 / r5
		du[6] = du[4]
		du[7] = dc.alp4 * 3 * d * b5 / r5
		du[8] = -dc.alp4 * 3 * y * c5 / r5
		du[9] = du[5]
		du[10] = du[8]
		du[11] = dc.alp4 * 3 * d * (2 + c5) / r5
		for i := 0; i < 12; i++ {
			u[i] += pot[3] / pi2 * du[i]
		}
	}
	return
}

// PointSource computes displacements and displacement gradients at a station
// due to a buried point source [1].
//
//	Input:
//	 alpha -- medium constant (λ+μ)/(λ+2μ)
//	 x, y  -- horizontal station coordinates relative to the source [km];
//	          x is along strike and y points in the dip-ward direction
//	 z     -- station depth coordinate (negative downwards) [km]
//	 depth -- source depth (positive) [km]
//	 dip   -- dip angle [deg]
//	 pot   -- potencies {strike-slip, dip-slip, tensile, inflation},
//	          each equal to moment component divided by shear modulus
//	Output:
//	 u     -- displacements {ux, uy, uz}
//	 gradU -- displacement gradients; gradU[i][j] = ∂u_i/∂x_j
//
// An explicit error is returned for stations above the free surface and for
// the singular case of a station coinciding with the source.
func PointSource(alpha, x, y, z, depth, dip float64, pot []float64) (u []float64, gradU [][]float64, err error) {
	if z > 0 {
		err = chk.Err("ana: point source: station above free surface: z=%g > 0", z)
		return
	}
	dc := newDconsts(alpha, dip)
	var s [12]float64

	// real source
	d := depth + z
	g := newPgeom(&dc, x, y, d)
	if g.r2 == 0 {
		err = chk.Err("ana: point source: station coincides with the source (singular geometry)")
		return
	}
	dua := ua0(&dc, &g, x, y, d, pot)
	for i := 0; i < 12; i++ {
		if i < 9 {
			s[i] -= dua[i]
		} else {
			s[i] += dua[i]
		}
	}

	// image source
	d = depth - z
	g = newPgeom(&dc, x, y, d)
	dua = ua0(&dc, &g, x, y, d, pot)
	dub := ub0(&dc, &g, x, y, d, z, pot)
	duc := uc0(&dc, &g, x, y, d, z, pot)
	for i := 0; i < 12; i++ {
		du := dua[i] + dub[i] + z*duc[i]
		if i >= 9 {
			du += duc[i-9]
		}
		s[i] += du
	}

	u = []float64{s[0], s[1], s[2]}
	gradU = [][]float64{
		{s[3], s[6], s[9]},
		{s[4], s[7], s[10]},
		{s[5], s[8], s[11]},
	}
	return
}
