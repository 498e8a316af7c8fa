// Copyright 2016 The Gocoulomb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coulomb

import (
	"sync"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/gocoulomb/inp"
)

// GridOut holds surface displacements computed over a regular grid
type GridOut struct {
	X []float64   `json:"x"` // grid x coordinates [km]
	Y []float64   `json:"y"` // grid y coordinates [km]
	U [][]float64 `json:"u"` // east displacements [m]; U[ky][kx] belongs to (X[kx], Y[ky])
	V [][]float64 `json:"v"` // north displacements [m]
	W [][]float64 `json:"w"` // vertical displacements [m]
}

// GridDef computes the surface displacements over the grid defined by the
// region. The number of points per axis is the extent divided by the
// increment. Rows are computed in parallel, each goroutine writing only its
// own row
func (o *Evaluator) GridDef(region *inp.Region) (res *GridOut, err error) {
	nx := int((region.FinishX - region.StartX) / region.XInc)
	ny := int((region.FinishY - region.StartY) / region.YInc)
	if nx < 0 || ny < 0 {
		err = chk.Err("coulomb: grid extents and increments are inconsistent: nx=%d ny=%d", nx, ny)
		return
	}
	res = &GridOut{
		X: utl.LinSpace(region.StartX, region.FinishX, nx),
		Y: utl.LinSpace(region.StartY, region.FinishY, ny),
		U: la.MatAlloc(ny, nx),
		V: la.MatAlloc(ny, nx),
		W: la.MatAlloc(ny, nx),
	}
	errs := make([]error, ny)
	var wg sync.WaitGroup
	for ky := 0; ky < ny; ky++ {
		wg.Add(1)
		go func(ky int) {
			defer wg.Done()
			for kx := 0; kx < nx; kx++ {
				u, _, e := o.DispAt(res.X[kx], res.Y[ky], 0)
				if e != nil {
					errs[ky] = e
					return
				}
				res.U[ky][kx] = u[0]
				res.V[ky][kx] = u[1]
				res.W[ky][kx] = u[2]
			}
		}(ky)
	}
	wg.Wait()
	for _, e := range errs {
		if e != nil {
			return nil, e
		}
	}
	return
}
