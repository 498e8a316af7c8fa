// Copyright 2016 The Gocoulomb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fault

import (
	"math"

	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/gocoulomb/geo"
)

// Split partitions each receiver patch into nStrike × nDip subpatches that
// exactly tile the parent rectangle. The depth range [top, bottom] is divided
// into nDip equal intervals; the top edge of each row is displaced downdip
// according to the cumulative width above it, and then divided into nStrike
// equal segments along strike. Children inherit strike, dip, rake, Kode and
// comment but carry no slip. With nStrike == nDip == 1 the input slice is
// returned unchanged
func Split(receivers []*Patch, nStrike, nDip int) []*Patch {
	if nStrike == 1 && nDip == 1 {
		return receivers
	}
	var out []*Patch
	for _, f := range receivers {
		zsplit := utl.LinSpace(f.Top, f.Bottom, nDip+1)
		for j := 0; j < nDip; j++ {

			// top edge of this row, displaced downdip from the updip edge
			w := geo.DowndipWidth(f.Top, zsplit[j], f.Dip)
			mag := w * math.Cos(f.Dip*math.Pi/180.0)
			x0, y0 := geo.AddVec(f.XStart, f.YStart, mag, f.Strike+90.0)
			x1, y1 := geo.AddVec(f.XFinish, f.YFinish, mag, f.Strike+90.0)
			xsplit := utl.LinSpace(x0, x1, nStrike+1)
			ysplit := utl.LinSpace(y0, y1, nStrike+1)

			for k := 0; k < nStrike; k++ {
				out = append(out, &Patch{
					XStart:  xsplit[k],
					XFinish: xsplit[k+1],
					YStart:  ysplit[k],
					YFinish: ysplit[k+1],
					Top:     zsplit[j],
					Bottom:  zsplit[j+1],
					Strike:  f.Strike,
					Dip:     f.Dip,
					Rake:    f.Rake,
					ZeroLon: f.ZeroLon,
					ZeroLat: f.ZeroLat,
					Kode:    f.Kode,
					Comment: f.Comment,
				})
			}
		}
	}
	return out
}
