// Copyright 2016 The Gocoulomb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// DispPoint is a named geographic observation point. For observed data the
// displacement components and their uncertainties are filled in; modelled
// points carry the computed displacements and no uncertainties
type DispPoint struct {
	Name string  `json:"name"` // station name
	Lon  float64 `json:"lon"`  // longitude [deg]
	Lat  float64 `json:"lat"`  // latitude [deg]
	DE   float64 `json:"de"`   // east displacement [m]
	DN   float64 `json:"dn"`   // north displacement [m]
	DU   float64 `json:"du"`   // vertical displacement [m]
	SE   float64 `json:"se"`   // uncertainty of DE [m]
	SN   float64 `json:"sn"`   // uncertainty of DN [m]
	SU   float64 `json:"su"`   // uncertainty of DU [m]
}

// ReadDispPoints reads a JSON array of observation points. An empty filename
// means no points and is not an error
func ReadDispPoints(fn string) (pts []*DispPoint, err error) {
	if fn == "" {
		return
	}
	b, err := io.ReadFile(fn)
	if err != nil {
		err = chk.Err("inp: cannot read observation points file %q", fn)
		return
	}
	if err = json.Unmarshal(b, &pts); err != nil {
		err = chk.Err("inp: cannot unmarshal observation points file %q:\n%v", fn, err)
	}
	return
}
