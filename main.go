// Copyright 2016 The Gocoulomb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/gocoulomb/coulomb"
	"github.com/cpmech/gocoulomb/inp"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".json", true)
	verbose := io.ArgToBool(1, true)
	dispfn := io.ArgToString(2, "")
	strainfn := io.ArgToString(3, "")
	doprof := io.ArgToInt(4, 0)
	if !verbose {
		io.Verbose = false
	}

	// message
	if verbose {
		io.PfWhite("\nGocoulomb -- static stress changes from fault slip\n")
		io.Pf("Copyright 2016 The Gocoulomb Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"displacement observation points", "dispfn", dispfn,
			"strain observation points", "strainfn", strainfn,
			"profiling: 0=none 1=CPU 2=MEM", "doprof", doprof,
		))
	}

	// profiling?
	if doprof > 0 {
		defer utl.DoProf(false, doprof)()
	}

	// input data
	in, prm, err := inp.Read(fnamepath)
	if err != nil {
		chk.Panic("cannot read input file:\n%v", err)
	}
	dispPts, err := inp.ReadDispPoints(dispfn)
	if err != nil {
		chk.Panic("cannot read displacement observation points:\n%v", err)
	}
	strainPts, err := inp.ReadDispPoints(strainfn)
	if err != nil {
		chk.Panic("cannot read strain observation points:\n%v", err)
	}

	// run computation
	out, err := coulomb.Run(in, prm, dispPts, strainPts)
	if err != nil {
		chk.Panic("computation failed:\n%v", err)
	}

	// save results
	err = coulomb.WriteResults(out, prm.DirOut, in.Key)
	if err != nil {
		chk.Panic("cannot write results:\n%v", err)
	}
	if verbose {
		io.Pf("results saved to %s\n", io.Sf("%s/%s-results.json", prm.DirOut, in.Key))
	}
}
