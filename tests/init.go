// Copyright 2016 The Gocoulomb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tests implements helpers for the scenario tests
package tests

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gocoulomb/fault"
)

func init() {
	io.Verbose = false
}

func Verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// Tops returns the top depths of the given patches
func Tops(patches []*fault.Patch) (tops []float64) {
	tops = make([]float64, len(patches))
	for k, p := range patches {
		tops[k] = p.Top
	}
	return
}

// Area accumulates the plane area [km²] of the given patches
func Area(patches []*fault.Patch) (area float64) {
	for _, p := range patches {
		area += p.L() * p.W()
	}
	return
}
