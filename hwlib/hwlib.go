// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwlib provides a library of reusable parts for hwsim: the gates,
// adders, multiplexers and flip flops the gate-level adder is built from, and
// function based inputs and outputs used to drive and probe circuits.
//
package hwlib

import (
	"github.com/db47h/ttadder/hwsim"
)

// common pin names
const (
	pA   = "a"
	pB   = "b"
	pIn  = "in"
	pSel = "sel"
	pOut = "out"
)

// make a bus name
func bus(bits int, names ...string) []string {
	b := make([]string, 0, len(names)*bits)
	for _, n := range names {
		for j := 0; j < bits; j++ {
			b = append(b, hwsim.BusPinName(n, j))
		}
	}
	return b
}
