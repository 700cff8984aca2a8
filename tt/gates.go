// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package tt

import (
	"github.com/pkg/errors"

	"github.com/db47h/ttadder/hwlib"
	"github.com/db47h/ttadder/hwsim"
)

// GateLevel returns the circuit built from hwlib parts.
//
//	Inputs: ui_in[8], uio_in[8], ena, rst_n
//	Outputs: uo_out[8], uio_out[8], uio_oe[8]
//
// The second addend is selected between ui_in[7:4] and the full 5 bits sum
// register by uio_in[0]. A 5 bits ripple carry adder, whose final carry is
// dropped, feeds the register through an enable mux (hold) and a reset mux
// (clear). The register drives uo_out[4:0] directly; the other outputs are never
// driven.
//
// Signals need 9 simulation steps to settle from an input change to the
// register inputs, so the circuit must be simulated with at least 32 steps per
// clock cycle.
//
func GateLevel() (hwsim.NewPartFn, error) {
	// a is at most 15, so bit 4 only adds b[4] to the carry out of bit 3.
	add5, err := hwsim.Chip("ADD5", "a[4], b[5]", "s[5]",
		hwlib.HalfAdder("a=a[0], b=b[0], s=s[0], c=c0"),
		hwlib.FullAdder("a=a[1], b=b[1], cin=c0, s=s[1], cout=c1"),
		hwlib.FullAdder("a=a[2], b=b[2], cin=c1, s=s[2], cout=c2"),
		hwlib.FullAdder("a=a[3], b=b[3], cin=c2, s=s[3], cout=c3"),
		hwlib.HalfAdder("a=b[4], b=c3, s=s[4]"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "adder")
	}
	mux5 := hwlib.MuxN(5)
	reg := hwlib.DFFN(5)
	adder, err := hwsim.Chip(Name, Inputs, Outputs,
		mux5("a[0..3]=ui_in[4..7], a[4]=false, b[0..4]=uo_out[0..4], sel=uio_in[0], out[0..4]=opB[0..4]"),
		add5("a[0..3]=ui_in[0..3], b[0..4]=opB[0..4], s[0..4]=sum[0..4]"),
		mux5("a[0..4]=uo_out[0..4], b[0..4]=sum[0..4], sel=ena, out[0..4]=next[0..4]"),
		mux5("a[0..4]=false, b[0..4]=next[0..4], sel=rst_n, out[0..4]=d[0..4]"),
		reg("in[0..4]=d[0..4], out[0..4]=uo_out[0..4]"),
	)
	if err != nil {
		return nil, errors.Wrap(err, Name)
	}
	return adder, nil
}

// MinStepsPerCycle is the minimum number of simulation steps per clock cycle
// for the gate-level circuit.
//
const MinStepsPerCycle = 32
