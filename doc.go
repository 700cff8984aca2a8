// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package ttadder models a small synchronous circuit: a 4 bits adder with an
accumulation mode, packaged for a Tiny Tapeout style pinout.

On every rising clock edge the circuit either adds its two operands a and b
(Combine mode) or adds a to the previous sum (Accumulate mode). The 5 bits sum
wraps modulo 32, is registered and shows on the outputs after the edge.
An active low reset clears the register synchronously.

The model is a pure transition function:

	var s ttadder.State
	s, out := ttadder.Step(s, ttadder.Inputs{A: 2, B: 3, Enable: true, ResetN: true})
	// out.Sum == 5
	s, out = ttadder.Step(s, ttadder.Inputs{A: 4, Mode: ttadder.Accumulate, Enable: true, ResetN: true})
	// out.Sum == 9

Packages hwsim and hwlib provide a clocked simulator and the parts the
gate-level version of the circuit is built from (see package tt), and package
hwtest the harness that drives both versions with test vectors.
*/
package ttadder
