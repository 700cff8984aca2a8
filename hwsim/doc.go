// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package hwsim is a naive clocked hardware simulator used to run the gate-level
and behavioral versions of the accumulating adder side by side.

Circuits are built from parts (see PartSpec) that are composed into chips with
a connection string syntax borrowed from hardware description languages:

	add4, err := hwsim.Chip("Adder4", "a[4], b[4]", "out[4], c",
		hwlib.HalfAdder("a=a[0], b=b[0], s=out[0], c=c0"),
		hwlib.FullAdder("a=a[1], b=b[1], cin=c0, s=out[1], cout=c1"),
		...
	)

Every simulation step computes the next state of all wires from their current
state, so each component adds one step of propagation delay. A clock cycle is
made of a fixed, power of two, number of steps.
*/
package hwsim
