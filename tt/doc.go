// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package tt packages the accumulating adder as a Tiny Tapeout project: the
// standard tt_um pinout, a behavioral part wrapping ttadder.Step, the same
// circuit built from hwlib gates, and the project's test scenarios.
//
package tt
