// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package tt

// Name is the name of the top level module.
//
const Name = "tt_um_adder"

// Pin specifications of the tt_um interface. The clock is the simulator's.
//
const (
	Inputs  = "ui_in[8], uio_in[8], ena, rst_n"
	Outputs = "uo_out[8], uio_out[8], uio_oe[8]"
)

// Bus widths of the tt_um interface.
//
const Width = 8
