// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package ttadder

// Pin assignments.
//
//	ui_in[3:0]  operand a
//	ui_in[7:4]  operand b
//	uio_in[0]   mode (0: combine, 1: accumulate)
//	uo_out[4:0] sum
//
const (
	ModeBit = 0
)

// DecodePins returns the Inputs corresponding to the given pin values.
//
func DecodePins(uiIn, uioIn uint8, ena, rstN bool) Inputs {
	return Inputs{
		A:      Operand(uiIn & OperandMask),
		B:      Operand(uiIn >> 4),
		Mode:   Mode(uioIn >> ModeBit & 1),
		Enable: ena,
		ResetN: rstN,
	}
}

// Pins returns the values of the ui_in and uio_in pins for in.
//
func (in Inputs) Pins() (uiIn, uioIn uint8) {
	uiIn = uint8(in.A&OperandMask) | uint8(in.B&OperandMask)<<4
	if in.Mode == Accumulate {
		uioIn |= 1 << ModeBit
	}
	return uiIn, uioIn
}
