// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package tt

import (
	"github.com/db47h/ttadder"
	"github.com/db47h/ttadder/hwlib"
	"github.com/db47h/ttadder/hwsim"
)

// adder runs ttadder.Step on every rising clock edge. Its outputs are driven
// from the registered state on every simulation step.
type adder struct {
	UIIn   [Width]int `hw:"in,ui_in"`
	UIOIn  [Width]int `hw:"in,uio_in"`
	Ena    int        `hw:"in"`
	RstN   int        `hw:"in,rst_n"`
	UOOut  [Width]int `hw:"out,uo_out"`
	UIOOut [Width]int `hw:"out,uio_out"`
	UIOOE  [Width]int `hw:"out,uio_oe"`

	s ttadder.State
}

func (a *adder) Update(c *hwsim.Circuit) {
	if c.AtTick() {
		in := ttadder.DecodePins(
			uint8(hwlib.Int64(c, a.UIIn[:])),
			uint8(hwlib.Int64(c, a.UIOIn[:])),
			c.Get(a.Ena),
			c.Get(a.RstN))
		a.s, _ = ttadder.Step(a.s, in)
	}
	out := a.s.Output()
	hwlib.SetInt64(c, a.UOOut[:], int64(out.UOOut()))
	hwlib.SetInt64(c, a.UIOOut[:], int64(out.UIOOut()))
	hwlib.SetInt64(c, a.UIOOE[:], int64(out.UIOOE()))
}

var behavioral = func() *hwsim.PartSpec {
	sp := hwsim.MakePart((*adder)(nil))
	sp.Name = Name
	return sp
}()

// Behavioral returns the circuit implemented as a single clocked component
// running ttadder.Step on every rising edge.
//
//	Inputs: ui_in[8], uio_in[8], ena, rst_n
//	Outputs: uo_out[8], uio_out[8], uio_oe[8]
//
func Behavioral(c string) hwsim.Part {
	return behavioral.NewPart(c)
}
