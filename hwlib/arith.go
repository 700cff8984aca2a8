// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"strconv"

	"github.com/db47h/ttadder/hwsim"
)

// addBit returns the sum and carry out of a + b + cin.
func addBit(a, b, cin bool) (sum, cout bool) {
	p := a != b
	return p != cin, a && b || p && cin
}

// ripple describes a ripple carry adder. A width of 0 denotes a single bit
// adder with plain pin names; cin is empty when the adder has no carry input.
type ripple struct {
	name       string
	width      int
	cin        string
	sum, carry string
}

func (r ripple) pins(name string) []string {
	if r.width == 0 {
		return []string{name}
	}
	return bus(r.width, name)
}

func (r ripple) spec() *hwsim.PartSpec {
	ins := append(r.pins(pA), r.pins(pB)...)
	if r.cin != "" {
		ins = append(ins, r.cin)
	}
	return &hwsim.PartSpec{
		Name:    r.name,
		Inputs:  ins,
		Outputs: append(r.pins(r.sum), r.carry),
		Mount: func(s *hwsim.Socket) []hwsim.Component {
			var a, b, sum []int
			for _, n := range r.pins(pA) {
				a = append(a, s.Pin(n))
			}
			for _, n := range r.pins(pB) {
				b = append(b, s.Pin(n))
			}
			for _, n := range r.pins(r.sum) {
				sum = append(sum, s.Pin(n))
			}
			cin, cout := s.Pin(hwsim.False), s.Pin(r.carry)
			if r.cin != "" {
				cin = s.Pin(r.cin)
			}
			return []hwsim.Component{
				func(c *hwsim.Circuit) {
					carry := c.Get(cin)
					for i, o := range sum {
						var v bool
						v, carry = addBit(c.Get(a[i]), c.Get(b[i]), carry)
						c.Set(o, v)
					}
					c.Set(cout, carry)
				}}
		}}
}

var (
	hAdder = ripple{name: "HalfAdder", sum: "s", carry: "c"}.spec()
	fAdder = ripple{name: "FullAdder", cin: "cin", sum: "s", carry: "cout"}.spec()
)

// HalfAdder returns a half adder.
//
//	Inputs: a, b
//	Outputs: s, c
//	Function: s = a xor b
//	          c = a and b
//
func HalfAdder(c string) hwsim.Part {
	return hAdder.NewPart(c)
}

// FullAdder returns a one bit adder with carry in.
//
//	Inputs: a, b, cin
//	Outputs: s, cout
//	Function: s = lsb(a + b + cin)
//	          cout = msb(a + b + cin)
//
func FullAdder(c string) hwsim.Part {
	return fAdder.NewPart(c)
}

// AdderN returns a N-bits adder.
//
//	Inputs: a[bits], b[bits]
//	Outputs: out[bits], c
//	Function: out = (a + b) mod 2^bits
//	          c = carry out of the msb
//
func AdderN(bits int) hwsim.NewPartFn {
	return ripple{name: "Adder" + strconv.Itoa(bits), width: bits, sum: pOut, carry: "c"}.spec().NewPart
}
