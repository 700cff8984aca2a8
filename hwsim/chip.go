// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsim

import (
	"github.com/pkg/errors"
)

const (
	typeUnknown = iota
	typeInput
	typeOutput
)

type chip struct {
	PartSpec
	parts []Part
}

func (c *chip) mount(s *Socket) []Component {
	var cs []Component

	for _, p := range c.parts {
		// make a sub-socket for the part and map its pins to wires in the
		// chip's namespace, allocating internal wires as necessary.
		sub := newSocket(s.c)
		for _, conn := range p.Conns {
			sub.m[conn.PP] = s.PinOrNew(conn.CP)
		}
		// unconnected inputs read false, unconnected outputs get a dummy pin.
		for _, i := range p.Inputs {
			if _, ok := sub.m[i]; !ok {
				sub.m[i] = cstFalse
			}
		}
		for _, o := range p.Outputs {
			if _, ok := sub.m[o]; !ok {
				sub.m[o] = s.c.allocPin()
			}
		}
		cs = append(cs, p.Mount(sub)...)
	}
	return cs
}

// Chip composes existing parts into a new part packaged into a chip.
// The pin names specified as inputs and outputs will be the inputs
// and outputs of the chip.
//
// An Xor gate could be created like this:
//
//	xor, err := Chip("XOR", "a, b", "out",
//		hwlib.Nand("a=a, b=b, out=nandAB"),
//		hwlib.Nand("a=a, b=nandAB, out=w0"),
//		hwlib.Nand("a=b, b=nandAB, out=w1"),
//		hwlib.Nand("a=w0, b=w1, out=out"),
//	)
//
// The returned value is a NewPartFn that can be used to compose the new part
// with others into other chips:
//
//	xnor, err := Chip("XNOR", "a, b", "out",
//		xor("a=a, b=b, out=xorAB"),
//		hwlib.Not("in=xorAB, out=out"),
//	)
//
// Chip checks the wiring and returns an error if a part pin does not exist,
// if a wire is driven by more than one output, if an output drives a constant
// or one of the chip inputs, if a part input reads a wire that no output
// drives or if a part output drives a wire that nothing reads.
//
func Chip(name string, inputs string, outputs string, parts ...Part) (NewPartFn, error) {
	ins, err := parseIOspec(inputs)
	if err != nil {
		return nil, errors.Wrap(err, name+" inputs")
	}
	outs, err := parseIOspec(outputs)
	if err != nil {
		return nil, errors.Wrap(err, name+" outputs")
	}

	// drivers maps wire names to the name of the pin driving them.
	drivers := make(map[string]string, len(ins)+len(outs))
	chipIn := make(map[string]bool, len(ins))
	for _, i := range ins {
		drivers[i] = name + "." + i
		chipIn[i] = true
	}
	read := make(map[string]bool, len(outs))
	for _, o := range outs {
		if chipIn[o] {
			return nil, errors.New("pin " + o + " is both an input and an output of " + name)
		}
		read[o] = true
	}

	type use struct{ wire, pin string }
	var readers, driven []use

	for _, p := range parts {
		for _, c := range p.Conns {
			pn := p.Name + "." + c.PP
			switch p.pinType(c.PP) {
			case typeInput:
				readers = append(readers, use{c.CP, pn})
				read[c.CP] = true
			case typeOutput:
				switch {
				case isConstant(c.CP):
					return nil, errors.New(pn + ":" + c.CP + ": output pin connected to constant " + c.CP + " input")
				case chipIn[c.CP]:
					return nil, errors.New(pn + ":" + c.CP + ": chip input pin used as output")
				}
				if d, ok := drivers[c.CP]; ok {
					return nil, errors.New(pn + ":" + c.CP + ": output pin already used as output by " + d)
				}
				drivers[c.CP] = pn
				driven = append(driven, use{c.CP, pn})
			default:
				return nil, errors.New("invalid pin name " + c.PP + " for part " + p.Name)
			}
		}
	}

	for _, r := range readers {
		if _, ok := drivers[r.wire]; !ok && !isConstant(r.wire) {
			return nil, errors.New("pin " + r.wire + " not connected to any output")
		}
	}
	for _, d := range driven {
		if !read[d.wire] {
			return nil, errors.New("pin " + d.wire + " not connected to any input")
		}
	}

	c := &chip{
		PartSpec{
			Name:    name,
			Inputs:  ins,
			Outputs: outs,
		},
		parts,
	}
	c.PartSpec.Mount = c.mount
	return c.PartSpec.NewPart, nil
}
