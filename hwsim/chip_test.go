// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsim_test

import (
	"testing"

	hl "github.com/db47h/ttadder/hwlib"
	hw "github.com/db47h/ttadder/hwsim"
)

func TestChip_errors(t *testing.T) {
	unkChip, err := hw.Chip("TESTCHIP", "a, b", "out",
		// chip input a is unused
		hl.Nand("a=b, b=b, out=out"),
	)
	if err != nil {
		t.Fatal(err)
	}
	data := []struct {
		name  string
		in    string
		out   string
		parts hw.Parts
		err   string
	}{
		{"true_out", "a, b", "out", hw.Parts{
			hl.Nand("a=a, b=b, out=true"),
			hl.Nand("a=a, b=b, out=out"),
		}, "NAND.out:true: output pin connected to constant true input"},
		{"false_out", "a, b", "out", hw.Parts{
			hl.Nand("a=a, b=b, out=false"),
			hl.Nand("a=a, b=b, out=out"),
		}, "NAND.out:false: output pin connected to constant false input"},
		{"input_out", "a, b", "out", hw.Parts{
			hl.Nand("a=a, b=b, out=a"),
			hl.Nand("a=a, b=b, out=out"),
		}, "NAND.out:a: chip input pin used as output"},
		{"multi_out", "a, b", "out", hw.Parts{
			hl.Nand("a=a, b=b, out=x"),
			hl.Nand("a=a, b=b, out=x"),
			hl.Not("in=x, out=out"),
		}, "NAND.out:x: output pin already used as output by NAND.out"},
		{"no_output", "a, b", "out", hw.Parts{
			hl.Nand("a=a, b=wx, out=out"),
		}, "pin wx not connected to any output"},
		{"no_input", "a, b", "out", hw.Parts{
			hl.Nand("a=a, b=b, out=foo"),
			hl.Nand("a=a, b=b, out=out"),
		}, "pin foo not connected to any input"},
		{"in_and_out", "a, b", "b", nil, "pin b is both an input and an output of in_and_out"},
		{"unconnected_in", "a, b", "out", nil, ""},
		{"unknown_pin", "a, b", "out", hw.Parts{
			hl.Nand("a=a, typo=b, out=out"),
		}, "invalid pin name typo for part NAND"},
		{"unknown_chip_pin", "a, b", "out", hw.Parts{
			unkChip("a=a, typo=b, out=out"),
		}, "invalid pin name typo for part TESTCHIP"},
		{"chip_ok", "a, b", "out", hw.Parts{
			unkChip("a=a, b=b, out=out"),
		}, ""},
		{"bad_spec", "a, b[x]", "out", nil, `bad_spec inputs: in "a, b[x]": invalid bus size in "b[x]"`},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			_, err := hw.Chip(d.name, d.in, d.out, d.parts...)
			if err == nil && d.err != "" || err != nil && err.Error() != d.err {
				t.Errorf("Got error %q, expected %q", err, d.err)
			}
		})
	}
}

func TestChip_omitted_pins(t *testing.T) {
	var a, b, c, tr, f, o0, o1 int
	dummy := (&hw.PartSpec{
		Name:    "dummy",
		Inputs:  hw.IO("a, b, c, t, f"),
		Outputs: hw.IO("o0, o1"),
		Mount: func(s *hw.Socket) []hw.Component {
			a, b, c, tr, f, o0, o1 = s.Pin("a"), s.Pin("b"), s.Pin("c"), s.Pin("t"), s.Pin("f"), s.Pin("o0"), s.Pin("o1")
			return nil
		}}).NewPart
	// inspecting o0 and o1 shows that another dummy wire was allocated for dummy.o1
	wrapper, err := hw.Chip("wrapper", "wa, wb", "wo0, wo1",
		dummy("a=wa, c=clk, t=true, f=false, o0=wo0"),
	)
	if err != nil {
		trace(t, err)
		t.Fatal(err)
	}

	cc, err := hw.NewCircuit(0, 0, wrapper(""))
	if err != nil {
		t.Fatal(err)
	}
	defer cc.Dispose()

	if a != 0 || b != 0 || f != 0 { // 0 = false
		t.Errorf("a = %v, b = %v, f = %v, all must be 0", a, b, f)
	}
	if tr != 1 { // 1 = true
		t.Errorf("t = %v, must be 1", tr)
	}
	if c != 2 { // 2 = clk
		t.Errorf("c = %v, must be 2", c)
	}
	if o0 < 3 || o1 < 3 || o0 == o1 {
		t.Errorf("o0 = %v, o1 = %v, must be distinct and >= 3", o0, o1)
	}
}

func TestChip_bus_to_constant(t *testing.T) {
	var out int64
	c4, err := hw.Chip("C4", "", "out[4]",
		hl.MuxN(4)("a[0..3]=true, b[0..3]=false, sel=false, out[0..3]=out[0..3]"),
	)
	if err != nil {
		t.Fatal(err)
	}
	c, err := hw.NewCircuit(0, testTPC,
		c4("out[0..1]=o[0..1], out[2..3]=o[2..3]"),
		hl.OutputN(4, func(v int64) { out = v })("in[0..3]=o[0..3]"),
	)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()
	c.TickTock()
	if out != 0xf {
		t.Fatalf("expected out = 0xf, got %#x", out)
	}
}
