// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib_test

import (
	"testing"

	hl "github.com/db47h/ttadder/hwlib"
	hw "github.com/db47h/ttadder/hwsim"
	"github.com/db47h/ttadder/hwtest"
)

// gates built from NAND gates only.
func nandGates(t *testing.T) (not, and, or, xor hw.NewPartFn) {
	t.Helper()
	var err error
	if not, err = hw.Chip("myNot", "in", "out",
		hl.Nand("a=in, b=in, out=out"),
	); err != nil {
		t.Fatal(err)
	}
	if and, err = hw.Chip("myAnd", "a, b", "out",
		hl.Nand("a=a, b=b, out=nandAB"),
		not("in=nandAB, out=out"),
	); err != nil {
		t.Fatal(err)
	}
	if or, err = hw.Chip("myOr", "a, b", "out",
		not("in=a, out=notA"),
		not("in=b, out=notB"),
		hl.Nand("a=notA, b=notB, out=out"),
	); err != nil {
		t.Fatal(err)
	}
	if xor, err = hw.Chip("myXor", "a, b", "out",
		hl.Nand("a=a, b=b, out=nandAB"),
		hl.Nand("a=a, b=nandAB, out=w0"),
		hl.Nand("a=b, b=nandAB, out=w1"),
		hl.Nand("a=w0, b=w1, out=out"),
	); err != nil {
		t.Fatal(err)
	}
	return not, and, or, xor
}

func TestNandGates(t *testing.T) {
	not, and, or, xor := nandGates(t)
	hwtest.ComparePart(t, testTPC, hl.Not, not)
	hwtest.ComparePart(t, testTPC, hl.And, and)
	hwtest.ComparePart(t, testTPC, hl.Or, or)
	hwtest.ComparePart(t, testTPC, hl.Xor, xor)
}

func TestMuxN(t *testing.T) {
	m, err := hw.Chip("myMux4", "a[4], b[4], sel", "out[4]",
		hl.Mux("a=a[0], b=b[0], sel=sel, out=out[0]"),
		hl.Mux("a=a[1], b=b[1], sel=sel, out=out[1]"),
		hl.Mux("a=a[2], b=b[2], sel=sel, out=out[2]"),
		hl.Mux("a=a[3], b=b[3], sel=sel, out=out[3]"),
	)
	if err != nil {
		t.Fatal(err)
	}
	hwtest.ComparePart(t, testTPC, hl.MuxN(4), m)
}

func TestMuxFromGates(t *testing.T) {
	not, and, or, _ := nandGates(t)
	m, err := hw.Chip("myMux", "a, b, sel", "out",
		not("in=sel, out=notSel"),
		and("a=a, b=notSel, out=w0"),
		and("a=b, b=sel, out=w1"),
		or("a=w0, b=w1, out=out"),
	)
	if err != nil {
		t.Fatal(err)
	}
	hwtest.ComparePart(t, testTPC, hl.Mux, m)
}
