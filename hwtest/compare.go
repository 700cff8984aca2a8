// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing circuits and the test
// bench used to verify the accumulating adder.
//
package hwtest

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/db47h/ttadder/hwlib"
	"github.com/db47h/ttadder/hwsim"
)

func connString(pins []string, prefix string) string {
	var b strings.Builder
	for _, n := range pins {
		if b.Len() > 0 {
			b.WriteRune(',')
		}
		b.WriteString(n)
		b.WriteRune('=')
		b.WriteString(prefix)
		b.WriteString(n)
	}
	return b.String()
}

func joinConns(a, b string) string {
	if a == "" || b == "" {
		return a + b
	}
	return a + "," + b
}

func randBool(r *rand.Rand) bool {
	return r.Int63()&(1<<62) != 0
}

// ComparePart takes two parts and compares their outputs given the same inputs.
// Both parts must have the same Input/Output interface. The parts are
// simulated in the same circuit with tpc steps per clock cycle. After each
// clock cycle, all outputs are compared and the test fails on the first
// difference.
//
// Inputs are all 0, then all 1, then random values for 2^n cycles where n is
// the number of inputs, capped to 12.
//
func ComparePart(t *testing.T, tpc uint, part1 hwsim.NewPartFn, part2 hwsim.NewPartFn) {
	t.Helper()

	ps1, ps2 := part1(""), part2("")

	// compare specs
	if len(ps1.Inputs) != len(ps2.Inputs) {
		t.Fatal("len(ps1.Inputs) != len(ps2.Inputs)")
	}
	if len(ps1.Outputs) != len(ps2.Outputs) {
		t.Fatal("len(ps1.Outputs) != len(ps2.Outputs)")
	}
	for i := range ps1.Inputs {
		if ps1.Inputs[i] != ps2.Inputs[i] {
			t.Fatalf("ps1.Inputs[i] = %q != ps2.Inputs[i] = %q", ps1.Inputs[i], ps2.Inputs[i])
		}
	}
	for i := range ps1.Outputs {
		if ps1.Outputs[i] != ps2.Outputs[i] {
			t.Fatalf("ps1.Outputs[i] = %q != ps2.Outputs[i] = %q", ps1.Outputs[i], ps2.Outputs[i])
		}
	}

	inputs := make([]bool, len(ps1.Inputs))
	outputs := make([][2]bool, len(ps1.Outputs))

	// inputs are wired by name, outputs of each part get their own prefix.
	in := connString(ps1.Inputs, "")
	parts := hwsim.Parts{
		part1(joinConns(in, connString(ps1.Outputs, "l_"))),
		part2(joinConns(in, connString(ps2.Outputs, "r_"))),
	}
	for i, n := range ps1.Inputs {
		k := i
		parts = append(parts, hwlib.Input(func() bool { return inputs[k] })("out="+n))
	}
	for i, n := range ps1.Outputs {
		k := i
		parts = append(parts,
			hwlib.Output(func(b bool) { outputs[k][0] = b })("in=l_"+n),
			hwlib.Output(func(b bool) { outputs[k][1] = b })("in=r_"+n))
	}

	c, err := hwsim.NewCircuit(0, tpc, parts...)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	errString := func(oname string, ex, got bool) string {
		var b strings.Builder
		for i, n := range ps1.Inputs {
			if b.Len() > 0 {
				b.WriteString(", ")
			}
			b.WriteString(n)
			b.WriteRune('=')
			b.WriteString(strconv.FormatBool(inputs[i]))
		}
		return "\nExpected " + b.String() + " => " + oname + "=" + strconv.FormatBool(ex) + "\nGot " + strconv.FormatBool(got)
	}
	check := func() {
		t.Helper()
		c.Tock()
		c.Tick()
		for o, out := range outputs {
			if out[0] != out[1] {
				t.Fatal(errString(ps1.Outputs[o], out[0], out[1]))
			}
		}
	}

	iter := len(ps1.Inputs)
	if iter > 12 {
		iter = 12
	}
	iter = 1 << uint(iter)

	start := time.Now()
	r := rand.New(rand.NewSource(start.UnixNano()))

	c.Tick()

	// try all 0
	check()

	// try all 1
	for in := range inputs {
		inputs[in] = true
	}
	check()

	for i := 0; i < iter; i++ {
		for in := range inputs {
			inputs[in] = randBool(r)
		}
		check()
	}

	elapsed := time.Since(start)
	ticks := c.Steps() / c.SPC()
	t.Logf("%d components. %d steps in %v. %d clock ticks => %.2f Hz", c.Size(), c.Steps(), elapsed, ticks, float64(ticks)/(float64(elapsed)/float64(time.Second)))
}
