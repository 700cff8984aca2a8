// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/db47h/ttadder"
)

var stepCmd = &cobra.Command{
	Use:   "step op...",
	Short: "Evaluate operations on the behavioral model",
	Long: `Step applies a sequence of operations to a fresh behavioral model, one per
clock cycle, and prints the outputs after each of them.

Operations:
  c:A,B   combine: output A + B
  a:A     accumulate: output (A + previous sum) mod 32
  r       reset
  h       hold (ena low)

Operands are decimal or 0x prefixed hexadecimal numbers in the range 0..15.`,
	Example: "  ttadder step c:15,15 a:7 a:2 r",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ops := make([]ttadder.Inputs, 0, len(args))
		for _, a := range args {
			in, err := parseOp(a)
			if err != nil {
				return err
			}
			ops = append(ops, in)
		}
		var m ttadder.Model
		out := cmd.OutOrStdout()
		for i, in := range ops {
			o := m.Clock(in)
			fmt.Fprintf(out, "%-8s sum=%-2d uo_out=%#08b acc=%d\n", args[i], o.Sum, o.UOOut(), m.State().Accumulator())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stepCmd)
}

func parseOperand(s string) (ttadder.Operand, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 8)
	if err != nil {
		return 0, errors.Wrapf(err, "operand %q", s)
	}
	o := ttadder.Operand(v)
	if !o.Valid() {
		return 0, errors.Errorf("operand %d out of range", v)
	}
	return o, nil
}

func parseOp(op string) (ttadder.Inputs, error) {
	in := ttadder.Inputs{Enable: true, ResetN: true}
	code, args := op, ""
	if i := strings.IndexByte(op, ':'); i >= 0 {
		code, args = op[:i], op[i+1:]
	}
	switch code {
	case "r":
		in.ResetN = false
	case "h":
		in.Enable = false
	case "a":
		a, err := parseOperand(args)
		if err != nil {
			return in, errors.Wrap(err, op)
		}
		in.A, in.Mode = a, ttadder.Accumulate
	case "c":
		ab := strings.Split(args, ",")
		if len(ab) != 2 {
			return in, errors.Errorf("%s: expected two operands", op)
		}
		a, err := parseOperand(ab[0])
		if err != nil {
			return in, errors.Wrap(err, op)
		}
		b, err := parseOperand(ab[1])
		if err != nil {
			return in, errors.Wrap(err, op)
		}
		in.A, in.B, in.Mode = a, b, ttadder.Combine
	default:
		return in, errors.Errorf("unknown operation %q", op)
	}
	if (code == "r" || code == "h") && args != "" {
		return in, errors.Errorf("%s: unexpected operands", op)
	}
	return in, nil
}
