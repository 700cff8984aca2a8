// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package ttadder

import "strconv"

// An Operand is a 4 bits unsigned integer. Only the low nibble is significant.
//
type Operand uint8

// Valid returns true if o is within 0..15.
//
func (o Operand) Valid() bool { return o <= OperandMask }

// OperandMask masks the significant bits of an operand.
//
const OperandMask = 0xf

// SumMask masks the significant bits of a sum.
//
const SumMask = 0x1f

// Mode selects the second addend.
//
type Mode uint8

// Operating modes.
//
const (
	// Combine adds the two operands a and b.
	Combine Mode = iota
	// Accumulate adds operand a to the registered sum.
	Accumulate
)

func (m Mode) String() string {
	switch m {
	case Combine:
		return "combine"
	case Accumulate:
		return "accumulate"
	}
	return "Mode(" + strconv.Itoa(int(m)) + ")"
}

// Inputs is the set of input values sampled on a rising clock edge.
// B is ignored in Accumulate mode.
//
type Inputs struct {
	A, B   Operand
	Mode   Mode
	Enable bool
	ResetN bool
}

// Outputs are the registered outputs of the circuit.
//
type Outputs struct {
	Sum uint8 // 5 bits sum
}

// UOOut returns the value of the dedicated output pins: the sum in bits 4:0,
// bits 7:5 are always 0.
//
func (o Outputs) UOOut() uint8 { return o.Sum & SumMask }

// UIOOut returns the value of the bidirectional output pins. The circuit does
// not drive them.
//
func (o Outputs) UIOOut() uint8 { return 0 }

// UIOOE returns the output enable mask of the bidirectional pins. All of them
// are inputs.
//
func (o Outputs) UIOOE() uint8 { return 0 }

// State is the content of the circuit's register: the last computed sum. Its
// zero value is the reset state.
//
type State struct {
	sum uint8
}

// Accumulator returns the stored nibble: the low four bits of the last sum.
// Accumulate mode adds to the full 5 bits register, so after an overflow the
// next output is (sum + a) mod 32 and the stored nibble is its low four bits.
//
func (s State) Accumulator() Operand { return Operand(s.sum & OperandMask) }

// Output returns the outputs driven from state s.
//
func (s State) Output() Outputs { return Outputs{s.sum} }

// Step computes the state of the circuit after a rising clock edge where the
// inputs in were sampled in state s. It returns the new state and the
// outputs it drives.
//
// When ResetN is low, the state is cleared regardless of the other inputs.
// When Enable is low, the state is held.
//
func Step(s State, in Inputs) (State, Outputs) {
	switch {
	case !in.ResetN:
		s = State{}
	case !in.Enable:
	default:
		sum := uint8(in.A & OperandMask)
		if in.Mode == Accumulate {
			sum += s.sum
		} else {
			sum += uint8(in.B & OperandMask)
		}
		s = State{sum & SumMask}
	}
	return s, s.Output()
}

// Model is a clocked instance of the circuit. It owns a State and advances it
// with Step on every call to Clock.
//
// A Model is not safe for concurrent use.
//
type Model struct {
	s State
}

// Reset clears the model's state, as would a reset asserted for one cycle.
//
func (m *Model) Reset() {
	m.s = State{}
}

// Clock applies a rising clock edge with inputs in and returns the new
// outputs.
//
func (m *Model) Clock(in Inputs) Outputs {
	var out Outputs
	m.s, out = Step(m.s, in)
	return out
}

// State returns the current state.
//
func (m *Model) State() State { return m.s }
