// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwtest

import (
	"time"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
	"github.com/sarchlab/akita/v4/sim"

	"github.com/db47h/ttadder/hwlib"
	"github.com/db47h/ttadder/hwsim"
)

// DefaultFreq is the default clock frequency of a Bench: a 10us period.
//
var DefaultFreq = 100 * sim.KHz

// Bench defaults.
//
const (
	// DefaultStepsPerCycle leaves room for 16 gate delays per half cycle.
	DefaultStepsPerCycle = 32
	// DefaultResetCycles is the number of cycles reset is held low at the
	// start of a scenario.
	DefaultResetCycles = 10
)

// DevicePins is the connection string used to mount a device in a Bench.
// Devices must implement the tt_um pinout: inputs ui_in[8], uio_in[8], ena,
// rst_n and outputs uo_out[8], uio_out[8], uio_oe[8].
//
const DevicePins = "ui_in[0..7]=ui_in[0..7], uio_in[0..7]=uio_in[0..7], ena=ena, rst_n=rst_n, " +
	"uo_out[0..7]=uo_out[0..7], uio_out[0..7]=uio_out[0..7], uio_oe[0..7]=uio_oe[0..7]"

// A Sample records the pins of a device at the end of a clock cycle.
//
type Sample struct {
	Cycle  uint64
	Time   time.Duration
	UIIn   uint8
	UIOIn  uint8
	Ena    bool
	RstN   bool
	UOOut  uint8
	UIOOut uint8
	UIOOE  uint8
}

// BenchBuilder configures and builds a Bench.
//
type BenchBuilder struct {
	freq    sim.Freq
	spc     uint
	workers int
	log     logr.Logger
}

// MakeBenchBuilder returns a BenchBuilder with default settings.
//
func MakeBenchBuilder() BenchBuilder {
	return BenchBuilder{
		freq:    DefaultFreq,
		spc:     DefaultStepsPerCycle,
		workers: 1,
		log:     logr.Discard(),
	}
}

// WithFreq sets the clock frequency. It only affects reported times.
//
func (b BenchBuilder) WithFreq(freq sim.Freq) BenchBuilder {
	b.freq = freq
	return b
}

// WithStepsPerCycle sets the number of simulation steps per clock cycle.
//
func (b BenchBuilder) WithStepsPerCycle(spc uint) BenchBuilder {
	b.spc = spc
	return b
}

// WithWorkers sets the number of goroutines used by the simulator. 0 means
// GOMAXPROCS.
//
func (b BenchBuilder) WithWorkers(workers int) BenchBuilder {
	b.workers = workers
	return b
}

// WithLogger sets the logger used to report resets and scenario progress.
//
func (b BenchBuilder) WithLogger(log logr.Logger) BenchBuilder {
	b.log = log
	return b
}

// Build mounts device in a new Bench. The device is held in reset with ena
// high until the first call to Reset or SetRstN.
//
func (b BenchBuilder) Build(device hwsim.NewPartFn) (*Bench, error) {
	if b.freq <= 0 {
		return nil, errors.Errorf("invalid clock frequency %v", float64(b.freq))
	}
	tb := &Bench{
		freq: b.freq,
		log:  b.log,
		ena:  true,
	}
	c, err := hwsim.NewCircuit(b.workers, b.spc,
		hwlib.InputN(tbWidth, func() int64 { return int64(tb.uiIn) })("out[0..7]=ui_in[0..7]"),
		hwlib.InputN(tbWidth, func() int64 { return int64(tb.uioIn) })("out[0..7]=uio_in[0..7]"),
		hwlib.Input(func() bool { return tb.ena })("out=ena"),
		hwlib.Input(func() bool { return tb.rstN })("out=rst_n"),
		device(DevicePins),
		hwlib.OutputN(tbWidth, func(v int64) { tb.uoOut = uint8(v) })("in[0..7]=uo_out[0..7]"),
		hwlib.OutputN(tbWidth, func(v int64) { tb.uioOut = uint8(v) })("in[0..7]=uio_out[0..7]"),
		hwlib.OutputN(tbWidth, func(v int64) { tb.uioOE = uint8(v) })("in[0..7]=uio_oe[0..7]"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "mount device")
	}
	tb.c = c
	// move to the falling edge of the first cycle: inputs are always applied
	// in the second half of a cycle.
	c.Tick()
	return tb, nil
}

const tbWidth = 8

// Bench is a clocked test bench for a device with the tt_um pinout. It plays
// the role of the simulator side of a cocotb test: inputs set with the Set
// methods are applied after a falling clock edge and sampled by the device on
// the next rising edge; outputs are read once the rising edge has propagated.
//
// A Bench is not safe for concurrent use.
//
type Bench struct {
	c    *hwsim.Circuit
	freq sim.Freq
	log  logr.Logger

	uiIn, uioIn          uint8
	ena, rstN            bool
	uoOut, uioOut, uioOE uint8

	cycles uint64
	trace  []Sample
}

// SetUIIn sets the value of the ui_in pins.
//
func (b *Bench) SetUIIn(v uint8) { b.uiIn = v }

// SetUIOIn sets the value of the uio_in pins.
//
func (b *Bench) SetUIOIn(v uint8) { b.uioIn = v }

// SetEna sets the ena pin.
//
func (b *Bench) SetEna(v bool) { b.ena = v }

// SetRstN sets the active low reset pin.
//
func (b *Bench) SetRstN(v bool) { b.rstN = v }

// UOOut returns the value of the uo_out pins.
//
func (b *Bench) UOOut() uint8 { return b.uoOut }

// UIOOut returns the value of the uio_out pins.
//
func (b *Bench) UIOOut() uint8 { return b.uioOut }

// UIOOE returns the value of the uio_oe pins.
//
func (b *Bench) UIOOE() uint8 { return b.uioOE }

// ClockCycles runs the simulation for n clock cycles.
//
func (b *Bench) ClockCycles(n int) {
	for i := 0; i < n; i++ {
		b.c.Tock()
		b.c.Tick()
		b.cycles++
		b.trace = append(b.trace, Sample{
			Cycle:  b.cycles,
			Time:   b.SimTime(),
			UIIn:   b.uiIn,
			UIOIn:  b.uioIn,
			Ena:    b.ena,
			RstN:   b.rstN,
			UOOut:  b.uoOut,
			UIOOut: b.uioOut,
			UIOOE:  b.uioOE,
		})
	}
}

// Reset holds rst_n low for the given number of cycles then releases it.
// The release is sampled by the device on the next clock edge.
//
func (b *Bench) Reset(cycles int) {
	b.log.V(1).Info("reset", "cycles", cycles, "time", b.SimTime())
	b.rstN = false
	b.ClockCycles(cycles)
	b.rstN = true
}

// Cycles returns the number of clock cycles run so far.
//
func (b *Bench) Cycles() uint64 { return b.cycles }

// SimTime returns the simulated time elapsed since the bench was built.
//
func (b *Bench) SimTime() time.Duration {
	return time.Duration(float64(b.cycles) * float64(time.Second) / float64(b.freq))
}

// Trace returns the samples recorded at the end of each clock cycle.
//
func (b *Bench) Trace() []Sample {
	return append([]Sample(nil), b.trace...)
}

// Close releases the resources of the underlying circuit.
//
func (b *Bench) Close() {
	b.c.Dispose()
}
