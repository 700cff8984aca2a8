// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwtest

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// A Mismatch is returned by Run when a device output does not have the
// expected value.
//
type Mismatch struct {
	Scenario string
	Step     int
	Note     string
	Signal   string
	Want     uint8
	Got      uint8
	Cycle    uint64
	Time     time.Duration
}

func (m *Mismatch) Error() string {
	step := fmt.Sprintf("step %d", m.Step)
	if m.Note != "" {
		step += " (" + m.Note + ")"
	}
	return fmt.Sprintf("%s: %s: %s = %#08b, expected %#08b at cycle %d (%v)",
		m.Scenario, step, m.Signal, m.Got, m.Want, m.Cycle, m.Time)
}

// Run runs a scenario on the given bench. It stops at the first output that
// does not match the expected value and returns a *Mismatch describing it.
// Context cancellation is checked between vectors.
//
// Every scenario starts from the same conditions whatever the bench ran
// before: ena high, ui_in and uio_in cleared, then rst_n held low for
// s.Reset cycles (DefaultResetCycles if 0).
//
func Run(ctx context.Context, b *Bench, s Scenario) error {
	if err := s.check(); err != nil {
		return err
	}
	log := b.log.WithValues("scenario", s.Name)
	log.Info("start")

	reset := s.Reset
	if reset == 0 {
		reset = DefaultResetCycles
	}
	b.SetEna(true)
	b.SetUIIn(0)
	b.SetUIOIn(0)
	b.Reset(reset)

	for i, v := range s.Steps {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, s.Name)
		}
		if v.Note != "" {
			log.Info(v.Note)
		}
		if v.Reset > 0 {
			b.Reset(v.Reset)
		}
		if v.UIIn != nil {
			b.SetUIIn(*v.UIIn)
		}
		if v.UIOIn != nil {
			b.SetUIOIn(*v.UIOIn)
		}
		if v.Ena != nil {
			b.SetEna(*v.Ena)
		}
		if v.RstN != nil {
			b.SetRstN(*v.RstN)
		}
		cycles := v.Cycles
		if cycles == 0 {
			cycles = 1
		}
		b.ClockCycles(cycles)

		mismatch := func(signal string, want, got uint8) error {
			return &Mismatch{
				Scenario: s.Name,
				Step:     i,
				Note:     v.Note,
				Signal:   signal,
				Want:     want,
				Got:      got,
				Cycle:    b.Cycles(),
				Time:     b.SimTime(),
			}
		}
		if v.Expect != nil && b.UOOut() != *v.Expect {
			return mismatch("uo_out", *v.Expect, b.UOOut())
		}
		if v.ExpectUIO != nil && b.UIOOut() != *v.ExpectUIO {
			return mismatch("uio_out", *v.ExpectUIO, b.UIOOut())
		}
	}

	log.Info("passed", "cycles", b.Cycles(), "time", b.SimTime())
	return nil
}
