// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwtest_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/akita/v4/sim"

	"github.com/db47h/ttadder/hwtest"
)

var _ = Describe("Bench", func() {
	var b *hwtest.Bench

	BeforeEach(func() {
		var err error
		b, err = hwtest.MakeBenchBuilder().WithLogger(GinkgoLogr).Build(echo())
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(b.Close)
	})

	It("should start with all outputs low", func() {
		Expect(b.UOOut()).To(BeZero())
		Expect(b.UIOOut()).To(BeZero())
		Expect(b.UIOOE()).To(BeZero())
		Expect(b.Cycles()).To(BeZero())
		Expect(b.Trace()).To(BeEmpty())
	})

	It("should show registered inputs after one clock cycle", func() {
		b.SetUIIn(0x5a)
		b.SetUIOIn(0x81)
		b.ClockCycles(1)
		Expect(b.UOOut()).To(Equal(uint8(0x5a)))
		Expect(b.UIOOut()).To(Equal(uint8(0x81)))

		b.SetUIIn(0x33)
		b.ClockCycles(2)
		Expect(b.UOOut()).To(Equal(uint8(0x33)))
		Expect(b.Cycles()).To(Equal(uint64(3)))
	})

	It("should track simulated time at the default frequency", func() {
		b.ClockCycles(5)
		Expect(b.SimTime()).To(Equal(50 * time.Microsecond))
	})

	It("should record every cycle in the trace", func() {
		b.SetEna(false)
		b.Reset(2)
		b.SetUIIn(7)
		b.ClockCycles(1)

		tr := b.Trace()
		Expect(tr).To(HaveLen(3))
		Expect(tr[0]).To(Equal(hwtest.Sample{Cycle: 1, Time: 10 * time.Microsecond}))
		Expect(tr[1].RstN).To(BeFalse())
		Expect(tr[2]).To(Equal(hwtest.Sample{
			Cycle: 3,
			Time:  30 * time.Microsecond,
			UIIn:  7,
			RstN:  true,
			UOOut: 7,
		}))

		tr[0].UOOut = 42
		Expect(b.Trace()[0].UOOut).To(BeZero())
	})

	It("should reject an invalid frequency", func() {
		_, err := hwtest.MakeBenchBuilder().WithFreq(0).Build(echo())
		Expect(err).To(HaveOccurred())
	})

	It("should scale time with the clock frequency", func() {
		fast, err := hwtest.MakeBenchBuilder().
			WithFreq(1 * sim.MHz).
			WithStepsPerCycle(8).
			WithWorkers(2).
			Build(echo())
		Expect(err).NotTo(HaveOccurred())
		defer fast.Close()

		fast.SetUIIn(0xff)
		fast.ClockCycles(4)
		Expect(fast.UOOut()).To(Equal(uint8(0xff)))
		Expect(fast.SimTime()).To(Equal(4 * time.Microsecond))
	})
})
