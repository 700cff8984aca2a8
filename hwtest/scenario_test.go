// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwtest_test

import (
	"context"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/db47h/ttadder/hwtest"
)

func u8(v uint8) *uint8 { return &v }

var _ = Describe("LoadScenarios", func() {
	It("should decode scenarios", func() {
		ss, err := hwtest.LoadScenarios(strings.NewReader(`
- name: first
  reset: 3
  steps:
    - {note: "load 0x21", ui_in: 0x21, expect: 0x21}
    - {ena: false, rst_n: false, cycles: 2, uio_in: 1, expect_uio: 1}
- name: second
  steps:
    - {reset: 4}
`))
		Expect(err).NotTo(HaveOccurred())
		Expect(ss).To(HaveLen(2))
		Expect(ss[0].Name).To(Equal("first"))
		Expect(ss[0].Reset).To(Equal(3))
		Expect(ss[0].Steps).To(HaveLen(2))
		Expect(ss[0].Steps[0].Note).To(Equal("load 0x21"))
		Expect(ss[0].Steps[0].UIIn).To(Equal(u8(0x21)))
		Expect(ss[0].Steps[0].Expect).To(Equal(u8(0x21)))
		Expect(ss[0].Steps[0].Ena).To(BeNil())
		Expect(*ss[0].Steps[1].Ena).To(BeFalse())
		Expect(*ss[0].Steps[1].RstN).To(BeFalse())
		Expect(ss[0].Steps[1].Cycles).To(Equal(2))
		Expect(ss[0].Steps[1].ExpectUIO).To(Equal(u8(1)))
		Expect(ss[1].Steps[0].Reset).To(Equal(4))
	})

	It("should accept an empty document", func() {
		ss, err := hwtest.LoadScenarios(strings.NewReader(""))
		Expect(err).NotTo(HaveOccurred())
		Expect(ss).To(BeEmpty())
	})

	DescribeTable("should reject invalid scenarios",
		func(doc string) {
			_, err := hwtest.LoadScenarios(strings.NewReader(doc))
			Expect(err).To(HaveOccurred())
		},
		Entry("duplicate names", "[{name: a}, {name: a}]"),
		Entry("missing name", "[{steps: [{cycles: 1}]}]"),
		Entry("negative reset", "[{name: a, reset: -1}]"),
		Entry("negative cycles", "[{name: a, steps: [{cycles: -2}]}]"),
		Entry("out of range value", "[{name: a, steps: [{ui_in: 256}]}]"),
		Entry("not a list", "name: a"),
	)

	It("should report missing files", func() {
		_, err := hwtest.LoadScenarioFile("testdata/no_such_file.yaml")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Run", func() {
	var b *hwtest.Bench

	BeforeEach(func() {
		var err error
		b, err = hwtest.MakeBenchBuilder().WithLogger(GinkgoLogr).Build(echo())
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(b.Close)
	})

	It("should pass a matching scenario", func() {
		s := hwtest.Scenario{Name: "echo", Steps: []hwtest.Vector{
			{UIIn: u8(1), Expect: u8(1)},
			{UIIn: u8(0xf0), Cycles: 3, Expect: u8(0xf0)},
			{UIOIn: u8(0x0c), Expect: u8(0xf0), ExpectUIO: u8(0x0c)},
		}}
		Expect(hwtest.Run(context.Background(), b, s)).To(Succeed())
		Expect(b.Cycles()).To(Equal(uint64(hwtest.DefaultResetCycles + 5)))
	})

	It("should stop at the first mismatch", func() {
		s := hwtest.Scenario{Name: "bad", Reset: 1, Steps: []hwtest.Vector{
			{UIIn: u8(2), Expect: u8(2)},
			{Note: "wrong", UIIn: u8(3), Expect: u8(4)},
			{UIIn: u8(5), Expect: u8(5)},
		}}
		err := hwtest.Run(context.Background(), b, s)
		Expect(err).To(HaveOccurred())

		m, ok := err.(*hwtest.Mismatch)
		Expect(ok).To(BeTrue())
		Expect(*m).To(Equal(hwtest.Mismatch{
			Scenario: "bad",
			Step:     1,
			Note:     "wrong",
			Signal:   "uo_out",
			Want:     4,
			Got:      3,
			Cycle:    3,
			Time:     b.SimTime(),
		}))
		Expect(m.Error()).To(ContainSubstring("bad: step 1 (wrong): uo_out = 0b00000011, expected 0b00000100"))
		Expect(b.Cycles()).To(Equal(uint64(3)))
	})

	It("should check uio_out", func() {
		s := hwtest.Scenario{Name: "uio", Steps: []hwtest.Vector{
			{UIOIn: u8(1), ExpectUIO: u8(0)},
		}}
		err := hwtest.Run(context.Background(), b, s)
		Expect(err).To(BeAssignableToTypeOf(&hwtest.Mismatch{}))
		Expect(err.(*hwtest.Mismatch).Signal).To(Equal("uio_out"))
	})

	It("should clear the inputs left by a previous scenario", func() {
		off := false
		dirty := hwtest.Scenario{Name: "dirty", Steps: []hwtest.Vector{
			{UIIn: u8(0x5a), UIOIn: u8(3), Ena: &off, Expect: u8(0x5a), ExpectUIO: u8(3)},
		}}
		Expect(hwtest.Run(context.Background(), b, dirty)).To(Succeed())

		n := len(b.Trace())
		clean := hwtest.Scenario{Name: "clean", Reset: 2, Steps: []hwtest.Vector{
			{Expect: u8(0), ExpectUIO: u8(0)},
		}}
		Expect(hwtest.Run(context.Background(), b, clean)).To(Succeed())

		tr := b.Trace()
		Expect(tr).To(HaveLen(n + 3))
		for _, s := range tr[n:] {
			Expect(s.Ena).To(BeTrue())
			Expect(s.UIIn).To(BeZero())
			Expect(s.UIOIn).To(BeZero())
		}
		Expect(tr[n].RstN).To(BeFalse())
		Expect(tr[n+2].RstN).To(BeTrue())
	})

	It("should stop when the context is canceled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := hwtest.Run(ctx, b, hwtest.Scenario{Name: "canceled", Steps: []hwtest.Vector{{}}})
		Expect(err).To(MatchError(context.Canceled))
	})
})
