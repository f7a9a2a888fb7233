package latch_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/srlatch/latch"
)

var _ = Describe("ValidateButton", func() {
	DescribeTable("raw readings",
		func(raw, want int, wantOK bool) {
			button, ok := latch.ValidateButton(raw)
			Expect(button).To(Equal(want))
			Expect(ok).To(Equal(wantOK))
		},
		Entry("zero", 0, 0, true),
		Entry("one", 1, 1, true),
		Entry("two", 2, 0, false),
		Entry("negative", -1, 0, false),
		Entry("large", 1000, 0, false),
	)
})

var _ = Describe("Follow", func() {
	It("should mirror the button", func() {
		Expect(latch.Follow(0)).To(Equal(0))
		Expect(latch.Follow(1)).To(Equal(1))
	})
})

var _ = Describe("Next", func() {
	It("should set on a press regardless of the previous value", func() {
		for cycle := 0; cycle < latch.NumCycles; cycle++ {
			Expect(latch.Next(1, cycle, 0)).To(Equal(1))
			Expect(latch.Next(1, cycle, 1)).To(Equal(1))
		}
	})

	It("should reset on even cycles without a press", func() {
		for cycle := 0; cycle < latch.NumCycles; cycle += 2 {
			Expect(latch.Next(0, cycle, 0)).To(Equal(0))
			Expect(latch.Next(0, cycle, 1)).To(Equal(0))
		}
	})

	It("should hold on odd cycles without a press", func() {
		for cycle := 1; cycle < latch.NumCycles; cycle += 2 {
			Expect(latch.Next(0, cycle, 0)).To(Equal(0))
			Expect(latch.Next(0, cycle, 1)).To(Equal(1))
		}
	})
})

var _ = Describe("Replay", func() {
	It("should mirror validated input in manual mode", func() {
		raw := []int{1, 0, 2, 1, 0, 0, 0, 0, 0, 0, 0}
		buttons := make([]int, len(raw))
		for i, r := range raw {
			buttons[i], _ = latch.ValidateButton(r)
		}

		states := latch.Replay(latch.ModeManual, buttons)

		Expect(states).To(HaveLen(latch.NumCycles))
		Expect(latch.SRs(states)).To(Equal(
			[]int{1, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0}))
	})

	It("should latch, hold and reset in memory mode", func() {
		draws := []int{0, 1, 0, 0, 1, 0, 0, 0, 0, 0, 0}

		states := latch.Replay(latch.ModeMemory, draws)

		Expect(states).To(HaveLen(latch.NumCycles))
		Expect(latch.SRs(states)).To(Equal(
			[]int{0, 1, 0, 0, 1, 1, 0, 0, 0, 0, 0}))
	})

	It("should hold a set across an odd cycle", func() {
		states := latch.Replay(latch.ModeMemory, []int{1, 0, 0})

		Expect(states).To(Equal([]latch.State{
			{Button: 1, SR: 1},
			{Button: 0, SR: 1},
			{Button: 0, SR: 0},
		}))
	})
})

var _ = Describe("Mode", func() {
	DescribeTable("ParseMode",
		func(in string, want latch.Mode) {
			m, err := latch.ParseMode(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(m).To(Equal(want))
		},
		Entry("number 1", "1", latch.ModeManual),
		Entry("number 2", "2", latch.ModeMemory),
		Entry("name", "Manual", latch.ModeManual),
		Entry("padded name", " memory ", latch.ModeMemory),
	)

	It("should reject unknown modes", func() {
		_, err := latch.ParseMode("3")
		Expect(err).To(MatchError(ContainSubstring("unknown mode")))
	})

	It("should name modes", func() {
		Expect(latch.ModeManual.String()).To(Equal("manual"))
		Expect(latch.ModeMemory.String()).To(Equal("memory"))
		Expect(latch.Mode(3).String()).To(Equal("invalid(3)"))
		Expect(latch.Mode(3).IsValid()).To(BeFalse())
	})
})

var _ = Describe("Classify", func() {
	It("should follow in manual mode", func() {
		Expect(latch.ModeManual.Classify(1, 0)).To(Equal(latch.ActionFollow))
		Expect(latch.ModeManual.Classify(0, 3)).To(Equal(latch.ActionFollow))
	})

	It("should name the memory-mode branch", func() {
		Expect(latch.ModeMemory.Classify(1, 1)).To(Equal(latch.ActionSet))
		Expect(latch.ModeMemory.Classify(0, 4)).To(Equal(latch.ActionReset))
		Expect(latch.ModeMemory.Classify(0, 5)).To(Equal(latch.ActionHold))
	})
})
