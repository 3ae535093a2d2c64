package automaton_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"rulescope/internal/automaton"
)

// mark builds a generation whose first cell encodes an id, so eviction
// order is observable.
func mark(id int) automaton.Generation {
	g := make(automaton.Generation, 8)
	for b := 0; b < 8; b++ {
		g[b] = id>>b&1 == 1
	}
	return g
}

var _ = Describe("History", func() {
	It("never exceeds its window size", func() {
		h := automaton.NewHistory(4)
		for i := 0; i < 20; i++ {
			h.Append(mark(i))
			Expect(h.Len()).To(BeNumerically("<=", 4))
		}
	})

	It("retains exactly the most recent generations in push order", func() {
		h := automaton.NewHistory(3)
		for i := 0; i < 7; i++ {
			h.Append(mark(i))
		}
		Expect(h.Len()).To(Equal(3))
		Expect(h.At(0)).To(Equal(mark(4)))
		Expect(h.At(1)).To(Equal(mark(5)))
		Expect(h.At(2)).To(Equal(mark(6)))
	})

	It("resets to empty", func() {
		h := automaton.NewHistory(3)
		h.Append(mark(1))
		h.Reset()
		Expect(h.Len()).To(BeZero())
	})

	It("evicts from the front when shrunk", func() {
		h := automaton.NewHistory(5)
		for i := 0; i < 5; i++ {
			h.Append(mark(i))
		}
		h.Resize(2)
		Expect(h.Len()).To(Equal(2))
		Expect(h.At(0)).To(Equal(mark(3)))
		Expect(h.At(1)).To(Equal(mark(4)))
	})

	It("adds no padding when grown", func() {
		h := automaton.NewHistory(2)
		h.Append(mark(1))
		h.Append(mark(2))
		h.Resize(10)
		Expect(h.Len()).To(Equal(2))
	})

	It("retains nothing with a zero window", func() {
		h := automaton.NewHistory(0)
		h.Append(mark(1))
		Expect(h.Len()).To(BeZero())
	})

	It("snapshots independently of later appends", func() {
		h := automaton.NewHistory(3)
		h.Append(mark(1))
		snap := h.Snapshot()
		h.Append(mark(2))
		Expect(snap).To(HaveLen(1))
		Expect(snap[0]).To(Equal(mark(1)))
	})
})
