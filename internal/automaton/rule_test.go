package automaton_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"rulescope/internal/automaton"
)

// seeded returns a reproducible random generation of length n.
func seeded(n int, seed int64) automaton.Generation {
	rng := rand.New(rand.NewSource(seed))
	g := make(automaton.Generation, n)
	for i := range g {
		g[i] = rng.Intn(2) == 1
	}
	return g
}

var _ = Describe("TableForRule", func() {
	It("maps bit i of the rule number to table[7-i]", func() {
		table := automaton.TableForRule(1) // only bit 0 set
		Expect(table[7]).To(BeTrue())
		for i := 0; i < 7; i++ {
			Expect(table[i]).To(BeFalse())
		}

		table = automaton.TableForRule(128) // only bit 7 set
		Expect(table[0]).To(BeTrue())
	})

	It("produces the canonical rule 30 table", func() {
		// 30 = 0b00011110: patterns 1,2,3,4 live.
		table := automaton.TableForRule(30)
		want := map[int]bool{1: true, 2: true, 3: true, 4: true}
		for pattern := 0; pattern < 8; pattern++ {
			Expect(table[7-pattern]).To(Equal(want[pattern]),
				"pattern %d", pattern)
		}
	})
})

var _ = Describe("Step", func() {
	It("is deterministic for every rule number", func() {
		g := seeded(64, 7)
		for r := 0; r < 256; r++ {
			table := automaton.TableForRule(uint8(r))
			first := automaton.Step(g, table)
			second := automaton.Step(g, table)
			Expect(second).To(Equal(first), "rule %d", r)
		}
	})

	It("does not modify its input", func() {
		g := seeded(32, 3)
		before := g.Clone()
		automaton.Step(g, automaton.TableForRule(110))
		Expect(g).To(Equal(before))
	})

	It("maps any generation to all-live under rule 255", func() {
		g := seeded(40, 11)
		next := automaton.Step(g, automaton.TableForRule(255))
		Expect(next.Population()).To(Equal(40))
	})

	It("maps any generation to all-dead under rule 0", func() {
		g := seeded(40, 13)
		next := automaton.Step(g, automaton.TableForRule(0))
		Expect(next.Population()).To(BeZero())
	})

	It("grows rule 30 from a single center cell to exactly three live cells", func() {
		g := make(automaton.Generation, 31)
		g[15] = true
		next := automaton.Step(g, automaton.TableForRule(30))
		Expect(next.Population()).To(Equal(3))
		Expect(next[14]).To(BeTrue())
		Expect(next[15]).To(BeTrue())
		Expect(next[16]).To(BeTrue())
	})

	It("wraps neighbors toroidally", func() {
		// Rule 2 (pattern 001 only): a live cell spawns its left neighbor
		// in the next generation and dies itself.
		g := make(automaton.Generation, 5)
		g[0] = true
		next := automaton.Step(g, automaton.TableForRule(2))
		Expect(next[4]).To(BeTrue())
		Expect(next.Population()).To(Equal(1))
	})

	It("treats a single cell as its own left and right neighbor", func() {
		for r := 0; r < 256; r++ {
			table := automaton.TableForRule(uint8(r))
			for _, alive := range []bool{false, true} {
				g := automaton.Generation{alive}
				next := automaton.Step(g, table)

				pattern := 0
				if alive {
					pattern = 7
				}
				Expect(next[0]).To(Equal(table[7-pattern]), "rule %d alive=%v", r, alive)
			}
		}
	})

	It("returns an empty result for an empty generation", func() {
		next := automaton.Step(automaton.Generation{}, automaton.TableForRule(90))
		Expect(next).To(BeEmpty())
	})
})
