package automaton

// Generation is one row of cell states. Index i-1 is adjacent to index 0
// and index N-1 is adjacent to index 0: positions wrap toroidally.
type Generation []bool

// Clone returns an independent copy of the generation.
func (g Generation) Clone() Generation {
	c := make(Generation, len(g))
	copy(c, g)
	return c
}

// Population returns the number of live cells.
func (g Generation) Population() int {
	n := 0
	for _, alive := range g {
		if alive {
			n++
		}
	}
	return n
}

// RuleTable holds one transition entry per 3-bit (left,center,right)
// neighborhood pattern. The array length makes the 8-entry invariant
// structural: a table of any other size cannot exist.
type RuleTable [8]bool

// TableForRule derives the transition table for a Wolfram rule number.
// Bit i of the rule number (bit 0 least significant) becomes table[7-i],
// so that pattern 7 (all-live) addresses the highest-order bit via the
// table[7-pattern] lookup in Step.
func TableForRule(rule uint8) RuleTable {
	var t RuleTable
	for i := 0; i < 8; i++ {
		t[7-i] = rule>>i&1 == 1
	}
	return t
}

// Step computes the next generation under the given transition table.
// For each index the neighborhood pattern is 4*left + 2*center + right with
// toroidally wrapped neighbors, and the successor state is table[7-pattern].
// The input generation is not modified. An empty generation yields an empty
// result; a single-cell generation is its own left and right neighbor.
func Step(g Generation, table RuleTable) Generation {
	n := len(g)
	next := make(Generation, n)
	for i := 0; i < n; i++ {
		pattern := 0
		if g[(i-1+n)%n] {
			pattern |= 4
		}
		if g[i] {
			pattern |= 2
		}
		if g[(i+1)%n] {
			pattern |= 1
		}
		next[i] = table[7-pattern]
	}
	return next
}
