// Package automaton implements elementary one-dimensional cellular automata
// over the Wolfram rule space 0-255.
//
// The package defines the core simulation types:
//
//   - [Generation]: one row of boolean cell states with toroidal indexing
//   - [RuleTable]: the 8-entry transition table derived from a rule number
//   - [History]: a bounded FIFO window of past generations
//
// # Example
//
//	table := automaton.TableForRule(30)
//	gen := automaton.Generation{false, false, true, false, false}
//	next := automaton.Step(gen, table)
//
// # Thread Safety
//
// None of the types in this package are safe for concurrent use. They are
// designed to be exclusively owned by a single simulation/render call chain.
package automaton
