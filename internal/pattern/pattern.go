// Package pattern provides named seed patterns for the first generation.
package pattern

import (
	"math/rand"
	"sort"

	"rulescope/internal/automaton"
)

// Seeder builds an initial generation of n cells. The rng is only consulted
// by stochastic patterns; deterministic patterns ignore it.
type Seeder func(n int, rng *rand.Rand) automaton.Generation

var seeders = map[string]Seeder{}

// Register adds a seeder under the provided name.
func Register(name string, s Seeder) {
	if name == "" || s == nil {
		return
	}
	seeders[name] = s
}

// Get returns the named seeder, or nil if unknown.
func Get(name string) Seeder {
	return seeders[name]
}

// Names returns the registered pattern names, sorted.
func Names() []string {
	names := make([]string, 0, len(seeders))
	for name := range seeders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register("center", func(n int, _ *rand.Rand) automaton.Generation {
		g := make(automaton.Generation, n)
		if n > 0 {
			g[n/2] = true
		}
		return g
	})
	Register("random", func(n int, rng *rand.Rand) automaton.Generation {
		g := make(automaton.Generation, n)
		for i := range g {
			g[i] = rng.Intn(2) == 1
		}
		return g
	})
	Register("alternate", func(n int, _ *rand.Rand) automaton.Generation {
		g := make(automaton.Generation, n)
		for i := range g {
			g[i] = i%2 == 0
		}
		return g
	})
	Register("edges", func(n int, _ *rand.Rand) automaton.Generation {
		g := make(automaton.Generation, n)
		if n > 0 {
			g[0] = true
			g[n-1] = true
		}
		return g
	})
	Register("full", func(n int, _ *rand.Rand) automaton.Generation {
		g := make(automaton.Generation, n)
		for i := range g {
			g[i] = true
		}
		return g
	})
	Register("empty", func(n int, _ *rand.Rand) automaton.Generation {
		return make(automaton.Generation, n)
	})
}
