package automaton

// History is a bounded FIFO window of past generations, oldest first.
// Appending beyond the window size evicts the oldest entry.
type History struct {
	max  int
	gens []Generation
}

// NewHistory creates a window holding at most max generations.
// A non-positive max yields a window that retains nothing.
func NewHistory(max int) *History {
	if max < 0 {
		max = 0
	}
	return &History{max: max}
}

// Append pushes a generation onto the newest end, evicting from the oldest
// end if the window overflows.
func (h *History) Append(g Generation) {
	h.gens = append(h.gens, g)
	if len(h.gens) > h.max {
		h.gens = h.gens[len(h.gens)-h.max:]
	}
}

// Reset empties the window.
func (h *History) Reset() {
	h.gens = nil
}

// Resize changes the window size. If the current contents exceed the new
// size the oldest generations are evicted; a larger window adds no padding.
func (h *History) Resize(max int) {
	if max < 0 {
		max = 0
	}
	h.max = max
	if len(h.gens) > max {
		h.gens = h.gens[len(h.gens)-max:]
	}
}

// Len returns the number of retained generations.
func (h *History) Len() int { return len(h.gens) }

// Max returns the window size.
func (h *History) Max() int { return h.max }

// At returns the i-th retained generation, oldest first.
func (h *History) At(i int) Generation { return h.gens[i] }

// Snapshot returns the retained generations oldest first. The slice is a
// copy; the generations themselves are shared and must not be mutated.
func (h *History) Snapshot() []Generation {
	out := make([]Generation, len(h.gens))
	copy(out, h.gens)
	return out
}
