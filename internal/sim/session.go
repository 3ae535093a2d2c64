// Package sim owns the mutable simulation state: the current generation,
// the history window, the active rule, and playback pacing. A Session is
// the single owner of that state; renderers only ever see snapshots.
package sim

import (
	"fmt"
	"math/rand"
	"time"

	"rulescope/internal/automaton"
	"rulescope/internal/pattern"
	"rulescope/internal/viewport"
)

// maxStepsPerFrame bounds catch-up work when the accumulator runs far
// behind the configured rate (e.g. after the window was blocked).
const maxStepsPerFrame = 256

// Session is the owned simulation context passed by handle into step and
// render. It is not safe for concurrent use: all access happens on the
// single simulation/render call chain.
type Session struct {
	view  viewport.Viewport
	rule  uint8
	table automaton.RuleTable

	gen  automaton.Generation
	hist *automaton.History

	playing bool
	speed   float64 // generations per second
	acc     time.Duration

	// seq counts generation advances; epoch counts discontinuities
	// (reset, resize) that invalidate any derived renderer state.
	seq   uint64
	epoch uint64

	seedName string
	rng      *rand.Rand
}

// Snapshot is the read-only per-frame view of the session consumed by
// renderers. History is ordered oldest first; Gen is the current
// generation and is not part of History.
type Snapshot struct {
	Gen     automaton.Generation
	History []automaton.Generation
	Rule    uint8
	Seq     uint64
	Epoch   uint64
	View    viewport.Viewport
	Playing bool
	Speed   float64
}

// New creates a session seeded with the named pattern.
func New(view viewport.Viewport, rule uint8, seedName string, seed int64) (*Session, error) {
	seeder := pattern.Get(seedName)
	if seeder == nil {
		return nil, fmt.Errorf("sim: unknown seed pattern %q", seedName)
	}
	s := &Session{
		view:     view,
		rule:     rule,
		table:    automaton.TableForRule(rule),
		hist:     automaton.NewHistory(view.Rows),
		playing:  true,
		speed:    60,
		seedName: seedName,
		rng:      rand.New(rand.NewSource(seed)),
	}
	s.gen = seeder(view.Cols, s.rng)
	return s, nil
}

// Rule returns the active rule number.
func (s *Session) Rule() uint8 { return s.rule }

// SetRule replaces the transition table atomically. The current generation
// and history are unaffected.
func (s *Session) SetRule(rule uint8) {
	s.rule = rule
	s.table = automaton.TableForRule(rule)
}

// Playing reports whether the simulation advances on its own.
func (s *Session) Playing() bool { return s.playing }

// SetPlaying starts or stops automatic advancement. Stopping drops any
// accumulated time so resuming does not burst.
func (s *Session) SetPlaying(playing bool) {
	s.playing = playing
	if !playing {
		s.acc = 0
	}
}

// Toggle flips the playback flag.
func (s *Session) Toggle() { s.SetPlaying(!s.playing) }

// Speed returns the configured rate in generations per second.
func (s *Session) Speed() float64 { return s.speed }

// SetSpeed changes the rate, clamped to a sane range.
func (s *Session) SetSpeed(gps float64) {
	if gps < 1 {
		gps = 1
	}
	if gps > 1000 {
		gps = 1000
	}
	s.speed = gps
}

// Viewport returns the current geometry.
func (s *Session) Viewport() viewport.Viewport { return s.view }

// Step advances the simulation by one generation: the current generation is
// appended to the history window and replaced by its successor.
func (s *Session) Step() {
	if len(s.gen) != s.view.Cols {
		panic(fmt.Sprintf("sim: generation length %d does not match viewport cols %d",
			len(s.gen), s.view.Cols))
	}
	s.hist.Append(s.gen)
	s.gen = automaton.Step(s.gen, s.table)
	s.seq++
}

// Advance feeds elapsed wall time into the accumulator and performs zero or
// more steps so the simulation rate stays decoupled from the display
// refresh rate. It returns the number of steps taken.
func (s *Session) Advance(elapsed time.Duration) int {
	if !s.playing || s.view.Cols == 0 {
		return 0
	}
	s.acc += elapsed
	budget := time.Duration(float64(time.Second) / s.speed)
	steps := 0
	for s.acc >= budget && steps < maxStepsPerFrame {
		s.acc -= budget
		s.Step()
		steps++
	}
	if steps == maxStepsPerFrame {
		s.acc = 0
	}
	return steps
}

// Reset reseeds the first generation with the named pattern and clears the
// history window.
func (s *Session) Reset(seedName string) error {
	seeder := pattern.Get(seedName)
	if seeder == nil {
		return fmt.Errorf("sim: unknown seed pattern %q", seedName)
	}
	s.seedName = seedName
	s.gen = seeder(s.view.Cols, s.rng)
	s.hist.Reset()
	s.acc = 0
	s.epoch++
	return nil
}

// Reseed re-runs the current seed pattern.
func (s *Session) Reseed() {
	_ = s.Reset(s.seedName) // seedName was validated when it was set
}

// Resize applies a new viewport. Live cells of the current generation are
// recentered when the grid grows and clipped when it shrinks; the history
// window is cleared and rebounded to the new visible depth.
func (s *Session) Resize(view viewport.Viewport) {
	if view.Cols != s.view.Cols {
		s.gen = viewport.Recenter(s.gen, view.Cols)
	}
	s.view = view
	s.hist.Reset()
	s.hist.Resize(view.Rows)
	s.acc = 0
	s.epoch++
}

// Snapshot captures the current state for rendering.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Gen:     s.gen,
		History: s.hist.Snapshot(),
		Rule:    s.rule,
		Seq:     s.seq,
		Epoch:   s.epoch,
		View:    s.view,
		Playing: s.playing,
		Speed:   s.speed,
	}
}
