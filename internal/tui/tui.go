// Package tui renders the automaton in the terminal: one character per
// cell, newest generation at the bottom, with a population sparkline.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"rulescope/internal/config"
	"rulescope/internal/sim"
	"rulescope/internal/viewport"
)

var (
	bright = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	mid    = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	faint  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	accent = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	paused = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

// chrome is the number of terminal rows reserved for the status line and
// the population graph.
const chrome = 8

const popWindow = 120

type model struct {
	cfg     *config.Config
	session *sim.Session
	pop     []float64
	width   int
	height  int
	last    time.Time
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Run blocks in the terminal UI until the user quits.
func Run(cfg *config.Config) error {
	m, err := newModel(cfg, 80, 24)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func newModel(cfg *config.Config, width, height int) (*model, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	session, err := sim.New(terminalView(width, height), uint8(cfg.Rule), cfg.Pattern, seed)
	if err != nil {
		return nil, err
	}
	session.SetSpeed(cfg.Speed)
	session.SetPlaying(!cfg.StartPaused)
	return &model{cfg: cfg, session: session, width: width, height: height}, nil
}

// terminalView maps one terminal cell to one automaton cell.
func terminalView(width, height int) viewport.Viewport {
	rows := height - chrome
	if rows < 1 {
		rows = 1
	}
	return viewport.Derive(width, rows, 1, 0, 0)
}

func (m *model) Init() tea.Cmd { return tick() }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.session.Resize(terminalView(msg.Width, msg.Height))
		return m, nil
	case tickMsg:
		now := time.Time(msg)
		if !m.last.IsZero() {
			if m.session.Advance(now.Sub(m.last)) > 0 {
				m.recordPopulation()
			}
		}
		m.last = now
		return m, tick()
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		m.session.Toggle()
	case "n":
		if !m.session.Playing() {
			m.session.Step()
			m.recordPopulation()
		}
	case "r":
		m.session.Reseed()
	case "+", "=":
		m.session.SetSpeed(m.session.Speed() * 2)
	case "-":
		m.session.SetSpeed(m.session.Speed() / 2)
	case "]":
		m.session.SetRule(m.session.Rule() + 1)
	case "[":
		m.session.SetRule(m.session.Rule() - 1)
	}
	return m, nil
}

func (m *model) recordPopulation() {
	m.pop = append(m.pop, float64(m.session.Snapshot().Gen.Population()))
	if len(m.pop) > popWindow {
		m.pop = m.pop[len(m.pop)-popWindow:]
	}
}

func (m *model) View() string {
	snap := m.session.Snapshot()
	var b strings.Builder

	rows := append(snap.History, snap.Gen)
	// pad so the newest generation stays on the bottom grid row
	for blank := snap.View.Rows + 1 - len(rows); blank > 0; blank-- {
		b.WriteByte('\n')
	}
	for i, gen := range rows {
		age := len(rows) - 1 - i
		b.WriteString(styleForAge(age, snap.View.Rows).Render(rowString(gen)))
		b.WriteByte('\n')
	}

	b.WriteString(m.statusLine(snap))
	b.WriteByte('\n')
	if len(m.pop) >= 2 {
		b.WriteString(dim.Render(asciigraph.Plot(m.pop,
			asciigraph.Height(4), asciigraph.Caption("population"))))
	}
	return b.String()
}

func rowString(gen []bool) string {
	var sb strings.Builder
	sb.Grow(len(gen))
	for _, alive := range gen {
		if alive {
			sb.WriteRune('█')
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// styleForAge buckets the linear fade into the three terminal shades.
func styleForAge(age, depth int) lipgloss.Style {
	if depth < 1 {
		depth = 1
	}
	switch {
	case age == 0:
		return bright
	case age <= depth/2:
		return mid
	default:
		return faint
	}
}

func (m *model) statusLine(snap sim.Snapshot) string {
	state := accent.Render("playing")
	if !snap.Playing {
		state = paused.Render("paused")
	}
	info := fmt.Sprintf("rule %d | %.0f gen/s | gen %d | %s",
		snap.Rule, snap.Speed, snap.Seq, state)
	help := "space pause  n step  r reseed  [/] rule  +/- speed  q quit"
	return info + "\n" + dim.Render(help)
}
