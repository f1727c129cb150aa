package viz

import (
	"context"
	"fmt"
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/lvorbit/internal/config"
	"github.com/san-kum/lvorbit/internal/orbit"
	"github.com/san-kum/lvorbit/internal/plot"
	"github.com/san-kum/lvorbit/internal/rootfind"
	"github.com/san-kum/lvorbit/internal/trace"
)

const (
	canvasWidth  = 80
	canvasHeight = 24

	// points revealed per frame at 60fps
	revealRate = 40
)

type TickMsg time.Time

// Model replays a traced orbit progressively on a Braille canvas, with a
// stats panel and preset cycling.
type Model struct {
	presets    []string
	presetIdx  int
	cfg        *config.Config
	run        config.InitialPair
	traj       *trace.Trajectory
	canvas     *plot.Canvas
	revealed   int
	running    bool
	err        error
	lastTraced time.Duration
}

// NewModel traces the first run of cfg and prepares the viewer.
func NewModel(cfg *config.Config) Model {
	presets := config.ListPresets()
	sort.Strings(presets)

	m := Model{
		presets:   presets,
		presetIdx: -1,
		cfg:       cfg,
		canvas:    plot.NewCanvas(canvasWidth, canvasHeight),
		running:   true,
	}
	m.retrace()
	return m
}

func (m *Model) retrace() {
	m.err = nil
	m.traj = nil
	m.revealed = 0
	m.canvas.Clear()

	if len(m.cfg.Runs) == 0 {
		m.err = fmt.Errorf("no runs configured")
		return
	}
	m.run = m.cfg.Runs[0]

	orb, err := orbit.New(m.cfg.ParamsFor(m.run))
	if err != nil {
		m.err = err
		return
	}

	start := time.Now()
	traj, err := trace.New(orb, rootfind.New(m.cfg.Tolerance), m.cfg.Step).Trace(context.Background())
	if err != nil {
		m.err = err
		return
	}
	m.lastTraced = time.Since(start)

	m.traj = traj
	b := traj.Bounds
	m.canvas.Frame(b.PreyMin, b.PreyMax, b.PredatorMin, b.PredatorMax)
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.revealed = 0
			m.canvas.Clear()
		case "p":
			m.presetIdx = (m.presetIdx + 1) % len(m.presets)
			m.cfg = config.GetPreset(m.presets[m.presetIdx])
			m.retrace()
		}

	case TickMsg:
		if m.running && m.traj != nil && m.revealed < len(m.traj.Points) {
			next := m.revealed + revealRate
			if next > len(m.traj.Points) {
				next = len(m.traj.Points)
			}
			for _, p := range m.traj.Points[m.revealed:next] {
				m.canvas.Mark(p)
			}
			m.revealed = next
		}
		return m, tick()
	}

	return m, nil
}

func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render("trace failed: "+m.err.Error()) +
			helpStyle.Render("\np: next preset  q: quit") + "\n"
	}

	header := headerStyle.Render("lvorbit · predator vs prey phase portrait")

	canvas := canvasStyle.Render(m.canvas.String())

	preset := "custom"
	if m.presetIdx >= 0 {
		preset = m.presets[m.presetIdx]
	}

	b := m.traj.Bounds
	stats := statsStyle.Render(
		statLine("preset", preset) +
			statLine("initial", fmt.Sprintf("(%.0f, %.0f)", m.run.Prey, m.run.Predator)) +
			statLine("K", fmt.Sprintf("%.6f", m.traj.K)) +
			statLine("prey", fmt.Sprintf("[%.2f, %.2f]", b.PreyMin, b.PreyMax)) +
			statLine("predator", fmt.Sprintf("[%.2f, %.2f]", b.PredatorMin, b.PredatorMax)) +
			statLine("points", fmt.Sprintf("%d / %d", m.revealed, len(m.traj.Points))) +
			statLine("traced in", m.lastTraced.Round(time.Millisecond).String()) +
			statLine("status", statusLabel(m.running)),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, canvas, stats)
	help := helpStyle.Render("space: pause  r: replay  p: next preset  q: quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, body, help) + "\n"
}

func statLine(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value) + "\n"
}

func statusLabel(running bool) string {
	if running {
		return "tracing"
	}
	return "paused"
}
