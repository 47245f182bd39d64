// Package tui renders the simulation in a terminal using Bubble Tea and a
// braille canvas.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/orrery/internal/interact"
	"github.com/san-kum/orrery/internal/scene"
	"github.com/san-kum/orrery/internal/sim"
)

const (
	frameInterval = 16 * time.Millisecond
	// maxFrameTime caps dt so a stalled terminal does not jump the orbits.
	maxFrameTime = 0.25

	headerRows  = 2
	footerRows  = 1
	toolbarRow  = 1
	minCanvasW  = 10
	minCanvasH  = 5
	defaultCols = 80
	defaultRows = 24
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

type toolbarHit struct {
	from, to int
	button   *interact.Button
}

// Model is the Bubble Tea model driving the simulation from tick
// messages.
type Model struct {
	sim     *sim.Simulation
	canvas  *Canvas
	surface *Surface

	pending   []interact.Event
	lastFrame time.Time
	fps       float64
	toolbar   []toolbarHit

	width, height int
}

func NewModel(s *sim.Simulation) *Model {
	m := &Model{sim: s}
	m.resize(defaultCols, defaultRows)
	return m
}

// Run starts the terminal program and blocks until the user quits.
func Run(s *sim.Simulation) error {
	p := tea.NewProgram(NewModel(s), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	cw := max(w, minCanvasW)
	ch := max(h-headerRows-footerRows, minCanvasH)
	m.canvas = NewCanvas(cw, ch)
	m.surface = NewSurface(m.canvas, m.sim.Settings.WindowWidth, m.sim.Settings.WindowHeight)
}

func (m *Model) Init() tea.Cmd { return tick() }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.pending = append(m.pending, interact.Key(interact.KeySpace))
		default:
			m.pending = append(m.pending, interact.Key(msg.String()))
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if ev, ok := m.clickAt(msg.X, msg.Y); ok {
				m.pending = append(m.pending, ev)
			}
		}
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tickMsg:
		m.step(time.Time(msg))
		return m, tick()
	}
	return m, nil
}

// clickAt translates a terminal click on the toolbar into a click at the
// center of the matching window button.
func (m *Model) clickAt(col, row int) (interact.Event, bool) {
	if row != toolbarRow {
		return interact.Event{}, false
	}
	for _, h := range m.toolbar {
		if col >= h.from && col < h.to {
			return interact.Click(h.button.Rect.Center()), true
		}
	}
	return interact.Event{}, false
}

func (m *Model) step(now time.Time) {
	dt := frameInterval.Seconds()
	if !m.lastFrame.IsZero() {
		dt = min(now.Sub(m.lastFrame).Seconds(), maxFrameTime)
	}
	if dt > 0 {
		m.fps = 1 / dt
	}
	m.lastFrame = now

	m.sim.Update(dt, m.pending)
	m.pending = m.pending[:0]
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteByte('\n')
	b.WriteString(m.renderToolbar())
	b.WriteByte('\n')

	m.surface.Clear(m.sim.Settings.BackgroundColor.Color())
	scene.DrawStars(m.surface, m.sim)
	scene.DrawBodies(m.surface, m.sim)
	scene.DrawSun(m.surface, m.sim)
	b.WriteString(m.canvas.String())

	b.WriteString(keyHint.Render(hints))
	return b.String()
}

func (m *Model) header() string {
	lines := m.sim.Status()
	status := statusRunning.Render(lines[2])
	if m.sim.Clock.Paused {
		status = statusPaused.Render(lines[2])
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render("orrery"), "  ",
		status, "  ",
		metricLabel.Render("speed "), metricValue.Render(fmt.Sprintf("%.1fx", m.sim.Clock.TimeScale)), "  ",
		metricLabel.Render("scale "), metricValue.Render(fmt.Sprintf("%.2f", m.sim.Camera.Scale)), "  ",
		metricLabel.Render(lines[3]), "  ",
		metricLabel.Render(fmt.Sprintf("%.0f fps", m.fps)),
	)
}

// renderToolbar draws the buttons in a row and records their columns for
// mouse hit testing.
func (m *Model) renderToolbar() string {
	m.toolbar = m.toolbar[:0]
	var parts []string
	col := 0
	for _, btn := range m.sim.Controller.Buttons {
		s := buttonStyle.Render(btn.Label)
		w := lipgloss.Width(s)
		m.toolbar = append(m.toolbar, toolbarHit{from: col, to: col + w, button: btn})
		parts = append(parts, s, " ")
		col += w + 1
	}
	return strings.Join(parts, "")
}
