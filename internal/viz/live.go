// Package viz renders the simulation in the terminal: a braille-canvas
// arena driven by a Bubble Tea program, with a lipgloss stats panel and
// an asciigraph speed chart.
package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/gravbox/internal/sim"
	"github.com/san-kum/gravbox/internal/world"
)

const (
	canvasWidth     = 80 // cells; 160x96 dots
	canvasHeight    = 24
	historyCapacity = 300

	// DefaultFPS approximates the 15ms frame delay of the windowed mode.
	DefaultFPS = 66
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(42)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Model holds the driver and the visualization buffers.
type Model struct {
	driver    *sim.Driver
	canvas    *Canvas
	fps       int
	paused    bool
	speedHist []float64
}

func NewModel(d *sim.Driver, fps int) Model {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return Model{
		driver:    d,
		canvas:    NewCanvas(canvasWidth, canvasHeight),
		fps:       fps,
		speedHist: make([]float64, 0, historyCapacity),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input and steps the simulation once per tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.driver.Reset()
			m.speedHist = m.speedHist[:0]
		case "p":
			m.paused = !m.paused
		}
	case TickMsg:
		if !m.paused {
			m.driver.Step()
			m.speedHist = append(m.speedHist, m.meanSpeed())
			if len(m.speedHist) > historyCapacity {
				m.speedHist = m.speedHist[1:]
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) meanSpeed() float64 {
	bodies := m.driver.Bodies()
	if len(bodies) == 0 {
		return 0
	}
	sum := 0.0
	for i := range bodies {
		v := bodies[i].Velocity()
		sum += math.Hypot(v.X, v.Y)
	}
	return sum / float64(len(bodies))
}

// draw maps the 640x480 arena onto the canvas dot grid.
func (m *Model) draw() {
	m.canvas.Clear()

	dotW, dotH := canvasWidth*2, canvasHeight*4
	scaleX := float64(dotW) / float64(world.ScreenWidth)
	scaleY := float64(dotH) / float64(world.ScreenHeight)

	m.canvas.DrawBox(0, 0, dotW, dotH)

	bodies := m.driver.Bodies()
	for i := range bodies {
		p := bodies[i].Position()
		sz := bodies[i].Size()
		m.canvas.FillRect(
			int(p.X*scaleX),
			int(p.Y*scaleY),
			int(sz.X*scaleX),
			int(sz.Y*scaleY),
		)
	}
}

// View renders the arena next to the stats panel.
func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render("GRAVBOX") + "\n")
	status := "RUNNING"
	if m.paused {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	s.WriteString(labelStyle.Render("Frame") + valueStyle.Render(fmt.Sprintf("%d", m.driver.Frame())) + "\n")
	speed := 0.0
	if len(m.speedHist) > 0 {
		speed = m.speedHist[len(m.speedHist)-1]
	}
	s.WriteString(labelStyle.Render("Speed") + valueStyle.Render(fmt.Sprintf("%.2f", speed)) + "\n\n")

	s.WriteString("BODIES\n")
	for i := range m.driver.Bodies() {
		b := &m.driver.Bodies()[i]
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(b.Color().Hex())).Render("■")
		p, v := b.Position(), b.Velocity()
		s.WriteString(fmt.Sprintf("%s (%5.0f,%5.0f) v(%6.2f,%6.2f)\n", swatch, p.X, p.Y, v.X, v.Y))
	}

	if len(m.speedHist) > 1 {
		chart := asciigraph.Plot(m.speedHist,
			asciigraph.Height(4),
			asciigraph.Width(30),
			asciigraph.Caption("mean speed"),
		)
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString(helpStyle.Render("SPACE:Reset P:Pause Q:Quit"))
	statsView := statsStyle.Render(s.String())

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}

// Run drives the terminal view until quit.
func Run(d *sim.Driver, fps int) error {
	p := tea.NewProgram(NewModel(d, fps))
	_, err := p.Run()
	return err
}
