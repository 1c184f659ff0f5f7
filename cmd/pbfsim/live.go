package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/pbf/internal/pbf"
)

const energyHistoryCapacity = 200

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1, 2)
)

type tickMsg time.Time

// liveModel is a bubbletea status view over a running pbf.Simulator.
// It is not a particle renderer, just the scalar diagnostics (particle
// count, slide position, containment, mean kinetic energy) a person
// watching a headless run would want.
type liveModel struct {
	sim           *pbf.Simulator
	sceneName     string
	dt            float64
	t             float64
	fps           int
	running       bool
	violations    int
	steps         int
	energyHistory []float64
}

func newLiveModel(sim *pbf.Simulator, dt float64, sceneName string, fps int) liveModel {
	return liveModel{
		sim:           sim,
		sceneName:     sceneName,
		dt:            dt,
		fps:           fps,
		running:       true,
		energyHistory: make([]float64, 0, energyHistoryCapacity),
	}
}

func (m liveModel) Init() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m liveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		}
	case tickMsg:
		if m.running {
			m.step()
		}
		return m, tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return tickMsg(t) })
	}
	return m, nil
}

func (m *liveModel) step() {
	if err := m.sim.SimulateTimestep(m.dt); err != nil {
		m.running = false
		return
	}
	m.t += m.dt
	m.steps++

	if !m.containmentOK() {
		m.violations++
	}

	energy := 0.0
	for _, v := range m.sim.Velocities() {
		energy += 0.5 * v.LengthSquared()
	}
	m.energyHistory = append(m.energyHistory, energy)
	if len(m.energyHistory) > energyHistoryCapacity {
		m.energyHistory = m.energyHistory[1:]
	}
}

func (m *liveModel) containmentOK() bool {
	tank := m.sim.Tank()
	r := m.sim.Radius()
	xHi := 0.5*tank.X*m.sim.SlidePos() - r
	const tau = 1e-5
	for _, p := range m.sim.Positions() {
		if p.X > xHi+tau || p.X < -0.5*tank.X+r-tau ||
			p.Y > 0.5*tank.Y-r+tau || p.Y < -0.5*tank.Y+r-tau ||
			p.Z > 0.5*tank.Z-r+tau || p.Z < -0.5*tank.Z+r-tau {
			return false
		}
	}
	return true
}

func (m liveModel) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.sceneName)) + "\n")

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	if len(m.energyHistory) > 1 {
		chart := asciigraph.Plot(m.energyHistory, asciigraph.Height(8), asciigraph.Width(50), asciigraph.Caption("kinetic energy"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("time") + valueStyle.Render(fmt.Sprintf("%.2fs", m.t)) + "\n")
	s.WriteString(labelStyle.Render("particles") + valueStyle.Render(fmt.Sprintf("%d", m.sim.NumParticles())) + "\n")
	s.WriteString(labelStyle.Render("slide pos") + valueStyle.Render(fmt.Sprintf("%.3f", m.sim.SlidePos())) + "\n")
	s.WriteString(labelStyle.Render("violations") + valueStyle.Render(fmt.Sprintf("%d / %d", m.violations, m.steps)) + "\n")

	s.WriteString(helpStyle.Render("space: pause/resume   q: quit"))

	return boxStyle.Render(s.String())
}
