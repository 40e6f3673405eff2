// Package viz plays back an analytic switching trajectory in the
// terminal: polar-angle history as an ASCII graph plus a live stats
// panel. Playback scrubs through precomputed samples; nothing is
// integrated here.
package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/macrospin/internal/energy"
	"github.com/san-kum/macrospin/internal/llg"
)

const (
	graphWidth  = 80
	graphHeight = 12
)

type TickMsg time.Time

// Model holds the trajectory under playback and the cursor position.
type Model struct {
	params  llg.MagParams
	traj    *llg.Trajectory
	idx     int
	stride  int
	running bool
}

// NewModel prepares playback of traj. Stride controls how many samples
// each frame advances.
func NewModel(params llg.MagParams, traj *llg.Trajectory) Model {
	stride := traj.Len() / 300
	if stride < 1 {
		stride = 1
	}
	return Model{params: params, traj: traj, stride: stride, running: true}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tick()
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
			m.idx = 0
			m.running = true
		case "[":
			m.scrub(-m.stride)
		case "]":
			m.scrub(m.stride)
		}
	case TickMsg:
		if m.running {
			m.idx += m.stride
			if m.idx >= m.traj.Len()-1 {
				m.idx = m.traj.Len() - 1
				m.running = false
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) scrub(delta int) {
	m.running = false
	m.idx += delta
	if m.idx < 0 {
		m.idx = 0
	}
	if m.idx >= m.traj.Len() {
		m.idx = m.traj.Len() - 1
	}
}

func (m Model) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("MACROSPIN SWITCHING") + "\n")

	status := "PLAYING"
	if !m.running {
		if m.idx == m.traj.Len()-1 {
			status = "SWITCHED"
		} else {
			status = "PAUSED"
		}
	}
	s.WriteString(status + "\n\n")

	end := m.idx + 1
	pols := m.traj.Polars()[:end]
	graph := asciigraph.Plot(pols,
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
		asciigraph.Caption("polar angle"),
	)
	s.WriteString(graphStyle.Render(graph) + "\n")

	pt := m.traj.Points[m.idx]
	rows := []struct {
		label string
		value string
	}{
		{"params", m.params.String()},
		{"sample", fmt.Sprintf("%d / %d", m.idx+1, m.traj.Len())},
		{"time", fmt.Sprintf("%.6f", m.traj.Times[m.idx])},
		{"polar", fmt.Sprintf("%.4f rad", pt.Pol)},
		{"azimuth", fmt.Sprintf("%.4f rad", pt.Azi)},
		{"energy", fmt.Sprintf("%.6f", energy.State(pt, m.params))},
	}
	var stats strings.Builder
	for _, r := range rows {
		stats.WriteString(labelStyle.Render(r.label) + valueStyle.Render(r.value) + "\n")
	}
	s.WriteString(statsStyle.Render(stats.String()))

	s.WriteString(helpStyle.Render("\nspace pause · [ ] scrub · r restart · q quit"))
	return s.String()
}
