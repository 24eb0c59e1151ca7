package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/galaxy/internal/galaxy"
	"github.com/san-kum/galaxy/internal/metrics"
)

const (
	defaultWidth    = 60
	defaultHeight   = 24
	historyCapacity = 120
)

type TickMsg time.Time

// Options configures the live viewer.
type Options struct {
	FPS  int
	Mode galaxy.Mode
	// EnergyEvery samples total energy every n frames. Zero disables the
	// energy chart; the O(n^2) potential sum is too slow to run per frame on
	// large galaxies.
	EnergyEvery int
	// Regenerate builds a fresh galaxy when r is pressed. Nil disables it.
	Regenerate func() (*galaxy.Galaxy, error)
}

// Model steps a galaxy once per tick and draws it.
type Model struct {
	galaxy *galaxy.Galaxy
	step   func() []galaxy.Star
	opts   Options

	width, height int
	canvas        *Canvas
	plane         Plane
	running       bool
	frame         int

	lastStep      time.Duration
	stepHistory   []float64
	energyHistory []float64
	err           error
}

// NewModel returns a viewer for g. It fails when opts.Mode is unknown.
func NewModel(g *galaxy.Galaxy, opts Options) (Model, error) {
	step, err := g.StepFunc(opts.Mode)
	if err != nil {
		return Model{}, err
	}
	if opts.FPS <= 0 {
		opts.FPS = 30
	}
	return Model{
		galaxy:        g,
		step:          step,
		opts:          opts,
		width:         defaultWidth,
		height:        defaultHeight,
		canvas:        NewCanvas(defaultWidth, defaultHeight),
		running:       true,
		stepHistory:   make([]float64, 0, historyCapacity),
		energyHistory: make([]float64, 0, historyCapacity),
	}, nil
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.opts.FPS), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and steps the galaxy.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "v":
			m.plane = m.plane.Next()
		case "r":
			m.regenerate()
		}
	case tea.WindowSizeMsg:
		// leave room for the stats panel and padding
		w := max(msg.Width-50, 10)
		h := max(msg.Height-4, 5)
		if w != m.width || h != m.height {
			m.width, m.height = w, h
			m.canvas = NewCanvas(w, h)
		}
	case TickMsg:
		if m.running && m.err == nil {
			m.advance()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) advance() {
	start := time.Now()
	stars := m.step()
	m.lastStep = time.Since(start)
	m.frame++

	m.stepHistory = appendCapped(m.stepHistory, float64(m.lastStep.Microseconds())/1000)
	if m.opts.EnergyEvery > 0 && m.frame%m.opts.EnergyEvery == 0 {
		m.energyHistory = appendCapped(m.energyHistory, metrics.TotalEnergy(stars))
	}
}

func (m *Model) regenerate() {
	if m.opts.Regenerate == nil {
		return
	}
	g, err := m.opts.Regenerate()
	if err != nil {
		m.err = err
		return
	}
	step, err := g.StepFunc(m.opts.Mode)
	if err != nil {
		m.err = err
		return
	}
	m.galaxy, m.step, m.err = g, step, nil
	m.frame = 0
	m.stepHistory = m.stepHistory[:0]
	m.energyHistory = m.energyHistory[:0]
}

func appendCapped(xs []float64, v float64) []float64 {
	if len(xs) == historyCapacity {
		copy(xs, xs[1:])
		xs = xs[:len(xs)-1]
	}
	return append(xs, v)
}

// draw renders the current star positions onto the canvas.
func (m *Model) draw() {
	m.canvas.Clear()
	pw, ph := m.canvas.PixelSize()
	for _, s := range m.galaxy.Stars() {
		x, y, ok := Project(s.Position, m.plane, pw, ph)
		if !ok {
			continue
		}
		m.canvas.Fill(x, y, starSize(s.Mass))
	}
}

// View renders the canvas and the stats panel.
func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render("GALAXY") + "\n")
	switch {
	case m.err != nil:
		s.WriteString(StatusError.Render("ERROR: "+m.err.Error()) + "\n\n")
	case m.running:
		s.WriteString(StatusRunning.Render("RUNNING") + "\n\n")
	default:
		s.WriteString(StatusPaused.Render("PAUSED") + "\n\n")
	}

	row := func(label, value string) {
		s.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("Iteration", fmt.Sprintf("%d", m.galaxy.Iteration()))
	row("Stars", fmt.Sprintf("%d", m.galaxy.Len()))
	row("Mode", m.opts.Mode.String())
	row("Workers", fmt.Sprintf("%d", m.galaxy.Workers()))
	row("View", m.plane.String())
	row("Step", m.lastStep.Round(time.Microsecond).String())
	s.WriteString(labelStyle.Render("Step (ms)") + SparklineChart(m.stepHistory, 30) + "\n")

	if len(m.energyHistory) > 1 {
		chart := asciigraph.Plot(m.energyHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Energy"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString(helpStyle.Render("─────────────────────\nSP:Pause V:View R:Regen Q:Quit"))
	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}
