package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/loopsim/internal/loop"
)

const (
	canvasWidth  = 60
	canvasHeight = 24

	knobStep = 0.05
	maxFPS   = 60

	// bodySize is the body's radius in sub-pixels before squash and stretch.
	bodySize = 3.0
)

type TickMsg time.Time

type knob struct {
	key   rune
	label string
	field func(*loop.Parameters) *float64
}

var knobs = []knob{
	{'e', "elasticity", func(p *loop.Parameters) *float64 { return &p.Elasticity }},
	{'f', "fluidity", func(p *loop.Parameters) *float64 { return &p.Fluidity }},
	{'i', "inertia", func(p *loop.Parameters) *float64 { return &p.Inertia }},
	{'s', "softening", func(p *loop.Parameters) *float64 { return &p.Softening }},
}

// Preview plays a generated loop in the terminal. Changing a knob builds new
// Parameters and regenerates the whole sequence; playback resumes at the
// same frame index when it still exists.
type Preview struct {
	initial loop.Parameters
	params  loop.Parameters
	tl      loop.Timeline
	frames  []loop.Frame
	cursor  int
	running bool
	canvas  *Canvas
}

func NewPreview(p loop.Parameters) Preview {
	m := Preview{
		initial: p,
		params:  p,
		running: true,
		canvas:  NewCanvas(canvasWidth, canvasHeight),
	}
	m.regenerate()
	return m
}

func (m *Preview) regenerate() {
	m.tl = loop.Plan(m.params)
	m.frames = loop.Generate(m.params)
	if m.cursor >= len(m.frames) {
		m.cursor = 0
	}
}

func (m Preview) Params() loop.Parameters { return m.params }
func (m Preview) Frames() []loop.Frame { return m.frames }
func (m Preview) Cursor() int { return m.cursor }
func (m Preview) Running() bool { return m.running }

func (m Preview) interval() time.Duration {
	return time.Second / time.Duration(min(m.tl.FPS, maxFPS))
}

func (m Preview) tick() tea.Cmd {
	return tea.Tick(m.interval(), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Preview) Init() tea.Cmd { return m.tick() }

func (m Preview) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r", "R":
			m.params = m.initial
			m.regenerate()
		case "l":
			m.params.Loops = max(1, m.params.Loops-1)
			m.regenerate()
		case "L":
			m.params.Loops++
			m.regenerate()
		default:
			m.adjust(key)
		}
	case TickMsg:
		if m.running && len(m.frames) > 0 {
			m.cursor = (m.cursor + 1) % len(m.frames)
		}
		return m, m.tick()
	}
	return m, nil
}

// adjust nudges the knob bound to key: lower case decreases, upper case
// increases. Knobs stay within [0, 1].
func (m *Preview) adjust(key string) {
	if len(key) != 1 {
		return
	}
	r := rune(key[0])
	for _, k := range knobs {
		delta := 0.0
		switch r {
		case k.key:
			delta = -knobStep
		case k.key - 'a' + 'A':
			delta = knobStep
		default:
			continue
		}
		v := k.field(&m.params)
		*v = math.Round(math.Max(0, math.Min(1, *v+delta))*100) / 100
		m.regenerate()
		return
	}
}

func (m Preview) View() string {
	m.draw()

	var s strings.Builder
	s.WriteString(headerStyle.Render("LOOP PREVIEW") + "\n")
	if m.running {
		s.WriteString(statusRunning.Render("PLAYING") + "\n\n")
	} else {
		s.WriteString(statusPaused.Render("PAUSED") + "\n\n")
	}

	if len(m.frames) > 0 {
		f := m.frames[m.cursor]
		row := func(label, value string) {
			s.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
		}
		row("frame", fmt.Sprintf("%d/%d", f.Index+1, len(m.frames)))
		row("time", fmt.Sprintf("%.3fs", f.Time))
		row("angle", fmt.Sprintf("%.3f rad", f.TravelAngle))
		row("heading", fmt.Sprintf("%.3f rad", f.Orientation))
		row("scale", fmt.Sprintf("%.3f × %.3f", f.ScaleTangent, f.ScaleNormal))
		row("ζ / ωn", fmt.Sprintf("%.3f / %.2f", m.tl.Zeta, m.tl.OmegaPos))
	}

	s.WriteString("\nKNOBS\n")
	p := m.params
	for _, k := range knobs {
		v := *k.field(&p)
		s.WriteString(fmt.Sprintf("%c/%c %-11s %s %.2f\n", k.key, k.key-'a'+'A', k.label, ProgressBar(v, 10), v))
	}
	s.WriteString(fmt.Sprintf("l/L %-11s %d\n", "loops", p.Loops))

	tangents := make([]float64, len(m.frames))
	for i, f := range m.frames {
		tangents[i] = f.ScaleTangent
	}
	s.WriteString("\n" + labelStyle.Render("stretch") + Sparkline(tangents, 30) + "\n")

	s.WriteString(helpStyle.Render("SPACE:pause  R:reset  Q:quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		panelStyle.Render(s.String()),
	)
}

// draw renders the path and the body at the cursor. Model y points up.
func (m Preview) draw() {
	m.canvas.Clear()
	if len(m.frames) == 0 {
		return
	}

	w, h := m.canvas.Size()
	cx, cy := float64(w)/2, float64(h)/2
	scale := 0.0
	if r := math.Abs(m.params.Radius); r > 0 {
		scale = 0.4 * float64(min(w, h)) / r
	}
	project := func(x, y float64) (float64, float64) {
		return cx + (x-m.params.CenterX)*scale, cy - (y-m.params.CenterY)*scale
	}

	for _, f := range m.frames {
		x, y := project(f.X, f.Y)
		m.canvas.Set(int(math.Round(x)), int(math.Round(y)))
	}

	f := m.frames[m.cursor]
	x, y := project(f.X, f.Y)
	m.canvas.DrawEllipse(x, y, bodySize*f.ScaleTangent, bodySize*f.ScaleNormal, f.Orientation)
	hx := x + 2*bodySize*math.Cos(f.Orientation)
	hy := y - 2*bodySize*math.Sin(f.Orientation)
	m.canvas.DrawLine(int(math.Round(x)), int(math.Round(y)), int(math.Round(hx)), int(math.Round(hy)))
}

// RunPreview blocks until the user quits.
func RunPreview(p loop.Parameters) error {
	_, err := tea.NewProgram(NewPreview(p), tea.WithAltScreen()).Run()
	return err
}
