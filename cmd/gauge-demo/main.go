// gauge-demo is an interactive testbed for the gauge widget.
//
// Type a number (0-100) to set the completion percent, "label <text>"
// to pin a custom label, or "clear" to go back to the default label.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/drake/cellview/buffer"
	"github.com/drake/cellview/geom"
	"github.com/drake/cellview/screen"
	"github.com/drake/cellview/text"
	"github.com/drake/cellview/widget"
)

func main() {
	percent := flag.Int("percent", 40, "Initial completion percent (0-100)")
	flag.Parse()

	if *percent < 0 || *percent > 100 {
		fmt.Fprintf(os.Stderr, "percent must be in [0, 100], got %d\n", *percent)
		os.Exit(1)
	}

	program := tea.NewProgram(
		newModel(*percent),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type model struct {
	input    textinput.Model
	styles   Styles
	renderer *screen.Renderer

	percent int
	label   string // empty means default "N%" label
	width   int
	height  int
	status  string
}

func newModel(percent int) model {
	ti := textinput.New()
	ti.Placeholder = "percent, \"label <text>\", or \"clear\""
	ti.Prompt = "> "
	ti.CharLimit = 0
	ti.Width = 60
	ti.Focus()

	return model{
		input:    ti,
		styles:   DefaultStyles(),
		renderer: screen.NewRenderer(),
		percent:  percent,
	}
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd { return textinput.Blink }

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			m = m.handleCommand(strings.TrimSpace(m.input.Value()))
			m.input.SetValue("")
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) handleCommand(cmd string) model {
	switch {
	case cmd == "":
		return m
	case cmd == "clear":
		m.label = ""
		m.status = "label reset to default"
	case strings.HasPrefix(cmd, "label "):
		m.label = strings.TrimPrefix(cmd, "label ")
		m.status = "label pinned"
	default:
		p, err := strconv.Atoi(cmd)
		if err != nil || p < 0 || p > 100 {
			m.status = fmt.Sprintf("not a percent in [0, 100]: %q", cmd)
			return m
		}
		m.percent = p
		m.status = fmt.Sprintf("percent set to %d", p)
	}
	return m
}

// View implements tea.Model.
func (m model) View() string {
	if m.width < 4 || m.height < 10 {
		return "window too small"
	}

	// Leave room for the input line and status line at the bottom.
	canvas := geom.NewRect(0, 0, m.width, m.height-2)
	buf := buffer.New(canvas)

	gaugeWidth := m.width - 2
	base := widget.NewGauge().
		Percent(m.percent).
		Style(m.styles.Base).
		GaugeStyle(m.styles.Fill)
	if m.label != "" {
		base = base.Label(text.Styled(m.label, m.styles.Title))
	}

	// Bordered multi-row gauge.
	bordered := base.Block(widget.NewBlock().
		Borders(widget.BorderAll).
		BorderStyle(m.styles.Border).
		Title(text.Styled("Progress", m.styles.Title)))
	bordered.Render(geom.NewRect(1, 1, gaugeWidth, 3), buf)

	// Bare gauge, no frame.
	base.Render(geom.NewRect(1, 5, gaugeWidth, 1), buf)

	// Single-row gauge with a frame: the border inset is bypassed so
	// the bar still renders in one row.
	bordered.Render(geom.NewRect(1, 7, gaugeWidth, 1), buf)

	var sb strings.Builder
	sb.WriteString(m.renderer.Frame(buf))
	sb.WriteByte('\n')
	sb.WriteString(m.status)
	sb.WriteByte('\n')
	sb.WriteString(m.input.View())
	return sb.String()
}
