package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/solsim/internal/export"
	"github.com/san-kum/solsim/internal/sim"
	"github.com/san-kum/solsim/internal/solubility"
	"github.com/san-kum/solsim/internal/viz"
)

// Options configures the interactive app.
type Options struct {
	Initial          solubility.State
	Theme            string
	ChartWidth       int
	ChartHeight      int
	VesselWidth      int
	VesselHeight     int
	PrecipitateScale float64
	ExportDir        string
}

type model struct {
	sliders   []slider
	substance selector
	focus     int
	editing   bool
	editBuf   string

	pipeline *sim.Pipeline
	surfaces *viz.Surfaces
	result   solubility.Result
	err      error

	theme     viz.Theme
	showHelp  bool
	scale     float64
	exportDir string
	notice    string

	width, height int
}

// New builds the app and runs the first update pass.
func New(p *sim.Pipeline, opts Options) model {
	m := model{
		sliders: []slider{
			{id: sim.IDTemp, label: "temperature", unit: "°C", min: solubility.MinTemp, max: solubility.MaxTemp, step: 1, coarse: 10},
			{id: sim.IDWater, label: "water", unit: "g", min: 0, max: viz.MaxWater, step: 1, coarse: 10},
			{id: sim.IDSolute, label: "solute", unit: "g", min: 0, max: 200, step: 1, coarse: 10},
		},
		substance: selector{id: sim.IDSubstance, label: "substance", options: p.Table().Keys()},
		pipeline:  p,
		surfaces:  viz.NewSurfaces(opts.ChartWidth, opts.ChartHeight, opts.VesselWidth, opts.VesselHeight),
		theme:     viz.GetTheme(opts.Theme),
		scale:     opts.PrecipitateScale,
		exportDir: opts.ExportDir,
		width:     80,
		height:    24,
	}

	in := sim.FromState(opts.Initial)
	m.sliders[0].raw, m.sliders[1].raw, m.sliders[2].raw = in.Temp, in.Water, in.Solute
	// an unknown key stays selected so the first pass reports it
	m.substance.selectValue(opts.Initial.Substance)

	m.refresh()
	return m
}

// Value implements sim.Source.
func (m model) Value(id string) string {
	if id == m.substance.id {
		return m.substance.value()
	}
	for _, s := range m.sliders {
		if s.id == id {
			return s.raw
		}
	}
	return ""
}

func (m *model) refresh() {
	res, err := m.pipeline.Update(sim.Read(m), m.surfaces)
	m.err = err
	if err == nil {
		m.result = res
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m model) focusedSlider() *slider {
	if m.focus < len(m.sliders) {
		return &m.sliders[m.focus]
	}
	return nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.editing {
		return m.editKey(msg)
	}
	m.notice = ""

	widgets := len(m.sliders) + 1
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab", "down", "j":
		m.focus = (m.focus + 1) % widgets
	case "shift+tab", "up", "k":
		m.focus = (m.focus + widgets - 1) % widgets
	case "left", "h":
		m.adjust(-1, false)
	case "right", "l":
		m.adjust(1, false)
	case "H":
		m.adjust(-1, true)
	case "L":
		m.adjust(1, true)
	case "s":
		m.substance.cycle(1)
		m.refresh()
	case "enter", " ":
		if s := m.focusedSlider(); s != nil {
			m.editing, m.editBuf = true, s.raw
		} else {
			m.substance.cycle(1)
			m.refresh()
		}
	case "t":
		m.theme = viz.NextTheme(m.theme.Name)
	case "e":
		m.exportSVG()
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m *model) adjust(dir float64, coarse bool) {
	if s := m.focusedSlider(); s != nil {
		step := s.step
		if coarse {
			step = s.coarse
		}
		s.nudge(dir * step)
	} else {
		m.substance.cycle(int(dir))
	}
	m.refresh()
}

func (m model) editKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.focusedSlider().raw = m.editBuf
		m.editing, m.editBuf = false, ""
		m.refresh()
	case tea.KeyEsc:
		m.editing, m.editBuf = false, ""
	case tea.KeyBackspace:
		if r := []rune(m.editBuf); len(r) > 0 {
			m.editBuf = string(r[:len(r)-1])
		}
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyRunes, tea.KeySpace:
		m.editBuf += string(msg.Runes)
	}
	return m, nil
}

func (m *model) exportSVG() {
	if m.err != nil {
		m.notice = "nothing to export: " + m.err.Error()
		return
	}
	sub, err := m.pipeline.Table().Lookup(m.result.State.Substance)
	if err != nil {
		m.notice = err.Error()
		return
	}
	st := m.result.State
	path := filepath.Join(m.exportDir, fmt.Sprintf("solsim-%s-%.0fC.svg", st.Substance, st.Temperature))
	snap := export.Snapshot{Substance: sub, Result: m.result, Status: m.surfaces.Status, PrecipitateScale: m.scale}
	if err := export.WriteFile(path, snap, export.PartPage); err != nil {
		m.notice = err.Error()
		return
	}
	m.notice = "saved " + path
}

func (m model) View() string {
	th := m.theme
	panel := viz.Panel(th)
	muted := lipgloss.NewStyle().Foreground(th.Muted)
	value := lipgloss.NewStyle().Foreground(th.Text).Bold(true)

	var b strings.Builder
	b.WriteString("\n  " + viz.Title(th, "SOLSIM") + "  " + muted.Render("solubility lab") + "\n\n")

	details := []string{
		m.surfaces.Vessel.Render(th),
		"",
		muted.Render("per 100 g ") + value.Render(fmt.Sprintf("%.1f g", m.result.PerHundred)),
		muted.Render("max       ") + value.Render(fmt.Sprintf("%.1f g", m.result.MaxDissolvable)),
		muted.Render("dissolved ") + value.Render(fmt.Sprintf("%.1f g", m.result.Dissolved())),
		muted.Render("settled   ") + value.Render(fmt.Sprintf("%.1f g", m.result.Precipitate)),
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		panel.Render(m.surfaces.Chart.Render(th)),
		panel.Render(strings.Join(details, "\n")),
	)
	b.WriteString(body + "\n\n")

	for i, s := range m.sliders {
		b.WriteString(m.sliderLine(i, s) + "\n")
	}
	b.WriteString(m.selectorLine() + "\n\n")

	b.WriteString("  " + m.statusLine() + "\n")
	if m.notice != "" {
		b.WriteString("  " + muted.Render(m.notice) + "\n")
	}

	b.WriteString("\n  " + viz.KeyHints(th, "j/k", "select", "h/l", "adjust", "enter", "type", "s", "substance", "?", "help", "q", "quit") + "\n")
	if m.showHelp {
		b.WriteString("  " + viz.KeyHints(th, "H/L", "coarse adjust", "t", "theme ("+th.Name+")", "e", "export svg", "esc", "cancel typing") + "\n")
	}
	return b.String()
}

func (m model) cursor(i int) string {
	if i == m.focus {
		return lipgloss.NewStyle().Foreground(m.theme.Primary).Bold(true).Render("▸")
	}
	return " "
}

func (m model) sliderLine(i int, s slider) string {
	th := m.theme
	focused := i == m.focus
	label := lipgloss.NewStyle().Foreground(th.Muted)
	if focused {
		label = label.Foreground(th.Text).Bold(true)
	}
	val := s.raw + " " + s.unit
	if focused && m.editing {
		val = m.editBuf + "_"
	}
	valStyle := lipgloss.NewStyle().Foreground(th.Accent)
	if _, ok := s.value(); !ok {
		valStyle = valStyle.Foreground(th.Error)
	}
	return fmt.Sprintf("  %s %s %s  %s", m.cursor(i), label.Render(fmt.Sprintf("%-12s", s.label)), viz.SliderBar(s.fraction(), 30, focused, th), valStyle.Render(val))
}

func (m model) selectorLine() string {
	th := m.theme
	i := len(m.sliders)
	label := lipgloss.NewStyle().Foreground(th.Muted)
	if i == m.focus {
		label = label.Foreground(th.Text).Bold(true)
	}
	opts := make([]string, len(m.substance.options))
	for j, o := range m.substance.options {
		if j == m.substance.idx && m.substance.unknown == "" {
			opts[j] = lipgloss.NewStyle().Foreground(th.Accent).Bold(true).Render("[" + o + "]")
		} else {
			opts[j] = lipgloss.NewStyle().Foreground(th.Muted).Render(" " + o + " ")
		}
	}
	if u := m.substance.unknown; u != "" {
		opts = append(opts, lipgloss.NewStyle().Foreground(th.Error).Bold(true).Render("["+u+"?]"))
	}
	return fmt.Sprintf("  %s %s %s", m.cursor(i), label.Render(fmt.Sprintf("%-12s", m.substance.label)), strings.Join(opts, " "))
}

func (m model) statusLine() string {
	th := m.theme
	if m.err != nil {
		return lipgloss.NewStyle().Foreground(th.Error).Bold(true).Render("invalid input: " + m.err.Error())
	}
	style := lipgloss.NewStyle().Foreground(th.Success).Bold(true)
	if m.result.Precipitate > 0 {
		style = style.Foreground(th.Warning)
	}
	return style.Render(m.surfaces.Status)
}

// Run starts the interactive app on the alternate screen.
func Run(p *sim.Pipeline, opts Options) error {
	_, err := tea.NewProgram(New(p, opts), tea.WithAltScreen()).Run()
	return err
}
