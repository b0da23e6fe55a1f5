// Package ui provides the terminal almanac interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	suncalc "github.com/litescript/ls-suncalc"
	"github.com/litescript/ls-suncalc/internal/version"
)

// TickMsg triggers a periodic recompute of the almanac.
type TickMsg time.Time

// Config carries the observer and search settings for the almanac.
type Config struct {
	Observer suncalc.Observer
	Twilight suncalc.Twilight
	Window   time.Duration

	// FixedTime pins the almanac to a specific instant instead of
	// following the wall clock.
	FixedTime *time.Time
}

// almanac is one fully computed snapshot for a single instant.
type almanac struct {
	At        time.Time
	SunPos    suncalc.SunPosition
	MoonPos   suncalc.MoonPosition
	SunTimes  suncalc.SunTimes
	MoonTimes suncalc.MoonTimes
	Illum     suncalc.MoonIllumination
	NextNew   suncalc.MoonPhase
	NextFull  suncalc.MoonPhase
}

// computeAlmanac evaluates every panel's data for the given instant.
func computeAlmanac(cfg Config, at time.Time) (almanac, error) {
	var (
		a   almanac
		err error
	)
	a.At = at

	if a.SunPos, err = suncalc.ComputeSunPosition(at, cfg.Observer); err != nil {
		return a, fmt.Errorf("sun position: %w", err)
	}
	if a.MoonPos, err = suncalc.ComputeMoonPosition(at, cfg.Observer); err != nil {
		return a, fmt.Errorf("moon position: %w", err)
	}

	stCfg := suncalc.SunTimesConfig{Twilight: cfg.Twilight, Window: cfg.Window}
	if a.SunTimes, err = suncalc.ComputeSunTimes(at, cfg.Observer, stCfg); err != nil {
		return a, fmt.Errorf("sun times: %w", err)
	}
	mtCfg := suncalc.MoonTimesConfig{Window: cfg.Window}
	if a.MoonTimes, err = suncalc.ComputeMoonTimes(at, cfg.Observer, mtCfg); err != nil {
		return a, fmt.Errorf("moon times: %w", err)
	}

	a.Illum = suncalc.ComputeMoonIllumination(at)

	if a.NextNew, err = suncalc.ComputeMoonPhase(at, suncalc.MoonPhaseConfig{Phase: suncalc.NewMoon}); err != nil {
		return a, fmt.Errorf("new moon: %w", err)
	}
	if a.NextFull, err = suncalc.ComputeMoonPhase(at, suncalc.MoonPhaseConfig{Phase: suncalc.FullMoon}); err != nil {
		return a, fmt.Errorf("full moon: %w", err)
	}

	return a, nil
}

// Styles for the almanac panels.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	sunStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	moonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("75"))

	flagStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("203"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// Model is the root Bubble Tea model of the almanac.
type Model struct {
	cfg Config

	width  int
	height int
	ready  bool

	data    almanac
	dataErr error
}

// New creates a new almanac model.
func New(cfg Config) Model {
	return Model{cfg: cfg}
}

// Init implements the Bubble Tea model interface.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.recompute(), tickCmd())
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// recompute evaluates the almanac off the update loop.
func (m Model) recompute() tea.Cmd {
	cfg := m.cfg
	return func() tea.Msg {
		at := time.Now()
		if cfg.FixedTime != nil {
			at = *cfg.FixedTime
		}
		a, err := computeAlmanac(cfg, at)
		if err != nil {
			return errMsg{err}
		}
		return dataMsg{a}
	}
}

type (
	dataMsg struct{ data almanac }
	errMsg  struct{ err error }
)

// Update implements the Bubble Tea model interface.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			return m, m.recompute()
		}
		return m, nil

	case TickMsg:
		return m, tea.Batch(m.recompute(), tickCmd())

	case dataMsg:
		m.data = msg.data
		m.dataErr = nil
		return m, nil

	case errMsg:
		m.dataErr = msg.err
		return m, nil
	}

	return m, nil
}

// View implements the Bubble Tea model interface.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n")

	if m.dataErr != nil {
		b.WriteString(errorStyle.Render("Error: " + m.dataErr.Error()))
		b.WriteString("\n")
	} else {
		panels := lipgloss.JoinHorizontal(lipgloss.Top,
			panelStyle.Render(m.sunView()),
			panelStyle.Render(m.moonView()),
		)
		b.WriteString(panels)
		b.WriteString("\n")
	}

	b.WriteString(footerStyle.Render("q quit · r refresh"))
	return b.String()
}

func (m Model) headerView() string {
	obs := m.cfg.Observer
	title := titleStyle.Render("ls-suncalc " + version.Version)
	place := fmt.Sprintf("%s  %s", formatLat(obs.LatDeg), formatLon(obs.LonDeg))
	when := m.data.At.Format("2006-01-02 15:04 MST")
	return fmt.Sprintf("%s  %s  %s", title, valueStyle.Render(place), labelStyle.Render(when))
}

func (m Model) sunView() string {
	var b strings.Builder
	d := m.data

	b.WriteString(sunStyle.Render("Sun"))
	b.WriteString("\n")
	writeRow(&b, "Azimuth", fmt.Sprintf("%6.1f°", d.SunPos.Azimuth))
	writeRow(&b, "Altitude", fmt.Sprintf("%+6.1f°", d.SunPos.Altitude))
	writeRow(&b, "Distance", fmt.Sprintf("%.3f Gm", d.SunPos.Distance/1.0e6))
	b.WriteString("\n")

	switch {
	case d.SunTimes.AlwaysUp:
		b.WriteString(flagStyle.Render("ALWAYS UP"))
		b.WriteString("\n")
	case d.SunTimes.AlwaysDown:
		b.WriteString(flagStyle.Render("ALWAYS DOWN"))
		b.WriteString("\n")
	}
	writeRow(&b, "Rise", formatEvent(d.SunTimes.Rise))
	writeRow(&b, "Set", formatEvent(d.SunTimes.Set))
	writeRow(&b, "Noon", formatEvent(d.SunTimes.Noon))
	writeRow(&b, "Nadir", formatEvent(d.SunTimes.Nadir))

	return b.String()
}

func (m Model) moonView() string {
	var b strings.Builder
	d := m.data

	b.WriteString(moonStyle.Render("Moon"))
	b.WriteString("\n")
	writeRow(&b, "Azimuth", fmt.Sprintf("%6.1f°", d.MoonPos.Azimuth))
	writeRow(&b, "Altitude", fmt.Sprintf("%+6.1f°", d.MoonPos.Altitude))
	writeRow(&b, "Distance", fmt.Sprintf("%.0f km", d.MoonPos.Distance))
	writeRow(&b, "Phase", d.Illum.ClosestPhase().String())
	writeRow(&b, "Illuminated", fmt.Sprintf("%.0f%%", d.Illum.Fraction*100))
	b.WriteString("\n")

	switch {
	case d.MoonTimes.AlwaysUp:
		b.WriteString(flagStyle.Render("ALWAYS UP"))
		b.WriteString("\n")
	case d.MoonTimes.AlwaysDown:
		b.WriteString(flagStyle.Render("ALWAYS DOWN"))
		b.WriteString("\n")
	}
	writeRow(&b, "Rise", formatEvent(d.MoonTimes.Rise))
	writeRow(&b, "Set", formatEvent(d.MoonTimes.Set))
	writeRow(&b, "New moon", d.NextNew.Time.Format("Jan 02 15:04"))
	writeRow(&b, "Full moon", d.NextFull.Time.Format("Jan 02 15:04"))

	return b.String()
}

func writeRow(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-12s", label)), valueStyle.Render(value))
}

// formatEvent renders an optional event time, or a dash when it does not
// occur within the window.
func formatEvent(t *time.Time) string {
	if t == nil {
		return "—"
	}
	return t.Format("Jan 02 15:04")
}

// formatLat renders a latitude with its hemisphere.
func formatLat(deg float64) string {
	if deg < 0 {
		return fmt.Sprintf("%.4f°S", -deg)
	}
	return fmt.Sprintf("%.4f°N", deg)
}

// formatLon renders a longitude with its hemisphere.
func formatLon(deg float64) string {
	if deg < 0 {
		return fmt.Sprintf("%.4f°W", -deg)
	}
	return fmt.Sprintf("%.4f°E", deg)
}
