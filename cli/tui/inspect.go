package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/pithecene-io/rangemap/cli/reader"
)

// InspectModel is a Bubble Tea model for inspect views.
type InspectModel struct {
	viewType string
	data     any
	width    int
	height   int
	quitting bool
}

// NewInspectModel creates a new inspect model.
func NewInspectModel(viewType string, data any) InspectModel {
	return InspectModel{
		viewType: viewType,
		data:     data,
	}
}

// Init implements tea.Model.
func (m InspectModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m InspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m InspectModel) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.viewType {
	case ViewInspectAlmanac:
		content = m.renderInspectAlmanac()
	default:
		content = fmt.Sprintf("Unknown view type: %s", m.viewType)
	}

	help := HelpStyle.Render("Press q or Ctrl+C to quit")
	return content + "\n" + help
}

func (m InspectModel) renderInspectAlmanac() string {
	data, ok := m.data.(*reader.InspectAlmanacResponse)
	if !ok {
		return "Invalid data type for inspect_almanac"
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Almanac"))
	b.WriteString("\n\n")

	seeds := make([]string, len(data.Seeds))
	for i, s := range data.Seeds {
		seeds[i] = s.String()
	}

	rows := [][]string{
		{"Input", data.Input},
		{"Format", data.Format},
		{"Seed Mode", data.SeedMode},
		{"Seeds", strings.Join(seeds, " ")},
		{"Seed Values", humanize.Comma(data.SeedCount)},
		{"Chain", strings.Join(data.Domains, " → ")},
	}

	for _, row := range rows {
		label := LabelStyle.Render(row[0] + ":")
		b.WriteString(fmt.Sprintf("%s %s\n", label, ValueStyle.Render(row[1])))
	}

	b.WriteString("\n")
	b.WriteString(TitleStyle.Render("Stages"))
	b.WriteString("\n")
	for _, s := range data.Stages {
		name := ValueStyle.Render(s.Stage)
		if s.Overlap != "" {
			name = ErrorStyle.Render(s.Stage)
		}
		b.WriteString(fmt.Sprintf("  %d. %s %s\n",
			s.Index+1,
			name,
			MutedStyle.Render(fmt.Sprintf("%d rules, %s covered", s.Rules, humanize.Comma(s.Covered)))))
	}

	if len(data.Problems) > 0 {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Bold(true).Render("Problems"))
		b.WriteString("\n")
		for _, p := range data.Problems {
			b.WriteString(fmt.Sprintf("  • %s\n", ErrorStyle.Render(p)))
		}
	}

	return BoxStyle.Render(b.String())
}

// RunInspectTUI runs the inspect TUI.
func RunInspectTUI(viewType string, data any) error {
	model := NewInspectModel(viewType, data)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// RenderInspectStatic renders inspect data without full TUI (for fallback).
func RenderInspectStatic(viewType string, data any) string {
	model := NewInspectModel(viewType, data)
	model.width = 80
	model.height = 24
	return lipgloss.NewStyle().Padding(1, 2).Render(model.View())
}
