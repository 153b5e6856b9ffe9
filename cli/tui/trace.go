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

// TraceModel is a Bubble Tea model for the pipeline trace view.
// The cursor selects one stage whose report is shown in detail.
type TraceModel struct {
	viewType string
	data     any
	cursor   int
	width    int
	height   int
	quitting bool
}

// NewTraceModel creates a new trace model.
func NewTraceModel(viewType string, data any) TraceModel {
	return TraceModel{
		viewType: viewType,
		data:     data,
	}
}

// Init implements tea.Model.
func (m TraceModel) Init() tea.Cmd {
	return nil
}

func (m TraceModel) stageCount() int {
	if data, ok := m.data.(*reader.TraceResponse); ok {
		return len(data.Stages)
	}
	return 0
}

// Update implements tea.Model.
func (m TraceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < m.stageCount()-1 {
				m.cursor++
			}
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m TraceModel) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.viewType {
	case ViewTracePipeline:
		content = m.renderTracePipeline()
	default:
		content = fmt.Sprintf("Unknown view type: %s", m.viewType)
	}

	help := HelpStyle.Render("↑/↓ select stage • q quit")
	return content + "\n" + help
}

func (m TraceModel) renderTracePipeline() string {
	data, ok := m.data.(*reader.TraceResponse)
	if !ok {
		return "Invalid data type for trace_pipeline"
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Pipeline Trace"))
	b.WriteString("\n\n")

	boxes := []string{
		m.renderStatBox("Initial", int64(data.Stats.InitialIntervals), highlightColor),
		m.renderStatBox("Peak", int64(data.Stats.PeakGeneration), warningColor),
		m.renderStatBox("Final", int64(data.Stats.FinalIntervals), successColor),
		m.renderStatBox("Min Start", data.MinStart, primaryColor),
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
	b.WriteString("\n\n")

	for i, s := range data.Stages {
		line := fmt.Sprintf("%-28s %6d → %-6d", s.Stage, s.IntervalsIn, s.IntervalsOut)
		style := GrowthStyle(s.IntervalsIn, s.IntervalsOut)
		prefix := "  "
		if i == m.cursor {
			prefix = "▸ "
			style = SelectedStyle
		}
		b.WriteString(prefix + style.Render(line) + "\n")
	}

	if m.cursor < len(data.Stages) {
		s := data.Stages[m.cursor]
		var d strings.Builder
		d.WriteString(fmt.Sprintf("%s %s\n", LabelStyle.Render("Stage:"), ValueStyle.Render(s.Stage.String())))
		d.WriteString(fmt.Sprintf("%s %s\n", LabelStyle.Render("Intervals:"),
			GrowthStyle(s.IntervalsIn, s.IntervalsOut).Render(fmt.Sprintf("%d → %d", s.IntervalsIn, s.IntervalsOut))))
		d.WriteString(fmt.Sprintf("%s %s\n", LabelStyle.Render("Values:"), ValueStyle.Render(humanize.Comma(s.Values))))
		d.WriteString(fmt.Sprintf("%s %s", LabelStyle.Render("Min Start:"), ValueStyle.Render(humanize.Comma(s.MinStart))))
		b.WriteString("\n")
		b.WriteString(BoxStyle.Render(d.String()))
	}

	return b.String()
}

func (m TraceModel) renderStatBox(label string, value int64, color lipgloss.Color) string {
	boxStyle := StatBoxStyle.BorderForeground(color)

	valueStr := StatValueStyle.Foreground(color).Render(humanize.Comma(value))
	labelStr := StatLabelStyle.Render(label)

	content := lipgloss.JoinVertical(lipgloss.Center, valueStr, labelStr)

	return boxStyle.Render(content)
}

// RunTraceTUI runs the trace TUI.
func RunTraceTUI(viewType string, data any) error {
	model := NewTraceModel(viewType, data)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// RenderTraceStatic renders trace data without full TUI (for fallback).
func RenderTraceStatic(viewType string, data any) string {
	model := NewTraceModel(viewType, data)
	model.width = 80
	model.height = 24
	return lipgloss.NewStyle().Padding(1, 2).Render(model.View())
}
