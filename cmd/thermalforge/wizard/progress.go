package wizard

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ProgressMsg is sent after each frame is written.
type ProgressMsg struct {
	Current int
	Total   int
	Path    string
}

// CompletionMsg is sent when generation completes successfully.
type CompletionMsg struct {
	TotalFiles int
	Duration   time.Duration
	OutputDir  string
}

// ErrorMsg is sent when an error occurs during generation.
type ErrorMsg struct {
	Error error
}

var (
	progressBarStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("63"))

	progressBarEmptyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))

	progressFileStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("244"))
)

// progressModel displays generation progress.
type progressModel struct {
	current   int
	total     int
	path      string
	startTime time.Time
	done      bool
	err       error
	result    CompletionMsg
}

func newProgressModel(total int) progressModel {
	return progressModel{total: total, startTime: time.Now()}
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ProgressMsg:
		m.current = msg.Current
		m.total = msg.Total
		m.path = msg.Path
		return m, nil
	case CompletionMsg:
		m.done = true
		m.result = msg
		return m, tea.Quit
	case ErrorMsg:
		m.err = msg.Error
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.err = fmt.Errorf("cancelled")
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.done || m.err != nil {
		return ""
	}
	const barWidth = 40
	filled := 0
	if m.total > 0 {
		filled = m.current * barWidth / m.total
	}
	bar := progressBarStyle.Render(strings.Repeat("█", filled)) +
		progressBarEmptyStyle.Render(strings.Repeat("░", barWidth-filled))

	var b strings.Builder
	fmt.Fprintf(&b, "Generating heatmaps...\n\n")
	fmt.Fprintf(&b, "%s %d/%d\n", bar, m.current, m.total)
	if m.path != "" {
		b.WriteString(progressFileStyle.Render(m.path) + "\n")
	}
	fmt.Fprintf(&b, "\nElapsed: %s\n", time.Since(m.startTime).Round(time.Millisecond))
	return b.String()
}
