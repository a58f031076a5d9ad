package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/liftoff/internal/logtail"
)

// readLogCmd loads the tail of liftoff's own log file off the update loop.
func readLogCmd(path string) tea.Cmd {
	return func() tea.Msg {
		lines, err := logtail.Read(path, LogTailLines)
		return logTailMsg{lines: lines, err: err}
	}
}

// resizeLogViewport fits the viewport inside the titled box below the
// header and command bar.
func (m *Model) resizeLogViewport() {
	width := max(m.width-4, 1)
	height := max(m.height-4, 1)
	if m.logViewport.Width == 0 {
		m.logViewport = viewport.New(width, height)
	}
	m.logViewport.Width = width
	m.logViewport.Height = height
	m.logViewport.Style = lipgloss.NewStyle().Background(lipgloss.Color(m.theme.SurfaceAlt))
}

// refreshLogViewport re-renders the log lines and scrolls to the newest entry.
func (m *Model) refreshLogViewport() {
	m.resizeLogViewport()
	m.logViewport.SetContent(m.renderLogContent())
	m.logViewport.GotoBottom()
}

func (m Model) renderLogContent() string {
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	if m.logErr != nil {
		return styles.DangerText.Render(m.logErr.Error())
	}
	if len(m.logLines) == 0 {
		return styles.MutedText.Render("Log is empty")
	}

	out := make([]string, 0, len(m.logLines))
	for _, line := range m.logLines {
		style := styles.Text
		switch logtail.Level(line) {
		case "error", "fatal", "panic":
			style = styles.DangerText
		case "warning", "warn":
			style = styles.WarningText
		case "debug", "trace":
			style = styles.FaintText
		}
		out = append(out, style.Render(truncate(line, m.logViewport.Width)))
	}
	return strings.Join(out, "\n")
}

// renderLogs renders the log pane in a titled box.
func (m Model) renderLogs() string {
	title := "Log · " + truncateMiddle(m.logFile, max(m.width-16, 10))
	return m.renderTitledBox(title, m.logViewport.View(), m.width, max(m.height-2, 3))
}

// handleLogsKey scrolls the log pane; esc, L or q return to the launches.
func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "L", "q":
		m.showLogs = false
		return m, nil
	case "g", "home":
		m.logViewport.GotoTop()
		return m, nil
	case "G", "end":
		m.logViewport.GotoBottom()
		return m, nil
	case "r":
		return m, readLogCmd(m.logFile)
	}

	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	return m, cmd
}
