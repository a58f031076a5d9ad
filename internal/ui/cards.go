package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/five82/liftoff/internal/launches"
	"github.com/five82/liftoff/internal/prefs"
)

// renderContent renders the current page as cards or rows, or the empty
// state when there is nothing to show.
func (m Model) renderContent() string {
	styles := m.theme.Styles()
	height := max(m.height-chromeLines, 1)
	page := m.view.Page()

	if len(page.Items) == 0 {
		var msg string
		switch {
		case m.view.Loading():
			msg = styles.AccentText.Render(m.spinner.View()) + " " + styles.MutedText.Render("Fetching launches")
		default:
			msg = styles.MutedText.Render("No launches")
		}
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, msg)
	}

	var body string
	if m.prefs.Layout == prefs.LayoutList {
		body = m.renderList(page.Items, m.width)
	} else {
		body = m.renderGrid(page.Items, m.width)
	}
	return lipgloss.NewStyle().Height(height).MaxHeight(height).Render(body)
}

// renderGrid lays cards out in rows of one to three depending on width.
func (m Model) renderGrid(items []launches.Launch, width int) string {
	cols := gridColumns(width)
	cardWidth := width / cols

	var rows []string
	for start := 0; start < len(items); start += cols {
		end := min(start+cols, len(items))
		cards := make([]string, 0, cols)
		for i := start; i < end; i++ {
			cards = append(cards, m.renderCard(items[i], cardWidth, i == m.selected))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderCard renders one launch:
//
//	╭──────────────────────────────╮
//	│ FalconSat                    │
//	│ Mar 24, 2006 · 18 years ago  │
//	│ Falcon 1 · Flight #1         │
//	│ Failure                      │
//	│ images2.imgbox…/b0tO.png     │
//	╰──────────────────────────────╯
func (m Model) renderCard(l launches.Launch, width int, selected bool) string {
	bgColor := m.theme.SurfaceAlt
	borderColor := m.theme.Border
	if selected {
		bgColor = m.theme.FocusBg
		borderColor = m.theme.BorderFocus
	}
	styles := m.theme.Styles().WithBackground(bgColor)
	bg := NewBgStyle(bgColor)

	inner := max(width-4, 8) // border + padding
	lines := []string{
		bg.Render(truncate(l.MissionName, inner), styles.Text.Bold(true)),
		bg.Render(truncate(m.dateLine(l), inner), styles.MutedText),
		bg.Render(truncate(rocketLine(l), inner), styles.Text),
		m.badges(l, styles, bg),
	}
	if l.ImageURL != "" {
		lines = append(lines, bg.Render(truncateMiddle(l.ImageURL, inner), styles.FaintText))
	} else {
		lines = append(lines, bg.Render("no image", styles.FaintText))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		BorderBackground(lipgloss.Color(m.theme.Background)).
		Background(lipgloss.Color(bgColor)).
		Padding(0, 1).
		Width(width - 2).
		Render(strings.Join(lines, "\n"))
}

// renderList renders one row per launch plus the selected launch's details
// in a titled box underneath.
func (m Model) renderList(items []launches.Launch, width int) string {
	styles := m.theme.Styles()
	nameWidth := max(width-60, 16)

	lines := make([]string, 0, len(items))
	for i, l := range items {
		bgColor := m.theme.Background
		if i == m.selected {
			bgColor = m.theme.FocusBg
		}
		rowStyles := styles.WithBackground(bgColor)
		bg := NewBgStyle(bgColor)
		row := bg.Render(padRight(fmt.Sprintf("#%d", l.FlightNumber), 6), rowStyles.MutedText) +
			bg.Render(padRight(truncate(l.MissionName, nameWidth), nameWidth), rowStyles.Text) + bg.Spaces(2) +
			bg.Render(padRight(l.DisplayDate(), 14), rowStyles.MutedText) +
			bg.Render(padRight(truncate(l.RocketName, 14), 14), rowStyles.Text) + bg.Spaces(2) +
			m.badges(l, rowStyles, bg)
		lines = append(lines, bg.FillLine(row, width))
	}

	detail, ok := m.selectedLaunch()
	if !ok {
		return strings.Join(lines, "\n")
	}
	boxHeight := max(m.height-chromeLines-len(lines), 4)
	box := m.renderTitledBox(detail.MissionName, m.detailContent(detail, width-4), width, boxHeight)
	return strings.Join(lines, "\n") + "\n" + box
}

// detailContent renders the long-form fields of the selected launch.
func (m Model) detailContent(l launches.Launch, width int) string {
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	bg := NewBgStyle(m.theme.SurfaceAlt)

	lines := []string{
		bg.Render(m.dateLine(l), styles.MutedText),
		bg.Render(rocketLine(l), styles.Text),
	}
	if l.ImageURL != "" {
		lines = append(lines, bg.Render(truncateMiddle(l.ImageURL, width), styles.FaintText))
	}
	for _, line := range wrap(l.Details, width, 4) {
		lines = append(lines, bg.Render(line, styles.Text))
	}
	return strings.Join(lines, "\n")
}

// dateLine is the formatted date plus a relative age, like
// "Mar 24, 2006 · 18 years ago".
func (m Model) dateLine(l launches.Launch) string {
	t, ok := l.LaunchTime()
	if !ok {
		return launches.InvalidDate
	}
	return l.DisplayDate() + " · " + humanize.RelTime(t, m.now(), "ago", "from now")
}

func rocketLine(l launches.Launch) string {
	rocket := l.RocketName
	if rocket == "" {
		rocket = "Unknown rocket"
	}
	return fmt.Sprintf("%s · Flight #%d", rocket, l.FlightNumber)
}

// badges renders the outcome badge and, for scheduled flights, an upcoming badge.
func (m Model) badges(l launches.Launch, styles Styles, bg BgStyle) string {
	label := l.StatusLabel()
	out := styles.Badge(label).Render(label)
	if l.Upcoming {
		out += bg.Space() + styles.Badge("upcoming").Render("Upcoming")
	}
	return out
}

// renderTitledBox renders content in a box with the title embedded in the
// top border: ┌─── Title ───┐
func (m Model) renderTitledBox(title, content string, width, height int) string {
	bg := NewBgStyle(m.theme.SurfaceAlt)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.BorderFocus))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := max(width-2, 4)
	title = truncate(title, innerWidth-4)
	titleLen := len([]rune(title))
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).Background(lipgloss.Color(m.theme.SurfaceAlt))
	contentLines := strings.Split(content, "\n")
	boxHeight := max(height-2, 1)

	paddedLines := make([]string, 0, boxHeight)
	for i := range boxHeight {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		paddedLines = append(paddedLines,
			bg.Render("│", borderStyle)+contentStyle.Render(line)+bg.Render("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(paddedLines, "\n") + "\n" + bottomBorder
}

func layoutLabel(l prefs.Layout) string {
	if l == prefs.LayoutList {
		return "List"
	}
	return "Grid"
}
