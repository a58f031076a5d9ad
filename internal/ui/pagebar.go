package ui

import (
	"fmt"
	"strconv"

	"github.com/five82/liftoff/internal/pager"
)

// renderPageBar renders Prev, a window of numbered page buttons, Next, the
// page dots and a "Page x of y" summary.
func (m Model) renderPageBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	page := m.view.Page()

	prevStyle, nextStyle := styles.FaintText, styles.FaintText
	if page.HasPrevious() {
		prevStyle = styles.AccentText
	}
	if page.HasNext() {
		nextStyle = styles.AccentText
	}

	parts := []string{bg.Render("‹ Prev", prevStyle)}
	for _, n := range pager.Window(m.view.Cursor(), PageButtonWindow) {
		label := strconv.Itoa(n)
		if n == page.Number {
			parts = append(parts, bg.Render("["+label+"]", styles.WarningText.Bold(true)))
			continue
		}
		parts = append(parts, bg.Render(label, styles.MutedText))
	}
	parts = append(parts, bg.Render("Next ›", nextStyle))

	if page.TotalPages > 1 && page.TotalPages <= 20 {
		parts = append(parts, bg.Render(m.dots.View(), styles.FaintText))
	}
	parts = append(parts, bg.Render(
		fmt.Sprintf("Page %d of %d", page.Number, page.TotalPages), styles.MutedText))

	return styles.Header.Width(m.width).Render(bg.Join(parts, " "))
}
