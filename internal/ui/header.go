package ui

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// renderHeader renders the status line: logo, load state, match counts and
// the active filters.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{bg.Render("liftoff", styles.Logo)}

	switch {
	case m.view.Loading():
		parts = append(parts,
			bg.Render(m.spinner.View(), styles.AccentText)+bg.Space()+
				bg.Render("Loading launches...", styles.WarningText.Bold(true)))

	case m.view.Err() != nil:
		parts = append(parts, bg.Render("Could not load launches", styles.DangerText))
		if m.width >= LayoutCompactWidth {
			parts = append(parts, bg.Render(truncate(m.view.Err().Error(), m.width/2), styles.MutedText))
		}

	default:
		counts := fmt.Sprintf("%s of %s launches",
			humanize.Comma(int64(m.view.Matches())), humanize.Comma(int64(m.view.Total())))
		parts = append(parts, bg.Render(counts, styles.Text))
		parts = append(parts, m.filterChips(styles, bg)...)
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// filterChips renders one labelled chip per active filter axis.
func (m Model) filterChips(styles Styles, bg BgStyle) []string {
	c := m.view.Criteria()
	var chips []string
	if c.Text != "" {
		chips = append(chips,
			bg.Render("search", styles.FaintText)+bg.Space()+bg.Render(truncate(c.Text, 24), styles.AccentText))
	}
	if s := c.Status.String(); s != "" {
		chips = append(chips, styles.Badge(s).Render(s))
	}
	if w := c.Window.String(); w != "" {
		chips = append(chips, bg.Render(w, styles.InfoText))
	}
	return chips
}

// renderCommandBar renders key hints, or the search box while editing.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	if m.searching {
		hint := bg.Render("enter", styles.AccentText) + bg.Sep(":") + bg.Render("Apply", styles.MutedText) +
			bg.Spaces(2) +
			bg.Render("esc", styles.AccentText) + bg.Sep(":") + bg.Render("Cancel", styles.MutedText)
		return styles.Header.Width(m.width).Render(m.search.View() + bg.Spaces(2) + hint)
	}

	type cmd struct{ key, desc string }
	var commands []cmd
	if m.showLogs {
		commands = []cmd{
			{"j/k", "Scroll"},
			{"g/G", "Top/Bottom"},
			{"r", "Reload"},
			{"esc", "Back"},
		}
	} else {
		status := m.view.Criteria().Status.String()
		if status == "" {
			status = "Any"
		}
		window := m.view.Criteria().Window.String()
		if window == "" {
			window = "Any time"
		}
		commands = []cmd{
			{"/", "Search"},
			{"s", status},
			{"w", window},
			{"x", "Clear"},
			{"h/l", "Page"},
			{"v", layoutLabel(m.prefs.Layout)},
			{"L", "Log"},
			{"?", "More"},
		}
	}

	colon := bg.Sep(":")
	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, bg.Spaces(2)))
}
