package ui

// Terminal width thresholds for the card grid.
const (
	// LayoutTwoColumnWidth is the minimum width for two cards per row.
	LayoutTwoColumnWidth = 80

	// LayoutThreeColumnWidth is the minimum width for three cards per row.
	LayoutThreeColumnWidth = 120

	// LayoutCompactWidth is the threshold below which the header drops detail.
	LayoutCompactWidth = 100
)

// Chrome heights: header, command bar and page bar.
const chromeLines = 3

// PageButtonWindow is how many numbered page buttons the page bar shows.
const PageButtonWindow = 7

// LogTailLines is the number of log lines the log pane keeps.
const LogTailLines = 500

// gridColumns returns the number of cards per row for a terminal width.
func gridColumns(width int) int {
	switch {
	case width >= LayoutThreeColumnWidth:
		return 3
	case width >= LayoutTwoColumnWidth:
		return 2
	default:
		return 1
	}
}
