package format

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/five82/liftoff/internal/launches"
	"github.com/five82/liftoff/internal/pager"
)

const missionWidth = 40

// LaunchTable builds the table for one page of launches. The footer carries
// the page position and match count.
func LaunchTable(page pager.Page[launches.Launch], m Mode) *Table {
	t := NewTable(m)
	t.Header("#", "Mission", "Date", "Rocket", "Status")
	for _, l := range page.Items {
		t.Row(l.FlightNumber, l.MissionName, l.DisplayDate(), l.RocketName, statusCell(l))
	}
	t.Footer("", fmt.Sprintf("Page %d of %d", page.Number, page.TotalPages), "",
		"", humanize.Comma(int64(page.TotalItems))+" matches")
	t.Columns(
		Column{Number: 1, AlignRight: true},
		Column{Number: 2, MaxWidth: missionWidth},
	)
	return t
}

// WriteLaunches renders page to w. An empty page still prints the footer so
// "no launches" is visible.
func WriteLaunches(w io.Writer, page pager.Page[launches.Launch], m Mode) error {
	if _, err := fmt.Fprintln(w, LaunchTable(page, m).String()); err != nil {
		return fmt.Errorf("write launches: %w", err)
	}
	return nil
}

func statusCell(l launches.Launch) string {
	if l.Upcoming {
		return l.StatusLabel() + " (upcoming)"
	}
	return l.StatusLabel()
}
