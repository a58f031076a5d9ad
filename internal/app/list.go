package app

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/five82/liftoff/internal/format"
	"github.com/five82/liftoff/internal/launches"
	"github.com/five82/liftoff/internal/state"
)

// ListOptions select one page of launches for non-interactive output.
type ListOptions struct {
	Options
	Criteria launches.Criteria
	Page     int // 1-based; 0 means the first page
	Format   format.Mode
}

// List fetches the dataset once, applies the criteria and writes the
// requested page as a table. A page outside the result keeps page 1, the
// same way the browser ignores out-of-range jumps.
func List(ctx context.Context, out io.Writer, opts ListOptions) error {
	e, err := bootstrap(opts.Options)
	if err != nil {
		return err
	}
	defer e.close()

	res := state.Fetch(ctx, e.client, e.log)
	if res.Discarded {
		return ctx.Err()
	}
	if res.Err != nil {
		return res.Err
	}

	view := state.NewView()
	view.Finish(res)
	view.ApplyFilters(opts.Criteria)
	if opts.Page > 1 && !view.GoToPage(opts.Page) {
		e.log.WithFields(logrus.Fields{
			"page":  opts.Page,
			"pages": view.Cursor().TotalPages(),
		}).Warn("page out of range; showing page 1")
	}

	page := view.Page()
	e.log.WithFields(logrus.Fields{
		"search":  opts.Criteria.Text,
		"status":  opts.Criteria.Status.String(),
		"window":  opts.Criteria.Window.String(),
		"page":    page.Number,
		"matches": page.TotalItems,
	}).Debug("listing launches")

	return format.WriteLaunches(out, page, opts.Format)
}
