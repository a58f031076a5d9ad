package state

import (
	"strings"
	"time"

	"github.com/five82/liftoff/internal/launches"
	"github.com/five82/liftoff/internal/pager"
)

// View owns the data view pipeline: the original snapshot, the active filter
// criteria, the derived working set and the pagination cursor. It is driven
// from a single goroutine and needs no locking.
type View struct {
	loading bool
	loaded  bool
	err     error

	original launches.Snapshot
	working  []launches.Launch
	criteria launches.Criteria
	draft    string
	cursor   pager.Cursor

	now func() time.Time
}

// Option configures a View.
type Option func(*View)

// WithClock overrides the clock used by the date-window filter.
func WithClock(now func() time.Time) Option {
	return func(v *View) {
		if now != nil {
			v.now = now
		}
	}
}

// WithPageSize overrides pager.DefaultPageSize.
func WithPageSize(size int) Option {
	return func(v *View) {
		v.cursor = pager.New(size)
	}
}

// NewView returns a view in the loading state with an empty working set.
func NewView(opts ...Option) *View {
	v := &View{
		loading: true,
		cursor:  pager.New(pager.DefaultPageSize),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Finish applies the outcome of the dataset read. Only the first
// non-discarded result is applied; the snapshot is captured exactly once.
func (v *View) Finish(res LoadResult) {
	if res.Discarded || !v.loading {
		return
	}
	v.loading = false
	if res.Err != nil {
		v.err = res.Err
		v.working = nil
		v.cursor.Reset(0)
		return
	}
	v.loaded = true
	v.original = launches.NewSnapshot(res.Records)
	v.recompute()
}

// Loading reports whether the dataset read is still outstanding.
func (v *View) Loading() bool { return v.loading }

// Err returns the fetch failure, if any.
func (v *View) Err() error { return v.err }

// Total returns the size of the original snapshot.
func (v *View) Total() int { return v.original.Len() }

// Matches returns the size of the working set.
func (v *View) Matches() int { return len(v.working) }

// Criteria returns the active filter criteria.
func (v *View) Criteria() launches.Criteria { return v.criteria }

// SearchDraft returns the search text typed but not yet applied.
func (v *View) SearchDraft() string { return v.draft }

// Cursor returns a copy of the pagination cursor.
func (v *View) Cursor() pager.Cursor { return v.cursor }

// Page returns the launches on the current page with page metadata.
func (v *View) Page() pager.Page[launches.Launch] {
	return pager.NewPage(v.working, v.cursor)
}

// SetSearchTerm updates the search draft. It does not filter.
func (v *View) SetSearchTerm(term string) {
	v.draft = term
}

// ApplySearch commits the search draft as the text filter.
func (v *View) ApplySearch() {
	v.criteria.Text = strings.TrimSpace(v.draft)
	v.recompute()
}

// SetStatus replaces the status filter.
func (v *View) SetStatus(s launches.Status) {
	v.criteria.Status = s
	v.recompute()
}

// SetWindow replaces the date-window filter.
func (v *View) SetWindow(w launches.Window) {
	v.criteria.Window = w
	v.recompute()
}

// ApplyFilters replaces every axis at once. The search draft follows the text axis.
func (v *View) ApplyFilters(c launches.Criteria) {
	c.Text = strings.TrimSpace(c.Text)
	v.criteria = c
	v.draft = c.Text
	v.recompute()
}

// ClearFilters resets every axis, restoring the full snapshot.
func (v *View) ClearFilters() {
	v.ApplyFilters(launches.Criteria{})
}

// GoToPage moves to page n; out-of-range requests are ignored.
func (v *View) GoToPage(n int) bool { return v.cursor.GoTo(n) }

// NextPage advances one page; a no-op on the last page.
func (v *View) NextPage() bool { return v.cursor.Next() }

// PreviousPage goes back one page; a no-op on the first page.
func (v *View) PreviousPage() bool { return v.cursor.Previous() }

// FirstPage jumps to page 1.
func (v *View) FirstPage() { v.cursor.First() }

// LastPage jumps to the final page.
func (v *View) LastPage() { v.cursor.Last() }

// recompute re-derives the working set from the original snapshot and
// returns the cursor to page 1. Before a successful load the working set
// stays empty.
func (v *View) recompute() {
	if !v.loaded {
		v.working = nil
		v.cursor.Reset(0)
		return
	}
	v.working = launches.Filter(v.original, v.criteria, v.now())
	v.cursor.Reset(len(v.working))
}
