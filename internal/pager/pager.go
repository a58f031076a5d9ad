// Package pager maps a slice length and a fixed page size onto 1-based pages.
package pager

// DefaultPageSize is the number of launches shown per page.
const DefaultPageSize = 9

// Cursor tracks the current page over a working set of a known size.
// The zero value is not usable; construct with New.
type Cursor struct {
	page  int
	total int
	size  int
	count int
}

// New returns a cursor on page 1 of an empty working set.
func New(size int) Cursor {
	if size <= 0 {
		size = DefaultPageSize
	}
	return Cursor{page: 1, total: 1, size: size}
}

// Reset recomputes the page count for a new working set size and returns to page 1.
func (c *Cursor) Reset(count int) {
	if count < 0 {
		count = 0
	}
	c.count = count
	c.total = TotalPages(count, c.size)
	c.page = 1
}

// TotalPages returns ceil(count/size), floored at 1.
func TotalPages(count, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	if count <= 0 {
		return 1
	}
	return (count + size - 1) / size
}

// Page returns the current 1-based page.
func (c Cursor) Page() int { return c.page }

// TotalPages returns the number of pages, at least 1.
func (c Cursor) TotalPages() int { return c.total }

// PageSize returns the fixed page size.
func (c Cursor) PageSize() int { return c.size }

// Count returns the working set size the cursor was last reset with.
func (c Cursor) Count() int { return c.count }

// OnFirst reports whether the cursor is on page 1.
func (c Cursor) OnFirst() bool { return c.page == 1 }

// OnLast reports whether the cursor is on the last page.
func (c Cursor) OnLast() bool { return c.page == c.total }

// GoTo moves to page n. Requests outside [1, TotalPages] are ignored and
// reported as false.
func (c *Cursor) GoTo(n int) bool {
	if n < 1 || n > c.total {
		return false
	}
	c.page = n
	return true
}

// Next moves forward one page; it is a no-op on the last page.
func (c *Cursor) Next() bool {
	if c.OnLast() {
		return false
	}
	return c.GoTo(c.page + 1)
}

// Previous moves back one page; it is a no-op on the first page.
func (c *Cursor) Previous() bool {
	if c.OnFirst() {
		return false
	}
	return c.GoTo(c.page - 1)
}

// First moves to page 1.
func (c *Cursor) First() { c.page = 1 }

// Last moves to the final page.
func (c *Cursor) Last() { c.page = c.total }

// Bounds returns the half-open slice range of the current page for a slice of
// length n. The range is always within [0, n].
func (c Cursor) Bounds(n int) (start, end int) {
	start = (c.page - 1) * c.size
	if start > n {
		start = n
	}
	end = start + c.size
	if end > n {
		end = n
	}
	return start, end
}

// Slice returns the items on the cursor's current page.
func Slice[T any](items []T, c Cursor) []T {
	start, end := c.Bounds(len(items))
	return items[start:end:end]
}

// Page is the read-only view of one page of a working set.
type Page[T any] struct {
	Items      []T
	Number     int
	TotalPages int
	PageSize   int
	TotalItems int
}

// NewPage slices items with c and wraps the result with its metadata.
func NewPage[T any](items []T, c Cursor) Page[T] {
	return Page[T]{
		Items:      Slice(items, c),
		Number:     c.Page(),
		TotalPages: c.TotalPages(),
		PageSize:   c.PageSize(),
		TotalItems: len(items),
	}
}

// HasPrevious reports whether a previous page exists.
func (p Page[T]) HasPrevious() bool { return p.Number > 1 }

// HasNext reports whether a following page exists.
func (p Page[T]) HasNext() bool { return p.Number < p.TotalPages }

// Window returns up to width page numbers centered on the current page, for
// rendering numbered page buttons.
func Window(c Cursor, width int) []int {
	if width <= 0 || width > c.total {
		width = c.total
	}
	start := c.page - width/2
	if start < 1 {
		start = 1
	}
	if start+width-1 > c.total {
		start = c.total - width + 1
	}
	out := make([]int, width)
	for i := range out {
		out[i] = start + i
	}
	return out
}
