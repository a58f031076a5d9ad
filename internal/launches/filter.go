package launches

import (
	"fmt"
	"strings"
	"time"
)

// Status selects launches by outcome.
type Status int

const (
	StatusAny Status = iota
	StatusSuccess
	StatusFailure
)

// String returns the label used by the filter controls.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "Success"
	case StatusFailure:
		return "Failure"
	default:
		return ""
	}
}

// Next cycles Any → Success → Failure → Any.
func (s Status) Next() Status {
	switch s {
	case StatusAny:
		return StatusSuccess
	case StatusSuccess:
		return StatusFailure
	default:
		return StatusAny
	}
}

func (s Status) matches(l Launch) bool {
	switch s {
	case StatusSuccess:
		return l.Success
	case StatusFailure:
		return !l.Success
	default:
		return true
	}
}

// ParseStatus accepts "", "Success" and "Failure" in any case.
func ParseStatus(value string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "all", "any":
		return StatusAny, nil
	case "success":
		return StatusSuccess, nil
	case "failure", "failed":
		return StatusFailure, nil
	}
	return StatusAny, fmt.Errorf("unknown status %q", value)
}

// Window is a rolling date range ending at the evaluation time.
type Window int

const (
	WindowAny Window = iota
	WindowWeek
	WindowMonth
	WindowYear
)

// String returns the label used by the filter controls.
func (w Window) String() string {
	switch w {
	case WindowWeek:
		return "Last Week"
	case WindowMonth:
		return "Last Month"
	case WindowYear:
		return "Last Year"
	default:
		return ""
	}
}

// Next cycles Any → Week → Month → Year → Any.
func (w Window) Next() Window {
	switch w {
	case WindowAny:
		return WindowWeek
	case WindowWeek:
		return WindowMonth
	case WindowMonth:
		return WindowYear
	default:
		return WindowAny
	}
}

// Since returns the inclusive lower bound of the window relative to now: the
// start of the calendar day one week, month or year before now, in now's
// location. Months and years that would overflow into the next month clamp
// to the last day of the target month, so from Mar 31 "Last Month" starts on
// Feb 28 or 29. For WindowAny it returns the zero time.
func (w Window) Since(now time.Time) time.Time {
	var since time.Time
	switch w {
	case WindowWeek:
		since = now.AddDate(0, 0, -7)
	case WindowMonth:
		since = addClamped(now, 0, -1)
	case WindowYear:
		since = addClamped(now, -1, 0)
	default:
		return time.Time{}
	}
	return startOfDay(since)
}

// Until returns the inclusive upper bound of the window: the last instant of
// now's calendar day. For WindowAny it returns the zero time.
func (w Window) Until(now time.Time) time.Time {
	if w == WindowAny {
		return time.Time{}
	}
	return startOfDay(now).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

func (w Window) matches(l Launch, now time.Time) bool {
	if w == WindowAny {
		return true
	}
	t, ok := l.LaunchTime()
	if !ok {
		return false
	}
	return !t.Before(w.Since(now)) && !t.After(w.Until(now))
}

func addClamped(t time.Time, years, months int) time.Time {
	shifted := t.AddDate(years, months, 0)
	if shifted.Day() != t.Day() {
		// Day 0 is the last day of the previous month.
		y, m, _ := shifted.Date()
		shifted = time.Date(y, m, 0, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	}
	return shifted
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ParseWindow accepts the control labels ("Last Week") and short forms ("week").
func ParseWindow(value string) (Window, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	v = strings.TrimPrefix(v, "last ")
	switch v {
	case "", "all", "any":
		return WindowAny, nil
	case "week", "7d":
		return WindowWeek, nil
	case "month", "1m":
		return WindowMonth, nil
	case "year", "1y":
		return WindowYear, nil
	}
	return WindowAny, fmt.Errorf("unknown date window %q", value)
}

// Criteria holds the active filter axes. The zero value matches everything.
type Criteria struct {
	Text   string
	Status Status
	Window Window
}

// IsZero reports whether no axis is active.
func (c Criteria) IsZero() bool {
	return strings.TrimSpace(c.Text) == "" && c.Status == StatusAny && c.Window == WindowAny
}

// Filter derives a working set from the snapshot. Axes are applied in the
// fixed order status, date window, text, always starting from the snapshot,
// so the result depends only on (snapshot, criteria, now). Order is preserved.
func Filter(s Snapshot, c Criteria, now time.Time) []Launch {
	needle := strings.ToLower(strings.TrimSpace(c.Text))
	out := make([]Launch, 0, s.Len())
	for l := range s.All() {
		if !c.Status.matches(l) {
			continue
		}
		if !c.Window.matches(l, now) {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(l.MissionName), needle) {
			continue
		}
		out = append(out, l)
	}
	return out
}
