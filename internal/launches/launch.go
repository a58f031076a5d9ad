package launches

import (
	"strings"
	"time"
)

// InvalidDate is shown in place of a launch date that cannot be parsed.
const InvalidDate = "Invalid Date"

const displayDateLayout = "Jan 2, 2006"

// Launch is the normalized launch record shared by every view.
type Launch struct {
	FlightNumber int
	MissionName  string
	LaunchDate   string // raw ISO-8601 value from the API, possibly malformed
	Success      bool
	Upcoming     bool
	RocketName   string
	ImageURL     string
	Details      string
}

// LaunchTime parses LaunchDate. ok is false when the value is empty or malformed.
func (l Launch) LaunchTime() (t time.Time, ok bool) {
	t = parseTime(l.LaunchDate)
	return t, !t.IsZero()
}

// DisplayDate formats the launch date for cards and tables.
func (l Launch) DisplayDate() string {
	t, ok := l.LaunchTime()
	if !ok {
		return InvalidDate
	}
	return t.UTC().Format(displayDateLayout)
}

// StatusLabel returns "Success" or "Failure".
func (l Launch) StatusLabel() string {
	if l.Success {
		return StatusSuccess.String()
	}
	return StatusFailure.String()
}

func parseTime(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
