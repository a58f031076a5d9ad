package format

import (
	"bytes"
	"strings"
	"testing"

	"github.com/five82/liftoff/internal/launches"
	"github.com/five82/liftoff/internal/pager"
)

func samplePage() pager.Page[launches.Launch] {
	items := []launches.Launch{
		{FlightNumber: 1, MissionName: "FalconSat", LaunchDate: "2006-03-24T22:30:00.000Z", RocketName: "Falcon 1"},
		{FlightNumber: 6, MissionName: "Falcon 9 Test Flight", LaunchDate: "2010-06-04T18:45:00.000Z", RocketName: "Falcon 9", Success: true},
		{FlightNumber: 99, MissionName: "TBD", LaunchDate: "soon", Upcoming: true},
	}
	c := pager.New(pager.DefaultPageSize)
	c.Reset(len(items))
	return pager.NewPage(items, c)
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"": ASCII, "ascii": ASCII, "Markdown": Markdown, "md": Markdown} {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Fatalf("ParseMode(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseMode("csv"); err == nil {
		t.Fatalf("ParseMode(csv) returned nil error")
	}
}

func TestLaunchTable_ASCII(t *testing.T) {
	out := LaunchTable(samplePage(), ASCII).String()
	for _, want := range []string{"Mission", "FalconSat", "Mar 24, 2006", "Failure", "Success", "Invalid Date", "Failure (upcoming)", "Page 1 of 1", "3 matches"} {
		if !strings.Contains(out, want) {
			t.Fatalf("ASCII table missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "───") {
		t.Fatalf("ASCII table missing box-drawing characters:\n%s", out)
	}
}

func TestWriteLaunches_Markdown(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteLaunches(&buf, samplePage(), Markdown); err != nil {
		t.Fatalf("WriteLaunches: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "| # ") || !strings.Contains(out, "---") {
		t.Fatalf("markdown table malformed:\n%s", out)
	}
	if !strings.Contains(out, "Falcon 9 Test Flight") {
		t.Fatalf("markdown table missing mission:\n%s", out)
	}
}

func TestLaunchTable_EmptyPage(t *testing.T) {
	c := pager.New(pager.DefaultPageSize)
	c.Reset(0)
	out := LaunchTable(pager.NewPage[launches.Launch](nil, c), ASCII).String()
	if !strings.Contains(out, "0 matches") || !strings.Contains(out, "Page 1 of 1") {
		t.Fatalf("empty table footer missing:\n%s", out)
	}
}
