package state

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"github.com/five82/liftoff/internal/launches"
)

type fakeSource struct {
	records []launches.Launch
	err     error
	calls   int
}

func (f *fakeSource) FetchLaunches(ctx context.Context) ([]launches.Launch, error) {
	f.calls++
	return f.records, f.err
}

func flightNumbers(ls []launches.Launch) []int {
	out := make([]int, 0, len(ls))
	for _, l := range ls {
		out = append(out, l.FlightNumber)
	}
	return out
}

// twentyLaunches returns flights 1..20; even flights and flights 1, 3 succeed
// (12 successes total).
func twentyLaunches() []launches.Launch {
	out := make([]launches.Launch, 0, 20)
	for i := 1; i <= 20; i++ {
		out = append(out, launches.Launch{
			FlightNumber: i,
			MissionName:  fmt.Sprintf("Mission %02d", i),
			LaunchDate:   time.Date(2023, 1, i, 0, 0, 0, 0, time.UTC).Format(time.RFC3339),
			Success:      i%2 == 0 || i == 1 || i == 3,
		})
	}
	return out
}

func loadedView(t *testing.T, records []launches.Launch, opts ...Option) *View {
	t.Helper()
	v := NewView(opts...)
	logger, _ := logtest.NewNullLogger()
	v.Finish(Fetch(context.Background(), &fakeSource{records: records}, logger))
	if v.Loading() {
		t.Fatalf("view still loading after Finish")
	}
	return v
}

func TestNewView_InitialState(t *testing.T) {
	v := NewView()
	if !v.Loading() {
		t.Fatalf("Loading = false, want true before fetch")
	}
	p := v.Page()
	if p.Number != 1 || p.TotalPages != 1 || len(p.Items) != 0 {
		t.Fatalf("initial page = %+v, want empty page 1 of 1", p)
	}
}

func TestFinish_SuccessCapturesSnapshot(t *testing.T) {
	records := twentyLaunches()
	v := loadedView(t, records)

	if v.Err() != nil {
		t.Fatalf("Err = %v, want nil", v.Err())
	}
	if v.Total() != 20 || v.Matches() != 20 {
		t.Fatalf("Total/Matches = %d/%d, want 20/20", v.Total(), v.Matches())
	}
	if got := v.Page().TotalPages; got != 3 {
		t.Fatalf("TotalPages = %d, want 3", got)
	}

	// Mutating the caller's slice must not leak into the snapshot.
	records[0].MissionName = "mutated"
	v.ClearFilters()
	if got := v.Page().Items[0].MissionName; got != "Mission 01" {
		t.Fatalf("snapshot follows input mutation: %q", got)
	}
}

func TestFinish_FailureLeavesEmptyWorkingSet(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	src := &fakeSource{err: errors.New("connection refused")}

	v := NewView()
	v.Finish(Fetch(context.Background(), src, logger))

	if v.Loading() {
		t.Fatalf("Loading = true after failure, want false")
	}
	var failure *FetchFailure
	if !errors.As(v.Err(), &failure) {
		t.Fatalf("Err = %v, want *FetchFailure", v.Err())
	}
	if !errors.Is(v.Err(), src.err) {
		t.Fatalf("Err does not wrap source error: %v", v.Err())
	}
	p := v.Page()
	if len(p.Items) != 0 || p.TotalPages != 1 || p.Number != 1 {
		t.Fatalf("page after failure = %+v, want empty page 1 of 1", p)
	}
	if src.calls != 1 {
		t.Fatalf("source called %d times, want exactly 1", src.calls)
	}
	entry := hook.LastEntry()
	if entry == nil || entry.Level != logrus.ErrorLevel {
		t.Fatalf("fetch failure not logged at error level: %#v", entry)
	}

	// Filters stay total functions on an empty view.
	v.SetStatus(launches.StatusSuccess)
	if v.Matches() != 0 || v.Page().Number != 1 {
		t.Fatalf("filtering after failure produced %d matches", v.Matches())
	}
}

func TestFinish_OnlyFirstResultApplies(t *testing.T) {
	v := loadedView(t, twentyLaunches())
	v.Finish(LoadResult{Records: []launches.Launch{{FlightNumber: 99}}})
	if v.Total() != 20 {
		t.Fatalf("second Finish replaced snapshot: Total = %d", v.Total())
	}
}

func TestFetch_DiscardsAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	logger, _ := logtest.NewNullLogger()

	res := Fetch(ctx, &fakeSource{records: twentyLaunches()}, logger)
	if !res.Discarded {
		t.Fatalf("Discarded = false, want true for cancelled context")
	}
	v := NewView()
	v.Finish(res)
	if !v.Loading() {
		t.Fatalf("discarded result changed view state")
	}
}

func TestSuccessFilterScenario(t *testing.T) {
	v := loadedView(t, twentyLaunches())
	v.SetStatus(launches.StatusSuccess)

	p := v.Page()
	if p.TotalItems != 12 || p.TotalPages != 2 {
		t.Fatalf("after Success filter: %d items on %d pages, want 12 on 2", p.TotalItems, p.TotalPages)
	}
	want := []int{1, 2, 3, 4, 6, 8, 10, 12, 14}
	if diff := cmp.Diff(want, flightNumbers(p.Items)); diff != "" {
		t.Fatalf("page 1 mismatch (-want +got):\n%s", diff)
	}

	if !v.NextPage() {
		t.Fatalf("NextPage returned false on page 1 of 2")
	}
	if diff := cmp.Diff([]int{16, 18, 20}, flightNumbers(v.Page().Items)); diff != "" {
		t.Fatalf("page 2 mismatch (-want +got):\n%s", diff)
	}
	if v.NextPage() {
		t.Fatalf("NextPage returned true on last page")
	}
}

func TestFilterChangesResetToFirstPage(t *testing.T) {
	now := time.Date(2023, 1, 25, 0, 0, 0, 0, time.UTC)
	v := loadedView(t, twentyLaunches(), WithClock(func() time.Time { return now }))

	mutations := []struct {
		name string
		fn   func()
	}{
		{"status", func() { v.SetStatus(launches.StatusFailure) }},
		{"window", func() { v.SetWindow(launches.WindowWeek) }},
		{"search", func() { v.SetSearchTerm("mission"); v.ApplySearch() }},
		{"apply", func() { v.ApplyFilters(launches.Criteria{Text: "1"}) }},
		{"clear", func() { v.ClearFilters() }},
	}
	for _, m := range mutations {
		t.Run(m.name, func(t *testing.T) {
			v.ClearFilters()
			v.LastPage()
			m.fn()
			if got := v.Page().Number; got != 1 {
				t.Fatalf("page after %s = %d, want 1", m.name, got)
			}
		})
	}
}

func TestGoToPage_OutOfRangeIsNoop(t *testing.T) {
	v := loadedView(t, twentyLaunches())
	v.GoToPage(2)
	for _, n := range []int{-3, 0, 4, 100} {
		if v.GoToPage(n) {
			t.Fatalf("GoToPage(%d) = true, want false", n)
		}
		if got := v.Page().Number; got != 2 {
			t.Fatalf("GoToPage(%d) moved to page %d", n, got)
		}
	}
	v.FirstPage()
	if v.PreviousPage() {
		t.Fatalf("PreviousPage on first page = true")
	}
}

func TestSearchDraftIsNotAppliedUntilSearch(t *testing.T) {
	v := loadedView(t, twentyLaunches())
	v.SetSearchTerm("Mission 1")
	if v.Matches() != 20 {
		t.Fatalf("SetSearchTerm filtered eagerly: %d matches", v.Matches())
	}
	v.ApplySearch()
	// "Mission 1" matches Mission 10..19.
	if v.Matches() != 10 {
		t.Fatalf("Matches after ApplySearch = %d, want 10", v.Matches())
	}
	if v.Criteria().Text != "Mission 1" {
		t.Fatalf("Criteria().Text = %q, want %q", v.Criteria().Text, "Mission 1")
	}
}

func TestFiltersCombineAndClearRestoresOrder(t *testing.T) {
	now := time.Date(2023, 1, 20, 12, 0, 0, 0, time.UTC)
	v := loadedView(t, twentyLaunches(), WithClock(func() time.Time { return now }))

	v.SetStatus(launches.StatusSuccess)
	v.SetWindow(launches.WindowWeek)
	v.SetSearchTerm("mission")
	v.ApplySearch()
	// Window Jan 13..Jan 20 holds flights 13..20; successes are 14, 16, 18, 20.
	if diff := cmp.Diff([]int{14, 16, 18, 20}, flightNumbers(v.Page().Items)); diff != "" {
		t.Fatalf("combined filters mismatch (-want +got):\n%s", diff)
	}

	v.SetStatus(launches.StatusAny)
	v.SetWindow(launches.WindowAny)
	v.SetSearchTerm("")
	v.ApplySearch()
	if !v.Criteria().IsZero() {
		t.Fatalf("criteria not cleared: %+v", v.Criteria())
	}
	all := make([]int, 0, 20)
	for i := 1; i <= 20; i++ {
		all = append(all, i)
	}
	got := flightNumbers(v.Page().Items)
	for v.NextPage() {
		got = append(got, flightNumbers(v.Page().Items)...)
	}
	if diff := cmp.Diff(all, got); diff != "" {
		t.Fatalf("cleared filters do not restore snapshot (-want +got):\n%s", diff)
	}
}

func TestWindowUsesClockAtApplication(t *testing.T) {
	now := time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)
	v := loadedView(t, twentyLaunches(), WithClock(func() time.Time { return now }))

	v.SetWindow(launches.WindowWeek)
	if diff := cmp.Diff([]int{3, 4, 5, 6, 7, 8, 9, 10}, flightNumbers(v.Page().Items)); diff != "" {
		t.Fatalf("week ending Jan 10 mismatch (-want +got):\n%s", diff)
	}

	now = now.AddDate(0, 0, 15)
	v.SetWindow(launches.WindowWeek)
	if diff := cmp.Diff([]int{18, 19, 20}, flightNumbers(v.Page().Items)); diff != "" {
		t.Fatalf("week ending Jan 25 mismatch (-want +got):\n%s", diff)
	}
}
