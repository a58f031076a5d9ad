// Package state holds the launch list view pipeline shared by the terminal UI
// and the list command.
//
// # Overview
//
// A View moves through two phases:
//
//	NewView()            loading = true, empty working set, page 1 of 1
//	   │
//	   │  Fetch(ctx, source, log)   single outbound read
//	   ▼
//	View.Finish(result)  loading = false
//	   ├─ success: snapshot captured, working set = snapshot, page 1
//	   └─ failure: working set empty, page 1 of 1, Err() = *FetchFailure
//
// After loading, every filter mutation (ApplySearch, SetStatus, SetWindow,
// ApplyFilters, ClearFilters) re-derives the working set from the original
// snapshot with launches.Filter and resets the cursor to page 1. Page
// navigation (GoToPage, NextPage, PreviousPage) only moves the cursor and
// silently ignores requests outside [1, total pages].
//
// # Search Draft
//
// Typing into the search box calls SetSearchTerm, which only updates the
// draft. The text filter changes when ApplySearch commits the draft, so the
// working set is not recomputed on every keystroke.
//
// # Clock
//
// The date-window filter measures back from the View's clock at the moment a
// filter is applied. Tests inject a fixed clock with WithClock.
//
// # Late Results
//
// Fetch marks its result as discarded when the context was cancelled before
// the read finished, and Finish ignores discarded results and any result
// after the first. A torn-down UI therefore never receives a snapshot.
//
// # Concurrency
//
// View is not safe for concurrent use. The Bubble Tea update loop and the
// list command each drive it from one goroutine; the fetch runs as a command
// whose result is delivered back to that goroutine as a message.
package state
