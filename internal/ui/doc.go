// Package ui is the interactive launch browser, built on Bubble Tea.
//
// # Architecture
//
// Model is the root tea.Model. It owns a *state.View and never filters or
// paginates on its own: every key that changes what is shown calls a View
// mutator and then re-reads View.Page(). The single dataset read runs as a
// tea.Cmd from Init and comes back as a launchesMsg.
//
//	Init ──► fetchLaunchesCmd ──► launchesMsg ──► View.Finish
//	key  ──► View.SetStatus / SetWindow / ApplySearch / NextPage ...
//	View ──► View.Page() ──► renderContent + renderPageBar
//
// # Files
//
//   - app.go: Model, Options, Update loop, key dispatch and Run
//   - keys.go: key bindings (bubbles/key), reused by the help overlay
//   - header.go: status line and command bar, including the search box
//   - cards.go: card grid, list layout with a detail box, badges
//   - pagebar.go: Prev / numbered window / Next, page dots, "Page x of y"
//   - logs.go: log pane over liftoff's own log file (internal/logtail)
//   - theme.go, style_helpers.go: palettes and background-safe rendering
//
// # Keys
//
// Filters: / search (enter applies, esc cancels), s status, w date window,
// x clear. Pages: h/l or p/n, g/G first/last, digits jump (1 then 2 is
// page 12; any other key ends the number). Cards: j/k select, v grid/list.
// General: L log, T theme, ? help, q quit.
//
// Any page change moves the selection back to the first card. Theme and
// layout changes are persisted through internal/prefs.
package ui
