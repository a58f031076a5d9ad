// Package app is the composition root for liftoff.
//
// Both entry points share bootstrap:
//
//	bootstrap()
//	   ├── config.Load()        ~/.config/liftoff/config.toml, validated
//	   ├── logging.New()        logrus to the configured file (or stderr)
//	   └── spacex.NewClient()   endpoint from config or --endpoint
//
// Run then loads display prefs and hands the client to ui.Run, which performs
// the single dataset read from inside the Bubble Tea program. List performs
// the same read synchronously through state.Fetch, drives a state.View with
// the requested criteria and page, and prints the page with internal/format.
//
// Neither path retries. A failed read surfaces as *state.FetchFailure; a read
// that completes after ctx is cancelled is discarded.
package app
