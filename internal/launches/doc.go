// Package launches defines the normalized launch record and the pure filter
// engine that derives a working set from the original dataset.
//
// # Snapshot
//
// A Snapshot is captured once, when the dataset loads, and is never mutated
// afterwards. NewSnapshot copies its input and every accessor returns values
// or fresh copies, so callers cannot reach the backing buffer.
//
// # Filtering
//
// Filter applies up to three independent axes described by Criteria:
//
//   - Status: exact match on the success flag ("Success" / "Failure")
//   - Window: launch date within the last week, month or year, measured
//     in whole calendar days back from the now value passed in; both the
//     first and the current day are included
//   - Text: case-insensitive substring match on mission name
//
// An empty axis passes everything. Axes are always applied to the snapshot,
// never to a previous result, in the order status, window, text. Clearing
// every axis therefore yields the snapshot contents in their original order.
//
// Launch dates that cannot be parsed never match a date window and are
// displayed as InvalidDate.
package launches
