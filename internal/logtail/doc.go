// Package logtail reads the end of liftoff's own log file for the in-app log
// pane.
//
// Read keeps a ring of the last N lines while scanning the file once, so
// memory stays O(N) regardless of file size. Level pulls the logrus level out
// of a text or JSON formatted line so the pane can color entries.
//
//	lines, err := logtail.Read(cfg.LogFile, 200)
//	for _, line := range lines {
//		switch logtail.Level(line) {
//		case "error", "fatal", "panic":
//			// render in the danger color
//		}
//	}
//
// A missing log file is not an error: the pane simply shows nothing.
package logtail
