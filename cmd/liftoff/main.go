// liftoff browses SpaceX launches in the terminal.
//
// Usage:
//
//	liftoff [--config path] [--prefs path] [--endpoint url]
//	liftoff list [--search text] [--status success|failure] [--window week|month|year] [--page n] [--format ascii|markdown]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "liftoff: %v\n", err)
		return 1
	}
	return 0
}
