package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/xkilldash9x/layoutsmith/cmd"
	"github.com/xkilldash9x/layoutsmith/internal/observability"
)

// main sets up a signal-aware context and hands control to the cmd
// package, which owns all command-line parsing and configuration.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := cmd.Execute(ctx)
	observability.Sync()
	if err != nil {
		// Interrupting a long search is a clean exit, not a failure.
		if errors.Is(err, context.Canceled) {
			return
		}
		os.Exit(1)
	}
}
