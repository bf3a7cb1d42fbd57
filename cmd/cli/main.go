package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	// A run cannot be interrupted midway; the signal only cancels work that has not started yet
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
