package main

import (
	"context"
	"log/slog"
	"os"
)

const version = "0.1.0"

func main() {
	ctx := context.Background()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
