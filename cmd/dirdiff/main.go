package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/sdejongh/dirdiff/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cli.Version, cli.Commit, cli.BuildDate = version, commit, date

	// Ctrl+C cancels both scans; nothing is rendered for a cancelled run
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return cli.NewRootCommand().ExecuteContext(ctx)
}
