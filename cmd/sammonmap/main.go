package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/sammonmap/internal/cli"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.New(version).Run(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
