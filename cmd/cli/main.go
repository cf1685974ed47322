package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/apikeeper/internal/client/cli"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.NewApp().Run(ctx, os.Args[1:]); err != nil {
		// cobra has already printed the error.
		stop()
		os.Exit(1)
	}

}
