package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"jobboard/internal/console/cli"
	"jobboard/internal/console/session"
)

func main() {
	cfg := cli.LoadConfig()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	kv, err := session.NewFileKV(cfg.SessionDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open session store: %v\n", err)
		os.Exit(1)
	}
	store, err := session.NewStore(kv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read session store: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cli.NewApp(cfg, store, os.Stdin, os.Stdout)
	if err := app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
