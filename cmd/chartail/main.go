package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newCLI(ctx).rootCmd().Execute(); err != nil {
		errColor := color.New(color.FgRed, color.Bold)
		_, _ = errColor.Fprint(os.Stderr, "chartail: ")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
