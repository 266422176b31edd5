package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/esimov/seamcarve/utils"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Ctrl-C cancels the context; the carving loop stops between two seams.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := newApp()
	defer a.close()

	err := a.rootCommand().ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, utils.DecorateText(fmt.Sprintf("\nError: %v", err), utils.ErrorMessage))
	}
	return exitCode(err)
}
