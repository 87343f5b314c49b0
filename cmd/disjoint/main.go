// Command disjoint is the CLI front end of the disjoint module.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/disjoint/internal/cli"
	"github.com/pingcap/errors"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		select {
		case <-ctx.Done():
		case sig := <-sigCh:
			fmt.Fprintf(os.Stderr, "received signal %s, stopping\n", sig)
			cancel()
		}
	}()

	if err := cli.Execute(ctx); err != nil {
		if errors.Cause(err) == context.Canceled {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
