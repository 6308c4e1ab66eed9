package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"
	"syscall"

	"github.com/datatug/vfstug/pkg/cli"
	"github.com/spf13/cobra"
)

var osExit = os.Exit
var pprofStopCPUProfile = pprof.StopCPUProfile

var newRootCmd = cli.NewRootCmd

func main() {
	run(newRootCmd())
}

type command interface {
	ExecuteContext(ctx context.Context) error
}

var _ command = (*cobra.Command)(nil)

var run = func(cmd command) {
	defer func() {
		if r := recover(); r != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Recovered from panic: %v\n", r)
			pprofStopCPUProfile()
			osExit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		// cobra has already printed the error
		osExit(1)
	}
}
