// Package main is the entry point for the sfproc CLI.
//
// sfproc is the settlement files processor. It lists the settlement files
// of an S3 bucket, classifies them by key and copies every eligible file
// under a backup key with descriptive metadata, encrypting streamable
// formats with SSE-KMS.
//
// Commands: process, version, completion.
//
// For detailed usage information, run:
//
//	sfproc --help
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/imamik/sfproc/cmd/sfproc/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
