// Package main provides the linkcheck CLI entrypoint.
//
// linkcheck fetches one web page, counts its links and reports the HTTP
// status of every same-site link.
//
// Usage:
//
//	linkcheck [flags] <url>
//	linkcheck --file <path>
//
// See --help for all available options.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
