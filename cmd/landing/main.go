// Package main starts the Rotaract DYPCOE landing page.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	landingcmd "github.com/rotaract-dypcoe/landing/internal/cmd/landing"
	"github.com/rotaract-dypcoe/landing/internal/platform/config"
)

func main() {
	root, err := landingcmd.NewRootCommand(nil)
	if err != nil {
		config.Exitf("parse config: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := root.ExecuteContext(ctx); err != nil {
		stop()
		config.Exitf("%v", err)
	}
}
