package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/doeshing/appgen/internal/domain"
	"github.com/doeshing/appgen/internal/infrastructure/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := cli.Options{Verbose: isVerbose(os.Args[1:])}

	root, cleanup, err := cli.NewRootCmd(ctx, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	err = root.ExecuteContext(ctx)
	cleanup()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// isVerbose is resolved before cobra parses flags because the logger is built first.
func isVerbose(args []string) bool {
	for _, arg := range args {
		if arg == "--" {
			break
		}
		if arg == "--verbose" || arg == "-v" {
			return true
		}
	}
	value := os.Getenv(domain.EnvDebug)
	return strings.EqualFold(value, "1") || strings.EqualFold(value, "true")
}
