package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/devlaunchinjector/internal/hostenv"
	"github.com/vk/devlaunchinjector/internal/launcher"
	"github.com/vk/devlaunchinjector/internal/registry"
)

// main is the entrypoint for the standalone launcher binary. Every
// command-line argument passes through to the delegate; the launcher's own
// inputs arrive exclusively via DLI_* environment variables.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, hostenv.OS{}, registry.New(), os.Args[1:]); err != nil {
		var exitErr *launcher.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the launch logic for easier testing and error handling.
// The registry is injected so tests can pre-register entry points; the
// standalone binary starts with an empty one and resolves plugin names only.
func run(outW, errW io.Writer, host hostenv.HostEnvironment, reg *registry.Registry, args []string) error {
	req, err := hostenv.ReadRequest(host)
	if err != nil {
		return err
	}

	l := launcher.New(outW, errW, host, reg, req)
	return l.Run(context.Background(), args)
}
