package launcher

import (
	"io"
	"log/slog"

	"github.com/vk/devlaunchinjector/internal/hostenv"
	"github.com/vk/devlaunchinjector/internal/registry"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Launcher encapsulates one launch's dependencies: the host-provided launch
// request, where diagnostics go, the host environment to read and write,
// and the entry point registry.
type Launcher struct {
	req      *hostenv.Request
	outW     io.Writer
	logger   *slog.Logger
	host     hostenv.HostEnvironment
	registry *registry.Registry
}

// New is the constructor for the launcher. Pass-through warnings are written
// to outW (the delegate's own stdout channel); the structured logger writes
// to errW so delegate output stays clean.
func New(outW, errW io.Writer, host hostenv.HostEnvironment, reg *registry.Registry, req *hostenv.Request) *Launcher {
	logger := newLogger(req.LogLevel, req.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	return &Launcher{
		req:      req,
		outW:     outW,
		logger:   logger,
		host:     host,
		registry: reg,
	}
}

// Registry returns the launcher's registry, so an embedding program can
// register its entry points after construction. This is also how the tests
// wire theirs in.
func (l *Launcher) Registry() *registry.Registry {
	return l.registry
}
