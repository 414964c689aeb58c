package launcher

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/devlaunchinjector/internal/config"
	"github.com/vk/devlaunchinjector/internal/ctxlog"
	"github.com/vk/devlaunchinjector/internal/escape"
	"github.com/vk/devlaunchinjector/internal/hostenv"
)

// Run performs one launch: decide between normal and pass-through mode,
// inject the configured arguments and properties, and transfer control to
// the entry point named in the launch request. It returns only after the
// entry point returns; an *ExitError signals a fatal condition that never
// reached the delegate.
func (l *Launcher) Run(ctx context.Context, originalArgs []string) error {
	ctx = ctxlog.WithLogger(ctx, l.logger)
	l.logger.Debug("Launcher.Run started.", "env", l.req.Env, "entryPoint", l.req.Main)

	if l.req.Main == "" {
		return &ExitError{
			Code:    1,
			Message: fmt.Sprintf("error: missing %s variable, can't launch", hostenv.MainVar),
		}
	}

	args := originalArgs

	if l.req.Env == "" || l.req.Config == "" {
		l.warnPassThrough(fmt.Sprintf("missing %s or %s variables", hostenv.EnvVar, hostenv.ConfigVar))
	} else if inj, warn := l.loadInjection(ctx, escape.Decode(l.req.Config), l.req.Env); warn != "" {
		l.warnPassThrough(warn)
	} else {
		args = inj.MergeArgs(originalArgs)
		l.applyProperties(inj.Properties)
	}

	fn, err := l.registry.Resolve(l.req.Main)
	if err != nil {
		// Fatal: a wrong entry point leaves nothing to fall back to.
		return err
	}

	l.logger.Debug("Transferring control to entry point.", "entryPoint", l.req.Main, "argCount", len(args))
	fn(args)
	return nil
}

// loadInjection opens, reads, and closes the config file, returning either
// the parsed injection or the pass-through warning to emit instead. The file
// handle never outlives this call.
func (l *Launcher) loadInjection(ctx context.Context, path, env string) (*config.Injection, string) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Sprintf("missing or unreadable config file (%s)", path)
	}
	defer f.Close()

	if st, err := f.Stat(); err != nil || !st.Mode().IsRegular() {
		return nil, fmt.Sprintf("missing or unreadable config file (%s)", path)
	}

	inj, err := config.Parse(ctx, f, env)
	if err != nil {
		return nil, fmt.Sprintf("parsing failed: %s", err)
	}

	return inj, ""
}

// applyProperties writes every injected key/value to the host environment
// before control is transferred, so the delegate observes a fully merged
// environment from its first instruction.
func (l *Launcher) applyProperties(properties map[string]string) {
	for key, value := range properties {
		if err := l.host.Set(key, value); err != nil {
			l.logger.Warn("Failed to apply injected property.", "key", key, "error", err)
		}
	}
}

// warnPassThrough emits the pass-through diagnostic on the stdout channel,
// matching the format downstream tooling greps for.
func (l *Launcher) warnPassThrough(reason string) {
	fmt.Fprintf(l.outW, "warning: dev-launch-injector in pass-through mode, %s\n", reason)
}
