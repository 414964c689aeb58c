package registry

import (
	"fmt"
	"log/slog"
	"strings"
)

// EntryPoint is the callable a launch delegates into: it receives the final
// argument list and returns nothing, matching a program's main convention.
// It may exit the process or panic; the launcher propagates either.
type EntryPoint func(args []string)

// ResolutionError reports an entry point name that does not resolve to a
// valid callable. It is fatal to the launch; there is no fallback.
type ResolutionError struct {
	Name   string
	Reason string
}

// Error implements the error interface for ResolutionError.
func (e *ResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve entry point %q: %s", e.Name, e.Reason)
}

// Registry holds the named entry points registered for a single launcher
// instance.
type Registry struct {
	entryPoints map[string]EntryPoint
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		entryPoints: make(map[string]EntryPoint),
	}
}

// Register registers an entry point under its fully-qualified name.
func (r *Registry) Register(name string, fn EntryPoint) {
	if _, exists := r.entryPoints[name]; exists {
		panic(fmt.Sprintf("entry point with name '%s' already registered", name))
	}
	if fn == nil {
		panic(fmt.Sprintf("entry point '%s' registered with nil function", name))
	}
	slog.Debug("Registering entry point.", "name", name)
	r.entryPoints[name] = fn
}

// Resolve returns the entry point for name. Registered names are checked
// first; a name carrying a ".so" plugin path falls through to the plugin
// loader. Returns a *ResolutionError when nothing matches.
func (r *Registry) Resolve(name string) (EntryPoint, error) {
	if fn, ok := r.entryPoints[name]; ok {
		return fn, nil
	}

	if isPluginName(name) {
		return resolvePlugin(name)
	}

	return nil, &ResolutionError{Name: name, Reason: "no such registered entry point"}
}

// isPluginName reports whether name addresses a built plugin rather than a
// registered function.
func isPluginName(name string) bool {
	path, _, _ := strings.Cut(name, ":")
	return strings.HasSuffix(path, ".so")
}
