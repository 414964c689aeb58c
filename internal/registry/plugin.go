package registry

import (
	"plugin"
	"strings"
)

// defaultPluginSymbol is looked up when the name carries no explicit symbol.
const defaultPluginSymbol = "Main"

// resolvePlugin opens the plugin at "path.so" or "path.so:Symbol" and looks
// up an exported func(args []string). Any failure is a *ResolutionError;
// plugin loading has no pass-through fallback.
func resolvePlugin(name string) (EntryPoint, error) {
	path, symbol, ok := strings.Cut(name, ":")
	if !ok || symbol == "" {
		symbol = defaultPluginSymbol
	}

	p, err := plugin.Open(path)
	if err != nil {
		return nil, &ResolutionError{Name: name, Reason: err.Error()}
	}

	sym, err := p.Lookup(symbol)
	if err != nil {
		return nil, &ResolutionError{Name: name, Reason: err.Error()}
	}

	switch fn := sym.(type) {
	case func(args []string):
		return fn, nil
	case *func(args []string):
		return *fn, nil
	default:
		return nil, &ResolutionError{Name: name, Reason: "symbol is not a func(args []string)"}
	}
}
