package config

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/vk/devlaunchinjector/internal/ctxlog"
)

// state tracks which section the parser is currently inside.
type state int

const (
	stateNone state = iota
	stateArgs
	stateProperties
)

// Parse reads a config file and accumulates the extra arguments and
// properties scoped to env. Sections prefixed "common" apply to every
// environment; "common" is checked before env, so an environment name that
// is itself a prefix of "common" loses that match.
//
// Returns a *ParseError on structural violations and a plain error on read
// failures.
func Parse(ctx context.Context, r io.Reader, env string) (*Injection, error) {
	logger := ctxlog.FromContext(ctx)

	inj := &Injection{
		Properties: make(map[string]string),
	}

	scanner := bufio.NewScanner(r)
	st := stateNone

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		indented := line[0] == ' ' || line[0] == '\t'
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case !indented:
			var offset int

			// filter env
			if strings.HasPrefix(line, "common") {
				offset = len("common")
			} else if strings.HasPrefix(line, env) {
				offset = len(env)
			} else { // wrong env, skip
				logger.Debug("Skipping section for other environment.", "line", line)
				continue
			}

			switch line[offset:] {
			case "Args":
				st = stateArgs
			case "Properties":
				st = stateProperties
			default:
				return nil, &ParseError{Reason: "invalid attribute", Line: line}
			}
		case st == stateNone: // indented, no open section
			return nil, &ParseError{Reason: "value without preceding attribute", Line: line}
		case st == stateArgs:
			inj.Args = append(inj.Args, line)
		case st == stateProperties:
			key, value, _ := strings.Cut(line, "=")
			inj.Properties[strings.TrimSpace(key)] = strings.TrimSpace(value)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	logger.Debug("Config parsed.", "env", env, "args", len(inj.Args), "properties", len(inj.Properties))
	return inj, nil
}
