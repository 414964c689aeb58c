package config

import "fmt"

// ParseError reports a structural violation in the config file: a section
// header whose attribute is neither Args nor Properties, or a value line
// with no open section. The orchestrator recovers from it by falling back to
// pass-through mode; it is never fatal.
type ParseError struct {
	Reason string
	Line   string
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Line)
}
