// Package registry resolves the fully-qualified entry point name the host
// supplies into a callable Go function.
//
// The Registry stores mappings between entry point names (e.g. "demo.hello")
// and compiled Go functions registered by a wrapper program. Names that look
// like a plugin path ("lib.so" or "lib.so:Symbol") are instead resolved
// through Go's native plugin facility, so a standalone launcher binary can
// delegate into separately built code.
//
// Resolution failure is the one error the launcher never masks with
// pass-through mode: a wrong entry point leaves nothing to fall back to.
package registry
