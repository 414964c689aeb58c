// Package launcher contains the core orchestration logic. It defines the
// Launcher struct and the single-launch lifecycle: read the host inputs,
// parse the environment-scoped config file, merge the injected arguments
// with the original ones, apply the injected properties, and transfer
// control to the resolved entry point. Every failure up to and including
// config parsing degrades to pass-through mode; only a missing or
// unresolvable entry point is fatal.
package launcher
