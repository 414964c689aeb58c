// Package hostenv abstracts the process-wide environment the launcher reads
// its inputs from and writes injected properties to. The orchestrator only
// sees the HostEnvironment interface, so tests swap the real process
// environment for an in-memory Map.
package hostenv
