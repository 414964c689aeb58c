package hostenv

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Host variable names the launcher consumes. They are cleared after reading
// so the delegate entry point starts from a clean environment.
const (
	EnvVar    = "DLI_ENV"
	MainVar   = "DLI_MAIN"
	ConfigVar = "DLI_CONFIG"

	logLevelVar  = "DLI_LOG_LEVEL"
	logFormatVar = "DLI_LOG_FORMAT"
)

// Request carries the host-provided launch inputs, bound from the DLI_*
// variables. Env, Main, and Config may each be empty, which the orchestrator
// treats as absent.
type Request struct {
	Env    string `env:"DLI_ENV"`
	Main   string `env:"DLI_MAIN"`
	Config string `env:"DLI_CONFIG"`

	LogLevel  string `env:"DLI_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"DLI_LOG_FORMAT" envDefault:"text"`
}

// ReadRequest binds a Request from the host environment snapshot, then
// clears every consumed variable. The clear happens even for variables that
// were never set, which is a no-op.
func ReadRequest(h HostEnvironment) (*Request, error) {
	var req Request

	err := env.ParseWithOptions(&req, env.Options{
		Environment: environMap(h.Environ()),
	})
	if err != nil {
		return nil, fmt.Errorf("binding launch request: %w", err)
	}

	for _, key := range []string{EnvVar, MainVar, ConfigVar, logLevelVar, logFormatVar} {
		if err := h.Clear(key); err != nil {
			return nil, fmt.Errorf("clearing %s: %w", key, err)
		}
	}

	return &req, nil
}
