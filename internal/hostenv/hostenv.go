package hostenv

import (
	"os"
	"strings"
)

// HostEnvironment is the launcher's view of process-wide key/value settings.
type HostEnvironment interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool)

	// Set writes key=value, overwriting any existing value.
	Set(key, value string) error

	// Clear removes key so the delegate entry point never observes it.
	Clear(key string) error

	// Environ returns a snapshot of all settings as "key=value" pairs.
	Environ() []string
}

// OS is the HostEnvironment backed by the real process environment.
type OS struct{}

func (OS) Get(key string) (string, bool) { return os.LookupEnv(key) }
func (OS) Set(key, value string) error   { return os.Setenv(key, value) }
func (OS) Clear(key string) error        { return os.Unsetenv(key) }
func (OS) Environ() []string             { return os.Environ() }

// Map is an in-memory HostEnvironment for tests.
type Map map[string]string

func (m Map) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m Map) Set(key, value string) error {
	m[key] = value
	return nil
}

func (m Map) Clear(key string) error {
	delete(m, key)
	return nil
}

func (m Map) Environ() []string {
	environ := make([]string, 0, len(m))
	for k, v := range m {
		environ = append(environ, k+"="+v)
	}
	return environ
}

// environMap converts "key=value" pairs into a lookup map, mirroring how the
// env binder consumes a snapshot.
func environMap(environ []string) map[string]string {
	out := make(map[string]string, len(environ))
	for _, kv := range environ {
		if key, value, ok := strings.Cut(kv, "="); ok {
			out[key] = value
		}
	}
	return out
}
