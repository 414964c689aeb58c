package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/devlaunchinjector/internal/hostenv"
	"github.com/vk/devlaunchinjector/internal/launcher"
	"github.com/vk/devlaunchinjector/internal/registry"
)

func TestRun_FullLaunch(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	configPath := filepath.Join(t.TempDir(), "launch.cfg")
	contents := "clientArgs\n  --injected\nclientProperties\n  demo.flag=on\n"
	require.NoError(t, os.WriteFile(configPath, []byte(contents), 0600))

	host := hostenv.Map{
		"DLI_ENV":    "client",
		"DLI_MAIN":   "demo.hello",
		"DLI_CONFIG": configPath,
	}

	reg := registry.New()
	var got []string
	reg.Register("demo.hello", func(args []string) { got = args })

	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, &bytes.Buffer{}, host, reg, []string{"--orig"})

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, []string{"--injected", "--orig"}, got)
	assert.Empty(t, out.String())

	v, ok := host.Get("demo.flag")
	require.True(t, ok)
	assert.Equal(t, "on", v)

	_, ok = host.Get("DLI_MAIN")
	assert.False(t, ok, "host inputs must be cleared before the delegate runs")
}

func TestRun_MissingMainReturnsExitError(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, hostenv.Map{}, registry.New(), nil)

	var exitErr *launcher.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.Code)
}

func TestRun_PassThroughWarningOnStdout(t *testing.T) {
	t.Parallel()

	host := hostenv.Map{"DLI_MAIN": "demo.hello"}
	reg := registry.New()
	reg.Register("demo.hello", func([]string) {})
	out := &bytes.Buffer{}

	err := run(out, &bytes.Buffer{}, host, reg, nil)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "warning: dev-launch-injector in pass-through mode")
}
