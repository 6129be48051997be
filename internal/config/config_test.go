package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, &Config{
		Output:         "system_info.xlsx",
		LogFile:        "system_info.log",
		LogLevel:       "info",
		SheetName:      "System Info",
		Lock:           true,
		CommandTimeout: 5 * time.Second,
		HeaderFill:     "FFFF00",
	}, cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pcspecs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
output: /srv/audit/fleet.xlsx
log_level: debug
lock: false
command_timeout: 10s
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/audit/fleet.xlsx", cfg.Output)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.Lock)
	assert.Equal(t, 10*time.Second, cfg.CommandTimeout)
	assert.Equal(t, "system_info.log", cfg.LogFile)
}

func TestLoadSearchesWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "pcspecs.yaml"), []byte("sheet_name: Fleet\n"), 0o644))
	chdir(t, dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Fleet", cfg.SheetName)
}

func TestLoadEnvironmentOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PCSPECS_OUTPUT", "audit.xlsx")
	t.Setenv("PCSPECS_LOCK", "false")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "audit.xlsx", cfg.Output)
	assert.False(t, cfg.Lock)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Setenv("PWD", dir)
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
