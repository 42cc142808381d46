package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, k := range []string{"LARDER_CONFIG", "LARDER_DB", "LARDER_SELECTION_CAPACITY", "LARDER_LOG_LEVEL", "LARDER_SHARE"} {
		t.Setenv(k, "")
	}
	return home
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestLoadConfig_Defaults(t *testing.T) {
	home := isolate(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".larder", "larder.db"), cfg.DBPath)
	assert.Equal(t, 3, cfg.SelectionCapacity)
	assert.Equal(t, "clipboard", cfg.ShareTarget)
	assert.Equal(t, slog.LevelWarn, cfg.SlogLevel())
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".larder", "config.yaml"), "selection_capacity: 5\nlog_level: debug\n")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.SelectionCapacity)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, "clipboard", cfg.ShareTarget)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "selection_capacity: 5\nshare_target: stdout\ndb_path: /tmp/file.db\n")
	t.Setenv("LARDER_CONFIG", path)
	t.Setenv("LARDER_SELECTION_CAPACITY", "7")
	t.Setenv("LARDER_DB", "/tmp/env.db")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.SelectionCapacity)
	assert.Equal(t, "/tmp/env.db", cfg.DBPath)
	assert.Equal(t, "stdout", cfg.ShareTarget)
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".larder", "config.yaml"), "selection_capacity: [oops")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_NonNumericCapacityEnv(t *testing.T) {
	isolate(t)
	t.Setenv("LARDER_SELECTION_CAPACITY", "three")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "LARDER_SELECTION_CAPACITY")
}

func TestValidate(t *testing.T) {
	base := DefaultConfig("/x")
	require.NoError(t, base.Validate())

	bad := base
	bad.SelectionCapacity = 0
	assert.ErrorContains(t, bad.Validate(), "selection_capacity")

	bad = base
	bad.LogLevel = "chatty"
	assert.ErrorContains(t, bad.Validate(), "log_level")

	bad = base
	bad.ShareTarget = "fax"
	assert.ErrorContains(t, bad.Validate(), "share_target")
}
