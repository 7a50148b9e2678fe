package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tempDir, "xdg"))
	t.Setenv("HOME", filepath.Join(tempDir, "home"))
	return tempDir
}

func TestLoad_ReturnsDefaults_When_NoConfigFile(t *testing.T) {
	chdirTemp(t)

	cfg := Load()

	assert.Equal(t, DefaultFormat, cfg.Format)
	assert.Equal(t, DefaultTheme, cfg.Theme)
	assert.False(t, cfg.NoColor)
	assert.Empty(t, cfg.Run)
}

func TestLoad_MergesLocalFile_When_Present(t *testing.T) {
	tempDir := chdirTemp(t)

	yaml := "theme: mono\nno_color: true\nrun: math\n"
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, ".bootcheck.yaml"),
		[]byte(yaml), 0o600))

	cfg := Load()

	assert.Equal(t, "mono", cfg.Theme)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, "math", cfg.Run)
	assert.Equal(t, DefaultFormat, cfg.Format, "unset fields keep defaults")
}

func TestLoad_UsesUserConfigDir_When_LocalMissing(t *testing.T) {
	tempDir := chdirTemp(t)

	xdgDir := filepath.Join(tempDir, "xdg", "bootcheck")
	require.NoError(t, os.MkdirAll(xdgDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(xdgDir, ".bootcheck.yaml"),
		[]byte("format: json\n"), 0o600))

	cfg := Load()

	assert.Equal(t, "json", cfg.Format)
}

func TestLoad_KeepsDefaults_When_FileMalformed(t *testing.T) {
	tempDir := chdirTemp(t)

	require.NoError(t, os.WriteFile(filepath.Join(tempDir, ".bootcheck.yaml"),
		[]byte("theme: [unclosed\n"), 0o600))

	cfg := Load()

	assert.Equal(t, DefaultTheme, cfg.Theme)
	assert.Equal(t, DefaultFormat, cfg.Format)
}
