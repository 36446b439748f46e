package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tahaos/pkg/settings"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load(viper.New(), "", "")
	require.NoError(t, err)

	assert.Equal(t, 1440, cfg.ScreenWidth)
	assert.Equal(t, 900, cfg.ScreenHeight)
	assert.Equal(t, settings.Defaults(), cfg.Settings)
	assert.False(t, cfg.SkipBoot)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: light\nlanguage: fr\nscreen:\n  width: 800\n  height: 600\n"), 0600))

	cfg, err := Load(viper.New(), "", path)
	require.NoError(t, err)

	assert.Equal(t, settings.ThemeLight, cfg.Settings.Theme)
	assert.Equal(t, settings.LanguageFrench, cfg.Settings.Language)
	assert.Equal(t, 800, cfg.ScreenWidth)
	assert.Equal(t, 600, cfg.ScreenHeight)
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("TAHAOS_THEME", "l")
	t.Setenv("TAHAOS_SCREEN_WIDTH", "1024")

	cfg, err := Load(viper.New(), "", "")
	require.NoError(t, err)

	assert.Equal(t, settings.ThemeLight, cfg.Settings.Theme)
	assert.Equal(t, 1024, cfg.ScreenWidth)
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("TAHAOS_LANGUAGE=french\n"), 0600))
	t.Cleanup(func() { _ = os.Unsetenv("TAHAOS_LANGUAGE") })

	cfg, err := Load(viper.New(), "", "")
	require.NoError(t, err)

	assert.Equal(t, settings.LanguageFrench, cfg.Settings.Language)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"theme", "TAHAOS_THEME", "neon"},
		{"language", "TAHAOS_LANGUAGE", "de"},
		{"wallpaper", "TAHAOS_WALLPAPER", "missing"},
		{"negative width", "TAHAOS_SCREEN_WIDTH", "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdir(t, t.TempDir())
			t.Setenv(tt.key, tt.val)

			_, err := Load(viper.New(), "", "")
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingExplicitFiles(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := Load(viper.New(), "does-not-exist.env", "")
	assert.Error(t, err)

	_, err = Load(viper.New(), "", "does-not-exist.yaml")
	assert.Error(t, err)
}
