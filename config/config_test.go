package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"capture/game"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	require.Equal(t, 2, c.Depth)
	require.Equal(t, 100.0, c.Threshold)
	require.Equal(t, int64(100_000_000), c.Nodes())
	require.False(t, c.Human, "Computer should play itself by default")
	require.False(t, c.NoAdjust)
	require.NoError(t, c.Validate())
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *Config){
		"zero depth":         func(c *Config) { c.Depth = 0 },
		"negative depth":     func(c *Config) { c.Depth = -3 },
		"negative threshold": func(c *Config) { c.Threshold = -1 },
		"unknown layout":     func(c *Config) { c.Layout = "hexagonal" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := Default()
			mutate(&c)

			err := c.Validate()

			var invalid *InvalidConfig
			require.True(t, errors.As(err, &invalid), "Should return an InvalidConfig")
		})
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("file values override defaults", func(t *testing.T) {
		path := filepath.Join(dir, "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"depth": 3, "layout": "classic", "threshold": 0.5}`), 0644))
		c := Default()

		require.NoError(t, ReadFile(path, &c))

		require.Equal(t, 3, c.Depth)
		require.Equal(t, game.ClassicLayout, c.Layout)
		require.Equal(t, int64(500_000), c.Nodes())
		require.False(t, c.Human, "Missing fields should keep their defaults")
	})

	t.Run("broken JSON", func(t *testing.T) {
		path := filepath.Join(dir, "broken.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"depth": `), 0644))
		c := Default()

		var invalid *InvalidConfig
		require.ErrorAs(t, ReadFile(path, &c), &invalid)
	})

	t.Run("missing file", func(t *testing.T) {
		c := Default()
		require.Error(t, ReadFile(filepath.Join(dir, "absent.json"), &c))
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", dir)

	t.Run("defaults without a config file", func(t *testing.T) {
		xdg.Reload()
		c, err := Load()
		require.NoError(t, err)
		require.Equal(t, Default(), *c)
	})

	t.Run("config file found in the XDG config home", func(t *testing.T) {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "capture"), 0755))
		path := filepath.Join(dir, "capture", "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"human": true, "no_adjust": true}`), 0644))
		xdg.Reload()

		c, err := Load()

		require.NoError(t, err)
		require.True(t, c.Human)
		require.True(t, c.NoAdjust)
		require.Equal(t, 2, c.Depth)
	})
}
