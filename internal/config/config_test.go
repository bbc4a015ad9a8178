package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilepath/internal/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDemo_MissingFile(t *testing.T) {
	cfg, err := config.LoadDemo(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultDemo(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadDemo_Overrides(t *testing.T) {
	path := writeFile(t, `
seed: 7
fov_radius: 12
path_slots: 4096
log:
  level: debug
  file: ""
`)
	cfg, err := config.LoadDemo(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, 12, cfg.FOVRadius)
	assert.Equal(t, 4096, cfg.PathSlots)
	assert.Equal(t, 256, cfg.FloodSlots, "unset keys keep defaults")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
}

func TestLoad_ParseError(t *testing.T) {
	path := writeFile(t, "maps: [not a number\n")
	_, err := config.LoadBench(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestLoadBench(t *testing.T) {
	path := writeFile(t, "maps: 2\nworkers: 1\nmove: bishop\nworkspace_slots: 64\n")
	cfg, err := config.LoadBench(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Maps)
	assert.Equal(t, "bishop", cfg.Move)
	assert.Equal(t, 64, cfg.WorkspaceSlots)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	demo := []func(*config.Demo){
		func(d *config.Demo) { d.MaxWidth = 2 },
		func(d *config.Demo) { d.FOVRadius = -1 },
		func(d *config.Demo) { d.FOVRadius = d.MaxFOVRadius + 1 },
		func(d *config.Demo) { d.FloodSlots = 0 },
		func(d *config.Demo) { d.PathSlots = 0 },
	}
	for i, mutate := range demo {
		cfg := config.DefaultDemo()
		mutate(&cfg)
		assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig, "demo case %d", i)
	}

	bench := []func(*config.Bench){
		func(b *config.Bench) { b.Maps = 0 },
		func(b *config.Bench) { b.Height = 1 },
		func(b *config.Bench) { b.Searches = -1 },
		func(b *config.Bench) { b.Workers = 0 },
		func(b *config.Bench) { b.WorkspaceSlots = -5 },
		func(b *config.Bench) { b.Move = "knight" },
	}
	for i, mutate := range bench {
		cfg := config.DefaultBench()
		mutate(&cfg)
		assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig, "bench case %d", i)
	}
}
