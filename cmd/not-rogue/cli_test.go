package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/not-rogue/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSimRunsHeadless(t *testing.T) {
	out, err := execute(t, "sim", "--ticks", "600", "--input-seed", "7", "--spawn-every", "10", "--no-audio")
	require.NoError(t, err)

	assert.Contains(t, out, "ticks: 600\n")
	assert.Regexp(t, `state: (Playing|GameOver)\n`, out)
	assert.Contains(t, out, "enemies: ")
	assert.Contains(t, out, "/80\n")
	assert.NotContains(t, out, "spawns: 0\n")
	assert.NotContains(t, out, "runs: 0\n")
	assert.Contains(t, out, "damage: ")
}

func TestSimIsDeterministic(t *testing.T) {
	first, err := execute(t, "sim", "--ticks", "400", "--input-seed", "3", "--spawn-every", "5", "--dump")
	require.NoError(t, err)
	second, err := execute(t, "sim", "--ticks", "400", "--input-seed", "3", "--spawn-every", "5", "--dump")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSimRejectsBadConfig(t *testing.T) {
	_, err := execute(t, "sim", "--spawn-every=-4")
	assert.ErrorIs(t, err, config.ErrInvalidSpawnEvery)

	_, err = execute(t, "sim", "--tick", "fast")
	assert.ErrorIs(t, err, config.ErrInvalidTick)

	_, err = execute(t, "sim", "--ticks=-1")
	assert.Error(t, err)
}

func TestConfigFileAndFlagPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.toml")
	require.NoError(t, os.WriteFile(path, []byte("spawn_every = 7\nobstacles = 4\nseed = 11\n"), 0o644))
	t.Setenv(config.EnvSeed, "12")

	opts := &runOptions{}
	cmd := &cobra.Command{Use: "probe"}
	cmd.Flags().StringVar(&opts.configPath, "config", "", "")
	cmd.Flags().IntVar(&opts.obstacles, "obstacles", 0, "")
	require.NoError(t, cmd.Flags().Parse([]string{"--config", path, "--obstacles", "9"}))

	cfg, err := resolveConfig(cmd, opts)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.SpawnEvery, "file value kept")
	assert.Equal(t, uint64(12), cfg.Seed, "environment overrides file")
	assert.Equal(t, 9, cfg.Obstacles, "flag overrides file")
}

func TestSchemaCommand(t *testing.T) {
	out, err := execute(t, "schema")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Contains(t, doc, "properties")

	path := filepath.Join(t.TempDir(), "nested", "schema.json")
	_, err = execute(t, "schema", "--out", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "spawn_every")
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}
