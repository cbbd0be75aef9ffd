package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	Reset()
	t.Setenv("MINE_DIFFICULTY", "")
	t.Setenv("MINE_USE_MAP", "")
	t.Setenv("MINE_WORKERS", "")
	dir := t.TempDir()
	chdir(t, dir)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, uint8(18), cfg.Difficulty)
	require.True(t, cfg.UseMap)
	require.Equal(t, 1, cfg.Workers)
}

func TestLoadFromEnvFile(t *testing.T) {
	Reset()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module x\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("MINE_DIFFICULTY=22\nMINE_USE_MAP=false\n"), 0644))
	chdir(t, dir)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, uint8(22), cfg.Difficulty)
	require.False(t, cfg.UseMap)
}

func TestEnvVarOverridesFile(t *testing.T) {
	Reset()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("MINE_DIFFICULTY=22\n"), 0644))
	chdir(t, dir)
	t.Setenv("MINE_DIFFICULTY", "30")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, uint8(30), cfg.Difficulty)
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
