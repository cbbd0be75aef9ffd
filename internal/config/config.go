// Package config loads operator-facing mining settings from a .env file in
// the project root, overridable by environment variables, following the
// same discovery pattern as the teacher repo's device config loader.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// MiningConfig holds the knobs a mining loop needs that the PoW core itself
// does not dictate: the default difficulty to mine at, whether to use the
// heap-allocated 1 GiB map (solver mode) or run map-less, and how many
// worker loops to run concurrently. Only Difficulty changes what the
// commands in this module do: UseMap and Workers are loaded and logged, but
// every solve allocates the map and each command runs a single mining loop.
type MiningConfig struct {
	Difficulty uint8
	UseMap     bool
	Workers    int
}

var (
	miningConfig *MiningConfig
	configLoaded bool
)

// Load reads MINE_DIFFICULTY, MINE_USE_MAP and MINE_WORKERS from a .env
// file found by walking up from the working directory to the nearest
// go.mod, then applies environment-variable overrides. Missing or
// unparsable values fall back to defaults (difficulty 18, map enabled, one
// worker) rather than erroring, mirroring the teacher's tolerant loader.
func Load() (*MiningConfig, error) {
	if miningConfig != nil && configLoaded {
		return miningConfig, nil
	}

	cfg := &MiningConfig{Difficulty: 18, UseMap: true, Workers: 1}

	projectRoot := findProjectRoot()
	envPath := filepath.Join(projectRoot, ".env")
	if data, err := os.ReadFile(envPath); err == nil {
		parseEnvFile(string(data), cfg)
	}

	if v := os.Getenv("MINE_DIFFICULTY"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 8); err == nil {
			cfg.Difficulty = uint8(n)
		}
	}
	if v := os.Getenv("MINE_USE_MAP"); v != "" {
		cfg.UseMap = parseBool(v, cfg.UseMap)
	}
	if v := os.Getenv("MINE_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Workers = n
		}
	}

	miningConfig = cfg
	configLoaded = true
	return cfg, nil
}

func parseEnvFile(content string, cfg *MiningConfig) {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch key {
		case "MINE_DIFFICULTY":
			if n, err := strconv.ParseUint(value, 10, 8); err == nil {
				cfg.Difficulty = uint8(n)
			}
		case "MINE_USE_MAP":
			cfg.UseMap = parseBool(value, cfg.UseMap)
		case "MINE_WORKERS":
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				cfg.Workers = n
			}
		}
	}
}

func parseBool(s string, fallback bool) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return fallback
	}
	return b
}

func findProjectRoot() string {
	cwd, _ := os.Getwd()
	// First check CWD for .env file
	if _, err := os.Stat(filepath.Join(cwd, ".env")); err == nil {
		return cwd
	}
	// Then walk up looking for go.mod
	for {
		if _, err := os.Stat(filepath.Join(cwd, "go.mod")); err == nil {
			return cwd
		}
		parent := filepath.Dir(cwd)
		if parent == cwd {
			return cwd
		}
		cwd = parent
	}
}

// Reset clears the process-wide cached config. Intended for tests.
func Reset() {
	miningConfig = nil
	configLoaded = false
}
