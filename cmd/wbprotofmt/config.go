package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const configFileName = "wbprotofmt.toml"

// fileConfig mirrors wbprotofmt.toml. Pointer fields distinguish
// "unset" from zero values so flags can win over the file.
type fileConfig struct {
	Format struct {
		Indent      *int    `toml:"indent"`
		JSFormatter *string `toml:"js_formatter"`
	} `toml:"format"`
	Cache struct {
		Enabled *bool `toml:"enabled"`
	} `toml:"cache"`
}

// findConfig walks parent directories starting from the directory of
// the first input path. Returns "" when no config file exists.
func findConfig(firstInput string) (string, error) {
	start := firstInput
	if start == "" {
		start = "."
	}
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", start, err)
	}
	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}
	dir := abs
	for {
		candidate := filepath.Join(dir, configFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("failed to stat %s: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if cfg.Format.Indent != nil && *cfg.Format.Indent <= 0 {
		return cfg, fmt.Errorf("%s: format.indent must be positive", path)
	}
	return cfg, nil
}
