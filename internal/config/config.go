package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// File holds the defaults read from the chartail config file. Every field is
// optional; flags and environment variables override them.
type File struct {
	Scales  string `toml:"scales"`
	Refresh string `toml:"refresh"`
	Sort    string `toml:"sort"`
	Theme   string `toml:"theme"`
	XTitle  string `toml:"x_title"`
	Epoch   string `toml:"epoch"`
	Paired  bool   `toml:"paired"`
	LogFile string `toml:"log_file"`
}

const (
	defaultConfigPath = "~/.config/chartail/config.toml"
	defaultSort       = "values"
	defaultRefresh    = "0"
)

// DefaultPath returns the config file consulted when no path is given.
func DefaultPath() string {
	return defaultConfigPath
}

// Defaults returns the built-in file values.
func Defaults() File {
	return File{Sort: defaultSort, Refresh: defaultRefresh}
}

// Load parses the config file, falling back to defaults when it is missing.
func Load(path string) (File, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return File{}, err
	}

	cfg := Defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return File{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return File{}, fmt.Errorf("read config: %w", err)
	}

	var raw File
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return File{}, fmt.Errorf("parse config: %w", err)
	}

	raw.Sort = strings.TrimSpace(raw.Sort)
	if raw.Sort == "" {
		raw.Sort = defaultSort
	}
	raw.Refresh = strings.TrimSpace(raw.Refresh)
	if raw.Refresh == "" {
		raw.Refresh = defaultRefresh
	}
	raw.Scales = strings.TrimSpace(raw.Scales)
	raw.Theme = strings.TrimSpace(raw.Theme)
	if raw.LogFile = strings.TrimSpace(raw.LogFile); raw.LogFile != "" {
		raw.LogFile = mustExpand(raw.LogFile)
	}
	return raw, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading ~ and makes path absolute.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
