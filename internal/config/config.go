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

// Config captures the user-tunable splash settings.
type Config struct {
	Mode        string   // default parsing mode when no -m flag is given
	PollSeconds int      // tail poll interval
	PluginPaths []string // extra plugin search directories
}

const (
	defaultConfigPath  = "~/.config/splash/config.toml"
	defaultPollSeconds = 2
)

// Load locates and parses the splash config, falling back to defaults when
// the file is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{PollSeconds: defaultPollSeconds}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Mode        string   `toml:"mode"`
		PollSeconds int      `toml:"poll_seconds"`
		PluginPaths []string `toml:"plugin_paths"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.Mode = strings.TrimSpace(raw.Mode)
	if raw.PollSeconds > 0 {
		cfg.PollSeconds = raw.PollSeconds
	}
	for _, p := range raw.PluginPaths {
		if expanded := mustExpand(p); expanded != "" {
			cfg.PluginPaths = append(cfg.PluginPaths, expanded)
		}
	}

	return cfg, nil
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
		return ""
	}
	return expanded
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
