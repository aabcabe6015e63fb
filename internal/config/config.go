package config

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings shelf and shelf-web need.
type Config struct {
	APIURL   string
	Listen   string
	LogFile  string
	LogLevel string
	Timeout  time.Duration
}

const (
	defaultConfigPath = "~/.config/shelf/config.toml"
	defaultAPIURL     = "https://bookshelfhub.pythonanywhere.com"
	defaultListen     = "127.0.0.1:8080"
	defaultLogFile    = "~/.local/state/shelf/shelf.log"
	defaultLogLevel   = "info"
	defaultTimeout    = 10 * time.Second
)

// Environment variables that override the file.
const (
	EnvAPIURL   = "SHELF_API_URL"
	EnvListen   = "SHELF_LISTEN"
	EnvLogLevel = "SHELF_LOG_LEVEL"
)

// Load locates and parses the shelf config, falling back to defaults when
// the file is missing. Environment overrides are applied last.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyEnv(&cfg)
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
		APIURL         string `toml:"api_url"`
		Listen         string `toml:"listen"`
		LogFile        string `toml:"log_file"`
		LogLevel       string `toml:"log_level"`
		TimeoutSeconds int    `toml:"timeout_seconds"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.APIURL = cmp.Or(strings.TrimSpace(raw.APIURL), defaultAPIURL)
	cfg.Listen = cmp.Or(strings.TrimSpace(raw.Listen), defaultListen)
	cfg.LogLevel = cmp.Or(strings.TrimSpace(raw.LogLevel), defaultLogLevel)
	cfg.LogFile = mustExpand(cmp.Or(strings.TrimSpace(raw.LogFile), defaultLogFile))
	if raw.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(raw.TimeoutSeconds) * time.Second
	}

	applyEnv(&cfg)
	return cfg, nil
}

func defaults() Config {
	return Config{
		APIURL:   defaultAPIURL,
		Listen:   defaultListen,
		LogFile:  mustExpand(defaultLogFile),
		LogLevel: defaultLogLevel,
		Timeout:  defaultTimeout,
	}
}

func applyEnv(cfg *Config) {
	cfg.APIURL = cmp.Or(strings.TrimSpace(os.Getenv(EnvAPIURL)), cfg.APIURL)
	cfg.Listen = cmp.Or(strings.TrimSpace(os.Getenv(EnvListen)), cfg.Listen)
	cfg.LogLevel = cmp.Or(strings.TrimSpace(os.Getenv(EnvLogLevel)), cfg.LogLevel)
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
