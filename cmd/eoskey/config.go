package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ModChain/eosecc"
	"gopkg.in/yaml.v3"
)

// Config holds the CLI settings after defaults, file and environment have
// been applied, in that order.
type Config struct {
	PublicPrefix string
	KeyFormat    eosecc.KeyFormat
	LogLevel     string
}

type fileConfig struct {
	PublicPrefix string `yaml:"public_prefix"`
	KeyFormat    string `yaml:"key_format"`
	LogLevel     string `yaml:"log_level"`
}

// DefaultConfig returns the settings used when no file or environment
// override applies.
func DefaultConfig() Config {
	return Config{
		PublicPrefix: eosecc.DefaultPublicKeyPrefix,
		KeyFormat:    eosecc.FormatLegacy,
		LogLevel:     "info",
	}
}

// LoadFromPath reads configPath, or the first readable default location when
// configPath is empty.  A missing default file is not an error; a missing or
// malformed explicit file is.
func LoadFromPath(configPath string) (Config, error) {
	cfg := DefaultConfig()

	candidates := make([]string, 0, 2)
	if configPath != "" {
		candidates = append(candidates, configPath)
	} else {
		candidates = append(candidates, "eoskey.yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			candidates = append(candidates, filepath.Join(dir, "eoskey", "config.yaml"))
		}
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			if configPath != "" {
				return cfg, fmt.Errorf("read config: %w", err)
			}
			continue
		}

		var parsed fileConfig
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
		if err := Merge(&cfg, parsed); err != nil {
			return cfg, fmt.Errorf("config %s: %w", path, err)
		}
		break
	}

	if err := ApplyEnvOverrides(&cfg); err != nil {
		return cfg, fmt.Errorf("environment: %w", err)
	}
	return cfg, nil
}

// Merge copies the non-empty fields of src over dst.
func Merge(dst *Config, src fileConfig) error {
	if src.PublicPrefix != "" {
		dst.PublicPrefix = src.PublicPrefix
	}
	if src.KeyFormat != "" {
		format, err := parseKeyFormat(src.KeyFormat)
		if err != nil {
			return err
		}
		dst.KeyFormat = format
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
	return nil
}

// ApplyEnvOverrides applies the EOSKEY_* environment variables to cfg.
func ApplyEnvOverrides(cfg *Config) error {
	if prefix := strings.TrimSpace(os.Getenv("EOSKEY_PREFIX")); prefix != "" {
		cfg.PublicPrefix = prefix
	}
	if level := strings.TrimSpace(os.Getenv("EOSKEY_LOG_LEVEL")); level != "" {
		cfg.LogLevel = level
	}

	raw := strings.TrimSpace(os.Getenv("EOSKEY_FORMAT"))
	if raw == "" {
		return nil
	}
	format, err := parseKeyFormat(raw)
	if err != nil {
		return err
	}
	cfg.KeyFormat = format
	return nil
}

func parseKeyFormat(s string) (eosecc.KeyFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "legacy":
		return eosecc.FormatLegacy, nil
	case "modern":
		return eosecc.FormatModern, nil
	}
	return 0, fmt.Errorf("unknown key format %q, want legacy or modern", s)
}
