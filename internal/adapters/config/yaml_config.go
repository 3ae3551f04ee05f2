/*
Package config loads valuestats defaults from an optional YAML file.
*/
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/AntonioJCosta/valuestats/internal/core/domain/frequency"
)

// DefaultFileName is looked up in the user's home directory.
const DefaultFileName = ".valuestats.yaml"

// RedisConfig holds the connection settings for the redis command.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// HistoryConfig holds settings for the history command.
type HistoryConfig struct {
	ScanLimit int    `yaml:"scan_limit"`
	Metric    string `yaml:"metric"`
}

// Config is the content of the YAML configuration file.
type Config struct {
	Order          string        `yaml:"order"`
	Format         string        `yaml:"format"`
	LineTerminator string        `yaml:"line_terminator"`
	SkipInvalid    bool          `yaml:"skip_invalid"`
	Redis          RedisConfig   `yaml:"redis"`
	History        HistoryConfig `yaml:"history"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Order:          frequency.ByValue.String(),
		Format:         "text",
		LineTerminator: "native",
		Redis:          RedisConfig{Addr: "127.0.0.1:6379"},
		History:        HistoryConfig{Metric: "words"},
	}
}

// DefaultPath returns $HOME/.valuestats.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, DefaultFileName), nil
}

// Load reads the configuration at path on top of Default().
// A missing or empty file is not an error and yields the defaults.
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if len(data) == 0 {
		return cfg, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return Default(), fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if _, err := frequency.ParseOrder(cfg.Order); err != nil {
		return Default(), fmt.Errorf("config file %s: %w", path, err)
	}
	if _, err := ParseLineTerminator(cfg.LineTerminator); err != nil {
		return Default(), fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// ParseLineTerminator maps "lf", "crlf" and "native" to the terminator string.
func ParseLineTerminator(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "native":
		return frequency.NativeEOL, nil
	case "lf":
		return "\n", nil
	case "crlf":
		return "\r\n", nil
	}
	return "", fmt.Errorf("unknown line terminator %q (want lf, crlf or native)", name)
}
