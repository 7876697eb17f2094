package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alnah/go-html2richtext/internal/config"
)

const envPrefix = "HTML2RT_"

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // HTML2RT_CONFIG: config file name or path
	Format     string // HTML2RT_FORMAT: output format
	Workers    int    // HTML2RT_WORKERS: parallel workers (0 = unset)
	LogLevel   string // HTML2RT_LOG_LEVEL: none, normal, debug
	Whitespace string // HTML2RT_WHITESPACE: preserve, remove
	BaseURL    string // HTML2RT_BASE_URL: base for relative links
}

// knownEnvVars lists valid HTML2RT_* environment variables.
var knownEnvVars = map[string]bool{
	"HTML2RT_CONFIG":     true,
	"HTML2RT_FORMAT":     true,
	"HTML2RT_WORKERS":    true,
	"HTML2RT_LOG_LEVEL":  true,
	"HTML2RT_WHITESPACE": true,
	"HTML2RT_BASE_URL":   true,
}

// loadEnvConfig reads the recognized HTML2RT_* values from env.
// A workers value that is not a positive integer is ignored.
func loadEnvConfig(env *Environment) *envConfig {
	cfg := &envConfig{
		ConfigPath: env.getenv("HTML2RT_CONFIG"),
		Format:     env.getenv("HTML2RT_FORMAT"),
		LogLevel:   env.getenv("HTML2RT_LOG_LEVEL"),
		Whitespace: env.getenv("HTML2RT_WHITESPACE"),
		BaseURL:    env.getenv("HTML2RT_BASE_URL"),
	}
	if workers := env.getenv("HTML2RT_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}
	return cfg
}

// warnUnknownEnvVars prints a warning for every unrecognized HTML2RT_* name.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig applies set environment values over the loaded config.
// CLI flags are merged afterwards, giving:
// CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Format != "" {
		cfg.Output.Format = env.Format
	}
	if env.Workers > 0 {
		cfg.Concurrency.Workers = env.Workers
	}
	if env.LogLevel != "" {
		cfg.Logging.Level = env.LogLevel
	}
	if env.Whitespace != "" {
		cfg.Whitespace = env.Whitespace
	}
	if env.BaseURL != "" {
		cfg.Input.BaseURL = env.BaseURL
	}
}
