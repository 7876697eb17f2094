package main

// Notes:
// - Environment lookups go through Environment.Getenv, so these tests stay
//   parallel and never touch the process environment
// - applyEnvConfig is checked for precedence over file values; flag
//   precedence is covered end to end through runMain

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-html2richtext/internal/config"
)

// mapEnv returns Getenv and Environ functions backed by vars.
func mapEnv(vars map[string]string) (func(string) string, func() []string) {
	getenv := func(k string) string { return vars[k] }
	environ := func() []string {
		out := make([]string, 0, len(vars))
		for k, v := range vars {
			out = append(out, k+"="+v)
		}
		return out
	}
	return getenv, environ
}

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment variable loading
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("all variables", func(t *testing.T) {
		t.Parallel()

		getenv, _ := mapEnv(map[string]string{
			"HTML2RT_CONFIG":     "team",
			"HTML2RT_FORMAT":     "yaml",
			"HTML2RT_WORKERS":    "4",
			"HTML2RT_LOG_LEVEL":  "debug",
			"HTML2RT_WHITESPACE": "remove",
			"HTML2RT_BASE_URL":   "https://example.com/",
		})
		got := loadEnvConfig(&Environment{Getenv: getenv})

		want := envConfig{
			ConfigPath: "team",
			Format:     "yaml",
			Workers:    4,
			LogLevel:   "debug",
			Whitespace: "remove",
			BaseURL:    "https://example.com/",
		}
		if *got != want {
			t.Errorf("loadEnvConfig() = %+v, want %+v", *got, want)
		}
	})

	t.Run("invalid workers are ignored", func(t *testing.T) {
		t.Parallel()

		for _, v := range []string{"abc", "0", "-2"} {
			getenv, _ := mapEnv(map[string]string{"HTML2RT_WORKERS": v})
			if got := loadEnvConfig(&Environment{Getenv: getenv}); got.Workers != 0 {
				t.Errorf("HTML2RT_WORKERS=%q: Workers = %d, want 0", v, got.Workers)
			}
		}
	})

	t.Run("nil Getenv reads nothing", func(t *testing.T) {
		t.Parallel()

		if got := loadEnvConfig(&Environment{}); *got != (envConfig{}) {
			t.Errorf("loadEnvConfig() = %+v, want zero value", *got)
		}
	})
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf, []string{
		"HTML2RT_FORMAT=json",
		"HTML2RT_FROMAT=json",
		"HOME=/root",
		"HTML2RT_WORKER=2",
	})

	out := buf.String()
	for _, name := range []string{"HTML2RT_FROMAT", "HTML2RT_WORKER"} {
		if !strings.Contains(out, name) {
			t.Errorf("output = %q, want a warning for %s", out, name)
		}
	}
	for _, name := range []string{"HTML2RT_FORMAT ", "HOME"} {
		if strings.Contains(out, name) {
			t.Errorf("output = %q, want no warning for %s", out, strings.TrimSpace(name))
		}
	}
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Precedence over file values
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("set values override", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Output.Format = config.FormatHTML
		applyEnvConfig(&envConfig{
			Format:     "yaml",
			Workers:    3,
			LogLevel:   "normal",
			Whitespace: "remove",
			BaseURL:    "https://example.com/",
		}, cfg)

		if cfg.Output.Format != "yaml" {
			t.Errorf("Output.Format = %q, want yaml", cfg.Output.Format)
		}
		if cfg.Concurrency.Workers != 3 {
			t.Errorf("Concurrency.Workers = %d, want 3", cfg.Concurrency.Workers)
		}
		if cfg.Logging.Level != "normal" {
			t.Errorf("Logging.Level = %q, want normal", cfg.Logging.Level)
		}
		if cfg.Whitespace != "remove" {
			t.Errorf("Whitespace = %q, want remove", cfg.Whitespace)
		}
		if cfg.Input.BaseURL != "https://example.com/" {
			t.Errorf("Input.BaseURL = %q, want https://example.com/", cfg.Input.BaseURL)
		}
	})

	t.Run("unset values keep config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Output.Format = config.FormatHTML
		cfg.Concurrency.Workers = 5
		applyEnvConfig(&envConfig{}, cfg)

		if cfg.Output.Format != config.FormatHTML || cfg.Concurrency.Workers != 5 {
			t.Errorf("config changed by empty env: format=%q workers=%d", cfg.Output.Format, cfg.Concurrency.Workers)
		}
	})
}

// ---------------------------------------------------------------------------
// TestRunMain_Env - Environment variables through the convert command
// ---------------------------------------------------------------------------

func TestRunMain_Env(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "team.yaml")
	if err := os.WriteFile(cfgPath, []byte("output:\n  format: yaml\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		vars       map[string]string
		args       []string
		wantOut    string
		wantStderr string
	}{
		{
			name:    "format from env",
			vars:    map[string]string{"HTML2RT_FORMAT": "html"},
			args:    []string{"convert", "-"},
			wantOut: "<p>x</p>",
		},
		{
			name:    "flag beats env",
			vars:    map[string]string{"HTML2RT_FORMAT": "html"},
			args:    []string{"convert", "-f", "json", "-"},
			wantOut: `{"nodeType":"document"`,
		},
		{
			name:    "config from env",
			vars:    map[string]string{"HTML2RT_CONFIG": cfgPath},
			args:    []string{"convert", "-"},
			wantOut: "nodeType: document",
		},
		{
			name:    "env beats config file",
			vars:    map[string]string{"HTML2RT_CONFIG": cfgPath, "HTML2RT_FORMAT": "html"},
			args:    []string{"convert", "-"},
			wantOut: "<p>x</p>",
		},
		{
			name:       "unknown variable warns",
			vars:       map[string]string{"HTML2RT_FROMAT": "html"},
			args:       []string{"convert", "-"},
			wantOut:    `{"nodeType":"document"`,
			wantStderr: "HTML2RT_FROMAT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := newTestEnv("<p>x</p>")
			env.Getenv, env.Environ = mapEnv(tt.vars)

			if code := runMain(context.Background(), tt.args, env); code != ExitSuccess {
				t.Fatalf("runMain() = %d, stderr: %s", code, stderr)
			}
			if !strings.Contains(stdout.String(), tt.wantOut) {
				t.Errorf("stdout = %q, want it to contain %q", stdout.String(), tt.wantOut)
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}
