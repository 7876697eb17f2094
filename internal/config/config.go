// Package config loads and validates html2rt configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	html2richtext "github.com/alnah/go-html2richtext"
	"github.com/alnah/go-html2richtext/htmltree"
	"github.com/alnah/go-html2richtext/internal/fileutil"
	"github.com/alnah/go-html2richtext/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// AppDirName is the directory under the user config dir holding named configs.
const AppDirName = "go-html2richtext"

// Field length limits.
const (
	MaxSelectorLength = 512
	MaxBaseURLLength  = 2048
	MaxTagLength      = 64 // longest registered HTML tag is well below this
	MaxTargetLength   = 64
	MaxTagMappings    = 256
	MaxIndent         = 16
)

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatHTML = "html"
	FormatDump = "dump"
	FormatTree = "tree"
)

// Logging levels.
const (
	LevelNone   = "none"
	LevelNormal = "normal"
	LevelDebug  = "debug"
)

// Formats lists the accepted output formats in help order.
var Formats = []string{FormatJSON, FormatYAML, FormatHTML, FormatDump, FormatTree}

// Levels lists the accepted logging levels.
var Levels = []string{LevelNone, LevelNormal, LevelDebug}

// Config holds all configuration for a conversion run.
type Config struct {
	Whitespace  string            `yaml:"whitespace"` // "preserve" (default) or "remove"
	TopLevel    TopLevelConfig    `yaml:"topLevel"`
	Tags        map[string]string `yaml:"tags"` // tag -> node type, mark type, "unwrap" or "drop"
	Input       InputConfig       `yaml:"input"`
	Output      OutputConfig      `yaml:"output"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// TopLevelConfig defines the repair policies for top-level nodes.
type TopLevelConfig struct {
	Inlines string `yaml:"inlines"` // "preserve", "remove" or "wrap"
	Text    string `yaml:"text"`
}

// InputConfig defines how input files are read.
type InputConfig struct {
	Selector string `yaml:"selector"` // CSS selector for the conversion root (empty = whole input)
	Markdown bool   `yaml:"markdown"` // Treat every input as Markdown
	BaseURL  string `yaml:"baseURL"`  // Absolute URL relative links and media are resolved against
}

// OutputConfig defines output encoding.
type OutputConfig struct {
	Format string `yaml:"format"`
	Indent int    `yaml:"indent"` // 0 = compact JSON
}

// ConcurrencyConfig selects the execution mode.
type ConcurrencyConfig struct {
	Async   bool `yaml:"async"`
	Workers int  `yaml:"workers"` // 0 = auto
}

// LoggingConfig selects the log level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Validate checks every enumerated value and length limit.
func (c *Config) Validate() error {
	if _, err := htmltree.ParseWhitespaceMode(c.Whitespace); err != nil {
		return fmt.Errorf("%w: whitespace: %v", ErrInvalidValue, err)
	}
	if err := validatePolicy("topLevel.inlines", c.TopLevel.Inlines); err != nil {
		return err
	}
	if err := validatePolicy("topLevel.text", c.TopLevel.Text); err != nil {
		return err
	}

	if len(c.Tags) > MaxTagMappings {
		return fmt.Errorf("%w: tags: %d entries (max %d)", ErrInvalidValue, len(c.Tags), MaxTagMappings)
	}
	for _, tag := range sortedKeys(c.Tags) {
		if strings.TrimSpace(tag) == "" {
			return fmt.Errorf("%w: tags: empty tag name", ErrInvalidValue)
		}
		if err := validateFieldLength("tags key", tag, MaxTagLength); err != nil {
			return err
		}
		target := c.Tags[tag]
		if target == "" {
			return fmt.Errorf("%w: tags.%s: empty target", ErrInvalidValue, tag)
		}
		if err := validateFieldLength("tags."+tag, target, MaxTargetLength); err != nil {
			return err
		}
	}

	if err := validateFieldLength("input.selector", c.Input.Selector, MaxSelectorLength); err != nil {
		return err
	}
	if c.Input.Selector != "" {
		if err := htmltree.ValidateSelector(c.Input.Selector); err != nil {
			return fmt.Errorf("%w: input.selector: %w", ErrInvalidValue, err)
		}
	}
	if err := validateFieldLength("input.baseURL", c.Input.BaseURL, MaxBaseURLLength); err != nil {
		return err
	}
	if c.Input.BaseURL != "" {
		if _, err := htmltree.ParseBaseURL(c.Input.BaseURL); err != nil {
			return fmt.Errorf("%w: input.baseURL: %w", ErrInvalidValue, err)
		}
	}

	if c.Output.Format != "" && !contains(Formats, c.Output.Format) {
		return fmt.Errorf("%w: output.format %q (must be one of %s)",
			ErrInvalidValue, c.Output.Format, strings.Join(Formats, ", "))
	}
	if c.Output.Indent < 0 || c.Output.Indent > MaxIndent {
		return fmt.Errorf("%w: output.indent %d (must be 0-%d)", ErrInvalidValue, c.Output.Indent, MaxIndent)
	}

	if c.Concurrency.Workers < 0 || c.Concurrency.Workers > html2richtext.MaxWorkers {
		return fmt.Errorf("%w: concurrency.workers %d (must be 0-%d)",
			ErrInvalidValue, c.Concurrency.Workers, html2richtext.MaxWorkers)
	}

	if c.Logging.Level != "" && !contains(Levels, c.Logging.Level) {
		return fmt.Errorf("%w: logging.level %q (must be one of %s)",
			ErrInvalidValue, c.Logging.Level, strings.Join(Levels, ", "))
	}
	return nil
}

func validatePolicy(field, value string) error {
	if _, err := html2richtext.ParsePolicy(value); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidValue, field, err)
	}
	return nil
}

// validateFieldLength returns an error if value exceeds maxLength.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s is %d characters (max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration with the library defaults and JSON output.
func DefaultConfig() *Config {
	return &Config{
		Whitespace: string(htmltree.WhitespacePreserve),
		TopLevel: TopLevelConfig{
			Inlines: string(html2richtext.PolicyPreserve),
			Text:    string(html2richtext.PolicyPreserve),
		},
		Tags:    map[string]string{},
		Output:  OutputConfig{Format: FormatJSON},
		Logging: LoggingConfig{Level: LevelNone},
	}
}

// Options maps the configuration to converter options. The config must have
// passed Validate.
func (c *Config) Options() ([]html2richtext.Option, error) {
	mode, err := htmltree.ParseWhitespaceMode(c.Whitespace)
	if err != nil {
		return nil, err
	}
	inlines, err := html2richtext.ParsePolicy(c.TopLevel.Inlines)
	if err != nil {
		return nil, err
	}
	text, err := html2richtext.ParsePolicy(c.TopLevel.Text)
	if err != nil {
		return nil, err
	}

	opts := []html2richtext.Option{
		html2richtext.WithWhitespace(mode),
		html2richtext.WithTopLevelInlines(inlines),
		html2richtext.WithTopLevelText(text),
		html2richtext.WithMaxWorkers(c.Concurrency.Workers),
	}
	if len(c.Tags) > 0 {
		opts = append(opts, html2richtext.WithTagMapping(c.Tags))
	}
	if c.Input.BaseURL != "" {
		opts = append(opts, html2richtext.WithBaseURL(c.Input.BaseURL))
	}
	return opts, nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it searches for nameOrPath.yaml/.yml in the current directory
// and then in the user config directory.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SearchPaths lists, in lookup order, the files a config name may resolve to:
// the current directory, then <user config dir>/go-html2richtext/.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	dirs := []string{""}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(userConfigDir, AppDirName))
	}

	paths := make([]string, 0, len(extensions)*len(dirs))
	for _, dir := range dirs {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(dir, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths(name).
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, path := range paths {
		if fileutil.FileExists(path) {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
