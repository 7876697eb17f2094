package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	html2richtext "github.com/alnah/go-html2richtext"
	"github.com/alnah/go-html2richtext/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput        = errors.New("no input specified")
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidTagFlag = errors.New("invalid --tag value (want tag=type)")
	ErrReadInput      = errors.New("failed to read input")
	ErrWriteOutput    = errors.New("failed to write output")
	ErrConvert        = errors.New("conversion failed")
)

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	if len(positionalArgs) == 0 {
		return ErrNoInput
	}

	envCfg := loadEnvConfig(env)
	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr, env.environ())
	}

	// Load configuration, the flag taking precedence over HTML2RT_CONFIG
	cfg := config.DefaultConfig()
	configName := flags.common.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}
	if configName != "" {
		var err error
		cfg, err = config.LoadConfig(configName)
		if errors.Is(err, config.ErrConfigNotFound) {
			return fmt.Errorf("loading config: %w%s", err, configNotFoundHint(configName))
		}
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}
	applyEnvConfig(envCfg, cfg)

	// Merge CLI flags into config (CLI wins)
	if err := mergeFlags(flags, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Documents written to stdout must not be interleaved with log lines.
	stdin := isStdin(positionalArgs)
	logOut := env.Stdout
	if stdin && flags.output == "" {
		logOut = env.Stderr
	}
	logger, err := config.NewLogger(cfg.Logging.Level, logOut, env.Stderr)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	conv, err := html2richtext.NewConverter(append(opts, html2richtext.WithLogger(logger))...)
	if err != nil {
		return fmt.Errorf("configuring converter: %w", err)
	}

	params := &conversionParams{
		converter: conv,
		encoder:   newDocumentEncoder(cfg.Output.Format, cfg.Output.Indent),
		selector:  cfg.Input.Selector,
		async:     cfg.Concurrency.Async,
		workers:   html2richtext.ResolveWorkers(cfg.Concurrency.Workers),
		logger:    logger,
	}
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Workers: %d (async: %t, format: %s)\n",
			params.workers, params.async, params.encoder.format)
	}

	if stdin {
		return convertStdin(ctx, params, flags.output, cfg.Input.Markdown, env)
	}

	files, err := discoverFiles(positionalArgs, flags.output, params.encoder.extension(), cfg.Input.Markdown)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	logger.Info("discovered input files", zap.Int("count", len(files)))

	results, err := convertBatch(ctx, files, params)
	printResults(results, flags.common.quiet, flags.common.verbose, env)
	return err
}

// convertStdin converts standard input to output, or to stdout when output is empty.
func convertStdin(ctx context.Context, p *conversionParams, output string, markdown bool, env *Environment) error {
	content, err := io.ReadAll(env.Stdin)
	if err != nil {
		return fmt.Errorf("%w: stdin: %w", ErrReadInput, err)
	}

	out, err := p.render(ctx, string(content), markdown)
	if err != nil {
		return err
	}

	if output == "" {
		if _, err := env.Stdout.Write(out); err != nil {
			return fmt.Errorf("%w: stdout: %w", ErrWriteOutput, err)
		}
		return nil
	}
	return writeOutput(output, out)
}

func isStdin(args []string) bool {
	return len(args) == 1 && args[0] == stdinPath
}

// mergeFlags merges CLI flags into config. Only flags given explicitly
// override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) error {
	if flags.changed("format") {
		cfg.Output.Format = flags.format
	}
	if flags.changed("indent") {
		cfg.Output.Indent = flags.indent
	}
	if flags.changed("selector") {
		cfg.Input.Selector = flags.selector
	}
	if flags.changed("base-url") {
		cfg.Input.BaseURL = flags.baseURL
	}
	if flags.changed("markdown") {
		cfg.Input.Markdown = flags.markdown
	}
	if flags.changed("whitespace") {
		cfg.Whitespace = flags.tree.whitespace
	}
	if flags.changed("top-level-inlines") {
		cfg.TopLevel.Inlines = flags.tree.topLevelInlines
	}
	if flags.changed("top-level-text") {
		cfg.TopLevel.Text = flags.tree.topLevelText
	}
	if flags.changed("async") {
		cfg.Concurrency.Async = flags.async
	}
	if flags.changed("workers") {
		cfg.Concurrency.Workers = flags.workers
	}

	for _, pair := range flags.tree.tags {
		tag, target, ok := strings.Cut(pair, "=")
		tag, target = strings.ToLower(strings.TrimSpace(tag)), strings.TrimSpace(target)
		if !ok || tag == "" || target == "" {
			return fmt.Errorf("%w: %q", ErrInvalidTagFlag, pair)
		}
		if cfg.Tags == nil {
			cfg.Tags = map[string]string{}
		}
		cfg.Tags[tag] = target
	}
	return nil
}
