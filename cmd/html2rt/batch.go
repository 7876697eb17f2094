package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	html2richtext "github.com/alnah/go-html2richtext"
	"github.com/alnah/go-html2richtext/internal/fileutil"
	"github.com/alnah/go-html2richtext/richtext"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// DocumentConverter is the interface for the conversion service.
type DocumentConverter interface {
	Convert(ctx context.Context, input html2richtext.Input) (*richtext.Document, error)
	ConvertAsync(ctx context.Context, input html2richtext.Input) (*richtext.Document, error)
}

// Compile-time interface implementation check.
var _ DocumentConverter = (*html2richtext.Converter)(nil)

// conversionParams groups values shared across batch/file conversion.
type conversionParams struct {
	converter DocumentConverter
	encoder   documentEncoder
	selector  string
	async     bool
	workers   int
	logger    *zap.Logger
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	InputSize  int
	OutputSize int
	Err        error
	Duration   time.Duration
}

// batchError reports failed conversions. The individual errors stay
// reachable through errors.Is and errors.As.
type batchError struct {
	failed int
	total  int
	errs   error
}

func (e *batchError) Error() string {
	return fmt.Sprintf("%d of %d conversion(s) failed", e.failed, e.total)
}

func (e *batchError) Unwrap() error { return e.errs }

// convertBatch converts files concurrently, at most p.workers at a time.
// Results keep the order of files.
func convertBatch(ctx context.Context, files []FileToConvert, p *conversionParams) ([]ConversionResult, error) {
	if len(files) == 0 {
		return nil, nil
	}

	results := make([]ConversionResult, len(files))
	var g errgroup.Group
	g.SetLimit(min(max(p.workers, 1), len(files)))
	for i, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = ConversionResult{InputPath: f.InputPath, Err: err}
				return nil
			}
			results[i] = convertFile(ctx, p, f)
			return nil
		})
	}
	_ = g.Wait()

	var errs error
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", r.InputPath, r.Err))
		}
	}
	if errs != nil {
		return results, &batchError{failed: failed, total: len(results), errs: errs}
	}
	return results, nil
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, p *conversionParams, f FileToConvert) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	done := func(err error) ConversionResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return done(fmt.Errorf("%w: %w", ErrReadInput, err))
	}
	result.InputSize = len(content)

	out, err := p.render(ctx, string(content), f.Markdown)
	if err != nil {
		return done(err)
	}

	if err := writeOutput(f.OutputPath, out); err != nil {
		return done(err)
	}
	result.OutputSize = len(out)

	p.logger.Debug("converted file",
		zap.String("input", f.InputPath),
		zap.String("output", f.OutputPath),
		zap.Bool("markdown", f.Markdown),
		zap.Duration("elapsed", time.Since(start)),
	)
	return done(nil)
}

// render converts one source and encodes the document.
func (p *conversionParams) render(ctx context.Context, source string, markdown bool) ([]byte, error) {
	input := html2richtext.Input{Selector: p.selector}
	if markdown {
		input.Markdown = source
	} else {
		input.HTML = source
	}

	convert := p.converter.Convert
	if p.async {
		convert = p.converter.ConvertAsync
	}
	doc, err := convert(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConvert, err)
	}
	return p.encoder.encode(doc)
}

// writeOutput creates the parent directory and writes data in place atomically.
func writeOutput(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("%w: creating output directory: %w", ErrWriteOutput, err)
	}
	if err := fileutil.WriteFileAtomic(path, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs conversion results using the environment's writers.
func printResults(results []ConversionResult, quiet, verbose bool, env *Environment) ResultSummary {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%s -> %s, %v)\n",
				r.InputPath, r.OutputPath,
				humanize.Bytes(uint64(r.InputSize)), humanize.Bytes(uint64(r.OutputSize)),
				r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary
}
