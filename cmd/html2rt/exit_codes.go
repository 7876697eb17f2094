package main

import (
	"errors"
	"os"

	flag "github.com/spf13/pflag"

	html2richtext "github.com/alnah/go-html2richtext"
	"github.com/alnah/go-html2richtext/internal/config"
)

// Exit codes for the html2rt CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess    = 0 // Successful conversion
	ExitGeneral    = 1 // General/unexpected error
	ExitUsage      = 2 // Invalid flags, config, or validation
	ExitIO         = 3 // File not found, permission denied
	ExitConversion = 4 // Parsing or rule failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoFiles) {
		return ExitIO
	}

	// Conversion errors (exit 4)
	if errors.Is(err, ErrConvert) ||
		errors.Is(err, ErrEncode) {
		return ExitConversion
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, flag.ErrHelp) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, ErrInvalidTagFlag) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrOutputCollision) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, html2richtext.ErrInvalidPolicy) ||
		errors.Is(err, html2richtext.ErrInvalidWhitespace) ||
		errors.Is(err, html2richtext.ErrInvalidWorkers) ||
		errors.Is(err, html2richtext.ErrInvalidTag) ||
		errors.Is(err, html2richtext.ErrInvalidBaseURL) ||
		errors.Is(err, html2richtext.ErrUnknownNodeType) ||
		errors.Is(err, html2richtext.ErrNilConverter) {
		return ExitUsage
	}

	return ExitGeneral
}
