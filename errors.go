package html2richtext

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyInput         = errors.New("input must contain HTML or Markdown")
	ErrAmbiguousInput     = errors.New("input must contain HTML or Markdown, not both")
	ErrParseHTML          = errors.New("HTML parsing failed")
	ErrMarkdownConversion = errors.New("Markdown conversion failed")

	// Rule errors.
	ErrRulePanic       = errors.New("conversion rule panicked")
	ErrUnknownNodeType = errors.New("unknown node type")

	// Option validation errors.
	ErrInvalidPolicy     = errors.New("invalid top-level policy")
	ErrInvalidWhitespace = errors.New("invalid whitespace mode")
	ErrInvalidWorkers    = errors.New("invalid worker count")
	ErrInvalidTag        = errors.New("invalid tag name")
	ErrNilConverter      = errors.New("converter function is nil")
	ErrInvalidBaseURL    = errors.New("invalid base URL option")
)
