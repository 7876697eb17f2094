// Package yamlutil is the single YAML boundary of the module: configuration
// decoding and YAML document output both go through it.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

// DefaultIndent is used by MarshalIndent for non-positive indents.
const DefaultIndent = 2

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

func validateInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

// UnmarshalStrict decodes data into v and rejects unknown fields.
func UnmarshalStrict(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// MarshalIndent encodes v with the given indentation. Types implementing
// MarshalYAML() (any, error) control their own shape.
func MarshalIndent(v any, indent int) ([]byte, error) {
	if indent <= 0 {
		indent = DefaultIndent
	}
	out, err := yaml.MarshalWithOptions(v, yaml.Indent(indent), yaml.IndentSequence(true))
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return out, nil
}

// FormatError renders a decoding error with source context when the
// underlying library provides it.
func FormatError(err error) string {
	return yaml.FormatError(err, false, true)
}
